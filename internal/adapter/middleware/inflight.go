package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

// Upper bound on how long a lock may outlive a crashed handler.
const inFlightLockTTL = 60 * time.Second

func inFlightKey(method, path, token string) string {
	return "inflight:" + strings.ToLower(method) + ":" + path + ":" + token
}

// InFlightLock is the server-side rendering of the "disable the button while
// the call is pending" rule: one mutating request per (session, route) at a
// time. The lock is taken before the handler runs and always released when
// it finishes, success or failure; a concurrent duplicate gets 409.
func InFlightLock(rdb *redis.Client) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			switch c.Request().Method {
			case http.MethodGet, http.MethodHead, http.MethodOptions:
				return next(c)
			}

			token := BearerToken(c)
			if token == "" {
				// the session middleware will reject it anyway
				return next(c)
			}

			ctx := c.Request().Context()
			// concrete URL, not the route pattern: each loan's controls are
			// their own view
			key := inFlightKey(c.Request().Method, c.Request().URL.Path, token)
			ok, err := rdb.SetNX(ctx, key, "1", inFlightLockTTL).Result()
			if err != nil {
				return c.JSON(http.StatusServiceUnavailable, map[string]string{"error": "submission lock unavailable"})
			}
			if !ok {
				return c.JSON(http.StatusConflict, map[string]string{"error": "request is already in progress"})
			}
			// release with a fresh context: the request context may already
			// be canceled by the time the handler returns
			defer rdb.Del(context.Background(), key)

			return next(c)
		}
	}
}
