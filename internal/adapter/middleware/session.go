package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"peerlend-gateway/internal/domain/user"
	sessionuc "peerlend-gateway/internal/usecase/session"
)

const sessionContextKey = "peerlend.session"

// BearerToken extracts the session token from the Authorization header.
func BearerToken(c echo.Context) string {
	h := c.Request().Header.Get("Authorization")
	if h == "" {
		return ""
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// CurrentSession returns the resolved state set by SessionMiddleware, nil on
// unauthenticated routes.
func CurrentSession(c echo.Context) *sessionuc.State {
	st, _ := c.Get(sessionContextKey).(*sessionuc.State)
	return st
}

// SetCurrentSession seeds the context for handlers invoked outside the
// middleware chain, primarily in tests.
func SetCurrentSession(c echo.Context, st *sessionuc.State) {
	c.Set(sessionContextKey, st)
}

// SessionMiddleware resolves the bearer token against the persisted session
// store. No token or an unknown token ends the request with 401; downstream
// handlers can rely on CurrentSession being non-nil.
func SessionMiddleware(sessions *sessionuc.Usecase) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := BearerToken(c)
			if token == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "missing session token"})
			}
			st, err := sessions.Resolve(c.Request().Context(), token)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "session expired"})
			}
			c.Set(sessionContextKey, st)
			return next(c)
		}
	}
}

// RequireRole guards role-specific route groups; it assumes
// SessionMiddleware already ran.
func RequireRole(role user.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			st := CurrentSession(c)
			if st == nil || st.User == nil || st.User.Role != role {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
			}
			return next(c)
		}
	}
}
