package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	mw "peerlend-gateway/internal/adapter/middleware"
	"peerlend-gateway/internal/domain/user"
	sessionuc "peerlend-gateway/internal/usecase/session"
)

type AuthHandler struct{ sessions *sessionuc.Usecase }

func NewAuthHandler(sessions *sessionuc.Usecase) *AuthHandler {
	return &AuthHandler{sessions: sessions}
}

type sessionResponse struct {
	Token string        `json:"token"`
	User  *user.Profile `json:"user"`
	Demo  bool          `json:"demo,omitempty"`
}

func toSessionResponse(st *sessionuc.State) sessionResponse {
	return sessionResponse{Token: st.Token, User: st.User, Demo: st.Demo}
}

type loginReq struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	st, err := h.sessions.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return respondUpstreamError(c, err, "Login failed")
	}
	return c.JSON(http.StatusOK, toSessionResponse(st))
}

type registerReq struct {
	Email     string `json:"email"     validate:"required,email"`
	Password  string `json:"password"  validate:"required,min=6"`
	FirstName string `json:"firstName" validate:"required,notblank"`
	LastName  string `json:"lastName"  validate:"required,notblank"`
	Role      string `json:"role"      validate:"required,oneof=borrower lender"`
	Phone     string `json:"phone"`
}

func (h *AuthHandler) Register(c echo.Context) error {
	var req registerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	st, err := h.sessions.Register(c.Request().Context(), user.RegisterInput{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Role:      user.Role(req.Role),
		Phone:     req.Phone,
	})
	if err != nil {
		return respondUpstreamError(c, err, "Registration failed")
	}
	return c.JSON(http.StatusCreated, toSessionResponse(st))
}

type demoReq struct {
	Role string `json:"role" validate:"required,oneof=admin lender borrower"`
}

func (h *AuthHandler) LoginDemo(c echo.Context) error {
	var req demoReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	st, err := h.sessions.LoginDemo(c.Request().Context(), user.Role(req.Role))
	if err != nil {
		if errors.Is(err, sessionuc.ErrDemoDisabled) {
			return c.JSON(http.StatusForbidden, ErrorResponse{Error: "demo login is disabled"})
		}
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, toSessionResponse(st))
}

// Restore is the startup check: re-validate the persisted credential and
// return the refreshed profile, or 401 with everything cleared.
func (h *AuthHandler) Restore(c echo.Context) error {
	token := mw.BearerToken(c)
	if token == "" {
		return c.JSON(http.StatusUnauthorized, map[string]any{"authenticated": false})
	}
	st, err := h.sessions.Restore(c.Request().Context(), token)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]any{"authenticated": false})
	}
	return c.JSON(http.StatusOK, map[string]any{
		"authenticated": true,
		"user":          st.User,
		"demo":          st.Demo,
	})
}

// Refresh re-fetches the profile best-effort; it never fails past session
// resolution.
func (h *AuthHandler) Refresh(c echo.Context) error {
	st := mw.CurrentSession(c)
	p, err := h.sessions.RefreshUser(c.Request().Context(), st.Token)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "session expired"})
	}
	return c.JSON(http.StatusOK, map[string]any{"user": p})
}

func (h *AuthHandler) Logout(c echo.Context) error {
	if token := mw.BearerToken(c); token != "" {
		h.sessions.Logout(c.Request().Context(), token)
	}
	return c.NoContent(http.StatusNoContent)
}
