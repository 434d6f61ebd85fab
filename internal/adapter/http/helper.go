package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"peerlend-gateway/internal/adapter/upstream"
	"peerlend-gateway/internal/domain/loan"
	"peerlend-gateway/internal/domain/user"
)

// respondUpstreamError turns a failed collaborator call into the user-facing
// notice: the collaborator's message when it sent one, the generic fallback
// otherwise. The HTTP status mirrors the collaborator's where known.
func respondUpstreamError(c echo.Context, err error, fallback string) error {
	if errors.Is(err, loan.ErrActionNotAllowed) {
		return c.JSON(http.StatusConflict, ErrorResponse{Error: loan.ErrActionNotAllowed.Error()})
	}
	if errors.Is(err, loan.ErrNotFound) {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: upstream.UserMessage(err, "Loan not found")})
	}
	var ae *upstream.APIError
	if errors.As(err, &ae) {
		status := ae.Status
		if ae.Unauthorized() {
			status = http.StatusUnauthorized
		}
		return c.JSON(status, ErrorResponse{Error: upstream.UserMessage(err, fallback)})
	}
	if errors.Is(err, user.ErrUnauthenticated) {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "session expired"})
	}
	return c.JSON(http.StatusBadGateway, ErrorResponse{Error: fallback})
}

// ---- helpers ----

func containsFieldMsg(list []FieldError, field, substr string) bool {
	for _, e := range list {
		if e.Field == field && strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}
