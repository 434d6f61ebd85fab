package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	mw "peerlend-gateway/internal/adapter/middleware"
	"peerlend-gateway/internal/domain/settings"
	settingsuc "peerlend-gateway/internal/usecase/settings"
)

type SettingsHandler struct{ settings *settingsuc.Usecase }

func NewSettingsHandler(uc *settingsuc.Usecase) *SettingsHandler {
	return &SettingsHandler{settings: uc}
}

func (h *SettingsHandler) GetSettings(c echo.Context) error {
	st := mw.CurrentSession(c)
	s, err := h.settings.Get(c.Request().Context(), st.Credential)
	if err != nil {
		return respondUpstreamError(c, err, "Failed to load settings")
	}
	return c.JSON(http.StatusOK, s)
}

func (h *SettingsHandler) UpdateSettings(c echo.Context) error {
	// seed with defaults so a partial body falls back instead of zeroing
	req := settings.Defaults()
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	st := mw.CurrentSession(c)
	s, err := h.settings.Update(c.Request().Context(), st.Credential, req)
	if err != nil {
		return respondUpstreamError(c, err, "Failed to save settings")
	}
	return c.JSON(http.StatusOK, s)
}

// ResetSettings hands back pristine defaults without saving them; the admin
// confirms with a subsequent update.
func (h *SettingsHandler) ResetSettings(c echo.Context) error {
	return c.JSON(http.StatusOK, h.settings.Reset())
}
