package http

import (
	"context"
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	mw "peerlend-gateway/internal/adapter/middleware"
	"peerlend-gateway/internal/domain/settings"
	"peerlend-gateway/internal/domain/user"
	"peerlend-gateway/internal/testutil/upstreammock"
	sessionuc "peerlend-gateway/internal/usecase/session"
	settingsuc "peerlend-gateway/internal/usecase/settings"
)

func adminSession() *sessionuc.State {
	return &sessionuc.State{
		Token:      "admin-token",
		Credential: "cred-admin",
		User:       &user.Profile{ID: "admin-1", Role: user.RoleAdmin},
	}
}

func newSettingsHandler(api *upstreammock.Admin) *SettingsHandler {
	return NewSettingsHandler(settingsuc.NewUsecase(api))
}

func TestGetSettings_MergesOverDefaults(t *testing.T) {
	e := echo.New()
	api := &upstreammock.Admin{
		GetFn: func(ctx context.Context, credential string, into *settings.Settings) error {
			// a partial document: only the fee was ever customized
			into.PlatformFeePercent = 2.5
			return nil
		},
	}
	h := newSettingsHandler(api)

	req := httptest.NewRequest(stdhttp.MethodGet, "/admin/settings", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	mw.SetCurrentSession(c, adminSession())

	if err := h.GetSettings(c); err != nil {
		t.Fatalf("GetSettings error: %v", err)
	}
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var got settings.Settings
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if got.PlatformFeePercent != 2.5 {
		t.Fatalf("fee = %v, want the fetched value", got.PlatformFeePercent)
	}
	if got.MinLoanAmount != 1000 || got.MaxLoanDuration != 365 {
		t.Fatalf("untouched fields must keep their defaults: %+v", got)
	}
}

func TestUpdateSettings_SavesThenRefetches(t *testing.T) {
	e := newEchoWithValidator()

	var saved *settings.Settings
	api := &upstreammock.Admin{
		UpdateFn: func(ctx context.Context, credential string, s settings.Settings) (*settings.Settings, error) {
			saved = &s
			return &s, nil
		},
		GetFn: func(ctx context.Context, credential string, into *settings.Settings) error {
			if saved == nil {
				t.Fatal("refetch before save")
			}
			*into = *saved
			return nil
		},
	}
	h := newSettingsHandler(api)

	body := `{"minLoanAmount": 2000, "maxLoanAmount": 600000}`
	req := httptest.NewRequest(stdhttp.MethodPut, "/admin/settings", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	mw.SetCurrentSession(c, adminSession())

	if err := h.UpdateSettings(c); err != nil {
		t.Fatalf("UpdateSettings error: %v", err)
	}
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	if saved == nil || saved.MinLoanAmount != 2000 {
		t.Fatalf("saved = %+v", saved)
	}
	// fields absent from the body fall back to defaults, not zero
	if saved.MaxLoanDuration != 365 {
		t.Fatalf("partial body zeroed a field: %+v", saved)
	}
}

func TestUpdateSettings_RangeValidated(t *testing.T) {
	e := newEchoWithValidator()
	api := &upstreammock.Admin{
		UpdateFn: func(ctx context.Context, credential string, s settings.Settings) (*settings.Settings, error) {
			t.Fatal("invalid document must not reach the collaborator")
			return nil, nil
		},
	}
	h := newSettingsHandler(api)

	// max below min
	body := `{"minLoanAmount": 50000, "maxLoanAmount": 1000}`
	req := httptest.NewRequest(stdhttp.MethodPut, "/admin/settings", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	mw.SetCurrentSession(c, adminSession())

	if err := h.UpdateSettings(c); err != nil {
		t.Fatalf("UpdateSettings error: %v", err)
	}
	if rec.Code != stdhttp.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}
	var er ErrorResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &er)
	if !containsFieldMsg(er.Details, "MaxLoanAmount", "must not be below") {
		t.Fatalf("missing range detail: %+v", er.Details)
	}
}

func TestResetSettings_NoNetwork(t *testing.T) {
	e := echo.New()
	h := newSettingsHandler(&upstreammock.Admin{}) // any call would fail loudly

	req := httptest.NewRequest(stdhttp.MethodPost, "/admin/settings/reset", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	mw.SetCurrentSession(c, adminSession())

	if err := h.ResetSettings(c); err != nil {
		t.Fatalf("ResetSettings error: %v", err)
	}
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var got settings.Settings
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if got != settings.Defaults() {
		t.Fatalf("reset must hand back pristine defaults: %+v", got)
	}
}
