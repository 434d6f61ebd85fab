package upstream

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, 2*time.Second, zap.NewNop()), srv
}

func writeData(t *testing.T, w http.ResponseWriter, data any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(map[string]any{"data": data}); err != nil {
		t.Fatalf("encode: %v", err)
	}
}

func TestDo_UnwrapsEnvelopeAndSendsCredential(t *testing.T) {
	var gotAuth string
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		writeData(t, w, map[string]any{"id": "u1", "email": "a@b.c"})
	})

	p, err := c.GetProfile(context.Background(), "cred-123")
	if err != nil {
		t.Fatalf("GetProfile: %v", err)
	}
	if p.ID != "u1" || p.Email != "a@b.c" {
		t.Fatalf("profile = %+v", p)
	}
	if gotAuth != "Bearer cred-123" {
		t.Fatalf("Authorization = %q", gotAuth)
	}
}

func TestDo_ErrorCarriesUpstreamMessage(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "amount exceeds remaining"})
	})

	_, err := c.GetProfile(context.Background(), "cred")
	if err == nil {
		t.Fatalf("expected error")
	}
	ae, ok := err.(*APIError)
	if !ok {
		t.Fatalf("error type = %T", err)
	}
	if ae.Status != http.StatusBadRequest || ae.Message != "amount exceeds remaining" {
		t.Fatalf("APIError = %+v", ae)
	}
	if got := UserMessage(err, "fallback"); got != "amount exceeds remaining" {
		t.Fatalf("UserMessage = %q", got)
	}
}

func TestDo_ErrorWithoutMessageUsesFallback(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := c.GetProfile(context.Background(), "cred")
	if err == nil {
		t.Fatalf("expected error")
	}
	if got := UserMessage(err, "something went wrong"); got != "something went wrong" {
		t.Fatalf("UserMessage = %q", got)
	}
}

func TestDo_UnauthorizedDetection(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := c.GetProfile(context.Background(), "expired")
	ae, ok := err.(*APIError)
	if !ok || !ae.Unauthorized() {
		t.Fatalf("expected unauthorized APIError, got %v", err)
	}
}

func TestLogin_ReturnsProfileAndToken(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/auth/login" {
			t.Fatalf("unexpected call %s %s", r.Method, r.URL.Path)
		}
		writeData(t, w, map[string]any{
			"user":  map[string]any{"id": "u1", "role": "borrower"},
			"token": "tok-9",
		})
	})

	p, tok, err := c.Login(context.Background(), "a@b.c", "pw")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if p.ID != "u1" || tok != "tok-9" {
		t.Fatalf("got profile=%+v token=%q", p, tok)
	}
}
