package app

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func httpBody(s string) io.Reader { return strings.NewReader(s) }

func TestNew_InvalidConfigRejected(t *testing.T) {
	cfg := Defaults()
	cfg.LLMAPIKey = "key"
	// no model
	if _, err := New(cfg); err == nil {
		t.Fatal("expected validation error")
	}
}

func TestNew_ServesHealthz(t *testing.T) {
	cfg := Defaults()
	cfg.CacheDir = t.TempDir()
	a, err := New(cfg)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	a.srv.Handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("healthz status %d", rec.Code)
	}
}

func TestNew_GenerateWithoutModelStillAnswers(t *testing.T) {
	cfg := Defaults()
	cfg.CacheDir = t.TempDir()
	a, err := New(cfg)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/api/generate",
		httpBody(`{"domain":"Quantum Computing","duration_semesters":2}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	a.srv.Handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d: %s", rec.Code, rec.Body.String())
	}
	if got := rec.Header().Get("X-Curriculum-Source"); got != "fallback" {
		t.Fatalf("source = %q", got)
	}
}
