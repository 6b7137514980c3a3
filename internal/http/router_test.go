package http_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/teamtrack/teamtrack/internal/config"
	httpx "github.com/teamtrack/teamtrack/internal/http"
	"github.com/teamtrack/teamtrack/internal/observability"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter() *gin.Engine {
	cfg := config.Config{
		Env:            "test",
		AllowedOrigins: []string{"http://localhost:3000"},
		MaxBodyBytes:   1 << 20,
	}

	// nil pool: health degrades to always-ok and no handler test below
	// reaches the repositories
	return httpx.NewRouter(observability.NewLogger(cfg.Env), nil, cfg)
}

func TestRouterHealthEndpoints(t *testing.T) {
	r := newTestRouter()

	for _, path := range []string{"/healthz", "/readyz"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))

		if w.Code != http.StatusOK {
			t.Fatalf("%s got status %d, body=%s", path, w.Code, w.Body.String())
		}
	}
}

func TestRouterExposesMetrics(t *testing.T) {
	r := newTestRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("/metrics got status %d", w.Code)
	}
}

func TestRouterRejectsNonJSONBodies(t *testing.T) {
	r := newTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader("name=Ann"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnsupportedMediaType {
		t.Fatalf("got status %d, want 415", w.Code)
	}
}

func TestRouterRefusesOversizedBodies(t *testing.T) {
	r := newTestRouter()

	body := `{"name": "` + strings.Repeat("a", 2<<20) + `"}`
	req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("got status %d, want 413", w.Code)
	}

	if !strings.Contains(w.Body.String(), "error") {
		t.Fatalf("expected error envelope, got %s", w.Body.String())
	}
}

func TestRouterCORSPreflight(t *testing.T) {
	r := newTestRouter()

	req := httptest.NewRequest(http.MethodOptions, "/users", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("preflight got status %d", w.Code)
	}

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
		t.Fatalf("unexpected allow-origin %q", got)
	}
}

func TestRouterTagsResponsesWithRequestID(t *testing.T) {
	r := newTestRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if w.Header().Get("X-Request-Id") == "" {
		t.Fatalf("expected a generated X-Request-Id header")
	}
}
