package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xavierca1/safe-leads/internal/infra/metrics"
)

func okHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

func TestAdminAuth(t *testing.T) {
	h := AdminAuth("s3cret")(http.HandlerFunc(okHandler))

	cases := map[string]struct {
		header string
		want   int
	}{
		"missing":      {"", http.StatusUnauthorized},
		"wrong scheme": {"Basic s3cret", http.StatusUnauthorized},
		"wrong token":  {"Bearer nope", http.StatusUnauthorized},
		"valid":        {"Bearer s3cret", http.StatusNoContent},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/admin/inquiries", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()
			h.ServeHTTP(w, req)
			assert.Equal(t, tc.want, w.Code)
		})
	}
}

func TestAdminAuthDisabledWithoutToken(t *testing.T) {
	h := AdminAuth("")(http.HandlerFunc(okHandler))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestMetricsUsesRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Metrics)
	r.Get("/api/chat/messages/{sessionId}", okHandler)

	before := testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues("GET", "/api/chat/messages/{sessionId}", "204"))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/chat/messages/abc", nil))

	after := testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues("GET", "/api/chat/messages/{sessionId}", "204"))
	assert.Equal(t, before+1, after)
}

func limitedRequest(r http.Handler, path, ip string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, nil)
	req.Header.Set("X-Real-IP", ip)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRateLimitByIPSharesBudgetAcrossRoutes(t *testing.T) {
	limit := RateLimitByIP(2, time.Minute)
	r := chi.NewRouter()
	r.With(limit).Post("/api/leads", okHandler)
	r.With(limit).Post("/api/contacts", okHandler)

	assert.Equal(t, http.StatusNoContent, limitedRequest(r, "/api/leads", "198.51.100.1").Code)
	assert.Equal(t, http.StatusNoContent, limitedRequest(r, "/api/contacts", "198.51.100.1").Code)

	w := limitedRequest(r, "/api/leads", "198.51.100.1")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])

	assert.Equal(t, http.StatusNoContent, limitedRequest(r, "/api/leads", "198.51.100.2").Code)
}

func TestRateLimitByIPDisabled(t *testing.T) {
	h := RateLimitByIP(0, time.Minute)(http.HandlerFunc(okHandler))
	for i := 0; i < 5; i++ {
		assert.Equal(t, http.StatusNoContent, limitedRequest(h, "/api/leads", "198.51.100.1").Code)
	}
}
