package httpapi

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSecurityHeaders(t *testing.T) {
	w := doRequest(t, newFixture().server(), http.MethodGet, "/healthz", nil)

	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
	assert.Equal(t, "1; mode=block", w.Header().Get("X-XSS-Protection"))
	assert.Equal(t, "strict-origin-when-cross-origin", w.Header().Get("Referrer-Policy"))
	assert.Empty(t, w.Header().Get("Strict-Transport-Security"))
}

func TestSecurityHeaders_ProductionAddsHSTS(t *testing.T) {
	f := newFixture()
	f.cfg.Environment = "production"

	w := doRequest(t, f.server(), http.MethodGet, "/healthz", nil)
	assert.Equal(t, "max-age=31536000; includeSubDomains", w.Header().Get("Strict-Transport-Security"))
}

func TestCORS_WildcardEchoesOrigin(t *testing.T) {
	s := newFixture().server()

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.RemoteAddr = "203.0.113.7:34567"
	req.Header.Set("Origin", "https://app.example")
	w := httptest.NewRecorder()
	s.ServeHTTP(w, req)

	assert.Equal(t, "https://app.example", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
	assert.Contains(t, w.Header().Values("Vary"), "Origin")
}

func TestCORS_OriginList(t *testing.T) {
	f := newFixture()
	f.cfg.CORSOrigins = "https://a.example, https://b.example"
	s := f.server()

	t.Run("listed origin allowed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
		req.RemoteAddr = "203.0.113.7:34567"
		req.Header.Set("Origin", "https://a.example")
		w := httptest.NewRecorder()
		s.ServeHTTP(w, req)

		assert.Equal(t, "https://a.example", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("unlisted origin refused", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
		req.RemoteAddr = "203.0.113.7:34567"
		req.Header.Set("Origin", "https://evil.example")
		w := httptest.NewRecorder()
		s.ServeHTTP(w, req)

		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestCORS_Preflight(t *testing.T) {
	s := newFixture().server()

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/translate", nil)
	req.RemoteAddr = "203.0.113.7:34567"
	req.Header.Set("Origin", "https://app.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	s.ServeHTTP(w, req)

	require.Equal(t, http.StatusNoContent, w.Code)
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "POST")
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Headers"), "Content-Type")
}

func TestSizeLimit(t *testing.T) {
	s := newFixture().server()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/translate", nil)
	req.RemoteAddr = "203.0.113.7:34567"
	req.ContentLength = maxBodyBytes + 1
	w := httptest.NewRecorder()
	s.ServeHTTP(w, req)

	require.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	assert.Equal(t, "Request body too large", errorDetail(t, w))
}

func TestRateLimit(t *testing.T) {
	f := newFixture()
	f.cfg.RateLimitRPS = 0.001
	f.cfg.RateLimitBurst = 2
	s := f.server()

	for i := 0; i < 2; i++ {
		w := doRequest(t, s, http.MethodGet, "/api/v1/earthquakes", nil)
		require.Equal(t, http.StatusOK, w.Code, "request %d should pass", i+1)
	}

	w := doRequest(t, s, http.MethodGet, "/api/v1/earthquakes", nil)
	require.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "リクエストが多すぎます。しばらくしてから再試行してください。", errorDetail(t, w))
}

func TestRateLimit_PerClient(t *testing.T) {
	f := newFixture()
	f.cfg.RateLimitRPS = 0.001
	f.cfg.RateLimitBurst = 1
	s := f.server()

	w := doRequest(t, s, http.MethodGet, "/api/v1/earthquakes", nil)
	require.Equal(t, http.StatusOK, w.Code)
	w = doRequest(t, s, http.MethodGet, "/api/v1/earthquakes", nil)
	require.Equal(t, http.StatusTooManyRequests, w.Code)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/earthquakes", nil)
	req.RemoteAddr = "198.51.100.9:11111"
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRateLimit_ExemptRoutes(t *testing.T) {
	f := newFixture()
	f.cfg.RateLimitRPS = 0.001
	f.cfg.RateLimitBurst = 1
	s := f.server()

	w := doRequest(t, s, http.MethodGet, "/api/v1/earthquakes", nil)
	require.Equal(t, http.StatusOK, w.Code)
	w = doRequest(t, s, http.MethodGet, "/api/v1/earthquakes", nil)
	require.Equal(t, http.StatusTooManyRequests, w.Code)

	for _, path := range []string{"/healthz", "/readyz", "/", "/api/v1/languages", "/api/v1/shelters/types", "/api/v1/safety-guide/types"} {
		w = doRequest(t, s, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusOK, w.Code, "exempt route %s must not be limited", path)
	}
}

func TestClientLimiter_BoundsTrackedClients(t *testing.T) {
	cl := newClientLimiter(1, 1)

	for i := 0; i < maxTrackedClients; i++ {
		cl.allow(fmt.Sprintf("10.0.%d.%d", i/256, i%256))
	}
	require.Len(t, cl.visitors, maxTrackedClients)

	// All trackers are fresh, so admitting one more forces a full reset.
	cl.allow("192.0.2.1")
	assert.Len(t, cl.visitors, 1)
}

func TestRouteName(t *testing.T) {
	cases := map[string]string{
		"GET /api/v1/earthquakes":        "/api/v1/earthquakes",
		"POST /api/v1/translate":         "/api/v1/translate",
		"GET /api/v1/weather/{areaCode}": "/api/v1/weather/{areaCode}",
		"GET /{$}":                       "/",
		"/metrics":                       "/metrics",
	}
	for pattern, want := range cases {
		assert.Equal(t, want, routeName(pattern), "pattern %q", pattern)
	}
}

func TestClientIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "203.0.113.7:34567"
	assert.Equal(t, "203.0.113.7", clientIP(req))

	req.RemoteAddr = "unix-socket"
	assert.Equal(t, "unix-socket", clientIP(req))
}
