package httpx_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aussiebroadwan/iresident/pkg/httpx"
	"github.com/stretchr/testify/require"
)

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func serveFrom(h http.Handler, addr string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = addr
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestIPKeyExtractor(t *testing.T) {
	t.Run("extracts from RemoteAddr", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "192.168.1.1:12345"
		require.Equal(t, "192.168.1.1", httpx.IPKeyExtractor(req))
	})

	t.Run("prefers X-Forwarded-For", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "192.168.1.1:12345"
		req.Header.Set("X-Forwarded-For", "203.0.113.1, 192.168.1.1")
		require.Equal(t, "203.0.113.1", httpx.IPKeyExtractor(req))
	})

	t.Run("uses X-Real-IP if X-Forwarded-For absent", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "192.168.1.1:12345"
		req.Header.Set("X-Real-IP", "203.0.113.2")
		require.Equal(t, "203.0.113.2", httpx.IPKeyExtractor(req))
	})
}

func TestRateLimitByIP(t *testing.T) {
	limited := httpx.RateLimitByIP(httpx.RateLimitConfig{
		RequestsPerWindow: 2,
		Window:            time.Minute,
		Burst:             2,
	})(okHandler)

	for range 2 {
		require.Equal(t, http.StatusOK, serveFrom(limited, "192.168.1.1:12345").Code)
	}

	rec := serveFrom(limited, "192.168.1.1:12345")
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	require.NotEmpty(t, rec.Header().Get("Retry-After"))
	require.Equal(t, "2", rec.Header().Get("X-RateLimit-Limit"))
	require.Equal(t, "1m0s", rec.Header().Get("X-RateLimit-Window"))
	require.Contains(t, rec.Body.String(), "rate_limit_exceeded")

	// a second client has its own bucket
	require.Equal(t, http.StatusOK, serveFrom(limited, "192.168.1.2:12345").Code)
}

func TestRateLimitAllowsWhenKeyMissing(t *testing.T) {
	limited := httpx.RateLimitMiddleware(
		httpx.RateLimitConfig{RequestsPerWindow: 1, Window: time.Minute, Burst: 1},
		func(*http.Request) string { return "" },
	)(okHandler)

	for range 3 {
		require.Equal(t, http.StatusOK, serveFrom(limited, "").Code)
	}
}

func TestRateLimitProfiles(t *testing.T) {
	for name, cfg := range map[string]httpx.RateLimitConfig{
		"strict": httpx.StrictLimit,
		"write":  httpx.WriteLimit,
		"read":   httpx.ReadLimit,
	} {
		t.Run(name, func(t *testing.T) {
			require.Positive(t, cfg.RequestsPerWindow)
			require.Positive(t, cfg.Window)
			require.Positive(t, cfg.Burst)
		})
	}

	require.Less(t, httpx.StrictLimit.RequestsPerWindow, httpx.WriteLimit.RequestsPerWindow)
	require.Less(t, httpx.WriteLimit.RequestsPerWindow, httpx.ReadLimit.RequestsPerWindow)
}
