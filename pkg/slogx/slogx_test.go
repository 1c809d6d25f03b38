package slogx_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aussiebroadwan/iresident/pkg/idx"
	"github.com/aussiebroadwan/iresident/pkg/slogx"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	require.Equal(t, slog.LevelDebug, slogx.ParseLevel("DEBUG"))
	require.Equal(t, slog.LevelWarn, slogx.ParseLevel("warning"))
	require.Equal(t, slog.LevelError, slogx.ParseLevel("error"))
	require.Equal(t, slog.LevelInfo, slogx.ParseLevel("bogus"))
}

func TestFromContextFallsBackToDefault(t *testing.T) {
	require.Equal(t, slog.Default(), slogx.FromContext(context.Background()))
}

func TestHTTPMiddleware(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	var sawLogger bool
	h := slogx.HTTPMiddleware(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sawLogger = slogx.FromContext(r.Context()) != slog.Default()
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("nope"))
	}))

	req := httptest.NewRequest(http.MethodGet, "/usuarios/9", nil)
	req.Header.Set(slogx.RequestIDHeader, "req-123")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.True(t, sawLogger)
	require.Equal(t, "req-123", rec.Header().Get(slogx.RequestIDHeader))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "http_request", entry["msg"])
	require.Equal(t, "WARN", entry["level"])
	require.Equal(t, "req-123", entry["req_id"])
	require.EqualValues(t, 404, entry["status"])
	require.EqualValues(t, 4, entry["bytes"])
}

func TestHTTPMiddlewareGeneratesRequestID(t *testing.T) {
	h := slogx.HTTPMiddleware(slog.New(slog.DiscardHandler))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/livez", nil))
	require.Len(t, rec.Header().Get(slogx.RequestIDHeader), 26)
}

func TestHTTPMiddlewareRejectsUnsafeRequestIDs(t *testing.T) {
	h := slogx.HTTPMiddleware(slog.New(slog.DiscardHandler))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	tests := []struct {
		name string
		in   string
		keep bool
	}{
		{"uuid", "7f9c2d1e-5b7a-4c3e-9f21-0a1b2c3d4e5f", true},
		{"trace style", "svc.gw:01J9Z_abc", true},
		{"at limit", strings.Repeat("a", slogx.MaxRequestIDLen), true},
		{"too long", strings.Repeat("a", slogx.MaxRequestIDLen+1), false},
		{"whitespace", "req 123", false},
		{"log injection", "abc\",\"level\":\"ERROR", false},
		{"non ascii", "solicitud-ñ", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/livez", nil)
			req.Header.Set(slogx.RequestIDHeader, tt.in)
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			got := rec.Header().Get(slogx.RequestIDHeader)
			if tt.keep {
				require.Equal(t, tt.in, got)
				return
			}
			require.NotEqual(t, tt.in, got)
			_, err := idx.Parse(got)
			require.NoError(t, err)
		})
	}
}
