package middleware_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"valorant-analytics/internal/middleware"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestRequestID(t *testing.T) {
	var logs bytes.Buffer
	logger := zerolog.New(&logs)

	var seen string
	handler := middleware.RequestID(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = middleware.GetRequestID(r.Context())
		zerolog.Ctx(r.Context()).Info().Msg("inside")
		w.WriteHeader(http.StatusTeapot)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/matches/m1", nil)
	req.Header.Set("X-Request-ID", "req-1")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, "req-1", seen)
	require.Equal(t, "req-1", rec.Header().Get("X-Request-ID"))
	require.Contains(t, logs.String(), `"request_id":"req-1"`)
	require.Contains(t, logs.String(), `"status":418`)
	require.Contains(t, logs.String(), `"message":"inside"`)
}

func TestRequestIDGenerated(t *testing.T) {
	handler := middleware.RequestID(zerolog.Nop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Len(t, rec.Header().Get("X-Request-ID"), 36)
}
