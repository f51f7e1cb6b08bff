package middleware_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/require"

	"github.com/Liam44/Dios-sub002/internal/middleware"
)

// serveLogged runs h behind the SlogLogger middleware and returns the single
// JSON log line it wrote.
func serveLogged(t *testing.T, h http.HandlerFunc, req *http.Request) map[string]any {
	t.Helper()

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	rec := httptest.NewRecorder()
	middleware.NewSlogLogger(logger)(h).ServeHTTP(rec, req)

	var logEntry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &logEntry))
	return logEntry
}

// TestSlogLogger_logsRequestFields verifies that the SlogLogger middleware
// writes a structured JSON log line containing method, path, status, size,
// duration, and the request ID placed in context by chi's RequestID middleware.
func TestSlogLogger_logsRequestFields(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)

	// Simulate what chimiddleware.RequestID does: inject a known ID into context.
	ctx := context.WithValue(req.Context(), chimiddleware.RequestIDKey, "test-req-id")
	req = req.WithContext(ctx)

	logEntry := serveLogged(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	}, req)

	require.Equal(t, "INFO", logEntry["level"])
	require.Equal(t, "GET", logEntry["method"])
	require.Equal(t, "/healthz", logEntry["path"])
	require.EqualValues(t, http.StatusOK, logEntry["status"])
	require.EqualValues(t, 2, logEntry["bytes"])
	require.Equal(t, "test-req-id", logEntry["request_id"])
	require.NotNil(t, logEntry["duration_ms"])
}

// TestSlogLogger_implicitOK verifies that a handler which never calls
// WriteHeader is logged as 200.
func TestSlogLogger_implicitOK(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/addresses", nil)

	logEntry := serveLogged(t, func(w http.ResponseWriter, r *http.Request) {}, req)

	require.EqualValues(t, http.StatusOK, logEntry["status"])
}

func TestSlogLogger_levelFollowsStatus(t *testing.T) {
	tests := []struct {
		status int
		level  string
	}{
		{http.StatusSeeOther, "INFO"},
		{http.StatusNotFound, "WARN"},
		{http.StatusInternalServerError, "ERROR"},
	}
	for _, tc := range tests {
		t.Run(http.StatusText(tc.status), func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/addresses/x/listing", nil)

			logEntry := serveLogged(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
			}, req)

			require.Equal(t, tc.level, logEntry["level"])
		})
	}
}
