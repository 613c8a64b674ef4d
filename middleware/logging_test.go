package middleware_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/authkit/middleware"
)

func TestLogging(t *testing.T) {
	t.Parallel()

	t.Run("emits one structured line per request", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := slog.New(slog.NewJSONHandler(&buf, nil))

		handler := middleware.Logging(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTeapot)
		}))

		r := httptest.NewRequest(http.MethodPost, "/login", nil)
		r.RemoteAddr = "192.0.2.10:5432"
		handler.ServeHTTP(httptest.NewRecorder(), r)

		out := buf.String()
		assert.Contains(t, out, `"msg":"request completed"`)
		assert.Contains(t, out, `"method":"POST"`)
		assert.Contains(t, out, `"path":"/login"`)
		assert.Contains(t, out, `"status_code":418`)
		assert.Contains(t, out, `"client_ip":"192.0.2.10"`)
		assert.Contains(t, out, `"duration"`)
	})

	t.Run("includes the request ID when present", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := slog.New(slog.NewJSONHandler(&buf, nil))

		handler := middleware.RequestIDWithConfig(middleware.RequestIDConfig{
			Generator: func() string { return "req-42" },
		})(middleware.Logging(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})))

		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Contains(t, buf.String(), `"request_id":"req-42"`)
	})

	t.Run("slow requests log at warning level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := slog.New(slog.NewJSONHandler(&buf, nil))

		handler := middleware.LoggingWithConfig(middleware.LoggingConfig{
			Logger:               log,
			SlowRequestThreshold: time.Nanosecond,
		})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(time.Millisecond)
		}))

		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Contains(t, buf.String(), `"level":"WARN"`)
	})

	t.Run("skip suppresses the log line", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := slog.New(slog.NewJSONHandler(&buf, nil))

		handler := middleware.LoggingWithConfig(middleware.LoggingConfig{
			Logger: log,
			Skip:   func(r *http.Request) bool { return r.URL.Path == "/health" },
		})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))
		assert.Empty(t, buf.String())
	})
}
