package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"newsdeck/utils/logger"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware(t *testing.T) {
	tests := []struct {
		name            string
		requestIDHeader string
		expectGenerated bool
	}{
		{name: "generates request ID when none provided", expectGenerated: true},
		{name: "uses provided request ID", requestIDHeader: "existing-request-123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/api/topics", nil)
			if tt.requestIDHeader != "" {
				req.Header.Set(RequestIDHeader, tt.requestIDHeader)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var fromContext string
			handler := func(c echo.Context) error {
				if v, ok := c.Request().Context().Value(logger.RequestIDKey).(string); ok {
					fromContext = v
				}
				return c.String(http.StatusOK, "ok")
			}

			require.NoError(t, RequestIDMiddleware()(handler)(c))

			header := rec.Header().Get(RequestIDHeader)
			assert.NotEmpty(t, header)
			assert.Equal(t, header, fromContext)
			if tt.expectGenerated {
				assert.Len(t, header, 36)
			} else {
				assert.Equal(t, tt.requestIDHeader, header)
			}
		})
	}
}

func TestLoggingMiddleware(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	t.Run("logs completion with status", func(t *testing.T) {
		buf.Reset()
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/api/osint", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		err := LoggingMiddleware(log)(func(c echo.Context) error {
			return c.String(http.StatusOK, "ok")
		})(c)

		require.NoError(t, err)
		out := buf.String()
		assert.Contains(t, out, `"msg":"request completed"`)
		assert.Contains(t, out, `"status":200`)
		assert.Contains(t, out, `"path":"/api/osint"`)
	})

	t.Run("handler errors are written and logged", func(t *testing.T) {
		buf.Reset()
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/api/read", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		err := LoggingMiddleware(log)(func(c echo.Context) error {
			return echo.NewHTTPError(http.StatusTeapot, "nope")
		})(c)

		require.NoError(t, err)
		assert.Equal(t, http.StatusTeapot, rec.Code)
		assert.Contains(t, buf.String(), `"status":418`)
		assert.Contains(t, buf.String(), `"msg":"request error"`)
	})

	t.Run("health checks are not logged", func(t *testing.T) {
		buf.Reset()
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		require.NoError(t, LoggingMiddleware(log)(func(c echo.Context) error {
			return c.NoContent(http.StatusOK)
		})(c))
		assert.Empty(t, buf.String())
	})
}

func TestClientRateLimitMiddleware(t *testing.T) {
	e := echo.New()
	mw := ClientRateLimitMiddleware(ClientRateLimitConfig{
		RequestsPerSecond: 0.001,
		Burst:             2,
		SkipPrefixes:      []string{"/api/feeds/stream"},
	})
	ok := func(c echo.Context) error { return c.NoContent(http.StatusOK) }

	call := func(path, ip string) error {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.Header.Set("X-Real-IP", ip)
		return mw(ok)(e.NewContext(req, httptest.NewRecorder()))
	}

	assert.NoError(t, call("/api/osint", "203.0.113.1"))
	assert.NoError(t, call("/api/osint", "203.0.113.1"))

	err := call("/api/osint", "203.0.113.1")
	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusTooManyRequests, httpErr.Code)

	// Other clients and skipped paths are unaffected.
	assert.NoError(t, call("/api/osint", "203.0.113.2"))
	assert.NoError(t, call("/api/feeds/stream", "203.0.113.1"))
}

func TestClientRateLimitMiddleware_Disabled(t *testing.T) {
	e := echo.New()
	mw := ClientRateLimitMiddleware(ClientRateLimitConfig{})
	for i := 0; i < 50; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/osint", nil)
		assert.NoError(t, mw(func(c echo.Context) error { return c.NoContent(http.StatusOK) })(e.NewContext(req, httptest.NewRecorder())))
	}
}

func TestClientIP(t *testing.T) {
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Forwarded-For", "garbage, 198.51.100.7, 10.0.0.1")
	assert.Equal(t, "198.51.100.7", clientIP(e.NewContext(req, httptest.NewRecorder())))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.0.2.10:5555"
	assert.Equal(t, "192.0.2.10", clientIP(e.NewContext(req, httptest.NewRecorder())))
}
