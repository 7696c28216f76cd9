package rest

import (
	"net/http"
	"strings"

	"newsdeck/config"
	"newsdeck/di"
	middleware_custom "newsdeck/middleware"
	"newsdeck/utils/logger"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"
)

const streamPath = "/api/feeds/stream"

func RegisterRoutes(e *echo.Echo, container *di.ApplicationComponents, cfg *config.Config) {
	// 1. Request ID first so every later log line carries it
	e.Use(middleware_custom.RequestIDMiddleware())

	// 2. Recover early
	e.Use(middleware.Recover())

	// 3. CORS
	allowOrigins := cfg.Server.AllowOrigins
	if len(allowOrigins) == 0 {
		allowOrigins = []string{"*"}
	}
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: allowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, "Cache-Control", middleware_custom.RequestIDHeader},
		MaxAge:       86400,
	}))

	// 4. Tracing
	if cfg.Otel.Enabled {
		e.Use(otelecho.Middleware(cfg.Otel.ServiceName, otelecho.WithSkipper(func(c echo.Context) bool {
			return c.Path() == "/health" || c.Path() == "/metrics"
		})))
	}

	// 5. Per-client rate limit
	e.Use(middleware_custom.ClientRateLimitMiddleware(middleware_custom.ClientRateLimitConfig{
		RequestsPerSecond: cfg.RateLimit.ClientRPS,
		Burst:             cfg.RateLimit.ClientBurst,
		SkipPrefixes:      []string{"/health", "/metrics", streamPath},
	}))

	// 6. Logging
	e.Use(middleware_custom.LoggingMiddleware(logger.Logger))

	// 7. Compression last; SSE frames must not be buffered
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{
		Level: 5,
		Skipper: func(c echo.Context) bool {
			return strings.HasPrefix(c.Request().URL.Path, streamPath) ||
				c.Path() == "/health"
		},
	}))

	e.GET("/health", handleHealth)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api")
	registerProxyRoutes(api, container)
	registerReaderRoutes(api, container)
	registerOsintRoutes(api, container)
	registerNewsRoutes(api, container)
	registerFeedRoutes(api, container, cfg)
}

func handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
