package rest

import (
	"net/http"

	"newsdeck/di"
	"newsdeck/utils/errors"
	"newsdeck/utils/logger"

	"github.com/labstack/echo/v4"
)

const (
	proxyCacheControl = "s-maxage=60, stale-while-revalidate=300"
	proxyContentType  = "application/xml"
)

func registerProxyRoutes(api *echo.Group, container *di.ApplicationComponents) {
	api.GET("/proxy", handleProxy(container))
}

func handleProxy(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		rawURL := c.QueryParam("url")
		if rawURL == "" {
			return c.JSON(http.StatusBadRequest, legacyError{Error: "Missing URL parameter"})
		}

		ctx := c.Request().Context()
		feed, err := container.ProxyUsecase.Execute(ctx, rawURL)
		if err != nil {
			if errors.IsValidationError(err) {
				logger.Logger.WarnContext(ctx, "proxy target rejected", "url", rawURL, "error", err)
				return c.JSON(http.StatusBadRequest, legacyError{Error: "Invalid URL parameter", Details: errorDetails(err)})
			}
			logger.Logger.ErrorContext(ctx, "proxy fetch failed", "url", rawURL, "error", err)
			return c.JSON(http.StatusInternalServerError, legacyError{Error: "Failed to fetch RSS feed", Details: errorDetails(err)})
		}

		header := c.Response().Header()
		header.Set("Cache-Control", proxyCacheControl)
		header.Set(echo.HeaderAccessControlAllowOrigin, "*")
		return c.Blob(http.StatusOK, proxyContentType, feed.Body)
	}
}
