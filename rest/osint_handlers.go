package rest

import (
	"net/http"

	"newsdeck/di"
	"newsdeck/utils/logger"

	"github.com/labstack/echo/v4"
)

func registerOsintRoutes(api *echo.Group, container *di.ApplicationComponents) {
	api.GET("/osint", handleOsint(container))
}

func handleOsint(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		feed, err := container.OsintUsecase.GetLatest(ctx)
		if err != nil {
			logger.Logger.ErrorContext(ctx, "osint refresh failed", "error", err)
			return c.JSON(http.StatusInternalServerError, legacyError{Error: "Failed to refresh OSINT data"})
		}

		c.Response().Header().Set("X-Osint-Origin", string(feed.Origin))
		return c.JSON(http.StatusOK, feed)
	}
}
