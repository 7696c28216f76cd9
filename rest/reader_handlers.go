package rest

import (
	"net/http"

	"newsdeck/di"
	"newsdeck/utils/errors"
	"newsdeck/utils/logger"

	"github.com/labstack/echo/v4"
)

func registerReaderRoutes(api *echo.Group, container *di.ApplicationComponents) {
	api.GET("/read", handleReadArticle(container))
}

func handleReadArticle(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		rawURL := c.QueryParam("url")
		if rawURL == "" {
			return c.JSON(http.StatusBadRequest, legacyError{Error: "Missing URL parameter"})
		}

		ctx := c.Request().Context()
		article, err := container.ReadArticleUsecase.Execute(ctx, rawURL)
		if err != nil {
			if errors.IsValidationError(err) {
				return c.JSON(http.StatusBadRequest, legacyError{Error: "Invalid URL parameter", Details: errorDetails(err)})
			}
			logger.Logger.ErrorContext(ctx, "article read failed", "url", rawURL, "error", err)
			return c.JSON(http.StatusInternalServerError, legacyError{Error: "Failed to read article", Details: errorDetails(err)})
		}

		return c.JSON(http.StatusOK, article)
	}
}
