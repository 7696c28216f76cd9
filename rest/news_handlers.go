package rest

import (
	"net/http"

	"newsdeck/di"

	"github.com/labstack/echo/v4"
)

func registerNewsRoutes(api *echo.Group, container *di.ApplicationComponents) {
	api.GET("/news", handleTopicNews(container))
}

// handleTopicNews serves /api/news?topic=. An absent or unknown topic yields
// the interleaved Top view.
func handleTopicNews(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		news, err := container.TopicNewsUsecase.Execute(c.Request().Context(), c.QueryParam("topic"))
		if err != nil {
			return handleError(c, err, "topic_news")
		}
		return c.JSON(http.StatusOK, news)
	}
}
