package rest

import (
	"net/http"
	"strings"

	"newsdeck/config"
	"newsdeck/di"
	"newsdeck/utils/errors"

	"github.com/labstack/echo/v4"
)

func registerFeedRoutes(api *echo.Group, container *di.ApplicationComponents, cfg *config.Config) {
	api.GET("/topics", handleListTopics(container))
	api.GET("/feeds", handleTopicFeed(container))
	api.GET("/feeds/stream", handleTopicFeedStream(container, cfg))
}

func handleListTopics(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		topics, err := container.TopicFeedUsecase.ListTopics(c.Request().Context())
		if err != nil {
			return handleError(c, err, "list_topics")
		}
		return c.JSON(http.StatusOK, map[string]interface{}{"topics": topics})
	}
}

func handleTopicFeed(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		topic := c.QueryParam("topic")
		if topic == "" {
			return handleValidationError(c, "topic parameter is required", "topic", topic)
		}

		result, err := container.TopicFeedUsecase.Aggregate(c.Request().Context(), topic, keywordsParam(c))
		if err != nil {
			return handleError(c, err, "topic_feed")
		}
		return c.JSON(http.StatusOK, result)
	}
}

// keywordsParam returns nil when the query has no keywords parameter, so
// the topic's configured keywords apply. An empty value disables filtering.
func keywordsParam(c echo.Context) []string {
	params := c.QueryParams()
	if !params.Has("keywords") {
		return nil
	}

	keywords := []string{}
	for _, kw := range strings.Split(params.Get("keywords"), ",") {
		if kw = strings.TrimSpace(kw); kw != "" {
			keywords = append(keywords, kw)
		}
	}
	return keywords
}

func handleValidationError(c echo.Context, message string, field string, value interface{}) error {
	reqContext := requestContext(c)
	reqContext["field"] = field
	reqContext["value"] = value
	validationErr := errors.NewValidationContextError(message, "rest", "RESTHandler", "validateInput", reqContext)
	return c.JSON(validationErr.HTTPStatusCode(), validationErr.ToHTTPResponse())
}
