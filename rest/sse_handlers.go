package rest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"newsdeck/config"
	"newsdeck/di"
	"newsdeck/utils/logger"

	"github.com/labstack/echo/v4"
)

const defaultHeartbeat = 15 * time.Second

// handleTopicFeedStream streams one SSE data frame per aggregation result
// until the client disconnects.
func handleTopicFeedStream(container *di.ApplicationComponents, cfg *config.Config) echo.HandlerFunc {
	heartbeat := cfg.Server.SSEHeartbeat
	if heartbeat <= 0 {
		heartbeat = defaultHeartbeat
	}

	return func(c echo.Context) error {
		topic := c.QueryParam("topic")
		if topic == "" {
			return handleValidationError(c, "topic parameter is required", "topic", topic)
		}
		interval, err := parseInterval(c.QueryParam("interval"))
		if err != nil {
			return handleValidationError(c, err.Error(), "interval", c.QueryParam("interval"))
		}

		ctx := logger.WithOperation(logger.WithTopic(c.Request().Context(), topic), "feed.stream")
		log := logger.FromContext(ctx)
		watcher, err := container.TopicFeedUsecase.Watch(ctx, topic, keywordsParam(c), interval)
		if err != nil {
			return handleError(c, err, "topic_feed_stream")
		}

		w := c.Response().Writer
		flusher, canFlush := w.(http.Flusher)
		if !canFlush {
			log.ErrorContext(ctx, "response writer doesn't support flushing")
			return c.String(http.StatusInternalServerError, "Streaming not supported")
		}

		header := c.Response().Header()
		header.Set(echo.HeaderContentType, "text/event-stream")
		header.Set("Cache-Control", "no-cache")
		header.Set("Connection", "keep-alive")
		header.Set("X-Accel-Buffering", "no")
		c.Response().WriteHeader(http.StatusOK)
		flusher.Flush()

		ticker := time.NewTicker(heartbeat)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				log.DebugContext(ctx, "SSE connection closed by client")
				return nil

			case <-ticker.C:
				if _, err := c.Response().Write([]byte(": heartbeat\n\n")); err != nil {
					log.InfoContext(ctx, "client disconnected during heartbeat", "error", err)
					return nil
				}
				flusher.Flush()

			case result, ok := <-watcher.Results():
				if !ok {
					return nil
				}
				data, err := json.Marshal(result)
				if err != nil {
					log.ErrorContext(ctx, "failed to marshal aggregation result", "error", err)
					continue
				}
				if _, err := fmt.Fprintf(c.Response(), "data: %s\n\n", data); err != nil {
					log.InfoContext(ctx, "client disconnected", "error", err)
					return nil
				}
				flusher.Flush()
			}
		}
	}
}

// parseInterval accepts a Go duration ("90s") or whole seconds ("90").
// Empty means the server default.
func parseInterval(raw string) (time.Duration, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	if secs, err := strconv.Atoi(raw); err == nil {
		if secs < 0 {
			return 0, fmt.Errorf("interval must not be negative")
		}
		return time.Duration(secs) * time.Second, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid interval %q", raw)
	}
	if d < 0 {
		return 0, fmt.Errorf("interval must not be negative")
	}
	return d, nil
}
