package rest

import (
	"newsdeck/utils/errors"
	"newsdeck/utils/logger"

	"github.com/labstack/echo/v4"
)

// handleError converts errors to AppContextError responses enriched with
// the request's context.
func handleError(c echo.Context, err error, operation string) error {
	reqContext := requestContext(c)

	var enrichedErr *errors.AppContextError
	if appContextErr, ok := errors.AsAppContextError(err); ok {
		enrichedErr = errors.EnrichWithContext(appContextErr, "rest", "RESTHandler", operation, reqContext)
	} else {
		enrichedErr = errors.NewUnknownContextError("internal server error", "rest", "RESTHandler", operation, err, reqContext)
	}

	logger.Logger.ErrorContext(c.Request().Context(), "REST handler error",
		"error", enrichedErr.Error(),
		"error_code", enrichedErr.Code,
		"layer", enrichedErr.Layer,
		"component", enrichedErr.Component,
		"operation", enrichedErr.Operation,
		"path", c.Request().URL.Path,
		"is_retryable", enrichedErr.IsRetryable(),
	)

	return c.JSON(enrichedErr.HTTPStatusCode(), enrichedErr.ToHTTPResponse())
}

func requestContext(c echo.Context) map[string]interface{} {
	return map[string]interface{}{
		"path":        c.Request().URL.Path,
		"method":      c.Request().Method,
		"remote_addr": c.RealIP(),
		"request_id":  c.Response().Header().Get("X-Request-ID"),
	}
}

// legacyError is the {"error","details"} body the dashboard client expects
// from the proxy, reader and OSINT endpoints.
type legacyError struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// errorDetails returns the innermost message worth showing a client.
func errorDetails(err error) string {
	appErr, ok := errors.AsAppContextError(err)
	if !ok {
		return err.Error()
	}
	if appErr.Cause != nil {
		return errorDetails(appErr.Cause)
	}
	return appErr.Message
}
