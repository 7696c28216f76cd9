package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors checked with errors.Is across layers.
var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrTopicNotFound       = errors.New("topic not found")
	ErrUpstreamStatus      = errors.New("upstream returned non-success status")
	ErrUnparseableArticle  = errors.New("unparseable article")
	ErrAllStrategiesFailed = errors.New("all strategies failed")
	ErrBlockedURL          = errors.New("url blocked by policy")
	ErrDisallowedByRobots  = errors.New("disallowed by robots.txt")
)

func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput) || errors.Is(err, ErrBlockedURL)
}

func IsTopicNotFound(err error) bool {
	return errors.Is(err, ErrTopicNotFound)
}

func IsUnparseableArticle(err error) bool {
	return errors.Is(err, ErrUnparseableArticle)
}

// UpstreamStatusError carries the status of a failed upstream response.
type UpstreamStatusError struct {
	StatusCode int
	Status     string
	URL        string
}

func (e *UpstreamStatusError) Error() string {
	return fmt.Sprintf("upstream %s responded %s", e.URL, e.Status)
}

func (e *UpstreamStatusError) Is(target error) bool {
	return target == ErrUpstreamStatus
}

// AsAppContextError extracts an *AppContextError from the error chain.
func AsAppContextError(err error) (*AppContextError, bool) {
	var appErr *AppContextError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
