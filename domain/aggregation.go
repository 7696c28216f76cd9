package domain

import "time"

// AggregationResult is what a feed consumer sees after each cycle.
type AggregationResult struct {
	Items      []*NewsItem `json:"items"`
	Loading    bool        `json:"loading"`
	Error      *string     `json:"error"`
	Generation uint64      `json:"generation"`
	UpdatedAt  time.Time   `json:"updatedAt"`
}

// ErrorMessage returns the error string or "".
func (r AggregationResult) ErrorMessage() string {
	if r.Error == nil {
		return ""
	}
	return *r.Error
}
