package osint_timeline_port

import (
	"context"
	"newsdeck/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=osint_timeline_port.go -destination=../../mocks/mock_osint_timeline_port.go -package=mocks

// OsintTimelinePort reads one account's recent posts from one mirror.
type OsintTimelinePort interface {
	FetchTimeline(ctx context.Context, mirror domain.Mirror, account string, limit int) ([]*domain.OsintTweet, error)
}
