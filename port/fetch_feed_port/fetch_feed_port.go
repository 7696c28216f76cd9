package fetch_feed_port

import (
	"context"
	"newsdeck/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=fetch_feed_port.go -destination=../../mocks/mock_fetch_feed_port.go -package=mocks

// FetchFeedPort downloads and normalizes one feed source.
type FetchFeedPort interface {
	FetchFeed(ctx context.Context, source domain.FeedSource) ([]*domain.NewsItem, error)
}
