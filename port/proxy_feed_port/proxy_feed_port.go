package proxy_feed_port

import (
	"context"
	"net/url"
	"newsdeck/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=proxy_feed_port.go -destination=../../mocks/mock_proxy_feed_port.go -package=mocks

type ProxyFeedPort interface {
	FetchRaw(ctx context.Context, target *url.URL) (*domain.ProxiedFeed, error)
}
