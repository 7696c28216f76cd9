package fetch_feed_gateway

import (
	"context"
	"newsdeck/domain"
	"newsdeck/driver/http_fetch_driver"
	"newsdeck/utils/clock"
	apperrors "newsdeck/utils/errors"
	"newsdeck/utils/feed_parser"
	"time"
)

// FetchFeedGateway downloads one source and normalizes its items.
// Implements fetch_feed_port.FetchFeedPort
type FetchFeedGateway struct {
	driver    *http_fetch_driver.HTTPFetchDriver
	userAgent string
	timeout   time.Duration
	clock     clock.Clock
}

func NewFetchFeedGateway(driver *http_fetch_driver.HTTPFetchDriver, userAgent string, timeout time.Duration, c clock.Clock) *FetchFeedGateway {
	if c == nil {
		c = clock.RealClock{}
	}
	return &FetchFeedGateway{
		driver:    driver,
		userAgent: userAgent,
		timeout:   timeout,
		clock:     c,
	}
}

func (g *FetchFeedGateway) FetchFeed(ctx context.Context, source domain.FeedSource) ([]*domain.NewsItem, error) {
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	resp, err := g.driver.Get(ctx, source.URL, map[string]string{
		"User-Agent": g.userAgent,
		"Accept":     "application/rss+xml, application/atom+xml, application/xml;q=0.9, */*;q=0.8",
	})
	if err != nil {
		return nil, err
	}

	if !resp.OK() {
		return nil, &apperrors.UpstreamStatusError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			URL:        source.URL,
		}
	}

	return feed_parser.Parse(string(resp.Body), source.Name, g.clock.Now())
}
