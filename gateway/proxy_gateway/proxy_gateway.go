package proxy_gateway

import (
	"context"
	"net/url"
	"newsdeck/domain"
	"newsdeck/driver/http_fetch_driver"
	apperrors "newsdeck/utils/errors"
)

// ProxyGateway performs the single upstream GET behind /api/proxy.
// Implements proxy_feed_port.ProxyFeedPort
type ProxyGateway struct {
	driver    *http_fetch_driver.HTTPFetchDriver
	userAgent string
}

func NewProxyGateway(driver *http_fetch_driver.HTTPFetchDriver, userAgent string) *ProxyGateway {
	return &ProxyGateway{driver: driver, userAgent: userAgent}
}

func (g *ProxyGateway) FetchRaw(ctx context.Context, target *url.URL) (*domain.ProxiedFeed, error) {
	resp, err := g.driver.Get(ctx, target.String(), map[string]string{
		"User-Agent": g.userAgent,
	})
	if err != nil {
		return nil, err
	}

	if !resp.OK() {
		return nil, &apperrors.UpstreamStatusError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			URL:        target.String(),
		}
	}

	return &domain.ProxiedFeed{
		Body:        resp.Body,
		ContentType: resp.ContentType,
		StatusCode:  resp.StatusCode,
	}, nil
}
