package fetch_article_gateway

import (
	"context"
	"net/url"
	"newsdeck/driver/http_fetch_driver"
	"newsdeck/port/robots_txt_port"
	apperrors "newsdeck/utils/errors"
	"newsdeck/utils/html_parser"
	"newsdeck/utils/logger"
)

// robotsAgent is the product token matched against robots.txt groups.
const robotsAgent = "NewsDeck"

// FetchArticleGateway fetches article pages for the reader.
// Implements fetch_article_port.FetchArticlePort
type FetchArticleGateway struct {
	driver    *http_fetch_driver.HTTPFetchDriver
	userAgent string
	robots    robots_txt_port.RobotsTxtPort
}

// NewFetchArticleGateway creates the gateway. robots may be nil to skip the
// robots.txt check.
func NewFetchArticleGateway(driver *http_fetch_driver.HTTPFetchDriver, userAgent string, robots robots_txt_port.RobotsTxtPort) *FetchArticleGateway {
	return &FetchArticleGateway{
		driver:    driver,
		userAgent: userAgent,
		robots:    robots,
	}
}

func (g *FetchArticleGateway) FetchArticlePage(ctx context.Context, pageURL *url.URL) (string, error) {
	if g.robots != nil {
		allowed, err := g.robots.IsAllowed(ctx, pageURL, robotsAgent)
		if err != nil {
			// An unreachable robots.txt does not block reading.
			logger.Logger.WarnContext(ctx, "robots.txt check failed", "url", pageURL.String(), "error", err)
		} else if !allowed {
			return "", apperrors.ErrDisallowedByRobots
		}
	}

	resp, err := g.driver.Get(ctx, pageURL.String(), map[string]string{
		"User-Agent": g.userAgent,
		"Accept":     "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8",
	})
	if err != nil {
		return "", err
	}

	if !resp.OK() {
		return "", &apperrors.UpstreamStatusError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			URL:        pageURL.String(),
		}
	}

	return html_parser.DecodeToUTF8(resp.Body, resp.ContentType), nil
}
