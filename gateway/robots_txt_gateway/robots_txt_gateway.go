package robots_txt_gateway

import (
	"context"
	"fmt"
	"net/url"
	"newsdeck/driver/http_fetch_driver"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/temoto/robotstxt"
)

const (
	robotsCacheSize = 256
	robotsCacheTTL  = time.Hour
)

// RobotsTxtGateway handles fetching and evaluating robots.txt files.
// Implements robots_txt_port.RobotsTxtPort
type RobotsTxtGateway struct {
	driver    *http_fetch_driver.HTTPFetchDriver
	userAgent string
	cache     *expirable.LRU[string, *robotstxt.RobotsData]
}

// NewRobotsTxtGateway creates a new RobotsTxtGateway. Parsed files are kept
// per origin for an hour.
func NewRobotsTxtGateway(driver *http_fetch_driver.HTTPFetchDriver, userAgent string) *RobotsTxtGateway {
	return &RobotsTxtGateway{
		driver:    driver,
		userAgent: userAgent,
		cache:     expirable.NewLRU[string, *robotstxt.RobotsData](robotsCacheSize, nil, robotsCacheTTL),
	}
}

// IsAllowed reports whether agent may fetch pageURL.
func (g *RobotsTxtGateway) IsAllowed(ctx context.Context, pageURL *url.URL, agent string) (bool, error) {
	origin := pageURL.Scheme + "://" + pageURL.Host

	data, ok := g.cache.Get(origin)
	if !ok {
		var err error
		data, err = g.fetch(ctx, origin)
		if err != nil {
			return true, err
		}
		g.cache.Add(origin, data)
	}

	path := pageURL.EscapedPath()
	if path == "" {
		path = "/"
	}
	if pageURL.RawQuery != "" {
		path += "?" + pageURL.RawQuery
	}

	return data.TestAgent(path, agent), nil
}

func (g *RobotsTxtGateway) fetch(ctx context.Context, origin string) (*robotstxt.RobotsData, error) {
	resp, err := g.driver.Get(ctx, origin+"/robots.txt", map[string]string{
		"User-Agent": g.userAgent,
		"Accept":     "text/plain",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch robots.txt: %w", err)
	}

	// 4xx allows everything and 5xx disallows everything.
	data, err := robotstxt.FromStatusAndBytes(resp.StatusCode, resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse robots.txt: %w", err)
	}
	return data, nil
}
