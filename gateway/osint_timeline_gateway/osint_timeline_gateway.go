package osint_timeline_gateway

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"
	"time"

	"newsdeck/domain"
	"newsdeck/driver/http_fetch_driver"
	"newsdeck/utils/clock"
	apperrors "newsdeck/utils/errors"
	"newsdeck/utils/feed_parser"
	"newsdeck/utils/html_parser"
	"newsdeck/utils/metrics"
	"newsdeck/utils/otel"
	"newsdeck/utils/resilience"

	"github.com/google/uuid"
	"github.com/mmcdole/gofeed"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var statusIDPattern = regexp.MustCompile(`/status(?:es)?/(\d+)`)

// OsintTimelineGateway reads account timelines from RSSHub and Nitter
// mirrors. Each mirror host has its own circuit breaker.
// Implements osint_timeline_port.OsintTimelinePort
type OsintTimelineGateway struct {
	driver     *http_fetch_driver.HTTPFetchDriver
	userAgent  string
	timeout    time.Duration
	clock      clock.Clock
	breakerCfg resilience.CircuitBreakerConfig

	mu       sync.Mutex
	breakers map[string]*resilience.CircuitBreaker
}

func NewOsintTimelineGateway(
	driver *http_fetch_driver.HTTPFetchDriver,
	userAgent string,
	timeout time.Duration,
	breakerCfg resilience.CircuitBreakerConfig,
	c clock.Clock,
) *OsintTimelineGateway {
	if c == nil {
		c = clock.RealClock{}
	}
	return &OsintTimelineGateway{
		driver:     driver,
		userAgent:  userAgent,
		timeout:    timeout,
		clock:      c,
		breakerCfg: breakerCfg,
		breakers:   make(map[string]*resilience.CircuitBreaker),
	}
}

func (g *OsintTimelineGateway) breaker(host string) *resilience.CircuitBreaker {
	g.mu.Lock()
	defer g.mu.Unlock()

	cb, ok := g.breakers[host]
	if !ok {
		cb = resilience.NewCircuitBreaker(host, g.breakerCfg, g.clock)
		g.breakers[host] = cb
	}
	return cb
}

// FetchTimeline returns at most limit posts of account from mirror.
func (g *OsintTimelineGateway) FetchTimeline(ctx context.Context, mirror domain.Mirror, account string, limit int) ([]*domain.OsintTweet, error) {
	ctx, span := otel.Tracer().Start(ctx, "osint.FetchTimeline", trace.WithAttributes(
		attribute.String("osint.mirror", mirror.Host),
		attribute.String("osint.tier", mirror.Tier.String()),
		attribute.String("osint.account", account),
	))
	defer span.End()

	var tweets []*domain.OsintTweet
	err := g.breaker(mirror.Host).Execute(ctx, func(ctx context.Context) error {
		feed, err := g.fetchFeed(ctx, mirror.URLFor(account))
		if err != nil {
			return err
		}
		tweets = g.toTweets(feed, account, limit)
		return nil
	})

	status := metrics.StatusSuccess
	switch {
	case errors.Is(err, resilience.ErrCircuitOpen):
		status = metrics.StatusSkipped
	case err != nil:
		status = metrics.StatusError
	case len(tweets) == 0:
		status = metrics.StatusEmpty
	}
	metrics.MirrorFetchTotal.WithLabelValues(mirror.Host, mirror.Tier.String(), status).Inc()

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("mirror %s: %w", mirror.Host, err)
	}
	span.SetAttributes(attribute.Int("osint.items", len(tweets)))
	return tweets, nil
}

func (g *OsintTimelineGateway) fetchFeed(ctx context.Context, target string) (*gofeed.Feed, error) {
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	resp, err := g.driver.Get(ctx, target, map[string]string{
		"User-Agent": g.userAgent,
		"Accept":     "application/rss+xml, application/xml;q=0.9, */*;q=0.8",
	})
	if err != nil {
		return nil, err
	}
	if !resp.OK() {
		return nil, &apperrors.UpstreamStatusError{StatusCode: resp.StatusCode, Status: resp.Status, URL: target}
	}

	return feed_parser.ParseFeed(string(resp.Body))
}

func (g *OsintTimelineGateway) toTweets(feed *gofeed.Feed, account string, limit int) []*domain.OsintTweet {
	now := g.clock.Now()
	tweets := make([]*domain.OsintTweet, 0, min(len(feed.Items), limit))
	for _, it := range feed.Items {
		if len(tweets) >= limit {
			break
		}
		if it == nil {
			continue
		}
		tweets = append(tweets, &domain.OsintTweet{
			ID:        tweetID(it, account, now),
			Author:    account,
			Content:   tweetContent(it),
			Timestamp: feed_parser.PublishedTime(it, now),
			URL:       CanonicalURL(account, it.Link, it.GUID),
		})
	}
	return tweets
}

func tweetID(it *gofeed.Item, account string, now time.Time) string {
	if guid := strings.TrimSpace(it.GUID); guid != "" {
		return guid
	}
	if link := strings.TrimSpace(it.Link); link != "" {
		return link
	}
	return fmt.Sprintf("%s-%d-%s", account, now.UnixMilli(), uuid.NewString()[:8])
}

func tweetContent(it *gofeed.Item) string {
	for _, raw := range []string{it.Description, it.Content, it.Title} {
		if text := html_parser.StripTags(raw); text != "" {
			return text
		}
	}
	return ""
}

// CanonicalURL rewrites a mirror link to https://x.com/{account}/status/{id},
// taking the status id from the link and then the guid. Without an id the
// profile URL is returned.
func CanonicalURL(account, link, guid string) string {
	for _, candidate := range []string{link, guid} {
		if m := statusIDPattern.FindStringSubmatch(candidate); m != nil {
			return fmt.Sprintf("https://x.com/%s/status/%s", account, m[1])
		}
	}
	if isDigits(strings.TrimSpace(guid)) {
		return fmt.Sprintf("https://x.com/%s/status/%s", account, strings.TrimSpace(guid))
	}
	return domain.ProfileURL(account)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
