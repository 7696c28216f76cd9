package osint_timeline_gateway

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"newsdeck/domain"
	"newsdeck/driver/http_fetch_driver"
	"newsdeck/utils/clock"
	"newsdeck/utils/resilience"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func timelineRSS(n int) string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0"?><rss version="2.0"><channel><title>t</title>`)
	for i := 0; i < n; i++ {
		fmt.Fprintf(&b, `<item><title>post %d</title><description>&lt;p&gt;Post &lt;b&gt;%d&lt;/b&gt;&lt;/p&gt;</description>`+
			`<link>https://nitter.example/Deltaone/status/10%d#m</link><guid>https://nitter.example/Deltaone/status/10%d</guid>`+
			`<pubDate>Mon, 02 Mar 2026 09:%02d:00 GMT</pubDate></item>`, i, i, i, i, i)
	}
	b.WriteString(`</channel></rss>`)
	return b.String()
}

// mirrorFor points a mirror at the test server, keeping the real path layout.
func mirrorFor(t *testing.T, server *httptest.Server, tmpl string, tier domain.MirrorTier) domain.Mirror {
	t.Helper()
	u, err := url.Parse(server.URL)
	require.NoError(t, err)
	return domain.Mirror{Host: u.Host, PathTemplate: tmpl, Tier: tier}
}

func newGateway(server *httptest.Server, c clock.Clock) *OsintTimelineGateway {
	return NewOsintTimelineGateway(
		http_fetch_driver.NewHTTPFetchDriver(server.Client(), 0, 0),
		"Mozilla/5.0 (compatible; NewsDashboard/1.0;)",
		time.Second,
		resilience.CircuitBreakerConfig{FailureThreshold: 2, ResetTimeout: time.Minute},
		c,
	)
}

func TestOsintTimelineGateway_FetchTimeline(t *testing.T) {
	server := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/Deltaone/rss", r.URL.Path)
		_, _ = w.Write([]byte(timelineRSS(12)))
	}))
	defer server.Close()

	g := newGateway(server, clock.NewFakeClock(time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)))
	mirror := mirrorFor(t, server, "/{account}/rss", domain.MirrorTierFallback)

	tweets, err := g.FetchTimeline(context.Background(), mirror, "Deltaone", 10)
	require.NoError(t, err)
	require.Len(t, tweets, 10)

	first := tweets[0]
	assert.Equal(t, "https://nitter.example/Deltaone/status/100", first.ID)
	assert.Equal(t, "Deltaone", first.Author)
	assert.Equal(t, "Post 0", first.Content)
	assert.Equal(t, "https://x.com/Deltaone/status/100", first.URL)
	assert.Equal(t, time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC), first.Timestamp)
}

func TestOsintTimelineGateway_CircuitBreaker(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	fake := clock.NewFakeClock(time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC))
	g := newGateway(server, fake)
	mirror := mirrorFor(t, server, "/twitter/user/{account}", domain.MirrorTierPrimary)

	for i := 0; i < 2; i++ {
		_, err := g.FetchTimeline(context.Background(), mirror, "Pizzint", 10)
		require.Error(t, err)
	}

	_, err := g.FetchTimeline(context.Background(), mirror, "Pizzint", 10)
	assert.ErrorIs(t, err, resilience.ErrCircuitOpen)
	assert.Equal(t, int32(2), calls.Load())

	fake.Advance(time.Minute)
	_, err = g.FetchTimeline(context.Background(), mirror, "Pizzint", 10)
	assert.NotErrorIs(t, err, resilience.ErrCircuitOpen)
	assert.Equal(t, int32(3), calls.Load())
}

func TestCanonicalURL(t *testing.T) {
	tests := []struct {
		name string
		link string
		guid string
		want string
	}{
		{"nitter link", "https://nitter.net/WarMonitor3/status/1790000000000000001#m", "", "https://x.com/WarMonitor3/status/1790000000000000001"},
		{"rsshub link", "https://twitter.com/WarMonitor3/status/42", "", "https://x.com/WarMonitor3/status/42"},
		{"id only in guid", "https://rsshub.app/twitter/user/WarMonitor3", "https://x.com/i/status/77", "https://x.com/WarMonitor3/status/77"},
		{"numeric guid", "", "123456", "https://x.com/WarMonitor3/status/123456"},
		{"no id", "https://nitter.net/WarMonitor3", "abc", "https://x.com/WarMonitor3"},
		{"empty", "", "", "https://x.com/WarMonitor3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanonicalURL("WarMonitor3", tt.link, tt.guid))
		})
	}
}
