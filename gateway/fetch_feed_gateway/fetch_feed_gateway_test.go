package fetch_feed_gateway

import (
	"context"
	"net/http"
	"net/http/httptest"
	"newsdeck/domain"
	"newsdeck/driver/http_fetch_driver"
	"newsdeck/utils/clock"
	apperrors "newsdeck/utils/errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleRSS = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>Wire</title>
    <item>
      <title>Markets open higher</title>
      <link>https://wire.example.com/a</link>
      <description>&lt;p&gt;Stocks &lt;b&gt;rose&lt;/b&gt; early.&lt;/p&gt;</description>
      <pubDate>Mon, 02 Mar 2026 09:30:00 GMT</pubDate>
    </item>
    <item>
      <title>Undated item</title>
      <link>https://wire.example.com/b</link>
    </item>
  </channel>
</rss>`

func TestFetchFeedGateway_FetchFeed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/rss":
			w.Header().Set("Content-Type", "application/rss+xml")
			_, _ = w.Write([]byte(sampleRSS))
		case "/slow":
			time.Sleep(200 * time.Millisecond)
			_, _ = w.Write([]byte(sampleRSS))
		case "/garbage":
			_, _ = w.Write([]byte("this is not xml"))
		default:
			w.WriteHeader(http.StatusBadGateway)
		}
	}))
	defer server.Close()

	now := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
	driver := http_fetch_driver.NewHTTPFetchDriver(server.Client(), 0, 0)
	gateway := NewFetchFeedGateway(driver, "NewsDeck/1.0 (Command Center)", 50*time.Millisecond, clock.NewFakeClock(now))

	t.Run("parses and normalizes items", func(t *testing.T) {
		items, err := gateway.FetchFeed(context.Background(), domain.FeedSource{ID: "w", Name: "Wire", URL: server.URL + "/rss"})
		require.NoError(t, err)
		require.Len(t, items, 2)

		assert.Equal(t, "Markets open higher", items[0].Title)
		assert.Equal(t, "Wire", items[0].Source)
		assert.Equal(t, "Stocks rose early.", items[0].Snippet)
		assert.Equal(t, "2026-03-02T09:30:00Z", items[0].PubDate)
		assert.Equal(t, now.Format(time.RFC3339), items[1].PubDate)
	})

	t.Run("non-2xx", func(t *testing.T) {
		_, err := gateway.FetchFeed(context.Background(), domain.FeedSource{Name: "Down", URL: server.URL + "/down"})
		assert.ErrorIs(t, err, apperrors.ErrUpstreamStatus)
	})

	t.Run("malformed document", func(t *testing.T) {
		_, err := gateway.FetchFeed(context.Background(), domain.FeedSource{Name: "Bad", URL: server.URL + "/garbage"})
		assert.Error(t, err)
	})

	t.Run("per-source timeout", func(t *testing.T) {
		_, err := gateway.FetchFeed(context.Background(), domain.FeedSource{Name: "Slow", URL: server.URL + "/slow"})
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})
}
