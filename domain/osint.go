package domain

import (
	"net/url"
	"strings"
	"time"
)

// OsintTweet is one post from a tracked social account.
type OsintTweet struct {
	ID        string    `json:"id"`
	Author    string    `json:"author"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
	URL       string    `json:"url"`
}

// OsintOrigin records where an OsintFeed came from.
type OsintOrigin string

const (
	OsintOriginLive  OsintOrigin = "live"
	OsintOriginCache OsintOrigin = "cache"
	OsintOriginMock  OsintOrigin = "mock"
)

type OsintFeed struct {
	Items  []*OsintTweet `json:"items"`
	Origin OsintOrigin   `json:"-"`
}

// MirrorTier orders mirror classes; primary mirrors are tried first.
type MirrorTier int

const (
	MirrorTierPrimary MirrorTier = iota
	MirrorTierFallback
)

func (t MirrorTier) String() string {
	if t == MirrorTierPrimary {
		return "primary"
	}
	return "fallback"
}

// Mirror is a host serving account timelines as RSS. PathTemplate contains
// "{account}".
type Mirror struct {
	Host         string     `json:"host"`
	PathTemplate string     `json:"pathTemplate"`
	Tier         MirrorTier `json:"tier"`
}

const (
	rssHubPathTemplate = "/twitter/user/{account}"
	nitterPathTemplate = "/{account}/rss"
)

// URLFor returns the timeline feed URL for account on this mirror.
func (m Mirror) URLFor(account string) string {
	return "https://" + m.Host + strings.ReplaceAll(m.PathTemplate, "{account}", url.PathEscape(account))
}

// BuildMirrors returns RSSHub hosts as the primary tier followed by Nitter
// hosts as the fallback tier, each in the given order.
func BuildMirrors(rssHubHosts, nitterHosts []string) []Mirror {
	mirrors := make([]Mirror, 0, len(rssHubHosts)+len(nitterHosts))
	for _, h := range rssHubHosts {
		mirrors = append(mirrors, Mirror{Host: h, PathTemplate: rssHubPathTemplate, Tier: MirrorTierPrimary})
	}
	for _, h := range nitterHosts {
		mirrors = append(mirrors, Mirror{Host: h, PathTemplate: nitterPathTemplate, Tier: MirrorTierFallback})
	}
	return mirrors
}

// ProfileURL is the canonical profile link for account.
func ProfileURL(account string) string {
	return "https://x.com/" + account
}

// MockOsintTweets is the fixed illustrative dataset shown during a total
// mirror outage. Timestamps are relative to now.
func MockOsintTweets(now time.Time) []*OsintTweet {
	mock := func(id, author, content string, ago time.Duration) *OsintTweet {
		return &OsintTweet{
			ID:        id,
			Author:    author,
			Content:   content,
			Timestamp: now.Add(-ago).UTC(),
			URL:       ProfileURL(author),
		}
	}
	return []*OsintTweet{
		mock("mock-1", "PolymarketIntel", "BREAKING: Bitcoin > $100k odds hit 32% on Polymarket as ETF inflows surge. 📈 #Crypto", 5*time.Minute),
		mock("mock-2", "Deltaone", "US DEC. CPI MOM +0.3% VS +0.2% EST; YOY +3.4% VS +3.2% EST.", 12*time.Minute),
		mock("mock-3", "WarMonitor3", "Reports of air raid sirens in Kyiv. Air defense active in the region.", 25*time.Minute),
		mock("mock-4", "Sino_Market", "PBoC sets USD/CNY reference rate at 7.1050 vs 7.1020 previous.", 45*time.Minute),
		mock("mock-5", "Pizzint", "New high-res satellite imagery confirms movement of carrier strike group in the Mediterranean.", 60*time.Minute),
		mock("mock-6", "Deltaone", "TESLA SHARES DOWN 2% PREMARKET AFTER PRICE CUTS IN CHINA.", 90*time.Minute),
	}
}
