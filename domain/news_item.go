package domain

import (
	"strings"
	"time"
	"unicode/utf8"
)

const (
	DefaultTitle = "No Title"
	DefaultLink  = "#"
)

// NewsItem is a normalized feed entry. ID is the canonical link.
type NewsItem struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Link        string `json:"link"`
	PubDate     string `json:"pubDate"`
	Source      string `json:"source"`
	Snippet     string `json:"snippet,omitempty"`
	Content     string `json:"content,omitempty"`
	ImageURL    string `json:"imageUrl,omitempty"`
	ReadingTime int    `json:"readingTime,omitempty"`
}

var pubDateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	time.RFC1123Z,
	time.RFC1123,
	time.RFC822Z,
	time.RFC822,
	"Mon, 2 Jan 2006 15:04:05 -0700",
	"Mon, 2 Jan 2006 15:04:05 MST",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParsePubDate parses the ISO-8601 and RFC-822 variants seen in feeds.
func ParsePubDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range pubDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// PublishedAt is the parsed PubDate, zero when unparseable.
func (n *NewsItem) PublishedAt() time.Time {
	t, _ := ParsePubDate(n.PubDate)
	return t
}

// MatchesKeywords reports whether title+snippet contains any keyword,
// case-insensitively, as a plain substring. No keywords matches everything.
func (n *NewsItem) MatchesKeywords(keywords []string) bool {
	if len(keywords) == 0 {
		return true
	}
	haystack := strings.ToLower(n.Title + " " + n.Snippet)
	for _, kw := range keywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw == "" {
			continue
		}
		if strings.Contains(haystack, kw) {
			return true
		}
	}
	return false
}

// TopicNews is the headline list for one category or the interleaved Top view.
type TopicNews struct {
	Items []*NewsItem `json:"items"`
	Topic string      `json:"topic"`
}

// ReadingTimeMinutes estimates reading time from the snippet at 200
// characters per minute, never less than one.
func ReadingTimeMinutes(snippet string) int {
	n := utf8.RuneCountInString(snippet)
	minutes := (n + 199) / 200
	if minutes < 1 {
		return 1
	}
	return minutes
}
