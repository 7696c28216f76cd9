// Package feed_parser turns RSS/Atom documents into normalized news items.
package feed_parser

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"newsdeck/domain"
	"newsdeck/utils/html_parser"

	"github.com/mmcdole/gofeed"
)

// ParseFeed parses an RSS, Atom or JSON feed document.
func ParseFeed(xml string) (*gofeed.Feed, error) {
	if strings.TrimSpace(xml) == "" {
		return nil, fmt.Errorf("parse feed: empty document")
	}
	feed, err := gofeed.NewParser().ParseString(xml)
	if err != nil {
		return nil, fmt.Errorf("parse feed: %w", err)
	}
	return feed, nil
}

// Parse normalizes every item of the document in document order. Items
// without a usable date are stamped with now.
func Parse(xml string, sourceName string, now time.Time) ([]*domain.NewsItem, error) {
	feed, err := ParseFeed(xml)
	if err != nil {
		return nil, err
	}

	items := make([]*domain.NewsItem, 0, len(feed.Items))
	for _, it := range feed.Items {
		if it == nil {
			continue
		}
		items = append(items, normalize(it, sourceName, now))
	}
	return items, nil
}

func normalize(it *gofeed.Item, sourceName string, now time.Time) *domain.NewsItem {
	title := strings.TrimSpace(it.Title)
	if title == "" {
		title = domain.DefaultTitle
	}

	link := strings.TrimSpace(it.Link)
	if link == "" {
		link = domain.DefaultLink
	}

	pubDate := PublishedTime(it, now).Format(time.RFC3339)

	body := it.Content
	if strings.TrimSpace(body) == "" {
		body = it.Description
	}

	snippetSource := it.Description
	if strings.TrimSpace(snippetSource) == "" {
		snippetSource = body
	}

	item := &domain.NewsItem{
		Title:    title,
		Link:     link,
		PubDate:  pubDate,
		Source:   sourceName,
		Snippet:  html_parser.Snippet(snippetSource),
		Content:  body,
		ImageURL: ImageURL(it),
	}
	item.ID = itemID(item, it.GUID)
	return item
}

// PublishedTime is the item's published, else updated, else now; in UTC.
func PublishedTime(it *gofeed.Item, now time.Time) time.Time {
	switch {
	case it.PublishedParsed != nil && !it.PublishedParsed.IsZero():
		return it.PublishedParsed.UTC()
	case it.UpdatedParsed != nil && !it.UpdatedParsed.IsZero():
		return it.UpdatedParsed.UTC()
	default:
		return now.UTC()
	}
}

// itemID is the link. Items without one fall back to the guid and then to a
// content hash, so a feed of linkless items does not collapse to a single id.
func itemID(item *domain.NewsItem, guid string) string {
	if item.Link != domain.DefaultLink {
		return item.Link
	}
	if guid = strings.TrimSpace(guid); guid != "" {
		return guid
	}
	sum := sha256.Sum256([]byte(item.Source + "\x00" + item.Title + "\x00" + item.PubDate))
	return "urn:newsdeck:" + hex.EncodeToString(sum[:8])
}

// ImageURL picks the first image from enclosures, media RSS, the item image
// or an <img> in the body.
func ImageURL(it *gofeed.Item) string {
	for _, enc := range it.Enclosures {
		if enc != nil && enc.URL != "" && strings.HasPrefix(strings.ToLower(enc.Type), "image/") {
			return enc.URL
		}
	}

	if media, ok := it.Extensions["media"]; ok {
		for _, name := range []string{"content", "thumbnail"} {
			for _, e := range media[name] {
				if u := e.Attrs["url"]; u != "" {
					return u
				}
			}
		}
		for _, group := range media["group"] {
			for _, e := range group.Children["content"] {
				if u := e.Attrs["url"]; u != "" {
					return u
				}
			}
		}
	}

	if it.Image != nil && it.Image.URL != "" {
		return it.Image.URL
	}

	if src := html_parser.FirstImageSrc(it.Content); src != "" {
		return src
	}
	return html_parser.FirstImageSrc(it.Description)
}
