package html_parser

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// FirstImageSrc returns the src of the first <img> in an HTML fragment.
func FirstImageSrc(raw string) string {
	if !strings.Contains(raw, "<img") {
		return ""
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		return ""
	}
	src, _ := doc.Find("img[src]").First().Attr("src")
	return strings.TrimSpace(src)
}
