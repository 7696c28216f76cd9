package html_parser

import (
	"fmt"
	"net/url"
	"strings"

	apperrors "newsdeck/utils/errors"

	"codeberg.org/readeck/go-readability/v2"
	"github.com/PuerkitoBio/goquery"
	"github.com/microcosm-cc/bluemonday"
)

// NoiseSelectors match related-content widgets that readability tends to
// keep as body text.
var NoiseSelectors = []string{
	"aside",
	".related-stories",
	".related-content",
	".more-on-this",
	".read-more",
	`[role="complementary"]`,
	".recommended-list",
	"ul.cards",
	".embedded-content",
	".advertisement",
}

// headings containing one of these introduce a list of other articles
var relatedHeadingPhrases = []string{"recommended", "read more", "related"}

// ReadableArticle is the output of ExtractReadable.
type ReadableArticle struct {
	Title       string
	Content     string
	TextContent string
	SiteName    string
}

// ExtractReadable removes noise from an article page, runs readability over
// what is left and returns sanitized HTML plus a plain-text rendering.
// pageURL anchors relative links and may be nil.
func ExtractReadable(rawHTML string, pageURL *url.URL) (*ReadableArticle, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, apperrors.ErrUnparseableArticle
	}

	cleaned, err := PreClean(rawHTML)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrUnparseableArticle, err)
	}

	article, err := readability.FromReader(strings.NewReader(cleaned), pageURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrUnparseableArticle, err)
	}

	var htmlBuf strings.Builder
	if err := article.RenderHTML(&htmlBuf); err != nil {
		return nil, fmt.Errorf("%w: render html: %v", apperrors.ErrUnparseableArticle, err)
	}
	content := strings.TrimSpace(sanitizeArticleHTML(htmlBuf.String()))

	var textBuf strings.Builder
	if err := article.RenderText(&textBuf); err != nil {
		return nil, fmt.Errorf("%w: render text: %v", apperrors.ErrUnparseableArticle, err)
	}
	text := strings.TrimSpace(textBuf.String())

	if content == "" || text == "" {
		return nil, apperrors.ErrUnparseableArticle
	}

	title := strings.TrimSpace(article.Title())
	if title == "" {
		title = ExtractTitle(cleaned)
	}

	return &ReadableArticle{
		Title:       title,
		Content:     content,
		TextContent: text,
		SiteName:    strings.TrimSpace(article.SiteName()),
	}, nil
}

// PreClean drops NoiseSelectors matches and every heading that announces
// related content, together with the list directly after it.
func PreClean(rawHTML string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return "", err
	}

	doc.Find(strings.Join(NoiseSelectors, ", ")).Remove()

	doc.Find("h1, h2, h3, h4, h5, h6").Each(func(_ int, s *goquery.Selection) {
		if !isRelatedHeading(s.Text()) {
			return
		}
		if next := s.Next(); next.Is("ul, ol") {
			next.Remove()
		}
		s.Remove()
	})

	return doc.Html()
}

func isRelatedHeading(text string) bool {
	lower := strings.ToLower(text)
	for _, phrase := range relatedHeadingPhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}

// sanitizeArticleHTML keeps structure, links and images but removes
// scripts, event handlers and unsafe URL schemes.
func sanitizeArticleHTML(raw string) string {
	p := bluemonday.NewPolicy()

	p.AllowElements("article", "section", "div", "p", "span", "br", "hr")
	p.AllowElements("h1", "h2", "h3", "h4", "h5", "h6")
	p.AllowElements("ul", "ol", "li", "dl", "dt", "dd")
	p.AllowElements("blockquote", "pre", "code")
	p.AllowElements("b", "strong", "i", "em", "u", "s", "del", "ins", "mark", "sub", "sup")
	p.AllowElements("table", "thead", "tbody", "tfoot", "tr", "th", "td", "caption")
	p.AllowElements("figure", "figcaption")

	p.AllowStandardURLs()
	p.AllowRelativeURLs(true)
	p.AllowAttrs("href").OnElements("a")
	p.AllowAttrs("src", "alt").OnElements("img")
	p.RequireNoFollowOnLinks(false)
	p.AllowURLSchemes("http", "https", "mailto")

	return p.Sanitize(raw)
}

// ExtractTitle returns <title>, og:title or the first <h1>, in that order.
func ExtractTitle(raw string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		return ""
	}

	if title := strings.TrimSpace(doc.Find("title").First().Text()); title != "" {
		return title
	}
	if og, ok := doc.Find("meta[property='og:title']").First().Attr("content"); ok && strings.TrimSpace(og) != "" {
		return strings.TrimSpace(og)
	}
	return strings.TrimSpace(doc.Find("h1").First().Text())
}
