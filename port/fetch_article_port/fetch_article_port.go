package fetch_article_port

import (
	"context"
	"net/url"
)

//go:generate go run go.uber.org/mock/mockgen -source=fetch_article_port.go -destination=../../mocks/mock_fetch_article_port.go -package=mocks

// FetchArticlePort returns the page HTML decoded to UTF-8.
type FetchArticlePort interface {
	FetchArticlePage(ctx context.Context, pageURL *url.URL) (string, error)
}
