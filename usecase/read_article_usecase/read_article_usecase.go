package read_article_usecase

import (
	"context"
	"strings"
	"time"

	"newsdeck/domain"
	"newsdeck/port/fetch_article_port"
	"newsdeck/port/url_validator_port"
	apperrors "newsdeck/utils/errors"
	"newsdeck/utils/html_parser"
	"newsdeck/utils/logger"
	"newsdeck/utils/metrics"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

const cacheName = "reader"

// ReadArticleUsecase turns an article URL into a reader view.
type ReadArticleUsecase struct {
	validator url_validator_port.URLValidatorPort
	fetcher   fetch_article_port.FetchArticlePort
	cache     *expirable.LRU[string, *domain.ExtractedArticle]
}

// NewReadArticleUsecase creates the usecase. cacheSize 0 disables caching of
// extracted articles.
func NewReadArticleUsecase(
	validator url_validator_port.URLValidatorPort,
	fetcher fetch_article_port.FetchArticlePort,
	cacheSize int,
	cacheTTL time.Duration,
) *ReadArticleUsecase {
	u := &ReadArticleUsecase{validator: validator, fetcher: fetcher}
	if cacheSize > 0 {
		u.cache = expirable.NewLRU[string, *domain.ExtractedArticle](cacheSize, nil, cacheTTL)
	}
	return u
}

func (u *ReadArticleUsecase) Execute(ctx context.Context, rawURL string) (*domain.ExtractedArticle, error) {
	if strings.TrimSpace(rawURL) == "" {
		return nil, apperrors.NewValidationContextError("url parameter is required", "usecase", "ReadArticleUsecase", "Execute", nil)
	}

	pageURL, err := u.validator.ValidateRawURL(ctx, rawURL)
	if err != nil {
		return nil, apperrors.NewAppContextError(apperrors.CodeValidation, "url not allowed", "usecase", "ReadArticleUsecase", "Execute", err,
			map[string]interface{}{"url": rawURL})
	}
	key := pageURL.String()

	if u.cache != nil {
		cached, ok := u.cache.Get(key)
		metrics.CacheLookups.WithLabelValues(cacheName, metrics.CacheResult(ok)).Inc()
		if ok {
			copied := *cached
			return &copied, nil
		}
	}

	page, err := u.fetcher.FetchArticlePage(ctx, pageURL)
	if apperrors.IsValidationError(err) {
		return nil, apperrors.NewAppContextError(apperrors.CodeValidation, "redirect not allowed", "usecase", "ReadArticleUsecase", "Execute", err,
			map[string]interface{}{"url": key})
	}
	if err != nil {
		metrics.ExtractionTotal.WithLabelValues(metrics.StatusError).Inc()
		return nil, apperrors.NewExternalAPIContextError("failed to fetch article", "usecase", "ReadArticleUsecase", "Execute", err,
			map[string]interface{}{"url": key})
	}

	readable, err := html_parser.ExtractReadable(page, pageURL)
	if err != nil {
		status := metrics.StatusError
		if apperrors.IsUnparseableArticle(err) {
			status = metrics.StatusEmpty
		}
		metrics.ExtractionTotal.WithLabelValues(status).Inc()
		logger.Logger.WarnContext(ctx, "article extraction failed", "url", key, "error", err)
		return nil, apperrors.NewParseContextError("failed to extract article", "usecase", "ReadArticleUsecase", "Execute", err,
			map[string]interface{}{"url": key})
	}

	article := &domain.ExtractedArticle{
		Title:       readable.Title,
		Content:     readable.Content,
		TextContent: readable.TextContent,
		SiteName:    readable.SiteName,
	}
	metrics.ExtractionTotal.WithLabelValues(metrics.StatusSuccess).Inc()

	if u.cache != nil {
		stored := *article
		u.cache.Add(key, &stored)
	}
	return article, nil
}
