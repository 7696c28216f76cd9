package proxy_usecase

import (
	"context"
	"strings"

	"newsdeck/domain"
	"newsdeck/port/proxy_feed_port"
	"newsdeck/port/url_validator_port"
	apperrors "newsdeck/utils/errors"
	"newsdeck/utils/metrics"
)

// ProxyUsecase relays a single feed fetch on behalf of a browser client.
type ProxyUsecase struct {
	validator url_validator_port.URLValidatorPort
	fetcher   proxy_feed_port.ProxyFeedPort
}

func NewProxyUsecase(validator url_validator_port.URLValidatorPort, fetcher proxy_feed_port.ProxyFeedPort) *ProxyUsecase {
	return &ProxyUsecase{validator: validator, fetcher: fetcher}
}

// Execute fetches rawURL once, without retry. A missing or blocked URL is a
// validation error; any upstream failure is an external API error.
func (u *ProxyUsecase) Execute(ctx context.Context, rawURL string) (*domain.ProxiedFeed, error) {
	if strings.TrimSpace(rawURL) == "" {
		metrics.ProxyRequestsTotal.WithLabelValues(metrics.StatusSkipped).Inc()
		return nil, apperrors.NewValidationContextError("url parameter is required", "usecase", "ProxyUsecase", "Execute", nil)
	}

	target, err := u.validator.ValidateRawURL(ctx, rawURL)
	if err != nil {
		metrics.ProxyRequestsTotal.WithLabelValues(metrics.StatusSkipped).Inc()
		return nil, apperrors.NewAppContextError(apperrors.CodeValidation, "url not allowed", "usecase", "ProxyUsecase", "Execute", err,
			map[string]interface{}{"url": rawURL})
	}

	feed, err := u.fetcher.FetchRaw(ctx, target)
	if apperrors.IsValidationError(err) {
		metrics.ProxyRequestsTotal.WithLabelValues(metrics.StatusSkipped).Inc()
		return nil, apperrors.NewAppContextError(apperrors.CodeValidation, "redirect not allowed", "usecase", "ProxyUsecase", "Execute", err,
			map[string]interface{}{"url": target.String()})
	}
	if err != nil {
		metrics.ProxyRequestsTotal.WithLabelValues(metrics.StatusError).Inc()
		return nil, apperrors.NewExternalAPIContextError("upstream fetch failed", "usecase", "ProxyUsecase", "Execute", err,
			map[string]interface{}{"url": target.String()})
	}

	metrics.ProxyRequestsTotal.WithLabelValues(metrics.StatusSuccess).Inc()
	return feed, nil
}
