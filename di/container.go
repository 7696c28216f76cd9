package di

import (
	"fmt"

	"newsdeck/config"
	"newsdeck/domain"
	"newsdeck/driver/http_fetch_driver"
	"newsdeck/gateway/fetch_article_gateway"
	"newsdeck/gateway/fetch_feed_gateway"
	"newsdeck/gateway/osint_timeline_gateway"
	"newsdeck/gateway/proxy_gateway"
	"newsdeck/gateway/robots_txt_gateway"
	"newsdeck/gateway/source_registry_gateway"
	"newsdeck/port/robots_txt_port"
	"newsdeck/usecase/aggregate_feed_usecase"
	"newsdeck/usecase/osint_usecase"
	"newsdeck/usecase/proxy_usecase"
	"newsdeck/usecase/read_article_usecase"
	"newsdeck/usecase/topic_feed_usecase"
	"newsdeck/usecase/topic_news_usecase"
	"newsdeck/utils/clock"
	"newsdeck/utils/resilience"
	"newsdeck/utils/security"
)

type ApplicationComponents struct {
	ProxyUsecase       *proxy_usecase.ProxyUsecase
	ReadArticleUsecase *read_article_usecase.ReadArticleUsecase
	OsintUsecase       *osint_usecase.OsintUsecase
	TopicFeedUsecase   *topic_feed_usecase.TopicFeedUsecase
	TopicNewsUsecase   *topic_news_usecase.TopicNewsUsecase
}

// NewApplicationComponents loads the source registry and builds the object
// graph. Only registry loading can fail.
func NewApplicationComponents(cfg *config.Config) (*ApplicationComponents, error) {
	registry, err := config.LoadSourceRegistry(cfg.Sources.File)
	if err != nil {
		return nil, fmt.Errorf("load source registry: %w", err)
	}
	return NewApplicationComponentsWithRegistry(cfg, registry), nil
}

func NewApplicationComponentsWithRegistry(cfg *config.Config, registry *config.SourceRegistry) *ApplicationComponents {
	realClock := clock.RealClock{}

	validator := security.NewSSRFValidator()
	validator.SetAllowPrivate(cfg.Proxy.AllowPrivateHosts)

	// Configured sources use the plain client; user-supplied URLs go through
	// the guarded one.
	fetchDriver := http_fetch_driver.NewHTTPFetchDriver(http_fetch_driver.NewHTTPClient(cfg.HTTP), cfg.RateLimit.HostInterval, cfg.HTTP.MaxBodyBytes)
	guardedDriver := fetchDriver.WithClient(http_fetch_driver.NewGuardedHTTPClient(cfg.HTTP, validator))

	sourceRegistryGatewayImpl := source_registry_gateway.NewSourceRegistryGateway(registry)

	// Proxy
	proxyGatewayImpl := proxy_gateway.NewProxyGateway(guardedDriver, cfg.Feed.UserAgent)
	proxyUsecase := proxy_usecase.NewProxyUsecase(validator, proxyGatewayImpl)

	// Reader
	var robots robots_txt_port.RobotsTxtPort
	if cfg.Reader.RespectRobots {
		robots = robots_txt_gateway.NewRobotsTxtGateway(guardedDriver, cfg.Reader.UserAgent)
	}
	fetchArticleGatewayImpl := fetch_article_gateway.NewFetchArticleGateway(guardedDriver, cfg.Reader.UserAgent, robots)
	readArticleUsecase := read_article_usecase.NewReadArticleUsecase(validator, fetchArticleGatewayImpl, cfg.Reader.CacheSize, cfg.Reader.CacheTTL)

	// Feeds
	fetchFeedGatewayImpl := fetch_feed_gateway.NewFetchFeedGateway(fetchDriver, cfg.Feed.UserAgent, cfg.Feed.SourceTimeout, realClock)
	topicAggregator := aggregate_feed_usecase.NewAggregateFeedUsecase(fetchFeedGatewayImpl, aggregate_feed_usecase.Options{
		Kind:            "topic",
		CacheTTL:        cfg.Cache.FeedTTL,
		Concurrency:     cfg.Feed.Concurrency,
		DefaultInterval: cfg.Feed.RefreshInterval,
		MinInterval:     cfg.Feed.MinRefreshInterval,
		Clock:           realClock,
	})
	topicFeedUsecase := topic_feed_usecase.NewTopicFeedUsecase(sourceRegistryGatewayImpl, topicAggregator)

	// Categories cache per category name on top of an uncached aggregator.
	newsAggregator := aggregate_feed_usecase.NewAggregateFeedUsecase(fetchFeedGatewayImpl, aggregate_feed_usecase.Options{
		Kind:        "news",
		Concurrency: cfg.Feed.Concurrency,
		Clock:       realClock,
	})
	topicNewsUsecase := topic_news_usecase.NewTopicNewsUsecase(sourceRegistryGatewayImpl, newsAggregator, cfg.Cache.NewsTTL, realClock)

	// OSINT
	osintTimelineGatewayImpl := osint_timeline_gateway.NewOsintTimelineGateway(
		fetchDriver,
		cfg.Osint.UserAgent,
		cfg.Osint.MirrorTimeout,
		resilience.CircuitBreakerConfig{
			FailureThreshold: cfg.Osint.BreakerThreshold,
			ResetTimeout:     cfg.Osint.BreakerReset,
		},
		realClock,
	)
	osintUsecase := osint_usecase.NewOsintUsecase(osintTimelineGatewayImpl, osint_usecase.Options{
		Accounts:           cfg.Osint.Accounts,
		Mirrors:            domain.BuildMirrors(cfg.Osint.PrimaryHosts, cfg.Osint.FallbackHosts),
		CacheTTL:           cfg.Osint.CacheTTL,
		MaxItemsPerAccount: cfg.Osint.MaxItemsPerAccount,
		MaxItems:           cfg.Osint.MaxItems,
		LiveTimeout:        cfg.Osint.RefreshTimeout,
		Clock:              realClock,
	})

	return &ApplicationComponents{
		ProxyUsecase:       proxyUsecase,
		ReadArticleUsecase: readArticleUsecase,
		OsintUsecase:       osintUsecase,
		TopicFeedUsecase:   topicFeedUsecase,
		TopicNewsUsecase:   topicNewsUsecase,
	}
}
