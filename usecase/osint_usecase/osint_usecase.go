package osint_usecase

import (
	"context"
	"sort"
	"time"

	"newsdeck/domain"
	"newsdeck/port/osint_timeline_port"
	"newsdeck/utils/cache"
	"newsdeck/utils/clock"
	apperrors "newsdeck/utils/errors"
	"newsdeck/utils/logger"
	"newsdeck/utils/metrics"
	"newsdeck/utils/otel"
	"newsdeck/utils/strategy"

	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

const (
	cacheKey  = "osint"
	cacheName = "osint"

	strategyLive = "live"
	strategyMock = "mock"
)

type Options struct {
	Accounts           []string
	Mirrors            []domain.Mirror
	CacheTTL           time.Duration
	MaxItemsPerAccount int
	MaxItems           int
	Clock              clock.Clock

	// LiveTimeout bounds the live pass of one refresh. When it runs out the
	// refresh falls back to the mock timeline.
	LiveTimeout time.Duration
}

// OsintUsecase serves the latest posts of the tracked accounts.
type OsintUsecase struct {
	timelines  osint_timeline_port.OsintTimelinePort
	accounts   []string
	mirrors    []domain.Mirror
	perAccount  int
	maxItems    int
	liveTimeout time.Duration
	clock       clock.Clock
	cache       *cache.TTLCache[string, []*domain.OsintTweet]
	group       singleflight.Group
}

func NewOsintUsecase(timelines osint_timeline_port.OsintTimelinePort, opts Options) *OsintUsecase {
	if opts.Clock == nil {
		opts.Clock = clock.RealClock{}
	}
	if opts.MaxItemsPerAccount <= 0 {
		opts.MaxItemsPerAccount = 10
	}
	if opts.MaxItems <= 0 {
		opts.MaxItems = 30
	}
	if opts.LiveTimeout <= 0 {
		opts.LiveTimeout = 70 * time.Second
	}

	mirrors := append([]domain.Mirror(nil), opts.Mirrors...)
	sort.SliceStable(mirrors, func(i, j int) bool { return mirrors[i].Tier < mirrors[j].Tier })

	return &OsintUsecase{
		timelines:  timelines,
		accounts:   append([]string(nil), opts.Accounts...),
		mirrors:    mirrors,
		perAccount:  opts.MaxItemsPerAccount,
		maxItems:    opts.MaxItems,
		liveTimeout: opts.LiveTimeout,
		clock:       opts.Clock,
		cache:       cache.NewTTLCache[string, []*domain.OsintTweet](opts.CacheTTL, opts.Clock),
	}
}

// GetLatest returns the cached feed while it is fresh and refreshes it
// otherwise. Concurrent refreshes share one upstream pass.
func (u *OsintUsecase) GetLatest(ctx context.Context) (*domain.OsintFeed, error) {
	if items, ok := u.cache.Get(cacheKey); ok {
		metrics.CacheLookups.WithLabelValues(cacheName, metrics.ResultHit).Inc()
		return &domain.OsintFeed{Items: append([]*domain.OsintTweet(nil), items...), Origin: domain.OsintOriginCache}, nil
	}
	metrics.CacheLookups.WithLabelValues(cacheName, metrics.ResultMiss).Inc()

	return u.Refresh(ctx)
}

// Refresh bypasses the cache read, fetches every account and stores the
// result when it is non-empty. Concurrent callers join one shared pass, which
// runs detached from any single caller: a caller that goes away only stops
// waiting for it.
func (u *OsintUsecase) Refresh(ctx context.Context) (*domain.OsintFeed, error) {
	if err := ctx.Err(); err != nil {
		return nil, interrupted(err)
	}

	ctx = logger.WithOperation(ctx, "osint.refresh")
	ch := u.group.DoChan(cacheKey, func() (interface{}, error) {
		return u.refresh(context.WithoutCancel(ctx))
	})

	select {
	case <-ctx.Done():
		return nil, interrupted(ctx.Err())
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		feed := res.Val.(*domain.OsintFeed)
		return &domain.OsintFeed{Items: append([]*domain.OsintTweet(nil), feed.Items...), Origin: feed.Origin}, nil
	}
}

func interrupted(cause error) error {
	return apperrors.NewTimeoutContextError("osint refresh interrupted", "usecase", "OsintUsecase", "Refresh", cause, nil)
}

func (u *OsintUsecase) refresh(ctx context.Context) (*domain.OsintFeed, error) {
	ctx, span := otel.Tracer().Start(ctx, "osint.Refresh")
	defer span.End()

	strategies := []strategy.Strategy[[]*domain.OsintTweet]{
		{Name: strategyLive, Run: func(ctx context.Context) ([]*domain.OsintTweet, error) {
			liveCtx, cancel := context.WithTimeout(ctx, u.liveTimeout)
			defer cancel()
			return u.fetchLive(liveCtx)
		}},
		{Name: strategyMock, Run: u.mockTimeline},
	}

	outcome, err := strategy.FirstSuccess(ctx, strategies, strategy.NonEmpty[*domain.OsintTweet])
	if err != nil {
		logger.FromContext(ctx).WarnContext(ctx, "osint refresh produced no items", "error", err)
		return &domain.OsintFeed{Items: []*domain.OsintTweet{}, Origin: domain.OsintOriginLive}, nil
	}

	origin := domain.OsintOriginLive
	if outcome.Strategy == strategyMock {
		origin = domain.OsintOriginMock
		metrics.OsintFallbackTotal.Inc()
		logger.FromContext(ctx).WarnContext(ctx, "all osint mirrors failed, serving fallback data")
	}
	span.SetAttributes(
		attribute.String("osint.origin", string(origin)),
		attribute.Int("osint.items", len(outcome.Value)),
	)

	if len(outcome.Value) > 0 {
		u.cache.Set(cacheKey, outcome.Value)
	}
	return &domain.OsintFeed{Items: outcome.Value, Origin: origin}, nil
}

// fetchLive fetches all accounts concurrently, then sorts newest first and
// keeps the most recent maxItems.
func (u *OsintUsecase) fetchLive(ctx context.Context) ([]*domain.OsintTweet, error) {
	perAccount := make([][]*domain.OsintTweet, len(u.accounts))

	g, gctx := errgroup.WithContext(ctx)
	for i, account := range u.accounts {
		g.Go(func() error {
			perAccount[i] = u.fetchAccount(gctx, account)
			return nil
		})
	}
	_ = g.Wait()

	var tweets []*domain.OsintTweet
	for _, list := range perAccount {
		tweets = append(tweets, list...)
	}
	sort.SliceStable(tweets, func(i, j int) bool {
		return tweets[i].Timestamp.After(tweets[j].Timestamp)
	})
	if len(tweets) > u.maxItems {
		tweets = tweets[:u.maxItems]
	}
	return tweets, nil
}

// fetchAccount walks the mirrors in tier order and keeps the first non-empty
// timeline. An account whose mirrors all fail contributes nothing.
func (u *OsintUsecase) fetchAccount(ctx context.Context, account string) []*domain.OsintTweet {
	strategies := make([]strategy.Strategy[[]*domain.OsintTweet], 0, len(u.mirrors))
	for _, mirror := range u.mirrors {
		strategies = append(strategies, strategy.Strategy[[]*domain.OsintTweet]{
			Name: mirror.Tier.String() + ":" + mirror.Host,
			Run: func(ctx context.Context) ([]*domain.OsintTweet, error) {
				return u.timelines.FetchTimeline(ctx, mirror, account, u.perAccount)
			},
		})
	}

	outcome, err := strategy.FirstSuccess(ctx, strategies, strategy.NonEmpty[*domain.OsintTweet])
	if err != nil {
		logger.FromContext(ctx).WarnContext(ctx, "all mirrors failed for account", "account", account, "error", err)
		return nil
	}
	logger.FromContext(ctx).DebugContext(ctx, "account timeline fetched",
		"account", account, "mirror", outcome.Strategy, "attempts", outcome.Attempts, "items", len(outcome.Value))
	return outcome.Value
}

func (u *OsintUsecase) mockTimeline(context.Context) ([]*domain.OsintTweet, error) {
	return domain.MockOsintTweets(u.clock.Now()), nil
}
