package aggregate_feed_usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"newsdeck/domain"
	"newsdeck/port/fetch_feed_port"
	"newsdeck/utils/cache"
	"newsdeck/utils/clock"
	"newsdeck/utils/logger"
	"newsdeck/utils/metrics"
	"newsdeck/utils/otel"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

// AggregateErrorMessage is published when a whole cycle fails.
const AggregateErrorMessage = "Failed to load feeds"

// Options tunes an AggregateFeedUsecase. Zero values take defaults.
type Options struct {
	// Kind labels metrics and spans, e.g. "topic" or "news".
	Kind            string
	CacheTTL        time.Duration
	Concurrency     int
	DefaultInterval time.Duration
	MinInterval     time.Duration
	Clock           clock.Clock
}

type AggregateFeedUsecase struct {
	fetcher         fetch_feed_port.FetchFeedPort
	cache           *cache.TTLCache[string, []*domain.NewsItem]
	kind            string
	concurrency     int
	defaultInterval time.Duration
	minInterval     time.Duration
}

func NewAggregateFeedUsecase(fetcher fetch_feed_port.FetchFeedPort, opts Options) *AggregateFeedUsecase {
	if opts.Kind == "" {
		opts.Kind = "topic"
	}
	if opts.Concurrency <= 0 {
		opts.Concurrency = 8
	}
	if opts.DefaultInterval <= 0 {
		opts.DefaultInterval = 60 * time.Second
	}
	if opts.MinInterval <= 0 {
		opts.MinInterval = 5 * time.Second
	}

	u := &AggregateFeedUsecase{
		fetcher:         fetcher,
		kind:            opts.Kind,
		concurrency:     opts.Concurrency,
		defaultInterval: opts.DefaultInterval,
		minInterval:     opts.MinInterval,
	}
	if opts.CacheTTL > 0 {
		u.cache = cache.NewTTLCache[string, []*domain.NewsItem](opts.CacheTTL, opts.Clock)
	}
	return u
}

// Aggregate runs one cycle: concurrent fetch of every enabled source, flatten
// in source order, keyword filter, then a stable sort newest first. A failing
// source contributes no items. The returned error is non-nil only when the
// context is done or the merge itself fails.
func (u *AggregateFeedUsecase) Aggregate(ctx context.Context, sources []domain.FeedSource, keywords []string) (items []*domain.NewsItem, err error) {
	enabled := domain.EnabledSources(sources)
	if len(enabled) == 0 {
		return []*domain.NewsItem{}, nil
	}
	keywords = normalizeKeywords(keywords)

	key := cacheKey(enabled, keywords)
	if u.cache != nil {
		cached, ok := u.cache.Get(key)
		metrics.CacheLookups.WithLabelValues(u.kind, metrics.CacheResult(ok)).Inc()
		if ok {
			return append([]*domain.NewsItem(nil), cached...), nil
		}
	}

	ctx, span := otel.Tracer().Start(ctx, "aggregate.Aggregate", trace.WithAttributes(
		attribute.String("aggregate.kind", u.kind),
		attribute.Int("aggregate.sources", len(enabled)),
		attribute.Int("aggregate.keywords", len(keywords)),
	))
	defer span.End()

	start := time.Now()
	defer func() {
		metrics.AggregationDuration.WithLabelValues(u.kind).Observe(time.Since(start).Seconds())
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
	}()

	perSource := make([][]*domain.NewsItem, len(enabled))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(u.concurrency)
	for i, source := range enabled {
		g.Go(func() error {
			perSource[i] = u.fetchSource(gctx, source)
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	items, err = merge(perSource, keywords)
	if err != nil {
		return nil, err
	}

	metrics.AggregatedItems.WithLabelValues(u.kind).Observe(float64(len(items)))
	span.SetAttributes(attribute.Int("aggregate.items", len(items)))

	if u.cache != nil {
		u.cache.Set(key, items)
		return append([]*domain.NewsItem(nil), items...), nil
	}
	return items, nil
}

// fetchSource never fails: errors and panics degrade to zero items.
func (u *AggregateFeedUsecase) fetchSource(ctx context.Context, source domain.FeedSource) (items []*domain.NewsItem) {
	defer func() {
		if r := recover(); r != nil {
			logger.FromContext(ctx).ErrorContext(ctx, "feed source panicked",
				"source", source.Name, "url", source.URL, "panic", fmt.Sprint(r))
			metrics.SourceFetchTotal.WithLabelValues(source.ID, metrics.StatusError).Inc()
			items = nil
		}
	}()

	items, err := u.fetcher.FetchFeed(ctx, source)
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			logger.FromContext(ctx).WarnContext(ctx, "feed source failed",
				"source", source.Name, "url", source.URL, "error", err)
		}
		metrics.SourceFetchTotal.WithLabelValues(source.ID, metrics.StatusError).Inc()
		return nil
	}

	status := metrics.StatusSuccess
	if len(items) == 0 {
		status = metrics.StatusEmpty
	}
	metrics.SourceFetchTotal.WithLabelValues(source.ID, status).Inc()
	return items
}

// merge flattens, filters and sorts. A panic here fails the whole cycle.
func merge(perSource [][]*domain.NewsItem, keywords []string) (items []*domain.NewsItem, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("merge aggregated items: %v", r)
		}
	}()

	type dated struct {
		item *domain.NewsItem
		at   time.Time
	}

	var kept []dated
	for _, list := range perSource {
		for _, item := range list {
			if item == nil || !item.MatchesKeywords(keywords) {
				continue
			}
			kept = append(kept, dated{item: item, at: item.PublishedAt()})
		}
	}

	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].at.After(kept[j].at)
	})

	items = make([]*domain.NewsItem, len(kept))
	for i, d := range kept {
		items[i] = d.item
	}
	return items, nil
}

func normalizeKeywords(keywords []string) []string {
	out := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		if kw = strings.ToLower(strings.TrimSpace(kw)); kw != "" {
			out = append(out, kw)
		}
	}
	return out
}

func cacheKey(sources []domain.FeedSource, keywords []string) string {
	ids := make([]string, len(sources))
	for i, s := range sources {
		ids[i] = s.ID + "=" + s.URL
	}
	kws := append([]string(nil), keywords...)
	sort.Strings(kws)
	return strings.Join(ids, ",") + "|" + strings.Join(kws, ",")
}

// ClampInterval applies the default and the minimum refresh interval.
func (u *AggregateFeedUsecase) ClampInterval(d time.Duration) time.Duration {
	if d <= 0 {
		return u.defaultInterval
	}
	if d < u.minInterval {
		return u.minInterval
	}
	return d
}
