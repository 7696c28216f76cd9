package topic_news_usecase

import (
	"context"
	"strings"
	"time"

	"newsdeck/domain"
	"newsdeck/port/source_registry_port"
	"newsdeck/utils/cache"
	"newsdeck/utils/clock"
	"newsdeck/utils/metrics"

	"golang.org/x/sync/errgroup"
)

const (
	cacheName = "news"
	// perRound is how many items each category contributes per round of the
	// Top interleave.
	perRound = 2
)

// Aggregator runs one aggregation cycle over a source list.
type Aggregator interface {
	Aggregate(ctx context.Context, sources []domain.FeedSource, keywords []string) ([]*domain.NewsItem, error)
}

// TopicNewsUsecase serves headline categories and the interleaved Top view.
type TopicNewsUsecase struct {
	registry   source_registry_port.SourceRegistryPort
	aggregator Aggregator
	cache      *cache.TTLCache[string, []*domain.NewsItem]
}

func NewTopicNewsUsecase(registry source_registry_port.SourceRegistryPort, aggregator Aggregator, cacheTTL time.Duration, c clock.Clock) *TopicNewsUsecase {
	return &TopicNewsUsecase{
		registry:   registry,
		aggregator: aggregator,
		cache:      cache.NewTTLCache[string, []*domain.NewsItem](cacheTTL, c),
	}
}

// Execute returns one category's items, or every category interleaved when
// topic is empty, "Top" or not a category name.
func (u *TopicNewsUsecase) Execute(ctx context.Context, topic string) (*domain.TopicNews, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		topic = domain.TopCategory
	}

	categories, err := u.registry.ListCategories(ctx)
	if err != nil {
		return nil, err
	}

	for _, category := range categories {
		if strings.EqualFold(category.Name, topic) {
			items, err := u.fetchCategory(ctx, category)
			if err != nil {
				return nil, err
			}
			return &domain.TopicNews{Items: items, Topic: category.Name}, nil
		}
	}

	lists := make([][]*domain.NewsItem, len(categories))
	g, gctx := errgroup.WithContext(ctx)
	for i, category := range categories {
		g.Go(func() error {
			items, err := u.fetchCategory(gctx, category)
			lists[i] = items
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &domain.TopicNews{Items: Interleave(lists, perRound), Topic: domain.TopCategory}, nil
}

func (u *TopicNewsUsecase) fetchCategory(ctx context.Context, category domain.NewsCategory) ([]*domain.NewsItem, error) {
	if cached, ok := u.cache.Get(category.Name); ok {
		metrics.CacheLookups.WithLabelValues(cacheName, metrics.ResultHit).Inc()
		return cached, nil
	}
	metrics.CacheLookups.WithLabelValues(cacheName, metrics.ResultMiss).Inc()

	aggregated, err := u.aggregator.Aggregate(ctx, category.Sources, nil)
	if err != nil {
		return nil, err
	}

	// Copy so the aggregator's cached items are never mutated.
	items := make([]*domain.NewsItem, len(aggregated))
	for i, it := range aggregated {
		copied := *it
		copied.ReadingTime = domain.ReadingTimeMinutes(copied.Snippet)
		items[i] = &copied
	}

	if len(items) > 0 {
		u.cache.Set(category.Name, items)
	}
	return items, nil
}

// Interleave takes n items from each list in turn until all are drained.
func Interleave(lists [][]*domain.NewsItem, n int) []*domain.NewsItem {
	total := 0
	for _, l := range lists {
		total += len(l)
	}

	out := make([]*domain.NewsItem, 0, total)
	for offset := 0; len(out) < total; offset += n {
		for _, l := range lists {
			if offset >= len(l) {
				continue
			}
			out = append(out, l[offset:min(offset+n, len(l))]...)
		}
	}
	return out
}
