package topic_feed_usecase

import (
	"context"
	"time"

	"newsdeck/domain"
	"newsdeck/port/source_registry_port"
	"newsdeck/usecase/aggregate_feed_usecase"
	apperrors "newsdeck/utils/errors"
	"newsdeck/utils/logger"
)

// TopicFeedUsecase resolves registry topics and runs the aggregator over them.
type TopicFeedUsecase struct {
	registry   source_registry_port.SourceRegistryPort
	aggregator *aggregate_feed_usecase.AggregateFeedUsecase
}

func NewTopicFeedUsecase(registry source_registry_port.SourceRegistryPort, aggregator *aggregate_feed_usecase.AggregateFeedUsecase) *TopicFeedUsecase {
	return &TopicFeedUsecase{registry: registry, aggregator: aggregator}
}

func (u *TopicFeedUsecase) ListTopics(ctx context.Context) ([]domain.TopicSummary, error) {
	topics, err := u.registry.ListTopics(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]domain.TopicSummary, len(topics))
	for i, t := range topics {
		summaries[i] = domain.TopicSummary{
			Key:            t.Key,
			Label:          t.Label,
			Keywords:       t.Keywords,
			SourceCount:    len(t.Sources),
			EnabledSources: len(domain.EnabledSources(t.Sources)),
		}
	}
	return summaries, nil
}

// Aggregate runs one cycle for topicKey. Nil keywords use the topic's own.
// A failed cycle is reported in the result, not as an error; the error return
// is for unknown topics and cancellation.
func (u *TopicFeedUsecase) Aggregate(ctx context.Context, topicKey string, keywords []string) (*domain.AggregationResult, error) {
	topic, err := u.findTopic(ctx, topicKey)
	if err != nil {
		return nil, err
	}
	if keywords == nil {
		keywords = topic.Keywords
	}
	ctx = logger.WithTopic(logger.WithOperation(ctx, "topic.aggregate"), topic.Key)

	items, err := u.aggregator.Aggregate(ctx, topic.Sources, keywords)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		logger.FromContext(ctx).ErrorContext(ctx, "topic aggregation failed", "error", err)
		msg := aggregate_feed_usecase.AggregateErrorMessage
		return &domain.AggregationResult{Items: []*domain.NewsItem{}, Error: &msg, UpdatedAt: time.Now().UTC()}, nil
	}

	return &domain.AggregationResult{Items: items, UpdatedAt: time.Now().UTC()}, nil
}

// Watch starts a refresh stream for topicKey.
func (u *TopicFeedUsecase) Watch(ctx context.Context, topicKey string, keywords []string, interval time.Duration) (*aggregate_feed_usecase.Watcher, error) {
	topic, err := u.findTopic(ctx, topicKey)
	if err != nil {
		return nil, err
	}
	if keywords == nil {
		keywords = topic.Keywords
	}
	ctx = logger.WithTopic(logger.WithOperation(ctx, "topic.watch"), topic.Key)

	return u.aggregator.NewWatcher(ctx, aggregate_feed_usecase.WatchRequest{
		Sources:         topic.Sources,
		Keywords:        keywords,
		RefreshInterval: interval,
	}), nil
}

func (u *TopicFeedUsecase) findTopic(ctx context.Context, key string) (*domain.Topic, error) {
	topic, err := u.registry.FindTopic(ctx, key)
	if err != nil {
		if apperrors.IsTopicNotFound(err) {
			return nil, apperrors.NewNotFoundContextError("topic not found", "usecase", "TopicFeedUsecase", "findTopic", err,
				map[string]interface{}{"topic": key})
		}
		return nil, err
	}
	return topic, nil
}
