package source_registry_gateway

import (
	"context"
	"newsdeck/config"
	"newsdeck/domain"
	apperrors "newsdeck/utils/errors"
	"strings"
)

// SourceRegistryGateway serves the read-only topic registry.
// Implements source_registry_port.SourceRegistryPort
type SourceRegistryGateway struct {
	registry *config.SourceRegistry
}

func NewSourceRegistryGateway(registry *config.SourceRegistry) *SourceRegistryGateway {
	return &SourceRegistryGateway{registry: registry}
}

// ListTopics returns copies so callers cannot mutate the registry.
func (g *SourceRegistryGateway) ListTopics(_ context.Context) ([]domain.Topic, error) {
	topics := make([]domain.Topic, len(g.registry.Topics))
	for i, t := range g.registry.Topics {
		topics[i] = copyTopic(t)
	}
	return topics, nil
}

func (g *SourceRegistryGateway) FindTopic(_ context.Context, key string) (*domain.Topic, error) {
	key = strings.ToLower(strings.TrimSpace(key))
	for _, t := range g.registry.Topics {
		if strings.ToLower(t.Key) == key {
			topic := copyTopic(t)
			return &topic, nil
		}
	}
	return nil, apperrors.ErrTopicNotFound
}

func (g *SourceRegistryGateway) ListCategories(_ context.Context) ([]domain.NewsCategory, error) {
	categories := make([]domain.NewsCategory, len(g.registry.Categories))
	for i, c := range g.registry.Categories {
		categories[i] = domain.NewsCategory{
			Name:    c.Name,
			Sources: append([]domain.FeedSource(nil), c.Sources...),
		}
	}
	return categories, nil
}

func copyTopic(t domain.Topic) domain.Topic {
	return domain.Topic{
		Key:      t.Key,
		Label:    t.Label,
		Keywords: append([]string(nil), t.Keywords...),
		Sources:  append([]domain.FeedSource(nil), t.Sources...),
	}
}
