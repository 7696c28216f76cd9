package source_registry_port

import (
	"context"
	"newsdeck/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=source_registry_port.go -destination=../../mocks/mock_source_registry_port.go -package=mocks

type SourceRegistryPort interface {
	ListTopics(ctx context.Context) ([]domain.Topic, error)
	FindTopic(ctx context.Context, key string) (*domain.Topic, error)
	ListCategories(ctx context.Context) ([]domain.NewsCategory, error)
}
