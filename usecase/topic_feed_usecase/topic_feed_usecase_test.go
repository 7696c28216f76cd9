package topic_feed_usecase

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"newsdeck/domain"
	"newsdeck/mocks"
	"newsdeck/usecase/aggregate_feed_usecase"
	apperrors "newsdeck/utils/errors"
	"newsdeck/utils/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var cryptoTopic = domain.Topic{
	Key:      "crypto",
	Label:    "Cryptocurrency",
	Keywords: []string{"bitcoin"},
	Sources: []domain.FeedSource{
		{ID: "c1", Name: "CoinDesk", URL: "https://coindesk.example.com/rss", Enabled: true},
		{ID: "c2", Name: "Paused", URL: "https://paused.example.com/rss", Enabled: false},
	},
}

func newUsecase(t *testing.T) (*mocks.MockSourceRegistryPort, *mocks.MockFetchFeedPort, *TopicFeedUsecase) {
	ctrl := gomock.NewController(t)
	registry := mocks.NewMockSourceRegistryPort(ctrl)
	fetcher := mocks.NewMockFetchFeedPort(ctrl)
	aggregator := aggregate_feed_usecase.NewAggregateFeedUsecase(fetcher, aggregate_feed_usecase.Options{MinInterval: time.Millisecond})
	return registry, fetcher, NewTopicFeedUsecase(registry, aggregator)
}

func TestListTopics(t *testing.T) {
	registry, _, u := newUsecase(t)
	registry.EXPECT().ListTopics(gomock.Any()).Return([]domain.Topic{cryptoTopic}, nil)

	summaries, err := u.ListTopics(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.TopicSummary{{
		Key: "crypto", Label: "Cryptocurrency", Keywords: []string{"bitcoin"}, SourceCount: 2, EnabledSources: 1,
	}}, summaries)
}

func TestAggregate_UsesTopicKeywordsByDefault(t *testing.T) {
	registry, fetcher, u := newUsecase(t)
	registry.EXPECT().FindTopic(gomock.Any(), "crypto").Return(&cryptoTopic, nil).Times(2)
	fetcher.EXPECT().FetchFeed(gomock.Any(), cryptoTopic.Sources[0]).Return([]*domain.NewsItem{
		{ID: "1", Title: "Bitcoin rallies", PubDate: "2026-03-02T10:00:00Z"},
		{ID: "2", Title: "Ether upgrade ships", PubDate: "2026-03-02T11:00:00Z"},
	}, nil).Times(2)

	result, err := u.Aggregate(context.Background(), "crypto", nil)
	require.NoError(t, err)
	require.Len(t, result.Items, 1)
	assert.Equal(t, "1", result.Items[0].ID)
	assert.Nil(t, result.Error)

	// An explicit empty list disables filtering.
	result, err = u.Aggregate(context.Background(), "crypto", []string{})
	require.NoError(t, err)
	assert.Len(t, result.Items, 2)
}

func TestAggregate_UnknownTopic(t *testing.T) {
	registry, _, u := newUsecase(t)
	registry.EXPECT().FindTopic(gomock.Any(), "atlantis").Return(nil, apperrors.ErrTopicNotFound)

	_, err := u.Aggregate(context.Background(), "atlantis", nil)
	appErr, ok := apperrors.AsAppContextError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)
	assert.ErrorIs(t, err, apperrors.ErrTopicNotFound)
}

func TestWatch(t *testing.T) {
	registry, fetcher, u := newUsecase(t)
	registry.EXPECT().FindTopic(gomock.Any(), "crypto").Return(&cryptoTopic, nil)
	fetcher.EXPECT().FetchFeed(gomock.Any(), gomock.Any()).Return([]*domain.NewsItem{
		{ID: "1", Title: "Bitcoin rallies", PubDate: "2026-03-02T10:00:00Z"},
	}, nil).AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	w, err := u.Watch(ctx, "crypto", nil, time.Hour)
	require.NoError(t, err)

	loading := <-w.Results()
	assert.True(t, loading.Loading)
	ready := <-w.Results()
	assert.Len(t, ready.Items, 1)
}

func TestAggregate_SourceFailureLogsTopicAndOperation(t *testing.T) {
	var buf bytes.Buffer
	previous := logger.Logger
	logger.Logger = slog.New(slog.NewTextHandler(&buf, nil))
	t.Cleanup(func() { logger.Logger = previous })

	registry, fetcher, u := newUsecase(t)
	registry.EXPECT().FindTopic(gomock.Any(), "crypto").Return(&cryptoTopic, nil)
	fetcher.EXPECT().FetchFeed(gomock.Any(), cryptoTopic.Sources[0]).Return(nil, errors.New("503 from upstream"))

	result, err := u.Aggregate(context.Background(), "crypto", nil)
	require.NoError(t, err)
	assert.Empty(t, result.Items)

	out := buf.String()
	assert.Contains(t, out, "feed source failed")
	assert.Contains(t, out, "topic=crypto")
	assert.Contains(t, out, "operation=topic.aggregate")
}
