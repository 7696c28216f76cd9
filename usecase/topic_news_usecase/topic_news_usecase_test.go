package topic_news_usecase

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"newsdeck/domain"
	"newsdeck/mocks"
	"newsdeck/usecase/aggregate_feed_usecase"
	"newsdeck/utils/clock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func sourceFor(name string) domain.FeedSource {
	return domain.FeedSource{ID: strings.ToLower(name), Name: name, URL: "https://" + strings.ToLower(name) + ".example.com/rss", Enabled: true}
}

var categories = []domain.NewsCategory{
	{Name: "Finance", Sources: []domain.FeedSource{sourceFor("CNBC")}},
	{Name: "Crypto", Sources: []domain.FeedSource{sourceFor("CoinDesk")}},
	{Name: "Tech", Sources: []domain.FeedSource{sourceFor("Verge")}},
}

func items(prefix string, n int) []*domain.NewsItem {
	out := make([]*domain.NewsItem, n)
	for i := range out {
		out[i] = &domain.NewsItem{
			ID:      fmt.Sprintf("%s-%d", prefix, i),
			Title:   fmt.Sprintf("%s-%d", prefix, i),
			Snippet: strings.Repeat("x", 250),
			PubDate: time.Date(2026, 3, 2, 12-i, 0, 0, 0, time.UTC).Format(time.RFC3339),
		}
	}
	return out
}

func ids(list []*domain.NewsItem) []string {
	out := make([]string, len(list))
	for i, it := range list {
		out[i] = it.ID
	}
	return out
}

func setup(t *testing.T) (*mocks.MockSourceRegistryPort, *mocks.MockFetchFeedPort, *TopicNewsUsecase) {
	ctrl := gomock.NewController(t)
	registry := mocks.NewMockSourceRegistryPort(ctrl)
	fetcher := mocks.NewMockFetchFeedPort(ctrl)
	registry.EXPECT().ListCategories(gomock.Any()).Return(categories, nil).AnyTimes()

	aggregator := aggregate_feed_usecase.NewAggregateFeedUsecase(fetcher, aggregate_feed_usecase.Options{Kind: "news"})
	u := NewTopicNewsUsecase(registry, aggregator, 5*time.Minute, clock.NewFakeClock(time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)))
	return registry, fetcher, u
}

func TestExecute_SingleCategory(t *testing.T) {
	_, fetcher, u := setup(t)
	fetcher.EXPECT().FetchFeed(gomock.Any(), sourceFor("CoinDesk")).Return(items("c", 3), nil).Times(1)

	news, err := u.Execute(context.Background(), "crypto")
	require.NoError(t, err)
	assert.Equal(t, "Crypto", news.Topic)
	assert.Equal(t, []string{"c-0", "c-1", "c-2"}, ids(news.Items))
	assert.Equal(t, 2, news.Items[0].ReadingTime)

	// Cached for the TTL.
	again, err := u.Execute(context.Background(), "Crypto")
	require.NoError(t, err)
	assert.Len(t, again.Items, 3)
}

func TestExecute_TopInterleavesTwoPerCategory(t *testing.T) {
	_, fetcher, u := setup(t)
	fetcher.EXPECT().FetchFeed(gomock.Any(), sourceFor("CNBC")).Return(items("f", 5), nil)
	fetcher.EXPECT().FetchFeed(gomock.Any(), sourceFor("CoinDesk")).Return(items("c", 1), nil)
	fetcher.EXPECT().FetchFeed(gomock.Any(), sourceFor("Verge")).Return(items("t", 3), nil)

	news, err := u.Execute(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, domain.TopCategory, news.Topic)
	assert.Equal(t, []string{
		"f-0", "f-1", "c-0", "t-0", "t-1",
		"f-2", "f-3", "t-2",
		"f-4",
	}, ids(news.Items))
}

func TestExecute_UnknownTopicFallsBackToTop(t *testing.T) {
	_, fetcher, u := setup(t)
	fetcher.EXPECT().FetchFeed(gomock.Any(), gomock.Any()).Return(nil, nil).Times(3)

	news, err := u.Execute(context.Background(), "Sports")
	require.NoError(t, err)
	assert.Equal(t, domain.TopCategory, news.Topic)
	assert.NotNil(t, news.Items)
	assert.Empty(t, news.Items)
}

func TestInterleave(t *testing.T) {
	assert.Empty(t, Interleave(nil, 2))
	assert.Equal(t, []string{"a-0", "b-0", "a-1", "b-1"}, ids(Interleave([][]*domain.NewsItem{items("a", 2), items("b", 2)}, 1)))
}
