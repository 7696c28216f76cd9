package fetch_article_gateway

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"newsdeck/driver/http_fetch_driver"
	"newsdeck/mocks"
	apperrors "newsdeck/utils/errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/latin1":
			w.Header().Set("Content-Type", "text/html; charset=iso-8859-1")
			// "Café" in ISO-8859-1
			_, _ = w.Write([]byte("<html><body><p>Caf\xe9</p></body></html>"))
		case "/gone":
			w.WriteHeader(http.StatusGone)
		default:
			assert.Contains(t, r.Header.Get("User-Agent"), "NewsDeck/1.0")
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			_, _ = w.Write([]byte("<html><body><p>Hello</p></body></html>"))
		}
	}))
	t.Cleanup(server.Close)
	return server
}

func TestFetchArticleGateway_FetchArticlePage(t *testing.T) {
	server := newServer(t)
	driver := http_fetch_driver.NewHTTPFetchDriver(server.Client(), 0, 0)
	gateway := NewFetchArticleGateway(driver, "Mozilla/5.0 (compatible; NewsDeck/1.0; +http://localhost:3000)", nil)

	t.Run("utf-8 page", func(t *testing.T) {
		u, _ := url.Parse(server.URL + "/story")
		page, err := gateway.FetchArticlePage(context.Background(), u)
		require.NoError(t, err)
		assert.Contains(t, page, "<p>Hello</p>")
	})

	t.Run("decodes declared charset", func(t *testing.T) {
		u, _ := url.Parse(server.URL + "/latin1")
		page, err := gateway.FetchArticlePage(context.Background(), u)
		require.NoError(t, err)
		assert.Contains(t, page, "Café")
	})

	t.Run("non-2xx carries status text", func(t *testing.T) {
		u, _ := url.Parse(server.URL + "/gone")
		_, err := gateway.FetchArticlePage(context.Background(), u)
		require.ErrorIs(t, err, apperrors.ErrUpstreamStatus)
		assert.Contains(t, err.Error(), "410 Gone")
	})
}

func TestFetchArticleGateway_Robots(t *testing.T) {
	server := newServer(t)
	driver := http_fetch_driver.NewHTTPFetchDriver(server.Client(), 0, 0)
	u, _ := url.Parse(server.URL + "/story")

	t.Run("disallowed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		robots := mocks.NewMockRobotsTxtPort(ctrl)
		robots.EXPECT().IsAllowed(gomock.Any(), u, "NewsDeck").Return(false, nil)

		gateway := NewFetchArticleGateway(driver, "NewsDeck/1.0", robots)
		_, err := gateway.FetchArticlePage(context.Background(), u)
		assert.ErrorIs(t, err, apperrors.ErrDisallowedByRobots)
	})

	t.Run("robots failure does not block", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		robots := mocks.NewMockRobotsTxtPort(ctrl)
		robots.EXPECT().IsAllowed(gomock.Any(), u, "NewsDeck").Return(true, errors.New("timeout"))

		gateway := NewFetchArticleGateway(driver, "NewsDeck/1.0", robots)
		page, err := gateway.FetchArticlePage(context.Background(), u)
		require.NoError(t, err)
		assert.Contains(t, page, "Hello")
	})
}
