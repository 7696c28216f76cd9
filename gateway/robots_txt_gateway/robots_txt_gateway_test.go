package robots_txt_gateway

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"newsdeck/driver/http_fetch_driver"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRobotsTxtGateway_IsAllowed(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/robots.txt" {
			http.NotFound(w, r)
			return
		}
		hits.Add(1)
		_, _ = w.Write([]byte("User-agent: *\nDisallow: /private/\n\nUser-agent: NewsDeck\nDisallow: /nodeck/\n"))
	}))
	defer server.Close()

	gateway := NewRobotsTxtGateway(http_fetch_driver.NewHTTPFetchDriver(server.Client(), 0, 0), "NewsDeck/1.0")

	tests := []struct {
		path  string
		agent string
		want  bool
	}{
		{"/news/story", "NewsDeck", true},
		{"/private/page", "SomeBot", false},
		{"/nodeck/page", "NewsDeck", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			u, _ := url.Parse(server.URL + tt.path)
			allowed, err := gateway.IsAllowed(context.Background(), u, tt.agent)
			require.NoError(t, err)
			assert.Equal(t, tt.want, allowed)
		})
	}

	assert.Equal(t, int32(1), hits.Load(), "robots.txt is cached per origin")
}

func TestRobotsTxtGateway_MissingFileAllowsAll(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	defer server.Close()

	gateway := NewRobotsTxtGateway(http_fetch_driver.NewHTTPFetchDriver(server.Client(), 0, 0), "NewsDeck/1.0")

	u, _ := url.Parse(server.URL + "/anything")
	allowed, err := gateway.IsAllowed(context.Background(), u, "NewsDeck")
	require.NoError(t, err)
	assert.True(t, allowed)
}
