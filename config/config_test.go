package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_WithDefaults(t *testing.T) {
	config, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, 9000, config.Server.Port)
	assert.Equal(t, 15*time.Second, config.Server.SSEHeartbeat)
	assert.Equal(t, int64(5*1024*1024), config.HTTP.MaxBodyBytes)
	assert.Equal(t, "NewsDeck/1.0 (Command Center)", config.Feed.UserAgent)
	assert.Equal(t, 60*time.Second, config.Feed.RefreshInterval)
	assert.Equal(t, 5*time.Second, config.Feed.MinRefreshInterval)
	assert.Equal(t, 60*time.Second, config.Cache.FeedTTL)
	assert.Equal(t, 5*time.Minute, config.Cache.NewsTTL)
	assert.False(t, config.Proxy.AllowPrivateHosts)
	assert.Equal(t, 0, config.Reader.CacheSize)
	assert.False(t, config.Reader.RespectRobots)
	assert.Equal(t, 2*time.Minute, config.Osint.CacheTTL)
	assert.Equal(t, 8*time.Second, config.Osint.MirrorTimeout)
	assert.Equal(t, 70*time.Second, config.Osint.RefreshTimeout)
	assert.Equal(t, 30, config.Osint.MaxItems)
	assert.Equal(t, 10, config.Osint.MaxItemsPerAccount)
	assert.Equal(t, []string{"Pizzint", "PolymarketIntel", "WarMonitor3", "Sino_Market", "Deltaone"}, config.Osint.Accounts)
	assert.Len(t, config.Osint.PrimaryHosts, 4)
	assert.Len(t, config.Osint.FallbackHosts, 4)
	assert.Equal(t, time.Duration(0), config.RateLimit.HostInterval)
	assert.Equal(t, "info", config.Logging.Level)
	assert.False(t, config.Otel.Enabled)
	assert.InDelta(t, 0.1, config.Otel.SampleRatio, 1e-9)
	assert.Empty(t, config.Sources.File)
}

func TestNewConfig_WithEnvironmentOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "8080")
	t.Setenv("PROXY_ALLOW_PRIVATE_HOSTS", "true")
	t.Setenv("READER_CACHE_SIZE", "128")
	t.Setenv("OSINT_ACCOUNTS", " alpha, ,beta ")
	t.Setenv("OSINT_CACHE_TTL", "30s")
	t.Setenv("OTEL_TRACE_SAMPLE_RATIO", "0.5")
	t.Setenv("SOURCES_FILE", "/etc/newsdeck/sources.yaml")

	config, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, 8080, config.Server.Port)
	assert.True(t, config.Proxy.AllowPrivateHosts)
	assert.Equal(t, 128, config.Reader.CacheSize)
	assert.Equal(t, []string{"alpha", "beta"}, config.Osint.Accounts)
	assert.Equal(t, 30*time.Second, config.Osint.CacheTTL)
	assert.InDelta(t, 0.5, config.Otel.SampleRatio, 1e-9)
	assert.Equal(t, "/etc/newsdeck/sources.yaml", config.Sources.File)
}

func TestNewConfig_InvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "non numeric port", key: "SERVER_PORT", value: "abc"},
		{name: "port out of range", key: "SERVER_PORT", value: "70000"},
		{name: "bad duration", key: "CACHE_FEED_TTL", value: "soon"},
		{name: "bad bool", key: "READER_RESPECT_ROBOTS", value: "maybe"},
		{name: "refresh below minimum", key: "FEED_REFRESH_INTERVAL", value: "1s"},
		{name: "negative rate interval", key: "RATE_LIMIT_HOST_INTERVAL", value: "-1s"},
		{name: "sample ratio above one", key: "OTEL_TRACE_SAMPLE_RATIO", value: "1.5"},
		{name: "zero osint cap", key: "OSINT_MAX_ITEMS", value: "0"},
		{name: "osint refresh shorter than one mirror", key: "OSINT_REFRESH_TIMEOUT", value: "2s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			_, err := NewConfig()
			assert.Error(t, err)
		})
	}
}
