package config

import (
	"time"
)

type Config struct {
	Server    ServerConfig    `json:"server"`
	HTTP      HTTPConfig      `json:"http"`
	Feed      FeedConfig      `json:"feed"`
	Cache     CacheConfig     `json:"cache"`
	Proxy     ProxyConfig     `json:"proxy"`
	Reader    ReaderConfig    `json:"reader"`
	Osint     OsintConfig     `json:"osint"`
	RateLimit RateLimitConfig `json:"rate_limit"`
	Logging   LoggingConfig   `json:"logging"`
	Otel      OtelConfig      `json:"otel"`
	Sources   SourcesConfig   `json:"sources"`
}

type ServerConfig struct {
	Port            int           `json:"port" env:"SERVER_PORT" default:"9000"`
	ReadTimeout     time.Duration `json:"read_timeout" env:"SERVER_READ_TIMEOUT" default:"30s"`
	IdleTimeout     time.Duration `json:"idle_timeout" env:"SERVER_IDLE_TIMEOUT" default:"120s"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" default:"10s"`
	SSEHeartbeat    time.Duration `json:"sse_heartbeat" env:"SERVER_SSE_HEARTBEAT" default:"15s"`
	AllowOrigins    []string      `json:"allow_origins" env:"SERVER_ALLOW_ORIGINS" default:"*"`
}

type HTTPConfig struct {
	ClientTimeout       time.Duration `json:"client_timeout" env:"HTTP_CLIENT_TIMEOUT" default:"15s"`
	DialTimeout         time.Duration `json:"dial_timeout" env:"HTTP_DIAL_TIMEOUT" default:"10s"`
	TLSHandshakeTimeout time.Duration `json:"tls_handshake_timeout" env:"HTTP_TLS_HANDSHAKE_TIMEOUT" default:"10s"`
	IdleConnTimeout     time.Duration `json:"idle_conn_timeout" env:"HTTP_IDLE_CONN_TIMEOUT" default:"90s"`
	MaxBodyBytes        int64         `json:"max_body_bytes" env:"HTTP_MAX_BODY_BYTES" default:"5242880"`
}

type FeedConfig struct {
	UserAgent          string        `json:"user_agent" env:"FEED_USER_AGENT" default:"NewsDeck/1.0 (Command Center)"`
	SourceTimeout      time.Duration `json:"source_timeout" env:"FEED_SOURCE_TIMEOUT" default:"10s"`
	Concurrency        int           `json:"concurrency" env:"FEED_CONCURRENCY" default:"8"`
	RefreshInterval    time.Duration `json:"refresh_interval" env:"FEED_REFRESH_INTERVAL" default:"60s"`
	MinRefreshInterval time.Duration `json:"min_refresh_interval" env:"FEED_MIN_REFRESH_INTERVAL" default:"5s"`
}

type CacheConfig struct {
	FeedTTL time.Duration `json:"feed_ttl" env:"CACHE_FEED_TTL" default:"60s"`
	NewsTTL time.Duration `json:"news_ttl" env:"CACHE_NEWS_TTL" default:"5m"`
}

type ProxyConfig struct {
	AllowPrivateHosts bool `json:"allow_private_hosts" env:"PROXY_ALLOW_PRIVATE_HOSTS" default:"false"`
}

type ReaderConfig struct {
	UserAgent     string        `json:"user_agent" env:"READER_USER_AGENT" default:"Mozilla/5.0 (compatible; NewsDeck/1.0; +http://localhost:3000)"`
	CacheSize     int           `json:"cache_size" env:"READER_CACHE_SIZE" default:"0"`
	CacheTTL      time.Duration `json:"cache_ttl" env:"READER_CACHE_TTL" default:"10m"`
	RespectRobots bool          `json:"respect_robots" env:"READER_RESPECT_ROBOTS" default:"false"`
}

type OsintConfig struct {
	UserAgent          string        `json:"user_agent" env:"OSINT_USER_AGENT" default:"Mozilla/5.0 (compatible; NewsDashboard/1.0;)"`
	CacheTTL           time.Duration `json:"cache_ttl" env:"OSINT_CACHE_TTL" default:"2m"`
	MirrorTimeout      time.Duration `json:"mirror_timeout" env:"OSINT_MIRROR_TIMEOUT" default:"8s"`
	RefreshTimeout     time.Duration `json:"refresh_timeout" env:"OSINT_REFRESH_TIMEOUT" default:"70s"`
	MaxItemsPerAccount int           `json:"max_items_per_account" env:"OSINT_MAX_ITEMS_PER_ACCOUNT" default:"10"`
	MaxItems           int           `json:"max_items" env:"OSINT_MAX_ITEMS" default:"30"`
	WarmInterval       time.Duration `json:"warm_interval" env:"OSINT_WARM_INTERVAL" default:"2m"`
	Accounts           []string      `json:"accounts" env:"OSINT_ACCOUNTS" default:"Pizzint,PolymarketIntel,WarMonitor3,Sino_Market,Deltaone"`
	PrimaryHosts       []string      `json:"primary_hosts" env:"OSINT_PRIMARY_HOSTS" default:"rsshub.app,rsshub.rssforever.com,hub.slarker.me,rsshub.feeded.xyz"`
	FallbackHosts      []string      `json:"fallback_hosts" env:"OSINT_FALLBACK_HOSTS" default:"nitter.poast.org,nitter.privacydev.net,nitter.cz,nitter.net"`
	BreakerThreshold   int           `json:"breaker_threshold" env:"OSINT_BREAKER_THRESHOLD" default:"3"`
	BreakerReset       time.Duration `json:"breaker_reset" env:"OSINT_BREAKER_RESET" default:"5m"`
}

type RateLimitConfig struct {
	HostInterval time.Duration `json:"host_interval" env:"RATE_LIMIT_HOST_INTERVAL" default:"0s"`
	// Inbound per-client limit on /api routes. 0 disables it.
	ClientRPS   float64 `json:"client_rps" env:"RATE_LIMIT_CLIENT_RPS" default:"0"`
	ClientBurst int     `json:"client_burst" env:"RATE_LIMIT_CLIENT_BURST" default:"20"`
}

type LoggingConfig struct {
	Level string `json:"level" env:"LOG_LEVEL" default:"info"`
}

type OtelConfig struct {
	Enabled        bool    `json:"enabled" env:"OTEL_ENABLED" default:"false"`
	ServiceName    string  `json:"service_name" env:"OTEL_SERVICE_NAME" default:"newsdeck"`
	ServiceVersion string  `json:"service_version" env:"SERVICE_VERSION" default:"0.0.0"`
	Environment    string  `json:"environment" env:"DEPLOYMENT_ENV" default:"development"`
	Endpoint       string  `json:"endpoint" env:"OTEL_EXPORTER_OTLP_ENDPOINT" default:"http://localhost:4318"`
	SampleRatio    float64 `json:"sample_ratio" env:"OTEL_TRACE_SAMPLE_RATIO" default:"0.1"`
}

type SourcesConfig struct {
	File string `json:"file" env:"SOURCES_FILE"`
}

// NewConfig loads configuration from environment variables with fallback
// to the default tags, then validates it.
func NewConfig() (*Config, error) {
	config := &Config{}

	if err := loadFromEnvironment(config); err != nil {
		return nil, err
	}

	if err := validateConfig(config); err != nil {
		return nil, err
	}

	return config, nil
}
