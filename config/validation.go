package config

import (
	"fmt"
	"time"
)

func validateConfig(config *Config) error {
	if err := validateServerConfig(&config.Server); err != nil {
		return fmt.Errorf("server config validation failed: %w", err)
	}

	if err := validateHTTPConfig(&config.HTTP); err != nil {
		return fmt.Errorf("HTTP config validation failed: %w", err)
	}

	if err := validateFeedConfig(&config.Feed); err != nil {
		return fmt.Errorf("feed config validation failed: %w", err)
	}

	if err := validateCacheConfig(&config.Cache); err != nil {
		return fmt.Errorf("cache config validation failed: %w", err)
	}

	if err := validateReaderConfig(&config.Reader); err != nil {
		return fmt.Errorf("reader config validation failed: %w", err)
	}

	if err := validateOsintConfig(&config.Osint); err != nil {
		return fmt.Errorf("osint config validation failed: %w", err)
	}

	if config.RateLimit.HostInterval < 0 {
		return fmt.Errorf("rate limit config validation failed: host interval must not be negative, got %v", config.RateLimit.HostInterval)
	}
	if config.RateLimit.ClientRPS < 0 {
		return fmt.Errorf("rate limit config validation failed: client rps must not be negative, got %v", config.RateLimit.ClientRPS)
	}
	if config.RateLimit.ClientRPS > 0 && config.RateLimit.ClientBurst <= 0 {
		return fmt.Errorf("rate limit config validation failed: client burst must be positive, got %d", config.RateLimit.ClientBurst)
	}

	if config.Otel.SampleRatio < 0 || config.Otel.SampleRatio > 1 {
		return fmt.Errorf("otel config validation failed: sample ratio must be within [0,1], got %v", config.Otel.SampleRatio)
	}

	return nil
}

func validateServerConfig(config *ServerConfig) error {
	if config.Port < 1 || config.Port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535, got %d", config.Port)
	}

	if config.ReadTimeout <= 0 || config.IdleTimeout <= 0 || config.ShutdownTimeout <= 0 {
		return fmt.Errorf("timeout values must be positive")
	}

	if config.SSEHeartbeat < time.Second {
		return fmt.Errorf("SSE heartbeat must be at least 1s, got %v", config.SSEHeartbeat)
	}

	return nil
}

func validateHTTPConfig(config *HTTPConfig) error {
	if config.ClientTimeout <= 0 || config.DialTimeout <= 0 || config.TLSHandshakeTimeout <= 0 || config.IdleConnTimeout <= 0 {
		return fmt.Errorf("timeout values must be positive")
	}

	if config.MaxBodyBytes < 1024 {
		return fmt.Errorf("max body bytes must be at least 1024, got %d", config.MaxBodyBytes)
	}

	return nil
}

func validateFeedConfig(config *FeedConfig) error {
	if config.UserAgent == "" {
		return fmt.Errorf("user agent must not be empty")
	}

	if config.SourceTimeout <= 0 {
		return fmt.Errorf("source timeout must be positive, got %v", config.SourceTimeout)
	}

	if config.Concurrency < 1 {
		return fmt.Errorf("concurrency must be at least 1, got %d", config.Concurrency)
	}

	if config.MinRefreshInterval <= 0 {
		return fmt.Errorf("min refresh interval must be positive, got %v", config.MinRefreshInterval)
	}

	if config.RefreshInterval < config.MinRefreshInterval {
		return fmt.Errorf("refresh interval %v is below the minimum %v", config.RefreshInterval, config.MinRefreshInterval)
	}

	return nil
}

func validateCacheConfig(config *CacheConfig) error {
	if config.FeedTTL < 0 || config.NewsTTL < 0 {
		return fmt.Errorf("cache TTLs must not be negative")
	}
	return nil
}

func validateReaderConfig(config *ReaderConfig) error {
	if config.CacheSize < 0 {
		return fmt.Errorf("cache size must not be negative, got %d", config.CacheSize)
	}

	if config.CacheSize > 0 && config.CacheTTL <= 0 {
		return fmt.Errorf("cache TTL must be positive when the cache is enabled, got %v", config.CacheTTL)
	}

	return nil
}

func validateOsintConfig(config *OsintConfig) error {
	if len(config.Accounts) == 0 {
		return fmt.Errorf("at least one account is required")
	}

	if len(config.PrimaryHosts)+len(config.FallbackHosts) == 0 {
		return fmt.Errorf("at least one mirror host is required")
	}

	if config.CacheTTL <= 0 || config.MirrorTimeout <= 0 {
		return fmt.Errorf("cache TTL and mirror timeout must be positive")
	}

	if config.RefreshTimeout < config.MirrorTimeout {
		return fmt.Errorf("refresh timeout %v must be at least the mirror timeout %v", config.RefreshTimeout, config.MirrorTimeout)
	}

	if config.MaxItemsPerAccount < 1 || config.MaxItems < 1 {
		return fmt.Errorf("item caps must be at least 1")
	}

	if config.WarmInterval < 0 {
		return fmt.Errorf("warm interval must not be negative, got %v", config.WarmInterval)
	}

	return nil
}
