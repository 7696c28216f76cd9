package cache

import (
	"testing"
	"time"

	"newsdeck/utils/clock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTTLCache_ServesFreshEntry(t *testing.T) {
	fc := clock.NewFakeClock(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	c := NewTTLCache[string, []string](2*time.Minute, fc)

	c.Set("osint", []string{"a", "b"})
	fc.Advance(119 * time.Second)

	got, ok := c.Get("osint")
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, got)
	assert.Equal(t, int64(1), c.Stats().Hits)
}

func TestTTLCache_ExpiresAtTTLBoundary(t *testing.T) {
	fc := clock.NewFakeClock(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	c := NewTTLCache[string, int](time.Minute, fc)

	c.Set("k", 42)
	fc.Advance(time.Minute)

	_, ok := c.Get("k")
	assert.False(t, ok)

	stats := c.Stats()
	assert.Equal(t, int64(1), stats.Misses)
	assert.Equal(t, 0, stats.Size)
}

func TestTTLCache_MissOnUnknownKey(t *testing.T) {
	c := NewTTLCache[string, int](time.Minute, nil)

	v, ok := c.Get("missing")
	assert.False(t, ok)
	assert.Zero(t, v)
}

func TestTTLCache_SetRefreshesTimestamp(t *testing.T) {
	fc := clock.NewFakeClock(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	c := NewTTLCache[string, int](time.Minute, fc)

	c.Set("k", 1)
	fc.Advance(50 * time.Second)
	c.Set("k", 2)
	fc.Advance(50 * time.Second)

	v, ok := c.Get("k")
	require.True(t, ok)
	assert.Equal(t, 2, v)
}

func TestTTLCache_DeleteAndClear(t *testing.T) {
	c := NewTTLCache[string, int](time.Minute, nil)
	c.Set("a", 1)
	c.Set("b", 2)

	c.Delete("a")
	_, ok := c.Get("a")
	assert.False(t, ok)

	c.Clear()
	assert.Equal(t, 0, c.Stats().Size)
}
