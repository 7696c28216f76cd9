package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestCacheLookupsCounter(t *testing.T) {
	before := testutil.ToFloat64(CacheLookups.WithLabelValues("osint", CacheResult(true)))

	CacheLookups.WithLabelValues("osint", CacheResult(true)).Inc()

	after := testutil.ToFloat64(CacheLookups.WithLabelValues("osint", CacheResult(true)))
	assert.Equal(t, before+1, after)
	assert.Equal(t, ResultMiss, CacheResult(false))
}

func TestSourceFetchTotalLabels(t *testing.T) {
	SourceFetchTotal.WithLabelValues("reuters", StatusError).Inc()
	assert.GreaterOrEqual(t, testutil.ToFloat64(SourceFetchTotal.WithLabelValues("reuters", StatusError)), 1.0)
}
