package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveColors(t *testing.T) {
	t.Run("flag wins", func(t *testing.T) {
		assert.False(t, ResolveColors(true, true))
	})
	t.Run("NO_COLOR disables", func(t *testing.T) {
		t.Setenv("NO_COLOR", "")
		assert.False(t, ResolveColors(false, true))
	})
	t.Run("dumb terminal disables", func(t *testing.T) {
		t.Setenv("TERM", "dumb")
		assert.False(t, ResolveColors(false, true))
	})
}

func TestPrinter_PlainMarkers(t *testing.T) {
	var out, errOut bytes.Buffer
	p := NewPrinter(&out, &errOut, false)

	p.Success("loaded %d items", 3)
	p.Warning("served %s data", "mock")
	p.Error("boom")
	p.Header("Topics")

	assert.Contains(t, out.String(), "[OK] loaded 3 items")
	assert.Contains(t, out.String(), "Topics\n------")
	assert.Contains(t, errOut.String(), "[WARN] served mock data")
	assert.Contains(t, errOut.String(), "[ERROR] boom")
	assert.Equal(t, "plain", p.Bold("plain"))
}

func TestTable_Render(t *testing.T) {
	var buf bytes.Buffer
	table := NewTable(&buf, []string{"KEY", "LABEL"})
	table.AddRow([]string{"crypto", "Cryptocurrency"})
	require.NoError(t, table.Render())

	assert.Contains(t, buf.String(), "KEY")
	assert.Contains(t, buf.String(), "crypto")
	assert.Contains(t, buf.String(), "Cryptocurrency")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "abcd…", Truncate("abcdefgh", 5))
	assert.Equal(t, "日本…", Truncate("日本語のテキスト", 3))
	assert.Equal(t, "anything", Truncate("anything", 0))
}
