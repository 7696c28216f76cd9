package feed_parser

import (
	"strings"
	"testing"
	"time"

	"newsdeck/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

const rssFixture = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0" xmlns:content="http://purl.org/rss/1.0/modules/content/" xmlns:media="http://search.yahoo.com/mrss/">
<channel>
  <title>Example Wire</title>
  <item>
    <title>Oil jumps on supply fears</title>
    <link>https://example.com/oil</link>
    <pubDate>Fri, 01 May 2026 10:00:00 +0000</pubDate>
    <description><![CDATA[<p>Brent <b>crude</b> rose 3%.</p>]]></description>
    <content:encoded><![CDATA[<p>Full body <img src="https://img.example.com/oil.jpg"></p>]]></content:encoded>
  </item>
  <item>
    <description>Only a description</description>
    <media:content url="https://img.example.com/media.jpg" medium="image"/>
  </item>
  <item>
    <title>Gold steady</title>
    <link>https://example.com/gold</link>
    <pubDate>not a date</pubDate>
    <enclosure url="https://img.example.com/gold.png" type="image/png" length="10"/>
  </item>
</channel>
</rss>`

func TestParse_NormalizesItems(t *testing.T) {
	items, err := Parse(rssFixture, "Example Wire", fixedNow)
	require.NoError(t, err)
	require.Len(t, items, 3)

	oil := items[0]
	assert.Equal(t, "Oil jumps on supply fears", oil.Title)
	assert.Equal(t, "https://example.com/oil", oil.Link)
	assert.Equal(t, oil.Link, oil.ID)
	assert.Equal(t, "2026-05-01T10:00:00Z", oil.PubDate)
	assert.Equal(t, "Example Wire", oil.Source)
	assert.Equal(t, "Brent crude rose 3%.", oil.Snippet)
	assert.Contains(t, oil.Content, "Full body")
	assert.Equal(t, "https://img.example.com/oil.jpg", oil.ImageURL)

	untitled := items[1]
	assert.Equal(t, domain.DefaultTitle, untitled.Title)
	assert.Equal(t, domain.DefaultLink, untitled.Link)
	assert.NotEqual(t, domain.DefaultLink, untitled.ID)
	assert.Equal(t, fixedNow.Format(time.RFC3339), untitled.PubDate)
	assert.Equal(t, "Only a description", untitled.Snippet)
	assert.Equal(t, "https://img.example.com/media.jpg", untitled.ImageURL)

	gold := items[2]
	assert.Equal(t, fixedNow.Format(time.RFC3339), gold.PubDate)
	assert.Equal(t, "", gold.Snippet)
	assert.Equal(t, "https://img.example.com/gold.png", gold.ImageURL)
}

func TestParse_IsDeterministic(t *testing.T) {
	first, err := Parse(rssFixture, "Example Wire", fixedNow)
	require.NoError(t, err)
	second, err := Parse(rssFixture, "Example Wire", fixedNow)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestParse_Atom(t *testing.T) {
	atom := `<?xml version="1.0" encoding="utf-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
  <title>Atom Source</title>
  <entry>
    <title>Chip exports tighten</title>
    <link href="https://atom.example.com/chips"/>
    <id>tag:atom.example.com,2026:chips</id>
    <updated>2026-04-30T08:00:00Z</updated>
    <summary>New rules on chip exports.</summary>
  </entry>
</feed>`

	items, err := Parse(atom, "Atom Source", fixedNow)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "https://atom.example.com/chips", items[0].ID)
	assert.Equal(t, "2026-04-30T08:00:00Z", items[0].PubDate)
	assert.Equal(t, "New rules on chip exports.", items[0].Snippet)
}

func TestParse_LongDescriptionIsTruncated(t *testing.T) {
	desc := strings.Repeat("x", 200)
	doc := `<rss version="2.0"><channel><item><title>T</title><link>https://e.com/1</link><description>` + desc + `</description></item></channel></rss>`

	items, err := Parse(doc, "S", fixedNow)
	require.NoError(t, err)
	assert.Equal(t, strings.Repeat("x", 150)+"…", items[0].Snippet)
}

func TestParse_LinklessItemsFallBackToGUID(t *testing.T) {
	doc := `<rss version="2.0"><channel>
<item><title>A</title><guid isPermaLink="false">guid-a</guid></item>
<item><title>B</title></item>
</channel></rss>`

	items, err := Parse(doc, "S", fixedNow)
	require.NoError(t, err)
	assert.Equal(t, "guid-a", items[0].ID)
	assert.True(t, strings.HasPrefix(items[1].ID, "urn:newsdeck:"))
}

func TestParse_MalformedDocument(t *testing.T) {
	_, err := Parse("<html><body>not a feed</body></html>", "S", fixedNow)
	assert.Error(t, err)

	_, err = Parse("", "S", fixedNow)
	assert.Error(t, err)
}
