package html_parser

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestStripTags(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain text is normalized", "  hello \n  world ", "hello world"},
		{"tags removed", "<p>Hello <b>world</b></p>", "Hello world"},
		{"script and style skipped", "<style>p{}</style><p>Body</p><script>alert(1)</script>", "Body"},
		{"entities decoded", "Tom &amp; Jerry &lt;3", "Tom & Jerry <3"},
		{"block tags separate words", "<p>One</p><p>Two</p>line<br/>break", "One Two line break"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripTags(tt.in))
		})
	}
}

func TestSnippet_Truncation(t *testing.T) {
	long := strings.Repeat("a", 200)
	got := Snippet(long)
	assert.Equal(t, SnippetLength+1, utf8.RuneCountInString(got))
	assert.True(t, strings.HasSuffix(got, Ellipsis))
	assert.Equal(t, strings.Repeat("a", 150), strings.TrimSuffix(got, Ellipsis))

	short := strings.Repeat("b", 100)
	assert.Equal(t, short, Snippet(short))

	exact := strings.Repeat("c", 150)
	assert.Equal(t, exact, Snippet(exact))
}

func TestSnippet_CountsCharactersNotBytes(t *testing.T) {
	text := strings.Repeat("é", 160)
	got := Snippet("<p>" + text + "</p>")

	assert.Equal(t, strings.Repeat("é", 150)+Ellipsis, got)
}

func TestFirstImageSrc(t *testing.T) {
	assert.Equal(t, "https://cdn.example.com/a.jpg", FirstImageSrc(`<p>x</p><img alt="a" src=" https://cdn.example.com/a.jpg "><img src="b.jpg">`))
	assert.Equal(t, "", FirstImageSrc("<p>no image</p>"))
}

func TestDecodeToUTF8(t *testing.T) {
	latin1 := []byte{'c', 'a', 'f', 0xE9}
	assert.Equal(t, "café", DecodeToUTF8(latin1, "text/html; charset=iso-8859-1"))
	assert.Equal(t, "plain", DecodeToUTF8([]byte("plain"), "text/html; charset=utf-8"))
}
