package html_parser

// SnippetLength is the maximum number of characters kept in a snippet.
const SnippetLength = 150

// Ellipsis marks a truncated snippet.
const Ellipsis = "…"

// Snippet strips HTML from raw and truncates the text to SnippetLength
// characters, appending Ellipsis when anything was cut.
func Snippet(raw string) string {
	return Truncate(StripTags(raw), SnippetLength)
}

// Truncate cuts s to max characters (not bytes).
func Truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + Ellipsis
}
