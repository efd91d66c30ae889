// Package plaintext turns HTML fragments into single-line plain text suitable for
// in-app notification bodies.
package plaintext

import (
	"html"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/microcosm-cc/bluemonday"
)

var (
	strictPolicy = bluemonday.StrictPolicy()
	blockEnd     = regexp.MustCompile(`(?i)<(br|hr|/p|/div|/li|/tr|/td|/th|/h[1-6]|/table)[^>]*>`)
	angleRemover = strings.NewReplacer("<", "", ">", "")
)

// Strip removes all markup from s, decodes entities and collapses whitespace.
// The result never contains '<' or '>'.
func Strip(s string) string {
	if s == "" {
		return ""
	}
	text := blockEnd.ReplaceAllString(s, "$0 ")
	text = strictPolicy.Sanitize(text)
	text = html.UnescapeString(text)
	text = angleRemover.Replace(text)
	return strings.Join(strings.Fields(text), " ")
}

// ContainsMarkup reports whether s holds characters that could form markup.
func ContainsMarkup(s string) bool {
	return strings.ContainsAny(s, "<>")
}

// Truncate shortens s to at most limit runes, appending "..." when it cuts.
func Truncate(s string, limit int) string {
	if limit <= 0 || utf8.RuneCountInString(s) <= limit {
		return s
	}
	runes := []rune(s)
	return strings.TrimSpace(string(runes[:limit])) + "..."
}
