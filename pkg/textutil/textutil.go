// Package textutil holds the text normalization helpers used on feed content.
package textutil

import (
	"regexp"
	"strings"
)

var tagPattern = regexp.MustCompile(`<[^>]+>`)

// CleanHTML strips markup from a feed summary. Every tag is replaced by a
// single space so that words separated only by tag boundaries do not run
// together, then runs of whitespace collapse to one space and the edges
// are trimmed. Keyword matching downstream relies on those spaces.
func CleanHTML(text string) string {
	if text == "" {
		return ""
	}
	text = tagPattern.ReplaceAllString(text, " ")
	return Collapse(text)
}

// Collapse reduces all whitespace runs to single spaces and trims the result.
func Collapse(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// Truncate returns at most n characters of s. Counting is by rune, not
// byte: summaries are routinely Chinese and a byte cut would split a
// character in half.
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
