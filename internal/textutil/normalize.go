// Package textutil normalizes raw user input before intent detection.
package textutil

import (
	"strings"
	"unicode"
)

// Normalize lowercases the input, replaces punctuation other than
// apostrophes with spaces, collapses runs of whitespace and trims the
// result. It never fails; empty input yields an empty string.
func Normalize(text string) string {
	if text == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(text))
	lastSpace := false
	for _, r := range strings.ToLower(text) {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r), r == '_', r == '\'':
			b.WriteRune(r)
			lastSpace = false
		default:
			// Punctuation and whitespace both collapse to a single space.
			if !lastSpace {
				b.WriteByte(' ')
				lastSpace = true
			}
		}
	}
	return strings.TrimSpace(b.String())
}

// Tokens splits normalized text into an ordered sequence of tokens.
// Duplicates are preserved; callers needing set semantics deduplicate.
func Tokens(text string) []string {
	normalized := Normalize(text)
	if normalized == "" {
		return nil
	}
	return strings.Fields(normalized)
}

// TokenSet returns the deduplicated token set of the input.
func TokenSet(text string) map[string]struct{} {
	tokens := Tokens(text)
	if len(tokens) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(tokens))
	for _, tok := range tokens {
		set[tok] = struct{}{}
	}
	return set
}
