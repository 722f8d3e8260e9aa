// Package language classifies utterances as Tamil, Tanglish or English
// and rewrites Tanglish tokens to their English glosses.
package language

import "strings"

// Language is the detected script/language of an utterance.
type Language string

const (
	Tamil    Language = "tamil"
	Tanglish Language = "tanglish"
	English  Language = "english"
)

// ContainsTamilScript reports whether any rune falls in the Tamil
// Unicode block (U+0B80–U+0BFF).
func ContainsTamilScript(text string) bool {
	for _, r := range text {
		if r >= 0x0B80 && r <= 0x0BFF {
			return true
		}
	}
	return false
}

// Detect classifies text into exactly one language label. The checks are
// a strict priority cascade: Tamil script beats everything, then any
// Tanglish transliteration key as a substring, then English.
func Detect(text string) Language {
	if ContainsTamilScript(text) {
		return Tamil
	}
	lower := strings.ToLower(text)
	for _, sub := range tanglishTable {
		if strings.Contains(lower, sub.From) {
			return Tanglish
		}
	}
	return English
}
