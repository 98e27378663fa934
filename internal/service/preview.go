package service

import "unicode/utf8"

// Preview truncates text to at most budget bytes without splitting a
// multi-byte codepoint: the cut point is the largest boundary at or below
// the budget that starts a rune. For valid UTF-8 the backward scan needs at
// most 3 steps.
func Preview(text string, budget int) string {
	if budget <= 0 {
		return ""
	}
	if len(text) <= budget {
		return text
	}

	cut := budget
	for i := 0; i < 3 && cut > 0 && !utf8.RuneStart(text[cut]); i++ {
		cut--
	}
	return text[:cut]
}
