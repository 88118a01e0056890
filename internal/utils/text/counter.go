// Package text provides small string helpers shared by the domain validators.
package text

import "unicode/utf8"

// CountRunes counts the number of Unicode characters (runes) in the given text.
// Multi-byte characters such as accented letters, CJK text and emoji count as one.
//
// Examples:
//
//	CountRunes("hello")     // returns 5
//	CountRunes("Zürich")    // returns 6
//	CountRunes("")          // returns 0
func CountRunes(s string) int {
	return utf8.RuneCountInString(s)
}

// Truncate shortens s to at most n runes, appending an ellipsis when cut.
// It is used when echoing user-provided values back in log lines.
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if CountRunes(s) <= n {
		return s
	}
	runes := []rune(s)
	if n == 1 {
		return string(runes[:1])
	}
	return string(runes[:n-1]) + "…"
}
