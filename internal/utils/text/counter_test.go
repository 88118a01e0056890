package text_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"

	"magazine-catalog/internal/utils/text"
)

func TestCountRunes(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int
	}{
		{name: "empty", input: "", expected: 0},
		{name: "ASCII", input: "hello", expected: 5},
		{name: "ASCII with spaces", input: "hello world", expected: 11},
		{name: "accented", input: "Zürich", expected: 6},
		{name: "Japanese", input: "こんにちは世界", expected: 7},
		{name: "emoji", input: "📰🖋", expected: 2},
		{name: "combining mark counts separately", input: "e\u0301", expected: 2},
		{name: "whitespace only", input: " \t\n", expected: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, text.CountRunes(tt.input))
		})
	}
}

func TestCountRunes_NotBytes(t *testing.T) {
	s := "日本語"
	assert.Equal(t, 9, len(s))
	assert.Equal(t, 3, text.CountRunes(s))
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		n        int
		expected string
	}{
		{name: "shorter than limit", input: "Ada", n: 10, expected: "Ada"},
		{name: "exact limit", input: "ByteWeekly", n: 10, expected: "ByteWeekly"},
		{name: "cut with ellipsis", input: "Intro to Pointers", n: 8, expected: "Intro t…"},
		{name: "multi-byte", input: "こんにちは世界", n: 4, expected: "こんに…"},
		{name: "limit one", input: "hello", n: 1, expected: "h"},
		{name: "zero limit", input: "hello", n: 0, expected: ""},
		{name: "negative limit", input: "hello", n: -3, expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, text.Truncate(tt.input, tt.n))
		})
	}
}

func TestTruncate_Properties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := rapid.String().Draw(t, "s")
		n := rapid.IntRange(0, 64).Draw(t, "n")

		got := text.Truncate(s, n)

		if text.CountRunes(got) > n {
			t.Fatalf("Truncate(%q, %d) = %q has %d runes", s, n, got, text.CountRunes(got))
		}
		if text.CountRunes(s) <= n && got != s {
			t.Fatalf("Truncate(%q, %d) = %q, want input unchanged", s, n, got)
		}
		if n > 1 && text.CountRunes(s) > n {
			prefix := strings.TrimSuffix(got, "…")
			if !strings.HasPrefix(s, prefix) {
				t.Fatalf("Truncate(%q, %d) = %q is not a prefix of the input", s, n, got)
			}
		}
	})
}

func BenchmarkCountRunes(b *testing.B) {
	s := strings.Repeat("Pointers, Part Two ", 20)
	for b.Loop() {
		text.CountRunes(s)
	}
}
