package str_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/textkit/pkg/str"
)

func TestLimit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		limit    int
		expected string
	}{
		{"truncates and trims trailing space", "The quick brown fox", 9, "The quick..."},
		{"under the limit unchanged", "short", 10, "short"},
		{"exactly at the limit unchanged", "hello", 5, "hello"},
		{"one over the limit", "hello!", 5, "hello..."},
		{"empty string", "", 5, ""},
		{"zero limit", "abc", 0, "..."},
		{"cut inside trailing whitespace run", "word   tail", 6, "word..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, str.Limit(tt.input, tt.limit))
		})
	}
}

func TestLimitWith(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "The quick (more)", str.LimitWith("The quick brown fox", 9, " (more)"))
	assert.Equal(t, "The quick", str.LimitWith("The quick brown fox", 9, ""))
	assert.Equal(t, "unchanged", str.LimitWith("unchanged", 20, "..."))
}

func TestLimitWideRunes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		limit    int
		expected string
	}{
		// CJK runes count two display units each.
		{"wide runes fit exactly", "你好", 4, "你好"},
		{"wide runes truncated at unit boundary", "你好世界", 4, "你好..."},
		{"odd limit cannot split a wide rune", "你好世界", 5, "你好..."},
		{"mixed narrow and wide", "ab你好", 4, "ab你..."},
		{"fullwidth digits are wide", "１２３", 4, "１２..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, str.Limit(tt.input, tt.limit))
		})
	}
}

func TestWidth(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected int
	}{
		{"", 0},
		{"abc", 3},
		{"你好", 4},
		{"ab你好", 6},
		{"café", 4},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, str.Width(tt.input), "input %q", tt.input)
	}
}

func TestWords(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		n        int
		expected string
	}{
		{"truncates to word count", "The quick brown fox", 2, "The quick..."},
		{"word count equals total unchanged", "one two three", 3, "one two three"},
		{"word count above total unchanged", "one two", 5, "one two"},
		{"n below one treated as one", "one two three", 0, "one..."},
		{"negative n treated as one", "one two three", -3, "one..."},
		{"empty string unchanged", "", 2, ""},
		{"all whitespace unchanged", "   \t\n  ", 2, "   \t\n  "},
		{"internal whitespace runs", "one   two   three", 2, "one   two..."},
		{"leading whitespace preserved when unchanged", "  one two", 2, "  one two"},
		{"trailing whitespace counts as spanning", "one two  ", 2, "one two  "},
		{"unicode words", "café naïve über alles", 2, "café naïve..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, str.Words(tt.input, tt.n))
		})
	}
}

func TestWordsWith(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "one two >>", str.WordsWith("one two three four", 2, " >>"))
	assert.Equal(t, "one", str.WordsWith("one two", 1, ""))
	assert.Equal(t, "one two", str.WordsWith("one two", 2, " >>"))
}
