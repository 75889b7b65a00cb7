package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractQueryTerms(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		raw      string
		expected TermSet
	}{
		{name: "two long tokens", raw: "red notebook", expected: TermSet{"red", "notebook"}},
		{name: "short query falls back to whole text", raw: "TV", expected: TermSet{"tv"}},
		{name: "mixed case is lowered", raw: "Physics TEXTBOOK", expected: TermSet{"physics", "textbook"}},
		{name: "short tokens dropped when long ones exist", raw: "a red pen", expected: TermSet{"red", "pen"}},
		{name: "duplicates removed keeping first", raw: "pen Pen blue pen", expected: TermSet{"pen", "blue"}},
		{name: "fallback keeps inner spaces", raw: "  a b  ", expected: TermSet{"a b"}},
		{name: "empty query", raw: "", expected: nil},
		{name: "whitespace only", raw: " \t ", expected: nil},
		{name: "multi-byte tokens counted by rune", raw: "ñá libro", expected: TermSet{"libro"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := ExtractQueryTerms(tt.raw)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestExtractCaptionTerms(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		description string
		expected    TermSet
	}{
		{
			name:        "stop words and punctuation removed",
			description: "This is a blue school uniform, with a white collar.",
			expected:    TermSet{"blue", "school", "uniform", "white", "collar"},
		},
		{
			name:        "duplicates removed",
			description: "Notebook! notebook; NOTEBOOK",
			expected:    TermSet{"notebook"},
		},
		{
			name:        "underscores and digits kept",
			description: "pen_set 2024 edition",
			expected:    TermSet{"pen_set", "2024", "edition"},
		},
		{
			name:        "only stop words",
			description: "there is the one",
			expected:    TermSet{"one"},
		},
		{
			name:        "empty caption",
			description: "",
			expected:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := ExtractCaptionTerms(tt.description)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestTermSetEmpty(t *testing.T) {
	t.Parallel()

	assert.True(t, TermSet(nil).Empty())
	assert.False(t, TermSet{"pen"}.Empty())
}
