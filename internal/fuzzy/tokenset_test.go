package fuzzy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRatio(t *testing.T) {
	tests := []struct {
		name     string
		a        string
		b        string
		expected int
	}{
		{name: "identical", a: "coffee", b: "coffee", expected: 100},
		{name: "both empty", a: "", b: "", expected: 100},
		{name: "one empty", a: "coffee", b: "", expected: 0},
		{name: "single substitution", a: "cofee", b: "coffee", expected: 83},
		{name: "completely different", a: "abc", b: "xyz", expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Ratio(tt.a, tt.b))
		})
	}
}

func TestRatio_Symmetric(t *testing.T) {
	assert.Equal(t, Ratio("super market", "supermarket"), Ratio("supermarket", "super market"))
}

func TestRatio_HebrewRuneAware(t *testing.T) {
	// One substitution in a four-letter Hebrew word: the score must be
	// computed over runes, not bytes.
	assert.Equal(t, 75, Ratio("אבגד", "אבגה"))
}

func TestTokenSetRatio(t *testing.T) {
	tests := []struct {
		name     string
		a        string
		b        string
		expected int
	}{
		{
			name:     "identical strings",
			a:        "super market chain",
			b:        "super market chain",
			expected: 100,
		},
		{
			name:     "word order ignored",
			a:        "market super",
			b:        "super market",
			expected: 100,
		},
		{
			name:     "token subset scores 100",
			a:        "super market chain #4521",
			b:        "super market chain",
			expected: 100,
		},
		{
			name:     "no overlap",
			a:        "coffee house",
			b:        "gas station",
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.expected == 0 {
				assert.LessOrEqual(t, TokenSetRatio(tt.a, tt.b), 40)
			} else {
				assert.Equal(t, tt.expected, TokenSetRatio(tt.a, tt.b))
			}
		})
	}
}

func TestTokenSetRatio_EmptyInputs(t *testing.T) {
	assert.Equal(t, 0, TokenSetRatio("", "coffee"))
	assert.Equal(t, 0, TokenSetRatio("coffee", ""))
	assert.Equal(t, 0, TokenSetRatio("", ""))
}

func TestTokenSetRatio_NearMatch(t *testing.T) {
	score := TokenSetRatio("coffe shop", "coffee shop")
	assert.Greater(t, score, 85)
	assert.Less(t, score, 100)
}

func TestExtractOne(t *testing.T) {
	choices := []string{"coffee shop", "gas station", "super market"}

	vendor, score, ok := ExtractOne("coffee shop downtown", choices, 86)
	assert.True(t, ok)
	assert.Equal(t, "coffee shop", vendor)
	assert.Equal(t, 100, score)

	_, _, ok = ExtractOne("bookstore", choices, 86)
	assert.False(t, ok)

	_, _, ok = ExtractOne("anything", nil, 86)
	assert.False(t, ok)
}
