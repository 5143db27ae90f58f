package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatter_tokenize(t *testing.T) {
	f := NewDefault()

	tests := []struct {
		name     string
		input    string
		expected []Token
	}{
		{
			name:     "empty input",
			input:    "",
			expected: nil,
		},
		{
			name:  "boundary characters become their own tokens",
			input: "a (b,c);",
			expected: []Token{
				{Kind: TokenText, Text: "a"},
				{Kind: TokenOpenParen, Text: "("},
				{Kind: TokenText, Text: "b"},
				{Kind: TokenComma, Text: ","},
				{Kind: TokenText, Text: "c"},
				{Kind: TokenCloseParen, Text: ")"},
				{Kind: TokenSemicolon, Text: ";"},
			},
		},
		{
			name:  "keywords classify case-insensitively",
			input: "SELECT x From y",
			expected: []Token{
				{Kind: TokenKeyword, Text: "SELECT"},
				{Kind: TokenText, Text: "x"},
				{Kind: TokenKeyword, Text: "From"},
				{Kind: TokenText, Text: "y"},
			},
		},
		{
			name:  "multi-word keywords split into plain word tokens",
			input: "GROUP BY x",
			expected: []Token{
				{Kind: TokenText, Text: "GROUP"},
				{Kind: TokenText, Text: "BY"},
				{Kind: TokenText, Text: "x"},
			},
		},
		{
			name:  "adjacent punctuation with no text between",
			input: "();;",
			expected: []Token{
				{Kind: TokenOpenParen, Text: "("},
				{Kind: TokenCloseParen, Text: ")"},
				{Kind: TokenSemicolon, Text: ";"},
				{Kind: TokenSemicolon, Text: ";"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, f.tokenize(tt.input))
		})
	}
}

func TestFormatter_normalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		kwCase   KeywordCase
		expected string
	}{
		{
			name:     "collapses whitespace runs and trims",
			input:    "  select \n  *\t from  x ",
			kwCase:   KeywordCaseUpper,
			expected: "SELECT * FROM x",
		},
		{
			name:     "lowercase policy",
			input:    "SELECT * FROM x",
			kwCase:   KeywordCaseLower,
			expected: "select * from x",
		},
		{
			name:     "keep policy leaves matches untouched",
			input:    "SeLeCt * fRoM x",
			kwCase:   KeywordCaseKeep,
			expected: "SeLeCt * fRoM x",
		},
		{
			name:     "multi-word keyword matches across whitespace runs",
			input:    "a group \n by b",
			kwCase:   KeywordCaseUpper,
			expected: "a GROUP BY b",
		},
		{
			name:     "keyword inside identifier is not a word match",
			input:    "select selection, orders from border",
			kwCase:   KeywordCaseUpper,
			expected: "SELECT selection, orders FROM border",
		},
		{
			name:     "empty input",
			input:    "",
			kwCase:   KeywordCaseUpper,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := New(&Options{IndentSize: 2, KeywordCase: tt.kwCase})
			require.Equal(t, tt.expected, f.normalize(tt.input))
		})
	}
}
