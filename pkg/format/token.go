package format

import (
	"strings"
	"unicode"
)

// TokenKind classifies a token for the layout pass.
type TokenKind int

const (
	// TokenText is any token with no dedicated layout rule
	TokenText TokenKind = iota

	// TokenKeyword is a token matching a keyword set entry (case-insensitive)
	TokenKeyword

	// TokenOpenParen is a single "("
	TokenOpenParen

	// TokenCloseParen is a single ")"
	TokenCloseParen

	// TokenComma is a single ","
	TokenComma

	// TokenSemicolon is a single ";"
	TokenSemicolon
)

// Token is a classified substring of the normalized query. Tokens have no
// identity beyond their text and position in the sequence.
type Token struct {
	Kind TokenKind
	Text string
}

// tokenize splits normalized text on whitespace runs and on the four layout
// boundary characters, keeping each boundary character as its own token and
// dropping empty pieces.
//
// Multi-word keywords are necessarily split into separate single-word tokens
// here (normalization rewrites case, never spacing), so only single-word
// members of the keyword set can ever classify as TokenKeyword.
func (f *Formatter) tokenize(normalized string) []Token {
	var (
		tokens []Token
		start  = -1
	)

	flush := func(end int) {
		if start < 0 {
			return
		}

		text := normalized[start:end]
		start = -1

		kind := TokenText
		if _, ok := f.words[strings.ToLower(text)]; ok {
			kind = TokenKeyword
		}

		tokens = append(tokens, Token{Kind: kind, Text: text})
	}

	for i, r := range normalized {
		switch {
		case unicode.IsSpace(r):
			flush(i)
		case r == '(':
			flush(i)
			tokens = append(tokens, Token{Kind: TokenOpenParen, Text: "("})
		case r == ')':
			flush(i)
			tokens = append(tokens, Token{Kind: TokenCloseParen, Text: ")"})
		case r == ',':
			flush(i)
			tokens = append(tokens, Token{Kind: TokenComma, Text: ","})
		case r == ';':
			flush(i)
			tokens = append(tokens, Token{Kind: TokenSemicolon, Text: ";"})
		default:
			if start < 0 {
				start = i
			}
		}
	}
	flush(len(normalized))

	return tokens
}
