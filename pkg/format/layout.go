package format

import (
	"bytes"
	"strings"
)

// layout walks the token sequence once, maintaining an indent depth counter
// and an output buffer. Exactly one rule applies per token:
//
//   - "(" trims trailing whitespace, opens an indented block, and deepens
//   - ")" shallows (clamped at zero) and lands on its own dedented line
//   - "," ends the line and indents the continuation one unit past depth
//   - ";" ends the line
//   - keyword tokens start a fresh line at the current depth
//   - anything else is appended inline with a trailing space
//
// Unbalanced input degrades gracefully: excess ")" clamps depth at zero and
// an unclosed "(" leaves the remaining output indented.
func (f *Formatter) layout(tokens []Token) string {
	var (
		out   []byte
		depth int
	)

	rep := func(n int) string { return strings.Repeat(f.indent, n) }
	trim := func() { out = bytes.TrimRight(out, " \t\n") }

	for _, tok := range tokens {
		switch tok.Kind {
		case TokenOpenParen:
			trim()
			out = append(out, " (\n"+rep(depth+1)...)
			depth++
		case TokenCloseParen:
			if depth > 0 {
				depth--
			}
			out = append(out, "\n"+rep(depth)+")"...)
		case TokenComma:
			trim()
			out = append(out, ",\n"+rep(depth+1)...)
		case TokenSemicolon:
			trim()
			out = append(out, ";\n"...)
		case TokenKeyword:
			if len(out) > 0 && out[len(out)-1] != '\n' {
				out = append(out, '\n')
			}
			out = append(out, rep(depth)+tok.Text+" "...)
		default:
			out = append(out, tok.Text+" "...)
		}
	}

	return strings.TrimSpace(string(out))
}
