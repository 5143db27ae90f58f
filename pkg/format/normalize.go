package format

import (
	"regexp"
	"strings"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// normalize collapses every run of whitespace to a single space, trims the
// ends, and applies the keyword case rules in declared order. Each rule sees
// the text as rewritten by the rules before it.
//
// Word boundaries on both sides of each pattern keep keyword text inside
// identifiers untouched: a column named "orders" never matches "OR", and
// "selection" never matches "SELECT".
func (f *Formatter) normalize(query string) string {
	out := strings.TrimSpace(whitespaceRun.ReplaceAllString(query, " "))

	for _, rule := range f.rules {
		if rule.keep {
			// Identity substitution: consumes the match without rewriting,
			// keeping scan behavior aligned with the other policies.
			out = rule.pattern.ReplaceAllStringFunc(out, func(m string) string { return m })
			continue
		}

		out = rule.pattern.ReplaceAllString(out, rule.replacement)
	}

	return out
}
