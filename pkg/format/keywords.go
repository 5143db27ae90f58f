package format

import "strings"

// Keyword is a single entry in the keyword set, stored in its canonical
// uppercase spelling (e.g. "SELECT", "GROUP BY"). Matching against input is
// always case-insensitive; Canonical derives the text a case policy emits.
type Keyword string

// Canonical returns the keyword as the given case policy would emit it. The
// keep policy returns the declared spelling unchanged, since there is no
// matched input text at this level.
func (k Keyword) Canonical(kwCase KeywordCase) string {
	switch kwCase {
	case KeywordCaseLower:
		return strings.ToLower(string(k))
	case KeywordCaseKeep:
		return string(k)
	default:
		return strings.ToUpper(string(k))
	}
}

// DefaultKeywords is the standard keyword set, in evaluation order.
//
// Order matters: multi-word entries are listed ahead of their single-word
// suffixes (e.g. "LEFT JOIN" before "JOIN") so the longer phrase is re-cased
// as a unit before the shorter one runs over the remaining text. Matching is
// case-insensitive, so a later longer entry would still match partially
// re-cased text, but the declared order keeps rewrites predictable.
//
// The set is deliberately small and non-extensible at this layer; callers
// that need a different set supply their own ordered slice via Options.
var DefaultKeywords = []Keyword{
	"INSERT INTO",
	"DELETE FROM",
	"GROUP BY",
	"ORDER BY",
	"INNER JOIN",
	"LEFT JOIN",
	"RIGHT JOIN",
	"FULL JOIN",
	"SELECT",
	"FROM",
	"WHERE",
	"HAVING",
	"LIMIT",
	"OFFSET",
	"VALUES",
	"UPDATE",
	"SET",
	"JOIN",
	"ON",
	"AND",
	"OR",
	"UNION",
	"AS",
}
