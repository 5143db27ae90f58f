package format

import (
	"regexp"
	"strings"
)

// KeywordCase controls how recognized keywords are re-cased during
// normalization.
type KeywordCase string

const (
	// KeywordCaseUpper rewrites matched keywords to their canonical
	// uppercase form (the default).
	KeywordCaseUpper KeywordCase = "upper"

	// KeywordCaseLower rewrites matched keywords to lowercase.
	KeywordCaseLower KeywordCase = "lower"

	// KeywordCaseKeep leaves matched keywords exactly as written. The match
	// is still consumed, so the scan behaves identically to the other
	// policies.
	KeywordCaseKeep KeywordCase = "keep"
)

// Options controls formatting behavior. An Options value is read once when a
// Formatter is constructed and never mutated afterwards.
type Options struct {
	// IndentSize specifies the number of spaces for each indent level
	IndentSize int

	// KeywordCase specifies how recognized keywords are re-cased
	KeywordCase KeywordCase

	// Keywords is the ordered keyword set; nil means DefaultKeywords
	Keywords []Keyword
}

// DefaultOptions returns standard formatting options: two-space indentation,
// uppercase keywords, and the default keyword set.
func DefaultOptions() *Options {
	return &Options{
		IndentSize:  2,
		KeywordCase: KeywordCaseUpper,
		Keywords:    DefaultKeywords,
	}
}

// Defaults are the options used by NewDefault and the package-level Format
// convenience function.
var Defaults = DefaultOptions()

// caseRule is one compiled keyword substitution: a case-insensitive
// whole-word pattern and the text it rewrites matches to.
type caseRule struct {
	pattern     *regexp.Regexp
	replacement string
	keep        bool
}

// Formatter re-cases keywords and re-lays-out SQL text according to its
// options. It performs no parsing: the input is treated as a flat token
// stream, so any string is acceptable and formatting never fails.
//
// A Formatter is immutable once constructed and safe for concurrent use;
// every call to Format keeps all of its state local to the call.
//
// Example usage:
//
//	f := format.New(&format.Options{IndentSize: 4, KeywordCase: format.KeywordCaseUpper})
//	fmt.Println(f.Format("select id from users;"))
//
// Output:
//
//	SELECT id
//	FROM users;
type Formatter struct {
	options *Options
	indent  string
	rules   []caseRule
	words   map[string]struct{}
}

// New creates a new Formatter with the specified options. Passing nil is
// equivalent to DefaultOptions(). The keyword patterns are compiled once
// here rather than per call.
func New(options *Options) *Formatter {
	if options == nil {
		options = DefaultOptions()
	}

	keywords := options.Keywords
	if keywords == nil {
		keywords = DefaultKeywords
	}

	size := options.IndentSize
	if size < 0 {
		size = 0
	}

	f := &Formatter{
		options: options,
		indent:  strings.Repeat(" ", size),
		rules:   make([]caseRule, 0, len(keywords)),
		words:   make(map[string]struct{}, len(keywords)),
	}

	for _, kw := range keywords {
		f.rules = append(f.rules, compileRule(kw, options.KeywordCase))
		f.words[strings.ToLower(string(kw))] = struct{}{}
	}

	return f
}

// NewDefault creates a new Formatter with default options.
func NewDefault() *Formatter {
	return New(Defaults)
}

// Format normalizes keyword casing in sql and lays the result out with
// newlines and indentation. It is total over all string inputs: empty input
// yields empty output, and non-SQL text is re-spaced as literal tokens.
func (f *Formatter) Format(sql string) string {
	return f.layout(f.tokenize(f.normalize(sql)))
}

// Format formats sql using Defaults (convenience function).
func Format(sql string) string {
	return NewDefault().Format(sql)
}

// compileRule builds the case-insensitive whole-word pattern for a keyword.
// Internal spaces in multi-word keywords match any whitespace run, so
// "group   by" still re-cases as a unit.
func compileRule(kw Keyword, kwCase KeywordCase) caseRule {
	parts := strings.Fields(string(kw))
	for i, p := range parts {
		parts[i] = regexp.QuoteMeta(p)
	}

	rule := caseRule{
		pattern: regexp.MustCompile(`(?i)\b` + strings.Join(parts, `\s+`) + `\b`),
	}

	if kwCase == KeywordCaseKeep {
		rule.keep = true
		return rule
	}

	rule.replacement = kw.Canonical(kwCase)
	return rule
}
