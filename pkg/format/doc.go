// Package format provides rule-based formatting for raw SQL text.
//
// The formatter is a single-pass lexical transformer, not a SQL parser: it
// never builds a syntax tree and has no dialect awareness. Formatting is two
// stages run back to back:
//
//  1. Normalization collapses whitespace and re-cases every occurrence of a
//     fixed, ordered keyword set using case-insensitive whole-word matching.
//  2. Layout tokenizes the normalized text on whitespace, parentheses,
//     commas, and semicolons, then emits newline-separated, indented output
//     driven by a single indent-depth counter.
//
// Because no parsing happens, Format is total: every string input, including
// the empty string and non-SQL text, produces output without error. Malformed
// SQL degrades gracefully; an unmatched ")" clamps indentation at zero rather
// than going negative.
//
// Example usage:
//
//	out := format.Format("select id, name from users where id in (1,2,3);")
//	fmt.Println(out)
//
// Output:
//
//	SELECT id,
//	  name
//	FROM users
//	WHERE id in (
//	  1,
//	    2,
//	    3
//	);
//
// Known property: multi-word keywords such as "LEFT JOIN" are re-cased as a
// unit during normalization, but the tokenizer then splits them into
// separate words, so only the single-word member ("JOIN") triggers the
// line-break-before-keyword layout rule. "LEFT JOIN" therefore renders with
// the break before "JOIN", not before "LEFT". This is preserved observable
// behavior, not something callers should paper over.
package format
