// Package lang implements a miniature S-expression language: parenthesized
// calls over a closed library of builtins, evaluated directly from text.
//
// # Syntax
//
// Expressions are classified by their shape, never by evaluating them:
//
//	(name arg ...)   call; arguments are split at top-level whitespace
//	"text"  \"text\" string literal, no escape sequences
//	true  false      boolean literal
//	42  -1.5  2e3    number literal; plain decimal integers are integral
//	name             variable reference
//
// A program is an ordered list of statements, each a single expression.
// [ReadStatements] extracts statements from source text, where a statement
// may span lines and ";" starts a comment.
//
// # Builtins
//
//	set name expr               bind name (strict by default)
//	puts expr                   append the rendered value to the output
//	str expr                    render any value as text
//	concat a b                  join two strings
//	uppercase s  lowercase s    case conversion
//	replace s old new           replace every occurrence
//	substring s start end       code points in [start, end)
//	add subtract multiply divide  left fold over 2 or more numbers
//	min max                     extremum of 1 or more numbers
//	abs n                       absolute value
//	gt a b  lt a b              numeric comparison
//
// Arithmetic stays integral while every operand is integral (and, for
// divide, every step is exact). Non-integral results are rounded to four
// fractional digits as they are computed, and render with at least one
// fractional digit, so 5 and 5.0 remain distinct in output.
//
// # Example
//
//	in := lang.New()
//	out, err := in.Run(ctx, []string{
//		`(set greeting "hello")`,
//		`(puts (concat greeting " world"))`,
//		`(puts (divide 10 4))`,
//	})
//	// out: ["hello world", "2.5"]
//
// # Failures
//
// Every error is an [*Error] refining one of the Err sentinels, so callers
// test kinds with errors.Is. A run stops at the first failing statement and,
// by default, records [ErrorMarker] in its output.
package lang
