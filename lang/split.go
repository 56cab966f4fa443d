package lang

import (
	"log/slog"
	"strings"
	"unicode"
	"unicode/utf8"
)

// quote tracks whether a scan is inside a string literal, and which
// delimiter opened it. Only the opening delimiter closes a literal.
type quote uint8

const (
	quoteNone quote = iota
	quotePlain
	quoteEscaped
)

// advance consumes a string delimiter at the start of s. It returns the
// new state and the width of the delimiter, or q and 0 if s does not begin
// with a delimiter that is significant in state q.
func (q quote) advance(s string) (quote, int) {
	switch q {
	case quotePlain:
		if strings.HasPrefix(s, quoteMark) {
			return quoteNone, len(quoteMark)
		}
	case quoteEscaped:
		if strings.HasPrefix(s, escapedQuote) {
			return quoteNone, len(escapedQuote)
		}
	default:
		if strings.HasPrefix(s, escapedQuote) {
			return quoteEscaped, len(escapedQuote)
		}

		if strings.HasPrefix(s, quoteMark) {
			return quotePlain, len(quoteMark)
		}
	}

	return q, 0
}

// Split divides the argument text of a call into its top-level arguments.
//
// Whitespace separates arguments only outside string literals and at
// parenthesis depth zero, so nested calls and strings are never divided.
// Unbalanced parentheses and unterminated strings are malformed.
func Split(text string) ([]string, error) {
	var (
		args  []string
		start = -1
		depth int
		q     quote
	)

	for i := 0; i < len(text); {
		next, n := q.advance(text[i:])
		if n > 0 {
			q = next
		} else if q == quoteNone {
			r, size := utf8.DecodeRuneInString(text[i:])
			n = size

			switch {
			case r == '(':
				depth++
			case r == ')':
				depth--
				if depth < 0 {
					return nil, ErrMalformedExpression.With(
						slog.String("reason", "unbalanced parentheses"),
						slog.String("text", text),
					)
				}
			case unicode.IsSpace(r) && depth == 0:
				if start >= 0 {
					args = append(args, text[start:i])
					start = -1
				}

				i += n

				continue
			}
		} else {
			_, n = utf8.DecodeRuneInString(text[i:])
		}

		if start < 0 {
			start = i
		}

		i += n
	}

	switch {
	case q != quoteNone:
		return nil, ErrMalformedExpression.With(
			slog.String("reason", "unterminated string"),
			slog.String("text", text),
		)
	case depth != 0:
		return nil, ErrMalformedExpression.With(
			slog.String("reason", "unbalanced parentheses"),
			slog.String("text", text),
		)
	}

	if start >= 0 {
		args = append(args, text[start:])
	}

	return args, nil
}

// splitCall separates a call expression into its function name and the raw
// argument text that follows it.
func splitCall(expr string) (name, rest string) {
	inner := strings.TrimSpace(expr[1 : len(expr)-1])

	if i := strings.IndexFunc(inner, unicode.IsSpace); i >= 0 {
		return inner[:i], strings.TrimSpace(inner[i:])
	}

	return inner, ""
}
