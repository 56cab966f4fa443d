package lang

import (
	"log/slog"
	"regexp"
	"strconv"
	"strings"
)

// ExprKind is the syntactic category of an expression.
type ExprKind uint8

const (
	ExprCall     ExprKind = iota // call
	ExprString                   // string
	ExprBool                     // bool
	ExprNumber                   // number
	ExprVariable                 // variable
)

// String literal delimiters. The escaped form appears when a program is
// itself embedded in a quoted host string.
const (
	quoteMark    = `"`
	escapedQuote = `\"`
)

var (
	numberPattern  = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)
	integerPattern = regexp.MustCompile(`^[+-]?\d+$`)
)

// Classify returns the syntactic category of expr without evaluating it.
// Surrounding whitespace is ignored.
//
// The checks run in order. A call is enclosed in parentheses and a string
// in `"` or `\"`. Any other text holding a quote or parenthesis is
// malformed. Then come the booleans true and false, and numbers matching
// the decimal real-number grammar. Anything else is a variable reference.
func Classify(expr string) (ExprKind, error) {
	expr = strings.TrimSpace(expr)

	switch {
	case expr == "":
		return 0, ErrMalformedExpression.With(slog.String("reason", "empty expression"))
	case strings.HasPrefix(expr, "(") && strings.HasSuffix(expr, ")"):
		return ExprCall, nil
	case strings.Contains(expr, quoteMark):
		if _, ok := unquote(expr); !ok {
			return 0, ErrMalformedExpression.With(
				slog.String("reason", "unterminated string"),
				slog.String("expr", expr),
			)
		}

		return ExprString, nil
	case strings.ContainsAny(expr, "()"):
		return 0, ErrMalformedExpression.With(
			slog.String("reason", "unbalanced parentheses"),
			slog.String("expr", expr),
		)
	case expr == "true" || expr == "false":
		return ExprBool, nil
	case numberPattern.MatchString(expr):
		return ExprNumber, nil
	}

	return ExprVariable, nil
}

// unquote returns the content of a string literal. A literal is either
// `\"...\"` or `"..."`, and its content may not contain its own delimiter.
func unquote(expr string) (string, bool) {
	for _, q := range []string{escapedQuote, quoteMark} {
		if len(expr) >= 2*len(q) &&
			strings.HasPrefix(expr, q) && strings.HasSuffix(expr, q) {
			content := expr[len(q) : len(expr)-len(q)]
			if strings.Contains(content, q) {
				return "", false
			}

			return content, true
		}
	}

	return "", false
}

// parseNumber converts a number literal. Plain decimal integers that fit in
// an int64 are integral; every other literal is a float.
func parseNumber(expr string) (Value, error) {
	if integerPattern.MatchString(expr) {
		if i, err := strconv.ParseInt(expr, 10, 64); err == nil {
			return Int(i), nil
		}
	}

	f, err := strconv.ParseFloat(expr, 64)
	if err != nil {
		return Value{}, ErrNumericOverflow.Wrap(err).With(slog.String("literal", expr))
	}

	return Float(f), nil
}

// isName reports whether expr may be bound by set.
func isName(expr string) bool {
	kind, err := Classify(expr)

	return err == nil && kind == ExprVariable
}
