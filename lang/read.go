package lang

import (
	"io"
	"log/slog"
	"strings"
	"unicode"
	"unicode/utf8"
)

// commentMark starts a comment that runs to the end of the line. It is
// recognized only outside string literals.
const commentMark = ';'

// ReadStatements reads program text and returns its top-level statements.
//
// A statement is a balanced parenthesized call and may span several lines;
// each is returned with its comments removed. Between statements only
// whitespace and comments are allowed.
func ReadStatements(r io.Reader) ([]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, ErrReadInput.Wrap(err)
	}

	return scanStatements(string(data))
}

func scanStatements(src string) ([]string, error) {
	var (
		stmts     []string
		cur       strings.Builder
		depth     int
		q         quote
		line      = 1
		startLine int
	)

	for i := 0; i < len(src); {
		if next, n := q.advance(src[i:]); n > 0 {
			if depth == 0 {
				return nil, strayText(line, src[i:])
			}

			q = next

			cur.WriteString(src[i : i+n])
			i += n

			continue
		}

		r, n := utf8.DecodeRuneInString(src[i:])

		if r == '\n' {
			line++
		}

		switch {
		case q != quoteNone:
			cur.WriteRune(r)

		case r == commentMark:
			end := strings.IndexByte(src[i:], '\n')
			if end < 0 {
				end = len(src) - i
			}

			if depth > 0 {
				cur.WriteByte(' ')
			}

			i += end

			continue

		case r == '(':
			if depth == 0 {
				startLine = line
			}

			depth++

			cur.WriteRune(r)

		case r == ')':
			if depth == 0 {
				return nil, strayText(line, src[i:])
			}

			depth--

			cur.WriteRune(r)

			if depth == 0 {
				stmts = append(stmts, strings.TrimSpace(cur.String()))
				cur.Reset()
			}

		case depth == 0:
			if !unicode.IsSpace(r) {
				return nil, strayText(line, src[i:])
			}

		default:
			cur.WriteRune(r)
		}

		i += n
	}

	if depth > 0 || q != quoteNone {
		return nil, ErrMalformedExpression.With(
			slog.String("reason", "unterminated statement"),
			slog.Int("source_line", startLine),
		)
	}

	return stmts, nil
}

func strayText(line int, rest string) *Error {
	if i := strings.IndexByte(rest, '\n'); i >= 0 {
		rest = rest[:i]
	}

	return ErrMalformedExpression.With(
		slog.String("reason", "text outside a statement"),
		slog.Int("source_line", line),
		slog.String("text", rest),
	)
}
