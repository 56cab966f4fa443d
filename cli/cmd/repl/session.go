package repl

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/ardnew/sexpr/lang"
	"github.com/ardnew/sexpr/log"
)

// session evaluates input lines against one persistent environment.
type session struct {
	in     *lang.Interpreter
	env    *lang.Env
	logger log.Logger
}

// result is the outcome of evaluating one input line.
type result struct {
	output lang.Output // lines appended by top-level puts
	value  lang.Value  // value of the last statement
	ok     bool        // whether value is set
	err    error
}

// eval evaluates input. A line beginning with "(" may hold several
// statements; anything else is a single expression such as a variable name
// or literal. Evaluation stops at the first failing statement, keeping the
// bindings and output made before it.
func (s *session) eval(ctx context.Context, input string) result {
	input = strings.TrimSpace(input)

	stmts := []string{input}

	if strings.HasPrefix(input, "(") {
		var err error

		stmts, err = lang.ReadStatements(strings.NewReader(input))
		if err != nil {
			return result{err: err}
		}
	}

	var res result

	for _, stmt := range stmts {
		v, out, err := s.in.Eval(ctx, s.env, stmt)

		res.output = append(res.output, out...)

		if err != nil {
			s.logger.TraceContext(ctx, "repl eval failed",
				slog.String("expr", stmt),
				slog.Any("error", err),
			)

			res.err = err
			res.ok = false

			return res
		}

		res.value, res.ok = v, true
	}

	return res
}

// vars returns one line per bound variable, sorted by name.
func (s *session) vars() []string {
	lines := make([]string, 0, s.env.Len())

	for _, name := range s.env.Names() {
		v, _ := s.env.Lookup(name)
		lines = append(lines, fmt.Sprintf("%s = %s", name, display(v)))
	}

	return lines
}

// reset removes every binding.
func (s *session) reset() { s.env.Reset() }

// display renders v for the terminal. Text is quoted so that "5" and 5 are
// told apart.
func display(v lang.Value) string {
	if s, ok := v.Text(); ok {
		return strconv.Quote(s)
	}

	return v.Render()
}
