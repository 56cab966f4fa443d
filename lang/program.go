package lang

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
)

// Output is the ordered sequence of rendered values produced by a run.
type Output []string

// ErrorMarker returns the output entry recorded in place of further output
// when the statement with the given 1-based ordinal fails.
func ErrorMarker(line int) string {
	return "ERROR at line " + strconv.Itoa(line)
}

// Run executes statements in order against a fresh [Env].
func (in *Interpreter) Run(ctx context.Context, statements []string) (Output, error) {
	return in.Exec(ctx, NewEnv(), statements)
}

// Exec executes statements in order against env, collecting the output of
// every top-level puts.
//
// Execution stops at the first failing statement. The returned error is
// refined with the statement's 1-based ordinal as the "line" attribute.
// Under [FailMark] the output produced so far is returned followed by
// [ErrorMarker]; under [FailAbort] the output is nil.
func (in *Interpreter) Exec(
	ctx context.Context,
	env *Env,
	statements []string,
) (Output, error) {
	out := make(Output, 0, len(statements))

	in.logger.DebugContext(ctx, "run start", slog.Int("statements", len(statements)))

	for i, stmt := range statements {
		line := i + 1

		in.logger.TraceContext(ctx, "statement",
			slog.Int("line", line),
			slog.String("expr", stmt),
		)

		if err := context.Cause(ctx); err != nil {
			return in.fail(ctx, out, line, ErrCanceled.Wrap(err))
		}

		_, produced, err := in.Eval(ctx, env, stmt)
		if err != nil {
			return in.fail(ctx, out, line, err)
		}

		out = append(out, produced...)
	}

	in.logger.DebugContext(ctx, "run complete", slog.Int("output", len(out)))

	return out, nil
}

func (in *Interpreter) fail(
	ctx context.Context,
	out Output,
	line int,
	err error,
) (Output, error) {
	e := asError(err).With(slog.Int("line", line))

	in.logger.DebugContext(ctx, "statement failed", slog.Any("error", e))

	if in.failure == FailAbort {
		return nil, e
	}

	return append(out, ErrorMarker(line)), e
}

// asError returns err as an *Error, wrapping foreign errors.
func asError(err error) *Error {
	e := &Error{}
	if errors.As(err, &e) {
		return e
	}

	return &Error{err: err}
}
