package cmd

import (
	"context"
	"log/slog"

	"github.com/ardnew/sexpr/cli/cmd/repl"
	"github.com/ardnew/sexpr/lang"
	"github.com/ardnew/sexpr/log"
)

// Repl starts an interactive session.
//
// Statements from the global --source files are executed first and their
// bindings are visible in the session.
type Repl struct {
	NoHistory bool `help:"Do not read or write the history file"`
}

// Run executes the repl command.
func (r *Repl) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	in, env, err := r.prepare(ctx)
	if err != nil {
		return err
	}

	return repl.Run(ctx, in, env, r.cacheDir(ctx), log.Default())
}

// prepare returns the session interpreter and its environment, preloaded
// with the statements of the global source files.
func (r *Repl) prepare(ctx context.Context) (*lang.Interpreter, *lang.Env, error) {
	in := interpreterFrom(ctx)
	env := lang.NewEnv()

	prelude := collect(sourceFilesFrom(ctx))
	if len(prelude) == 0 {
		return in, env, nil
	}

	stmts, err := readProgram(ctx, inputText, prelude...)
	if err != nil {
		return nil, nil, err
	}

	out, err := in.Exec(ctx, env, stmts)

	if werr := out.Format(ctx, outputFrom(ctx), lang.OutputLines); werr != nil {
		return nil, nil, ErrWriteOutput.With(slog.String("command", "repl")).Wrap(werr)
	}

	if err != nil {
		return nil, nil, ErrRunProgram.With(slog.String("command", "repl")).Wrap(err)
	}

	log.DebugContext(ctx, "repl prelude",
		slog.Int("statements", len(stmts)),
		slog.Int("bindings", env.Len()),
	)

	return in, env, nil
}

// cacheDir returns the directory holding the history file, or "" to keep
// history in memory.
func (r *Repl) cacheDir(ctx context.Context) string {
	if r.NoHistory {
		return ""
	}

	ktx := kongContextFrom(ctx)
	if ktx == nil || ktx.Model == nil {
		return ""
	}

	return ktx.Model.Vars()[CacheIdentifier]
}
