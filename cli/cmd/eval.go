package cmd

import (
	"context"

	"github.com/ardnew/sexpr/lang"
)

// Eval runs its arguments as the statements of one program, after any
// statements from the global --source files.
type Eval struct {
	Statements []string `arg:"" help:"Statements to evaluate, in order" name:"statement"`
	Output     string   `       help:"Output format"                    default:"lines" enum:"${outputFormatEnum}" short:"o"`
}

// Run executes the eval command.
func (e *Eval) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	format, err := lang.ParseOutputFormat(e.Output)
	if err != nil {
		return err
	}

	stmts := e.Statements

	if prelude := collect(sourceFilesFrom(ctx)); len(prelude) > 0 {
		pre, err := readProgram(ctx, inputText, prelude...)
		if err != nil {
			return err
		}

		stmts = append(pre, stmts...)
	}

	return runProgram(ctx, "eval", stmts, format)
}
