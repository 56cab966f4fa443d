package cmd

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ardnew/sexpr/lang"
	"github.com/ardnew/sexpr/log"
)

// Input formats accepted by [Run].
const (
	inputText  = "text"
	inputBatch = "batch"
)

// Run executes one program assembled from source files.
type Run struct {
	Files  []string `arg:"" help:"Program files, or '-' for stdin"                 name:"file"                                   optional:""`
	Input  string   `       help:"Source format: statements or a batch document" default:"text"  enum:"text,batch"           short:"i"`
	Output string   `       help:"Output format"                                 default:"lines" enum:"${outputFormatEnum}" short:"o"`
}

// Run executes the run command.
//
// Statements from the global --source files come first, then those of the
// named files. With neither, the program is read from stdin.
func (r *Run) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	format, err := lang.ParseOutputFormat(r.Output)
	if err != nil {
		return err
	}

	paths, err := resolveScripts(r.Files, scriptPathFrom(ctx))
	if err != nil {
		return err
	}

	sources := collect(sourceFilesFrom(ctx), buildSourceFiles(paths))
	if len(sources) == 0 {
		sources = append(sources, os.Stdin)
	}

	stmts, err := readProgram(ctx, r.Input, sources...)
	if err != nil {
		return err
	}

	return runProgram(ctx, "run", stmts, format)
}

// collect returns the sources of every non-nil files in order.
func collect(files ...SourceFiles) []io.Reader {
	var sources []io.Reader

	for _, f := range files {
		if f == nil {
			continue
		}

		for src := range f.Sources() {
			sources = append(sources, src)
		}
	}

	return sources
}

// readProgram reads the statements of every source in order.
func readProgram(ctx context.Context, input string, sources ...io.Reader) ([]string, error) {
	var stmts []string

	for i, src := range sources {
		var (
			part []string
			err  error
		)

		if input == inputBatch {
			var b lang.Batch

			b, err = lang.DecodeBatch(ctx, src)
			part = b.Expressions
		} else {
			part, err = lang.ReadStatements(src)
		}

		if err != nil {
			return nil, ErrReadProgram.
				With(slog.Int("source", i+1), slog.String("input", input)).
				Wrap(err)
		}

		stmts = append(stmts, part...)
	}

	return stmts, nil
}

// runProgram runs stmts as one program and writes its output.
//
// Under the abort failure policy a failed run writes nothing. Otherwise the
// output, including any error marker, is written before the error is
// returned.
func runProgram(
	ctx context.Context,
	command string,
	stmts []string,
	format lang.OutputFormat,
) error {
	in := interpreterFrom(ctx)

	log.DebugContext(ctx, "program loaded",
		slog.String("command", command),
		slog.Int("statements", len(stmts)),
	)

	out, err := in.Run(ctx, stmts)

	if out != nil || err == nil {
		if werr := out.Format(ctx, outputFrom(ctx), format); werr != nil {
			return ErrWriteOutput.With(slog.String("command", command)).Wrap(werr)
		}
	}

	if err != nil {
		return ErrRunProgram.With(slog.String("command", command)).Wrap(err)
	}

	return nil
}

// resolveScripts maps each file argument to a readable path. "-" is kept.
// A relative name that does not exist in the working directory is looked up
// in each of dirs in order.
func resolveScripts(files, dirs []string) ([]string, error) {
	paths := make([]string, 0, len(files))

	for _, file := range files {
		path, ok := findScript(file, dirs)
		if !ok {
			return nil, ErrScriptMissing.With(
				slog.String("file", file),
				slog.Any("path", dirs),
			)
		}

		paths = append(paths, path)
	}

	return paths, nil
}

func findScript(file string, dirs []string) (string, bool) {
	if file == stdinSource || isFile(file) {
		return file, true
	}

	if filepath.IsAbs(file) {
		return "", false
	}

	for _, dir := range dirs {
		if path := filepath.Join(dir, file); isFile(path) {
			return path, true
		}
	}

	return "", false
}

func isFile(path string) bool {
	info, err := os.Stat(path)

	return err == nil && !info.IsDir()
}
