package cmd

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/ardnew/sexpr/lang"
)

// writeFiles creates each named file under a new temporary directory and
// returns the directory.
func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()

	dir := t.TempDir()

	for name, content := range files {
		path := filepath.Join(dir, name)

		if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
			t.Fatal(err)
		}

		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			t.Fatal(err)
		}
	}

	return dir
}

// pipeStdin replaces os.Stdin with a pipe carrying content for the duration
// of the test.
func pipeStdin(t *testing.T, content string) {
	t.Helper()

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}

	old := os.Stdin
	os.Stdin = r

	t.Cleanup(func() {
		os.Stdin = old
		r.Close()
	})

	go func() {
		defer w.Close()

		_, _ = io.WriteString(w, content)
	}()
}

func TestWithSourceFiles_Empty(t *testing.T) {
	for _, sources := range [][]string{nil, {}} {
		if got := sourceFilesFrom(WithSourceFiles(t.Context(), sources)); got != nil {
			t.Errorf("WithSourceFiles(%v) stored %v, want nil", sources, got)
		}
	}
}

func TestWithSourceFiles_Read(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"a.lisp":     "(puts 1)",
		"b.lisp":     "(puts 2)",
		"sub/c.lisp": "(puts 3)",
	})

	a := filepath.Join(dir, "a.lisp")
	b := filepath.Join(dir, "b.lisp")
	link := filepath.Join(dir, "link.lisp")

	if err := os.Symlink(a, link); err != nil {
		t.Fatal(err)
	}

	rel, err := filepath.Rel(mustGetwd(t), a)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		sources []string
		want    string
	}{
		{"single", []string{a}, "(puts 1)"},
		{"ordered", []string{b, a}, "(puts 2)(puts 1)"},
		{"duplicate path", []string{a, a}, "(puts 1)"},
		{"relative and absolute", []string{rel, a}, "(puts 1)"},
		{"symlink", []string{a, link}, "(puts 1)"},
		{"nonexistent skipped", []string{filepath.Join(dir, "nope"), b}, "(puts 2)"},
		{"nested", []string{filepath.Join(dir, "sub", "c.lisp")}, "(puts 3)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			files := sourceFilesFrom(WithSourceFiles(t.Context(), tt.sources))
			if files == nil {
				t.Fatal("WithSourceFiles stored nil")
			}

			var buf bytes.Buffer

			if _, err := files.WriteTo(&buf); err != nil {
				t.Fatal(err)
			}

			if got := buf.String(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWithSourceFiles_AllNonexistent(t *testing.T) {
	dir := t.TempDir()

	ctx := WithSourceFiles(t.Context(), []string{
		filepath.Join(dir, "a"), filepath.Join(dir, "b"),
	})

	if got := sourceFilesFrom(ctx); got != nil {
		t.Errorf("sourceFilesFrom() = %v, want nil", got)
	}
}

func TestWithSourceFiles_StdinLast(t *testing.T) {
	dir := writeFiles(t, map[string]string{"a.lisp": "file"})

	pipeStdin(t, "stdin")

	files := sourceFilesFrom(WithSourceFiles(t.Context(), []string{
		"-", filepath.Join(dir, "a.lisp"), "-",
	}))
	if files == nil {
		t.Fatal("WithSourceFiles stored nil")
	}

	if files.Stdin() == nil {
		t.Error("Stdin() = nil, want os.Stdin")
	}

	data, err := io.ReadAll(files)
	if err != nil {
		t.Fatal(err)
	}

	if got := string(data); got != "filestdin" {
		t.Errorf("got %q, want %q", got, "filestdin")
	}
}

func TestSourceFiles_Sources(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"a.lisp": "(puts 1) ; one",
		"b.lisp": "(puts 2)",
	})

	files := sourceFilesFrom(WithSourceFiles(t.Context(), []string{
		filepath.Join(dir, "a.lisp"), filepath.Join(dir, "b.lisp"),
	}))

	var got []string

	for src := range files.Sources() {
		data, err := io.ReadAll(src)
		if err != nil {
			t.Fatal(err)
		}

		got = append(got, string(data))
	}

	if len(got) != 2 || got[0] != "(puts 1) ; one" || got[1] != "(puts 2)" {
		t.Errorf("Sources() yielded %q", got)
	}

	if files.IsZero() {
		t.Error("IsZero() = true, want false")
	}
}

func TestInterpreterFrom(t *testing.T) {
	in := interpreterFrom(t.Context())
	if in.MaxDepth() != lang.DefaultMaxDepth {
		t.Errorf("MaxDepth() = %d, want %d", in.MaxDepth(), lang.DefaultMaxDepth)
	}

	ctx := WithOptions(t.Context(), lang.WithMaxDepth(7), lang.WithFailurePolicy(lang.FailAbort))

	in = interpreterFrom(ctx, lang.WithMaxDepth(9))
	if in.MaxDepth() != 9 {
		t.Errorf("MaxDepth() = %d, want 9", in.MaxDepth())
	}

	if in.FailurePolicy() != lang.FailAbort {
		t.Errorf("FailurePolicy() = %v, want %v", in.FailurePolicy(), lang.FailAbort)
	}
}

func TestOutputFrom(t *testing.T) {
	if got := outputFrom(context.Background()); got != os.Stdout {
		t.Errorf("outputFrom() = %v, want os.Stdout", got)
	}

	var buf bytes.Buffer

	if got := outputFrom(WithOutput(t.Context(), &buf)); got != &buf {
		t.Errorf("outputFrom() = %v, want buffer", got)
	}
}

func mustGetwd(t *testing.T) string {
	t.Helper()

	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}

	return wd
}
