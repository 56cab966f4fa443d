package cmd

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/alecthomas/kong"

	"github.com/ardnew/sexpr/lang"
)

func TestRepl_Prepare(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"lib.lisp":  "(set base 10)\n(puts base)\n",
		"fail.lisp": "(set a 1)\n(puts nope)\n",
	})

	t.Run("no sources", func(t *testing.T) {
		in, env, err := (&Repl{}).prepare(WithSourceFiles(t.Context(), nil))
		if err != nil || in == nil || env.Len() != 0 {
			t.Errorf("prepare() = %v, %d bindings, %v", in, env.Len(), err)
		}
	})

	t.Run("preloads bindings", func(t *testing.T) {
		var buf bytes.Buffer

		ctx := WithOutput(t.Context(), &buf)
		ctx = WithSourceFiles(ctx, []string{filepath.Join(dir, "lib.lisp")})

		_, env, err := (&Repl{}).prepare(ctx)
		if err != nil {
			t.Fatal(err)
		}

		if v, ok := env.Lookup("base"); !ok || v.Render() != "10" {
			t.Errorf("base = %v (ok %v), want 10", v, ok)
		}

		if buf.String() != "10\n" {
			t.Errorf("output = %q, want %q", buf.String(), "10\n")
		}
	})

	t.Run("prelude failure", func(t *testing.T) {
		var buf bytes.Buffer

		ctx := WithOutput(t.Context(), &buf)
		ctx = WithSourceFiles(ctx, []string{filepath.Join(dir, "fail.lisp")})

		_, _, err := (&Repl{}).prepare(ctx)
		if !errors.Is(err, ErrRunProgram) || !errors.Is(err, lang.ErrUnboundVariable) {
			t.Errorf("prepare() error = %v, want %v", err, lang.ErrUnboundVariable)
		}

		if want := lang.ErrorMarker(2) + "\n"; buf.String() != want {
			t.Errorf("output = %q, want %q", buf.String(), want)
		}
	})
}

func TestRepl_CacheDir(t *testing.T) {
	var cli struct{}

	parser, err := kong.New(&cli, kong.Vars{CacheIdentifier: "/tmp/sexpr-cache"})
	if err != nil {
		t.Fatal(err)
	}

	ktx, err := parser.Parse(nil)
	if err != nil {
		t.Fatal(err)
	}

	ctx := WithContext(t.Context(), ktx)

	tests := []struct {
		name string
		repl Repl
		ctx  func() context.Context
		want string
	}{
		{"from vars", Repl{}, func() context.Context { return ctx }, "/tmp/sexpr-cache"},
		{"no history", Repl{NoHistory: true}, func() context.Context { return ctx }, ""},
		{"no kong context", Repl{}, t.Context, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.repl.cacheDir(tt.ctx()); got != tt.want {
				t.Errorf("cacheDir() = %q, want %q", got, tt.want)
			}
		})
	}
}
