package repl

import (
	"errors"
	"slices"
	"testing"

	"github.com/ardnew/sexpr/lang"
	"github.com/ardnew/sexpr/log"
)

func testSession() *session {
	return &session{in: lang.New(), env: lang.NewEnv(), logger: log.Logger{}}
}

func TestSession_Eval(t *testing.T) {
	tests := []struct {
		name      string
		inputs    []string // evaluated in order against one session
		wantOut   lang.Output
		wantValue string
		wantErr   error
	}{
		{
			name:      "statements",
			inputs:    []string{"(set x 5) (puts x)"},
			wantOut:   lang.Output{"5"},
			wantValue: "5",
		},
		{
			name:      "bindings persist",
			inputs:    []string{"(set x 2)", "(multiply x 21)"},
			wantValue: "42",
		},
		{
			name:      "bare variable",
			inputs:    []string{`(set s "hi")`, "s"},
			wantValue: `"hi"`,
		},
		{
			name:      "literal",
			inputs:    []string{"true"},
			wantValue: "true",
		},
		{
			name:    "unbound",
			inputs:  []string{"nope"},
			wantErr: lang.ErrUnboundVariable,
		},
		{
			name:    "stops at error",
			inputs:  []string{"(puts 1) (divide 1 0) (puts 2)"},
			wantOut: lang.Output{"1"},
			wantErr: lang.ErrDivisionByZero,
		},
		{
			name:    "malformed",
			inputs:  []string{"(puts 1"},
			wantErr: lang.ErrMalformedExpression,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := testSession()

			var res result
			for _, input := range tt.inputs {
				res = s.eval(t.Context(), input)
			}

			if !slices.Equal(res.output, tt.wantOut) {
				t.Errorf("output = %q, want %q", res.output, tt.wantOut)
			}

			if tt.wantErr != nil {
				if !errors.Is(res.err, tt.wantErr) {
					t.Errorf("err = %v, want %v", res.err, tt.wantErr)
				}

				if res.ok {
					t.Error("ok = true on error")
				}

				return
			}

			if res.err != nil {
				t.Fatalf("err = %v", res.err)
			}

			if !res.ok || display(res.value) != tt.wantValue {
				t.Errorf("value = %s (ok %v), want %s", display(res.value), res.ok, tt.wantValue)
			}
		})
	}
}

func TestSession_ErrorKeepsBindings(t *testing.T) {
	s := testSession()

	res := s.eval(t.Context(), "(set a 1) (set b (divide a 0))")
	if !errors.Is(res.err, lang.ErrDivisionByZero) {
		t.Fatalf("err = %v, want %v", res.err, lang.ErrDivisionByZero)
	}

	if _, ok := s.env.Lookup("a"); !ok {
		t.Error("binding made before the error is lost")
	}

	if _, ok := s.env.Lookup("b"); ok {
		t.Error("failing statement left a binding")
	}
}

func TestSession_VarsAndReset(t *testing.T) {
	s := testSession()

	if res := s.eval(t.Context(), `(set z "q") (set a 1.5)`); res.err != nil {
		t.Fatal(res.err)
	}

	want := []string{"a = 1.5", `z = "q"`}
	if got := s.vars(); !slices.Equal(got, want) {
		t.Errorf("vars() = %q, want %q", got, want)
	}

	s.reset()

	if got := s.vars(); len(got) != 0 {
		t.Errorf("vars() after reset = %q, want none", got)
	}
}

func TestDisplay(t *testing.T) {
	tests := []struct {
		v    lang.Value
		want string
	}{
		{lang.Int(5), "5"},
		{lang.Text("5"), `"5"`},
		{lang.Text(`a"b`), `"a\"b"`},
		{lang.Bool(false), "false"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := display(tt.v); got != tt.want {
				t.Errorf("display() = %s, want %s", got, tt.want)
			}
		})
	}
}
