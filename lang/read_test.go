package lang

import (
	"errors"
	"slices"
	"strings"
	"testing"
	"testing/iotest"
)

func TestReadStatements(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []string
	}{
		{"one per line", "(set x 5)\n(puts x)\n", []string{"(set x 5)", "(puts x)"}},
		{"several on a line", "(puts 1) (puts 2)", []string{"(puts 1)", "(puts 2)"}},
		{"multi-line", "(puts\n  (add 1\n    2))", []string{"(puts\n  (add 1\n    2))"}},
		{"comments", "; header\n(puts 1) ; trailing\n", []string{"(puts 1)"}},
		{"semicolon in string", `(puts "a;b")`, []string{`(puts "a;b")`}},
		{"paren in string", `(puts "(")`, []string{`(puts "(")`}},
		{"escaped string", `(puts \"x) ;\")`, []string{`(puts \"x) ;\")`}},
		{"empty", "", nil},
		{"only comments", "; nothing\n\n;here", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadStatements(strings.NewReader(tt.src))
			if err != nil {
				t.Fatal(err)
			}

			if !slices.Equal(got, tt.want) {
				t.Errorf("ReadStatements() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestReadStatements_InnerComment(t *testing.T) {
	stmts, err := ReadStatements(strings.NewReader("(puts (add 1 ; one\n  2))"))
	if err != nil {
		t.Fatal(err)
	}

	out, err := New().Run(t.Context(), stmts)
	if err != nil {
		t.Fatal(err)
	}

	if !slices.Equal(out, Output{"3"}) {
		t.Errorf("output = %q", out)
	}
}

func TestReadStatements_Malformed(t *testing.T) {
	tests := []struct {
		name string
		src  string
		line int64
	}{
		{"bare text", "puts 1", 1},
		{"stray close", "(puts 1))", 1},
		{"top-level string", "\n\"x\"", 2},
		{"stray on later line", "(puts 1)\n\n  oops", 3},
		{"unterminated statement", "(puts 1)\n(puts\n  (add 1 2)", 2},
		{"unterminated string", `(puts "abc)`, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadStatements(strings.NewReader(tt.src))
			if !errors.Is(err, ErrMalformedExpression) {
				t.Fatalf("error = %v, want %v", err, ErrMalformedExpression)
			}

			var e *Error
			if errors.As(err, &e) {
				if v, ok := e.Attr("source_line"); !ok || v.Int64() != tt.line {
					t.Errorf("source_line = %v, want %d", v, tt.line)
				}
			}
		})
	}
}

func TestReadStatements_ReadError(t *testing.T) {
	_, err := ReadStatements(iotest.ErrReader(errors.New("boom")))
	if !errors.Is(err, ErrReadInput) {
		t.Errorf("error = %v, want %v", err, ErrReadInput)
	}
}
