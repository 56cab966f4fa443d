package repl

import (
	"slices"
	"testing"

	"github.com/sahilm/fuzzy"

	"github.com/ardnew/sexpr/lang"
)

func TestWordBounds(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		cursor    int
		wantWord  string
		wantStart int
		wantEnd   int
	}{
		{"simple", "foo", 3, "foo", 0, 3},
		{"after_paren", "(ad", 3, "ad", 1, 3},
		{"argument", "(add x fo", 9, "fo", 7, 9},
		{"empty_at_boundary", "(add x ", 7, "", 7, 7},
		{"mid_word", "(uppercase s)", 4, "uppercase", 1, 10},
		{"before_close", "(abs n)", 6, "n", 5, 6},
		{"after_quote", `(concat "ab`, 11, "ab", 9, 11},
		{"past_end", "foo", 10, "foo", 0, 3},
		{"at_start", "foo", 0, "foo", 0, 3},
		// Hyphens and dots are part of names.
		{"hyphenated", "(puts my-var", 12, "my-var", 6, 12},
		{"number", "(add 1.5", 8, "1.5", 5, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			word, start, end := wordBounds(tt.input, tt.cursor)
			if word != tt.wantWord || start != tt.wantStart || end != tt.wantEnd {
				t.Errorf("wordBounds(%q, %d) = (%q, %d, %d), want (%q, %d, %d)",
					tt.input, tt.cursor, word, start, end,
					tt.wantWord, tt.wantStart, tt.wantEnd)
			}
		})
	}
}

func TestInString(t *testing.T) {
	tests := []struct {
		input string
		pos   int
		want  bool
	}{
		{`(puts "ab`, 9, true},
		{`(puts "ab" x`, 12, false},
		{`(puts x`, 7, false},
		{`"`, 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := inString(tt.input, tt.pos); got != tt.want {
				t.Errorf("inString(%q, %d) = %v, want %v", tt.input, tt.pos, got, tt.want)
			}
		})
	}
}

func TestCallAt(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		cursor   int
		wantName string
		wantHead bool
	}{
		{"no_call", "foo", 3, "", false},
		{"head", "(ad", 3, "ad", true},
		{"empty_head", "(", 1, "", true},
		{"argument", "(add x", 6, "add", false},
		{"after_nested", "(add (multiply 2 3) y", 21, "add", false},
		{"inner", "(add (multiply 2", 16, "multiply", false},
		{"inner_head", "(add (mu", 8, "mu", true},
		{"closed", "(abs 1)", 7, "", false},
		{"paren_in_string", `(concat "(" x`, 13, "concat", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name, head := callAt(tt.input, tt.cursor)
			if name != tt.wantName || head != tt.wantHead {
				t.Errorf("callAt(%q, %d) = (%q, %v), want (%q, %v)",
					tt.input, tt.cursor, name, head, tt.wantName, tt.wantHead)
			}
		})
	}
}

func TestCandidates(t *testing.T) {
	env := lang.NewEnv()
	for _, name := range []string{"y", "x"} {
		if err := env.Bind(name, lang.Int(1), lang.BindStrict); err != nil {
			t.Fatal(err)
		}
	}

	t.Run("head_lists_builtins", func(t *testing.T) {
		got := candidates(env, "(ad", 3)
		if !slices.Contains(got, "add") || !slices.Contains(got, "substring") {
			t.Errorf("candidates() = %v, want builtins", got)
		}

		if slices.Contains(got, "x") {
			t.Errorf("candidates() = %v, want no variables in head position", got)
		}
	})

	t.Run("argument_lists_variables", func(t *testing.T) {
		got := candidates(env, "(add x", 6)
		want := []string{"x", "y", "true", "false"}

		if !slices.Equal(got, want) {
			t.Errorf("candidates() = %v, want %v", got, want)
		}
	})

	t.Run("nil_env", func(t *testing.T) {
		got := candidates(nil, "(puts t", 7)
		if !slices.Equal(got, []string{"true", "false"}) {
			t.Errorf("candidates() = %v, want literals only", got)
		}
	})
}

func TestComputeMatches(t *testing.T) {
	env := lang.NewEnv()
	if err := env.Bind("total", lang.Int(3), lang.BindStrict); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name  string
		mode  inputMode
		input string
		want  string // best match; empty for none
	}{
		{"builtin", modeEval, "(uppe", "uppercase"},
		{"variable", modeEval, "(puts tot", "total"},
		{"in_string", modeEval, `(puts "tot`, ""},
		{"empty_word", modeEval, "(puts ", ""},
		{"command", modeCtrl, "va", "vars"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := testModel(t, env)
			m.mode = tt.mode
			m.input.SetValue(tt.input)
			m.input.SetCursor(len(tt.input))

			matches, _, _, _ := m.computeMatches()
			if tt.want == "" {
				if len(matches) != 0 {
					t.Errorf("computeMatches() = %v, want none", matches)
				}

				return
			}

			if len(matches) == 0 || matches[0].Str != tt.want {
				t.Errorf("computeMatches() = %v, want best %q", matches, tt.want)
			}
		})
	}
}

func TestSignatureHint(t *testing.T) {
	if got := signatureHint("(substring s", 12); got == "" {
		t.Error("signatureHint() is empty inside a builtin call")
	}

	if got := signatureHint("(nosuch s", 9); got != "" {
		t.Errorf("signatureHint() = %q, want empty for unknown function", got)
	}
}

func TestRenderCandidateBar(t *testing.T) {
	matches := fuzzy.Find("a", []string{"abs", "add", "max", "replace", "substring"})

	if got := renderCandidateBar(nil, -1, false, 80); got != "" {
		t.Errorf("renderCandidateBar(nil) = %q, want empty", got)
	}

	if got := renderCandidateBar(matches, 0, true, 0); got != "" {
		t.Errorf("renderCandidateBar(width 0) = %q, want empty", got)
	}

	if got := renderCandidateBar(matches, 1, true, 80); got == "" {
		t.Error("renderCandidateBar() is empty")
	}
}
