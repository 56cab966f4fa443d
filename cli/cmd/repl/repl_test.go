package repl

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ardnew/sexpr/lang"
	"github.com/ardnew/sexpr/log"
)

func testModel(t *testing.T, env *lang.Env) model {
	t.Helper()

	if env == nil {
		env = lang.NewEnv()
	}

	s := &session{in: lang.New(), env: env}

	return newModel(t.Context(), s, NewHistory(""), log.Logger{})
}

func typeText(m model, text string) model {
	m, _ = m.handleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})

	return m
}

func TestRun_NoEnv(t *testing.T) {
	err := Run(t.Context(), lang.New(), nil, "", log.Logger{})
	if !errors.Is(err, ErrNoEnv) {
		t.Errorf("Run() error = %v, want %v", err, ErrNoEnv)
	}
}

func TestModel_ExecuteInput(t *testing.T) {
	m := testModel(t, nil)

	m = typeText(m, "(set x 7)")

	m, cmd := m.handleKey(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("enter returned no command")
	}

	if m.input.Value() != "" {
		t.Errorf("input = %q after enter, want empty", m.input.Value())
	}

	if v, ok := m.session.env.Lookup("x"); !ok || v.Render() != "7" {
		t.Errorf("x = %v (ok %v), want 7", v, ok)
	}

	if e, err := m.history.GetEntry(0); err != nil || e.Line != "(set x 7)" {
		t.Errorf("history[0] = %v, %v", e, err)
	}
}

func TestModel_EmptyEnter(t *testing.T) {
	m := testModel(t, nil)

	if _, cmd := m.handleKey(tea.KeyMsg{Type: tea.KeyEnter}); cmd != nil {
		t.Error("enter on empty input returned a command")
	}
}

func TestModel_ToggleMode(t *testing.T) {
	m := testModel(t, nil)
	m = typeText(m, "(puts 1")

	m, _ = m.handleKey(tea.KeyMsg{Type: tea.KeyEsc})
	if m.mode != modeCtrl || m.input.Value() != "" {
		t.Fatalf("after esc: mode %v input %q", m.mode, m.input.Value())
	}

	m, _ = m.handleKey(tea.KeyMsg{Type: tea.KeyEsc})
	if m.mode != modeEval || m.input.Value() != "(puts 1" {
		t.Errorf("after second esc: mode %v input %q", m.mode, m.input.Value())
	}
}

func TestModel_ExecuteCommand(t *testing.T) {
	tests := []struct {
		name     string
		command  string
		quitting bool
	}{
		{"help", "help", false},
		{"vars", "vars", false},
		{"clear", "clear", false},
		{"unknown", "bogus", false},
		{"quit", "quit", true},
		{"exit", "exit", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := testModel(t, nil)

			m, cmd := m.executeCommand(tt.command)
			if cmd == nil {
				t.Error("executeCommand() returned no command")
			}

			if m.quitting != tt.quitting {
				t.Errorf("quitting = %v, want %v", m.quitting, tt.quitting)
			}
		})
	}
}

func TestModel_Reset(t *testing.T) {
	env := lang.NewEnv()
	if err := env.Bind("x", lang.Int(1), lang.BindStrict); err != nil {
		t.Fatal(err)
	}

	m := testModel(t, env)
	m.mode = modeCtrl
	m = typeText(m, "reset")

	m, _ = m.handleKey(tea.KeyMsg{Type: tea.KeyEnter})
	if env.Len() != 0 {
		t.Errorf("env.Len() = %d after reset, want 0", env.Len())
	}

	if e, _ := m.history.GetEntry(0); e.Mode != modeCtrl {
		t.Errorf("history mode = %v, want control", e.Mode)
	}
}

func TestModel_TabCompletion(t *testing.T) {
	m := testModel(t, nil)
	m = typeText(m, "(uppe")

	m, _ = m.handleKey(tea.KeyMsg{Type: tea.KeyTab})
	if got := m.input.Value(); got != "(uppercase" {
		t.Errorf("input = %q after tab, want %q", got, "(uppercase")
	}
}

func TestModel_TabCycleEscape(t *testing.T) {
	env := lang.NewEnv()
	for _, name := range []string{"value", "var"} {
		if err := env.Bind(name, lang.Int(1), lang.BindStrict); err != nil {
			t.Fatal(err)
		}
	}

	m := testModel(t, env)
	m = typeText(m, "(puts va")

	if len(m.matches) < 2 {
		t.Fatalf("matches = %v, want several", m.matches)
	}

	m, _ = m.handleKey(tea.KeyMsg{Type: tea.KeyTab})
	if !m.tabActive || m.input.Value() == "(puts va" {
		t.Fatalf("tab did not start cycling: input %q", m.input.Value())
	}

	m, _ = m.handleKey(tea.KeyMsg{Type: tea.KeyEsc})
	if m.tabActive || m.input.Value() != "(puts va" || m.mode != modeEval {
		t.Errorf("esc did not restore input: %q mode %v", m.input.Value(), m.mode)
	}
}

func TestModel_HistoryNavigation(t *testing.T) {
	m := testModel(t, nil)

	for _, e := range []HistoryEntry{
		{Line: "(puts 1)", Mode: modeEval},
		{Line: "vars", Mode: modeCtrl},
	} {
		if err := m.history.Write(e.Line, e.Mode); err != nil {
			t.Fatal(err)
		}
	}

	m.historyIdx = m.history.Len()

	m, _ = m.handleKey(tea.KeyMsg{Type: tea.KeyUp})
	if m.input.Value() != "vars" || m.mode != modeCtrl {
		t.Fatalf("up: input %q mode %v", m.input.Value(), m.mode)
	}

	m, _ = m.handleKey(tea.KeyMsg{Type: tea.KeyUp})
	if m.input.Value() != "(puts 1)" || m.mode != modeEval {
		t.Fatalf("up twice: input %q mode %v", m.input.Value(), m.mode)
	}

	// Within eval mode only there is nothing newer than the first entry.
	m, _ = m.handleKey(tea.KeyMsg{Type: tea.KeyShiftDown})
	if m.input.Value() != "" || m.historyIdx != m.history.Len() {
		t.Errorf("shift-down: input %q index %d", m.input.Value(), m.historyIdx)
	}
}

func TestModel_CtrlC(t *testing.T) {
	m := testModel(t, nil)
	m = typeText(m, "(abs")

	m, cmd := m.handleKey(tea.KeyMsg{Type: tea.KeyCtrlC})
	if m.quitting || cmd != nil || m.input.Value() != "" {
		t.Fatalf("ctrl-c with input: quitting %v input %q", m.quitting, m.input.Value())
	}

	m, cmd = m.handleKey(tea.KeyMsg{Type: tea.KeyCtrlC})
	if !m.quitting || cmd == nil {
		t.Error("ctrl-c on empty input did not quit")
	}
}

func TestModel_View(t *testing.T) {
	m := testModel(t, nil)

	if view := m.View(); !strings.Contains(view, "Esc") {
		t.Errorf("View() = %q, want empty-input hint", view)
	}

	m.quitting = true
	if view := m.View(); view != "" {
		t.Errorf("View() = %q when quitting, want empty", view)
	}
}

func TestFormatResult(t *testing.T) {
	tests := []struct {
		name string
		res  result
		want int
	}{
		{"value", result{value: lang.Int(1), ok: true}, 1},
		{"output and value", result{output: lang.Output{"a", "b"}, value: lang.Int(1), ok: true}, 3},
		{"error", result{output: lang.Output{"a"}, err: lang.ErrDivisionByZero}, 2},
		{"nothing", result{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatResult(tt.res); len(got) != tt.want {
				t.Errorf("formatResult() = %q, want %d lines", got, tt.want)
			}
		})
	}
}
