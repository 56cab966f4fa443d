package repl

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"github.com/ardnew/sexpr/lang"
)

// ctrlCommands are the available control-mode commands.
var ctrlCommands = []string{"help", "vars", "reset", "clear", "quit"}

// isWordBoundary returns true if the rune delimits a completion word:
// whitespace, parentheses and the string delimiter.
func isWordBoundary(r rune) bool {
	switch r {
	case ' ', '\t', '(', ')', '"', '\\':
		return true
	}

	return false
}

// wordBounds returns the current word at the cursor position and its byte
// boundaries within input.
// Returns an empty word when the cursor sits on a boundary.
func wordBounds(input string, cursor int) (word string, start, end int) {
	if cursor > len(input) {
		cursor = len(input)
	}

	start = cursor

	for start > 0 {
		r, size := utf8.DecodeLastRuneInString(input[:start])
		if isWordBoundary(r) {
			break
		}

		start -= size
	}

	end = cursor

	for end < len(input) {
		r, size := utf8.DecodeRuneInString(input[end:])
		if isWordBoundary(r) {
			break
		}

		end += size
	}

	return input[start:end], start, end
}

// inString reports whether offset pos of input lies inside a string literal.
func inString(input string, pos int) bool {
	return strings.Count(input[:pos], `"`)%2 == 1
}

// callAt returns the name of the innermost call enclosing the cursor and
// whether the word at wordStart is in function position, directly after its
// opening parenthesis.
func callAt(input string, cursor int) (name string, head bool) {
	if cursor > len(input) {
		cursor = len(input)
	}

	depth := 0

	for i := cursor - 1; i >= 0; i-- {
		if inString(input, i) {
			continue
		}

		switch input[i] {
		case ')':
			depth++
		case '(':
			if depth > 0 {
				depth--

				continue
			}

			rest := input[i+1:]
			name, _, _ = strings.Cut(strings.TrimLeft(rest, " \t"), " ")
			name, _, _ = strings.Cut(name, ")")

			_, wordStart, _ := wordBounds(input, cursor)

			return name, wordStart == i+1
		}
	}

	return "", false
}

// candidates returns the completion candidates for the word at the cursor.
// In function position these are the builtins; elsewhere they are the
// bound variable names followed by the boolean literals.
func candidates(env *lang.Env, input string, cursor int) []string {
	if _, head := callAt(input, cursor); head {
		builtins := lang.Builtins()
		names := make([]string, len(builtins))

		for i, b := range builtins {
			names[i] = b.Name
		}

		return names
	}

	var names []string

	if env != nil {
		names = env.Names()
	}

	return append(names, "true", "false")
}

// computeMatches calculates the fuzzy match results for the word at the
// cursor. It returns the matches (ranked best-first), the candidate list,
// and the word boundaries. An empty word, or a word inside a string literal,
// has no matches.
func (m model) computeMatches() (
	matches fuzzy.Matches,
	cands []string,
	wordStart, wordEnd int,
) {
	input := m.input.Value()
	cursor := m.input.Position()

	word, wordStart, wordEnd := wordBounds(input, cursor)

	if word == "" || inString(input, wordStart) {
		return nil, nil, wordStart, wordEnd
	}

	if m.mode == modeCtrl {
		cands = ctrlCommands
	} else {
		cands = candidates(m.session.env, input, cursor)
	}

	return fuzzy.Find(word, cands), cands, wordStart, wordEnd
}

// signatureHint describes the builtin called at the cursor, or returns ""
// when the cursor is not inside a call to a builtin.
func signatureHint(input string, cursor int) string {
	name, _ := callAt(input, cursor)
	if !lang.IsBuiltin(name) {
		return ""
	}

	for _, b := range lang.Builtins() {
		if b.Name == name {
			return suggestionStyle.Render("("+b.Name) + " " +
				hintStyle.Render(b.Arity+" args") +
				suggestionStyle.Render(")") + "  " +
				hintStyle.Render(b.Summary)
		}
	}

	return ""
}

// renderCandidateBar builds the single-line completion bar, ellipsized to fit
// within the given terminal width. Each candidate is rendered with its matched
// characters highlighted. The selected candidate (when tabbing) uses the
// selected style.
func renderCandidateBar(
	matches fuzzy.Matches,
	suggIdx int,
	tabActive bool,
	width int,
) string {
	if len(matches) == 0 || width <= 0 {
		return ""
	}

	const sep = "  "

	sepWidth := lipgloss.Width(sep)
	ellipsis := hintStyle.Render("...")
	ellipsisWidth := lipgloss.Width(ellipsis)

	var b strings.Builder

	used := 0

	for i, match := range matches {
		rendered := renderCandidate(match, tabActive && i == suggIdx)

		entryWidth := lipgloss.Width(rendered)
		if i > 0 {
			entryWidth += sepWidth
		}

		if i > 0 && used+entryWidth+ellipsisWidth > width {
			b.WriteString(sep)
			b.WriteString(ellipsis)

			break
		}

		if i > 0 {
			b.WriteString(sep)
		}

		b.WriteString(rendered)

		used += entryWidth
	}

	return b.String()
}

// renderCandidate renders a single candidate with matched characters
// highlighted.
func renderCandidate(match fuzzy.Match, selected bool) string {
	baseStyle := suggestionStyle
	highlightStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("4")).
		Bold(true)

	if selected {
		baseStyle = selectedStyle
		highlightStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("4")).
			Bold(true)
	}

	matchSet := make(map[int]bool, len(match.MatchedIndexes))
	for _, idx := range match.MatchedIndexes {
		matchSet[idx] = true
	}

	var b strings.Builder

	for i, r := range match.Str {
		if matchSet[i] {
			b.WriteString(highlightStyle.Render(string(r)))
		} else {
			b.WriteString(baseStyle.Render(string(r)))
		}
	}

	return b.String()
}
