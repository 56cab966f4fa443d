package cmd

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/ardnew/sexpr/lang"
)

func TestError(t *testing.T) {
	cause := lang.ErrUnboundVariable.With(slog.String("name", "x"))
	err := ErrRunProgram.With(slog.String("command", "run")).Wrap(cause)

	if !errors.Is(err, ErrRunProgram) {
		t.Error("refined error does not match its sentinel")
	}

	if errors.Is(err, ErrReadProgram) {
		t.Error("refined error matches an unrelated sentinel")
	}

	if !errors.Is(err, lang.ErrUnboundVariable) {
		t.Error("refined error does not match its cause")
	}

	if got, want := err.Error(), "run program: "+cause.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	group := err.LogValue().Group()
	if len(group) != 3 || group[0].Key != "error" || group[1].Key != "cause" || group[2].Key != "command" {
		t.Errorf("LogValue() = %v", group)
	}

	if (&Error{}).Error() != "" {
		t.Error("zero Error has a message")
	}
}
