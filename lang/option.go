package lang

//go:generate go tool stringer --linecomment --type BindingPolicy,FailurePolicy --output policy_string.go

import (
	"log/slog"
	"strings"

	"github.com/ardnew/sexpr/log"
)

// DefaultMaxDepth is the default maximum nesting of calls in one
// expression. Users may modify this before creating an [Interpreter].
var DefaultMaxDepth = 100

// BindingPolicy decides what set does with a name that is already bound.
type BindingPolicy uint8

const (
	BindStrict    BindingPolicy = iota // strict
	BindOverwrite                      // overwrite
)

// ParseBindingPolicy parses "strict" or "overwrite", case-insensitively.
func ParseBindingPolicy(s string) (BindingPolicy, error) {
	for _, p := range []BindingPolicy{BindStrict, BindOverwrite} {
		if strings.EqualFold(strings.TrimSpace(s), p.String()) {
			return p, nil
		}
	}

	return 0, ErrInvalidOption.With(slog.String("binding", s))
}

// FailurePolicy decides how a program run reports a failing statement.
type FailurePolicy uint8

const (
	// FailMark appends an "ERROR at line N" marker to the output and stops.
	// The output produced so far, including the marker, is returned.
	FailMark FailurePolicy = iota // mark
	// FailAbort stops and returns no output at all.
	FailAbort // abort
)

// ParseFailurePolicy parses "mark" or "abort", case-insensitively.
func ParseFailurePolicy(s string) (FailurePolicy, error) {
	for _, p := range []FailurePolicy{FailMark, FailAbort} {
		if strings.EqualFold(strings.TrimSpace(s), p.String()) {
			return p, nil
		}
	}

	return 0, ErrInvalidOption.With(slog.String("on-error", s))
}

// Option configures an [Interpreter].
type Option func(*Interpreter)

// WithMaxDepth sets the maximum nesting of calls in one expression.
// Values less than 1 select [DefaultMaxDepth].
func WithMaxDepth(depth int) Option {
	return func(in *Interpreter) {
		if depth < 1 {
			depth = DefaultMaxDepth
		}

		in.maxDepth = depth
	}
}

// WithBindingPolicy sets the re-binding policy of set.
func WithBindingPolicy(policy BindingPolicy) Option {
	return func(in *Interpreter) {
		in.binding = policy
	}
}

// WithFailurePolicy sets how a failing statement is reported.
func WithFailurePolicy(policy FailurePolicy) Option {
	return func(in *Interpreter) {
		in.failure = policy
	}
}

// WithLogger sets the structured logger for trace-level debugging.
// If not provided, the logger is zero-valued and all logging is a no-op.
func WithLogger(logger log.Logger) Option {
	return func(in *Interpreter) {
		in.logger = logger
	}
}

// applyDefaults sets default option values on an Interpreter.
func applyDefaults(in *Interpreter) {
	in.maxDepth = DefaultMaxDepth
	in.binding = BindStrict
	in.failure = FailMark
}

// applyOptions applies functional options to an Interpreter.
func applyOptions(in *Interpreter, opts ...Option) {
	for _, opt := range opts {
		if opt != nil {
			opt(in)
		}
	}
}
