package lang

import (
	"iter"
	"log/slog"
	"maps"
	"slices"
)

// Env is the flat variable environment of one program run.
//
// An Env is created empty, written only by the set builtin, and read by
// variable references. It is not safe for concurrent use; each run owns
// its own.
type Env struct {
	vars map[string]Value
}

// NewEnv returns an empty environment.
func NewEnv() *Env {
	return &Env{vars: make(map[string]Value)}
}

// Lookup returns the value bound to name.
func (e *Env) Lookup(name string) (Value, bool) {
	v, ok := e.vars[name]

	return v, ok
}

// Bind binds name to v. Under [BindStrict], binding a name that is already
// bound fails with [ErrDuplicateBinding] and leaves the environment
// unchanged.
func (e *Env) Bind(name string, v Value, policy BindingPolicy) error {
	if _, ok := e.vars[name]; ok && policy == BindStrict {
		return ErrDuplicateBinding.With(slog.String("name", name))
	}

	e.vars[name] = v

	return nil
}

// Len returns the number of bound names.
func (e *Env) Len() int { return len(e.vars) }

// Names returns the bound names in sorted order.
func (e *Env) Names() []string {
	return slices.Sorted(maps.Keys(e.vars))
}

// All returns an iterator over the bindings, ordered by name.
func (e *Env) All() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		for _, name := range e.Names() {
			if !yield(name, e.vars[name]) {
				return
			}
		}
	}
}

// Reset removes every binding.
func (e *Env) Reset() { clear(e.vars) }
