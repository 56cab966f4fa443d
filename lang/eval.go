package lang

import (
	"context"
	"log/slog"
	"strings"

	"github.com/ardnew/sexpr/log"
)

// Interpreter evaluates programs over the builtin library.
//
// An Interpreter holds only configuration, so one value may serve any number
// of concurrent runs. All mutable state lives in the [Env] and output of a
// single run.
type Interpreter struct {
	logger   log.Logger
	maxDepth int
	binding  BindingPolicy
	failure  FailurePolicy
}

// New returns an Interpreter configured by opts.
func New(opts ...Option) *Interpreter {
	in := &Interpreter{}

	applyDefaults(in)
	applyOptions(in, opts...)

	return in
}

// MaxDepth returns the maximum nesting of calls in one expression.
func (in *Interpreter) MaxDepth() int { return in.maxDepth }

// BindingPolicy returns the re-binding policy of set.
func (in *Interpreter) BindingPolicy() BindingPolicy { return in.binding }

// FailurePolicy returns how a failing statement is reported.
func (in *Interpreter) FailurePolicy() FailurePolicy { return in.failure }

// Eval evaluates a single expression against env.
//
// It returns the value of the expression and the output appended by a
// puts at the top of the expression.
func (in *Interpreter) Eval(
	ctx context.Context,
	env *Env,
	expr string,
) (Value, Output, error) {
	ec := &evalContext{
		in:     in,
		env:    env,
		logger: in.logger,
	}

	v, err := ec.eval(ctx, expr)

	return v, ec.out, err
}

// evalContext holds the state for recursive evaluation of one expression.
type evalContext struct {
	in     *Interpreter
	env    *Env
	logger log.Logger
	out    Output
	depth  int
}

// eval recursively evaluates an expression to a Value.
func (ec *evalContext) eval(ctx context.Context, expr string) (Value, error) {
	expr = strings.TrimSpace(expr)

	kind, err := Classify(expr)
	if err != nil {
		return Value{}, err
	}

	switch kind {
	case ExprCall:
		return ec.call(ctx, expr)

	case ExprString:
		s, _ := unquote(expr)

		return Text(s), nil

	case ExprBool:
		return Bool(expr == "true"), nil

	case ExprNumber:
		return parseNumber(expr)

	default:
		v, ok := ec.env.Lookup(expr)
		if !ok {
			return Value{}, ErrUnboundVariable.With(slog.String("name", expr))
		}

		return v, nil
	}
}

// call dispatches a call expression to its builtin.
func (ec *evalContext) call(ctx context.Context, expr string) (Value, error) {
	if ec.depth >= ec.in.maxDepth {
		return Value{}, ErrMaxDepthExceeded.With(slog.Int("max", ec.in.maxDepth))
	}

	name, rest := splitCall(expr)
	if name == "" {
		return Value{}, ErrMalformedExpression.With(
			slog.String("reason", "missing function name"),
			slog.String("expr", expr),
		)
	}

	if strings.ContainsAny(name, "()\"\\") {
		return Value{}, ErrMalformedExpression.With(
			slog.String("reason", "function name is not a name"),
			slog.String("name", name),
		)
	}

	b, ok := builtins[name]
	if !ok {
		return Value{}, ErrUnknownFunction.With(slog.String("name", name))
	}

	args, err := Split(rest)
	if err != nil {
		return Value{}, err
	}

	if err := b.checkArity(name, len(args)); err != nil {
		return Value{}, err
	}

	ec.depth++
	defer func() { ec.depth-- }()

	ec.logger.TraceContext(ctx, "call",
		slog.String("name", name),
		slog.Int("args", len(args)),
		slog.Int("depth", ec.depth),
	)

	return b.fn(ctx, ec, name, args)
}

// evalAll evaluates args left to right, stopping at the first failure.
func (ec *evalContext) evalAll(ctx context.Context, args []string) ([]Value, error) {
	vals := make([]Value, 0, len(args))

	for _, arg := range args {
		v, err := ec.eval(ctx, arg)
		if err != nil {
			return nil, err
		}

		vals = append(vals, v)
	}

	return vals, nil
}

// number evaluates arg and requires a number.
func (ec *evalContext) number(
	ctx context.Context,
	fn string,
	pos int,
	arg string,
) (Value, error) {
	v, err := ec.eval(ctx, arg)
	if err != nil {
		return Value{}, err
	}

	if v.Kind() != KindNumber {
		return Value{}, mismatch(fn, pos, KindNumber, v)
	}

	return v, nil
}

// numbers evaluates args and requires every one to be a number.
func (ec *evalContext) numbers(
	ctx context.Context,
	fn string,
	args []string,
) ([]Value, error) {
	vals := make([]Value, 0, len(args))

	for i, arg := range args {
		v, err := ec.number(ctx, fn, i, arg)
		if err != nil {
			return nil, err
		}

		vals = append(vals, v)
	}

	return vals, nil
}

// text evaluates arg and requires a string.
func (ec *evalContext) text(
	ctx context.Context,
	fn string,
	pos int,
	arg string,
) (string, error) {
	v, err := ec.eval(ctx, arg)
	if err != nil {
		return "", err
	}

	s, ok := v.Text()
	if !ok {
		return "", mismatch(fn, pos, KindText, v)
	}

	return s, nil
}

// integer evaluates arg and requires an integral number.
func (ec *evalContext) integer(
	ctx context.Context,
	fn string,
	pos int,
	arg string,
) (int64, error) {
	v, err := ec.number(ctx, fn, pos, arg)
	if err != nil {
		return 0, err
	}

	i, ok := v.Int()
	if !ok {
		return 0, ErrTypeMismatch.With(
			slog.String("function", fn),
			slog.Int("argument", pos+1),
			slog.String("want", "integer"),
			slog.String("got", v.Render()),
		)
	}

	return i, nil
}

func mismatch(fn string, pos int, want Kind, got Value) *Error {
	return ErrTypeMismatch.With(
		slog.String("function", fn),
		slog.Int("argument", pos+1),
		slog.String("want", want.String()),
		slog.String("got", got.Kind().String()),
	)
}
