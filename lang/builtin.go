package lang

import (
	"context"
	"log/slog"
	"slices"
	"strconv"
	"strings"
)

// builtinFunc implements a builtin. It receives the name it was called by
// and the unevaluated top-level arguments, whose count has been checked.
type builtinFunc func(ctx context.Context, ec *evalContext, name string, args []string) (Value, error)

type builtin struct {
	fn      builtinFunc
	minArgs int
	maxArgs int // negative if unbounded
	summary string
}

func (b builtin) checkArity(name string, n int) error {
	if n >= b.minArgs && (b.maxArgs < 0 || n <= b.maxArgs) {
		return nil
	}

	return ErrArityError.With(
		slog.String("function", name),
		slog.String("want", b.arity()),
		slog.Int("got", n),
	)
}

func (b builtin) arity() string {
	switch {
	case b.maxArgs < 0:
		return "at least " + strconv.Itoa(b.minArgs)
	case b.minArgs == b.maxArgs:
		return strconv.Itoa(b.minArgs)
	default:
		return strconv.Itoa(b.minArgs) + " to " + strconv.Itoa(b.maxArgs)
	}
}

// builtins is the closed set of functions understood by the evaluator.
var builtins map[string]builtin

func init() {
	builtins = map[string]builtin{
		"set":  {builtinSet, 2, 2, "bind a name to a value"},
		"puts": {builtinPuts, 1, 1, "append a value to the output"},
		"str":  {builtinStr, 1, 1, "render any value as a string"},

		"concat":    {builtinConcat, 2, 2, "join two strings"},
		"uppercase": {builtinUppercase, 1, 1, "convert a string to upper case"},
		"lowercase": {builtinLowercase, 1, 1, "convert a string to lower case"},
		"replace":   {builtinReplace, 3, 3, "replace every occurrence of a substring"},
		"substring": {builtinSubstring, 3, 3, "extract characters [start, end)"},

		"add":      {builtinArith(addValues), 2, -1, "sum of numbers"},
		"subtract": {builtinArith(subtractValues), 2, -1, "left-to-right difference"},
		"multiply": {builtinArith(multiplyValues), 2, -1, "product of numbers"},
		"divide":   {builtinArith(divideValues), 2, -1, "left-to-right quotient"},
		"min":      {builtinExtremum(-1), 1, -1, "smallest number"},
		"max":      {builtinExtremum(+1), 1, -1, "largest number"},
		"abs":      {builtinAbs, 1, 1, "absolute value"},
		"gt":       {builtinCompare(+1), 2, 2, "first number is greater"},
		"lt":       {builtinCompare(-1), 2, 2, "first number is less"},
	}
}

// Builtin describes one function of the builtin library.
type Builtin struct {
	Name    string
	Arity   string
	Summary string
}

// Builtins returns the builtin library sorted by name.
func Builtins() []Builtin {
	list := make([]Builtin, 0, len(builtins))

	for name, b := range builtins {
		list = append(list, Builtin{Name: name, Arity: b.arity(), Summary: b.summary})
	}

	slices.SortFunc(list, func(a, b Builtin) int {
		return strings.Compare(a.Name, b.Name)
	})

	return list
}

// IsBuiltin reports whether name is a builtin function.
func IsBuiltin(name string) bool {
	_, ok := builtins[name]

	return ok
}

func builtinSet(ctx context.Context, ec *evalContext, _ string, args []string) (Value, error) {
	name := args[0]
	if !isName(name) {
		return Value{}, ErrMalformedExpression.With(
			slog.String("reason", "set requires a variable name"),
			slog.String("name", name),
		)
	}

	v, err := ec.eval(ctx, args[1])
	if err != nil {
		return Value{}, err
	}

	if err := ec.env.Bind(name, v, ec.in.binding); err != nil {
		return Value{}, err
	}

	ec.logger.TraceContext(ctx, "bind",
		slog.String("name", name),
		slog.Any("value", v),
	)

	return v, nil
}

// builtinPuts evaluates its argument and, when it is the outermost call of
// the expression, appends the rendering to the output.
func builtinPuts(ctx context.Context, ec *evalContext, _ string, args []string) (Value, error) {
	v, err := ec.eval(ctx, args[0])
	if err != nil {
		return Value{}, err
	}

	if ec.depth == 1 {
		ec.out = append(ec.out, v.Render())
	}

	return v, nil
}

func builtinStr(ctx context.Context, ec *evalContext, _ string, args []string) (Value, error) {
	v, err := ec.eval(ctx, args[0])
	if err != nil {
		return Value{}, err
	}

	return Text(v.Render()), nil
}
