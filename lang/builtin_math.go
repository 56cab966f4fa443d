package lang

import (
	"cmp"
	"context"
	"log/slog"
	"math"
)

// binaryOp combines two numbers. Both operands are known to be numbers.
type binaryOp func(a, b Value) (Value, error)

// builtinArith folds op left to right over the numeric arguments.
func builtinArith(op binaryOp) builtinFunc {
	return func(ctx context.Context, ec *evalContext, name string, args []string) (Value, error) {
		vals, err := ec.numbers(ctx, name, args)
		if err != nil {
			return Value{}, err
		}

		acc := vals[0]
		for _, v := range vals[1:] {
			if acc, err = op(acc, v); err != nil {
				return Value{}, err
			}
		}

		return acc, nil
	}
}

func addValues(a, b Value) (Value, error) {
	if a.integral && b.integral {
		x, y := a.whole, b.whole
		if (y > 0 && x > math.MaxInt64-y) || (y < 0 && x < math.MinInt64-y) {
			return Value{}, overflow("add", a, b)
		}

		return Int(x + y), nil
	}

	return finite("add", a, b, a.num+b.num)
}

func subtractValues(a, b Value) (Value, error) {
	if a.integral && b.integral {
		x, y := a.whole, b.whole
		if (y < 0 && x > math.MaxInt64+y) || (y > 0 && x < math.MinInt64+y) {
			return Value{}, overflow("subtract", a, b)
		}

		return Int(x - y), nil
	}

	return finite("subtract", a, b, a.num-b.num)
}

func multiplyValues(a, b Value) (Value, error) {
	if a.integral && b.integral {
		x, y := a.whole, b.whole
		if x == 0 || y == 0 {
			return Int(0), nil
		}

		p := x * y
		if p/y != x || (x == -1 && y == math.MinInt64) || (y == -1 && x == math.MinInt64) {
			return Value{}, overflow("multiply", a, b)
		}

		return Int(p), nil
	}

	return finite("multiply", a, b, a.num*b.num)
}

// divideValues stays integral only when the division is exact.
func divideValues(a, b Value) (Value, error) {
	if b.num == 0 {
		return Value{}, ErrDivisionByZero.With(slog.String("dividend", a.Render()))
	}

	if a.integral && b.integral {
		x, y := a.whole, b.whole
		if x == math.MinInt64 && y == -1 {
			return Value{}, overflow("divide", a, b)
		}

		if x%y == 0 {
			return Int(x / y), nil
		}
	}

	return finite("divide", a, b, a.num/b.num)
}

// finite returns the float result of fn rounded to [Precision] digits. The
// result must not have overflowed.
func finite(fn string, a, b Value, f float64) (Value, error) {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return Value{}, overflow(fn, a, b)
	}

	return Float(roundFloat(f)), nil
}

func overflow(fn string, a, b Value) *Error {
	return ErrNumericOverflow.With(
		slog.String("function", fn),
		slog.String("lhs", a.Render()),
		slog.String("rhs", b.Render()),
	)
}

// compareValues orders two numbers, comparing exactly when both are
// integral.
func compareValues(a, b Value) int {
	if a.integral && b.integral {
		return cmp.Compare(a.whole, b.whole)
	}

	return cmp.Compare(a.num, b.num)
}

// builtinExtremum returns the argument farthest in direction sign. Ties keep
// the earliest argument. A float result is rounded to [Precision] digits.
func builtinExtremum(sign int) builtinFunc {
	return func(ctx context.Context, ec *evalContext, name string, args []string) (Value, error) {
		vals, err := ec.numbers(ctx, name, args)
		if err != nil {
			return Value{}, err
		}

		best := vals[0]
		for _, v := range vals[1:] {
			if compareValues(v, best)*sign > 0 {
				best = v
			}
		}

		if !best.integral {
			best = Float(roundFloat(best.num))
		}

		return best, nil
	}
}

func builtinAbs(ctx context.Context, ec *evalContext, name string, args []string) (Value, error) {
	v, err := ec.number(ctx, name, 0, args[0])
	if err != nil {
		return Value{}, err
	}

	if v.integral {
		switch {
		case v.whole == math.MinInt64:
			return Value{}, ErrNumericOverflow.With(
				slog.String("function", name),
				slog.String("value", v.Render()),
			)
		case v.whole < 0:
			return Int(-v.whole), nil
		}

		return v, nil
	}

	return Float(math.Abs(v.num)), nil
}

// builtinCompare reports whether the first argument orders in direction
// sign relative to the second.
func builtinCompare(sign int) builtinFunc {
	return func(ctx context.Context, ec *evalContext, name string, args []string) (Value, error) {
		vals, err := ec.numbers(ctx, name, args)
		if err != nil {
			return Value{}, err
		}

		return Bool(compareValues(vals[0], vals[1])*sign > 0), nil
	}
}
