package lang

//go:generate go tool stringer --linecomment --type Kind,ExprKind --output kind_string.go

import (
	"log/slog"
	"math"
	"strconv"
	"strings"
)

// Kind identifies the variant held by a [Value].
type Kind uint8

const (
	KindNumber Kind = iota // number
	KindText               // text
	KindBool               // bool
)

// Precision is the number of fractional digits kept by float arithmetic
// results and by the rendering of any non-integral number.
const Precision = 4

// Value is the result of evaluating one expression. Values are immutable;
// operations construct new ones.
//
// A number is either integral, stored exactly as an int64, or a float64.
// The distinction survives arithmetic so that 5 and 5.0 render differently.
type Value struct {
	str      string
	num      float64
	whole    int64
	kind     Kind
	integral bool
	truth    bool
}

// Int returns an integral number.
func Int(i int64) Value {
	return Value{kind: KindNumber, integral: true, whole: i, num: float64(i)}
}

// Float returns a non-integral number, even if f has no fractional part.
func Float(f float64) Value {
	return Value{kind: KindNumber, num: f}
}

// Text returns a string value.
func Text(s string) Value { return Value{kind: KindText, str: s} }

// Bool returns a boolean value.
func Bool(b bool) Value { return Value{kind: KindBool, truth: b} }

// Kind returns the variant held by v.
func (v Value) Kind() Kind { return v.kind }

// IsIntegral reports whether v is a number tracked as an integer.
func (v Value) IsIntegral() bool { return v.kind == KindNumber && v.integral }

// Int returns the integer held by an integral number.
func (v Value) Int() (int64, bool) { return v.whole, v.IsIntegral() }

// Float returns the number held by v as a float64.
func (v Value) Float() (float64, bool) { return v.num, v.kind == KindNumber }

// Text returns the string held by v.
func (v Value) Text() (string, bool) { return v.str, v.kind == KindText }

// Bool returns the boolean held by v.
func (v Value) Bool() (bool, bool) { return v.truth, v.kind == KindBool }

// Equal reports whether v and w hold the same variant and value.
// An integral number never equals a float, even when numerically equal.
func (v Value) Equal(w Value) bool {
	if v.kind != w.kind {
		return false
	}

	switch v.kind {
	case KindNumber:
		if v.integral != w.integral {
			return false
		}

		if v.integral {
			return v.whole == w.whole
		}

		return v.num == w.num
	case KindText:
		return v.str == w.str
	default:
		return v.truth == w.truth
	}
}

// Render returns the textual form of v as it appears in program output.
//
// Integral numbers render as bare digits. Other numbers are rounded half
// away from zero to [Precision] fractional digits, with trailing zeros
// removed but at least one fractional digit kept. Text renders without
// quote marks.
func (v Value) Render() string {
	switch v.kind {
	case KindNumber:
		if v.integral {
			return strconv.FormatInt(v.whole, 10)
		}

		return renderFloat(v.num)
	case KindText:
		return v.str
	default:
		return strconv.FormatBool(v.truth)
	}
}

// String implements fmt.Stringer.
func (v Value) String() string { return v.Render() }

// LogValue implements slog.LogValuer.
func (v Value) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("kind", v.kind.String()),
		slog.String("value", v.Render()),
	)
}

// roundLimit is the magnitude above which a float64 no longer carries
// [Precision] fractional digits. Such values are left unrounded and render
// in the shortest form that parses back to the same float64.
const roundLimit = 1e15

// roundFloat rounds f half away from zero to [Precision] fractional digits.
func roundFloat(f float64) float64 {
	if math.Abs(f) >= roundLimit {
		return f
	}

	const scale = 1e4 // 10^Precision

	return math.Round(f*scale) / scale
}

func renderFloat(f float64) string {
	f = roundFloat(f)

	if f == 0 {
		f = 0 // drop the sign of -0
	}

	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}

	return s
}
