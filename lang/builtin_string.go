package lang

import (
	"context"
	"log/slog"
	"strings"
)

func builtinConcat(ctx context.Context, ec *evalContext, name string, args []string) (Value, error) {
	lhs, err := ec.text(ctx, name, 0, args[0])
	if err != nil {
		return Value{}, err
	}

	rhs, err := ec.text(ctx, name, 1, args[1])
	if err != nil {
		return Value{}, err
	}

	return Text(lhs + rhs), nil
}

func builtinUppercase(ctx context.Context, ec *evalContext, name string, args []string) (Value, error) {
	s, err := ec.text(ctx, name, 0, args[0])
	if err != nil {
		return Value{}, err
	}

	return Text(strings.ToUpper(s)), nil
}

func builtinLowercase(ctx context.Context, ec *evalContext, name string, args []string) (Value, error) {
	s, err := ec.text(ctx, name, 0, args[0])
	if err != nil {
		return Value{}, err
	}

	return Text(strings.ToLower(s)), nil
}

// builtinReplace replaces every non-overlapping occurrence of the target in
// the source, scanning left to right.
func builtinReplace(ctx context.Context, ec *evalContext, name string, args []string) (Value, error) {
	var s [3]string

	for i, arg := range args {
		v, err := ec.text(ctx, name, i, arg)
		if err != nil {
			return Value{}, err
		}

		s[i] = v
	}

	return Text(strings.ReplaceAll(s[0], s[1], s[2])), nil
}

// builtinSubstring extracts the code points in [start, end).
func builtinSubstring(ctx context.Context, ec *evalContext, name string, args []string) (Value, error) {
	s, err := ec.text(ctx, name, 0, args[0])
	if err != nil {
		return Value{}, err
	}

	start, err := ec.integer(ctx, name, 1, args[1])
	if err != nil {
		return Value{}, err
	}

	end, err := ec.integer(ctx, name, 2, args[2])
	if err != nil {
		return Value{}, err
	}

	runes := []rune(s)
	if start < 0 || end < 0 || start > end || end > int64(len(runes)) {
		return Value{}, ErrRangeError.With(
			slog.Int64("start", start),
			slog.Int64("end", end),
			slog.Int("length", len(runes)),
		)
	}

	return Text(string(runes[start:end])), nil
}
