// Package xform provides small parse and validate functions with the
// func(A) (B, error) shape used by envutil.Map.
package xform

import (
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"strings"
)

// TrimString removes leading and trailing whitespace from a string.
func TrimString(s string) (string, error) {
	return strings.TrimSpace(s), nil
}

// SplitString returns a transformer that splits a string by the given separator.
// The separator can be any string, including multi-character separators.
func SplitString(sep string) func(string) ([]string, error) {
	return func(s string) ([]string, error) {
		return strings.Split(s, sep), nil
	}
}

// List returns a transformer that splits a string by sep, trims every part and
// drops the empty ones, so "a, b,,c " becomes [a b c].
func List(sep string) func(string) ([]string, error) {
	return func(s string) ([]string, error) {
		var out []string

		for _, part := range strings.Split(s, sep) {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}

		return out, nil
	}
}

// Bool parses a string as a boolean value.
// Accepts: "1", "t", "T", "TRUE", "true", "True", "0", "f", "F", "FALSE", "false", "False".
func Bool(value string) (bool, error) {
	return strconv.ParseBool(value)
}

// Int64 parses a string as a base-10 int64.
func Int64(value string) (int64, error) {
	return strconv.ParseInt(value, 10, 64)
}

// Ints parses a comma separated list of base-10 integers, ignoring blanks
// around each number. An empty string yields an empty list.
func Ints(value string) ([]int, error) {
	parts, _ := List(",")(value)
	out := make([]int, 0, len(parts))

	for _, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid integer %q: %w", part, err)
		}

		out = append(out, n)
	}

	return out, nil
}

// CastNumeric converts a numeric value from one type to another.
// Example: CastNumeric[int64, int32] converts int64 to int32.
// Note: This may truncate or lose precision depending on the types involved.
func CastNumeric[A Numeric, B Numeric](value A) (B, error) { //nolint:ireturn
	return B(value), nil
}

// Positive validates that a numeric value is greater than zero.
// Returns ErrNonPositive if the value is less than or equal to zero.
func Positive[A Numeric](value A) (A, error) { // nolint:ireturn
	if value <= 0 {
		return value, ErrNonPositive
	}

	return value, nil
}

// OneOf returns a validator accepting only the given choices.
func OneOf(choices ...string) func(string) (string, error) {
	return func(value string) (string, error) {
		if !slices.Contains(choices, value) {
			return value, fmt.Errorf("%w: %q (expected one of %s)",
				ErrInvalidChoice, value, strings.Join(choices, ", "))
		}

		return value, nil
	}
}

// EachOf is OneOf applied to every element of a list.
func EachOf(choices ...string) func([]string) ([]string, error) {
	check := OneOf(choices...)

	return func(values []string) ([]string, error) {
		for _, v := range values {
			if _, err := check(v); err != nil {
				return values, err
			}
		}

		return values, nil
	}
}

// SlogLevel parses a string as a slog.Level.
// Accepts: "debug", "info", "warn", "error" (case-sensitive).
// Returns ErrInvalidLogLevel for unrecognized values.
func SlogLevel(value string) (slog.Level, error) {
	switch value {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidLogLevel, value)
	}
}
