// Package envutil reads typed configuration from environment variables.
package envutil

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/amp-labs/amp-algorithms/xform"
)

var ErrNotAFile = errors.New("not a regular file")

// get returns a Reader for the given environment variable key.
func get(key string) Reader[string] {
	val, ok := os.LookupEnv(key)

	return Reader[string]{
		key:     key,
		present: ok,
		value:   val,
	}
}

func apply[T any](rdr Reader[T], opts []Option[T]) Reader[T] {
	for _, opt := range opts {
		rdr = opt(rdr)
	}

	return rdr
}

// String returns a Reader for the given environment variable key.
func String(key string, opts ...Option[string]) Reader[string] {
	return apply(get(key), opts)
}

func Bool(key string, opts ...Option[bool]) Reader[bool] {
	return apply(Map(get(key), xform.Bool), opts)
}

func Int[I xform.Intish](key string, opts ...Option[I]) Reader[I] {
	return apply(Map(Map(get(key), xform.Int64), xform.CastNumeric[int64, I]), opts)
}

// List reads a comma separated list; blanks around items and empty items are dropped.
func List(key string, opts ...Option[[]string]) Reader[[]string] {
	return apply(Map(get(key), xform.List(",")), opts)
}

// Ints reads a comma separated list of integers.
func Ints(key string, opts ...Option[[]int]) Reader[[]int] {
	return apply(Map(get(key), xform.Ints), opts)
}

func SlogLevel(key string, opts ...Option[slog.Level]) Reader[slog.Level] {
	return apply(Map(get(key), xform.SlogLevel), opts)
}

// FilePath reads a path that must name an existing regular file.
func FilePath(key string, opts ...Option[string]) Reader[string] {
	rdr := Map(get(key), func(path string) (string, error) {
		info, err := os.Stat(path)
		if err != nil {
			return path, err
		}

		if !info.Mode().IsRegular() {
			return path, fmt.Errorf("%w: %s", ErrNotAFile, path)
		}

		return path, nil
	})

	return apply(rdr, opts)
}
