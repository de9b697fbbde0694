package script

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/amp-labs/amp-algorithms/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errTest = errors.New("test error")

func TestExit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		code     int
		expected string
	}{
		{name: "exit code 0", code: 0, expected: "exit 0"},
		{name: "exit code 1", code: 1, expected: "exit 1"},
		{name: "exit code 42", code: 42, expected: "exit 42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := Exit(tt.code)
			require.Error(t, err)
			assert.Equal(t, tt.expected, err.Error())

			var exitErr *exitError

			require.ErrorAs(t, err, &exitErr)
			assert.Equal(t, tt.code, exitErr.code)
			assert.NoError(t, exitErr.err)
		})
	}
}

func TestExitWithError(t *testing.T) {
	t.Parallel()

	err := ExitWithError(errTest)
	assert.Equal(t, "exit 1: test error", err.Error())
	require.ErrorIs(t, err, errTest)

	err = ExitWithErrorMessage("%d results failed", 3)
	assert.Equal(t, "exit 1: 3 results failed", err.Error())
}

func TestNew(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	script := New("test", LogLevel(slog.LevelDebug), LogOutput(&buf), EnableFlagParse(false))

	assert.Equal(t, "test", script.name)
	assert.False(t, script.flagParseEnable)
	require.Len(t, script.loggerOpts, 2)

	opts := logger.Options{}
	for _, o := range script.loggerOpts {
		o(&opts)
	}

	assert.Equal(t, slog.LevelDebug, opts.MinLevel)
	assert.Equal(t, &buf, opts.Output)
	assert.True(t, New("default").flagParseEnable)
}

func TestRun(t *testing.T) { //nolint:paralleltest
	tests := []struct {
		name         string
		callback     func(ctx context.Context) error
		expectedCode int
		expectedLog  string
	}{
		{
			name:         "successful execution",
			callback:     func(ctx context.Context) error { return nil },
			expectedCode: 0,
		},
		{
			name:         "exit with code 0",
			callback:     func(ctx context.Context) error { return Exit(0) },
			expectedCode: 0,
		},
		{
			name:         "exit with custom code",
			callback:     func(ctx context.Context) error { return Exit(42) },
			expectedCode: 42,
			expectedLog:  "exit 42",
		},
		{
			name:         "exit with error",
			callback:     func(ctx context.Context) error { return ExitWithError(errTest) },
			expectedCode: 1,
			expectedLog:  "test error",
		},
		{
			name:         "regular error",
			callback:     func(ctx context.Context) error { return errTest },
			expectedCode: 1,
			expectedLog:  "test error",
		},
		{
			name:         "nil callback",
			callback:     nil,
			expectedCode: 1,
			expectedLog:  "callback is nil",
		},
	}

	for _, tt := range tests { //nolint:paralleltest
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer

			code := run("test-script", tt.callback, false, func(opts *logger.Options) {
				opts.Output = &buf
			})

			assert.Equal(t, tt.expectedCode, code)

			if tt.expectedLog == "" {
				assert.Empty(t, buf.String())
			} else {
				assert.Contains(t, buf.String(), tt.expectedLog)
			}
		})
	}
}

func TestRun_ContextIsLive(t *testing.T) { //nolint:paralleltest
	var buf bytes.Buffer

	var seen context.Context

	code := run("test-script", func(ctx context.Context) error {
		seen = ctx

		return ctx.Err()
	}, false, func(opts *logger.Options) {
		opts.Output = &buf
	})

	assert.Equal(t, 0, code)
	require.NotNil(t, seen)
	assert.Error(t, seen.Err(), "context is cancelled once the script returns")
}
