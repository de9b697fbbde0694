package showcase

import (
	"context"
	"testing"

	"github.com/amp-labs/amp-algorithms/logger"
)

func ptr[T any](v T) *T {
	return &v
}

// quietContext mutes the showcase logger so parallel tests never touch the
// process-wide slog default.
func quietContext(t *testing.T) context.Context {
	t.Helper()

	return logger.WithMuted(t.Context(), true)
}
