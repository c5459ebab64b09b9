package testutil

import (
	"context"
	"testing"
	"time"
)

// ContextWithTimeout returns a context that is canceled when the test ends or after duration.
func ContextWithTimeout(t testing.TB, duration time.Duration) context.Context {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), duration)
	t.Cleanup(cancel)

	return ctx
}
