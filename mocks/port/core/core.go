// Package core provides test doubles for the core ports.
package core

import (
	"context"
	"time"
)

// NopLogger discards all log output. Tests that do not assert on logging use
// it to keep mock setup out of the way.
type NopLogger struct{}

func (NopLogger) Debug(string, map[string]any) {}
func (NopLogger) Info(string, map[string]any)  {}
func (NopLogger) Warn(string, map[string]any)  {}
func (NopLogger) Error(string, map[string]any) {}
func (NopLogger) Flush() error                 { return nil }

// FixedClock is a TimeProvider pinned to one instant. Advance moves it.
type FixedClock struct {
	Current time.Time
}

// NewFixedClock creates a clock pinned to t
func NewFixedClock(t time.Time) *FixedClock {
	return &FixedClock{Current: t}
}

// Now returns the pinned instant
func (c *FixedClock) Now() time.Time {
	return c.Current
}

// Since measures elapsed time against the pinned instant
func (c *FixedClock) Since(t time.Time) time.Duration {
	return c.Current.Sub(t)
}

// WithTimeout delegates to context.WithTimeout; tests rarely rely on it
func (c *FixedClock) WithTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, timeout)
}

// Advance moves the pinned instant forward
func (c *FixedClock) Advance(d time.Duration) {
	c.Current = c.Current.Add(d)
}
