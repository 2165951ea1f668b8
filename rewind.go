package rewind

import (
	"github.com/aretw0/rewind/pkg/adapters/memory"
	"github.com/aretw0/rewind/pkg/history"
	"github.com/aretw0/rewind/pkg/session"
	"github.com/aretw0/rewind/pkg/tracker"
)

// New creates a Tracker over a comparable value, using == to detect no-op edits.
func New[T comparable](initial T, opts ...tracker.Option) *tracker.Tracker[T] {
	return tracker.New(history.New(initial), opts...)
}

// NewFunc creates a Tracker with an explicit equality policy.
// A nil eq compares values structurally.
func NewFunc[T any](initial T, eq history.Equal[T], opts ...tracker.Option) *tracker.Tracker[T] {
	return tracker.New(history.NewFunc(initial, eq), opts...)
}

// NewManager creates a session manager backed by an in-memory store, for
// hosts juggling many independent documents.
func NewManager[T any](opts ...session.Option) *session.Manager[T] {
	return session.NewManager[T](memory.NewStore[T](), nil, opts...)
}
