package history

import (
	"context"
	"time"
)

// Event describes one dispatched command, for observability.
type Event struct {
	Timestamp time.Time `json:"timestamp"`
	Document  string    `json:"document,omitempty"`
	Kind      Kind      `json:"kind"`
	Outcome   Outcome   `json:"outcome"`
	PastLen   int       `json:"past_len"`
	FutureLen int       `json:"future_len"`
}

// NewEvent summarises the result of a transition on document.
func NewEvent[T any](document string, kind Kind, outcome Outcome, after History[T]) *Event {
	return &Event{
		Timestamp: time.Now(),
		Document:  document,
		Kind:      kind,
		Outcome:   outcome,
		PastLen:   after.PastLen(),
		FutureLen: after.FutureLen(),
	}
}

// LifecycleHooks are callbacks invoked by history owners after each command.
// The transition functions in this package never call them.
type LifecycleHooks struct {
	// OnCommand fires for every dispatched command, including no-ops.
	OnCommand func(context.Context, *Event)
	// OnGuarded fires when Undo or Redo had nothing to move to.
	OnGuarded func(context.Context, *Event)
}

// Fire invokes the hooks matching e.Outcome.
func (h LifecycleHooks) Fire(ctx context.Context, e *Event) {
	if h.OnCommand != nil {
		h.OnCommand(ctx, e)
	}
	if e.Outcome == OutcomeGuarded && h.OnGuarded != nil {
		h.OnGuarded(ctx, e)
	}
}

// MergeHooks combines several hook sets into one that calls each in order.
func MergeHooks(hooks ...LifecycleHooks) LifecycleHooks {
	return LifecycleHooks{
		OnCommand: func(ctx context.Context, e *Event) {
			for _, h := range hooks {
				if h.OnCommand != nil {
					h.OnCommand(ctx, e)
				}
			}
		},
		OnGuarded: func(ctx context.Context, e *Event) {
			for _, h := range hooks {
				if h.OnGuarded != nil {
					h.OnGuarded(ctx, e)
				}
			}
		},
	}
}
