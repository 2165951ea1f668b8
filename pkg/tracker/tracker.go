package tracker

import (
	"context"
	"log/slog"
	"sync"

	"github.com/aretw0/rewind/internal/logging"
	"github.com/aretw0/rewind/pkg/history"
)

// Errors returned by Undo and Redo when the move is guarded.
var (
	ErrNothingToUndo = history.ErrNothingToUndo
	ErrNothingToRedo = history.ErrNothingToRedo
)

// Tracker owns a single History and serialises every command against it.
// Safe for concurrent use.
type Tracker[T any] struct {
	mu    sync.RWMutex
	state history.History[T]

	name   string
	hooks  history.LifecycleHooks
	logger *slog.Logger
}

type options struct {
	name   string
	hooks  history.LifecycleHooks
	logger *slog.Logger
}

// Option configures a Tracker.
type Option func(*options)

// WithLogger sets a structured logger for command tracing.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithHooks registers observability hooks.
func WithHooks(hooks history.LifecycleHooks) Option {
	return func(o *options) {
		o.hooks = hooks
	}
}

// WithName labels the tracked document in events and logs.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

// New creates a Tracker starting from initial.
func New[T any](initial history.History[T], opts ...Option) *Tracker[T] {
	o := options{logger: logging.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = logging.NewNop()
	}
	if o.name != "" {
		o.logger = o.logger.With("document", o.name)
	}
	return &Tracker[T]{
		state:  initial,
		name:   o.name,
		hooks:  o.hooks,
		logger: o.logger,
	}
}

// State returns the current History snapshot.
func (t *Tracker[T]) State() history.History[T] {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.state
}

// Present returns the current value.
func (t *Tracker[T]) Present() T {
	return t.State().Present()
}

// CanUndo reports whether Undo would succeed.
func (t *Tracker[T]) CanUndo() bool {
	return t.State().CanUndo()
}

// CanRedo reports whether Redo would succeed.
func (t *Tracker[T]) CanRedo() bool {
	return t.State().CanRedo()
}

// Set commits v as a new checkpoint.
func (t *Tracker[T]) Set(v T) history.History[T] {
	h, _ := t.Dispatch(history.SetCommand(v))
	return h
}

// Replace overwrites the present without a checkpoint.
func (t *Tracker[T]) Replace(v T) history.History[T] {
	h, _ := t.Dispatch(history.ReplaceCommand(v))
	return h
}

// Reset discards all history and starts over from v.
func (t *Tracker[T]) Reset(v T) history.History[T] {
	h, _ := t.Dispatch(history.ResetCommand(v))
	return h
}

// Undo steps back. Returns ErrNothingToUndo, with the state untouched, when
// the undo trail is empty.
func (t *Tracker[T]) Undo() (history.History[T], error) {
	return t.Dispatch(history.UndoCommand[T]())
}

// Redo steps forward. Returns ErrNothingToRedo, with the state untouched, when
// the redo trail is empty.
func (t *Tracker[T]) Redo() (history.History[T], error) {
	return t.Dispatch(history.RedoCommand[T]())
}

// Dispatch applies cmd and returns the resulting history.
// Hooks run before the lock is released and must not call back into t.
func (t *Tracker[T]) Dispatch(cmd history.Command[T]) (history.History[T], error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	next, outcome := history.Step(t.state, cmd)
	t.state = next

	t.logger.Debug("command dispatched",
		"kind", cmd.Kind,
		"outcome", outcome,
		"past", next.PastLen(),
		"future", next.FutureLen(),
	)
	t.hooks.Fire(context.Background(), history.NewEvent(t.name, cmd.Kind, outcome, next))

	return next, history.OutcomeError(cmd.Kind, outcome)
}
