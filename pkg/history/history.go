package history

import "slices"

// History is an immutable undo/redo timeline over values of type T.
//
// The zero value is an empty history with no present value and a structural
// (reflect.DeepEqual) equality policy. Use New or NewFunc to start from a value.
type History[T any] struct {
	past       []T
	present    T
	hasPresent bool
	future     []T
	equal      Equal[T]
}

// New creates a history whose present is initial, comparing values with ==.
func New[T comparable](initial T) History[T] {
	return NewFunc(initial, Comparable[T]())
}

// NewFunc creates a history whose present is initial, comparing values with eq.
// A nil eq falls back to DeepEqual.
func NewFunc[T any](initial T, eq Equal[T]) History[T] {
	return History[T]{
		present:    initial,
		hasPresent: true,
		equal:      eq,
	}
}

// WithEqual returns a copy of h that uses eq for the Set/Replace short-circuit.
func (h History[T]) WithEqual(eq Equal[T]) History[T] {
	h.equal = eq
	return h
}

// Present returns the current value. It is the zero T when HasPresent is false.
func (h History[T]) Present() T {
	return h.present
}

// HasPresent reports whether a present value has been set.
func (h History[T]) HasPresent() bool {
	return h.hasPresent
}

// Past returns a copy of the undo trail, oldest first.
func (h History[T]) Past() []T {
	return clone(h.past)
}

// Future returns a copy of the redo trail, nearest first.
func (h History[T]) Future() []T {
	return clone(h.future)
}

// Timeline returns past, present and future as one ordered slice.
// A history without a present yields an empty timeline.
func (h History[T]) Timeline() []T {
	if !h.hasPresent {
		return nil
	}
	out := make([]T, 0, len(h.past)+1+len(h.future))
	out = append(out, h.past...)
	out = append(out, h.present)
	return append(out, h.future...)
}

// Cursor is the index of the present within Timeline.
func (h History[T]) Cursor() int {
	return len(h.past)
}

// PastLen returns the number of undo steps available.
func (h History[T]) PastLen() int {
	return len(h.past)
}

// FutureLen returns the number of redo steps available.
func (h History[T]) FutureLen() int {
	return len(h.future)
}

// CanUndo reports whether Undo would move the cursor.
func (h History[T]) CanUndo() bool {
	return len(h.past) != 0
}

// CanRedo reports whether Redo would move the cursor.
func (h History[T]) CanRedo() bool {
	return len(h.future) != 0
}

// PeekUndo returns the value Undo would restore, without moving.
func (h History[T]) PeekUndo() (T, bool) {
	if !h.CanUndo() {
		var zero T
		return zero, false
	}
	return h.past[len(h.past)-1], true
}

// PeekRedo returns the value Redo would restore, without moving.
func (h History[T]) PeekRedo() (T, bool) {
	if !h.CanRedo() {
		var zero T
		return zero, false
	}
	return h.future[0], true
}

// Set commits v as a new checkpoint. The previous present is appended to the
// undo trail and the redo trail is discarded. Equal values are a no-op.
func (h History[T]) Set(v T) History[T] {
	if h.same(v) {
		return h
	}
	next := h.with(v)
	if h.hasPresent {
		next.past = push(h.past, h.present)
	}
	return next
}

// Replace overwrites the present without creating a checkpoint. The undo trail
// is kept, the redo trail is discarded. Equal values are a no-op.
func (h History[T]) Replace(v T) History[T] {
	if h.same(v) {
		return h
	}
	return h.with(v)
}

// Reset discards all history and makes v the present, unconditionally.
func (h History[T]) Reset(v T) History[T] {
	next := h.with(v)
	next.past = nil
	return next
}

// Undo moves the cursor one step back. With an empty undo trail it returns h.
func (h History[T]) Undo() History[T] {
	n := len(h.past)
	if n == 0 {
		return h
	}
	return History[T]{
		// Clip so a later append cannot write into the slot still visible through h.
		past:       h.past[: n-1 : n-1],
		present:    h.past[n-1],
		hasPresent: true,
		future:     prepend(h.present, h.future),
		equal:      h.equal,
	}
}

// Redo moves the cursor one step forward. With an empty redo trail it returns h.
func (h History[T]) Redo() History[T] {
	if len(h.future) == 0 {
		return h
	}
	return History[T]{
		past:       push(h.past, h.present),
		present:    h.future[0],
		hasPresent: true,
		future:     h.future[1:],
		equal:      h.equal,
	}
}

// same applies the equality policy against the present.
// A history without a present never matches.
func (h History[T]) same(v T) bool {
	if !h.hasPresent {
		return false
	}
	eq := h.equal
	if eq == nil {
		eq = DeepEqual[T]()
	}
	return eq(h.present, v)
}

// with returns h with v as present and no redo trail.
func (h History[T]) with(v T) History[T] {
	return History[T]{
		past:       h.past,
		present:    v,
		hasPresent: true,
		equal:      h.equal,
	}
}

// clone copies s, normalising empty slices to nil.
func clone[T any](s []T) []T {
	if len(s) == 0 {
		return nil
	}
	return slices.Clone(s)
}

// push appends v to a fresh copy of s.
func push[T any](s []T, v T) []T {
	return append(slices.Clip(s), v)
}

// prepend returns a fresh slice holding v followed by s.
func prepend[T any](v T, s []T) []T {
	out := make([]T, 0, len(s)+1)
	out = append(out, v)
	return append(out, s...)
}
