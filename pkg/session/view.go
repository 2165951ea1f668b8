package session

import "github.com/aretw0/rewind/pkg/history"

// View is the wire shape of a document, shared by the HTTP and MCP adapters.
type View[T any] struct {
	ID      string `json:"id"`
	Past    []T    `json:"past"`
	Present T      `json:"present"`
	Future  []T    `json:"future"`
	CanUndo bool   `json:"can_undo"`
	CanRedo bool   `json:"can_redo"`
}

// NewView flattens h for output. Past and Future are never nil, so they
// encode as empty arrays.
func NewView[T any](id string, h history.History[T]) View[T] {
	v := View[T]{
		ID:      id,
		Past:    h.Past(),
		Present: h.Present(),
		Future:  h.Future(),
		CanUndo: h.CanUndo(),
		CanRedo: h.CanRedo(),
	}
	if v.Past == nil {
		v.Past = []T{}
	}
	if v.Future == nil {
		v.Future = []T{}
	}
	return v
}
