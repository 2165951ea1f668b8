/*
Package rewind is an undo/redo history for arbitrary values.

A history is three parts: the past (undo trail), the present value and the
future (redo trail). Every operation returns a new history and leaves the old one
untouched, so snapshots can be kept, compared and shared freely.

# Concept

Edits come in two flavours. Set commits a new checkpoint: the old present moves
onto the undo trail and the redo trail is discarded. Replace overwrites the present
in place, for transient edits such as keystrokes that should not each become an
undo step. Undo and Redo walk the trails; asking for either with nothing to move to
leaves the history as it was. Setting or replacing a value equal to the present is a
no-op, where equality is configurable per history.

# Packages

  - pkg/history: the immutable History value and its transitions.
  - pkg/tracker: a concurrency-safe owner of one history.
  - pkg/session: a manager for many documents, each with its own history.
  - pkg/observability: logging and Prometheus hooks.
  - pkg/adapters/http, pkg/adapters/mcp: network surfaces over the session manager.

# Usage

	t := rewind.New("draft")
	t.Set("first edit")
	t.Replace("first edit, refined")
	t.Undo()
	fmt.Println(t.Present()) // draft
*/
package rewind
