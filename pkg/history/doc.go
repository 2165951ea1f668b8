/*
Package history implements a generic, immutable undo/redo timeline.

A History holds three parts: the values superseded by the present (Past, oldest
first), the Present value itself, and the values reachable again through Redo
(Future, nearest first). Every operation returns a new History and never mutates
a value previously handed out, so callers can keep old snapshots around freely.

# Transitions

  - Set: commit a new checkpoint. The present moves to Past and the redo trail is dropped.
  - Replace: overwrite the present without a checkpoint. The redo trail is dropped.
  - Reset: discard all history and start over from a new present.
  - Undo / Redo: move the cursor one step backward or forward.

Set and Replace are no-ops when the new value is equal to the present, as decided
by the History's equality policy (see Equal). Undo on an empty Past and Redo on an
empty Future return the history unchanged; Step reports them as OutcomeGuarded.

# Usage

	h := history.New("A")
	h = h.Set("B")
	h = h.Set("C")
	h = h.Undo()       // present "B", future ["C"]
	h = h.Set("D")     // present "D", past ["A" "B"], redo trail dropped

The same transitions are available as data through Command and Step, which is
what stateful owners (tracker.Tracker, session.Manager) dispatch through.

History length is never bounded: Past and Future grow for as long as the value is
kept.
*/
package history
