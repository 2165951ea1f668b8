/*
Package tracker provides a stateful owner for a single history.

A Tracker holds the current history.History value and funnels every command
through one lock, so concurrent callers never race on the same snapshot. Undo and
Redo report ErrNothingToUndo and ErrNothingToRedo instead of silently doing
nothing, which lets callers surface the guard to their users.
*/
package tracker
