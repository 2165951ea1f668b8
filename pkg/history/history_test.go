package history_test

import (
	"testing"

	"github.com/aretw0/rewind/pkg/history"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// view flattens a History so assertions do not depend on the equality func field.
type view[T any] struct {
	Past    []T
	Present T
	Future  []T
}

func snapshot[T any](h history.History[T]) view[T] {
	return view[T]{Past: h.Past(), Present: h.Present(), Future: h.Future()}
}

func TestHistory_New(t *testing.T) {
	h := history.New("A")

	assert.True(t, h.HasPresent())
	assert.Equal(t, "A", h.Present())
	assert.Empty(t, h.Past())
	assert.Empty(t, h.Future())
	assert.False(t, h.CanUndo())
	assert.False(t, h.CanRedo())
	assert.Equal(t, []string{"A"}, h.Timeline())
	assert.Equal(t, 0, h.Cursor())
}

func TestHistory_ZeroValue(t *testing.T) {
	var h history.History[*int]

	assert.False(t, h.HasPresent())
	assert.Nil(t, h.Timeline())

	// A nil present must not collide with "no present".
	h = h.Set(nil)
	assert.True(t, h.HasPresent())
	assert.Nil(t, h.Present())
	assert.Empty(t, h.Past(), "setting the first present creates no checkpoint")

	one := 1
	h = h.Set(&one)
	assert.Equal(t, []*int{nil}, h.Past())
	assert.Same(t, &one, h.Present())
}

func TestHistory_Scenario_SetUndoRedo(t *testing.T) {
	h := history.New("A")

	h = h.Set("B")
	assert.Equal(t, view[string]{Past: []string{"A"}, Present: "B"}, snapshot(h))

	h = h.Set("C")
	assert.Equal(t, view[string]{Past: []string{"A", "B"}, Present: "C"}, snapshot(h))

	h = h.Undo()
	assert.Equal(t, view[string]{Past: []string{"A"}, Present: "B", Future: []string{"C"}}, snapshot(h))

	h = h.Undo()
	assert.Equal(t, view[string]{Present: "A", Future: []string{"B", "C"}}, snapshot(h))

	h = h.Redo()
	assert.Equal(t, view[string]{Past: []string{"A"}, Present: "B", Future: []string{"C"}}, snapshot(h))

	h = h.Set("D")
	assert.Equal(t, view[string]{Past: []string{"A", "B"}, Present: "D"}, snapshot(h), "redo trail [C] is discarded")
}

func TestHistory_Scenario_ReplaceWithoutCheckpoint(t *testing.T) {
	h := history.New("A").Replace("B")

	assert.Equal(t, view[string]{Present: "B"}, snapshot(h))
	assert.False(t, h.CanUndo())
}

func TestHistory_SetAndReplaceNoop(t *testing.T) {
	h := history.New("A").Set("B").Set("C").Undo()

	set := h.Set(h.Present())
	assert.Equal(t, snapshot(h), snapshot(set))
	assert.True(t, set.CanRedo(), "a no-op Set keeps the redo trail")

	replace := h.Replace(h.Present())
	assert.Equal(t, snapshot(h), snapshot(replace))
	assert.True(t, replace.CanRedo(), "a no-op Replace keeps the redo trail")
}

func TestHistory_NewEditClearsRedo(t *testing.T) {
	h := history.New(1).Set(2).Set(3).Undo().Undo()
	require.Equal(t, []int{2, 3}, h.Future())

	assert.Empty(t, h.Set(9).Future())
	assert.Empty(t, h.Replace(9).Future())
	assert.Equal(t, h.Past(), h.Replace(9).Past())
	assert.Equal(t, append(h.Past(), h.Present()), h.Set(9).Past())
}

func TestHistory_Reset(t *testing.T) {
	h := history.New("A").Set("B").Set("C").Undo()

	reset := h.Reset("Z")
	assert.Equal(t, view[string]{Present: "Z"}, snapshot(reset))

	// Reset has no short-circuit, it clears even when the value is unchanged.
	same := h.Reset(h.Present())
	assert.Equal(t, view[string]{Present: "B"}, snapshot(same))
}

func TestHistory_UndoRedoGuarded(t *testing.T) {
	h := history.New("A")

	assert.Equal(t, snapshot(h), snapshot(h.Undo()))
	assert.Equal(t, snapshot(h), snapshot(h.Redo()))

	_, ok := h.PeekUndo()
	assert.False(t, ok)
	_, ok = h.PeekRedo()
	assert.False(t, ok)
}

func TestHistory_Peek(t *testing.T) {
	h := history.New("A").Set("B").Set("C").Undo()

	prev, ok := h.PeekUndo()
	require.True(t, ok)
	assert.Equal(t, "A", prev)

	next, ok := h.PeekRedo()
	require.True(t, ok)
	assert.Equal(t, "C", next)
}

func TestHistory_Immutability(t *testing.T) {
	base := history.New("A").Set("B").Set("C")
	undone := base.Undo()

	// Both branches append to a past derived from the same backing array.
	left := undone.Set("L")
	right := undone.Set("R")

	assert.Equal(t, []string{"A", "B", "C"}, base.Timeline())
	assert.Equal(t, []string{"A", "B", "C"}, undone.Timeline())
	assert.Equal(t, []string{"A", "B", "L"}, left.Timeline())
	assert.Equal(t, []string{"A", "B", "R"}, right.Timeline())

	// Accessors hand out copies.
	past := base.Past()
	past[0] = "mutated"
	assert.Equal(t, "A", base.Past()[0])
}

func TestHistory_EqualityPolicies(t *testing.T) {
	type doc struct{ Title string }

	t.Run("Comparable uses identity for pointers", func(t *testing.T) {
		a, b := &doc{"x"}, &doc{"x"}
		h := history.New(a).Set(b)
		assert.True(t, h.CanUndo())
	})

	t.Run("DeepEqual compares structure", func(t *testing.T) {
		a, b := &doc{"x"}, &doc{"x"}
		h := history.NewFunc(a, history.DeepEqual[*doc]()).Set(b)
		assert.False(t, h.CanUndo())
		assert.Same(t, a, h.Present())
	})

	t.Run("nil policy falls back to DeepEqual", func(t *testing.T) {
		h := history.NewFunc([]string{"x"}, nil).Set([]string{"x"})
		assert.False(t, h.CanUndo())
	})

	t.Run("Never records every Set", func(t *testing.T) {
		h := history.NewFunc("x", history.Never[string]()).Set("x")
		assert.Equal(t, []string{"x"}, h.Past())
	})

	t.Run("WithEqual swaps the policy", func(t *testing.T) {
		h := history.New("x").WithEqual(history.Never[string]()).Replace("x")
		assert.Equal(t, "x", h.Present())
		assert.False(t, h.CanUndo())
	})
}

func TestHistory_UnboundedGrowth(t *testing.T) {
	h := history.New(0)
	for i := 1; i <= 5000; i++ {
		h = h.Set(i)
	}
	assert.Equal(t, 5000, h.PastLen())

	for h.CanUndo() {
		h = h.Undo()
	}
	assert.Equal(t, 0, h.Present())
	assert.Equal(t, 5000, h.FutureLen())
}
