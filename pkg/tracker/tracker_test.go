package tracker_test

import (
	"bytes"
	"context"
	"log/slog"
	"sync"
	"testing"

	"github.com/aretw0/rewind/pkg/history"
	"github.com/aretw0/rewind/pkg/tracker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTracker_Scenario(t *testing.T) {
	tr := tracker.New(history.New("A"))

	tr.Set("B")
	tr.Set("C")
	_, err := tr.Undo()
	require.NoError(t, err)
	_, err = tr.Undo()
	require.NoError(t, err)

	h, err := tr.Redo()
	require.NoError(t, err)
	assert.Equal(t, "B", h.Present())
	assert.True(t, tr.CanUndo())
	assert.True(t, tr.CanRedo())

	h = tr.Set("D")
	assert.Equal(t, []string{"A", "B"}, h.Past())
	assert.Equal(t, "D", tr.Present())
	assert.False(t, tr.CanRedo())
}

func TestTracker_GuardedNavigation(t *testing.T) {
	tr := tracker.New(history.New(1))

	h, err := tr.Undo()
	assert.ErrorIs(t, err, tracker.ErrNothingToUndo)
	assert.Equal(t, 1, h.Present())

	h, err = tr.Redo()
	assert.ErrorIs(t, err, tracker.ErrNothingToRedo)
	assert.Equal(t, 1, h.Present())
}

func TestTracker_ReplaceAndReset(t *testing.T) {
	tr := tracker.New(history.New("A"))
	tr.Set("B")

	h := tr.Replace("B'")
	assert.Equal(t, []string{"A"}, h.Past())
	assert.Equal(t, "B'", h.Present())

	h = tr.Reset("fresh")
	assert.Empty(t, h.Past())
	assert.Empty(t, h.Future())
	assert.Equal(t, "fresh", tr.Present())
}

func TestTracker_DispatchUnknown(t *testing.T) {
	tr := tracker.New(history.New("A"))

	h, err := tr.Dispatch(history.Command[string]{Kind: "jump"})
	assert.ErrorIs(t, err, history.ErrUnknownCommand)
	assert.Equal(t, "A", h.Present())
}

func TestTracker_HooksAndLogging(t *testing.T) {
	var events []history.Event
	var mu sync.Mutex
	hooks := history.LifecycleHooks{
		OnCommand: func(_ context.Context, e *history.Event) {
			mu.Lock()
			defer mu.Unlock()
			events = append(events, *e)
		},
	}

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tr := tracker.New(history.New("A"), tracker.WithHooks(hooks), tracker.WithLogger(logger), tracker.WithName("notes"))
	tr.Set("B")
	tr.Set("B")
	_, _ = tr.Redo()

	require.Len(t, events, 3)
	assert.Equal(t, history.OutcomeApplied, events[0].Outcome)
	assert.Equal(t, 1, events[0].PastLen)
	assert.Equal(t, "notes", events[0].Document)
	assert.Equal(t, history.OutcomeNoop, events[1].Outcome)
	assert.Equal(t, history.OutcomeGuarded, events[2].Outcome)

	assert.Contains(t, buf.String(), "document=notes")
	assert.Contains(t, buf.String(), "outcome=guarded")
}

func TestTracker_ConcurrentSets(t *testing.T) {
	tr := tracker.New(history.New(0))

	var wg sync.WaitGroup
	for i := 1; i <= 100; i++ {
		wg.Add(1)
		go func(v int) {
			defer wg.Done()
			tr.Set(v)
		}(i)
	}
	wg.Wait()

	// Every distinct Set produced exactly one checkpoint.
	assert.Equal(t, 100, tr.State().PastLen())
}

func TestTracker_HooksFollowCommitOrder(t *testing.T) {
	var pastLens []int
	hooks := history.LifecycleHooks{
		OnCommand: func(_ context.Context, e *history.Event) {
			pastLens = append(pastLens, e.PastLen)
		},
	}
	tr := tracker.New(history.New(0), tracker.WithHooks(hooks))

	var wg sync.WaitGroup
	for i := 1; i <= 500; i++ {
		wg.Add(1)
		go func(v int) {
			defer wg.Done()
			tr.Set(v)
		}(i)
	}
	wg.Wait()

	require.Len(t, pastLens, 500)
	for i, n := range pastLens {
		require.Equal(t, i+1, n, "event %d delivered out of order", i)
	}
}
