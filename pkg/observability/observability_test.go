package observability_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/aretw0/rewind/pkg/history"
	"github.com/aretw0/rewind/pkg/observability"
	"github.com/aretw0/rewind/pkg/tracker"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Hooks(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := observability.NewMetrics(reg)

	tr := tracker.New(history.New("A"), tracker.WithHooks(m.Hooks()))
	tr.Set("B")
	tr.Set("C")
	tr.Set("C")
	_, _ = tr.Undo()
	_, _ = tr.Redo()
	_, _ = tr.Redo()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Commands.WithLabelValues("set", "applied")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Commands.WithLabelValues("set", "noop")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Commands.WithLabelValues("redo", "guarded")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Guarded.WithLabelValues("redo")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.Guarded.WithLabelValues("undo")))

	count, err := testutil.GatherAndCount(reg, "rewind_commands_total")
	require.NoError(t, err)
	assert.Equal(t, 5, count)
}

func TestNewMetrics_NilRegisterer(t *testing.T) {
	m := observability.NewMetrics(nil)
	m.Hooks().Fire(context.Background(), &history.Event{Kind: history.KindUndo, Outcome: history.OutcomeGuarded})
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Guarded.WithLabelValues("undo")))
}

func TestLogHooks(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	tr := tracker.New(history.New(1), tracker.WithName("counter"),
		tracker.WithHooks(observability.LogHooks(logger)))
	tr.Set(2)
	_, _ = tr.Redo()

	out := buf.String()
	assert.Contains(t, out, "level=INFO msg=history_command")
	assert.Contains(t, out, "document=counter")
	assert.Contains(t, out, "level=WARN msg=history_guarded")
	assert.NotContains(t, out, "msg=history_command document=counter kind=redo")
}

func TestMergedHooks(t *testing.T) {
	var buf bytes.Buffer
	m := observability.NewMetrics(prometheus.NewRegistry())
	hooks := history.MergeHooks(m.Hooks(), observability.LogHooks(slog.New(slog.NewJSONHandler(&buf, nil))))

	tr := tracker.New(history.New("x"), tracker.WithHooks(hooks))
	tr.Reset("y")

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Commands.WithLabelValues("reset", "applied")))
	assert.Contains(t, buf.String(), `"kind":"reset"`)
}
