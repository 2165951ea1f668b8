package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/aretw0/rewind/pkg/history"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommand(t *testing.T) {
	cmd, err := ParseCommand("SET", "  hello world ")
	require.NoError(t, err)
	assert.Equal(t, history.SetCommand("hello world"), cmd)

	cmd, err = ParseCommand("undo", "ignored")
	require.NoError(t, err)
	assert.Equal(t, history.UndoCommand[string](), cmd)

	_, err = ParseCommand("replace", "")
	assert.ErrorIs(t, err, ErrMissingValue)

	_, err = ParseCommand("jump", "x")
	assert.ErrorIs(t, err, history.ErrUnknownCommand)
}

func TestRunREPL(t *testing.T) {
	in := strings.NewReader(strings.Join([]string{
		"set B",
		"set C",
		"undo",
		"undo",
		"undo",
		"redo",
		"set D",
		"bogus",
		"show",
		"quit",
		"set never",
	}, "\n"))
	var out bytes.Buffer

	h, err := RunREPL(context.Background(), ReplOptions{Initial: "A", In: in, Out: &out})
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B"}, h.Past())
	assert.Equal(t, "D", h.Present())
	assert.Empty(t, h.Future())

	text := out.String()
	assert.Contains(t, text, "[A]  (undo 0, redo 0)")
	assert.Contains(t, text, ">>> nothing to undo")
	assert.Contains(t, text, "A › [B] › C  (undo 1, redo 1)")
	assert.Contains(t, text, "unknown command")
	assert.Contains(t, text, ">>> Bye!")
	assert.NotContains(t, text, "never")
}

func TestRunREPL_EOF(t *testing.T) {
	var out bytes.Buffer
	h, err := RunREPL(context.Background(), ReplOptions{
		Initial: "x",
		In:      strings.NewReader("replace y\nhelp\n"),
		Out:     &out,
	})
	require.NoError(t, err)
	assert.Equal(t, "y", h.Present())
	assert.Equal(t, 0, h.PastLen())
	assert.Contains(t, out.String(), "replace <value>")
}

func TestRunREPL_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r, w, err := os.Pipe()
	require.NoError(t, err)
	defer r.Close()
	defer w.Close()

	var out bytes.Buffer
	h, err := RunREPL(ctx, ReplOptions{Initial: "x", In: r, Out: &out})
	assert.NoError(t, err)
	assert.Equal(t, "x", h.Present())
}

func TestRunREPL_HelpAlias(t *testing.T) {
	var out bytes.Buffer
	_, err := RunREPL(context.Background(), ReplOptions{Initial: "x", In: strings.NewReader("?\nq\n"), Out: &out})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "undo, redo")
	assert.Contains(t, out.String(), ">>> Bye!")
}

func TestRunREPL_QuitReleasesReader(t *testing.T) {
	run := func() {
		var out bytes.Buffer
		h, err := RunREPL(context.Background(), ReplOptions{
			Initial: "x",
			In:      strings.NewReader("quit\nset a\nset b\n"),
			Out:     &out,
		})
		require.NoError(t, err)
		assert.Equal(t, "x", h.Present())
	}

	run()
	before := runtime.NumGoroutine()
	for range 20 {
		run()
	}

	assert.Eventually(t, func() bool {
		return runtime.NumGoroutine() <= before+2
	}, 2*time.Second, 10*time.Millisecond)
}

const sampleScript = `
initial: A
commands:
  - {kind: set, value: B}
  - {kind: set, value: C}
  - {kind: undo}
  - {kind: undo}
  - {kind: redo}
  - {kind: set, value: D}
  - {kind: redo}
`

func TestPlay(t *testing.T) {
	s, err := ParseScript(strings.NewReader(sampleScript))
	require.NoError(t, err)

	var out bytes.Buffer
	h, err := Play(s, PlayOptions{Name: "sample", Out: &out})
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B"}, h.Past())
	assert.Equal(t, "D", h.Present())
	assert.Contains(t, out.String(), `  1. set "B": ok`)
	assert.Contains(t, out.String(), "  7. redo: nothing to redo")
	assert.Contains(t, out.String(), "A › B › [D]  (undo 2, redo 0)")
}

func TestPlay_Report(t *testing.T) {
	s, err := ParseScript(strings.NewReader(sampleScript))
	require.NoError(t, err)

	var out bytes.Buffer
	_, err = Play(s, PlayOptions{Name: "sample", Out: &out, Report: true, Style: "notty"})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "sample")
	assert.Contains(t, out.String(), "present")
}

func TestParseScript_Errors(t *testing.T) {
	tests := []struct {
		name   string
		script string
		want   string
	}{
		{"unknown kind", "initial: a\ncommands:\n  - {kind: jump}\n", "step 1"},
		{"missing value", "initial: a\ncommands:\n  - {kind: undo}\n  - {kind: set}\n", "step 2: set: missing value"},
		{"unknown field", "initial: a\nsteps: []\n", "failed to parse script"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseScript(strings.NewReader(tt.script))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadScript(t *testing.T) {
	path := filepath.Join(t.TempDir(), "script.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleScript), 0o644))

	s, err := LoadScript(path)
	require.NoError(t, err)
	assert.Equal(t, "A", s.Initial)
	assert.Len(t, s.Commands, 7)

	_, err = LoadScript(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestNewOutput_NotTerminal(t *testing.T) {
	var buf bytes.Buffer
	assert.False(t, IsTerminal(&buf))
	o := NewOutput(&buf)
	assert.Equal(t, "plain", o.String("plain").Bold().String())
}
