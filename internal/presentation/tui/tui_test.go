package tui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/aretw0/rewind/pkg/history"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func plainOutput(buf *bytes.Buffer) *termenv.Output {
	return termenv.NewOutput(buf, termenv.WithProfile(termenv.Ascii))
}

func TestTimeline(t *testing.T) {
	var buf bytes.Buffer
	o := plainOutput(&buf)

	h := history.New("A").Set("B").Set("C").Undo()
	assert.Equal(t, "A › [B] › C  (undo 1, redo 1)", Timeline(o, h))

	assert.Equal(t, "[]  (undo 0, redo 0)", Timeline(o, history.History[int]{}))
}

func TestTimeline_Colored(t *testing.T) {
	var buf bytes.Buffer
	o := termenv.NewOutput(&buf, termenv.WithProfile(termenv.TrueColor))

	line := Timeline(o, history.New(1).Set(2))
	assert.Contains(t, line, "\x1b[")
	assert.Contains(t, line, "[2]")
}

func TestPrintBanner(t *testing.T) {
	var buf bytes.Buffer
	PrintBanner(&buf, plainOutput(&buf))

	assert.Contains(t, buf.String(), "|  _ \\")
	assert.Equal(t, 7, strings.Count(buf.String(), "\n"))
}

func TestReport(t *testing.T) {
	h := history.New("A").Set("a|b").Set("C").Undo()

	md := Report("notes", h)
	assert.Contains(t, md, "# notes")
	assert.Contains(t, md, "| 1 | A | undo |")
	assert.Contains(t, md, `| 2 | **a\|b** | present |`)
	assert.Contains(t, md, "| 3 | C | redo |")
	assert.Contains(t, md, "1 checkpoint(s) to undo, 1 to redo.")
}

func TestNewRenderer(t *testing.T) {
	render, err := NewRenderer("notty")
	require.NoError(t, err)

	out, err := render(Report("doc", history.New("hello").Set("world")))
	require.NoError(t, err)
	assert.Contains(t, out, "hello")
	assert.Contains(t, out, "world")
}
