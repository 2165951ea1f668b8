package tui

import (
	"fmt"
	"strings"

	"github.com/aretw0/rewind/pkg/history"
)

// Report builds a markdown document describing every position of h.
func Report[T any](title string, h history.History[T]) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n", title)
	sb.WriteString("| # | Value | Position |\n")
	sb.WriteString("|---|-------|----------|\n")

	row := 1
	for _, v := range h.Past() {
		fmt.Fprintf(&sb, "| %d | %s | undo |\n", row, cell(v))
		row++
	}
	if h.HasPresent() {
		fmt.Fprintf(&sb, "| %d | **%s** | present |\n", row, cell(h.Present()))
		row++
	}
	for _, v := range h.Future() {
		fmt.Fprintf(&sb, "| %d | %s | redo |\n", row, cell(v))
		row++
	}

	fmt.Fprintf(&sb, "\n%d checkpoint(s) to undo, %d to redo.\n", h.PastLen(), h.FutureLen())
	return sb.String()
}

// cell escapes a value for a markdown table cell.
func cell(v any) string {
	s := fmt.Sprint(v)
	s = strings.ReplaceAll(s, "|", `\|`)
	s = strings.ReplaceAll(s, "\n", " ")
	if s == "" {
		return "_(empty)_"
	}
	return s
}
