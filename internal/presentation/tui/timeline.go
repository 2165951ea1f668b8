package tui

import (
	"fmt"
	"strings"

	"github.com/aretw0/rewind/pkg/history"
	"github.com/muesli/termenv"
)

const separator = " › "

// Timeline renders h on one line: the undo trail faint, the present bracketed
// and highlighted, the redo trail in italics. Values are formatted with %v.
func Timeline[T any](o *termenv.Output, h history.History[T]) string {
	parts := make([]string, 0, h.PastLen()+1+h.FutureLen())
	for _, v := range h.Past() {
		parts = append(parts, o.String(fmt.Sprint(v)).Faint().String())
	}
	if h.HasPresent() {
		present := fmt.Sprintf("[%v]", h.Present())
		parts = append(parts, o.String(present).Bold().Foreground(o.Color("#2dd4bf")).String())
	} else {
		parts = append(parts, o.String("[]").Faint().String())
	}
	for _, v := range h.Future() {
		parts = append(parts, o.String(fmt.Sprint(v)).Italic().String())
	}

	status := fmt.Sprintf("  (undo %d, redo %d)", h.PastLen(), h.FutureLen())
	return strings.Join(parts, separator) + o.String(status).Faint().String()
}
