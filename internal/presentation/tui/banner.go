package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner outputs the ASCII art banner for Rewind.
func PrintBanner(w io.Writer, o *termenv.Output) {
	// Using a subtle gradient-like color scheme (Teal/Cyan)
	lines := []struct {
		text  string
		color string
	}{
		{"  ____               _           _ ", "#2dd4bf"},
		{" |  _ \\ _____      _(_)_ __   __| |", "#22d3ee"},
		{" | |_) / _ \\ \\ /\\ / / | '_ \\ / _` |", "#38bdf8"},
		{" |  _ <  __/\\ V  V /| | | | | (_| |", "#60a5fa"},
		{" |_| \\_\\___| \\_/\\_/ |_|_| |_|\\__,_|", "#818cf8"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, o.String(l.text).Foreground(o.Color(l.color)))
	}
	fmt.Fprintln(w)
}
