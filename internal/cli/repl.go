package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/aretw0/rewind/internal/presentation/tui"
	"github.com/aretw0/rewind/pkg/history"
	"github.com/aretw0/rewind/pkg/tracker"
	"github.com/muesli/termenv"
)

const replHelp = `Commands:
  set <value>      commit a new checkpoint
  replace <value>  overwrite the present without a checkpoint
  reset <value>    discard all history
  undo, redo       move along the timeline
  show             print the timeline
  help, ?          print this help
  quit             leave`

// ReplOptions configures an interactive session.
type ReplOptions struct {
	Initial string
	In      io.Reader // nil reads os.Stdin
	Out     io.Writer
	Output  *termenv.Output // nil derives one from Out
	Banner  bool
	Logger  *slog.Logger
	Hooks   history.LifecycleHooks
	// Interrupts makes the session handle Ctrl+C itself: the line is dropped
	// and the prompt comes back. Leave it unset when ctx already owns SIGINT.
	Interrupts bool
}

// RunREPL reads line commands from opts.In until quit, EOF or cancellation and
// returns the final history.
func RunREPL(ctx context.Context, opts ReplOptions) (history.History[string], error) {
	if opts.In == nil {
		opts.In = os.Stdin
	}
	if opts.Output == nil {
		opts.Output = NewOutput(opts.Out)
	}
	if opts.Logger == nil {
		opts.Logger = CreateLogger(false)
	}
	if opts.Banner {
		tui.PrintBanner(opts.Out, opts.Output)
	}

	t := tracker.New(history.New(opts.Initial),
		tracker.WithName("repl"),
		tracker.WithLogger(opts.Logger),
		tracker.WithHooks(opts.Hooks),
	)
	prompt := func() { fmt.Fprint(opts.Out, "> ") }
	show := func() {
		fmt.Fprintln(opts.Out, tui.Timeline(opts.Output, t.State()))
		prompt()
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var finished bool
	router := replRouter{
		in:         opts.In,
		interrupts: opts.Interrupts,
		exec: func(line string) {
			execLine(t, line, opts)
			prompt()
		},
		help: func() {
			fmt.Fprintln(opts.Out, replHelp)
			prompt()
		},
		show: show,
		onInterrupt: func() {
			fmt.Fprintln(opts.Out)
			printSystemMessage(opts.Out, "Interrupted (type 'quit' to leave)")
			prompt()
		},
		onQuit: func() {
			finished = true
			printSystemMessage(opts.Out, "Bye!")
		},
		onEOF: func() {
			finished = true
			fmt.Fprintln(opts.Out)
		},
	}.create(runCtx, cancel)

	show()
	opts.Logger.Debug("REPL started", "initial", opts.Initial)
	if err := router.Start(runCtx); err != nil {
		return t.State(), err
	}

	if !finished {
		fmt.Fprintln(opts.Out)
		return t.State(), handleExecutionError(ctx.Err())
	}
	return t.State(), nil
}

// execLine runs one REPL line.
func execLine(t *tracker.Tracker[string], line string, opts ReplOptions) {
	word, value, _ := strings.Cut(strings.TrimSpace(line), " ")
	if word == "" {
		return
	}

	cmd, err := ParseCommand(word, value)
	if err != nil {
		printSystemMessage(opts.Out, "%v (type 'help')", err)
		return
	}

	h, err := t.Dispatch(cmd)
	if err != nil {
		printSystemMessage(opts.Out, "%v", err)
	}
	fmt.Fprintln(opts.Out, tui.Timeline(opts.Output, h))
}

// ErrMissingValue is returned when set, replace or reset lack a value.
var ErrMissingValue = errors.New("missing value")

// ParseCommand builds a string command from a kind name and its raw value.
func ParseCommand(kind, value string) (history.Command[string], error) {
	k, err := history.ParseKind(kind)
	if err != nil {
		return history.Command[string]{}, err
	}
	value = strings.TrimSpace(value)
	if k.TakesValue() && value == "" {
		return history.Command[string]{}, fmt.Errorf("%s: %w", k, ErrMissingValue)
	}
	if !k.TakesValue() {
		value = ""
	}
	return history.Command[string]{Kind: k, Value: value}, nil
}
