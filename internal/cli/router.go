package cli

import (
	"context"
	"io"
	"strings"

	"github.com/aretw0/lifecycle"
)

// endOfInput is appended to the REPL input so that EOF reaches the router as an
// ordinary event, after every line that preceded it.
const endOfInput = "\x04"

// endOfInputEvent is emitted once the REPL input is exhausted.
// Topic: "input/eof"
type endOfInputEvent struct{}

func (endOfInputEvent) String() string {
	return "input/eof"
}

// replRouter wires a REPL session into a lifecycle router.
//
// Lines that are not mapped to a command are passed to exec. The words q, quit
// and exit shut the session down through the router's shutdown bridge, help and
// show are routed as commands. When interrupts is set the router also listens
// for Ctrl+C and forwards it to onInterrupt instead of exiting.
type replRouter struct {
	in          io.Reader
	interrupts  bool
	exec        func(line string)
	help        func()
	show        func()
	onInterrupt func()
	onQuit      func()
	onEOF       func()
}

// create builds the router. cancel stops the session; events that arrive after
// it has been called are dropped.
func (rr replRouter) create(ctx context.Context, cancel context.CancelFunc) *lifecycle.Router {
	live := func(fn func()) lifecycle.Handler {
		return lifecycle.HandlerFunc(func(context.Context, lifecycle.Event) error {
			if ctx.Err() == nil {
				fn()
			}
			return nil
		})
	}

	routerOpts := []lifecycle.InteractiveOption{
		// A. Input Bridge: unmapped lines -> exec
		lifecycle.WithDefaultHandler(lifecycle.HandlerFunc(func(_ context.Context, e lifecycle.Event) error {
			if ctx.Err() != nil {
				return nil
			}
			switch ev := e.(type) {
			case lifecycle.LineEvent:
				rr.exec(ev.Line)
				return nil
			case lifecycle.UnknownCommandEvent:
				rr.exec(ev.Command)
				return nil
			}
			return lifecycle.ErrNotHandled
		})),
		lifecycle.WithCommand("help", live(rr.help)),
		lifecycle.WithCommand("show", live(rr.show)),

		// B. Shutdown Bridge: q/quit/exit -> cancel
		lifecycle.WithShutdown(func() {
			if ctx.Err() == nil {
				rr.onQuit()
			}
			cancel()
		}),

		lifecycle.WithSignal(rr.interrupts),
		lifecycle.WithInputOptions(
			lifecycle.WithInputReader(io.MultiReader(rr.in, strings.NewReader("\n"+endOfInput+"\n"))),
			lifecycle.WithInputMappings(map[string]lifecycle.Event{
				"q":        lifecycle.ShutdownEvent{Reason: "manual"},
				"quit":     lifecycle.ShutdownEvent{Reason: "manual"},
				"exit":     lifecycle.ShutdownEvent{Reason: "manual"},
				"?":        lifecycle.InputEvent{Command: "help"},
				endOfInput: endOfInputEvent{},
			}),
		),
	}

	// C. Signal Bridge: Ctrl+C is reported, never fatal
	if rr.interrupts {
		routerOpts = append(routerOpts, lifecycle.WithInterruptHandler(lifecycle.HandlerFunc(func(context.Context, lifecycle.Event) error {
			if ctx.Err() == nil && rr.onInterrupt != nil {
				rr.onInterrupt()
			}
			return nil
		})))
	}

	r := lifecycle.NewInteractiveRouter(routerOpts...)
	r.Handle(endOfInputEvent{}.String(), lifecycle.HandlerFunc(func(context.Context, lifecycle.Event) error {
		if ctx.Err() == nil {
			rr.onEOF()
		}
		cancel()
		return nil
	}))
	r.Handle(lifecycle.ClearLineEvent{}.String(), live(rr.show))
	return r
}
