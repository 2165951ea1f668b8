package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aretw0/rewind/internal/presentation/tui"
	"github.com/aretw0/rewind/pkg/history"
	"github.com/aretw0/rewind/pkg/tracker"
	"gopkg.in/yaml.v3"
)

// Script is a recorded sequence of commands.
//
//	initial: draft
//	commands:
//	  - {kind: set, value: first}
//	  - {kind: undo}
type Script struct {
	Initial  string          `yaml:"initial"`
	Commands []ScriptCommand `yaml:"commands"`
}

// ScriptCommand is one step of a Script.
type ScriptCommand struct {
	Kind  string  `yaml:"kind"`
	Value *string `yaml:"value,omitempty"`
}

// ParseScript decodes and validates a YAML script.
func ParseScript(r io.Reader) (*Script, error) {
	var s Script
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil && err != io.EOF {
		return nil, fmt.Errorf("failed to parse script: %w", err)
	}
	if _, err := s.Build(); err != nil {
		return nil, err
	}
	return &s, nil
}

// LoadScript reads a script file.
func LoadScript(path string) (*Script, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open script: %w", err)
	}
	defer f.Close()
	return ParseScript(f)
}

// Build converts the script steps into commands.
func (s *Script) Build() ([]history.Command[string], error) {
	cmds := make([]history.Command[string], 0, len(s.Commands))
	for i, c := range s.Commands {
		kind, err := history.ParseKind(c.Kind)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}
		if kind.TakesValue() && c.Value == nil {
			return nil, fmt.Errorf("step %d: %s: %w", i+1, kind, ErrMissingValue)
		}
		cmd := history.Command[string]{Kind: kind}
		if c.Value != nil {
			cmd.Value = *c.Value
		}
		cmds = append(cmds, cmd)
	}
	return cmds, nil
}

// PlayOptions configures a script replay.
type PlayOptions struct {
	Name   string
	Out    io.Writer
	Report bool
	Style  string // glamour style; empty detects the background
	Logger *slog.Logger
	Hooks  history.LifecycleHooks
}

// Play replays s, printing each step and the final timeline, and returns the
// final history. Guarded steps are reported but do not stop the replay.
func Play(s *Script, opts PlayOptions) (history.History[string], error) {
	cmds, err := s.Build()
	if err != nil {
		return history.History[string]{}, err
	}
	if opts.Logger == nil {
		opts.Logger = CreateLogger(false)
	}
	output := NewOutput(opts.Out)

	t := tracker.New(history.New(s.Initial),
		tracker.WithName(opts.Name),
		tracker.WithLogger(opts.Logger),
		tracker.WithHooks(opts.Hooks),
	)
	for i, cmd := range cmds {
		h, err := t.Dispatch(cmd)
		status := "ok"
		if err != nil {
			status = err.Error()
		}
		if cmd.Kind.TakesValue() {
			fmt.Fprintf(opts.Out, "%3d. %s %q: %s\n", i+1, cmd.Kind, cmd.Value, status)
		} else {
			fmt.Fprintf(opts.Out, "%3d. %s: %s\n", i+1, cmd.Kind, status)
		}
		opts.Logger.Debug("Step played", "step", i+1, "past", h.PastLen(), "future", h.FutureLen())
	}

	final := t.State()
	fmt.Fprintln(opts.Out, tui.Timeline(output, final))

	if opts.Report {
		render, err := tui.NewRenderer(opts.Style)
		if err != nil {
			return final, fmt.Errorf("failed to create renderer: %w", err)
		}
		out, err := render(tui.Report(opts.Name, final))
		if err != nil {
			return final, fmt.Errorf("failed to render report: %w", err)
		}
		fmt.Fprint(opts.Out, out)
	}
	return final, nil
}
