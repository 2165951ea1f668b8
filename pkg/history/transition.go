package history

// Outcome classifies what a transition did to the history.
type Outcome string

const (
	// OutcomeApplied means the history changed.
	OutcomeApplied Outcome = "applied"
	// OutcomeNoop means Set or Replace received a value equal to the present.
	OutcomeNoop Outcome = "noop"
	// OutcomeGuarded means Undo or Redo found nothing to move to.
	OutcomeGuarded Outcome = "guarded"
	// OutcomeUnknown means the command kind is not recognised.
	OutcomeUnknown Outcome = "unknown"
)

func (o Outcome) String() string {
	return string(o)
}

// Step is the transition function: it applies cmd to h and reports the outcome.
// It never fails; anything other than OutcomeApplied returns h unchanged.
func Step[T any](h History[T], cmd Command[T]) (History[T], Outcome) {
	switch cmd.Kind {
	case KindSet:
		if h.same(cmd.Value) {
			return h, OutcomeNoop
		}
		return h.Set(cmd.Value), OutcomeApplied
	case KindReplace:
		if h.same(cmd.Value) {
			return h, OutcomeNoop
		}
		return h.Replace(cmd.Value), OutcomeApplied
	case KindReset:
		return h.Reset(cmd.Value), OutcomeApplied
	case KindUndo:
		if !h.CanUndo() {
			return h, OutcomeGuarded
		}
		return h.Undo(), OutcomeApplied
	case KindRedo:
		if !h.CanRedo() {
			return h, OutcomeGuarded
		}
		return h.Redo(), OutcomeApplied
	default:
		return h, OutcomeUnknown
	}
}

// Apply is Step without the outcome.
func Apply[T any](h History[T], cmd Command[T]) History[T] {
	next, _ := Step(h, cmd)
	return next
}

// Replay folds cmds over h from left to right.
func Replay[T any](h History[T], cmds ...Command[T]) History[T] {
	for _, cmd := range cmds {
		h = Apply(h, cmd)
	}
	return h
}
