package history

import "errors"

// Common errors reported by history owners. The transition functions themselves
// never fail; owners translate outcomes into these with OutcomeError.
var (
	ErrNothingToUndo  = errors.New("nothing to undo")
	ErrNothingToRedo  = errors.New("nothing to redo")
	ErrUnknownCommand = errors.New("unknown command")
)

// OutcomeError maps a non-applied outcome to the matching sentinel error.
// No-ops are not errors.
func OutcomeError(kind Kind, outcome Outcome) error {
	switch outcome {
	case OutcomeGuarded:
		if kind == KindRedo {
			return ErrNothingToRedo
		}
		return ErrNothingToUndo
	case OutcomeUnknown:
		return ErrUnknownCommand
	}
	return nil
}
