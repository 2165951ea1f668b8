package history

import (
	"fmt"
	"strings"
)

// Kind names one of the five history transitions.
type Kind string

const (
	KindSet     Kind = "set"
	KindReplace Kind = "replace"
	KindReset   Kind = "reset"
	KindUndo    Kind = "undo"
	KindRedo    Kind = "redo"
)

// Kinds lists every valid Kind in a stable order.
func Kinds() []Kind {
	return []Kind{KindSet, KindReplace, KindReset, KindUndo, KindRedo}
}

// ParseKind converts a case-insensitive name into a Kind.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	if !k.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownCommand, s)
	}
	return k, nil
}

// Valid reports whether k is one of the known kinds.
func (k Kind) Valid() bool {
	switch k {
	case KindSet, KindReplace, KindReset, KindUndo, KindRedo:
		return true
	}
	return false
}

// TakesValue reports whether commands of this kind carry a value.
func (k Kind) TakesValue() bool {
	return k == KindSet || k == KindReplace || k == KindReset
}

func (k Kind) String() string {
	return string(k)
}

// Command is a transition expressed as data.
// Value is ignored for KindUndo and KindRedo.
type Command[T any] struct {
	Kind  Kind
	Value T
}

// SetCommand builds a KindSet command.
func SetCommand[T any](v T) Command[T] {
	return Command[T]{Kind: KindSet, Value: v}
}

// ReplaceCommand builds a KindReplace command.
func ReplaceCommand[T any](v T) Command[T] {
	return Command[T]{Kind: KindReplace, Value: v}
}

// ResetCommand builds a KindReset command.
func ResetCommand[T any](v T) Command[T] {
	return Command[T]{Kind: KindReset, Value: v}
}

// UndoCommand builds a KindUndo command.
func UndoCommand[T any]() Command[T] {
	return Command[T]{Kind: KindUndo}
}

// RedoCommand builds a KindRedo command.
func RedoCommand[T any]() Command[T] {
	return Command[T]{Kind: KindRedo}
}
