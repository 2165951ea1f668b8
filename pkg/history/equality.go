package history

import "reflect"

// Equal reports whether two values should be treated as the same present.
// It drives the no-op short-circuit of Set and Replace.
type Equal[T any] func(a, b T) bool

// Comparable uses the == operator. Pointers compare by identity.
func Comparable[T comparable]() Equal[T] {
	return func(a, b T) bool { return a == b }
}

// DeepEqual compares values structurally with reflect.DeepEqual.
func DeepEqual[T any]() Equal[T] {
	return func(a, b T) bool { return reflect.DeepEqual(a, b) }
}

// Never treats every value as new, so Set and Replace always record a transition.
func Never[T any]() Equal[T] {
	return func(a, b T) bool { return false }
}
