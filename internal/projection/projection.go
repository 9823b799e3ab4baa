// Package projection merges stored profile fields with computed aggregates
// through explicit, ordered fallback chains. Each field is resolved
// independently: the first candidate that is meaningful wins.
package projection

// Candidate is one step in a fallback chain.
type Candidate[T any] struct {
	value      T
	meaningful bool
}

// Present is meaningful whenever ok is true, including a zero value. Use it for
// a computed aggregate that exists for the entity.
func Present[T any](v T, ok bool) Candidate[T] {
	return Candidate[T]{value: v, meaningful: ok}
}

// NonZero is meaningful only when v differs from its zero value. Use it where
// a computed 0 must yield to the next candidate.
func NonZero[T comparable](v T) Candidate[T] {
	var zero T
	return Candidate[T]{value: v, meaningful: v != zero}
}

// Fallback is always meaningful and normally ends a chain.
func Fallback[T any](v T) Candidate[T] {
	return Candidate[T]{value: v, meaningful: true}
}

// First returns the value of the first meaningful candidate, or the zero
// value when none is.
func First[T any](candidates ...Candidate[T]) T {
	for _, c := range candidates {
		if c.meaningful {
			return c.value
		}
	}
	var zero T
	return zero
}

// Lookup fetches key from an aggregate map as a Present candidate source.
func Lookup[K comparable, V any](m map[K]*V, key K) (*V, bool) {
	v, ok := m[key]
	return v, ok && v != nil
}
