package vec

import "cmp"

// Equal reports whether a and b hold the same live elements in order.
// Capacity and dead slot contents are ignored. A nil vector compares
// as empty.
func Equal[T comparable](a, b *Vector[T]) bool {
	if a.Len() != b.Len() {
		return false
	}
	bi := b.Items()
	for i, item := range a.Items() {
		if item != bi[i] {
			return false
		}
	}
	return true
}

// EqualFunc is Equal with a caller-supplied element equality.
func EqualFunc[T1, T2 any](a *Vector[T1], b *Vector[T2], eq func(T1, T2) bool) bool {
	if a.Len() != b.Len() {
		return false
	}
	bi := b.Items()
	for i, item := range a.Items() {
		if !eq(item, bi[i]) {
			return false
		}
	}
	return true
}

// Compare orders a and b lexicographically over their live elements,
// returning -1, 0, or +1. A prefix orders before its extension.
func Compare[T cmp.Ordered](a, b *Vector[T]) int {
	bi := b.Items()
	for i, item := range a.Items() {
		if i >= len(bi) {
			return 1
		}
		if c := cmp.Compare(item, bi[i]); c != 0 {
			return c
		}
	}
	if a.Len() < b.Len() {
		return -1
	}
	return 0
}

// CompareFunc is Compare with a caller-supplied element comparison.
func CompareFunc[T1, T2 any](a *Vector[T1], b *Vector[T2], compare func(T1, T2) int) int {
	bi := b.Items()
	for i, item := range a.Items() {
		if i >= len(bi) {
			return 1
		}
		if c := compare(item, bi[i]); c != 0 {
			return c
		}
	}
	if a.Len() < b.Len() {
		return -1
	}
	return 0
}

// Less reports whether a orders before b.
func Less[T cmp.Ordered](a, b *Vector[T]) bool {
	return Compare(a, b) < 0
}

// LessOrEqual reports whether a orders before or equal to b.
func LessOrEqual[T cmp.Ordered](a, b *Vector[T]) bool {
	return Compare(a, b) <= 0
}

// Greater reports whether a orders after b.
func Greater[T cmp.Ordered](a, b *Vector[T]) bool {
	return Compare(a, b) > 0
}

// GreaterOrEqual reports whether a orders after or equal to b.
func GreaterOrEqual[T cmp.Ordered](a, b *Vector[T]) bool {
	return Compare(a, b) >= 0
}
