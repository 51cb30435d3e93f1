// Package ranges adapts iter.Seq sequences. Every adapter is lazy and stops
// pulling from its inputs as soon as the consumer breaks out of the loop.
package ranges

import "iter"

// Enumerate pairs each element of seq with its zero-based position.
func Enumerate[V any](seq iter.Seq[V]) iter.Seq2[int, V] {
	return func(yield func(int, V) bool) {
		i := 0
		for v := range seq {
			if !yield(i, v) {
				return
			}
			i++
		}
	}
}

// Filter yields the elements of seq for which pred holds.
func Filter[V any](seq iter.Seq[V], pred func(V) bool) iter.Seq[V] {
	return func(yield func(V) bool) {
		for v := range seq {
			if pred(v) && !yield(v) {
				return
			}
		}
	}
}

// Reverse yields the elements of s from last to first.
func Reverse[Slice ~[]V, V any](s Slice) iter.Seq[V] {
	return func(yield func(V) bool) {
		for i := len(s) - 1; i >= 0; i-- {
			if !yield(s[i]) {
				return
			}
		}
	}
}

// Zip yields pairs taken from a and b in lockstep and stops with the shorter
// of the two.
func Zip[A, B any](a iter.Seq[A], b iter.Seq[B]) iter.Seq2[A, B] {
	return func(yield func(A, B) bool) {
		nextB, stop := iter.Pull(b)
		defer stop()

		for va := range a {
			vb, ok := nextB()
			if !ok || !yield(va, vb) {
				return
			}
		}
	}
}
