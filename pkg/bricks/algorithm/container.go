// Package algorithm holds small helpers over slices, maps and completion
// channels.
package algorithm

import (
	"cmp"
	"maps"
	"slices"
)

// Keys returns the keys of m in unspecified order.
func Keys[M ~map[K]V, K comparable, V any](m M) []K {
	return slices.AppendSeq(make([]K, 0, len(m)), maps.Keys(m))
}

// Values returns the values of m in unspecified order.
func Values[M ~map[K]V, K comparable, V any](m M) []V {
	return slices.AppendSeq(make([]V, 0, len(m)), maps.Values(m))
}

// SortedKeys returns the keys of m in ascending order.
func SortedKeys[M ~map[K]V, K cmp.Ordered, V any](m M) []K {
	return slices.Sorted(maps.Keys(m))
}

// SortedValues returns the values of m ordered by their keys.
func SortedValues[M ~map[K]V, K cmp.Ordered, V any](m M) []V {
	out := make([]V, 0, len(m))
	for _, k := range SortedKeys(m) {
		out = append(out, m[k])
	}
	return out
}

func Contains[S ~[]V, V comparable](s S, v V) bool {
	return slices.Contains(s, v)
}

func ContainsKey[M ~map[K]V, K comparable, V any](m M, k K) bool {
	_, ok := m[k]
	return ok
}

func ContainsIf[S ~[]V, V any](s S, pred func(V) bool) bool {
	return slices.ContainsFunc(s, pred)
}

// IndexOf reports the position of the first v in s.
func IndexOf[S ~[]V, V comparable](s S, v V) (int, bool) {
	i := slices.Index(s, v)
	return i, i >= 0
}

func IndexOfIf[S ~[]V, V any](s S, pred func(V) bool) (int, bool) {
	i := slices.IndexFunc(s, pred)
	return i, i >= 0
}

// Find returns the first element of s equal to v.
func Find[S ~[]V, V comparable](s S, v V) (V, bool) {
	return FindIf(s, func(e V) bool { return e == v })
}

// FindKey returns the value stored under k.
func FindKey[M ~map[K]V, K comparable, V any](m M, k K) (V, bool) {
	v, ok := m[k]
	return v, ok
}

// FindIf returns the first element of s satisfying pred.
func FindIf[S ~[]V, V any](s S, pred func(V) bool) (V, bool) {
	if i := slices.IndexFunc(s, pred); i >= 0 {
		return s[i], true
	}
	var zero V
	return zero, false
}
