package result

import "hash/maphash"

// Map transforms the value of r with fn. An error passes through unchanged.
func Map[T, E, U any](r Result[T, E], fn func(T) U) Result[U, E] {
	if !r.isValue {
		return Err[U](r.err)
	}
	return Ok[U, E](fn(r.value))
}

// MapError transforms the error of r with fn. A value passes through unchanged.
func MapError[T, E, F any](r Result[T, E], fn func(E) F) Result[T, F] {
	if r.isValue {
		return Ok[T, F](r.value)
	}
	return Err[T](fn(r.err))
}

// MapOr returns fn applied to the value, or def if r is an error.
func MapOr[T, E, U any](r Result[T, E], def U, fn func(T) U) U {
	if !r.isValue {
		return def
	}
	return fn(r.value)
}

// MapOrElse returns fn applied to the value, or defFn applied to the error.
func MapOrElse[T, E, U any](r Result[T, E], defFn func(E) U, fn func(T) U) U {
	if !r.isValue {
		return defFn(r.err)
	}
	return fn(r.value)
}

// AndInstead returns other if r is a value, otherwise r's error.
func AndInstead[T, E, U any](r Result[T, E], other Result[U, E]) Result[U, E] {
	if !r.isValue {
		return Err[U](r.err)
	}
	return other
}

// AndThen calls fn with the value of r. fn is never called when r is an
// error; the error is returned instead.
func AndThen[T, E, U any](r Result[T, E], fn func(T) Result[U, E]) Result[U, E] {
	if !r.isValue {
		return Err[U](r.err)
	}
	return fn(r.value)
}

// OrInstead returns other if r is an error, otherwise r's value.
func OrInstead[T, E, F any](r Result[T, E], other Result[T, F]) Result[T, F] {
	if r.isValue {
		return Ok[T, F](r.value)
	}
	return other
}

// OrElse calls fn with the error of r. fn is never called when r is a value.
func OrElse[T, E, F any](r Result[T, E], fn func(E) Result[T, F]) Result[T, F] {
	if r.isValue {
		return Ok[T, F](r.value)
	}
	return fn(r.err)
}

// Inspect calls fn with the value, if any, and returns r.
func Inspect[T, E any](r Result[T, E], fn func(T)) Result[T, E] {
	if r.isValue {
		fn(r.value)
	}
	return r
}

// InspectError calls fn with the error, if any, and returns r.
func InspectError[T, E any](r Result[T, E], fn func(E)) Result[T, E] {
	if !r.isValue {
		fn(r.err)
	}
	return r
}

// Match reduces r to a plain value.
func Match[T, E, U any](r Result[T, E], onValue func(T) U, onError func(E) U) U {
	if r.isValue {
		return onValue(r.value)
	}
	return onError(r.err)
}

// Equal reports whether a and b hold the same variant with equal payloads.
func Equal[T, E comparable](a, b Result[T, E]) bool {
	return EqualFunc(a, b,
		func(x, y T) bool { return x == y },
		func(x, y E) bool { return x == y })
}

// EqualFunc is Equal for payloads that are not comparable.
func EqualFunc[T, E any](a, b Result[T, E], eqValue func(T, T) bool, eqError func(E, E) bool) bool {
	if a.isValue != b.isValue {
		return false
	}
	if a.isValue {
		return eqValue(a.value, b.value)
	}
	return eqError(a.err, b.err)
}

// Hash returns a digest of the variant and its active payload. Results that
// are Equal hash the same under the same seed.
func Hash[T, E comparable](seed maphash.Seed, r Result[T, E]) uint64 {
	var h maphash.Hash
	h.SetSeed(seed)
	if r.isValue {
		_ = h.WriteByte(1)
		maphash.WriteComparable(&h, r.value)
	} else {
		_ = h.WriteByte(0)
		maphash.WriteComparable(&h, r.err)
	}
	return h.Sum64()
}
