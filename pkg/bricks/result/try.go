package result

// FromTryOr calls f and wraps its return value. If f panics, the panic is
// recovered and fallback is returned as the error.
func FromTryOr[T, E any](f func() T, fallback E) Result[T, E] {
	return FromTryOrElse(f, func() E { return fallback })
}

// FromTryOrDefault is FromTryOr with the zero E as fallback.
func FromTryOrDefault[T, E any](f func() T) Result[T, E] {
	var zero E
	return FromTryOr(f, zero)
}

// FromTryOrElse calls f and wraps its return value. If f panics, the error is
// produced by onPanic.
func FromTryOrElse[T, E any](f func() T, onPanic func() E) (res Result[T, E]) {
	defer func() {
		if rec := recover(); rec != nil {
			res = Err[T](onPanic())
		}
	}()
	return Ok[T, E](f())
}

// FromTry calls f and wraps its return value. A panic is recovered into a
// *Panic error that keeps the recovered value for inspection or Repanic.
func FromTry[T any](f func() T) (res Result[T, *Panic]) {
	defer func() {
		if rec := recover(); rec != nil {
			res = Err[T](newPanic(rec))
		}
	}()
	return Ok[T, *Panic](f())
}

// FromPair converts the (T, error) convention into a Result.
func FromPair[T any](v T, err error) Result[T, error] {
	if err != nil {
		return Err[T](err)
	}
	return Ok[T, error](v)
}

// Try calls f and converts its (T, error) return into a Result.
func Try[T any](f func() (T, error)) Result[T, error] {
	return FromPair(f())
}
