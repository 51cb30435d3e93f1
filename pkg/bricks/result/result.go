package result

import "fmt"

// Result holds either a value of type T or an error of type E.
//
// The inactive payload is always the zero value, so a Result of comparable
// types can be compared with == and used as a map key. The zero Result holds
// the zero error.
type Result[T, E any] struct {
	value   T
	err     E
	isValue bool
}

func Ok[T, E any](v T) Result[T, E] {
	return Result[T, E]{
		value:   v,
		isValue: true,
	}
}

func Err[T, E any](e E) Result[T, E] {
	return Result[T, E]{
		err:     e,
		isValue: false,
	}
}

// SetValue replaces the held variant with the value v.
func (r *Result[T, E]) SetValue(v T) {
	var zero E
	r.value, r.err, r.isValue = v, zero, true
}

// SetError replaces the held variant with the error e.
func (r *Result[T, E]) SetError(e E) {
	var zero T
	r.value, r.err, r.isValue = zero, e, false
}

func (r Result[T, E]) IsValue() bool {
	return r.isValue
}

func (r Result[T, E]) IsError() bool {
	return !r.isValue
}

// Expect returns the value. It panics with a *BadAccessError carrying msg if
// r is an error.
func (r Result[T, E]) Expect(msg string) T {
	if !r.isValue {
		panic(&BadAccessError{Msg: msg})
	}
	return r.value
}

func (r Result[T, E]) Unwrap() T {
	return r.Expect(msgUnwrap)
}

// ExpectError returns the error. It panics with a *BadAccessError carrying
// msg if r is a value.
func (r Result[T, E]) ExpectError(msg string) E {
	if r.isValue {
		panic(&BadAccessError{Msg: msg})
	}
	return r.err
}

func (r Result[T, E]) UnwrapError() E {
	return r.ExpectError(msgUnwrapError)
}

// Get returns the value, or a *BadAccessError if r is an error.
func (r Result[T, E]) Get() (T, error) {
	if !r.isValue {
		var zero T
		return zero, &BadAccessError{Msg: msgUnwrap}
	}
	return r.value, nil
}

// GetError returns the error, or a *BadAccessError if r is a value.
func (r Result[T, E]) GetError() (E, error) {
	if r.isValue {
		var zero E
		return zero, &BadAccessError{Msg: msgUnwrapError}
	}
	return r.err, nil
}

func (r Result[T, E]) UnwrapOr(def T) T {
	if !r.isValue {
		return def
	}
	return r.value
}

func (r Result[T, E]) UnwrapOrDefault() T {
	var zero T
	return r.UnwrapOr(zero)
}

// UnwrapOrElse returns the value, or fn applied to the error.
func (r Result[T, E]) UnwrapOrElse(fn func(E) T) T {
	if !r.isValue {
		return fn(r.err)
	}
	return r.value
}

func (r Result[T, E]) String() string {
	if r.isValue {
		return fmt.Sprintf("Ok(%v)", r.value)
	}
	return fmt.Sprintf("Err(%v)", r.err)
}
