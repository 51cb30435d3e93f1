// Package charconv converts numbers to and from their decimal string form
// without panicking, reporting failures as result.Result errors.
package charconv

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/ib-77/bricks/pkg/bricks/result"
)

var (
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrResultOutOfRange = errors.New("result out of range")
	ErrValueTooLarge    = errors.New("value too large")
)

type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

type Float interface {
	~float32 | ~float64
}

type Number interface {
	Integer | Float
}

// ConversionError describes a failed conversion of Input.
type ConversionError struct {
	Input string
	Err   error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("charconv: converting %q: %v", e.Input, e.Err)
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}

type options struct {
	bufferSize int
}

type Option func(*options)

// WithBufferSize limits the length of the string produced by ToString. A
// longer result fails with ErrValueTooLarge.
func WithBufferSize(n int) Option {
	return func(o *options) {
		o.bufferSize = n
	}
}

// ToString formats v in base 10. Integers default to a buffer of digits10+2
// characters, which always fits; floats use the shortest representation and
// are unlimited unless WithBufferSize is given.
func ToString[N Number](v N, opts ...Option) result.Result[string, error] {
	rv := reflect.ValueOf(v)

	o := options{bufferSize: defaultBufferSize(rv.Kind(), rv.Type().Bits())}
	for _, opt := range opts {
		opt(&o)
	}

	var s string
	switch {
	case isSigned(rv.Kind()):
		s = strconv.FormatInt(rv.Int(), 10)
	case isUnsigned(rv.Kind()):
		s = strconv.FormatUint(rv.Uint(), 10)
	default:
		s = strconv.FormatFloat(rv.Float(), 'g', -1, rv.Type().Bits())
	}

	if o.bufferSize > 0 && len(s) > o.bufferSize {
		return result.Err[string](error(&ConversionError{Input: s, Err: ErrValueTooLarge}))
	}
	return result.Ok[string, error](s)
}

// FromString parses s as a base 10 number of type N. The whole of s must be
// consumed; an empty string, a leading '+' or trailing characters fail with
// ErrInvalidArgument, as do underscores and hex floats. Values that do not fit
// N, including non-zero floats that underflow to zero, fail with
// ErrResultOutOfRange.
func FromString[N Number](s string) result.Result[N, error] {
	fail := func(err error) result.Result[N, error] {
		return result.Err[N](error(&ConversionError{Input: s, Err: err}))
	}

	if s == "" || s[0] == '+' {
		return fail(ErrInvalidArgument)
	}

	var out N
	rv := reflect.ValueOf(&out).Elem()
	bits := rv.Type().Bits()

	var err error
	switch {
	case isSigned(rv.Kind()):
		var n int64
		if n, err = strconv.ParseInt(s, 10, bits); err == nil {
			rv.SetInt(n)
		}
	case isUnsigned(rv.Kind()):
		var n uint64
		if n, err = strconv.ParseUint(s, 10, bits); err == nil {
			rv.SetUint(n)
		}
	default:
		if !isDecimalFloat(s) {
			return fail(ErrInvalidArgument)
		}
		var f float64
		if f, err = strconv.ParseFloat(s, bits); err == nil {
			if f == 0 && hasNonZeroMantissa(s) {
				return fail(ErrResultOutOfRange)
			}
			rv.SetFloat(f)
		}
	}

	switch {
	case err == nil:
		return result.Ok[N, error](out)
	case errors.Is(err, strconv.ErrRange):
		return fail(ErrResultOutOfRange)
	default:
		return fail(ErrInvalidArgument)
	}
}

// isDecimalFloat rejects the parts of the Go literal syntax that ParseFloat
// accepts beyond plain decimal notation: underscores and hex mantissas.
func isDecimalFloat(s string) bool {
	if strings.ContainsRune(s, '_') {
		return false
	}
	s = strings.TrimPrefix(s, "-")
	return !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X")
}

// hasNonZeroMantissa reports whether a digit before the exponent is not 0,
// which makes a parsed zero an underflow.
func hasNonZeroMantissa(s string) bool {
	for _, c := range s {
		switch {
		case c == 'e' || c == 'E':
			return false
		case c >= '1' && c <= '9':
			return true
		}
	}
	return false
}

func isSigned(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	}
	return false
}

func isUnsigned(k reflect.Kind) bool {
	switch k {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	}
	return false
}

// defaultBufferSize mirrors digits10 + 2: the decimal digits a type can
// always represent, plus one for the sign and one for the extra digit.
func defaultBufferSize(k reflect.Kind, bits int) int {
	switch {
	case isSigned(k):
		return signedDigits10[bits] + 2
	case isUnsigned(k):
		return unsignedDigits10[bits] + 2
	}
	return 0
}

var (
	signedDigits10   = map[int]int{8: 2, 16: 4, 32: 9, 64: 18}
	unsignedDigits10 = map[int]int{8: 2, 16: 4, 32: 9, 64: 19}
)
