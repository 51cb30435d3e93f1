package result

import (
	"errors"
	"fmt"
	"runtime/debug"
)

// ErrBadAccess is matched by every *BadAccessError.
var ErrBadAccess = errors.New("bad result access")

const (
	msgUnwrap      = "called Unwrap on a result that is an error"
	msgUnwrapError = "called UnwrapError on a result that is a value"
)

// BadAccessError reports a read of the value of an error result, or of the
// error of a value result.
type BadAccessError struct {
	Msg string
}

func (e *BadAccessError) Error() string {
	return fmt.Sprintf("%s: %s", ErrBadAccess, e.Msg)
}

func (e *BadAccessError) Unwrap() error {
	return ErrBadAccess
}

// Panic is the error payload produced by FromTry. It keeps the recovered
// value so it can be inspected or raised again.
type Panic struct {
	Value any
	Stack []byte
}

func newPanic(v any) *Panic {
	return &Panic{Value: v, Stack: debug.Stack()}
}

func (p *Panic) Error() string {
	return fmt.Sprintf("recovered panic: %v", p.Value)
}

// Unwrap returns the recovered value when it is an error.
func (p *Panic) Unwrap() error {
	if err, ok := p.Value.(error); ok {
		return err
	}
	return nil
}

// Repanic raises the recovered value again.
func (p *Panic) Repanic() {
	panic(p.Value)
}
