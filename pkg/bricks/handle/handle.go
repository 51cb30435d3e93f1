// Package handle provides Handle[T], an owning pointer to a foreign resource
// that is released by a caller-supplied deleter.
package handle

import (
	"errors"
	"sync"
)

// ErrNilDeleter is returned by New when no deleter is given.
var ErrNilDeleter = errors.New("handle: nil deleter")

// Deleter releases the resource behind p. It is never called with nil.
type Deleter[T any] func(p *T) error

// Handle owns a *T and runs its deleter exactly once, on Close or Reset.
// A Handle is safe for concurrent use.
type Handle[T any] struct {
	mu      sync.Mutex
	p       *T
	deleter Deleter[T]
}

func New[T any](p *T, deleter Deleter[T]) (*Handle[T], error) {
	if deleter == nil {
		return nil, ErrNilDeleter
	}
	return &Handle[T]{p: p, deleter: deleter}, nil
}

// Get returns the owned pointer without giving up ownership.
func (h *Handle[T]) Get() *T {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.p
}

func (h *Handle[T]) Valid() bool {
	return h.Get() != nil
}

// Release gives up ownership and returns the pointer. The deleter is not
// called.
func (h *Handle[T]) Release() *T {
	h.mu.Lock()
	defer h.mu.Unlock()

	p := h.p
	h.p = nil
	return p
}

// Reset deletes the owned resource, if any, and takes ownership of p.
func (h *Handle[T]) Reset(p *T) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	old := h.p
	h.p = p
	if old == nil || old == p {
		return nil
	}
	return h.deleter(old)
}

// Close deletes the owned resource. Later calls are no-ops.
func (h *Handle[T]) Close() error {
	return h.Reset(nil)
}
