package syncx

import (
	"errors"
	"sync/atomic"
)

// ErrGuardReleased is the panic value raised when a guard is used after
// Unlock or after Move.
var ErrGuardReleased = errors.New("syncx: guard used after release")

// lease is the lock held by one guard. release runs the unlock function at
// most once.
type lease struct {
	unlock   func()
	released atomic.Bool
}

func newLease(unlock func()) *lease {
	return &lease{unlock: unlock}
}

func (l *lease) release() {
	if l == nil {
		return
	}
	if l.released.CompareAndSwap(false, true) {
		l.unlock()
	}
}

// detach gives up the lease without unlocking and returns the unlock
// function for a new owner.
func (l *lease) detach() func() {
	if l == nil || !l.released.CompareAndSwap(false, true) {
		panic(ErrGuardReleased)
	}
	return l.unlock
}

func (l *lease) check() {
	if l == nil || l.released.Load() {
		panic(ErrGuardReleased)
	}
}

// ReadGuard grants read-only access to a locked value.
type ReadGuard[T any] struct {
	data  *T
	lease *lease
}

func newReadGuard[T any](data *T, unlock func()) *ReadGuard[T] {
	return &ReadGuard[T]{data: data, lease: newLease(unlock)}
}

// Get returns a copy of the protected value. Reference types inside T still
// point to the protected data and must not be mutated through the copy.
func (g *ReadGuard[T]) Get() T {
	g.lease.check()
	return *g.data
}

// Unlock releases the lock. Calls after the first are no-ops.
func (g *ReadGuard[T]) Unlock() {
	g.lease.release()
}

// Released reports whether g no longer holds the lock.
func (g *ReadGuard[T]) Released() bool {
	return g.lease == nil || g.lease.released.Load()
}

// Move transfers the lock to a new guard. g becomes empty: its Unlock is a
// no-op and any other use panics.
func (g *ReadGuard[T]) Move() *ReadGuard[T] {
	return newReadGuard(g.data, g.lease.detach())
}

// WriteGuard grants read-write access to a locked value.
type WriteGuard[T any] struct {
	data  *T
	lease *lease
}

func newWriteGuard[T any](data *T, unlock func()) *WriteGuard[T] {
	return &WriteGuard[T]{data: data, lease: newLease(unlock)}
}

// Get returns a pointer to the protected value. The pointer must not be
// retained after Unlock.
func (g *WriteGuard[T]) Get() *T {
	g.lease.check()
	return g.data
}

func (g *WriteGuard[T]) Set(v T) {
	g.lease.check()
	*g.data = v
}

func (g *WriteGuard[T]) Update(fn func(*T)) {
	g.lease.check()
	fn(g.data)
}

// Unlock releases the lock. Calls after the first are no-ops.
func (g *WriteGuard[T]) Unlock() {
	g.lease.release()
}

// Released reports whether g no longer holds the lock.
func (g *WriteGuard[T]) Released() bool {
	return g.lease == nil || g.lease.released.Load()
}

// Move transfers the lock to a new guard. g becomes empty: its Unlock is a
// no-op and any other use panics.
func (g *WriteGuard[T]) Move() *WriteGuard[T] {
	return newWriteGuard(g.data, g.lease.detach())
}
