package syncx

import "sync"

// RWLock owns a value of type T and allows any number of concurrent readers
// or a single writer. The zero RWLock holds the zero T and is ready to use.
//
// An RWLock must not be copied after first use.
type RWLock[T any] struct {
	mu   sync.RWMutex
	data T
}

func NewRWLock[T any](data T) *RWLock[T] {
	return &RWLock[T]{data: data}
}

// Read blocks until a shared lock is acquired. It waits while a writer holds
// the lock.
func (l *RWLock[T]) Read() *ReadGuard[T] {
	l.mu.RLock()
	return newReadGuard(&l.data, l.mu.RUnlock)
}

// Write blocks until the exclusive lock is acquired. It waits while any
// reader or writer holds the lock.
func (l *RWLock[T]) Write() *WriteGuard[T] {
	l.mu.Lock()
	return newWriteGuard(&l.data, l.mu.Unlock)
}

// View calls fn with a copy of the value under a shared lock.
func (l *RWLock[T]) View(fn func(T)) {
	g := l.Read()
	defer g.Unlock()
	fn(g.Get())
}

// With calls fn with the value under the exclusive lock.
func (l *RWLock[T]) With(fn func(*T)) {
	g := l.Write()
	defer g.Unlock()
	fn(g.Get())
}

// WithErr calls fn with the value under the exclusive lock and returns its
// error.
func (l *RWLock[T]) WithErr(fn func(*T) error) error {
	g := l.Write()
	defer g.Unlock()
	return fn(g.Get())
}

// Move returns a new RWLock holding l's value, taken under l's exclusive
// lock. l is left with the zero T.
func (l *RWLock[T]) Move() *RWLock[T] {
	return &RWLock[T]{data: l.take()}
}

// MoveFrom replaces l's value with src's, leaving src with the zero T. Like
// Mutex.MoveFrom it takes and stores in two critical sections, so the move is
// not atomic as a whole.
func (l *RWLock[T]) MoveFrom(src *RWLock[T]) {
	if l == src {
		return
	}
	v := src.take()

	g := l.Write()
	defer g.Unlock()
	g.Set(v)
}

func (l *RWLock[T]) take() T {
	g := l.Write()
	defer g.Unlock()

	var zero T
	v := *g.Get()
	g.Set(zero)
	return v
}
