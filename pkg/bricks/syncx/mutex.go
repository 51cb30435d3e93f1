package syncx

import "sync"

// Mutex owns a value of type T and hands out access to it only while its
// lock is held. The zero Mutex holds the zero T and is ready to use.
//
// A Mutex must not be copied after first use.
type Mutex[T any] struct {
	mu   sync.Mutex
	data T
}

func NewMutex[T any](data T) *Mutex[T] {
	return &Mutex[T]{data: data}
}

// Lock blocks until the lock is acquired and returns a read-write guard.
func (m *Mutex[T]) Lock() *WriteGuard[T] {
	m.mu.Lock()
	return newWriteGuard(&m.data, m.mu.Unlock)
}

// LockReadOnly acquires the same exclusive lock as Lock but returns a guard
// that only reads.
func (m *Mutex[T]) LockReadOnly() *ReadGuard[T] {
	m.mu.Lock()
	return newReadGuard(&m.data, m.mu.Unlock)
}

// With calls fn with the locked value.
func (m *Mutex[T]) With(fn func(*T)) {
	g := m.Lock()
	defer g.Unlock()
	fn(g.Get())
}

// WithErr calls fn with the locked value and returns its error.
func (m *Mutex[T]) WithErr(fn func(*T) error) error {
	g := m.Lock()
	defer g.Unlock()
	return fn(g.Get())
}

// View calls fn with a copy of the locked value.
func (m *Mutex[T]) View(fn func(T)) {
	g := m.LockReadOnly()
	defer g.Unlock()
	fn(g.Get())
}

// Move returns a new Mutex holding m's value. The value is taken under m's
// lock, leaving m with the zero T.
func (m *Mutex[T]) Move() *Mutex[T] {
	return &Mutex[T]{data: m.take()}
}

// MoveFrom replaces m's value with src's, leaving src with the zero T. The
// value is taken under src's lock and stored under m's; the two locks are
// never held together, so the move is not atomic as a whole: another
// goroutine may see src already emptied while m still holds its old value.
func (m *Mutex[T]) MoveFrom(src *Mutex[T]) {
	if m == src {
		return
	}
	v := src.take()

	g := m.Lock()
	defer g.Unlock()
	g.Set(v)
}

func (m *Mutex[T]) take() T {
	g := m.Lock()
	defer g.Unlock()

	var zero T
	v := *g.Get()
	g.Set(zero)
	return v
}
