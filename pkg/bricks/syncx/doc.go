// Package syncx provides lock wrappers that own the data they protect.
//
// A Mutex[T] or RWLock[T] keeps its value private; the only way to reach it is
// through a guard returned by Lock, Read or Write, or through the scoped
// helpers With, WithErr and View. A guard's existence is the evidence that the
// lock is held, and Unlock releases it exactly once:
//
//	g := m.Lock()
//	defer g.Unlock()
//	g.Get().Count++
//
// The scoped helpers release on every exit path, panics included:
//
//	err := m.WithErr(func(s *State) error {
//		return s.Apply(op)
//	})
//
// Locks are not reentrant. Calling Lock while the same goroutine already holds
// a guard of the same Mutex deadlocks, exactly like sync.Mutex.
//
// A ReadGuard, including the one returned by Mutex.LockReadOnly, hands out a
// copy of the value. Slices, maps and pointers inside that copy still refer to
// the protected data; mutating them through a read guard is a data race.
//
// Guards must not outlive their wrapper and must not be shared between
// goroutines without external synchronization.
package syncx
