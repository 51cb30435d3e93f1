package algorithm

import "time"

// ReadyAfter waits at most d for done to be closed and reports whether it
// was. A non-positive d only polls.
func ReadyAfter(done <-chan struct{}, d time.Duration) bool {
	if d <= 0 {
		select {
		case <-done:
			return true
		default:
			return false
		}
	}

	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-done:
		return true
	case <-t.C:
		// both may be ready at once
		select {
		case <-done:
			return true
		default:
			return false
		}
	}
}

// ReadyAt waits until deadline for done to be closed.
func ReadyAt(done <-chan struct{}, deadline time.Time) bool {
	return ReadyAfter(done, time.Until(deadline))
}
