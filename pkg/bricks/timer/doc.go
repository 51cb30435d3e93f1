// Package timer provides a Timer whose countdowns can be aborted as a group.
//
// Start returns a Token that completes when its duration has passed, or
// immediately when the Timer is aborted or closed:
//
//	t := timer.New(timer.WithLogger(logger))
//	defer t.Close()
//
//	tok := t.Start(100 * time.Millisecond)
//	select {
//	case <-tok.Done():
//	case <-ctx.Done():
//	}
package timer
