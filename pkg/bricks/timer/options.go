package timer

import "go.uber.org/zap"

type Option func(*Timer)

// WithLogger sets the logger used for debug output. The default discards
// everything.
func WithLogger(logger *zap.Logger) Option {
	return func(t *Timer) {
		if logger != nil {
			t.log = logger
		}
	}
}
