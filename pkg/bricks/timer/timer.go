package timer

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Timer starts countdowns that share one abort signal. The zero Timer is not
// usable; call New.
type Timer struct {
	log *zap.Logger

	mu    sync.Mutex
	abort chan struct{}
}

func New(opts ...Option) *Timer {
	t := &Timer{
		log:   zap.NewNop(),
		abort: make(chan struct{}),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Start begins a countdown of d. The returned token completes after d, or as
// soon as Abort or Close is called. A non-positive d completes at once.
func (t *Timer) Start(d time.Duration) *Token {
	tok := &Token{
		id:   uuid.New(),
		done: make(chan struct{}),
	}

	t.mu.Lock()
	abort := t.abort
	t.mu.Unlock()

	t.log.Debug("timer started", zap.Stringer("token", tok.id), zap.Duration("duration", d))

	if d <= 0 {
		close(tok.done)
		return tok
	}

	go func() {
		defer close(tok.done)

		countdown := time.NewTimer(d)
		defer countdown.Stop()

		select {
		case <-countdown.C:
			t.log.Debug("timer expired", zap.Stringer("token", tok.id))
		case <-abort:
			tok.aborted.Store(true)
			t.log.Debug("timer aborted", zap.Stringer("token", tok.id))
		}
	}()

	return tok
}

// Abort completes every outstanding token. Tokens started afterwards are not
// affected.
func (t *Timer) Abort() {
	t.mu.Lock()
	defer t.mu.Unlock()

	close(t.abort)
	t.abort = make(chan struct{})
	t.log.Debug("timer abort requested")
}

// Close aborts every outstanding token.
func (t *Timer) Close() error {
	t.Abort()
	return nil
}

// Token is the completion token of one countdown.
type Token struct {
	id      uuid.UUID
	done    chan struct{}
	aborted atomic.Bool
}

func (tok *Token) ID() uuid.UUID {
	return tok.id
}

// Done is closed when the countdown expires or is aborted.
func (tok *Token) Done() <-chan struct{} {
	return tok.done
}

// Ready reports whether the token has completed, without blocking.
func (tok *Token) Ready() bool {
	select {
	case <-tok.done:
		return true
	default:
		return false
	}
}

// Wait blocks until the token completes or ctx is done.
func (tok *Token) Wait(ctx context.Context) error {
	select {
	case <-tok.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Aborted reports whether the token completed because of Abort or Close.
// It is only meaningful once Done is closed.
func (tok *Token) Aborted() bool {
	return tok.aborted.Load()
}
