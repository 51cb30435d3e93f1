package timer

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

const (
	instantWait = 50 * time.Millisecond
	shortWait   = time.Second
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func requireReady(t *testing.T, tok *Token, within time.Duration) {
	t.Helper()
	select {
	case <-tok.Done():
	case <-time.After(within):
		t.Fatalf("token %s not ready after %s", tok.ID(), within)
	}
}

func TestStart_ZeroDurationIsReady(t *testing.T) {
	t.Parallel()

	tm := New()
	defer tm.Close()

	tok := tm.Start(0)
	assert.True(t, tok.Ready())
	assert.False(t, tok.Aborted())
}

func TestStart_WithDuration(t *testing.T) {
	t.Parallel()

	tm := New()
	defer tm.Close()

	start := time.Now()
	tok := tm.Start(5 * time.Millisecond)
	requireReady(t, tok, shortWait)

	assert.GreaterOrEqual(t, time.Since(start), 5*time.Millisecond)
	assert.False(t, tok.Aborted())
}

func TestAbort(t *testing.T) {
	t.Parallel()

	tm := New()
	defer tm.Close()

	tok := tm.Start(time.Hour)
	assert.False(t, tok.Ready())

	tm.Abort()
	requireReady(t, tok, instantWait)
	assert.True(t, tok.Aborted())
}

func TestAbort_CompletesAllOutstanding(t *testing.T) {
	t.Parallel()

	tm := New()
	defer tm.Close()

	toks := []*Token{tm.Start(time.Hour), tm.Start(time.Hour), tm.Start(time.Hour)}
	tm.Abort()

	for _, tok := range toks {
		requireReady(t, tok, instantWait)
		assert.True(t, tok.Aborted())
	}
}

func TestAbort_DoesNotAffectLaterTokens(t *testing.T) {
	t.Parallel()

	tm := New()
	defer tm.Close()

	tm.Abort()
	tok := tm.Start(time.Hour)

	select {
	case <-tok.Done():
		t.Fatal("token started after Abort should not be completed")
	case <-time.After(instantWait):
	}

	tm.Abort()
	requireReady(t, tok, instantWait)
}

func TestClose_AbortsOutstanding(t *testing.T) {
	t.Parallel()

	tm := New()
	tok := tm.Start(time.Hour)

	require.NoError(t, tm.Close())
	requireReady(t, tok, instantWait)
	assert.True(t, tok.Aborted())
}

func TestTokenIDsAreUnique(t *testing.T) {
	t.Parallel()

	tm := New()
	defer tm.Close()

	assert.NotEqual(t, tm.Start(0).ID(), tm.Start(0).ID())
}

func TestWait(t *testing.T) {
	t.Parallel()

	tm := New()
	defer tm.Close()

	ctx, cancel := context.WithTimeout(context.Background(), instantWait)
	defer cancel()

	tok := tm.Start(time.Hour)
	assert.ErrorIs(t, tok.Wait(ctx), context.DeadlineExceeded)

	tm.Abort()
	assert.NoError(t, tok.Wait(context.Background()))
}

func TestWithLogger(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.DebugLevel)
	tm := New(WithLogger(zap.New(core)))

	tok := tm.Start(time.Hour)
	require.NoError(t, tm.Close())
	requireReady(t, tok, instantWait)

	started := logs.FilterMessage("timer started").All()
	require.Len(t, started, 1)
	assert.Equal(t, tok.ID().String(), started[0].ContextMap()["token"])

	assert.Equal(t, 1, logs.FilterMessage("timer abort requested").Len())
	assert.Equal(t, 1, logs.FilterMessage("timer aborted").Len())
}

func TestWithLogger_NilKeepsDefault(t *testing.T) {
	t.Parallel()

	tm := New(WithLogger(nil))
	defer tm.Close()

	assert.NotNil(t, tm.log)
	assert.True(t, tm.Start(0).Ready())
}
