package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ib-77/bricks/pkg/bricks/syncx"
	"github.com/ib-77/bricks/pkg/bricks/timer"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var (
	waitAfter  time.Duration
	abortAfter time.Duration
	waitCount  int
)

// waitCmd runs a group of countdowns that can be aborted together
var waitCmd = &cobra.Command{
	Use:   "wait",
	Short: "Run abortable countdowns",
	Long: `Starts --count countdowns of --after each and reports whether every one
expired or was aborted. All countdowns are aborted together after
--abort-after, or on SIGINT/SIGTERM.

Example:
  bricks wait --after 5s --abort-after 1s -n 3`,
	Args: cobra.NoArgs,
	RunE: runWait,
}

type waitSummary struct {
	expired int
	aborted int
}

func runWait(cmd *cobra.Command, args []string) error {
	if waitCount < 1 {
		return fmt.Errorf("--count must be at least 1, got %d", waitCount)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	tm := timer.New(timer.WithLogger(logger))
	defer tm.Close()

	stopAbortOnSignal := context.AfterFunc(ctx, func() {
		logger.Info("received shutdown signal, aborting countdowns")
		tm.Abort()
	})
	defer stopAbortOnSignal()

	if abortAfter > 0 {
		deadline := time.AfterFunc(abortAfter, tm.Abort)
		defer deadline.Stop()
	}

	tally := syncx.NewMutex(waitSummary{})
	out := cmd.OutOrStdout()

	var eg errgroup.Group
	for range waitCount {
		tok := tm.Start(waitAfter)
		eg.Go(func() error {
			<-tok.Done()

			tally.With(func(s *waitSummary) {
				state := "expired"
				if tok.Aborted() {
					state = "aborted"
					s.aborted++
				} else {
					s.expired++
				}
				fmt.Fprintf(out, "%s\t%s\n", tok.ID(), state)
			})
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}

	tally.View(func(s waitSummary) {
		logger.Debug("countdowns finished", zap.Int("expired", s.expired), zap.Int("aborted", s.aborted))
		fmt.Fprintf(out, "expired=%d aborted=%d\n", s.expired, s.aborted)
	})
	return nil
}
