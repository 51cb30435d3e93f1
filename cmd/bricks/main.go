package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	verbose bool

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "bricks",
	Short: "Shell access to the bricks utilities",
	Long: `bricks exposes a few of the library's building blocks from the command line:

  convert  parse numbers strictly and print them in canonical form
  wait     run abortable countdowns and report how each one ended`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	convertCmd.Flags().StringVarP(&numberType, "type", "t", "int", "Number type: "+supportedTypes())
	convertCmd.Flags().IntVar(&maxLen, "max-len", 0, "Fail when the canonical form is longer than this (0 = type default)")

	waitCmd.Flags().DurationVar(&waitAfter, "after", time.Second, "Countdown duration")
	waitCmd.Flags().DurationVar(&abortAfter, "abort-after", 0, "Abort all countdowns after this long (0 = never)")
	waitCmd.Flags().IntVarP(&waitCount, "count", "n", 1, "Number of concurrent countdowns")

	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(waitCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
