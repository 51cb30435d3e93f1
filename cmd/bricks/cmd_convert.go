package main

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/ib-77/bricks/pkg/bricks/charconv"
	"github.com/ib-77/bricks/pkg/bricks/result"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	numberType string
	maxLen     int
)

// convertCmd parses numbers strictly and prints their canonical form
var convertCmd = &cobra.Command{
	Use:   "convert [values...]",
	Short: "Parse numbers and print them in canonical form",
	Long: `Parses every argument as a base 10 number of the chosen type and prints
it back in canonical form. Leading '+', surrounding spaces and trailing
characters are rejected.

Example:
  bricks convert --type uint8 7 255 256`,
	Args: cobra.MinimumNArgs(1),
	RunE: runConvert,
}

type converter func(s string, opts ...charconv.Option) result.Result[string, error]

var converters = map[string]converter{
	"int":     canonical[int],
	"int8":    canonical[int8],
	"int16":   canonical[int16],
	"int32":   canonical[int32],
	"int64":   canonical[int64],
	"uint":    canonical[uint],
	"uint8":   canonical[uint8],
	"uint16":  canonical[uint16],
	"uint32":  canonical[uint32],
	"uint64":  canonical[uint64],
	"float32": canonical[float32],
	"float64": canonical[float64],
}

func supportedTypes() string {
	return strings.Join(slices.Sorted(maps.Keys(converters)), ", ")
}

func canonical[N charconv.Number](s string, opts ...charconv.Option) result.Result[string, error] {
	return result.AndThen(charconv.FromString[N](s), func(v N) result.Result[string, error] {
		return charconv.ToString(v, opts...)
	})
}

func runConvert(cmd *cobra.Command, args []string) error {
	conv, ok := converters[numberType]
	if !ok {
		return fmt.Errorf("unsupported type %q (want one of %s)", numberType, supportedTypes())
	}

	var opts []charconv.Option
	if maxLen > 0 {
		opts = append(opts, charconv.WithBufferSize(maxLen))
	}

	failed := 0
	for _, arg := range args {
		out := conv(arg, opts...)
		line := result.Match(out,
			func(s string) string { return s },
			func(err error) string {
				failed++
				logger.Debug("conversion failed", zap.String("input", arg), zap.Error(err))
				return "error: " + err.Error()
			})
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", arg, line)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d values failed to convert", failed, len(args))
	}
	return nil
}
