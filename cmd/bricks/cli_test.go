package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newTestCmd() (*cobra.Command, *bytes.Buffer) {
	var out bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&out)
	return cmd, &out
}

func TestConvertCmd(t *testing.T) {
	logger = zap.NewNop()
	numberType, maxLen = "uint8", 0
	defer func() { numberType, maxLen = "int", 0 }()

	cmd, out := newTestCmd()
	err := runConvert(cmd, []string{"7", "0255", "256", "+1"})
	if err == nil || !strings.Contains(err.Error(), "2 of 4") {
		t.Fatalf("expected 2 of 4 failures, got: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d: %q", len(lines), out.String())
	}
	if lines[0] != "7\t7" || lines[1] != "0255\t255" {
		t.Errorf("unexpected canonical output: %q", lines[:2])
	}
	if !strings.Contains(lines[2], "result out of range") {
		t.Errorf("expected out of range for 256, got %q", lines[2])
	}
	if !strings.Contains(lines[3], "invalid argument") {
		t.Errorf("expected invalid argument for +1, got %q", lines[3])
	}
}

func TestConvertCmd_Float(t *testing.T) {
	logger = zap.NewNop()
	numberType, maxLen = "float64", 0
	defer func() { numberType, maxLen = "int", 0 }()

	cmd, out := newTestCmd()
	if err := runConvert(cmd, []string{"1.50", "1e3"}); err != nil {
		t.Fatalf("runConvert failed: %v", err)
	}
	if got := out.String(); got != "1.50\t1.5\n1e3\t1000\n" {
		t.Errorf("unexpected output: %q", got)
	}
}

func TestConvertCmd_MaxLen(t *testing.T) {
	logger = zap.NewNop()
	numberType, maxLen = "int", 2
	defer func() { numberType, maxLen = "int", 0 }()

	cmd, out := newTestCmd()
	if err := runConvert(cmd, []string{"123"}); err == nil {
		t.Fatal("expected failure for a value longer than --max-len")
	}
	if !strings.Contains(out.String(), "value too large") {
		t.Errorf("unexpected output: %q", out.String())
	}
}

func TestConvertCmd_UnknownType(t *testing.T) {
	logger = zap.NewNop()
	numberType = "complex128"
	defer func() { numberType = "int" }()

	cmd, _ := newTestCmd()
	if err := runConvert(cmd, []string{"1"}); err == nil || !strings.Contains(err.Error(), "unsupported type") {
		t.Fatalf("expected unsupported type error, got: %v", err)
	}
}

func TestWaitCmd_Expired(t *testing.T) {
	logger = zap.NewNop()
	waitAfter, abortAfter, waitCount = 5*time.Millisecond, 0, 3
	defer func() { waitAfter, abortAfter, waitCount = time.Second, 0, 1 }()

	cmd, out := newTestCmd()
	if err := runWait(cmd, nil); err != nil {
		t.Fatalf("runWait failed: %v", err)
	}
	if !strings.HasSuffix(out.String(), "expired=3 aborted=0\n") {
		t.Errorf("unexpected output: %q", out.String())
	}
}

func TestWaitCmd_Aborted(t *testing.T) {
	logger = zap.NewNop()
	waitAfter, abortAfter, waitCount = time.Hour, 10*time.Millisecond, 2
	defer func() { waitAfter, abortAfter, waitCount = time.Second, 0, 1 }()

	cmd, out := newTestCmd()

	start := time.Now()
	if err := runWait(cmd, nil); err != nil {
		t.Fatalf("runWait failed: %v", err)
	}
	if time.Since(start) > 5*time.Second {
		t.Errorf("abort took too long: %s", time.Since(start))
	}
	if !strings.HasSuffix(out.String(), "expired=0 aborted=2\n") {
		t.Errorf("unexpected output: %q", out.String())
	}
	if strings.Count(out.String(), "\taborted\n") != 2 {
		t.Errorf("expected two aborted tokens, got: %q", out.String())
	}
}

func TestWaitCmd_InvalidCount(t *testing.T) {
	logger = zap.NewNop()
	waitCount = 0
	defer func() { waitCount = 1 }()

	cmd, _ := newTestCmd()
	if err := runWait(cmd, nil); err == nil {
		t.Fatal("expected error for --count 0")
	}
}
