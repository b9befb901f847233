package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
)

// execRoot runs rootCmd with args and returns what cobra wrote to its own
// output writer. The commands print their results to os.Stdout, which
// callers capture with captureStdout.
func execRoot(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Execute(%v) returned unexpected error: %v", args, err)
	}
	return out.String()
}

func TestRunCmd_EvalExpression(t *testing.T) {
	out := captureStdout(t, func() {
		execRoot(t, "run", "-e", "1 + 2 * 3")
	})
	if strings.TrimSpace(out) != "7" {
		t.Errorf("run -e \"1 + 2 * 3\" printed %q, want \"7\"", out)
	}
}

func TestRunCmd_WithVars(t *testing.T) {
	out := captureStdout(t, func() {
		execRoot(t, "run", "-e", "x + y", "--var", "x=3", "--var", "y=4")
	})
	if strings.TrimSpace(out) != "7" {
		t.Errorf("run with --var flags printed %q, want \"7\"", out)
	}
}

func TestVarsCmd_Snapshot(t *testing.T) {
	out := captureStdout(t, func() {
		execRoot(t, "vars", "-e", "x + 1")
	})
	snaps.MatchSnapshot(t, out)
}

func TestRunCmd_StepLimitExceeded(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"run", "-e", "while(true){n=n+1;}; n", "--var", "n=0", "--step-limit", "10"})
	if err := rootCmd.Execute(); err == nil {
		t.Fatal("Execute() expected a step-limit error, got nil")
	}
}
