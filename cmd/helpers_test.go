package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/iksnae/braindrain/testutil"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// resetFlags restores every flag in the tree to its default between executions
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

// executeCommand runs rootCmd with args and returns everything written to its output
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return out.String(), err
}

// isolatedHome points HOME at a fresh directory so nothing touches the real ~/.claude
func isolatedHome(t *testing.T) string {
	t.Helper()
	home := testutil.CreateTempDir(t)
	t.Setenv("HOME", home)
	return home
}

// scenarioStore writes the two-session scenario relative to the current time:
// s1 under /proj updated 1100s ago at 50%, s2 under /proj/sub updated 100s ago at 90%.
func scenarioStore(t *testing.T) string {
	t.Helper()
	now := float64(time.Now().Unix())
	return testutil.CreateStoreFixture(t,
		testutil.SnapshotFixture("s1", "/proj", now-1100, 50),
		testutil.SnapshotFixture("s2", "/proj/sub", now-100, 90),
	)
}

// missingConfig returns a config path that does not exist, so defaults apply
func missingConfig(t *testing.T) string {
	t.Helper()
	return filepath.Join(testutil.CreateTempDir(t), "braindrain.yaml")
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(testutil.CreateTempDir(t), "braindrain.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return path
}
