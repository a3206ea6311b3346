package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/iksnae/braindrain/internal"
	"github.com/spf13/cobra"
)

// installCmd represents the install command
var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Install the context bridge and register it as Claude Code's statusLine",
	Long: `Write the bridge script to ~/.claude/scripts/context-bridge.sh and point the
statusLine command in ~/.claude/settings.json at it. Other settings are kept.
A default ~/.claude/braindrain.yaml is written if none exists.

Claude Code must be restarted before snapshots start to appear.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		paths, err := internal.GetPaths(storeDir)
		if err != nil {
			return fmt.Errorf("failed to detect paths: %w", err)
		}

		result, err := internal.InstallBridge(paths)
		if err != nil {
			return fmt.Errorf("failed to install bridge: %w", err)
		}

		switch result.Status {
		case internal.InstallUnchanged:
			internal.PrintSuccess(fmt.Sprintf("Bridge already configured (%s)", result.ScriptPath))
		case internal.InstallInstalled:
			internal.PrintSuccess(fmt.Sprintf("Bridge installed at %s", result.ScriptPath))
			internal.PrintInfo("Restart Claude Code to see context usage.")
		case internal.InstallUpdated:
			internal.PrintWarning(fmt.Sprintf("Updated statusLine command (was: %s)", result.PreviousCommand))
			internal.PrintInfo("Restart Claude Code to apply.")
		}

		if _, err := os.Stat(paths.ConfigFile); errors.Is(err, fs.ErrNotExist) {
			if err := internal.SaveConfig(paths.ConfigFile, internal.DefaultConfig(paths)); err != nil {
				return fmt.Errorf("failed to write default config: %w", err)
			}
			internal.PrintInfo(fmt.Sprintf("Wrote default config to %s", paths.ConfigFile))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(installCmd)
}
