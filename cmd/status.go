package cmd

import (
	"fmt"
	"time"

	"github.com/iksnae/braindrain/internal"
	"github.com/iksnae/braindrain/internal/export"
	"github.com/spf13/cobra"
)

var (
	statusFormat string
	statusFlags  thresholdFlags
)

// statusCmd runs a single poll cycle and prints the result
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Print context usage for the current workspace",
	Long: `Run one poll cycle: select the newest session for the workspace, classify it
as live or stale, and print the indicator.

Formats:
  text   Indicator plus session details (default)
  json   Full status as JSON
  yaml   Full status as YAML
  tmux   One status-line segment with tmux color markup

Failures never produce an error exit; the indicator is reported as hidden.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		exporter, err := export.NewExporter(statusFormat)
		if err != nil {
			return err
		}

		env, err := loadRuntime(statusFlags.overrides(cmd))
		if err != nil {
			return err
		}

		poller := internal.NewPoller(env.config, env.workspace, nil)
		status, err := poller.Poll()
		if err != nil {
			internal.LogDebug("Poll failed: %v", err)
			status = &internal.Status{
				State:     internal.DisplayState{Freshness: internal.FreshnessAbsent, Band: internal.BandNone},
				Indicator: internal.HiddenIndicator(),
				CheckedAt: time.Now(),
			}
		}

		if err := exporter.Export(status, cmd.OutOrStdout()); err != nil {
			return fmt.Errorf("failed to write status: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
	statusCmd.Flags().StringVarP(&statusFormat, "format", "f", "text", "Output format (text, json, yaml, tmux)")
	statusFlags.register(statusCmd, false)
}
