package cmd

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/iksnae/braindrain/internal"
	"github.com/iksnae/braindrain/internal/export"
	"github.com/spf13/cobra"
)

var (
	inspectFormat string
)

var (
	inspectLabelStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("243")).
				Width(22)

	inspectHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("212")).
				Padding(0, 1).
				MarginBottom(1)
)

// inspectCmd represents the inspect command
var inspectCmd = &cobra.Command{
	Use:   "inspect <session-id>",
	Short: "Show every field of one session's snapshot",
	Long: `Read <store>/<session-id>.json and print all of its fields together with how
it would be classified right now.

Examples:
  braindrain inspect 3f2a9c1e-...              # Text output
  braindrain inspect 3f2a9c1e-... --format json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := loadRuntime(internal.Overrides{})
		if err != nil {
			return err
		}

		snap, err := internal.NewStore(env.config.StoreDir).Load(args[0])
		if err != nil {
			return fmt.Errorf("failed to read session %s: %w", args[0], err)
		}

		now := time.Now()
		state := internal.Classify(snap, now, env.config.WarningThreshold, env.config.DangerThreshold)
		status := &internal.Status{
			Workspace: snap.WorkingDirectory,
			Snapshot:  snap,
			State:     state,
			Indicator: internal.RenderIndicator(state),
			CheckedAt: now,
		}

		switch inspectFormat {
		case "text", "":
			displaySnapshotDetail(cmd.OutOrStdout(), status)
			return nil
		case "json", "yaml":
			exporter, err := export.NewExporter(inspectFormat)
			if err != nil {
				return err
			}
			return exporter.Export(status, cmd.OutOrStdout())
		default:
			return fmt.Errorf("unsupported format: %s (supported: text, json, yaml)", inspectFormat)
		}
	},
}

func displaySnapshotDetail(out io.Writer, status *internal.Status) {
	snap := status.Snapshot
	row := func(label, value string) {
		_, _ = fmt.Fprintf(out, "%s%s\n", inspectLabelStyle.Render(label), value)
	}

	_, _ = fmt.Fprintln(out, inspectHeaderStyle.Render("Session "+snap.SessionID))
	row("Indicator", internal.FormatIndicator(status.Indicator, false))
	row("Freshness", string(status.State.Freshness))
	row("Severity", string(status.State.Band))
	row("Working directory", snap.WorkingDirectory)
	row("Model", snap.Model)
	row("Used", fmt.Sprintf("%.1f%%", snap.UsedPercentage))
	row("Remaining", fmt.Sprintf("%.1f%%", snap.RemainingPercentage))
	row("Input tokens", humanize.Comma(snap.TotalInputTokens))
	row("Output tokens", humanize.Comma(snap.TotalOutputTokens))
	row("Context window", humanize.Comma(snap.ContextWindowSize))
	row("Updated", fmt.Sprintf("%s (%s)",
		snap.GetTimestamp().Local().Format("2006-01-02 15:04:05"),
		humanize.RelTime(snap.GetTimestamp(), status.CheckedAt, "ago", "from now")))
}

func init() {
	rootCmd.AddCommand(inspectCmd)
	inspectCmd.Flags().StringVarP(&inspectFormat, "format", "f", "text", "Output format (text, json, yaml)")
}
