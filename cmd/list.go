package cmd

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/iksnae/braindrain/internal"
	"github.com/iksnae/braindrain/internal/export"
	"github.com/spf13/cobra"
)

var (
	listMatchingOnly bool
	listFormat       string
)

var (
	// Styles
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("62")).
			Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))

	idStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("240")).
		Italic(true)

	countStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	dateStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	workspaceStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("135")).
			Italic(true)
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List session snapshots in the store",
	Long: `List every valid snapshot in the store, newest first. Sessions whose
working directory is the workspace root or below it are marked with ●.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := loadRuntime(internal.Overrides{})
		if err != nil {
			return err
		}

		root, err := env.workspace.WorkspaceRoot()
		if err != nil {
			return fmt.Errorf("failed to resolve workspace: %w", err)
		}

		store := internal.NewStore(env.config.StoreDir)
		snapshots, skipped, err := store.LoadAll()
		if err != nil {
			return fmt.Errorf("failed to read store: %w", err)
		}

		if listMatchingOnly {
			snapshots = filterMatching(snapshots, root)
		}

		switch listFormat {
		case "jsonl":
			return export.WriteSnapshotsJSONL(snapshots, cmd.OutOrStdout())
		case "table", "":
			displaySnapshots(cmd.OutOrStdout(), snapshots, root, skipped, time.Now(), env.config)
			return nil
		default:
			return fmt.Errorf("unsupported format: %s (supported: table, jsonl)", listFormat)
		}
	},
}

func filterMatching(snapshots []*internal.Snapshot, root string) []*internal.Snapshot {
	matching := make([]*internal.Snapshot, 0, len(snapshots))
	for _, snap := range snapshots {
		if internal.MatchesWorkspace(snap.WorkingDirectory, root) {
			matching = append(matching, snap)
		}
	}
	return matching
}

func displaySnapshots(out io.Writer, snapshots []*internal.Snapshot, root string, skipped int, now time.Time, cfg internal.Config) {
	if len(snapshots) == 0 {
		_, _ = fmt.Fprintln(out, headerStyle.Render("📋 No sessions found"))
		if skipped > 0 {
			_, _ = fmt.Fprintln(out, idStyle.Render(fmt.Sprintf("%d unreadable snapshot file(s) skipped", skipped)))
		}
		return
	}

	_, _ = fmt.Fprintln(out, headerStyle.Render(fmt.Sprintf("📋 Found %d session(s)", len(snapshots))))
	_, _ = fmt.Fprintln(out)

	w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)

	_, _ = fmt.Fprintln(w, titleStyle.Render("ID")+"\t"+titleStyle.Render("Used")+"\t"+titleStyle.Render("Tokens")+"\t"+titleStyle.Render("Model")+"\t"+titleStyle.Render("Updated")+"\t"+titleStyle.Render("Directory")+"\t")
	_, _ = fmt.Fprintln(w, strings.Repeat("─", 100))

	for _, snap := range snapshots {
		state := internal.Classify(snap, now, cfg.WarningThreshold, cfg.DangerThreshold)
		used := internal.StyleFor(internal.BandColor(state.Band)).Render(fmt.Sprintf("%d%%", *state.Percentage))
		if state.Freshness == internal.FreshnessStale {
			used = dateStyle.Render(fmt.Sprintf("%d%% (stale)", *state.Percentage))
		}

		shortID := snap.SessionID
		if len(shortID) > 8 {
			shortID = shortID[:8]
		}

		dir := snap.WorkingDirectory
		if dir == "" {
			dir = "—"
		}
		if len(dir) > 40 {
			dir = "…" + dir[len(dir)-39:]
		}
		marker := "  "
		if internal.MatchesWorkspace(snap.WorkingDirectory, root) {
			marker = "● "
		}

		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t\n",
			idStyle.Render(shortID),
			used,
			countStyle.Render(humanize.Comma(snap.TotalTokens())),
			snap.Model,
			dateStyle.Render(humanize.RelTime(snap.GetTimestamp(), now, "ago", "from now")),
			workspaceStyle.Render(marker+dir),
		)
	}

	_ = w.Flush()
	_, _ = fmt.Fprintln(out)
	if skipped > 0 {
		_, _ = fmt.Fprintln(out, idStyle.Render(fmt.Sprintf("%d unreadable snapshot file(s) skipped", skipped)))
	}
	_, _ = fmt.Fprintln(out, idStyle.Render("💡 Tip: Use the full ID (e.g., ")+
		lipgloss.NewStyle().Foreground(lipgloss.Color("62")).Render(snapshots[0].SessionID)+
		idStyle.Render(") with `braindrain inspect <id>`"))
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listMatchingOnly, "mine", false, "Only list sessions for the current workspace")
	listCmd.Flags().StringVarP(&listFormat, "format", "f", "table", "Output format (table, jsonl)")
}
