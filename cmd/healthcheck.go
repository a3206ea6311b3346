package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/iksnae/braindrain/internal"
	"github.com/spf13/cobra"
)

var (
	healthcheckDetails bool
)

var (
	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39"))

	sectionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("62")).
			Bold(true).
			Underline(true)
)

// healthcheckCmd represents the healthcheck command
var healthcheckCmd = &cobra.Command{
	Use:   "healthcheck",
	Short: "Check that snapshots are being written and can be matched",
	Long: `Check the health of braindrain by verifying:
  • Bridge script installation
  • Claude Code statusLine configuration
  • Snapshot store availability and contents
  • A session matching the current workspace`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		line := func(a ...interface{}) { _, _ = fmt.Fprintln(out, a...) }
		detail := func(format string, a ...interface{}) {
			if healthcheckDetails {
				_, _ = fmt.Fprintf(out, "   "+format+"\n", a...)
			}
		}

		line(sectionStyle.Render("🔍 BrainDrain Health Check"))
		line()

		env, err := loadRuntime(internal.Overrides{})
		if err != nil {
			line(errorStyle.Render("❌ Failed to load configuration:"), err)
			return err
		}
		problems := 0

		// Step 1: bridge script
		line(infoStyle.Render("Step 1: Checking bridge script..."))
		if env.paths.BridgeInstalled() {
			line(successStyle.Render("✅ Bridge script installed"))
		} else {
			line(warningStyle.Render("⚠️  Bridge script not found (run `braindrain install`)"))
			problems++
		}
		detail("Script: %s", env.paths.BridgeScript)
		line()

		// Step 2: settings.json
		line(infoStyle.Render("Step 2: Checking Claude Code statusLine..."))
		command, err := internal.StatusLineCommand(env.paths.SettingsFile)
		switch {
		case err != nil:
			line(warningStyle.Render("⚠️  Could not read settings:"), err)
			problems++
		case command == env.paths.BridgeScript:
			line(successStyle.Render("✅ statusLine points at the bridge"))
		case command == "":
			line(warningStyle.Render("⚠️  No statusLine command configured"))
			problems++
		default:
			line(warningStyle.Render("⚠️  statusLine points elsewhere"))
			detail("Command: %s", command)
			problems++
		}
		detail("Settings: %s", env.paths.SettingsFile)
		line()

		// Step 3: store
		line(infoStyle.Render("Step 3: Reading snapshot store..."))
		store := internal.NewStore(env.config.StoreDir)
		detail("Store: %s", store.Dir())
		if !store.Exists() {
			line(warningStyle.Render("⚠️  Store directory does not exist yet"))
			detail("It is created by the bridge on Claude Code's first statusLine update")
			problems++
		} else {
			snapshots, skipped, err := store.LoadAll()
			if err != nil {
				line(errorStyle.Render("❌ Failed to read store:"), err)
				return fmt.Errorf("health check failed: %w", err)
			}
			line(successStyle.Render(fmt.Sprintf("✅ Found %d valid snapshot(s)", len(snapshots))))
			if skipped > 0 {
				line(warningStyle.Render(fmt.Sprintf("⚠️  %d unreadable or invalid snapshot(s) skipped", skipped)))
			}
			for i, snap := range snapshots {
				if i >= 5 {
					detail("... and %d more", len(snapshots)-5)
					break
				}
				detail("[%d] %s %s", i+1, snap.SessionID, snap.WorkingDirectory)
			}
		}
		line()

		// Step 4: matching session
		line(infoStyle.Render("Step 4: Matching the current workspace..."))
		poller := internal.NewPoller(env.config, env.workspace, nil)
		status, err := poller.Poll()
		if err != nil {
			line(errorStyle.Render("❌ Poll failed:"), err)
			return fmt.Errorf("health check failed: %w", err)
		}
		detail("Workspace: %s", status.Workspace)
		switch status.State.Freshness {
		case internal.FreshnessLive:
			line(successStyle.Render(fmt.Sprintf("✅ Live session %s at %d%%", status.Snapshot.SessionID, *status.State.Percentage)))
		case internal.FreshnessStale:
			line(warningStyle.Render(fmt.Sprintf("⚠️  Session %s is stale (%s)", status.Snapshot.SessionID, status.Indicator.Tooltip)))
		default:
			line(warningStyle.Render("⚠️  No session matches this workspace"))
		}
		line()

		// Summary
		line(sectionStyle.Render("📊 Summary"))
		line()
		if problems == 0 {
			line(successStyle.Render("✅ Health check passed!"))
		} else {
			line(warningStyle.Render(fmt.Sprintf("⚠️  %d issue(s) found", problems)))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(healthcheckCmd)
	healthcheckCmd.Flags().BoolVarP(&healthcheckDetails, "details", "d", false, "Show detailed diagnostic information")
}
