package cmd

import (
	"fmt"
	"os"

	"github.com/iksnae/braindrain/internal"
	"github.com/spf13/cobra"
)

var (
	verbose       bool
	configPath    string
	storeDir      string
	workspacePath string
	version       string = "dev"
	commit        string = "unknown"
	date          string = "unknown"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "braindrain",
	Short: "Show Claude Code context-window usage for the current workspace",
	Long: `braindrain reports how much of a Claude Code session's context window is used.

A small bridge script, registered as Claude Code's statusLine command, writes a
JSON snapshot per session to ~/.claude/braindrain/. braindrain picks the most
recent session whose working directory is the current workspace (or below it),
marks data older than five minutes as stale, and colors the percentage by the
configured warning and danger thresholds.

Quick Start:
  braindrain install                 # Install the bridge and patch settings.json
  braindrain status                  # Print usage for the current directory
  braindrain watch                   # Keep a live indicator on screen
  braindrain status --format tmux    # Segment for a tmux status line`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		internal.SetVerbose(verbose)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// runtimeEnv is what every polling command needs
type runtimeEnv struct {
	paths      internal.Paths
	configFile string
	config     internal.Config
	overrides  internal.Overrides
	workspace  internal.WorkspaceProvider
}

// loadRuntime resolves paths, config file, flag overrides, and the workspace provider
func loadRuntime(overrides internal.Overrides) (*runtimeEnv, error) {
	paths, err := internal.DetectPaths()
	if err != nil {
		return nil, fmt.Errorf("failed to detect paths: %w", err)
	}

	file := paths.ConfigFile
	if configPath != "" {
		file = internal.ExpandHome(configPath)
	}
	if storeDir != "" {
		overrides.StoreDir = &storeDir
	}

	cfg, err := internal.LoadConfig(file, paths)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	cfg = overrides.Apply(cfg)

	if cfg.LogLevel != "" && !verbose {
		if err := internal.ApplyLogLevel(cfg.LogLevel); err != nil {
			internal.LogWarn("Ignoring log_level: %v", err)
		}
	}

	workspace, err := internal.ResolveWorkspace(workspacePath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve workspace: %w", err)
	}

	return &runtimeEnv{
		paths:      paths,
		configFile: file,
		config:     cfg,
		overrides:  overrides,
		workspace:  workspace,
	}, nil
}

// thresholdFlags holds the per-command overrides for polling settings
type thresholdFlags struct {
	interval int
	warning  float64
	danger   float64
}

func (f *thresholdFlags) register(cmd *cobra.Command, withInterval bool) {
	if withInterval {
		cmd.Flags().IntVar(&f.interval, "interval", internal.DefaultPollInterval, "Poll interval in seconds")
	}
	cmd.Flags().Float64Var(&f.warning, "warning", internal.DefaultWarningThreshold, "Warning threshold percentage")
	cmd.Flags().Float64Var(&f.danger, "danger", internal.DefaultDangerThreshold, "Danger threshold percentage")
}

// overrides returns only the flags the user actually set
func (f *thresholdFlags) overrides(cmd *cobra.Command) internal.Overrides {
	var o internal.Overrides
	if cmd.Flags().Changed("interval") {
		interval := f.interval
		o.PollInterval = &interval
	}
	if cmd.Flags().Changed("warning") {
		warning := f.warning
		o.WarningThreshold = &warning
	}
	if cmd.Flags().Changed("danger") {
		danger := f.danger
		o.DangerThreshold = &danger
	}
	return o
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default ~/.claude/braindrain.yaml)")
	rootCmd.PersistentFlags().StringVar(&storeDir, "store", "", "Snapshot directory (default ~/.claude/braindrain)")
	rootCmd.PersistentFlags().StringVarP(&workspacePath, "workspace", "w", "", "Workspace root (default: current directory)")

	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)
}
