package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/iksnae/braindrain/internal"
	"github.com/spf13/cobra"
)

var (
	watchFlags   thresholdFlags
	watchTooltip bool
)

// watchCmd keeps a live indicator on the terminal
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Continuously display context usage for the current workspace",
	Long: `Poll the snapshot store on a fixed interval and redraw the indicator.

Edits to the config file are picked up while running: a changed poll interval
replaces the running schedule. Press Ctrl+C to stop.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := loadRuntime(watchFlags.overrides(cmd))
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		out := cmd.OutOrStdout()
		renderer := internal.NewTerminalRenderer(out, watchTooltip)
		watcher := internal.NewConfigWatcher(env.configFile, env.paths, env.overrides, env.config)
		watcher.FollowLogLevel(!verbose)
		poller := internal.NewPoller(env.config, env.workspace, renderer)

		if internal.IsTerminal(out) {
			internal.SetLogOutput(renderer.LogWriter())
			defer internal.SetLogOutput(os.Stderr)
		}

		internal.LogDebug("Watching %s every %s", env.config.StoreDir, env.config.Interval())
		if err := poller.Run(ctx, watcher.Watch(ctx)); err != nil && err != context.Canceled {
			return err
		}
		if internal.IsTerminal(out) {
			_, _ = fmt.Fprintln(out)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchFlags.register(watchCmd, true)
	watchCmd.Flags().BoolVar(&watchTooltip, "tooltip", true, "Show the tooltip text next to the indicator")
}
