package cmd

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
)

var stopTimeout time.Duration

// stopCmd represents the stop command
var stopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop the encounter daemon",
	Long: `Stop the encounter daemon gracefully.

This command sends SIGTERM to the daemon recorded in the PID file and waits for it
to release its subscriptions, drain the event bus and exit.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), stopTimeout)
		defer cancel()
		return runStop(ctx, newPIDClient(pidFile), cmd.OutOrStdout())
	},
}

func init() {
	stopCmd.Flags().DurationVarP(&stopTimeout, "timeout", "t", 10*time.Second,
		"how long to wait for the daemon to exit")
}

func runStop(ctx context.Context, client ControlClient, out io.Writer) error {
	if err := client.Stop(ctx); err != nil {
		return fmt.Errorf("failed to stop: %w", err)
	}
	fmt.Fprintln(out, "✓ Daemon stopped")
	return nil
}
