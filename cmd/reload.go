package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

var reloadCmd = &cobra.Command{
	Use:   "reload",
	Short: "Reload configuration",
	Long: `Ask the running daemon to reload its config file (SIGHUP).

Log settings, feature toggles, the notification sink and the species catalog take
effect immediately. Ingest, event bus and metrics settings need a restart.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runReload(cmd.Context(), newPIDClient(pidFile), cmd.OutOrStdout())
	},
}

// runReload 提取的业务逻辑，方便测试
func runReload(ctx context.Context, client ControlClient, out io.Writer) error {
	if err := client.Reload(ctx); err != nil {
		return fmt.Errorf("failed to reload: %w", err)
	}
	fmt.Fprintln(out, "✓ Configuration reload requested")
	return nil
}
