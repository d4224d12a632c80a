package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"firestige.xyz/encounter/internal/daemon"
)

// startCmd runs the daemon in foreground
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Run the encounter daemon in foreground",
	Long: `Run the encounter daemon process in foreground.

The daemon will:
  1. Load global configuration from config file
  2. Initialize logging and metrics
  3. Load the species catalog and build the notification sink
  4. Subscribe the encounter feature to the event bus
  5. Start the ingest socket for the interception layer
  6. Handle signals for graceful shutdown (SIGTERM, SIGINT) and reload (SIGHUP)

Examples:
  encounter start                            # Start with /etc/encounter/config.yml
  encounter start -c config.yml              # Start with config.yml
  encounter start -c config.yml -p /tmp/e.pid`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStart(cmd.OutOrStdout())
	},
}

func runStart(out io.Writer) error {
	fmt.Fprintln(out, "Starting encounter daemon...")
	fmt.Fprintf(out, "Config: %s\n", configFile)
	fmt.Fprintf(out, "PID file: %s\n", pidFile)

	// Create daemon instance
	d, err := daemon.New(configFile, pidFile)
	if err != nil {
		return fmt.Errorf("failed to create daemon: %w", err)
	}

	// Start all components
	if err := d.Start(); err != nil {
		d.Stop()
		return fmt.Errorf("failed to start daemon: %w", err)
	}

	// Run main loop (blocks until shutdown)
	return d.Run()
}
