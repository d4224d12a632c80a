// Package cmd implements CLI commands using cobra framework.
package cmd

import (
	"github.com/spf13/cobra"
)

var (
	// Global flags
	configFile string
	pidFile    string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "encounter",
	Short: "Encounter - wild encounter notifications from intercepted game traffic",
	Long: `Encounter turns intercepted encounter responses into on-screen notifications.

It decodes the encounter payloads captured by the interception layer, resolves the
creature, its stats and capture probabilities, shows a notification and dismisses it
once the creature is caught or flees.

Features:
  - Wild, lure disk and incense encounters
  - Live feature toggles via config file reload
  - Console or structured log notification sinks
  - Local ingest over Unix Domain Socket
  - Prometheus metrics`,
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "/etc/encounter/config.yml",
		"config file path")
	rootCmd.PersistentFlags().StringVarP(&pidFile, "pidfile", "p", "/var/run/encounter.pid",
		"PID file path")

	// Add subcommands
	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(stopCmd)
	rootCmd.AddCommand(reloadCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(decodeCmd)
}
