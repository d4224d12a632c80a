package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"firestige.xyz/encounter/internal/config"
	"firestige.xyz/encounter/internal/notify"
	"firestige.xyz/encounter/internal/pokemon"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a configuration file",
	Long: `Validate a configuration file without starting the daemon.

Besides the schema checks this builds the notification sink from its options and
loads the species file, so every error the daemon would refuse to start with is
reported here.

Examples:
  encounter validate -c config.yml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runValidate(configFile, cmd.OutOrStdout())
	},
}

func runValidate(path string, out io.Writer) error {
	cfg, err := config.Load(path)
	if err != nil {
		return fmt.Errorf("INVALID: %w", err)
	}

	if _, err := notify.New(cfg.Notify, io.Discard); err != nil {
		return fmt.Errorf("INVALID: %w", err)
	}

	catalog, err := pokemon.LoadCatalog(cfg.Pokemon.SpeciesFile)
	if err != nil {
		return fmt.Errorf("INVALID: %w", err)
	}

	fmt.Fprintf(out, "VALID: sink %q, %d species, notification=%t dismiss=%t\n",
		cfg.Notify.Sink,
		catalog.Len(),
		cfg.Feature.NotificationEnabled,
		cfg.Feature.DismissEnabled,
	)
	return nil
}
