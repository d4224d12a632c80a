package cmd

import (
	"encoding/base64"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"firestige.xyz/encounter/internal/core"
	"firestige.xyz/encounter/internal/encounter"
	"firestige.xyz/encounter/internal/notify"
	"firestige.xyz/encounter/internal/pokemon"
	"firestige.xyz/encounter/internal/protocol"
)

var (
	decodeKind    string
	decodeBase64  bool
	decodeSpecies string
)

var decodeCmd = &cobra.Command{
	Use:   "decode FILE",
	Short: "Decode one captured payload and print its notification",
	Long: `Decode one captured encounter response and print the notification the daemon
would show for it. FILE holds the raw response bytes, or base64 with --base64.

Examples:
  encounter decode --kind ENCOUNTER response.bin
  encounter decode --kind 145 --base64 response.b64`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read payload %s: %w", args[0], err)
		}
		if decodeBase64 {
			data, err = base64.StdEncoding.DecodeString(strings.TrimSpace(string(data)))
			if err != nil {
				return fmt.Errorf("invalid base64 payload: %w", err)
			}
		}
		return runDecode(decodeKind, data, decodeSpecies, cmd.OutOrStdout())
	},
}

func init() {
	decodeCmd.Flags().StringVarP(&decodeKind, "kind", "k", "ENCOUNTER",
		"request kind of the payload (name or number)")
	decodeCmd.Flags().BoolVar(&decodeBase64, "base64", false,
		"FILE is base64 encoded")
	decodeCmd.Flags().StringVar(&decodeSpecies, "species", "",
		"species overlay file")
}

func runDecode(kindName string, payload []byte, speciesFile string, out io.Writer) error {
	kind, err := core.ParseRequestKind(kindName)
	if err != nil {
		return err
	}

	rec, err := protocol.Decode(kind, payload)
	if err != nil {
		return fmt.Errorf("failed to decode %s payload: %w", kind, err)
	}

	catalog, err := pokemon.LoadCatalog(speciesFile)
	if err != nil {
		return err
	}

	assembler := encounter.NewAssembler(pokemon.NewFactory(catalog), pokemon.NewProbabilityFactory())
	n, ok := assembler.Assemble(kind, rec)
	if !ok {
		return fmt.Errorf("%s payload: %w", kind, core.ErrCreatureUnresolved)
	}

	notify.NewConsole(out, notify.ConsoleOptions{}).Show(n)
	return nil
}
