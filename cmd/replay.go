package cmd

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"firestige.xyz/encounter/internal/core"
	"firestige.xyz/encounter/internal/ingest"
	"firestige.xyz/encounter/internal/protocol"
)

var (
	replayFile   string
	replaySocket string
)

var replayCmd = &cobra.Command{
	Use:   "replay",
	Short: "Send encounter fixtures to a running daemon",
	Long: `Encode the encounters and outcomes of a YAML fixture file and send them to the
daemon's ingest socket, in order.

Fixture file:
  frames:
    - message:
        kind: ENCOUNTER
        pokemon: {number: 143, cp: 1820, stamina: 201, iv: [15, 10, 5], cp_multiplier: 0.6121573}
        probability: {pokeball: 0.25, greatball: 0.375, ultraball: 0.5}
      delay: 2s
    - outcome: CATCH_FLEE
    - message: {kind: DISK_ENCOUNTER, payload: "<base64>"}

Examples:
  encounter replay -f fixtures.yaml
  encounter replay -f fixtures.yaml -s /tmp/encounter.sock`,
	RunE: func(cmd *cobra.Command, args []string) error {
		fixtures, err := loadFixtures(replayFile)
		if err != nil {
			return err
		}
		client := ingest.NewClient(replaySocket, 10*time.Second)
		return runReplay(cmd.Context(), client, fixtures, cmd.OutOrStdout())
	},
}

func init() {
	replayCmd.Flags().StringVarP(&replayFile, "file", "f", "",
		"fixture file to replay (required)")
	replayCmd.Flags().StringVarP(&replaySocket, "socket", "s", "/var/run/encounter.sock",
		"daemon ingest socket path")
	replayCmd.MarkFlagRequired("file")
}

// FrameSender delivers frames to the daemon. ingest.Client implements it.
type FrameSender interface {
	Send(ctx context.Context, frames ...ingest.Frame) error
}

type fixtureFile struct {
	Frames []fixture `yaml:"frames"`
}

// fixture is one replay step: either a message or an outcome, sent after Delay.
type fixture struct {
	Message *messageFixture `yaml:"message"`
	Outcome string          `yaml:"outcome"`
	Delay   time.Duration   `yaml:"delay"`
}

type messageFixture struct {
	Kind        string              `yaml:"kind"`
	Payload     string              `yaml:"payload"` // base64, sent as is
	Pokemon     *pokemonFixture     `yaml:"pokemon"`
	Probability *probabilityFixture `yaml:"probability"`
}

type pokemonFixture struct {
	Number       int32    `yaml:"number"`
	CP           int32    `yaml:"cp"`
	Stamina      int32    `yaml:"stamina"`
	Move1        int32    `yaml:"move1"`
	Move2        int32    `yaml:"move2"`
	Height       float32  `yaml:"height"`
	Weight       float32  `yaml:"weight"`
	IV           [3]int32 `yaml:"iv"`
	CPMultiplier float32  `yaml:"cp_multiplier"`
	Gender       int32    `yaml:"gender"`
	Shiny        bool     `yaml:"shiny"`
}

type probabilityFixture struct {
	PokeBall  float32 `yaml:"pokeball"`
	GreatBall float32 `yaml:"greatball"`
	UltraBall float32 `yaml:"ultraball"`
}

func loadFixtures(path string) ([]fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixtures %s: %w", path, err)
	}

	var file fixtureFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse fixtures %s: %w", path, err)
	}
	if len(file.Frames) == 0 {
		return nil, fmt.Errorf("fixtures %s: no frames", path)
	}
	return file.Frames, nil
}

// frame encodes f into the ingest wire frame.
func (f fixture) frame() (ingest.Frame, error) {
	switch {
	case f.Message != nil && f.Outcome != "":
		return ingest.Frame{}, fmt.Errorf("fixture has both message and outcome")
	case f.Outcome != "":
		status, err := core.ParseCatchStatus(f.Outcome)
		if err != nil {
			return ingest.Frame{}, err
		}
		return ingest.OutcomeFrame(core.CaptureOutcomeEvent{Status: status}), nil
	case f.Message != nil:
		return f.Message.frame()
	default:
		return ingest.Frame{}, fmt.Errorf("fixture has neither message nor outcome")
	}
}

func (m *messageFixture) frame() (ingest.Frame, error) {
	kind, err := core.ParseRequestKind(m.Kind)
	if err != nil {
		return ingest.Frame{}, err
	}

	if m.Payload != "" {
		payload, err := base64.StdEncoding.DecodeString(m.Payload)
		if err != nil {
			return ingest.Frame{}, fmt.Errorf("invalid payload: %w", err)
		}
		return ingest.MessageFrame(core.InterceptedMessage{Kind: kind, Payload: payload}), nil
	}

	rec := &protocol.EncounterRecord{Kind: kind}
	if p := m.Pokemon; p != nil {
		rec.Pokemon = &protocol.PokemonData{
			PokemonID:         p.Number,
			CP:                p.CP,
			Stamina:           p.Stamina,
			StaminaMax:        p.Stamina,
			Move1:             p.Move1,
			Move2:             p.Move2,
			HeightM:           p.Height,
			WeightKg:          p.Weight,
			IndividualAttack:  p.IV[0],
			IndividualDefense: p.IV[1],
			IndividualStamina: p.IV[2],
			CPMultiplier:      p.CPMultiplier,
			Display:           protocol.PokemonDisplay{Gender: p.Gender, Shiny: p.Shiny},
		}
	}
	if p := m.Probability; p != nil {
		rec.Probability = &protocol.CaptureProbability{
			BallTypes:     []int32{protocol.ItemPokeBall, protocol.ItemGreatBall, protocol.ItemUltraBall},
			Probabilities: []float32{p.PokeBall, p.GreatBall, p.UltraBall},
		}
	}

	payload, err := protocol.Encode(rec)
	if err != nil {
		return ingest.Frame{}, err
	}
	return ingest.MessageFrame(core.InterceptedMessage{Kind: kind, Payload: payload}), nil
}

func runReplay(ctx context.Context, sender FrameSender, fixtures []fixture, out io.Writer) error {
	frames := make([]ingest.Frame, len(fixtures))
	for i, f := range fixtures {
		frame, err := f.frame()
		if err != nil {
			return fmt.Errorf("fixture %d: %w", i, err)
		}
		frames[i] = frame
	}

	for i, f := range fixtures {
		if f.Delay > 0 {
			select {
			case <-time.After(f.Delay):
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		if err := sender.Send(ctx, frames[i]); err != nil {
			return fmt.Errorf("fixture %d: %w", i, err)
		}
		fmt.Fprintf(out, "sent %s\n", describe(frames[i]))
	}

	fmt.Fprintf(out, "✓ Replayed %d frame(s)\n", len(frames))
	return nil
}

func describe(f ingest.Frame) string {
	if f.Type == ingest.FrameOutcome {
		return "outcome " + f.Status
	}
	return fmt.Sprintf("message %s (%d bytes)", f.RequestKind, len(f.Payload))
}
