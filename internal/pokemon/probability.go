package pokemon

import "firestige.xyz/encounter/internal/protocol"

// Probability holds the capture chance per ball type as a fraction in [0, 1].
type Probability struct {
	Pokeball  float64
	Greatball float64
	Ultraball float64
}

// ProbabilityFactory resolves raw probability records. Resolution is total.
type ProbabilityFactory struct{}

// NewProbabilityFactory returns a ProbabilityFactory.
func NewProbabilityFactory() *ProbabilityFactory {
	return &ProbabilityFactory{}
}

// Resolve pairs ball types with probabilities by index. Unpaired or unknown entries are ignored,
// and a nil record yields zero probabilities.
func (f *ProbabilityFactory) Resolve(raw *protocol.CaptureProbability) Probability {
	var p Probability
	if raw == nil {
		return p
	}
	for i, ball := range raw.BallTypes {
		if i >= len(raw.Probabilities) {
			break
		}
		v := float64(raw.Probabilities[i])
		switch ball {
		case protocol.ItemPokeBall:
			p.Pokeball = v
		case protocol.ItemGreatBall:
			p.Greatball = v
		case protocol.ItemUltraBall:
			p.Ultraball = v
		}
	}
	return p
}
