package encounter

import (
	"firestige.xyz/encounter/internal/core"
	"firestige.xyz/encounter/internal/pokemon"
	"firestige.xyz/encounter/internal/protocol"
)

const percent = 100

// Assembler combines a decoded record with the resolved creature and probabilities.
type Assembler struct {
	creatures     CreatureResolver
	probabilities ProbabilityResolver
}

// NewAssembler creates an Assembler.
func NewAssembler(creatures CreatureResolver, probabilities ProbabilityResolver) *Assembler {
	return &Assembler{creatures: creatures, probabilities: probabilities}
}

// Assemble builds the notification for rec. It reports false when the creature cannot be
// resolved; no notification must be shown in that case.
func (a *Assembler) Assemble(kind core.RequestKind, rec *protocol.EncounterRecord) (core.Notification, bool) {
	if rec == nil {
		return core.Notification{}, false
	}

	p, ok := a.creatures.Resolve(rec.Pokemon)
	if !ok {
		return core.Notification{}, false
	}
	prob := a.probabilities.Resolve(rec.Probability)

	return core.Notification{
		Kind:   kind,
		Number: p.Number,
		Name:   p.Name,
		Gender: pokemon.FormatGender(p.Gender),

		IVPercent: p.IV() * percent,
		IVAttack:  p.IVAttack,
		IVDefense: p.IVDefense,
		IVStamina: p.IVStamina,

		CP:    p.CP,
		Level: p.Level,
		HP:    p.HP,

		BaseWeight: p.BaseWeight,
		Weight:     p.Weight,
		BaseHeight: p.BaseHeight,
		Height:     p.Height,

		MoveFast:   pokemon.FormatMove(p.MoveFast),
		MoveCharge: pokemon.FormatMove(p.MoveCharge),

		FleeRatePercent: p.FleeRate * percent,

		Pokeball:  prob.Pokeball,
		Greatball: prob.Greatball,
		Ultraball: prob.Ultraball,

		Type1: pokemon.FormatType(p.Type1),
		Type2: pokemon.FormatType(p.Type2),
		Class: pokemon.FormatRarity(p.Class),
	}, true
}
