package protocol

import (
	"math"

	"google.golang.org/protobuf/encoding/protowire"

	"firestige.xyz/encounter/internal/core"
)

// Encode produces the wire form of rec for rec.Kind. Nil Pokemon or Probability records are
// left out, which lets callers build payloads the decoder rejects as incomplete.
func Encode(rec *EncounterRecord) ([]byte, error) {
	var b []byte
	switch rec.Kind {
	case core.RequestKindEncounter:
		var wild []byte
		if rec.EncounterID != 0 {
			wild = protowire.AppendTag(wild, fieldWildPokemonEncounterID, protowire.Fixed64Type)
			wild = protowire.AppendFixed64(wild, rec.EncounterID)
		}
		if rec.SpawnPointID != "" {
			wild = protowire.AppendTag(wild, fieldWildPokemonSpawnPointID, protowire.BytesType)
			wild = protowire.AppendString(wild, rec.SpawnPointID)
		}
		if rec.Pokemon != nil {
			wild = protowire.AppendTag(wild, fieldWildPokemonPokemonData, protowire.BytesType)
			wild = protowire.AppendBytes(wild, EncodePokemonData(rec.Pokemon))
		}
		b = protowire.AppendTag(b, fieldWildEncounterWildPokemon, protowire.BytesType)
		b = protowire.AppendBytes(b, wild)
		b = appendInt32(b, fieldWildEncounterStatus, rec.Status)
		if rec.Probability != nil {
			b = protowire.AppendTag(b, fieldWildEncounterProbability, protowire.BytesType)
			b = protowire.AppendBytes(b, EncodeCaptureProbability(rec.Probability))
		}
	case core.RequestKindDiskEncounter, core.RequestKindIncenseEncounter:
		b = appendInt32(b, fieldNestedResult, rec.Status)
		if rec.Pokemon != nil {
			b = protowire.AppendTag(b, fieldNestedPokemonData, protowire.BytesType)
			b = protowire.AppendBytes(b, EncodePokemonData(rec.Pokemon))
		}
		if rec.Probability != nil {
			b = protowire.AppendTag(b, fieldNestedProbability, protowire.BytesType)
			b = protowire.AppendBytes(b, EncodeCaptureProbability(rec.Probability))
		}
	default:
		return nil, &DecodeError{Kind: rec.Kind, Reason: core.ErrUnknownRequestKind}
	}
	return b, nil
}

// EncodePokemonData serializes p, omitting zero values.
func EncodePokemonData(p *PokemonData) []byte {
	var b []byte
	if p.ID != 0 {
		b = protowire.AppendTag(b, fieldPokemonID, protowire.Fixed64Type)
		b = protowire.AppendFixed64(b, p.ID)
	}
	b = appendInt32(b, fieldPokemonPokemonID, p.PokemonID)
	b = appendInt32(b, fieldPokemonCP, p.CP)
	b = appendInt32(b, fieldPokemonStamina, p.Stamina)
	b = appendInt32(b, fieldPokemonStaminaMax, p.StaminaMax)
	b = appendInt32(b, fieldPokemonMove1, p.Move1)
	b = appendInt32(b, fieldPokemonMove2, p.Move2)
	b = appendFloat32(b, fieldPokemonHeightM, p.HeightM)
	b = appendFloat32(b, fieldPokemonWeightKg, p.WeightKg)
	b = appendInt32(b, fieldPokemonIndividualAttack, p.IndividualAttack)
	b = appendInt32(b, fieldPokemonIndividualDefense, p.IndividualDefense)
	b = appendInt32(b, fieldPokemonIndividualStamina, p.IndividualStamina)
	b = appendFloat32(b, fieldPokemonCPMultiplier, p.CPMultiplier)
	b = appendFloat32(b, fieldPokemonAdditionalCPMultiplier, p.AdditionalCPMultiplier)
	if p.Display != (PokemonDisplay{}) {
		var d []byte
		d = appendInt32(d, fieldDisplayCostume, p.Display.Costume)
		d = appendInt32(d, fieldDisplayGender, p.Display.Gender)
		if p.Display.Shiny {
			d = protowire.AppendTag(d, fieldDisplayShiny, protowire.VarintType)
			d = protowire.AppendVarint(d, protowire.EncodeBool(true))
		}
		d = appendInt32(d, fieldDisplayForm, p.Display.Form)
		b = protowire.AppendTag(b, fieldPokemonDisplay, protowire.BytesType)
		b = protowire.AppendBytes(b, d)
	}
	return b
}

// EncodeCaptureProbability serializes p using packed repeated fields.
func EncodeCaptureProbability(p *CaptureProbability) []byte {
	var b []byte
	if len(p.BallTypes) > 0 {
		var packed []byte
		for _, t := range p.BallTypes {
			packed = protowire.AppendVarint(packed, uint64(int64(t)))
		}
		b = protowire.AppendTag(b, fieldProbabilityBallType, protowire.BytesType)
		b = protowire.AppendBytes(b, packed)
	}
	if len(p.Probabilities) > 0 {
		var packed []byte
		for _, v := range p.Probabilities {
			packed = protowire.AppendFixed32(packed, math.Float32bits(v))
		}
		b = protowire.AppendTag(b, fieldProbabilityProbability, protowire.BytesType)
		b = protowire.AppendBytes(b, packed)
	}
	if p.ReticleDifficultyScale != 0 {
		b = protowire.AppendTag(b, fieldProbabilityReticle, protowire.Fixed64Type)
		b = protowire.AppendFixed64(b, math.Float64bits(p.ReticleDifficultyScale))
	}
	return b
}

func appendInt32(b []byte, num protowire.Number, v int32) []byte {
	if v == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, uint64(int64(v)))
}

func appendFloat32(b []byte, num protowire.Number, v float32) []byte {
	if v == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.Fixed32Type)
	return protowire.AppendFixed32(b, math.Float32bits(v))
}
