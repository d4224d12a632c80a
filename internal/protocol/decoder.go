package protocol

import (
	"errors"
	"fmt"

	"firestige.xyz/encounter/internal/core"
)

// DecodeError reports why a payload could not be turned into an EncounterRecord.
// It matches core.ErrMalformedPayload or core.ErrMissingField (or core.ErrUnknownRequestKind)
// under errors.Is, and also the underlying wire error when there is one.
type DecodeError struct {
	Kind   core.RequestKind
	Reason error
	Field  string
	Err    error
}

func (e *DecodeError) Error() string {
	msg := fmt.Sprintf("decode %s", e.Kind)
	if e.Field != "" {
		msg += " " + e.Field
	}
	msg += ": " + e.Reason.Error()
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *DecodeError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Reason}
	}
	return []error{e.Reason, e.Err}
}

func malformed(path string, err error) error {
	return &DecodeError{Reason: core.ErrMalformedPayload, Field: path, Err: err}
}

func missing(path string) error {
	return &DecodeError{Reason: core.ErrMissingField, Field: path}
}

// shape describes the outer wire layout of one encounter response.
type shape struct {
	name   string
	decode func(b []byte, rec *EncounterRecord) error
}

var shapes = map[core.RequestKind]shape{
	core.RequestKindEncounter:        {name: "EncounterResponse", decode: decodeWildEncounter},
	core.RequestKindDiskEncounter:    {name: "DiskEncounterResponse", decode: decodeNestedEncounter},
	core.RequestKindIncenseEncounter: {name: "IncenseEncounterResponse", decode: decodeNestedEncounter},
}

// Decode parses payload as the response shape that belongs to kind. The returned record always
// carries a creature record; a missing one is a DecodeError. Probability is nil when the response
// has none.
func Decode(kind core.RequestKind, payload []byte) (*EncounterRecord, error) {
	s, ok := shapes[kind]
	if !ok {
		return nil, &DecodeError{Kind: kind, Reason: core.ErrUnknownRequestKind}
	}

	rec := &EncounterRecord{Kind: kind}
	err := s.decode(payload, rec)
	if err == nil && rec.Pokemon == nil {
		err = missing(s.name + ".pokemon_data")
	}
	if err != nil {
		var de *DecodeError
		if !errors.As(err, &de) {
			de = &DecodeError{Reason: core.ErrMalformedPayload, Field: s.name, Err: err}
		}
		de.Kind = kind
		return nil, de
	}
	return rec, nil
}

// SupportedKinds lists the request kinds Decode understands.
func SupportedKinds() []core.RequestKind {
	return []core.RequestKind{
		core.RequestKindEncounter,
		core.RequestKindDiskEncounter,
		core.RequestKindIncenseEncounter,
	}
}

func decodeWildEncounter(b []byte, rec *EncounterRecord) error {
	var sawWild bool
	err := eachField(b, func(f field) error {
		var err error
		switch f.num {
		case fieldWildEncounterWildPokemon:
			var wb []byte
			if wb, err = f.bytes(); err != nil {
				return malformed("EncounterResponse.wild_pokemon", err)
			}
			sawWild = true
			return decodeWildPokemon(wb, rec)
		case fieldWildEncounterStatus:
			if rec.Status, err = f.int32(); err != nil {
				return malformed("EncounterResponse.status", err)
			}
		case fieldWildEncounterProbability:
			if rec.Probability, err = decodeProbabilityField(f, "EncounterResponse.capture_probability"); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	if !sawWild {
		return missing("EncounterResponse.wild_pokemon")
	}
	return nil
}

func decodeWildPokemon(b []byte, rec *EncounterRecord) error {
	return eachField(b, func(f field) error {
		var err error
		switch f.num {
		case fieldWildPokemonEncounterID:
			if rec.EncounterID, err = f.fixed64(); err != nil {
				return malformed("WildPokemon.encounter_id", err)
			}
		case fieldWildPokemonSpawnPointID:
			var sb []byte
			if sb, err = f.bytes(); err != nil {
				return malformed("WildPokemon.spawn_point_id", err)
			}
			rec.SpawnPointID = string(sb)
		case fieldWildPokemonPokemonData:
			if rec.Pokemon, err = decodePokemonField(f, "WildPokemon.pokemon_data"); err != nil {
				return err
			}
		}
		return nil
	})
}

// decodeNestedEncounter handles the disk and incense responses, which share a layout.
func decodeNestedEncounter(b []byte, rec *EncounterRecord) error {
	return eachField(b, func(f field) error {
		var err error
		switch f.num {
		case fieldNestedResult:
			if rec.Status, err = f.int32(); err != nil {
				return malformed("result", err)
			}
		case fieldNestedPokemonData:
			if rec.Pokemon, err = decodePokemonField(f, "pokemon_data"); err != nil {
				return err
			}
		case fieldNestedProbability:
			if rec.Probability, err = decodeProbabilityField(f, "capture_probability"); err != nil {
				return err
			}
		}
		return nil
	})
}

func decodePokemonField(f field, path string) (*PokemonData, error) {
	b, err := f.bytes()
	if err != nil {
		return nil, malformed(path, err)
	}
	p, err := DecodePokemonData(b)
	if err != nil {
		return nil, malformed(path, err)
	}
	return p, nil
}

func decodeProbabilityField(f field, path string) (*CaptureProbability, error) {
	b, err := f.bytes()
	if err != nil {
		return nil, malformed(path, err)
	}
	p, err := DecodeCaptureProbability(b)
	if err != nil {
		return nil, malformed(path, err)
	}
	return p, nil
}

// DecodePokemonData parses a bare PokemonData message.
func DecodePokemonData(b []byte) (*PokemonData, error) {
	p := &PokemonData{}
	err := eachField(b, func(f field) error {
		var err error
		switch f.num {
		case fieldPokemonID:
			p.ID, err = f.fixed64()
		case fieldPokemonPokemonID:
			p.PokemonID, err = f.int32()
		case fieldPokemonCP:
			p.CP, err = f.int32()
		case fieldPokemonStamina:
			p.Stamina, err = f.int32()
		case fieldPokemonStaminaMax:
			p.StaminaMax, err = f.int32()
		case fieldPokemonMove1:
			p.Move1, err = f.int32()
		case fieldPokemonMove2:
			p.Move2, err = f.int32()
		case fieldPokemonHeightM:
			p.HeightM, err = f.float32()
		case fieldPokemonWeightKg:
			p.WeightKg, err = f.float32()
		case fieldPokemonIndividualAttack:
			p.IndividualAttack, err = f.int32()
		case fieldPokemonIndividualDefense:
			p.IndividualDefense, err = f.int32()
		case fieldPokemonIndividualStamina:
			p.IndividualStamina, err = f.int32()
		case fieldPokemonCPMultiplier:
			p.CPMultiplier, err = f.float32()
		case fieldPokemonAdditionalCPMultiplier:
			p.AdditionalCPMultiplier, err = f.float32()
		case fieldPokemonDisplay:
			var db []byte
			if db, err = f.bytes(); err == nil {
				err = decodeDisplay(db, &p.Display)
			}
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

func decodeDisplay(b []byte, d *PokemonDisplay) error {
	return eachField(b, func(f field) error {
		var err error
		switch f.num {
		case fieldDisplayCostume:
			d.Costume, err = f.int32()
		case fieldDisplayGender:
			d.Gender, err = f.int32()
		case fieldDisplayShiny:
			d.Shiny, err = f.bool()
		case fieldDisplayForm:
			d.Form, err = f.int32()
		}
		return err
	})
}

// DecodeCaptureProbability parses a bare CaptureProbability message.
func DecodeCaptureProbability(b []byte) (*CaptureProbability, error) {
	p := &CaptureProbability{}
	err := eachField(b, func(f field) error {
		var err error
		switch f.num {
		case fieldProbabilityBallType:
			p.BallTypes, err = f.repeatedInt32(p.BallTypes)
		case fieldProbabilityProbability:
			p.Probabilities, err = f.repeatedFloat32(p.Probabilities)
		case fieldProbabilityReticle:
			p.ReticleDifficultyScale, err = f.float64()
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}
