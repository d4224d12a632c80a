// Package protocol decodes the encounter response payloads captured by the relay.
//
// The three encounter responses share two logical parts, a creature record and a
// capture probability record, but nest them differently:
//
//	EncounterResponse        { 1: WildPokemon { 7: PokemonData }, 3: status, 4: CaptureProbability }
//	DiskEncounterResponse    { 1: result, 2: PokemonData, 3: CaptureProbability }
//	IncenseEncounterResponse { 1: result, 2: PokemonData, 3: CaptureProbability }
package protocol

import "firestige.xyz/encounter/internal/core"

// Gender values of PokemonDisplay.gender.
const (
	GenderUnset      int32 = 0
	GenderMale       int32 = 1
	GenderFemale     int32 = 2
	GenderGenderless int32 = 3
)

// Ball item ids used in CaptureProbability.pokeball_type.
const (
	ItemPokeBall  int32 = 1
	ItemGreatBall int32 = 2
	ItemUltraBall int32 = 3
)

// PokemonData is the raw creature record.
type PokemonData struct {
	ID                     uint64
	PokemonID              int32
	CP                     int32
	Stamina                int32
	StaminaMax             int32
	Move1                  int32
	Move2                  int32
	HeightM                float32
	WeightKg               float32
	IndividualAttack       int32
	IndividualDefense      int32
	IndividualStamina      int32
	CPMultiplier           float32
	AdditionalCPMultiplier float32
	Display                PokemonDisplay
}

// PokemonDisplay carries cosmetic attributes.
type PokemonDisplay struct {
	Costume int32
	Gender  int32
	Shiny   bool
	Form    int32
}

// CaptureProbability is the raw probability record; BallTypes[i] pairs with Probabilities[i].
type CaptureProbability struct {
	BallTypes              []int32
	Probabilities          []float32
	ReticleDifficultyScale float64
}

// EncounterRecord is the uniform result of decoding any of the three encounter shapes.
type EncounterRecord struct {
	Kind core.RequestKind

	// Status is EncounterResponse.status or the result field of the disk/incense responses.
	Status int32

	// Wild encounters only.
	EncounterID  uint64
	SpawnPointID string

	Pokemon     *PokemonData
	Probability *CaptureProbability
}

// Field numbers.
const (
	fieldWildEncounterWildPokemon = 1
	fieldWildEncounterStatus      = 3
	fieldWildEncounterProbability = 4

	fieldWildPokemonEncounterID  = 1
	fieldWildPokemonSpawnPointID = 5
	fieldWildPokemonPokemonData  = 7

	fieldNestedResult      = 1
	fieldNestedPokemonData = 2
	fieldNestedProbability = 3

	fieldPokemonID                     = 1
	fieldPokemonPokemonID              = 2
	fieldPokemonCP                     = 3
	fieldPokemonStamina                = 4
	fieldPokemonStaminaMax             = 5
	fieldPokemonMove1                  = 6
	fieldPokemonMove2                  = 7
	fieldPokemonHeightM                = 12
	fieldPokemonWeightKg               = 13
	fieldPokemonIndividualAttack       = 14
	fieldPokemonIndividualDefense      = 15
	fieldPokemonIndividualStamina      = 16
	fieldPokemonCPMultiplier           = 17
	fieldPokemonAdditionalCPMultiplier = 25
	fieldPokemonDisplay                = 34

	fieldDisplayCostume = 1
	fieldDisplayGender  = 2
	fieldDisplayShiny   = 3
	fieldDisplayForm    = 4

	fieldProbabilityBallType    = 1
	fieldProbabilityProbability = 2
	fieldProbabilityReticle     = 12
)
