package pokemon

import (
	"sync/atomic"

	"firestige.xyz/encounter/internal/protocol"
)

const maxIndividualValue = 15

// Pokemon is the resolved view of a raw creature record.
type Pokemon struct {
	Number int
	Name   string
	Gender int32
	Shiny  bool

	IVAttack  int
	IVDefense int
	IVStamina int

	CP    int
	Level float64
	HP    int

	BaseWeight float64
	Weight     float64
	BaseHeight float64
	Height     float64

	MoveFast   string
	MoveCharge string

	FleeRate float64

	Type1 string
	Type2 string
	Class string
}

// IV returns the combined individual value fraction in [0, 1].
func (p *Pokemon) IV() float64 {
	return float64(p.IVAttack+p.IVDefense+p.IVStamina) / float64(3*maxIndividualValue)
}

// Factory resolves raw creature records against a species catalog.
type Factory struct {
	catalog atomic.Pointer[Catalog]
}

// NewFactory creates a factory over catalog. A nil catalog means the built-in table.
func NewFactory(catalog *Catalog) *Factory {
	f := &Factory{}
	f.SetCatalog(catalog)
	return f
}

// SetCatalog swaps the species catalog used by subsequent resolutions.
func (f *Factory) SetCatalog(catalog *Catalog) {
	if catalog == nil {
		catalog = DefaultCatalog()
	}
	f.catalog.Store(catalog)
}

// Resolve builds a Pokemon from raw. It reports false when the species is unknown or
// the record carries values no real creature can have.
func (f *Factory) Resolve(raw *protocol.PokemonData) (*Pokemon, bool) {
	if raw == nil {
		return nil, false
	}

	species, ok := f.catalog.Load().Lookup(int(raw.PokemonID))
	if !ok {
		return nil, false
	}

	if !validIV(raw.IndividualAttack) || !validIV(raw.IndividualDefense) || !validIV(raw.IndividualStamina) {
		return nil, false
	}

	totalCPM := float64(raw.CPMultiplier) + float64(raw.AdditionalCPMultiplier)
	if raw.CPMultiplier <= 0 {
		return nil, false
	}

	return &Pokemon{
		Number:     species.Number,
		Name:       species.Name,
		Gender:     raw.Display.Gender,
		Shiny:      raw.Display.Shiny,
		IVAttack:   int(raw.IndividualAttack),
		IVDefense:  int(raw.IndividualDefense),
		IVStamina:  int(raw.IndividualStamina),
		CP:         int(raw.CP),
		Level:      LevelFor(totalCPM),
		HP:         int(raw.StaminaMax),
		BaseWeight: species.BaseWeight,
		Weight:     float64(raw.WeightKg),
		BaseHeight: species.BaseHeight,
		Height:     float64(raw.HeightM),
		MoveFast:   MoveName(raw.Move1),
		MoveCharge: MoveName(raw.Move2),
		FleeRate:   species.FleeRate,
		Type1:      species.Type1,
		Type2:      species.Type2,
		Class:      species.Class,
	}, true
}

func validIV(v int32) bool {
	return v >= 0 && v <= maxIndividualValue
}
