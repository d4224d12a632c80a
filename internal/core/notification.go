package core

// Notification is the flattened payload handed to a notification sink.
//
// IVPercent and FleeRatePercent are already scaled to 0..100. Capture probabilities
// stay as 0..1 fractions.
type Notification struct {
	Kind RequestKind

	Number int
	Name   string
	Gender string

	IVPercent float64
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

	FleeRatePercent float64

	Pokeball  float64
	Greatball float64
	Ultraball float64

	Type1 string
	Type2 string
	Class string
}
