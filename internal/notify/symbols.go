package notify

import (
	"strconv"

	"firestige.xyz/encounter/internal/core"
)

// Default templates.
const (
	DefaultTitle   = "{label} #{number} {name}{gender} IV {iv}% ({att}/{def}/{sta}) CP {cp} LV {level}"
	DefaultContent = "{move_fast} / {move_charge} | {type} | {class} | HP {hp} | {weight}kg {height}m | Flee {flee}% | Poke {pokeball}% Great {greatball}% Ultra {ultraball}%"
)

// Highlight colors, in mgutz/ansi style notation.
const (
	colorIV          = "green+b"
	colorCP          = "cyan+b"
	colorName        = "yellow+b"
	colorProbability = "magenta"
	colorNone        = ""
)

// Symbols returns the template symbols for n.
func Symbols(n core.Notification) map[string]Symbol {
	typ := n.Type1
	if n.Type2 != "" {
		typ += "/" + n.Type2
	}
	gender := n.Gender
	if gender != "" {
		gender = " " + gender
	}

	return map[string]Symbol{
		"label":       {Value: n.Kind.Label()},
		"number":      {Value: strconv.Itoa(n.Number)},
		"name":        {Value: n.Name, Color: colorName},
		"gender":      {Value: gender},
		"iv":          {Value: decimal(n.IVPercent), Color: colorIV},
		"att":         {Value: strconv.Itoa(n.IVAttack)},
		"def":         {Value: strconv.Itoa(n.IVDefense)},
		"sta":         {Value: strconv.Itoa(n.IVStamina)},
		"cp":          {Value: strconv.Itoa(n.CP), Color: colorCP},
		"level":       {Value: strconv.FormatFloat(n.Level, 'f', -1, 64)},
		"hp":          {Value: strconv.Itoa(n.HP)},
		"weight":      {Value: decimal(n.Weight)},
		"base_weight": {Value: decimal(n.BaseWeight)},
		"height":      {Value: decimal(n.Height)},
		"base_height": {Value: decimal(n.BaseHeight)},
		"move_fast":   {Value: n.MoveFast},
		"move_charge": {Value: n.MoveCharge},
		"type":        {Value: typ},
		"type1":       {Value: n.Type1},
		"type2":       {Value: n.Type2},
		"class":       {Value: n.Class},
		"flee":        {Value: decimal(n.FleeRatePercent)},
		"pokeball":    {Value: decimal(n.Pokeball * 100), Color: colorProbability},
		"greatball":   {Value: decimal(n.Greatball * 100), Color: colorProbability},
		"ultraball":   {Value: decimal(n.Ultraball * 100), Color: colorProbability},
	}
}

func decimal(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}
