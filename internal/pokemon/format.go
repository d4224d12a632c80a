package pokemon

import (
	"strings"

	"firestige.xyz/encounter/internal/protocol"
)

const (
	fastSuffix    = "FAST"
	classPrefix   = "POKEMON_CLASS_"
	rarityPrefix  = "POKEMON_RARITY_"
	symbolMale    = "♂"
	symbolFemale  = "♀"
	wordSeparator = "_"
)

// FormatType turns "POKEMON_TYPE_FIRE" into "Fire".
func FormatType(t string) string {
	if t == "" {
		return ""
	}
	if i := strings.LastIndex(t, wordSeparator); i != -1 {
		t = t[i+1:]
	}
	return capitalize(t)
}

// FormatMove turns "DRAGON_BREATH_FAST" into "Dragon Breath".
func FormatMove(move string) string {
	words := make([]string, 0, 3)
	for _, w := range strings.Split(move, wordSeparator) {
		if w == "" || strings.EqualFold(w, fastSuffix) {
			continue
		}
		words = append(words, capitalize(w))
	}
	return strings.Join(words, " ")
}

// FormatRarity turns "POKEMON_CLASS_LEGENDARY" into "Legendary".
func FormatRarity(class string) string {
	class = strings.TrimPrefix(class, classPrefix)
	class = strings.TrimPrefix(class, rarityPrefix)
	return capitalize(strings.ReplaceAll(class, wordSeparator, " "))
}

// FormatGender returns the gender symbol, or an empty string for genderless or unset.
func FormatGender(gender int32) string {
	switch gender {
	case protocol.GenderMale:
		return symbolMale
	case protocol.GenderFemale:
		return symbolFemale
	default:
		return ""
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	s = strings.ToLower(s)
	return strings.ToUpper(s[:1]) + s[1:]
}
