package pokemon

// Rarity classes.
const (
	ClassNormal    = "POKEMON_CLASS_NORMAL"
	ClassLegendary = "POKEMON_CLASS_LEGENDARY"
	ClassMythic    = "POKEMON_CLASS_MYTHIC"
)

var builtinSpecies = []Species{
	{Number: 1, Name: "Bulbasaur", Type1: "POKEMON_TYPE_GRASS", Type2: "POKEMON_TYPE_POISON", BaseAttack: 118, BaseDefense: 111, BaseStamina: 128, BaseHeight: 0.7, BaseWeight: 6.9, FleeRate: 0.1},
	{Number: 4, Name: "Charmander", Type1: "POKEMON_TYPE_FIRE", BaseAttack: 116, BaseDefense: 93, BaseStamina: 118, BaseHeight: 0.6, BaseWeight: 8.5, FleeRate: 0.1},
	{Number: 7, Name: "Squirtle", Type1: "POKEMON_TYPE_WATER", BaseAttack: 94, BaseDefense: 121, BaseStamina: 127, BaseHeight: 0.5, BaseWeight: 9, FleeRate: 0.1},
	{Number: 10, Name: "Caterpie", Type1: "POKEMON_TYPE_BUG", BaseAttack: 55, BaseDefense: 55, BaseStamina: 128, BaseHeight: 0.3, BaseWeight: 2.9, FleeRate: 0.2},
	{Number: 13, Name: "Weedle", Type1: "POKEMON_TYPE_BUG", Type2: "POKEMON_TYPE_POISON", BaseAttack: 63, BaseDefense: 50, BaseStamina: 120, BaseHeight: 0.3, BaseWeight: 3.2, FleeRate: 0.2},
	{Number: 16, Name: "Pidgey", Type1: "POKEMON_TYPE_NORMAL", Type2: "POKEMON_TYPE_FLYING", BaseAttack: 85, BaseDefense: 73, BaseStamina: 120, BaseHeight: 0.3, BaseWeight: 1.8, FleeRate: 0.2},
	{Number: 19, Name: "Rattata", Type1: "POKEMON_TYPE_NORMAL", BaseAttack: 103, BaseDefense: 70, BaseStamina: 102, BaseHeight: 0.3, BaseWeight: 3.5, FleeRate: 0.2},
	{Number: 25, Name: "Pikachu", Type1: "POKEMON_TYPE_ELECTRIC", BaseAttack: 112, BaseDefense: 96, BaseStamina: 111, BaseHeight: 0.4, BaseWeight: 6, FleeRate: 0.1},
	{Number: 35, Name: "Clefairy", Type1: "POKEMON_TYPE_FAIRY", BaseAttack: 107, BaseDefense: 108, BaseStamina: 172, BaseHeight: 0.6, BaseWeight: 7.5, FleeRate: 0.1},
	{Number: 39, Name: "Jigglypuff", Type1: "POKEMON_TYPE_NORMAL", Type2: "POKEMON_TYPE_FAIRY", BaseAttack: 80, BaseDefense: 41, BaseStamina: 251, BaseHeight: 0.5, BaseWeight: 5.5, FleeRate: 0.1},
	{Number: 41, Name: "Zubat", Type1: "POKEMON_TYPE_POISON", Type2: "POKEMON_TYPE_FLYING", BaseAttack: 83, BaseDefense: 73, BaseStamina: 120, BaseHeight: 0.8, BaseWeight: 7.5, FleeRate: 0.2},
	{Number: 54, Name: "Psyduck", Type1: "POKEMON_TYPE_WATER", BaseAttack: 122, BaseDefense: 95, BaseStamina: 137, BaseHeight: 0.8, BaseWeight: 19.6, FleeRate: 0.1},
	{Number: 63, Name: "Abra", Type1: "POKEMON_TYPE_PSYCHIC", BaseAttack: 195, BaseDefense: 82, BaseStamina: 93, BaseHeight: 0.9, BaseWeight: 19.5, FleeRate: 0.99},
	{Number: 66, Name: "Machop", Type1: "POKEMON_TYPE_FIGHTING", BaseAttack: 137, BaseDefense: 82, BaseStamina: 172, BaseHeight: 0.8, BaseWeight: 19.5, FleeRate: 0.1},
	{Number: 74, Name: "Geodude", Type1: "POKEMON_TYPE_ROCK", Type2: "POKEMON_TYPE_GROUND", BaseAttack: 132, BaseDefense: 132, BaseStamina: 120, BaseHeight: 0.4, BaseWeight: 20, FleeRate: 0.1},
	{Number: 92, Name: "Gastly", Type1: "POKEMON_TYPE_GHOST", Type2: "POKEMON_TYPE_POISON", BaseAttack: 186, BaseDefense: 67, BaseStamina: 102, BaseHeight: 1.3, BaseWeight: 0.1, FleeRate: 0.1},
	{Number: 129, Name: "Magikarp", Type1: "POKEMON_TYPE_WATER", BaseAttack: 29, BaseDefense: 85, BaseStamina: 85, BaseHeight: 0.9, BaseWeight: 10, FleeRate: 0.15},
	{Number: 131, Name: "Lapras", Type1: "POKEMON_TYPE_WATER", Type2: "POKEMON_TYPE_ICE", BaseAttack: 165, BaseDefense: 174, BaseStamina: 277, BaseHeight: 2.5, BaseWeight: 220, FleeRate: 0.09},
	{Number: 133, Name: "Eevee", Type1: "POKEMON_TYPE_NORMAL", BaseAttack: 104, BaseDefense: 114, BaseStamina: 146, BaseHeight: 0.3, BaseWeight: 6.5, FleeRate: 0.1},
	{Number: 143, Name: "Snorlax", Type1: "POKEMON_TYPE_NORMAL", BaseAttack: 190, BaseDefense: 169, BaseStamina: 330, BaseHeight: 2.1, BaseWeight: 460, FleeRate: 0.09},
	{Number: 144, Name: "Articuno", Type1: "POKEMON_TYPE_ICE", Type2: "POKEMON_TYPE_FLYING", BaseAttack: 192, BaseDefense: 236, BaseStamina: 207, BaseHeight: 1.7, BaseWeight: 55.4, Class: ClassLegendary},
	{Number: 145, Name: "Zapdos", Type1: "POKEMON_TYPE_ELECTRIC", Type2: "POKEMON_TYPE_FLYING", BaseAttack: 253, BaseDefense: 185, BaseStamina: 207, BaseHeight: 1.6, BaseWeight: 52.6, Class: ClassLegendary},
	{Number: 146, Name: "Moltres", Type1: "POKEMON_TYPE_FIRE", Type2: "POKEMON_TYPE_FLYING", BaseAttack: 251, BaseDefense: 181, BaseStamina: 207, BaseHeight: 2, BaseWeight: 60, Class: ClassLegendary},
	{Number: 147, Name: "Dratini", Type1: "POKEMON_TYPE_DRAGON", BaseAttack: 119, BaseDefense: 91, BaseStamina: 122, BaseHeight: 1.8, BaseWeight: 3.3, FleeRate: 0.09},
	{Number: 149, Name: "Dragonite", Type1: "POKEMON_TYPE_DRAGON", Type2: "POKEMON_TYPE_FLYING", BaseAttack: 263, BaseDefense: 198, BaseStamina: 209, BaseHeight: 2.2, BaseWeight: 210, FleeRate: 0.05},
	{Number: 150, Name: "Mewtwo", Type1: "POKEMON_TYPE_PSYCHIC", BaseAttack: 300, BaseDefense: 182, BaseStamina: 214, BaseHeight: 2, BaseWeight: 122, Class: ClassLegendary},
	{Number: 151, Name: "Mew", Type1: "POKEMON_TYPE_PSYCHIC", BaseAttack: 210, BaseDefense: 210, BaseStamina: 225, BaseHeight: 0.4, BaseWeight: 4, Class: ClassMythic},
}
