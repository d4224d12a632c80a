package pokemon

import "strconv"

var moveNames = map[int32]string{
	13:  "WRAP",
	14:  "HYPER_BEAM",
	16:  "DARK_PULSE",
	21:  "FLAME_WHEEL",
	24:  "FLAMETHROWER",
	26:  "DIG",
	28:  "CROSS_CHOP",
	30:  "PSYBEAM",
	31:  "EARTHQUAKE",
	32:  "STONE_EDGE",
	33:  "ICE_PUNCH",
	35:  "DISCHARGE",
	39:  "ICE_BEAM",
	40:  "BLIZZARD",
	45:  "AERIAL_ACE",
	47:  "PETAL_BLIZZARD",
	49:  "BUG_BUZZ",
	53:  "BUBBLE_BEAM",
	54:  "SUBMISSION",
	58:  "AQUA_TAIL",
	59:  "SEED_BOMB",
	62:  "ANCIENT_POWER",
	64:  "ROCK_SLIDE",
	69:  "OMINOUS_WIND",
	70:  "SHADOW_BALL",
	77:  "THUNDER_PUNCH",
	78:  "THUNDER",
	79:  "THUNDERBOLT",
	80:  "TWISTER",
	82:  "DRAGON_PULSE",
	83:  "DRAGON_CLAW",
	86:  "DAZZLING_GLEAM",
	87:  "MOONBLAST",
	88:  "PLAY_ROUGH",
	90:  "SLUDGE_BOMB",
	91:  "SLUDGE_WAVE",
	95:  "BULLDOZE",
	100: "X_SCISSOR",
	101: "FLAME_CHARGE",
	103: "FIRE_BLAST",
	105: "WATER_PULSE",
	107: "HYDRO_PUMP",
	108: "PSYCHIC",
	109: "PSYSTRIKE",
	111: "ICY_WIND",
	116: "SOLAR_BEAM",
	118: "POWER_WHIP",
	121: "AIR_CUTTER",
	122: "HURRICANE",
	123: "BRICK_BREAK",
	125: "SWIFT",
	129: "HYPER_FANG",
	131: "BODY_SLAM",
	133: "STRUGGLE",
	200: "FURY_CUTTER_FAST",
	201: "BUG_BITE_FAST",
	202: "BITE_FAST",
	204: "DRAGON_BREATH_FAST",
	205: "THUNDER_SHOCK_FAST",
	206: "SPARK_FAST",
	207: "LOW_KICK_FAST",
	208: "KARATE_CHOP_FAST",
	209: "EMBER_FAST",
	210: "WING_ATTACK_FAST",
	211: "PECK_FAST",
	212: "LICK_FAST",
	213: "SHADOW_CLAW_FAST",
	214: "VINE_WHIP_FAST",
	215: "RAZOR_LEAF_FAST",
	216: "MUD_SHOT_FAST",
	217: "ICE_SHARD_FAST",
	218: "FROST_BREATH_FAST",
	219: "QUICK_ATTACK_FAST",
	220: "SCRATCH_FAST",
	221: "TACKLE_FAST",
	222: "POUND_FAST",
	224: "POISON_JAB_FAST",
	225: "ACID_FAST",
	226: "PSYCHO_CUT_FAST",
	227: "ROCK_THROW_FAST",
	228: "METAL_CLAW_FAST",
	230: "WATER_GUN_FAST",
	231: "SPLASH_FAST",
	234: "ZEN_HEADBUTT_FAST",
	235: "CONFUSION_FAST",
	236: "POISON_STING_FAST",
	237: "BUBBLE_FAST",
	238: "FEINT_ATTACK_FAST",
	239: "STEEL_WING_FAST",
	240: "FIRE_FANG_FAST",
	241: "ROCK_SMASH_FAST",
}

// MoveName returns the enum name of a move id.
func MoveName(id int32) string {
	if name, ok := moveNames[id]; ok {
		return name
	}
	return "MOVE_" + strconv.Itoa(int(id))
}
