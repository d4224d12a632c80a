package pokemon

import "math"

// cpMultipliers holds the combat power multiplier of every whole level from 1 to 40.
var cpMultipliers = [...]float64{
	0.094, 0.16639787, 0.21573247, 0.25572005, 0.29024988,
	0.3210876, 0.34921268, 0.37523559, 0.39956728, 0.42250001,
	0.44310755, 0.46279839, 0.48168495, 0.49985844, 0.51739395,
	0.53435433, 0.55079269, 0.56675452, 0.58227891, 0.59740001,
	0.61215729, 0.62656713, 0.64065295, 0.65443563, 0.667934,
	0.68116492, 0.69414365, 0.70688421, 0.71939909, 0.7317,
	0.73776948, 0.74378943, 0.74976104, 0.75568551, 0.76156384,
	0.76739717, 0.7731865, 0.77893275, 0.78463697, 0.79030001,
}

const (
	MinLevel = 1.0
	MaxLevel = 40.0
)

// multiplierAt returns the multiplier for a whole or half level in [MinLevel, MaxLevel].
// Half levels sit at the quadratic mean of their neighbours.
func multiplierAt(level float64) float64 {
	lower := int(math.Floor(level))
	if level == float64(lower) {
		return cpMultipliers[lower-1]
	}
	a, b := cpMultipliers[lower-1], cpMultipliers[lower]
	return math.Sqrt((a*a + b*b) / 2)
}

// LevelFor returns the half-level whose multiplier is closest to total.
func LevelFor(total float64) float64 {
	best, bestDiff := MinLevel, math.Inf(1)
	for level := MinLevel; level <= MaxLevel; level += 0.5 {
		diff := math.Abs(multiplierAt(level) - total)
		if diff < bestDiff {
			best, bestDiff = level, diff
		}
	}
	return best
}
