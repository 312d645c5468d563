package assessment

import (
	"time"

	"github.com/google/uuid"
)

const (
	// MaxScore is the sum of every weight.
	MaxScore = 10

	// BMIThreshold is exclusive: only a BMI strictly above it counts.
	BMIThreshold = 27.0

	lowMax    = 3
	mediumMax = 6
)

type rule struct {
	name   string
	weight int
	match  func(Answers) bool
}

var rules = []rule{
	{"irregular cycle", 2, func(a Answers) bool { return a.CycleRegularity == RegularityIrregular }},
	{"pimples", 1, func(a Answers) bool { return a.Pimples == Yes }},
	{"hair loss", 2, func(a Answers) bool { return a.HairLoss == Yes }},
	{"skin darkening", 1, func(a Answers) bool { return a.SkinDarkening == Yes }},
	{"fast food habit", 1, func(a Answers) bool { return a.FastFoodHabit == Yes }},
	{"rare exercise", 1, func(a Answers) bool { return a.Exercise == ExerciseRarely }},
	{"BMI above 27", 2, func(a Answers) bool { return a.BMI() > BMIThreshold }},
}

// Factors returns the matching conditions in table order. Their weights sum to Score(a).
func Factors(a Answers) []Factor {
	var out []Factor
	for _, r := range rules {
		if r.match(a) {
			out = append(out, Factor{Name: r.name, Weight: r.weight})
		}
	}
	return out
}

// Score computes the weighted sum of matching conditions, in [0, MaxScore].
func Score(a Answers) int {
	score := 0
	for _, f := range Factors(a) {
		score += f.Weight
	}
	return score
}

// ClassifyTier maps a score to its tier: <=3 low, 4-6 medium, >=7 high.
func ClassifyTier(score int) Tier {
	switch {
	case score <= lowMax:
		return TierLow
	case score <= mediumMax:
		return TierMedium
	default:
		return TierHigh
	}
}

// Evaluate scores a and stamps the result with now.
func Evaluate(a Answers, now time.Time) Record {
	score := Score(a)
	return Record{
		ID:        uuid.New(),
		Score:     score,
		Tier:      ClassifyTier(score),
		Timestamp: now,
	}
}
