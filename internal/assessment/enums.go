package assessment

import "strings"

// Regularity describes how regular the menstrual cycle is.
type Regularity string

const (
	RegularityRegular   Regularity = "regular"
	RegularityIrregular Regularity = "irregular"
)

func (r Regularity) Valid() bool {
	switch r {
	case RegularityRegular, RegularityIrregular:
		return true
	}
	return false
}

// ParseRegularity trims and case-folds s before matching it.
func ParseRegularity(s string) (Regularity, bool) {
	r := Regularity(normalize(s))
	return r, r.Valid()
}

// YesNo is the answer to a symptom or habit question.
type YesNo string

const (
	Yes YesNo = "yes"
	No  YesNo = "no"
)

func (y YesNo) Valid() bool {
	return y == Yes || y == No
}

// ParseYesNo trims and case-folds s before matching it.
func ParseYesNo(s string) (YesNo, bool) {
	y := YesNo(normalize(s))
	return y, y.Valid()
}

// ExerciseFrequency describes how often the person exercises.
type ExerciseFrequency string

const (
	ExerciseRegular ExerciseFrequency = "regular"
	ExerciseRarely  ExerciseFrequency = "rarely"
)

func (e ExerciseFrequency) Valid() bool {
	switch e {
	case ExerciseRegular, ExerciseRarely:
		return true
	}
	return false
}

// ParseExerciseFrequency trims and case-folds s before matching it.
func ParseExerciseFrequency(s string) (ExerciseFrequency, bool) {
	e := ExerciseFrequency(normalize(s))
	return e, e.Valid()
}

// Tier is the risk classification derived from a score.
type Tier string

const (
	TierLow    Tier = "low"
	TierMedium Tier = "medium"
	TierHigh   Tier = "high"
)

func (t Tier) Valid() bool {
	switch t {
	case TierLow, TierMedium, TierHigh:
		return true
	}
	return false
}

// Label is the headline shown on the result screen.
func (t Tier) Label() string {
	switch t {
	case TierLow:
		return "LOW RISK"
	case TierMedium:
		return "MEDIUM RISK"
	case TierHigh:
		return "HIGH RISK"
	default:
		return "UNKNOWN"
	}
}

// Color is the hex color used for the label and the result bar.
func (t Tier) Color() string {
	switch t {
	case TierLow:
		return "#4CAF50"
	case TierMedium:
		return "#FFC107"
	case TierHigh:
		return "#F44336"
	default:
		return "#9E9E9E"
	}
}

// Fill is the fraction of the result bar to draw, in (0, 1].
func (t Tier) Fill() float64 {
	switch t {
	case TierLow:
		return 1.0 / 3
	case TierMedium:
		return 2.0 / 3
	case TierHigh:
		return 1
	default:
		return 0
	}
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
