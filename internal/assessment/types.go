// Package assessment defines the answer set, the risk score, and its tier classification.
package assessment

import (
	"time"

	"github.com/google/uuid"
)

// Answers is a fully validated questionnaire submission.
type Answers struct {
	HeightCm        float64           `json:"height_cm" yaml:"height_cm"`
	WeightKg        float64           `json:"weight_kg" yaml:"weight_kg"`
	CycleRegularity Regularity        `json:"cycle_regularity" yaml:"cycle_regularity"`
	CycleLengthDays float64           `json:"cycle_length_days" yaml:"cycle_length_days"`
	Pimples         YesNo             `json:"pimples" yaml:"pimples"`
	HairLoss        YesNo             `json:"hair_loss" yaml:"hair_loss"`
	SkinDarkening   YesNo             `json:"skin_darkening" yaml:"skin_darkening"`
	FastFoodHabit   YesNo             `json:"fast_food_habit" yaml:"fast_food_habit"`
	Exercise        ExerciseFrequency `json:"exercise" yaml:"exercise"`
}

// HeightM returns the height in meters.
func (a Answers) HeightM() float64 {
	return a.HeightCm / 100
}

// BMI returns weight divided by the square of height in meters.
func (a Answers) BMI() float64 {
	h := a.HeightM()
	return a.WeightKg / (h * h)
}

// Record is the immutable outcome of one successful submission.
type Record struct {
	ID        uuid.UUID `json:"id"`
	Score     int       `json:"score"`
	Tier      Tier      `json:"tier"`
	Timestamp time.Time `json:"timestamp"`
}

// Factor is one scoring condition that matched.
type Factor struct {
	Name   string `json:"name"`
	Weight int    `json:"weight"`
}
