package intake

import (
	"math"
	"strconv"
	"strings"

	"github.com/dshills/pcoscare/internal/assessment"
)

// Normalize trims and lower-cases every answer, the same way the form reads its inputs.
func Normalize(raw Raw) Raw {
	out := make(Raw, len(Fields))
	for _, f := range Fields {
		out[f] = strings.ToLower(strings.TrimSpace(raw[f]))
	}
	return out
}

// Validate returns the populated answer set or a *FieldError naming the first defect.
// Presence is checked for every field before numbers, and numbers before choices.
func Validate(raw Raw) (assessment.Answers, error) {
	r := Normalize(raw)

	for _, f := range Fields {
		if r[f] == "" {
			return assessment.Answers{}, &FieldError{Field: f, Kind: KindMissing}
		}
	}

	var a assessment.Answers
	var err error

	if a.HeightCm, err = parsePositive(FieldHeight, r[FieldHeight]); err != nil {
		return assessment.Answers{}, err
	}
	if a.WeightKg, err = parsePositive(FieldWeight, r[FieldWeight]); err != nil {
		return assessment.Answers{}, err
	}

	if a.CycleLengthDays, err = parsePositive(FieldCycleLength, r[FieldCycleLength]); err != nil {
		return assessment.Answers{}, err
	}

	var ok bool
	if a.CycleRegularity, ok = assessment.ParseRegularity(r[FieldCycleRegularity]); !ok {
		return assessment.Answers{}, invalidChoice(FieldCycleRegularity, r, "regular", "irregular")
	}

	yesNo := []struct {
		field Field
		dst   *assessment.YesNo
	}{
		{FieldPimples, &a.Pimples},
		{FieldHairLoss, &a.HairLoss},
		{FieldSkinDarkening, &a.SkinDarkening},
		{FieldFastFood, &a.FastFoodHabit},
	}
	for _, yn := range yesNo {
		if *yn.dst, ok = assessment.ParseYesNo(r[yn.field]); !ok {
			return assessment.Answers{}, invalidChoice(yn.field, r, "yes", "no")
		}
	}

	if a.Exercise, ok = assessment.ParseExerciseFrequency(r[FieldExercise]); !ok {
		return assessment.Answers{}, invalidChoice(FieldExercise, r, "regular", "rarely")
	}

	return a, nil
}

// parsePositive accepts decimal notation only. Hex floats such as "0x1p4",
// which strconv would take, are treated as non-numeric.
func parsePositive(f Field, s string) (float64, error) {
	if strings.HasPrefix(strings.TrimLeft(s, "+-"), "0x") {
		return 0, &FieldError{Field: f, Kind: KindNonNumeric, Value: s}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &FieldError{Field: f, Kind: KindNonNumeric, Value: s}
	}
	if v <= 0 {
		return 0, &FieldError{Field: f, Kind: KindOutOfRange, Value: s}
	}
	return v, nil
}

func invalidChoice(f Field, r Raw, allowed ...string) error {
	return &FieldError{Field: f, Kind: KindInvalidChoice, Value: r[f], Allowed: allowed}
}
