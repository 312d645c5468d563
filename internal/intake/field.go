// Package intake turns raw questionnaire text into a validated answer set.
package intake

// Field identifies one question on the assessment form.
type Field string

const (
	FieldHeight          Field = "height"
	FieldWeight          Field = "weight"
	FieldCycleRegularity Field = "cycle_regularity"
	FieldCycleLength     Field = "cycle_length"
	FieldPimples         Field = "pimples"
	FieldHairLoss        Field = "hair_loss"
	FieldSkinDarkening   Field = "skin_darkening"
	FieldFastFood        Field = "fast_food"
	FieldExercise        Field = "exercise"
)

// Fields lists every question in form order.
var Fields = []Field{
	FieldHeight,
	FieldWeight,
	FieldCycleRegularity,
	FieldCycleLength,
	FieldPimples,
	FieldHairLoss,
	FieldSkinDarkening,
	FieldFastFood,
	FieldExercise,
}

func (f Field) Valid() bool {
	for _, known := range Fields {
		if f == known {
			return true
		}
	}
	return false
}

// Label is the prompt shown next to the input.
func (f Field) Label() string {
	switch f {
	case FieldHeight:
		return "Height (cm)"
	case FieldWeight:
		return "Weight (kg)"
	case FieldCycleRegularity:
		return "Cycle Regularity (Regular / Irregular)"
	case FieldCycleLength:
		return "Cycle Length (days)"
	case FieldPimples:
		return "Pimples (Yes / No)"
	case FieldHairLoss:
		return "Hair Loss (Yes / No)"
	case FieldSkinDarkening:
		return "Skin Darkening (Yes / No)"
	case FieldFastFood:
		return "Fast Food Habit (Yes / No)"
	case FieldExercise:
		return "Exercise (Regular / Rarely)"
	default:
		return string(f)
	}
}

// Raw holds unvalidated answers keyed by field.
type Raw map[Field]string
