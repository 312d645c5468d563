package intake

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dshills/pcoscare/internal/assessment"
)

func validRaw() Raw {
	return Raw{
		FieldHeight:          "160",
		FieldWeight:          "70",
		FieldCycleRegularity: "Irregular",
		FieldCycleLength:     "35",
		FieldPimples:         "YES",
		FieldHairLoss:        "no",
		FieldSkinDarkening:   " yes ",
		FieldFastFood:        "yes",
		FieldExercise:        "Rarely",
	}
}

func TestValidateValid(t *testing.T) {
	a, err := Validate(validRaw())
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	want := assessment.Answers{
		HeightCm:        160,
		WeightKg:        70,
		CycleRegularity: assessment.RegularityIrregular,
		CycleLengthDays: 35,
		Pimples:         assessment.Yes,
		HairLoss:        assessment.No,
		SkinDarkening:   assessment.Yes,
		FastFoodHabit:   assessment.Yes,
		Exercise:        assessment.ExerciseRarely,
	}
	if a != want {
		t.Errorf("Validate() = %+v, want %+v", a, want)
	}
	if a.HeightM() != 1.6 {
		t.Errorf("HeightM() = %f, want 1.6", a.HeightM())
	}
	if got := assessment.Score(a); got != 8 {
		t.Errorf("score = %d, want 8", got)
	}
}

func TestValidateMissingEachField(t *testing.T) {
	for _, f := range Fields {
		t.Run(string(f), func(t *testing.T) {
			raw := validRaw()
			raw[f] = "   "
			_, err := Validate(raw)
			if !errors.Is(err, ErrMissingField) {
				t.Fatalf("expected ErrMissingField, got %v", err)
			}
			var fe *FieldError
			if !errors.As(err, &fe) || fe.Field != f {
				t.Errorf("expected FieldError for %s, got %v", f, err)
			}
		})
	}
}

func TestValidateMissingBeatsNonNumeric(t *testing.T) {
	raw := validRaw()
	raw[FieldHeight] = "abc"
	delete(raw, FieldExercise)
	_, err := Validate(raw)
	if !errors.Is(err, ErrMissingField) {
		t.Errorf("expected ErrMissingField, got %v", err)
	}
}

func TestValidateNonNumeric(t *testing.T) {
	tests := []struct {
		field Field
		value string
	}{
		{FieldHeight, "abc"},
		{FieldWeight, "seventy"},
		{FieldCycleLength, "about 30"},
		{FieldHeight, "NaN"},
		{FieldWeight, "inf"},
		{FieldHeight, "0x1p4"},
		{FieldWeight, "-0X46"},
		{FieldCycleLength, "0x1c"},
	}
	for _, tt := range tests {
		t.Run(string(tt.field)+"="+tt.value, func(t *testing.T) {
			raw := validRaw()
			raw[tt.field] = tt.value
			_, err := Validate(raw)
			if !errors.Is(err, ErrNonNumeric) {
				t.Fatalf("expected ErrNonNumeric, got %v", err)
			}
			if !strings.Contains(err.Error(), "numeric") {
				t.Errorf("message %q does not name the defect class", err)
			}
		})
	}
}

func TestValidateOutOfRange(t *testing.T) {
	for _, v := range []string{"0", "-160"} {
		raw := validRaw()
		raw[FieldHeight] = v
		if _, err := Validate(raw); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("height %q: expected ErrOutOfRange, got %v", v, err)
		}
	}
}

func TestValidateInvalidChoice(t *testing.T) {
	tests := []struct {
		field Field
		value string
	}{
		{FieldCycleRegularity, "irreguler"},
		{FieldPimples, "sometimes"},
		{FieldHairLoss, "y"},
		{FieldSkinDarkening, "n"},
		{FieldFastFood, "often"},
		{FieldExercise, "never"},
	}
	for _, tt := range tests {
		t.Run(string(tt.field), func(t *testing.T) {
			raw := validRaw()
			raw[tt.field] = tt.value
			_, err := Validate(raw)
			if !errors.Is(err, ErrInvalidChoice) {
				t.Fatalf("expected ErrInvalidChoice, got %v", err)
			}
			var fe *FieldError
			if !errors.As(err, &fe) || fe.Field != tt.field || len(fe.Allowed) != 2 {
				t.Errorf("unexpected FieldError: %+v", fe)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	got := Normalize(Raw{FieldPimples: "  YeS\n"})
	if got[FieldPimples] != "yes" {
		t.Errorf("Normalize = %q, want yes", got[FieldPimples])
	}
	if len(got) != len(Fields) {
		t.Errorf("expected %d keys, got %d", len(Fields), len(got))
	}
}

func TestFieldLabels(t *testing.T) {
	for _, f := range Fields {
		if f.Label() == string(f) {
			t.Errorf("field %s has no label", f)
		}
	}
	if Field("bogus").Valid() {
		t.Error("expected bogus field to be invalid")
	}
}

// --- File loading tests ---

func TestLoadFile(t *testing.T) {
	doc := `height: 160
weight: 70.5
cycle_regularity: Irregular
cycle_length: 35
pimples: "yes"
hair_loss: "no"
skin_darkening: "yes"
fast_food: "yes"
exercise: rarely
`
	path := filepath.Join(t.TempDir(), "answers.yaml")
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		t.Fatal(err)
	}

	raw, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if raw[FieldWeight] != "70.5" {
		t.Errorf("weight = %q, want 70.5", raw[FieldWeight])
	}
	a, err := Validate(raw)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if a.WeightKg != 70.5 {
		t.Errorf("WeightKg = %f", a.WeightKg)
	}
}

func TestParseUnknownField(t *testing.T) {
	_, err := Parse([]byte("height: 160\nmood: fine\n"))
	if err == nil || !strings.Contains(err.Error(), "mood") {
		t.Errorf("expected unknown field error, got %v", err)
	}
}

func TestLoadFileNotFound(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
