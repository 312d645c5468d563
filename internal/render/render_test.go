package render

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/dshills/pcoscare/internal/advice"
	"github.com/dshills/pcoscare/internal/assessment"
)

func sampleAnswers() assessment.Answers {
	return assessment.Answers{
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
}

func sampleReport(t *testing.T, withGuide bool) Report {
	t.Helper()
	a := sampleAnswers()
	rec := assessment.Evaluate(a, time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC))
	var g *advice.Guide
	if withGuide {
		var err error
		g, err = advice.LoadBuiltin(advice.DefaultName)
		if err != nil {
			t.Fatal(err)
		}
	}
	return NewReport("test", a, rec, g)
}

func TestMarkdown(t *testing.T) {
	md := Markdown(sampleReport(t, true))

	checks := []string{
		"# PCOS Risk Assessment",
		"**Result:** HIGH RISK",
		"**Score:** 8 / 10",
		"**BMI:** 27.3",
		"- irregular cycle (+2)",
		"- BMI above 27 (+2)",
		"## Suggestions & Guidance",
		"### Diet",
		"> This app does not replace medical diagnosis.",
	}
	for _, want := range checks {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q", want)
		}
	}
	if strings.Contains(md, "hair loss") {
		t.Error("markdown lists a factor that did not match")
	}
}

func TestMarkdownNoFactors(t *testing.T) {
	a := assessment.Answers{
		HeightCm: 170, WeightKg: 60, CycleRegularity: assessment.RegularityRegular, CycleLengthDays: 28,
		Pimples: assessment.No, HairLoss: assessment.No, SkinDarkening: assessment.No,
		FastFoodHabit: assessment.No, Exercise: assessment.ExerciseRegular,
	}
	r := NewReport("test", a, assessment.Evaluate(a, time.Now()), nil)
	md := Markdown(r)
	if !strings.Contains(md, "**Result:** LOW RISK") {
		t.Error("expected LOW RISK")
	}
	if !strings.Contains(md, "None.") {
		t.Error("expected empty factor list")
	}
}

func TestText(t *testing.T) {
	text := Text(sampleReport(t, false))
	if !strings.HasPrefix(text, "HIGH RISK (score 8/10, BMI 27.3)\n") {
		t.Errorf("unexpected header: %q", text)
	}
	if !strings.Contains(text, "  +1 rare exercise\n") {
		t.Error("text missing factor line")
	}
}

func TestReportJSON(t *testing.T) {
	data, err := json.Marshal(sampleReport(t, true))
	if err != nil {
		t.Fatal(err)
	}
	var out map[string]any
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatal(err)
	}
	if out["label"] != "HIGH RISK" {
		t.Errorf("label = %v", out["label"])
	}
	rec := out["record"].(map[string]any)
	if rec["tier"] != "high" || rec["score"] != float64(8) {
		t.Errorf("record = %v", rec)
	}
	if _, ok := out["Guide"]; ok {
		t.Error("guide should not be serialized")
	}
}
