// Package render produces text, Markdown and JSON reports from an assessment.
package render

import (
	"fmt"
	"strings"

	"github.com/dshills/pcoscare/internal/advice"
	"github.com/dshills/pcoscare/internal/assessment"
)

// Report is the one-shot output of the assess command.
type Report struct {
	Tool     string              `json:"tool"`
	Version  string              `json:"version"`
	Record   assessment.Record   `json:"record"`
	Label    string              `json:"label"`
	MaxScore int                 `json:"max_score"`
	BMI      float64             `json:"bmi"`
	Factors  []assessment.Factor `json:"factors"`
	Guide    *advice.Guide       `json:"-"`
}

// NewReport assembles a report. guide may be nil.
func NewReport(version string, a assessment.Answers, rec assessment.Record, guide *advice.Guide) Report {
	factors := assessment.Factors(a)
	if factors == nil {
		factors = []assessment.Factor{}
	}
	return Report{
		Tool:     "pcoscare",
		Version:  version,
		Record:   rec,
		Label:    rec.Tier.Label(),
		MaxScore: assessment.MaxScore,
		BMI:      a.BMI(),
		Factors:  factors,
		Guide:    guide,
	}
}

// Markdown renders a report as a Markdown document.
func Markdown(r Report) string {
	var b strings.Builder

	b.WriteString("# PCOS Risk Assessment\n\n")
	fmt.Fprintf(&b, "**Result:** %s\n", r.Label)
	fmt.Fprintf(&b, "**Score:** %d / %d\n", r.Record.Score, r.MaxScore)
	fmt.Fprintf(&b, "**BMI:** %.1f\n\n", r.BMI)

	b.WriteString("## Contributing Factors\n\n")
	if len(r.Factors) == 0 {
		b.WriteString("None.\n\n")
	} else {
		for _, f := range r.Factors {
			fmt.Fprintf(&b, "- %s (+%d)\n", f.Name, f.Weight)
		}
		b.WriteString("\n")
	}

	if r.Guide != nil {
		fmt.Fprintf(&b, "## %s\n\n", r.Guide.Title)
		for _, s := range r.Guide.Sections {
			fmt.Fprintf(&b, "### %s\n\n", s.Heading)
			for _, item := range s.Items {
				fmt.Fprintf(&b, "- %s\n", item)
			}
			b.WriteString("\n")
		}
		if r.Guide.Disclaimer != "" {
			fmt.Fprintf(&b, "> %s\n", r.Guide.Disclaimer)
		}
	}

	return b.String()
}

// Text renders a report for a plain terminal.
func Text(r Report) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s (score %d/%d, BMI %.1f)\n", r.Label, r.Record.Score, r.MaxScore, r.BMI)
	for _, f := range r.Factors {
		fmt.Fprintf(&b, "  +%d %s\n", f.Weight, f.Name)
	}
	if r.Guide != nil {
		b.WriteString("\n")
		b.WriteString(advice.Format(r.Guide))
	}

	return b.String()
}
