// Package advice loads the built-in guidance shown after an assessment.
package advice

import (
	"embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

// DefaultName is the guide shown when none is configured.
const DefaultName = "general"

// Guide is a titled list of suggestion sections.
type Guide struct {
	Name       string    `yaml:"name"`
	Version    int       `yaml:"version"`
	Title      string    `yaml:"title"`
	Sections   []Section `yaml:"sections"`
	Disclaimer string    `yaml:"disclaimer"`
}

// Section groups related suggestions under a heading.
type Section struct {
	Heading string   `yaml:"heading"`
	Items   []string `yaml:"items"`
}

// LoadBuiltin loads a built-in guide by name.
func LoadBuiltin(name string) (*Guide, error) {
	data, err := builtinFS.ReadFile("builtin/" + name + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("advice.LoadBuiltin: unknown guide %q: %w", name, err)
	}
	var g Guide
	if err := yaml.Unmarshal(data, &g); err != nil {
		return nil, fmt.Errorf("advice.LoadBuiltin: parse %q: %w", name, err)
	}
	return &g, nil
}

// List returns the names of all built-in guides.
func List() ([]string, error) {
	entries, err := builtinFS.ReadDir("builtin")
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if n, ok := strings.CutSuffix(e.Name(), ".yaml"); ok {
			names = append(names, n)
		}
	}
	return names, nil
}

// Format renders the guide as plain text with bullet items.
func Format(g *Guide) string {
	var b strings.Builder
	for i, s := range g.Sections {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%s:\n", s.Heading)
		for _, item := range s.Items {
			fmt.Fprintf(&b, "• %s\n", item)
		}
	}
	if g.Disclaimer != "" {
		fmt.Fprintf(&b, "\n⚠ %s\n", g.Disclaimer)
	}
	return b.String()
}
