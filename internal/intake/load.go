package intake

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile reads a YAML document mapping field names to answers.
// Unknown keys are rejected; missing keys are left for Validate to report.
func LoadFile(path string) (Raw, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("intake.LoadFile: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML answers. Numeric scalars are kept as their source text.
func Parse(data []byte) (Raw, error) {
	var doc map[string]string
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("intake.Parse: %w", err)
	}
	raw := make(Raw, len(doc))
	for k, v := range doc {
		f := Field(k)
		if !f.Valid() {
			return nil, fmt.Errorf("intake.Parse: unknown field %q", k)
		}
		raw[f] = v
	}
	return raw, nil
}
