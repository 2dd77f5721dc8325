package harness

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario defines a conformance test scenario.
// A scenario scripts a sequence of key transitions against a fresh
// engine and asserts on the chord lines it emits.
type Scenario struct {
	// Name uniquely identifies this scenario. It doubles as the golden
	// file name.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Capacity overrides the engine's pressed-key capacity.
	// Zero means the default (16).
	Capacity int `yaml:"capacity,omitempty"`

	// Steps is the scripted sequence of key transitions. Key names are
	// resolved through the default keysym table.
	Steps []Step `yaml:"steps"`

	// Emits lists the chord lines the engine is expected to emit, in
	// order. Scenarios that expect silence use an explicit empty list.
	Emits []string `yaml:"emits"`
}

// Step is a single key transition: exactly one of Press or Release
// names the key.
type Step struct {
	Press   string `yaml:"press,omitempty"`
	Release string `yaml:"release,omitempty"`
}

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed, contains
// unknown fields (typos), or is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	// Strict field validation catches typos like "emit:" vs "emits:"
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &scenario, nil
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}

	if s.Description == "" {
		return fmt.Errorf("description is required")
	}

	if s.Capacity < 0 {
		return fmt.Errorf("capacity must be non-negative")
	}

	if len(s.Steps) == 0 {
		return fmt.Errorf("steps list is required and must be non-empty")
	}

	for i, step := range s.Steps {
		switch {
		case step.Press == "" && step.Release == "":
			return fmt.Errorf("steps[%d]: one of press or release is required", i)
		case step.Press != "" && step.Release != "":
			return fmt.Errorf("steps[%d]: press and release are mutually exclusive", i)
		}
	}

	if s.Emits == nil {
		return fmt.Errorf("emits is required (use [] when no chords are expected)")
	}

	return nil
}
