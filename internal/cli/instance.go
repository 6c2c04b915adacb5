package cli

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/rentdiv/report"
)

// InstanceFile is the on-disk form of one rent-division problem.
// JSON files decode too: JSON is a subset of YAML.
type InstanceFile struct {
	Rent       *float64    `yaml:"rent"`
	Agents     []string    `yaml:"agents,omitempty"`
	Items      []string    `yaml:"items,omitempty"`
	Valuations [][]float64 `yaml:"valuations"`
}

// Labels returns the agent and item names for report rendering.
func (f InstanceFile) Labels() report.Labels {
	return report.Labels{Agents: f.Agents, Items: f.Items}
}

// LoadInstance reads and decodes path. Unknown keys are rejected. A missing
// rent is an error unless rentOverride is non-nil.
func LoadInstance(path string, rentOverride *float64) (InstanceFile, float64, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return InstanceFile{}, 0, err
	}

	var f InstanceFile
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err = dec.Decode(&f); err != nil {
		return InstanceFile{}, 0, fmt.Errorf("%s: %w", path, err)
	}

	switch {
	case rentOverride != nil:
		return f, *rentOverride, nil
	case f.Rent == nil:
		return InstanceFile{}, 0, fmt.Errorf("%s: missing rent", path)
	default:
		return f, *f.Rent, nil
	}
}
