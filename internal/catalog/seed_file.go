package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/saladbowl/saladbowl-backend/internal/types"
)

type seedFile struct {
	Modules  []types.Module  `yaml:"modules"`
	Journeys []types.Journey `yaml:"journeys"`
}

// LoadSeedFile reads a YAML catalog seed. Module ids must be unique and every
// enum field valid; a bad file is rejected whole rather than partially loaded.
func LoadSeedFile(path string) ([]types.Module, []types.Journey, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read seed file: %w", err)
	}
	var sf seedFile
	if err := yaml.Unmarshal(raw, &sf); err != nil {
		return nil, nil, fmt.Errorf("parse seed file: %w", err)
	}

	seen := map[string]bool{}
	for _, m := range sf.Modules {
		if m.ID == "" {
			return nil, nil, fmt.Errorf("seed module %q has no id", m.Title)
		}
		if seen[m.ID] {
			return nil, nil, fmt.Errorf("duplicate module id %q in seed file", m.ID)
		}
		seen[m.ID] = true
		if !m.AgeLevel.Valid() {
			return nil, nil, fmt.Errorf("module %q: invalid ageLevel %q", m.ID, m.AgeLevel)
		}
		if !m.ContentType.Valid() {
			return nil, nil, fmt.Errorf("module %q: invalid contentType %q", m.ID, m.ContentType)
		}
		if !m.EnergyLevel.Valid() {
			return nil, nil, fmt.Errorf("module %q: invalid energyLevel %q", m.ID, m.EnergyLevel)
		}
		if m.DurationMinutes <= 0 {
			return nil, nil, fmt.Errorf("module %q: durationMinutes must be positive", m.ID)
		}
	}
	for _, j := range sf.Journeys {
		for _, id := range j.OrderedModuleIDs {
			if !seen[id] {
				return nil, nil, fmt.Errorf("journey %q references unknown module %q", j.ID, id)
			}
		}
	}
	return sf.Modules, sf.Journeys, nil
}
