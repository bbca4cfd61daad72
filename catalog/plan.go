package catalog

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"gear-optimizer/gear"
)

// Plan is a user-edited loadout and the properties to optimize for.
type Plan struct {
	Name              string            `yaml:"name" json:"name"`
	Level             int               `yaml:"level" json:"level"`
	Priorities        []string          `yaml:"priorities" json:"priorities"`
	ExcludeSetOptions bool              `yaml:"excludeSetOptions" json:"excludeSetOptions"`
	Loadout           map[string]string `yaml:"loadout" json:"loadout"` // slot key -> item name
}

type planFile struct {
	Plans []Plan `yaml:"plans"`
}

// LoadPlans reads a plan file.
func LoadPlans(path string) ([]Plan, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	plans, err := ParsePlans(raw)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return plans, nil
}

// ParsePlans decodes YAML (or JSON) holding either a "plans" list or a single
// plan, and checks every loadout key.
func ParsePlans(raw []byte) ([]Plan, error) {
	var f planFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, err
	}
	if len(f.Plans) == 0 {
		var p Plan
		if err := yaml.Unmarshal(raw, &p); err != nil {
			return nil, err
		}
		if p.Name == "" && len(p.Loadout) == 0 && len(p.Priorities) == 0 {
			return nil, errors.New("no plans")
		}
		f.Plans = []Plan{p}
	}
	for i := range f.Plans {
		p := &f.Plans[i]
		if p.Name == "" {
			p.Name = fmt.Sprintf("plan-%d", i+1)
		}
		for key := range p.Loadout {
			if _, ok := gear.ParseSlotKey(key); !ok {
				return nil, fmt.Errorf("plan %q: unknown slot %q", p.Name, key)
			}
		}
	}
	return f.Plans, nil
}

// FindPlan returns the plan with the given name, or nil if not found.
func FindPlan(plans []Plan, name string) *Plan {
	for i := range plans {
		if plans[i].Name == name {
			return &plans[i]
		}
	}
	return nil
}
