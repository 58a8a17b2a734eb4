package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Montyshaa/Sumeris/internal/economy"
)

// resourceOverride mirrors economy.Resources with pointer fields so an
// omitted axis keeps its built-in value.
type resourceOverride struct {
	Materials   *float64 `yaml:"materials"`
	Energy      *float64 `yaml:"energy"`
	Data        *float64 `yaml:"data"`
	Talent      *float64 `yaml:"talent"`
	CivicCredit *float64 `yaml:"civic_credit"`
}

func (o *resourceOverride) apply(r *economy.Resources) {
	if o == nil {
		return
	}
	if o.Materials != nil {
		r.Materials = *o.Materials
	}
	if o.Energy != nil {
		r.Energy = *o.Energy
	}
	if o.Data != nil {
		r.Data = *o.Data
	}
	if o.Talent != nil {
		r.Talent = *o.Talent
	}
	if o.CivicCredit != nil {
		r.CivicCredit = *o.CivicCredit
	}
}

type buildingOverride struct {
	MaxLevel       *int              `yaml:"max_level"`
	BaseCost       *resourceOverride `yaml:"base_cost"`
	BaseProduction *resourceOverride `yaml:"base_production"`
	BaseMinutes    *float64          `yaml:"base_minutes"`
	RequiresHQ     *int              `yaml:"requires_hq"`
}

type researchOverride struct {
	Cost    *resourceOverride `yaml:"cost"`
	Minutes *float64          `yaml:"minutes"`
}

type policyOverride struct {
	Cost            *float64 `yaml:"cost"`
	DurationMinutes *float64 `yaml:"duration_minutes"`
	CooldownMinutes *float64 `yaml:"cooldown_minutes"`
}

type unitOverride struct {
	Cost            *resourceOverride `yaml:"cost"`
	TrainingMinutes *float64          `yaml:"training_minutes"`
}

// tuningFile is the shape of tuning.yaml. Every section and field is
// optional; only what is present overrides the built-in catalog.
type tuningFile struct {
	Buildings map[string]buildingOverride `yaml:"buildings"`
	Research  map[string]researchOverride `yaml:"research"`
	Policies  map[string]policyOverride   `yaml:"policies"`
	Units     map[string]unitOverride     `yaml:"units"`
}

// Load returns the default catalog with tuning overrides from dir
// applied. An empty dir or a missing tuning.yaml yields the built-in
// values; a present but malformed file is an error, silent fallback
// would hide broken tuning in production.
func Load(dir string) (*Catalog, error) {
	c := Default()
	if dir == "" {
		return c, nil
	}

	path := filepath.Join(dir, "tuning.yaml")
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return c, nil
		}
		return nil, err
	}

	var tuning tuningFile
	if err := yaml.Unmarshal(raw, &tuning); err != nil {
		return nil, fmt.Errorf("tuning.yaml: %w", err)
	}
	if err := c.applyTuning(&tuning); err != nil {
		return nil, fmt.Errorf("tuning.yaml: %w", err)
	}
	return c, nil
}

func (c *Catalog) applyTuning(t *tuningFile) error {
	for id, o := range t.Buildings {
		b, ok := c.buildings[id]
		if !ok {
			return fmt.Errorf("unknown building %q", id)
		}
		if o.MaxLevel != nil {
			b.MaxLevel = *o.MaxLevel
		}
		o.BaseCost.apply(&b.BaseCost)
		o.BaseProduction.apply(&b.BaseProduction)
		if o.BaseMinutes != nil {
			b.BaseMinutes = *o.BaseMinutes
		}
		if o.RequiresHQ != nil {
			b.RequiresHQ = *o.RequiresHQ
		}
	}

	for id, o := range t.Research {
		r, ok := c.researchIDs[id]
		if !ok {
			return fmt.Errorf("unknown research %q", id)
		}
		o.Cost.apply(&r.Cost)
		if o.Minutes != nil {
			r.Duration = time.Duration(*o.Minutes * float64(time.Minute))
		}
	}

	for id, o := range t.Policies {
		p, ok := c.policyIDs[id]
		if !ok {
			return fmt.Errorf("unknown policy %q", id)
		}
		if o.Cost != nil {
			p.Cost = *o.Cost
		}
		if o.DurationMinutes != nil {
			p.Duration = time.Duration(*o.DurationMinutes * float64(time.Minute))
		}
		if o.CooldownMinutes != nil {
			p.Cooldown = time.Duration(*o.CooldownMinutes * float64(time.Minute))
		}
	}

	for id, o := range t.Units {
		u, ok := c.units[id]
		if !ok {
			return fmt.Errorf("unknown unit %q", id)
		}
		o.Cost.apply(&u.Cost)
		if o.TrainingMinutes != nil {
			u.TrainingMinutes = *o.TrainingMinutes
		}
	}

	return nil
}
