// Package catalog holds the static game data: building, research,
// policy, unit, territory and mission definitions, plus the pure
// derivation functions for costs, durations and production curves.
// Runtime state never lives here.
package catalog

import "sort"

// Catalog bundles every definition table. Build one with Default and
// optionally layer YAML overrides on top with Load; afterwards treat it
// as immutable.
type Catalog struct {
	buildings   map[string]*BuildingType
	research    []*ResearchType
	researchIDs map[string]*ResearchType
	policies    []*PolicyType
	policyIDs   map[string]*PolicyType
	units       map[string]*UnitType
	territories []*TerritoryType
	districtIDs map[string]*TerritoryType
	orbits      []*OrbitType
	missions    []*MissionType
	missionIDs  map[string]*MissionType
}

// Default returns the built-in catalog.
func Default() *Catalog {
	c := &Catalog{
		buildings:   defaultBuildings(),
		research:    defaultResearch(),
		policies:    defaultPolicies(),
		units:       defaultUnits(),
		territories: defaultTerritories(),
		orbits:      defaultOrbits(),
		missions:    defaultMissions(),
	}
	c.reindex()
	return c
}

func (c *Catalog) reindex() {
	c.researchIDs = make(map[string]*ResearchType, len(c.research))
	for _, r := range c.research {
		c.researchIDs[r.ID] = r
	}
	c.policyIDs = make(map[string]*PolicyType, len(c.policies))
	for _, p := range c.policies {
		c.policyIDs[p.ID] = p
	}
	c.districtIDs = make(map[string]*TerritoryType, len(c.territories))
	for _, t := range c.territories {
		c.districtIDs[t.ID] = t
	}
	c.missionIDs = make(map[string]*MissionType, len(c.missions))
	for _, m := range c.missions {
		c.missionIDs[m.ID] = m
	}
}

func (c *Catalog) Building(id string) (*BuildingType, bool) {
	b, ok := c.buildings[id]
	return b, ok
}

// Buildings returns every building type sorted by ID for stable
// iteration.
func (c *Catalog) Buildings() []*BuildingType {
	out := make([]*BuildingType, 0, len(c.buildings))
	for _, b := range c.buildings {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (c *Catalog) Research(id string) (*ResearchType, bool) {
	r, ok := c.researchIDs[id]
	return r, ok
}

// ResearchList returns the research entries in catalog order.
func (c *Catalog) ResearchList() []*ResearchType {
	return c.research
}

func (c *Catalog) ResearchByTree(tree ResearchTree) []*ResearchType {
	var out []*ResearchType
	for _, r := range c.research {
		if r.Tree == tree {
			out = append(out, r)
		}
	}
	return out
}

// AvailableResearch returns entries not yet completed whose
// prerequisites are all satisfied.
func (c *Catalog) AvailableResearch(completed map[string]bool) []*ResearchType {
	var out []*ResearchType
	for _, r := range c.research {
		if completed[r.ID] {
			continue
		}
		eligible := true
		for _, prereq := range r.Prerequisites {
			if !completed[prereq] {
				eligible = false
				break
			}
		}
		if eligible {
			out = append(out, r)
		}
	}
	return out
}

func (c *Catalog) Policy(id string) (*PolicyType, bool) {
	p, ok := c.policyIDs[id]
	return p, ok
}

func (c *Catalog) Policies() []*PolicyType {
	return c.policies
}

func (c *Catalog) PoliciesByCategory(category PolicyCategory) []*PolicyType {
	var out []*PolicyType
	for _, p := range c.policies {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

func (c *Catalog) Unit(id string) (*UnitType, bool) {
	u, ok := c.units[id]
	return u, ok
}

// Units returns every unit type sorted by ID.
func (c *Catalog) Units() []*UnitType {
	out := make([]*UnitType, 0, len(c.units))
	for _, u := range c.units {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (c *Catalog) Territory(id string) (*TerritoryType, bool) {
	t, ok := c.districtIDs[id]
	return t, ok
}

func (c *Catalog) Territories() []*TerritoryType {
	return c.territories
}

func (c *Catalog) Orbits() []*OrbitType {
	return c.orbits
}

func (c *Catalog) Orbit(id string) (*OrbitType, bool) {
	for _, o := range c.orbits {
		if o.ID == id {
			return o, true
		}
	}
	return nil, false
}

// FeatureNames returns every capability flag declared by an effect
// anywhere in the catalog, deduplicated in definition order.
func (c *Catalog) FeatureNames() []string {
	seen := make(map[string]bool)
	var out []string
	add := func(eff Effect) {
		if f, ok := eff.(FeatureUnlock); ok && !seen[f.Feature] {
			seen[f.Feature] = true
			out = append(out, f.Feature)
		}
	}
	for _, b := range c.Buildings() {
		for _, le := range b.LevelEffects {
			add(le.Effect)
		}
	}
	for _, r := range c.research {
		for _, eff := range r.Effects {
			add(eff)
		}
	}
	for _, p := range c.policies {
		for _, eff := range p.Effects {
			add(eff)
		}
	}
	return out
}

func (c *Catalog) Mission(id string) (*MissionType, bool) {
	m, ok := c.missionIDs[id]
	return m, ok
}

func (c *Catalog) Missions() []*MissionType {
	return c.missions
}

// MissionsByDay returns the day's missions in display order.
func (c *Catalog) MissionsByDay(day int) []*MissionType {
	var out []*MissionType
	for _, m := range c.missions {
		if m.Day == day {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out
}
