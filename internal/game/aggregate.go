package game

import (
	"sort"
	"time"

	"github.com/Montyshaa/Sumeris/internal/catalog"
	"github.com/Montyshaa/Sumeris/internal/economy"
)

// Modifier layering order is fixed: building additive, then territory
// multiplicative, then research multiplicative, then policy
// multiplicative. Everything here recomputes from committed state on
// every call; nothing is cached across ticks.

// buildingEffects returns the active effects of every committed,
// non-upgrading building, in id order.
func (e *Engine) buildingEffects() []catalog.Effect {
	ids := make([]string, 0, len(e.state.Buildings))
	for id := range e.state.Buildings {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var out []catalog.Effect
	for _, id := range ids {
		b := e.state.Buildings[id]
		if b.Upgrading {
			continue
		}
		bt, ok := e.catalog.Building(id)
		if !ok {
			continue
		}
		out = append(out, catalog.ActiveEffects(bt, b.Level)...)
	}
	return out
}

// researchEffects returns the effects of completed research in catalog
// order, which is the compounding order for rate multipliers.
func (e *Engine) researchEffects() []catalog.Effect {
	completed := e.state.CompletedResearchSet()
	var out []catalog.Effect
	for _, r := range e.catalog.ResearchList() {
		if completed[r.ID] {
			out = append(out, r.Effects...)
		}
	}
	return out
}

// policyEffects returns the effects of active policies in activation
// order.
func (e *Engine) policyEffects() []catalog.Effect {
	var out []catalog.Effect
	for _, ap := range e.state.ActivePolicies {
		p, ok := e.catalog.Policy(ap.ID)
		if !ok {
			continue
		}
		out = append(out, p.Effects...)
	}
	return out
}

func (e *Engine) modifierEffects() []catalog.Effect {
	out := e.buildingEffects()
	out = append(out, e.researchEffects()...)
	out = append(out, e.policyEffects()...)
	return out
}

// EffectiveIndices layers index bonuses onto the base vector: building
// and research bonuses summed then clamped, policy bonuses summed then
// clamped, and conditional policy effects evaluated last against the
// already-aggregated values.
func (e *Engine) EffectiveIndices() economy.Indices {
	idx := e.state.Indices

	for _, eff := range e.buildingEffects() {
		if b, ok := eff.(catalog.IndexBonus); ok {
			idx.Set(b.Index, idx.Get(b.Index)+b.Value)
		}
	}
	for _, eff := range e.researchEffects() {
		if b, ok := eff.(catalog.IndexBonus); ok {
			idx.Set(b.Index, idx.Get(b.Index)+b.Value)
		}
	}
	idx = idx.Clamp()

	for _, eff := range e.policyEffects() {
		if b, ok := eff.(catalog.IndexBonus); ok {
			idx.Set(b.Index, idx.Get(b.Index)+b.Value)
		}
	}
	idx = idx.Clamp()

	for _, eff := range e.policyEffects() {
		c, ok := eff.(catalog.Conditional)
		if !ok || idx.Get(c.Index) >= c.Threshold {
			continue
		}
		if b, ok := c.Then.(catalog.IndexBonus); ok {
			idx.Set(b.Index, idx.Get(b.Index)+b.Value)
		}
	}
	return idx.Clamp()
}

// EffectiveRates composes the per-minute production vector through the
// fixed layer order, finishing with the university talent special on
// the already-modified rate.
func (e *Engine) EffectiveRates() economy.Resources {
	rates := e.state.BaseRates

	ids := make([]string, 0, len(e.state.Buildings))
	for id := range e.state.Buildings {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		b := e.state.Buildings[id]
		if b.Upgrading {
			continue
		}
		if bt, ok := e.catalog.Building(id); ok {
			rates = rates.Add(catalog.BuildingProduction(bt, b.Level))
		}
	}

	var fractions economy.Resources
	for _, tid := range e.state.Map.Controlled {
		if t, ok := e.catalog.Territory(tid); ok {
			fractions = fractions.Add(t.BonusFractions())
		}
	}
	for _, kind := range economy.Kinds {
		if f := fractions.Get(kind); f > 0 {
			rates.Set(kind, rates.Get(kind)*(1+f))
		}
	}

	for _, eff := range e.researchEffects() {
		if m, ok := eff.(catalog.RateMultiplier); ok {
			rates.Set(m.Resource, rates.Get(m.Resource)*m.Factor)
		}
	}

	for _, eff := range e.policyEffects() {
		switch m := eff.(type) {
		case catalog.RateMultiplier:
			rates.Set(m.Resource, rates.Get(m.Resource)*m.Factor)
		case catalog.CostShift:
			// Raised upkeep drags on production; a discount does not
			// boost it.
			if m.Factor > 1 {
				rates.Set(m.Resource, rates.Get(m.Resource)*(2-m.Factor))
			}
		}
	}

	if e.state.BuildingLevel(catalog.UniversityID) >= 4 && e.EffectiveIndices().Welfare >= 70 {
		rates.Talent *= 2
	}
	return rates
}

// scopedCost folds every applicable cost multiplier from buildings,
// research and policies into the base cost, then floors to resource
// precision.
func (e *Engine) scopedCost(scope catalog.CostScope, cost economy.Resources) economy.Resources {
	for _, eff := range e.modifierEffects() {
		m, ok := eff.(catalog.CostMultiplier)
		if !ok || m.Scope != scope {
			continue
		}
		if v := cost.Get(m.Resource); v > 0 {
			cost.Set(m.Resource, v*m.Factor)
		}
	}
	return cost.Truncate()
}

// scopedDuration folds every applicable time multiplier into the base
// duration.
func (e *Engine) scopedDuration(scope catalog.CostScope, d time.Duration) time.Duration {
	factor := 1.0
	for _, eff := range e.modifierEffects() {
		if m, ok := eff.(catalog.TimeMultiplier); ok && m.Scope == scope {
			factor *= m.Factor
		}
	}
	if factor == 1 {
		return d
	}
	return time.Duration(float64(d) * factor)
}

// slotBonus sums extra queue slots granted for the scope.
func (e *Engine) slotBonus(scope catalog.CostScope) int {
	total := 0
	for _, eff := range e.modifierEffects() {
		if s, ok := eff.(catalog.SlotBonus); ok && s.Scope == scope {
			total += s.Count
		}
	}
	return total
}

// FeatureUnlocked reports whether any active modifier source grants the
// named capability.
func (e *Engine) FeatureUnlocked(name string) bool {
	for _, eff := range e.modifierEffects() {
		if f, ok := eff.(catalog.FeatureUnlock); ok && f.Feature == name {
			return true
		}
	}
	return false
}

// UnlockedFeatures reports which of the catalog's capability flags are
// currently granted, in catalog definition order.
func (e *Engine) UnlockedFeatures() []string {
	var out []string
	for _, name := range e.catalog.FeatureNames() {
		if e.FeatureUnlocked(name) {
			out = append(out, name)
		}
	}
	return out
}

// ArmyPower is the combat weight of the standing army with power
// bonuses from research and policies applied per unit type.
func (e *Engine) ArmyPower() float64 {
	total := 0.0
	for id, stack := range e.state.Units {
		ut, ok := e.catalog.Unit(id)
		if !ok || stack.Count == 0 {
			continue
		}
		power := catalog.UnitPower(ut)
		for _, eff := range e.modifierEffects() {
			if b, ok := eff.(catalog.PowerBonus); ok && (b.Unit == "" || b.Unit == id) {
				power *= b.Factor
			}
		}
		total += power * float64(stack.Count)
	}
	return total
}

// MaintenanceRate is the army's total per-minute upkeep, reported with
// the army summary; it is not deducted by the tick.
func (e *Engine) MaintenanceRate() economy.Resources {
	var total economy.Resources
	for id, stack := range e.state.Units {
		if ut, ok := e.catalog.Unit(id); ok {
			total = total.Add(ut.Stats.Maintenance.Scale(float64(stack.Count)))
		}
	}
	return total
}
