package game

import (
	"math/rand"
	"time"

	"github.com/Montyshaa/Sumeris/internal/catalog"
	"github.com/Montyshaa/Sumeris/internal/economy"
)

// ScoutReport is a read-only snapshot of a territory, with noisy
// estimates for everything the player has no hard intel on.
type ScoutReport struct {
	TerritoryID    string            `json:"territory_id"`
	ScoutedAt      time.Time         `json:"scouted_at"`
	EstimatedPower float64           `json:"estimated_power"`
	Resources      economy.Resources `json:"resources"`
	DefenseInfo    string            `json:"defense_info"`
}

// ExploreTerritory pays the exploration cost and grants the one-time
// reward. Exploring is a one-way transition; a second call is a no-op
// failure.
func (e *Engine) ExploreTerritory(territoryID string) bool {
	t, ok := e.catalog.Territory(territoryID)
	if !ok {
		return false
	}
	if e.state.IsExplored(territoryID) {
		return false
	}
	cost := t.ExplorationCost()
	if !e.state.Resources.Covers(cost) {
		return false
	}

	e.state.Resources = e.state.Resources.Sub(cost).ClampZero()
	e.state.Resources = e.state.Resources.Add(t.ExplorationReward()).ClampZero()
	e.state.Map.Explored = append(e.state.Map.Explored, territoryID)
	return true
}

// ControlTerritory takes control of an explored territory. Control is
// a flag flip with a cost, not a combat resolution.
func (e *Engine) ControlTerritory(territoryID string) bool {
	t, ok := e.catalog.Territory(territoryID)
	if !ok {
		return false
	}
	if !e.state.IsExplored(territoryID) || e.state.IsControlled(territoryID) {
		return false
	}
	cost := t.ControlCost()
	if !e.state.Resources.Covers(cost) {
		return false
	}

	e.state.Resources = e.state.Resources.Sub(cost).ClampZero()
	e.state.Map.Controlled = append(e.state.Map.Controlled, territoryID)
	if e.state.Map.ControlledAt == nil {
		e.state.Map.ControlledAt = map[string]time.Time{}
	}
	e.state.Map.ControlledAt[territoryID] = e.clock.Now()
	return true
}

// IsOrbitUnlocked reports whether the headquarters level has reached
// the orbit's requirement.
func (e *Engine) IsOrbitUnlocked(orbitID string) bool {
	orbit, ok := e.catalog.Orbit(orbitID)
	if !ok {
		return false
	}
	return e.state.BuildingLevel(catalog.HQID) >= orbit.RequiresHQ
}

// ScoutTerritory builds a randomized report. It reads no player funds
// and mutates nothing; a nil return means the territory id is unknown.
func (e *Engine) ScoutTerritory(territoryID string) *ScoutReport {
	t, ok := e.catalog.Territory(territoryID)
	if !ok {
		return nil
	}

	estimate := economy.Resources{
		Materials:   rand.Float64() * 100,
		Energy:      rand.Float64() * 80,
		Data:        rand.Float64() * 50,
		Talent:      rand.Float64() * 2,
		CivicCredit: rand.Float64() * 30,
	}
	switch t.Bonus {
	case catalog.BonusMaterials:
		estimate.Materials = t.BonusValue * 10
	case catalog.BonusEnergy:
		estimate.Energy = t.BonusValue * 8
	case catalog.BonusData:
		estimate.Data = t.BonusValue * 5
	case catalog.BonusTalent:
		estimate.Talent = t.BonusValue * 0.1
	}

	return &ScoutReport{
		TerritoryID:    territoryID,
		ScoutedAt:      e.clock.Now(),
		EstimatedPower: float64(t.DefenseLevel)*100 + rand.Float64()*50,
		Resources:      estimate,
		DefenseInfo:    t.DefenseDescription(),
	}
}
