package catalog

import (
	"math"
	"time"

	"github.com/Montyshaa/Sumeris/internal/economy"
)

// Growth curves for building progression. Build time is capped at eight
// hours regardless of level.
const (
	buildCostGrowth     = 1.6
	buildTimeGrowth     = 1.5
	buildTimeCap        = 480 * time.Minute
	productionGrowth    = 1.4
	productionPrecision = 0.1
)

// LeveledEffect activates Effect once the building reaches Level.
type LeveledEffect struct {
	Level  int
	Effect Effect
}

type BuildingType struct {
	ID             string
	Name           string
	Description    string
	MaxLevel       int
	BaseCost       economy.Resources
	BaseProduction economy.Resources
	BaseMinutes    float64
	RequiresHQ     int
	LevelBenefits  map[int]string
	LevelEffects   []LeveledEffect
}

// HQID is the headquarters building; its level gates policies,
// construction slots and most unlocks.
const HQID = "hq"

// SpaceportID gates the training queue entirely: no spaceport, no slots.
const SpaceportID = "spaceport"

// UniversityID is checked by the talent-doubling special in the
// aggregator.
const UniversityID = "university"

func defaultBuildings() map[string]*BuildingType {
	buildings := []*BuildingType{
		{
			ID:          HQID,
			Name:        "Civic Nexus",
			Description: "Command center that sets the tier of your city",
			MaxLevel:    10,
			BaseCost:    economy.Resources{Materials: 100, Energy: 50, Data: 20},
			BaseMinutes: 5,
			LevelBenefits: map[int]string{
				3:  "Unlocks policies",
				5:  "Second construction queue",
				7:  "First orbit",
				10: "Second orbit",
			},
		},
		{
			ID:             "factory",
			Name:           "Modular Factory",
			Description:    "Produces materials for construction",
			MaxLevel:       10,
			BaseCost:       economy.Resources{Materials: 80, Energy: 40, Data: 10},
			BaseProduction: economy.Resources{Materials: 5},
			BaseMinutes:    10,
			RequiresHQ:     1,
			LevelBenefits: map[int]string{
				4:  "Improved warehouse protection",
				7:  "Eco mode (-10% MAT, +5% SUS)",
				10: "Incident reduction",
			},
			LevelEffects: []LeveledEffect{
				{Level: 7, Effect: IndexBonus{Index: economy.Sustainability, Value: 5}},
			},
		},
		{
			ID:             "powerPlant",
			Name:           "Solar/Fusion Plant",
			Description:    "Generates energy for the city",
			MaxLevel:       10,
			BaseCost:       economy.Resources{Materials: 120, Energy: 20, Data: 15},
			BaseProduction: economy.Resources{Energy: 8},
			BaseMinutes:    15,
			RequiresHQ:     1,
			LevelBenefits: map[int]string{
				5: "Eco mode (+8 SUS, -15% ENG for 60min)",
				8: "Storage batteries",
			},
			LevelEffects: []LeveledEffect{
				{Level: 5, Effect: IndexBonus{Index: economy.Sustainability, Value: 8}},
			},
		},
		{
			ID:             "dataCenter",
			Name:           "Data Cloud",
			Description:    "Processes data for research",
			MaxLevel:       10,
			BaseCost:       economy.Resources{Materials: 60, Energy: 80, Data: 30},
			BaseProduction: economy.Resources{Data: 4},
			BaseMinutes:    12,
			RequiresHQ:     1,
			LevelBenefits: map[int]string{
				3: "Unlocks AI Park",
				6: "Reduces DAT cost in R&D",
				9: "Preventive audits (+LEG)",
			},
			LevelEffects: []LeveledEffect{
				{Level: 6, Effect: CostMultiplier{Scope: ScopeResearch, Resource: economy.Data, Factor: 0.85}},
				{Level: 9, Effect: IndexBonus{Index: economy.Legitimacy, Value: 5}},
			},
		},
		{
			ID:             UniversityID,
			Name:           "University/Incubator",
			Description:    "Trains specialized talent",
			MaxLevel:       10,
			BaseCost:       economy.Resources{Materials: 150, Energy: 60, Data: 40, Talent: 1},
			BaseProduction: economy.Resources{Talent: 0.2},
			BaseMinutes:    20,
			RequiresHQ:     2,
			LevelBenefits: map[int]string{
				4:  "Doubles generation while WB >= 70",
				7:  "Unlocks Mediators",
				10: "Recruitment teams",
			},
		},
		{
			ID:             "socialCenter",
			Name:           "Social Center",
			Description:    "Improves welfare and generates civic credit",
			MaxLevel:       10,
			BaseCost:       economy.Resources{Materials: 90, Energy: 30, Data: 20, CivicCredit: 10},
			BaseProduction: economy.Resources{CivicCredit: 3},
			BaseMinutes:    8,
			RequiresHQ:     3,
			LevelBenefits: map[int]string{
				2: "+5 WB permanent",
				5: "+5 WB permanent",
				8: "+5 WB permanent",
			},
			LevelEffects: []LeveledEffect{
				{Level: 2, Effect: IndexBonus{Index: economy.Welfare, Value: 5}},
				{Level: 5, Effect: IndexBonus{Index: economy.Welfare, Value: 5}},
				{Level: 8, Effect: IndexBonus{Index: economy.Welfare, Value: 5}},
			},
		},
		{
			ID:          SpaceportID,
			Name:        "Spaceport",
			Description: "Trains units and reaches the orbits",
			MaxLevel:    10,
			BaseCost:    economy.Resources{Materials: 200, Energy: 100, Data: 50, Talent: 2},
			BaseMinutes: 30,
			RequiresHQ:  4,
			LevelBenefits: map[int]string{
				1:  "Trains Drones (1 slot)",
				4:  "Trains Armored units",
				5:  "Second training queue",
				7:  "Trains Corvettes",
				10: "Third training queue",
			},
			LevelEffects: []LeveledEffect{
				{Level: 3, Effect: CostMultiplier{Scope: ScopeTraining, Resource: economy.Materials, Factor: 0.9}},
				{Level: 6, Effect: TimeMultiplier{Scope: ScopeTraining, Factor: 0.85}},
				{Level: 9, Effect: FeatureUnlock{Feature: "unit_capacity"}},
			},
		},
	}

	byID := make(map[string]*BuildingType, len(buildings))
	for _, b := range buildings {
		byID[b.ID] = b
	}
	return byID
}

// BuildingCost derives the cost of upgrading to targetLevel: base cost
// times 1.6^(level-1), floored to resource precision.
func BuildingCost(b *BuildingType, targetLevel int) economy.Resources {
	multiplier := math.Pow(buildCostGrowth, float64(targetLevel-1))
	return b.BaseCost.Scale(multiplier).Truncate()
}

// BuildingTime derives the construction duration for targetLevel,
// capped at eight hours.
func BuildingTime(b *BuildingType, targetLevel int) time.Duration {
	multiplier := math.Pow(buildTimeGrowth, float64(targetLevel-1))
	d := time.Duration(b.BaseMinutes * multiplier * float64(time.Minute))
	if d > buildTimeCap {
		return buildTimeCap
	}
	return d
}

// BuildingProduction derives the per-minute output at level, floored to
// a tenth of a unit per axis. A building at level zero produces nothing.
func BuildingProduction(b *BuildingType, level int) economy.Resources {
	if level <= 0 {
		return economy.Resources{}
	}
	multiplier := math.Pow(productionGrowth, float64(level-1))
	var out economy.Resources
	for _, kind := range economy.Kinds {
		base := b.BaseProduction.Get(kind)
		if base > 0 {
			out.Set(kind, math.Floor(base*multiplier/productionPrecision+1e-9)*productionPrecision)
		}
	}
	return out
}

// ActiveBenefits returns the benefit descriptions unlocked at or below
// currentLevel, in level order.
func ActiveBenefits(b *BuildingType, currentLevel int) []string {
	var out []string
	for level := 1; level <= currentLevel; level++ {
		if text, ok := b.LevelBenefits[level]; ok {
			out = append(out, text)
		}
	}
	return out
}

// NextBenefit returns the benefit granted at currentLevel+1, if any.
func NextBenefit(b *BuildingType, currentLevel int) (string, bool) {
	text, ok := b.LevelBenefits[currentLevel+1]
	return text, ok
}

// ActiveEffects returns the building's effects unlocked at level.
func ActiveEffects(b *BuildingType, level int) []Effect {
	var out []Effect
	for _, le := range b.LevelEffects {
		if level >= le.Level {
			out = append(out, le.Effect)
		}
	}
	return out
}
