package catalog

import (
	"math"
	"time"

	"github.com/Montyshaa/Sumeris/internal/economy"
)

// trainingBatchFactor is the economy-of-scale discount on batch
// training time.
const trainingBatchFactor = 0.8

// UnitStats are per-unit combat and upkeep numbers. Maintenance is a
// per-minute upkeep figure reported with the army summary.
type UnitStats struct {
	Attack      float64
	Defense     float64
	Speed       float64
	Capacity    float64
	Maintenance economy.Resources
}

type UnitType struct {
	ID              string
	Name            string
	Description     string
	Cost            economy.Resources
	TrainingMinutes float64
	RequiresLevel   map[string]int
	Stats           UnitStats
	Abilities       []string
}

func defaultUnits() map[string]*UnitType {
	units := []*UnitType{
		{
			ID:              "drone",
			Name:            "Light Drones",
			Description:     "Cheap, fast units suited to reconnaissance and resource raids.",
			Cost:            economy.Resources{Materials: 50, Energy: 30, Data: 10},
			TrainingMinutes: 15,
			RequiresLevel:   map[string]int{SpaceportID: 1},
			Stats: UnitStats{
				Attack:      25,
				Defense:     15,
				Speed:       90,
				Capacity:    20,
				Maintenance: economy.Resources{Energy: 2},
			},
			Abilities: []string{
				"Plunder +10%: gain 10% more resources on successful attacks",
				"High speed: moves faster than other units",
				"Fragile: vulnerable to anti-air defenses",
			},
		},
		{
			ID:              "armored",
			Name:            "Urban Armor",
			Description:     "Heavy units specialized in assault and breaking fortifications.",
			Cost:            economy.Resources{Materials: 150, Energy: 80, Data: 20, Talent: 1},
			TrainingMinutes: 45,
			RequiresLevel:   map[string]int{SpaceportID: 4},
			Stats: UnitStats{
				Attack:      80,
				Defense:     70,
				Speed:       40,
				Capacity:    50,
				Maintenance: economy.Resources{Materials: 2, Energy: 5},
			},
			Abilities: []string{
				"Anti-fortification: +50% damage against defenses",
				"Heavy plating: resistant to light attacks",
				"Slow: reduced speed in combat",
			},
		},
		{
			ID:              "mediator",
			Name:            "Mediators",
			Description:     "Diplomatic specialists who soften penalties and attract talent.",
			Cost:            economy.Resources{Materials: 80, Energy: 40, Data: 60, Talent: 2, CivicCredit: 10},
			TrainingMinutes: 60,
			RequiresLevel:   map[string]int{UniversityID: 7},
			Stats: UnitStats{
				Attack:      20,
				Defense:     30,
				Speed:       60,
				Capacity:    10,
				Maintenance: economy.Resources{Energy: 1, Data: 2, CivicCredit: 1},
			},
			Abilities: []string{
				"Diplomacy: reduces legitimacy penalties on attacks",
				"Recruitment: +25% chance to capture enemy talent",
				"Support: improves morale of other units",
			},
		},
		{
			ID:              "corvette",
			Name:            "Orbital Corvettes",
			Description:     "Spacecraft that dominate the orbits and grant air superiority.",
			Cost:            economy.Resources{Materials: 300, Energy: 200, Data: 150, Talent: 3},
			TrainingMinutes: 120,
			RequiresLevel:   map[string]int{SpaceportID: 7},
			Stats: UnitStats{
				Attack:      120,
				Defense:     90,
				Speed:       100,
				Capacity:    80,
				Maintenance: economy.Resources{Materials: 5, Energy: 10, Data: 3},
			},
			Abilities: []string{
				"Orbital: can attack from the orbits",
				"Air superiority: +30% damage against drones",
				"Defensive aura: +15% defense to controlled districts",
			},
		},
	}

	byID := make(map[string]*UnitType, len(units))
	for _, u := range units {
		byID[u.ID] = u
	}
	return byID
}

// UnitCost is linear in quantity; there is no bulk discount on
// resources, only on time.
func UnitCost(u *UnitType, quantity int) economy.Resources {
	return u.Cost.Scale(float64(quantity))
}

// TrainingTime derives the batch duration, rounded up to a whole
// minute.
func TrainingTime(u *UnitType, quantity int) time.Duration {
	minutes := math.Ceil(u.TrainingMinutes * float64(quantity) * trainingBatchFactor)
	return time.Duration(minutes) * time.Minute
}

// UnitPower is the combat weight of a single unit, the mean of attack
// and defense.
func UnitPower(u *UnitType) float64 {
	return (u.Stats.Attack + u.Stats.Defense) / 2
}
