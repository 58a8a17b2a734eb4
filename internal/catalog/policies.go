package catalog

import (
	"time"

	"github.com/Montyshaa/Sumeris/internal/economy"
)

type PolicyCategory string

const (
	CategorySocial        PolicyCategory = "social"
	CategoryEconomic      PolicyCategory = "economic"
	CategoryEnvironmental PolicyCategory = "environmental"
	CategorySecurity      PolicyCategory = "security"
)

// PolicyType describes an activatable policy. Cost is paid in civic
// credit on activation. A zero Duration means the policy stays active
// until deactivated by hand; Cooldown runs from the moment it ends
// either way.
type PolicyType struct {
	ID          string
	Name        string
	Description string
	Cost        float64
	Duration    time.Duration
	Cooldown    time.Duration
	Category    PolicyCategory
	Effects     []Effect
}

func defaultPolicies() []*PolicyType {
	return []*PolicyType{
		{
			ID:          "basic_income",
			Name:        "Basic Income",
			Description: "Guarantees a minimum income for every citizen. +10 WB, but +5% ENG cost and -5% MAT.",
			Cost:        50,
			Cooldown:    2 * time.Hour,
			Category:    CategorySocial,
			Effects: []Effect{
				IndexBonus{Index: economy.Welfare, Value: 10},
				CostShift{Resource: economy.Energy, Factor: 1.05},
				RateMultiplier{Resource: economy.Materials, Factor: 0.95},
			},
		},
		{
			ID:          "green_tax",
			Name:        "Green Tax",
			Description: "Rewards sustainable practices. +8 SUS, +20% CC/h, -5 LEG while WB < 60.",
			Cost:        40,
			Cooldown:    2 * time.Hour,
			Category:    CategoryEnvironmental,
			Effects: []Effect{
				IndexBonus{Index: economy.Sustainability, Value: 8},
				RateMultiplier{Resource: economy.CivicCredit, Factor: 1.2},
				Conditional{
					Index:     economy.Welfare,
					Threshold: 60,
					Then:      IndexBonus{Index: economy.Legitimacy, Value: -5},
				},
			},
		},
		{
			ID:          "ai_audit",
			Name:        "AI Audit",
			Description: "Oversees machine intelligence systems. +12 LEG, +12% DAT cost, fewer incidents.",
			Cost:        60,
			Cooldown:    2 * time.Hour,
			Category:    CategorySecurity,
			Effects: []Effect{
				IndexBonus{Index: economy.Legitimacy, Value: 12},
				CostShift{Resource: economy.Data, Factor: 1.12},
				FeatureUnlock{Feature: "incident_reduction"},
			},
		},
		{
			ID:          "active_neutrality",
			Name:        "Active Neutrality",
			Description: "A non-aggression stance. +10 LEG, +10% defense for 2h, attacks disabled.",
			Cost:        30,
			Duration:    2 * time.Hour,
			Cooldown:    4 * time.Hour,
			Category:    CategorySecurity,
			Effects: []Effect{
				IndexBonus{Index: economy.Legitimacy, Value: 10},
				PowerBonus{Factor: 1.1},
				FeatureUnlock{Feature: "attacks_disabled"},
			},
		},
		{
			ID:          "innovation_boost",
			Name:        "Innovation Boost",
			Description: "Accelerates technological development. -20% research time, +15% talent cost.",
			Cost:        80,
			Duration:    3 * time.Hour,
			Cooldown:    6 * time.Hour,
			Category:    CategoryEconomic,
			Effects: []Effect{
				TimeMultiplier{Scope: ScopeResearch, Factor: 0.8},
				CostShift{Resource: economy.Talent, Factor: 1.15},
			},
		},
		{
			ID:          "energy_rationing",
			Name:        "Energy Rationing",
			Description: "Conserves power through hard times. -30% ENG consumption, -8 WB, +5 SUS.",
			Cost:        25,
			Cooldown:    3 * time.Hour,
			Category:    CategoryEnvironmental,
			Effects: []Effect{
				CostShift{Resource: economy.Energy, Factor: 0.7},
				IndexBonus{Index: economy.Welfare, Value: -8},
				IndexBonus{Index: economy.Sustainability, Value: 5},
			},
		},
		{
			ID:          "social_programs",
			Name:        "Social Programs",
			Description: "Invests in citizen welfare. +15 WB, -25% CC production, +10% MAT cost.",
			Cost:        70,
			Cooldown:    2 * time.Hour,
			Category:    CategorySocial,
			Effects: []Effect{
				IndexBonus{Index: economy.Welfare, Value: 15},
				RateMultiplier{Resource: economy.CivicCredit, Factor: 0.75},
				CostShift{Resource: economy.Materials, Factor: 1.1},
			},
		},
		{
			ID:          "surveillance_state",
			Name:        "Surveillance State",
			Description: "Tightens social control. +8 LEG, -12 WB, +20% DAT production.",
			Cost:        90,
			Cooldown:    4 * time.Hour,
			Category:    CategorySecurity,
			Effects: []Effect{
				IndexBonus{Index: economy.Legitimacy, Value: 8},
				IndexBonus{Index: economy.Welfare, Value: -12},
				RateMultiplier{Resource: economy.Data, Factor: 1.2},
			},
		},
	}
}
