package catalog

import (
	"time"

	"github.com/Montyshaa/Sumeris/internal/economy"
)

// ResearchTree groups research entries in the UI and in progress
// summaries. It has no mechanical meaning.
type ResearchTree string

const (
	TreeSocioeconomic ResearchTree = "socioeconomic"
	TreeEcotech       ResearchTree = "ecotech"
	TreeAeroAI        ResearchTree = "aero-ai"
)

type ResearchType struct {
	ID            string
	Name          string
	Description   string
	Tree          ResearchTree
	Tier          int
	Cost          economy.Resources
	Duration      time.Duration
	Prerequisites []string
	Effects       []Effect
}

// defaultResearch returns the research catalog. Order matters: rate
// multipliers from completed research compound in this order.
func defaultResearch() []*ResearchType {
	return []*ResearchType{
		{
			ID:          "decent_housing",
			Name:        "Decent Housing",
			Description: "Improves living conditions for all citizens",
			Tree:        TreeSocioeconomic,
			Tier:        1,
			Cost:        economy.Resources{Materials: 200, Energy: 100, Data: 150, Talent: 1},
			Duration:    30 * time.Minute,
			Effects: []Effect{
				IndexBonus{Index: economy.Welfare, Value: 8},
			},
		},
		{
			ID:            "universal_healthcare",
			Name:          "Universal Healthcare",
			Description:   "A health system accessible to everyone",
			Tree:          TreeSocioeconomic,
			Tier:          2,
			Cost:          economy.Resources{Materials: 300, Energy: 200, Data: 250, Talent: 2},
			Duration:      60 * time.Minute,
			Prerequisites: []string{"decent_housing"},
			Effects: []Effect{
				IndexBonus{Index: economy.Welfare, Value: 12},
				RateMultiplier{Resource: economy.Energy, Factor: 0.95},
			},
		},
		{
			ID:            "algorithmic_transparency",
			Name:          "Algorithmic Transparency",
			Description:   "Auditable and transparent AI systems",
			Tree:          TreeSocioeconomic,
			Tier:          2,
			Cost:          economy.Resources{Materials: 150, Energy: 150, Data: 400, Talent: 2},
			Duration:      45 * time.Minute,
			Prerequisites: []string{"decent_housing"},
			Effects: []Effect{
				IndexBonus{Index: economy.Legitimacy, Value: 10},
				RateMultiplier{Resource: economy.Data, Factor: 0.95},
			},
		},
		{
			ID:            "digital_rights",
			Name:          "Digital Rights",
			Description:   "A legal framework for the digital era",
			Tree:          TreeSocioeconomic,
			Tier:          3,
			Cost:          economy.Resources{Materials: 200, Energy: 200, Data: 500, Talent: 3, CivicCredit: 50},
			Duration:      90 * time.Minute,
			Prerequisites: []string{"universal_healthcare", "algorithmic_transparency"},
			Effects: []Effect{
				IndexBonus{Index: economy.Legitimacy, Value: 15},
				IndexBonus{Index: economy.Welfare, Value: 8},
			},
		},
		{
			ID:          "recycling_i",
			Name:        "Recycling I",
			Description: "Basic recycling and reuse systems",
			Tree:        TreeEcotech,
			Tier:        1,
			Cost:        economy.Resources{Materials: 150, Energy: 150, Data: 100, Talent: 1},
			Duration:    25 * time.Minute,
			Effects: []Effect{
				IndexBonus{Index: economy.Sustainability, Value: 10},
			},
		},
		{
			ID:            "co2_capture",
			Name:          "CO2 Capture",
			Description:   "Technology to capture and store carbon",
			Tree:          TreeEcotech,
			Tier:          2,
			Cost:          economy.Resources{Materials: 400, Energy: 300, Data: 200, Talent: 2},
			Duration:      75 * time.Minute,
			Prerequisites: []string{"recycling_i"},
			Effects: []Effect{
				IndexBonus{Index: economy.Sustainability, Value: 15},
				FeatureUnlock{Feature: "green_events"},
			},
		},
		{
			ID:            "green_logistics",
			Name:          "Green Logistics",
			Description:   "Sustainable transport and distribution",
			Tree:          TreeEcotech,
			Tier:          2,
			Cost:          economy.Resources{Materials: 250, Energy: 200, Data: 150, Talent: 1},
			Duration:      50 * time.Minute,
			Prerequisites: []string{"recycling_i"},
			Effects: []Effect{
				CostMultiplier{Scope: ScopeTraining, Resource: economy.Energy, Factor: 0.85},
			},
		},
		{
			ID:            "circular_economy",
			Name:          "Circular Economy",
			Description:   "A fully regenerative economic system",
			Tree:          TreeEcotech,
			Tier:          3,
			Cost:          economy.Resources{Materials: 500, Energy: 400, Data: 300, Talent: 3, CivicCredit: 30},
			Duration:      120 * time.Minute,
			Prerequisites: []string{"co2_capture", "green_logistics"},
			Effects: []Effect{
				IndexBonus{Index: economy.Sustainability, Value: 20},
				RateMultiplier{Resource: economy.Materials, Factor: 1.10},
			},
		},
		{
			ID:          "ai_logistics",
			Name:        "AI Logistics",
			Description: "Process optimization through machine intelligence",
			Tree:        TreeAeroAI,
			Tier:        1,
			Cost:        economy.Resources{Materials: 100, Energy: 200, Data: 300, Talent: 2},
			Duration:    40 * time.Minute,
			Effects: []Effect{
				TimeMultiplier{Scope: ScopeTraining, Factor: 0.8},
			},
		},
		{
			ID:            "drones_v2",
			Name:          "Drones V2",
			Description:   "Next generation of combat drones",
			Tree:          TreeAeroAI,
			Tier:          2,
			Cost:          economy.Resources{Materials: 300, Energy: 250, Data: 400, Talent: 2},
			Duration:      80 * time.Minute,
			Prerequisites: []string{"ai_logistics"},
			Effects: []Effect{
				PowerBonus{Unit: "drone", Factor: 1.25},
			},
		},
		{
			ID:            "orbital_shields",
			Name:          "Orbital Shields",
			Description:   "Advanced space-based defensive systems",
			Tree:          TreeAeroAI,
			Tier:          2,
			Cost:          economy.Resources{Materials: 200, Energy: 300, Data: 500, Talent: 3},
			Duration:      90 * time.Minute,
			Prerequisites: []string{"ai_logistics"},
			Effects: []Effect{
				PowerBonus{Unit: "corvette", Factor: 1.3},
			},
		},
		{
			ID:            "singularity_core",
			Name:          "Singularity Core",
			Description:   "Superintelligent urban management",
			Tree:          TreeAeroAI,
			Tier:          3,
			Cost:          economy.Resources{Materials: 600, Energy: 800, Data: 1000, Talent: 5, CivicCredit: 100},
			Duration:      180 * time.Minute,
			Prerequisites: []string{"drones_v2", "orbital_shields"},
			Effects: []Effect{
				RateMultiplier{Resource: economy.Data, Factor: 1.2},
				IndexBonus{Index: economy.Legitimacy, Value: 10},
				FeatureUnlock{Feature: "ai_governor"},
			},
		},
	}
}
