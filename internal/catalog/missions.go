package catalog

import (
	"time"

	"github.com/Montyshaa/Sumeris/internal/economy"
)

// Objective is the closed set of mission goal kinds. The engine
// computes progress per kind; adding a kind without handling it is a
// compile-visible gap in the progress switch.
type Objective interface {
	objective()
}

// ReachBuildingLevel completes when the named building reaches Level.
type ReachBuildingLevel struct {
	Building string
	Level    int
}

// ReachIndex completes while the aggregated index is at or above Value.
type ReachIndex struct {
	Index economy.IndexKind
	Value float64
}

// ProduceResource completes once Amount of the resource has been
// produced since the mission started, spending not counted against it.
type ProduceResource struct {
	Resource economy.Kind
	Amount   float64
}

// ExploreTerritories completes after exploring Count districts.
type ExploreTerritories struct {
	Count int
}

// ControlTerritories completes after taking control of Count districts.
type ControlTerritories struct {
	Count int
}

// HoldTerritory completes once any single district has been held
// continuously for Duration.
type HoldTerritory struct {
	Duration time.Duration
}

// TrainUnits completes after training Count units of the given type.
type TrainUnits struct {
	Unit  string
	Count int
}

// CompleteResearch completes when the research entry is finished.
type CompleteResearch struct {
	Research string
}

// ActivatePolicy completes when the policy is active.
type ActivatePolicy struct {
	Policy string
}

func (ReachBuildingLevel) objective() {}
func (ReachIndex) objective()         {}
func (ProduceResource) objective()    {}
func (ExploreTerritories) objective() {}
func (ControlTerritories) objective() {}
func (HoldTerritory) objective()      {}
func (TrainUnits) objective()         {}
func (CompleteResearch) objective()   {}
func (ActivatePolicy) objective()     {}

// MissionReward is granted once on completion. Special is a cosmetic
// marker with no mechanical effect.
type MissionReward struct {
	Resources economy.Resources
	Indices   map[economy.IndexKind]float64
	Special   string
}

// MissionType is a tutorial mission. Missions unlock by Day and are
// displayed in Order within a day.
type MissionType struct {
	ID          string
	Name        string
	Description string
	Day         int
	Order       int
	Objective   Objective
	Reward      MissionReward
}

// TutorialDays is the number of scripted onboarding days.
const TutorialDays = 3

func defaultMissions() []*MissionType {
	return []*MissionType{
		{
			ID:          "day1_upgrade_factory",
			Name:        "Expand Production",
			Description: "Upgrade the Modular Factory to level 2 to boost materials output",
			Day:         1,
			Order:       1,
			Objective:   ReachBuildingLevel{Building: "factory", Level: 2},
			Reward:      MissionReward{Resources: economy.Resources{Materials: 300}},
		},
		{
			ID:          "day1_welfare_target",
			Name:        "Citizen Welfare",
			Description: "Reach a welfare level of 55 to keep the population content",
			Day:         1,
			Order:       2,
			Objective:   ReachIndex{Index: economy.Welfare, Value: 55},
			Reward:      MissionReward{Resources: economy.Resources{Data: 200}},
		},
		{
			ID:          "day1_produce_materials",
			Name:        "Stockpile Resources",
			Description: "Produce 400 units of materials for future construction",
			Day:         1,
			Order:       3,
			Objective:   ProduceResource{Resource: economy.Materials, Amount: 400},
			Reward:      MissionReward{Resources: economy.Resources{Talent: 1}},
		},
		{
			ID:          "day1_explore_district",
			Name:        "First Survey",
			Description: "Explore one district of the map to learn the territory",
			Day:         1,
			Order:       4,
			Objective:   ExploreTerritories{Count: 1},
			Reward:      MissionReward{Resources: economy.Resources{CivicCredit: 100}},
		},
		{
			ID:          "day2_train_drones",
			Name:        "Military Force",
			Description: "Train 20 Light Drones to defend your city",
			Day:         2,
			Order:       1,
			Objective:   TrainUnits{Unit: "drone", Count: 20},
			Reward:      MissionReward{Resources: economy.Resources{Materials: 600}},
		},
		{
			ID:          "day2_take_district",
			Name:        "First Conquest",
			Description: "Take control of your first district",
			Day:         2,
			Order:       2,
			Objective:   ControlTerritories{Count: 1},
			Reward:      MissionReward{Resources: economy.Resources{Data: 300}},
		},
		{
			ID:          "day2_activate_policy",
			Name:        "Social Policy",
			Description: "Activate the Basic Income policy",
			Day:         2,
			Order:       3,
			Objective:   ActivatePolicy{Policy: "basic_income"},
			Reward:      MissionReward{Indices: map[economy.IndexKind]float64{economy.Legitimacy: 8}},
		},
		{
			ID:          "day2_maintain_sustainability",
			Name:        "Environmental Balance",
			Description: "Keep sustainability at 60 or above",
			Day:         2,
			Order:       4,
			Objective:   ReachIndex{Index: economy.Sustainability, Value: 60},
			Reward:      MissionReward{Resources: economy.Resources{Talent: 1}},
		},
		{
			ID:          "day3_upgrade_datacenter",
			Name:        "Data Capacity",
			Description: "Upgrade the Data Cloud to level 3 to unlock the AI Park",
			Day:         3,
			Order:       1,
			Objective:   ReachBuildingLevel{Building: "dataCenter", Level: 3},
			Reward:      MissionReward{Resources: economy.Resources{Data: 800}},
		},
		{
			ID:          "day3_research_recycling",
			Name:        "Green Technology",
			Description: "Research Recycling I to improve sustainability",
			Day:         3,
			Order:       2,
			Objective:   CompleteResearch{Research: "recycling_i"},
			Reward:      MissionReward{Indices: map[economy.IndexKind]float64{economy.Sustainability: 5}},
		},
		{
			ID:          "day3_recruit_talent",
			Name:        "Talent Recruitment",
			Description: "Attract one unit of specialized human talent",
			Day:         3,
			Order:       3,
			Objective:   ProduceResource{Resource: economy.Talent, Amount: 1},
			Reward:      MissionReward{Resources: economy.Resources{CivicCredit: 200}},
		},
		{
			ID:          "day3_control_district",
			Name:        "Territorial Dominion",
			Description: "Hold control of a district for 12 hours",
			Day:         3,
			Order:       4,
			Objective:   HoldTerritory{Duration: 12 * time.Hour},
			Reward:      MissionReward{Special: "Advanced city cosmetic frame"},
		},
	}
}
