package game

import (
	"time"

	"github.com/Montyshaa/Sumeris/internal/catalog"
	"github.com/Montyshaa/Sumeris/internal/economy"
)

// Building is one owned building row. Level 0 never persists; a row is
// created when its first construction order is started and the level
// only ever increases.
type Building struct {
	ID        string `json:"id"`
	Level     int    `json:"level"`
	Upgrading bool   `json:"upgrading"`
}

// ConstructionOrder is a pending building upgrade. Paid records the
// exact debit at enqueue time so cancellation can refund against it.
type ConstructionOrder struct {
	ID          string            `json:"id"`
	BuildingID  string            `json:"building_id"`
	TargetLevel int               `json:"target_level"`
	StartedAt   time.Time         `json:"started_at"`
	FinishAt    time.Time         `json:"finish_at"`
	Paid        economy.Resources `json:"paid"`
}

// ResearchOrder is a pending research entry.
type ResearchOrder struct {
	ID         string            `json:"id"`
	ResearchID string            `json:"research_id"`
	StartedAt  time.Time         `json:"started_at"`
	FinishAt   time.Time         `json:"finish_at"`
	Paid       economy.Resources `json:"paid"`
}

// TrainingOrder is a pending unit batch.
type TrainingOrder struct {
	ID        string            `json:"id"`
	UnitID    string            `json:"unit_id"`
	Quantity  int               `json:"quantity"`
	StartedAt time.Time         `json:"started_at"`
	FinishAt  time.Time         `json:"finish_at"`
	Paid      economy.Resources `json:"paid"`
}

// CompletedResearch is one entry of the append-only completed set.
type CompletedResearch struct {
	ID          string    `json:"id"`
	CompletedAt time.Time `json:"completed_at"`
}

// ActivePolicy is a currently active policy. A nil ExpiresAt means the
// policy runs until deactivated by hand.
type ActivePolicy struct {
	ID          string     `json:"id"`
	ActivatedAt time.Time  `json:"activated_at"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`
}

// UnitStack aggregates all units of one type into a single count.
type UnitStack struct {
	ID    string `json:"id"`
	Count int    `json:"count"`
}

// MapState holds the player's exploration and control sets. Control
// implies explored. ControlledAt records when control was taken, which
// hold-duration mission objectives read.
type MapState struct {
	Explored     []string             `json:"explored"`
	Controlled   []string             `json:"controlled"`
	ControlledAt map[string]time.Time `json:"controlled_at,omitempty"`
}

// MissionProgress tracks one mission for the player. Progress is a
// derived projection recomputed from live state each tick, never
// incremented. ProducedBaseline snapshots the lifetime production
// counter at mission start for produce objectives.
type MissionProgress struct {
	MissionID        string     `json:"mission_id"`
	StartedAt        time.Time  `json:"started_at"`
	Progress         float64    `json:"progress"`
	CompletedAt      *time.Time `json:"completed_at,omitempty"`
	ProducedBaseline float64    `json:"produced_baseline,omitempty"`
}

// State is the save-state aggregate, the unit of persistence. All
// mutation goes through Engine operations; nothing outside this package
// writes to it.
type State struct {
	Resources economy.Resources `json:"resources"`
	Indices   economy.Indices   `json:"indices"`
	BaseRates economy.Resources `json:"base_rates"`

	Buildings    map[string]*Building `json:"buildings"`
	Construction []*ConstructionOrder `json:"construction_queue"`
	Research     []*ResearchOrder     `json:"research_queue"`
	Training     []*TrainingOrder     `json:"training_queue"`

	CompletedResearch []CompletedResearch  `json:"completed_research"`
	ActivePolicies    []*ActivePolicy      `json:"active_policies"`
	PolicyCooldowns   map[string]time.Time `json:"policy_cooldowns,omitempty"`

	Units map[string]*UnitStack `json:"units"`
	Map   MapState              `json:"map"`

	Missions    []*MissionProgress `json:"missions"`
	TutorialDay int                `json:"tutorial_day"`

	// Produced accumulates lifetime gross production per resource.
	// Spending never decrements it.
	Produced economy.Resources `json:"produced"`

	LastTick time.Time `json:"last_tick"`
	OrderSeq int64     `json:"order_seq"`
}

// NewState returns the starting aggregate: seed resources, mid-range
// indices, base production rates and the headquarters at level 1.
func NewState(now time.Time) *State {
	return &State{
		Resources: economy.Resources{Materials: 1000, Energy: 500, Data: 200, Talent: 5, CivicCredit: 50},
		Indices:   economy.Indices{Welfare: 60, Sustainability: 55, Legitimacy: 65},
		BaseRates: economy.Resources{Materials: 10, Energy: 8, Data: 3, Talent: 0.1, CivicCredit: 2},
		Buildings: map[string]*Building{
			catalog.HQID: {ID: catalog.HQID, Level: 1},
		},
		Units:           map[string]*UnitStack{},
		PolicyCooldowns: map[string]time.Time{},
		Map:             MapState{ControlledAt: map[string]time.Time{}},
		TutorialDay:     1,
		LastTick:        now,
	}
}

// BuildingLevel returns the committed level for the catalog id, zero if
// never built.
func (s *State) BuildingLevel(id string) int {
	if b, ok := s.Buildings[id]; ok {
		return b.Level
	}
	return 0
}

// UnitCount returns the stack count for the unit type, zero if none
// trained.
func (s *State) UnitCount(id string) int {
	if u, ok := s.Units[id]; ok {
		return u.Count
	}
	return 0
}

// IsResearchCompleted reports membership of the completed set.
func (s *State) IsResearchCompleted(id string) bool {
	for _, r := range s.CompletedResearch {
		if r.ID == id {
			return true
		}
	}
	return false
}

// CompletedResearchSet returns the completed ids as a lookup map.
func (s *State) CompletedResearchSet() map[string]bool {
	out := make(map[string]bool, len(s.CompletedResearch))
	for _, r := range s.CompletedResearch {
		out[r.ID] = true
	}
	return out
}

// IsPolicyActive reports whether the policy is in the active set.
func (s *State) IsPolicyActive(id string) bool {
	for _, p := range s.ActivePolicies {
		if p.ID == id {
			return true
		}
	}
	return false
}

// IsExplored reports whether the territory has been explored.
func (s *State) IsExplored(territoryID string) bool {
	return containsID(s.Map.Explored, territoryID)
}

// IsControlled reports whether the territory is under player control.
func (s *State) IsControlled(territoryID string) bool {
	return containsID(s.Map.Controlled, territoryID)
}

func containsID(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
