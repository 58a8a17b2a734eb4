package game

import (
	"math"
	"testing"
	"time"

	"github.com/Montyshaa/Sumeris/internal/catalog"
)

func TestEffectiveIndicesLayering(t *testing.T) {
	eng, clock := newTestEngine(t)
	st := eng.State()

	// decent_housing grants welfare +8, basic_income another +10
	st.CompletedResearch = append(st.CompletedResearch, CompletedResearch{ID: "decent_housing", CompletedAt: clock.Now()})
	st.ActivePolicies = append(st.ActivePolicies, &ActivePolicy{ID: "basic_income", ActivatedAt: clock.Now()})

	if got := eng.EffectiveIndices().Welfare; got != 78 {
		t.Errorf("welfare = %v, want 60+8+10", got)
	}
}

func TestEffectiveIndicesClamp(t *testing.T) {
	eng, clock := newTestEngine(t)
	st := eng.State()

	st.Indices.Welfare = 95
	st.CompletedResearch = append(st.CompletedResearch, CompletedResearch{ID: "decent_housing", CompletedAt: clock.Now()})
	st.ActivePolicies = append(st.ActivePolicies, &ActivePolicy{ID: "basic_income", ActivatedAt: clock.Now()})

	if got := eng.EffectiveIndices().Welfare; got != 100 {
		t.Errorf("welfare = %v, want clamped 100", got)
	}

	st.Indices.Welfare = 5
	st.ActivePolicies = append(st.ActivePolicies, &ActivePolicy{ID: "energy_rationing", ActivatedAt: clock.Now()})
	st.ActivePolicies = append(st.ActivePolicies, &ActivePolicy{ID: "surveillance_state", ActivatedAt: clock.Now()})
	// 5 + 8 research + 10 - 8 - 12 policy would go below zero without the floor
	if got := eng.EffectiveIndices().Welfare; got != 3 {
		t.Errorf("welfare = %v, want 3", got)
	}
	st.Indices.Welfare = 0
	st.CompletedResearch = nil
	if got := eng.EffectiveIndices().Welfare; got != 0 {
		t.Errorf("welfare = %v, want floored 0", got)
	}
}

func TestConditionalPolicyEffect(t *testing.T) {
	eng, clock := newTestEngine(t)
	st := eng.State()

	// green_tax docks legitimacy while aggregated welfare sits below 60
	st.ActivePolicies = append(st.ActivePolicies, &ActivePolicy{ID: "green_tax", ActivatedAt: clock.Now()})

	if got := eng.EffectiveIndices().Legitimacy; got != 65 {
		t.Errorf("legitimacy = %v, penalty should not apply at welfare 60", got)
	}

	st.Indices.Welfare = 50
	if got := eng.EffectiveIndices().Legitimacy; got != 60 {
		t.Errorf("legitimacy = %v, want 65-5 at welfare 50", got)
	}
}

func TestEffectiveRatesTerritoryBonus(t *testing.T) {
	eng, _ := newTestEngine(t)
	st := eng.State()

	base := eng.EffectiveRates().Materials
	st.Map.Controlled = append(st.Map.Controlled, "district-2")

	// district-2 boosts materials production by 25%
	if got := eng.EffectiveRates().Materials; math.Abs(got-base*1.25) > 1e-9 {
		t.Errorf("materials rate = %v, want %v", got, base*1.25)
	}
}

func TestEffectiveRatesResearchMultiplier(t *testing.T) {
	eng, clock := newTestEngine(t)
	st := eng.State()

	base := eng.EffectiveRates().Materials
	// circular_economy boosts materials production by 10%
	st.CompletedResearch = append(st.CompletedResearch, CompletedResearch{ID: "circular_economy", CompletedAt: clock.Now()})

	if got := eng.EffectiveRates().Materials; math.Abs(got-base*1.1) > 1e-9 {
		t.Errorf("materials rate = %v, want %v", got, base*1.1)
	}
}

func TestUpgradingBuildingsContributeNothing(t *testing.T) {
	eng, _ := newTestEngine(t)
	st := eng.State()

	st.Buildings["factory"] = &Building{ID: "factory", Level: 3}
	withFactory := eng.EffectiveRates().Materials

	st.Buildings["factory"].Upgrading = true
	if got := eng.EffectiveRates().Materials; got >= withFactory {
		t.Errorf("upgrading factory should stop producing: %v >= %v", got, withFactory)
	}
}

func TestUniversityTalentDoubling(t *testing.T) {
	eng, _ := newTestEngine(t)
	st := eng.State()

	st.Buildings[catalog.UniversityID] = &Building{ID: catalog.UniversityID, Level: 4}

	low := eng.EffectiveRates().Talent
	st.Indices.Welfare = 70
	high := eng.EffectiveRates().Talent

	if high != low*2 {
		t.Errorf("talent rate at welfare 70 = %v, want double %v", high, low)
	}

	st.Buildings[catalog.UniversityID].Level = 3
	if got := eng.EffectiveRates().Talent; got == high {
		t.Error("doubling needs the university at level 4")
	}
}

func TestScopedCostMultiplier(t *testing.T) {
	eng, _ := newTestEngine(t)
	st := eng.State()

	// dataCenter level 6 cuts the data cost of research by 15%
	st.Buildings["dataCenter"] = &Building{ID: "dataCenter", Level: 6}
	st.Resources.Talent = 10

	if !eng.StartResearch("decent_housing") {
		t.Fatal("start failed")
	}
	paid := st.Research[0].Paid
	// 150 data * 0.85 = 127.5, floored
	if paid.Data != 127 {
		t.Errorf("discounted data cost = %v, want 127", paid.Data)
	}
	if paid.Materials != 200 {
		t.Errorf("materials cost = %v, discount applies to data only", paid.Materials)
	}
}

func TestTrainingSlotsStepFunction(t *testing.T) {
	eng, _ := newTestEngine(t)
	st := eng.State()

	tests := []struct {
		level int
		want  int
	}{
		{0, 0},
		{1, 1},
		{4, 1},
		{5, 2},
		{9, 2},
		{10, 3},
	}
	for _, tc := range tests {
		if tc.level == 0 {
			delete(st.Buildings, catalog.SpaceportID)
		} else {
			st.Buildings[catalog.SpaceportID] = &Building{ID: catalog.SpaceportID, Level: tc.level}
		}
		if got := eng.TrainingSlots(); got != tc.want {
			t.Errorf("slots at spaceport %d = %d, want %d", tc.level, got, tc.want)
		}
	}
}

func TestUnlockedFeatures(t *testing.T) {
	eng, clock := newTestEngine(t)
	st := eng.State()

	if got := eng.UnlockedFeatures(); len(got) != 0 {
		t.Fatalf("fresh state grants features %v, want none", got)
	}

	st.ActivePolicies = append(st.ActivePolicies, &ActivePolicy{ID: "ai_audit", ActivatedAt: clock.Now()})
	st.CompletedResearch = append(st.CompletedResearch, CompletedResearch{ID: "co2_capture", CompletedAt: clock.Now()})
	st.Buildings[catalog.SpaceportID] = &Building{ID: catalog.SpaceportID, Level: 9}

	unlocked := make(map[string]bool)
	for _, name := range eng.UnlockedFeatures() {
		unlocked[name] = true
	}
	for _, want := range []string{"incident_reduction", "green_events", "unit_capacity"} {
		if !unlocked[want] {
			t.Errorf("feature %s should be unlocked", want)
		}
	}
	if unlocked["ai_governor"] {
		t.Error("ai_governor needs singularity_core")
	}
}

func TestArmyPowerWithBonuses(t *testing.T) {
	eng, clock := newTestEngine(t)
	st := eng.State()

	st.Units["drone"] = &UnitStack{ID: "drone", Count: 10}
	if got := eng.ArmyPower(); got != 200 {
		t.Fatalf("army power = %v, want 10 drones at 20", got)
	}

	// drones_v2 raises drone power by 25%
	st.CompletedResearch = append(st.CompletedResearch, CompletedResearch{ID: "drones_v2", CompletedAt: clock.Now()})
	if got := eng.ArmyPower(); got != 250 {
		t.Errorf("boosted army power = %v, want 250", got)
	}
}

func TestMaintenanceRate(t *testing.T) {
	eng, _ := newTestEngine(t)
	st := eng.State()

	st.Units["drone"] = &UnitStack{ID: "drone", Count: 5}
	st.Units["armored"] = &UnitStack{ID: "armored", Count: 2}

	got := eng.MaintenanceRate()
	if got.Energy != 20 || got.Materials != 4 {
		t.Errorf("maintenance = %+v, want energy 20 materials 4", got)
	}
}

func TestScopedDurationMultiplier(t *testing.T) {
	eng, clock := newTestEngine(t)
	st := eng.State()

	// ai_logistics cuts training time by 20%
	st.CompletedResearch = append(st.CompletedResearch, CompletedResearch{ID: "ai_logistics", CompletedAt: clock.Now()})
	st.Buildings[catalog.SpaceportID] = &Building{ID: catalog.SpaceportID, Level: 1}

	if !eng.StartTraining("drone", 10) {
		t.Fatal("start failed")
	}
	order := st.Training[0]
	if got := order.FinishAt.Sub(order.StartedAt); got != 96*time.Minute {
		t.Errorf("training duration = %v, want 120m cut to 96m", got)
	}
}
