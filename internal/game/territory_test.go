package game

import (
	"testing"
	"time"

	"github.com/Montyshaa/Sumeris/internal/catalog"
)

func TestExploreTerritory(t *testing.T) {
	eng, _ := newTestEngine(t)
	st := eng.State()

	if eng.ExploreTerritory("district-99") {
		t.Fatal("unknown district should fail")
	}
	if !eng.ExploreTerritory("district-1") {
		t.Fatal("exploring district-1 should succeed")
	}

	// cost 50/30/20/0/10 at defense 1, then the mixed reward for a
	// bonus value of 15
	if st.Resources.Materials != 957.5 {
		t.Errorf("materials = %v, want 957.5", st.Resources.Materials)
	}
	if st.Resources.CivicCredit != 52 {
		t.Errorf("civic credit = %v, want 52", st.Resources.CivicCredit)
	}
	if !st.IsExplored("district-1") {
		t.Error("district-1 should be explored")
	}

	if eng.ExploreTerritory("district-1") {
		t.Error("exploring twice should fail")
	}
	if st.Resources.Materials != 957.5 {
		t.Error("failed explore must not touch resources")
	}
}

func TestExploreRequiresResources(t *testing.T) {
	eng, _ := newTestEngine(t)
	eng.State().Resources.CivicCredit = 5

	if eng.ExploreTerritory("district-1") {
		t.Fatal("explore should fail without funds")
	}
}

func TestControlRequiresExploration(t *testing.T) {
	eng, clock := newTestEngine(t)
	st := eng.State()

	if eng.ControlTerritory("district-1") {
		t.Fatal("control before exploration should fail")
	}

	if !eng.ExploreTerritory("district-1") {
		t.Fatal("explore failed")
	}
	clock.Advance(time.Minute)
	if !eng.ControlTerritory("district-1") {
		t.Fatal("control after exploration should succeed")
	}

	if !st.IsControlled("district-1") {
		t.Error("district-1 should be controlled")
	}
	if stamp, ok := st.Map.ControlledAt["district-1"]; !ok || !stamp.Equal(clock.Now()) {
		t.Error("control should stamp the takeover time")
	}

	if eng.ControlTerritory("district-1") {
		t.Error("controlling twice should fail")
	}
}

func TestControlCostScalesWithDefense(t *testing.T) {
	eng, _ := newTestEngine(t)
	st := eng.State()
	st.Map.Explored = append(st.Map.Explored, "district-10")

	// district-10 sits at defense level 3: 300/225/150/1.5/75. The
	// starting 50 civic credit cannot cover it.
	if eng.ControlTerritory("district-10") {
		t.Fatal("control should fail while civic credit falls short")
	}

	st.Resources.CivicCredit = 200
	before := st.Resources
	if !eng.ControlTerritory("district-10") {
		t.Fatal("control failed")
	}
	if got := before.Materials - st.Resources.Materials; got != 300 {
		t.Errorf("materials spent = %v, want 300", got)
	}
	if got := before.Talent - st.Resources.Talent; got != 1.5 {
		t.Errorf("talent spent = %v, want 1.5", got)
	}
	if got := before.CivicCredit - st.Resources.CivicCredit; got != 75 {
		t.Errorf("civic credit spent = %v, want 75", got)
	}
}

func TestHoldMissionTracksLongestControl(t *testing.T) {
	eng, clock := newTestEngine(t)
	st := eng.State()
	st.TutorialDay = 3
	st.Missions = nil
	eng.startMissionCohort(3)

	st.Map.Explored = append(st.Map.Explored, "district-1")
	if !eng.ControlTerritory("district-1") {
		t.Fatal("control failed")
	}

	clock.Advance(6 * time.Hour)
	eng.Tick()
	pm := findMission(st, "day3_control_district")
	if pm == nil {
		t.Fatal("day3_control_district not seeded")
	}
	if pm.Progress != 0.5 {
		t.Errorf("progress = %v, want 0.5 after 6 of 12 hours", pm.Progress)
	}

	clock.Advance(6 * time.Hour)
	eng.Tick()
	if pm.CompletedAt == nil {
		t.Error("mission should complete after 12 hours of control")
	}
}

func TestScoutTerritory(t *testing.T) {
	eng, _ := newTestEngine(t)

	if report := eng.ScoutTerritory("district-99"); report != nil {
		t.Fatal("unknown district should yield no report")
	}

	before := eng.State().Resources
	report := eng.ScoutTerritory("district-2")
	if report == nil {
		t.Fatal("scout failed")
	}
	if report.TerritoryID != "district-2" {
		t.Errorf("report territory = %s", report.TerritoryID)
	}
	// district-2: materials bonus 25, defense level 1
	if report.Resources.Materials != 250 {
		t.Errorf("materials estimate = %v, want 250", report.Resources.Materials)
	}
	if report.EstimatedPower < 100 || report.EstimatedPower >= 150 {
		t.Errorf("power estimate = %v, want within [100,150)", report.EstimatedPower)
	}
	if report.DefenseInfo != "Light defenses" {
		t.Errorf("defense info = %q", report.DefenseInfo)
	}
	if eng.State().Resources != before {
		t.Error("scouting must not spend resources")
	}
}

func TestOrbitUnlockFollowsHeadquarters(t *testing.T) {
	eng, _ := newTestEngine(t)
	st := eng.State()

	if eng.IsOrbitUnlocked("orbit-1") {
		t.Error("low orbit should stay locked at headquarters level 1")
	}

	st.Buildings[catalog.HQID].Level = 7
	if !eng.IsOrbitUnlocked("orbit-1") {
		t.Error("low orbit should unlock at headquarters level 7")
	}
	if eng.IsOrbitUnlocked("orbit-2") {
		t.Error("high orbit needs headquarters level 10")
	}

	st.Buildings[catalog.HQID].Level = 10
	if !eng.IsOrbitUnlocked("orbit-2") {
		t.Error("high orbit should unlock at headquarters level 10")
	}

	if eng.IsOrbitUnlocked("orbit-99") {
		t.Error("unknown orbit id should report locked")
	}
}
