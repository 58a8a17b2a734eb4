package catalog

import (
	"testing"
	"time"
)

func TestBuildingCostGrowth(t *testing.T) {
	cat := Default()
	factory, ok := cat.Building("factory")
	if !ok {
		t.Fatal("factory missing from catalog")
	}

	l1 := BuildingCost(factory, 1)
	if l1.Materials != 80 || l1.Energy != 40 || l1.Data != 10 {
		t.Errorf("level 1 cost = %+v, want 80/40/10", l1)
	}

	l2 := BuildingCost(factory, 2)
	if l2.Materials != 128 || l2.Energy != 64 || l2.Data != 16 {
		t.Errorf("level 2 cost = %+v, want 128/64/16", l2)
	}

	// monotonically increasing per level
	prev := l1
	for level := 2; level <= factory.MaxLevel; level++ {
		cost := BuildingCost(factory, level)
		if cost.Materials <= prev.Materials {
			t.Errorf("cost not increasing at level %d: %v <= %v", level, cost.Materials, prev.Materials)
		}
		prev = cost
	}
}

func TestBuildingTimeCapped(t *testing.T) {
	cat := Default()
	spaceport, ok := cat.Building(SpaceportID)
	if !ok {
		t.Fatal("spaceport missing from catalog")
	}

	if got := BuildingTime(spaceport, 1); got != 30*time.Minute {
		t.Errorf("level 1 time = %v, want 30m", got)
	}

	// 30 * 1.5^9 minutes is over 19 hours uncapped
	if got := BuildingTime(spaceport, 10); got != 480*time.Minute {
		t.Errorf("level 10 time = %v, want capped 480m", got)
	}
}

func TestBuildingProduction(t *testing.T) {
	cat := Default()
	factory, _ := cat.Building("factory")

	if got := BuildingProduction(factory, 0); !got.IsZero() {
		t.Errorf("level 0 should produce nothing, got %+v", got)
	}
	if got := BuildingProduction(factory, 1); got.Materials != 5 {
		t.Errorf("level 1 materials = %v, want 5", got.Materials)
	}
	// 5 * 1.4 = 7.0
	if got := BuildingProduction(factory, 2); got.Materials != 7 {
		t.Errorf("level 2 materials = %v, want 7", got.Materials)
	}

	university, _ := cat.Building(UniversityID)
	// 0.2 * 1.4 = 0.28, floored to 0.2 at tenth precision
	if got := BuildingProduction(university, 2); got.Talent != 0.2 {
		t.Errorf("level 2 talent = %v, want 0.2", got.Talent)
	}
}

func TestLevelBenefits(t *testing.T) {
	cat := Default()
	hq, _ := cat.Building(HQID)

	if got := ActiveBenefits(hq, 2); len(got) != 0 {
		t.Errorf("no benefits expected below level 3, got %v", got)
	}
	if got := ActiveBenefits(hq, 5); len(got) != 2 {
		t.Errorf("expected 2 benefits at level 5, got %v", got)
	}

	next, ok := NextBenefit(hq, 2)
	if !ok || next != "Unlocks policies" {
		t.Errorf("next benefit at level 2 = %q, %v", next, ok)
	}
}
