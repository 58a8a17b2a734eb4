package game

import (
	"math"
	"testing"
	"time"

	"github.com/Montyshaa/Sumeris/internal/economy"
)

func TestTickAccruesProduction(t *testing.T) {
	eng, clock := newTestEngine(t)
	st := eng.State()
	// all three step multipliers land on 1.0
	st.Indices = economy.Indices{Welfare: 60, Sustainability: 60, Legitimacy: 60}

	clock.Advance(time.Minute)
	eng.Tick()

	if st.Resources.Materials != 1010 {
		t.Errorf("materials after 1m = %v, want 1010", st.Resources.Materials)
	}
	if st.Produced.Materials != 10 {
		t.Errorf("lifetime materials = %v, want 10", st.Produced.Materials)
	}
	if !st.LastTick.Equal(clock.Now()) {
		t.Error("accrual should advance the tick stamp")
	}
}

func TestTickEfficiencyScalesGain(t *testing.T) {
	eng, clock := newTestEngine(t)
	st := eng.State()
	// every index below 40 puts all three bands at 0.8
	st.Indices = economy.Indices{Welfare: 30, Sustainability: 30, Legitimacy: 30}

	clock.Advance(time.Minute)
	eng.Tick()

	if math.Abs(st.Resources.Materials-1008) > 1e-9 {
		t.Errorf("materials after 1m at 0.8 efficiency = %v, want 1008", st.Resources.Materials)
	}
}

func TestTickBelowThresholdSkipsAccrual(t *testing.T) {
	eng, clock := newTestEngine(t)
	st := eng.State()
	start := st.LastTick

	clock.Advance(2 * time.Second)
	eng.Tick()

	if st.Resources.Materials != 1000 {
		t.Errorf("materials = %v, sub-threshold tick must not accrue", st.Resources.Materials)
	}
	if !st.LastTick.Equal(start) {
		t.Error("tick stamp must not move when accrual is skipped")
	}
}

func TestTickSweepsRunBelowThreshold(t *testing.T) {
	eng, clock := newTestEngine(t)
	st := eng.State()

	if !eng.StartConstruction("factory") {
		t.Fatal("start failed")
	}
	st.Construction[0].FinishAt = clock.Now()

	clock.Advance(time.Second)
	eng.Tick()

	if got := st.BuildingLevel("factory"); got != 1 {
		t.Errorf("factory level = %d, due orders must commit on every tick", got)
	}
}

func TestSpendingNeverDecrementsProduced(t *testing.T) {
	eng, clock := newTestEngine(t)
	st := eng.State()
	st.Indices = economy.Indices{Welfare: 60, Sustainability: 60, Legitimacy: 60}

	clock.Advance(10 * time.Minute)
	eng.Tick()
	produced := st.Produced.Materials

	if !eng.StartConstruction("factory") {
		t.Fatal("start failed")
	}
	if st.Produced.Materials != produced {
		t.Errorf("lifetime production changed on spend: %v -> %v", produced, st.Produced.Materials)
	}
}
