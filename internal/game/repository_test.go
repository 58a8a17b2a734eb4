package game

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/Montyshaa/Sumeris/internal/catalog"
	"github.com/Montyshaa/Sumeris/internal/economy"
)

func TestEncodeRoundTrip(t *testing.T) {
	eng, clock := newTestEngine(t)
	st := eng.State()
	st.Indices = economy.Indices{Welfare: 60, Sustainability: 60, Legitimacy: 60}

	if !eng.StartConstruction("factory") {
		t.Fatal("start failed")
	}
	if !eng.ExploreTerritory("district-1") {
		t.Fatal("explore failed")
	}
	clock.Advance(30 * time.Minute)
	eng.Tick()

	data, err := (&Repository{}).Encode(st)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	var loaded State
	if err := json.Unmarshal(data, &loaded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	if got := loaded.BuildingLevel("factory"); got != st.BuildingLevel("factory") {
		t.Errorf("factory level = %d, want %d", got, st.BuildingLevel("factory"))
	}
	if !loaded.IsExplored("district-1") {
		t.Error("exploration set lost in round trip")
	}
	if loaded.Resources != st.Resources.Truncate() {
		t.Errorf("resources = %+v, want truncated %+v", loaded.Resources, st.Resources.Truncate())
	}
	if loaded.Produced != st.Produced.Truncate() {
		t.Errorf("produced = %+v, want truncated %+v", loaded.Produced, st.Produced.Truncate())
	}
	if len(loaded.Missions) != len(st.Missions) {
		t.Errorf("mission count = %d, want %d", len(loaded.Missions), len(st.Missions))
	}
	if !loaded.LastTick.Equal(st.LastTick) {
		t.Errorf("last tick = %v, want %v", loaded.LastTick, st.LastTick)
	}
	if loaded.OrderSeq != st.OrderSeq {
		t.Errorf("order sequence = %d, want %d", loaded.OrderSeq, st.OrderSeq)
	}
}

func TestEncodeDoesNotMutateState(t *testing.T) {
	eng, clock := newTestEngine(t)
	st := eng.State()

	clock.Advance(time.Minute)
	eng.Tick()
	before := st.Resources

	if _, err := (&Repository{}).Encode(st); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if st.Resources != before {
		t.Errorf("encoding truncated the live state: %+v -> %+v", before, st.Resources)
	}
}

func TestLoadedStateResumesEngine(t *testing.T) {
	eng, clock := newTestEngine(t)
	eng.State().Indices = economy.Indices{Welfare: 60, Sustainability: 60, Legitimacy: 60}
	clock.Advance(time.Minute)
	eng.Tick()

	data, err := (&Repository{}).Encode(eng.State())
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	var loaded State
	if err := json.Unmarshal(data, &loaded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	resumed := NewEngine(catalog.Default(), clock, &loaded)
	if len(loaded.Missions) != 4 {
		t.Fatalf("loading a save must not reseed missions, got %d", len(loaded.Missions))
	}

	beforeResume := loaded.Resources
	resumed.Tick()
	if loaded.Resources != beforeResume {
		t.Errorf("zero-elapsed tick changed resources: %+v -> %+v", beforeResume, loaded.Resources)
	}

	clock.Advance(time.Minute)
	resumed.Tick()
	if loaded.Resources.Materials != 1020 {
		t.Errorf("materials after resume = %v, want 1020", loaded.Resources.Materials)
	}
}
