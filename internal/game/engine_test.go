package game

import (
	"testing"
	"time"

	"github.com/Montyshaa/Sumeris/internal/catalog"
	"github.com/Montyshaa/Sumeris/internal/economy"
)

// fakeClock drives the engine through time explicitly.
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time { return c.t }

func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestEngine(t *testing.T) (*Engine, *fakeClock) {
	t.Helper()
	clock := &fakeClock{t: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	return NewGame(catalog.Default(), clock), clock
}

func hasEvent(events []Event, typ EventType, subject string) bool {
	for _, ev := range events {
		if ev.Type == typ && ev.Subject == subject {
			return true
		}
	}
	return false
}

func TestNewGameStartingState(t *testing.T) {
	eng, _ := newTestEngine(t)
	st := eng.State()

	want := economy.Resources{Materials: 1000, Energy: 500, Data: 200, Talent: 5, CivicCredit: 50}
	if st.Resources != want {
		t.Errorf("starting resources = %+v, want %+v", st.Resources, want)
	}
	if st.Indices != (economy.Indices{Welfare: 60, Sustainability: 55, Legitimacy: 65}) {
		t.Errorf("starting indices = %+v", st.Indices)
	}
	if got := st.BuildingLevel(catalog.HQID); got != 1 {
		t.Errorf("headquarters level = %d, want 1", got)
	}
	if st.TutorialDay != 1 {
		t.Errorf("tutorial day = %d, want 1", st.TutorialDay)
	}
	if len(st.Missions) != 4 {
		t.Errorf("day 1 should seed 4 missions, got %d", len(st.Missions))
	}
}

func TestStartConstructionDebitsCost(t *testing.T) {
	eng, _ := newTestEngine(t)

	if !eng.StartConstruction("factory") {
		t.Fatal("starting the factory should succeed")
	}

	st := eng.State()
	if st.Resources.Materials != 920 || st.Resources.Energy != 460 || st.Resources.Data != 190 {
		t.Errorf("resources after debit = %+v, want 920/460/190", st.Resources)
	}
	if len(st.Construction) != 1 {
		t.Fatalf("queue length = %d, want 1", len(st.Construction))
	}
	order := st.Construction[0]
	if order.BuildingID != "factory" || order.TargetLevel != 1 {
		t.Errorf("order = %+v", order)
	}
	if got := order.FinishAt.Sub(order.StartedAt); got != 10*time.Minute {
		t.Errorf("build duration = %v, want 10m", got)
	}
	if !st.Buildings["factory"].Upgrading {
		t.Error("factory row should be flagged upgrading")
	}
}

func TestStartConstructionRequiresResources(t *testing.T) {
	eng, _ := newTestEngine(t)
	eng.State().Resources = economy.Resources{Materials: 10}

	if eng.StartConstruction("factory") {
		t.Fatal("construction should fail without funds")
	}
	if len(eng.State().Construction) != 0 {
		t.Error("failed start must leave the queue empty")
	}
}

func TestStartConstructionHQGate(t *testing.T) {
	eng, _ := newTestEngine(t)

	// socialCenter needs headquarters level 3
	if eng.StartConstruction("socialCenter") {
		t.Fatal("socialCenter should be locked at headquarters level 1")
	}

	eng.State().Buildings[catalog.HQID].Level = 3
	if !eng.StartConstruction("socialCenter") {
		t.Fatal("socialCenter should unlock at headquarters level 3")
	}
}

func TestConstructionSlotLimit(t *testing.T) {
	eng, _ := newTestEngine(t)

	if got := eng.ConstructionSlots(); got != 1 {
		t.Fatalf("slots at headquarters 1 = %d, want 1", got)
	}
	if !eng.StartConstruction("factory") {
		t.Fatal("first order should succeed")
	}
	if eng.StartConstruction("powerPlant") {
		t.Fatal("second order should fail with one slot")
	}

	eng.State().Buildings[catalog.HQID].Level = 5
	if got := eng.ConstructionSlots(); got != 2 {
		t.Errorf("slots at headquarters 5 = %d, want 2", got)
	}
	if !eng.StartConstruction("powerPlant") {
		t.Error("second order should succeed with two slots")
	}
}

func TestCancelConstructionRefund(t *testing.T) {
	eng, _ := newTestEngine(t)

	if !eng.StartConstruction("factory") {
		t.Fatal("start failed")
	}
	orderID := eng.State().Construction[0].ID

	if !eng.CancelConstruction(orderID) {
		t.Fatal("cancel failed")
	}

	st := eng.State()
	// 75% of 80/40/10, floored per resource
	if st.Resources.Materials != 980 || st.Resources.Energy != 490 || st.Resources.Data != 197 {
		t.Errorf("resources after refund = %+v, want 980/490/197", st.Resources)
	}
	if len(st.Construction) != 0 {
		t.Error("queue should be empty after cancel")
	}
	if st.Buildings["factory"].Upgrading {
		t.Error("upgrading flag should clear on cancel")
	}

	if eng.CancelConstruction(orderID) {
		t.Error("cancelling twice should fail")
	}
}

func TestConstructionCompletesOnTick(t *testing.T) {
	eng, clock := newTestEngine(t)

	if !eng.StartConstruction("factory") {
		t.Fatal("start failed")
	}
	eng.DrainEvents()

	clock.Advance(10 * time.Minute)
	eng.Tick()

	st := eng.State()
	if got := st.BuildingLevel("factory"); got != 1 {
		t.Errorf("factory level = %d, want 1", got)
	}
	if st.Buildings["factory"].Upgrading {
		t.Error("upgrading flag should clear on completion")
	}
	if len(st.Construction) != 0 {
		t.Error("queue should be empty after completion")
	}
	if !hasEvent(eng.DrainEvents(), EventConstructionCompleted, "factory") {
		t.Error("completion event missing")
	}
}

func TestResearchQueue(t *testing.T) {
	eng, clock := newTestEngine(t)

	if eng.StartResearch("universal_healthcare") {
		t.Fatal("tier 2 research should be locked before its prerequisite")
	}
	if !eng.StartResearch("decent_housing") {
		t.Fatal("tier 1 research should start")
	}
	if eng.StartResearch("recycling_i") {
		t.Fatal("second research should fail with one slot")
	}

	clock.Advance(30 * time.Minute)
	eng.Tick()

	st := eng.State()
	if !st.IsResearchCompleted("decent_housing") {
		t.Error("decent_housing should be complete after 30m")
	}
	if !hasEvent(eng.DrainEvents(), EventResearchCompleted, "decent_housing") {
		t.Error("research completion event missing")
	}
	if eng.StartResearch("decent_housing") {
		t.Error("completed research should not restart")
	}
	if !eng.StartResearch("universal_healthcare") {
		t.Error("prerequisite satisfied, tier 2 should start")
	}
}

func TestTrainingQueue(t *testing.T) {
	eng, clock := newTestEngine(t)

	if eng.StartTraining("drone", 10) {
		t.Fatal("training should fail without a spaceport")
	}

	eng.State().Buildings[catalog.SpaceportID] = &Building{ID: catalog.SpaceportID, Level: 1}
	if eng.StartTraining("drone", 0) {
		t.Fatal("zero quantity should fail")
	}
	if !eng.StartTraining("drone", 10) {
		t.Fatal("training 10 drones should start")
	}

	st := eng.State()
	// 50/30/10 per drone, linear
	if st.Resources.Materials != 500 || st.Resources.Energy != 200 || st.Resources.Data != 100 {
		t.Errorf("resources after debit = %+v, want 500/200/100", st.Resources)
	}
	order := st.Training[0]
	if got := order.FinishAt.Sub(order.StartedAt); got != 120*time.Minute {
		t.Errorf("batch duration = %v, want 120m", got)
	}

	clock.Advance(120 * time.Minute)
	eng.Tick()

	if got := st.UnitCount("drone"); got != 10 {
		t.Errorf("drone count = %d, want 10", got)
	}
	if !hasEvent(eng.DrainEvents(), EventTrainingCompleted, "drone") {
		t.Error("training completion event missing")
	}
}
