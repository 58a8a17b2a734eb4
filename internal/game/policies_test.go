package game

import (
	"testing"
	"time"

	"github.com/Montyshaa/Sumeris/internal/catalog"
)

func newPolicyEngine(t *testing.T) (*Engine, *fakeClock) {
	t.Helper()
	eng, clock := newTestEngine(t)
	eng.State().Buildings[catalog.HQID].Level = 3
	eng.State().Resources.CivicCredit = 1000
	return eng, clock
}

func TestActivatePolicyRequiresHQ(t *testing.T) {
	eng, _ := newTestEngine(t)
	eng.State().Resources.CivicCredit = 1000

	if eng.ActivatePolicy("basic_income") {
		t.Fatal("policies should be locked below headquarters level 3")
	}

	eng.State().Buildings[catalog.HQID].Level = 3
	if !eng.ActivatePolicy("basic_income") {
		t.Fatal("activation should succeed at headquarters level 3")
	}
	if got := eng.State().Resources.CivicCredit; got != 950 {
		t.Errorf("civic credit after activation = %v, want 950", got)
	}
	if !eng.State().IsPolicyActive("basic_income") {
		t.Error("basic_income should be in the active set")
	}
}

func TestActivatePolicyRequiresCivicCredit(t *testing.T) {
	eng, _ := newTestEngine(t)
	eng.State().Buildings[catalog.HQID].Level = 3
	eng.State().Resources.CivicCredit = 10

	if eng.ActivatePolicy("basic_income") {
		t.Fatal("activation should fail without civic credit")
	}
}

func TestActivePolicyLimit(t *testing.T) {
	eng, _ := newPolicyEngine(t)

	for _, id := range []string{"basic_income", "green_tax", "ai_audit"} {
		if !eng.ActivatePolicy(id) {
			t.Fatalf("activating %s failed", id)
		}
	}
	if eng.ActivatePolicy("energy_rationing") {
		t.Fatal("fourth policy should be rejected")
	}

	if !eng.DeactivatePolicy("green_tax") {
		t.Fatal("deactivation failed")
	}
	if !eng.ActivatePolicy("energy_rationing") {
		t.Error("freed slot should allow a new activation")
	}
}

func TestDeactivateDoesNotRefund(t *testing.T) {
	eng, _ := newPolicyEngine(t)

	eng.ActivatePolicy("basic_income")
	before := eng.State().Resources.CivicCredit
	eng.DeactivatePolicy("basic_income")
	if got := eng.State().Resources.CivicCredit; got != before {
		t.Errorf("civic credit changed on deactivation: %v -> %v", before, got)
	}
}

func TestPolicyCooldown(t *testing.T) {
	eng, clock := newPolicyEngine(t)

	if !eng.ActivatePolicy("basic_income") {
		t.Fatal("activation failed")
	}
	if !eng.DeactivatePolicy("basic_income") {
		t.Fatal("deactivation failed")
	}

	if !eng.IsPolicyOnCooldown("basic_income") {
		t.Fatal("cooldown should start at deactivation")
	}
	if eng.ActivatePolicy("basic_income") {
		t.Fatal("reactivation during cooldown should fail")
	}

	clock.Advance(time.Hour)
	if !eng.IsPolicyOnCooldown("basic_income") {
		t.Error("two-hour cooldown should still run after one hour")
	}

	clock.Advance(time.Hour)
	if eng.IsPolicyOnCooldown("basic_income") {
		t.Error("cooldown should end exactly at the boundary")
	}
	if !eng.ActivatePolicy("basic_income") {
		t.Error("reactivation after cooldown should succeed")
	}
}

func TestPolicyExpiryStartsCooldown(t *testing.T) {
	eng, clock := newPolicyEngine(t)

	// active_neutrality runs for two hours then cools down for four
	if !eng.ActivatePolicy("active_neutrality") {
		t.Fatal("activation failed")
	}
	ap := eng.State().ActivePolicies[0]
	if ap.ExpiresAt == nil {
		t.Fatal("timed policy should carry an expiry")
	}
	eng.DrainEvents()

	clock.Advance(2 * time.Hour)
	eng.Tick()

	if eng.State().IsPolicyActive("active_neutrality") {
		t.Error("policy should expire at its duration")
	}
	if !hasEvent(eng.DrainEvents(), EventPolicyExpired, "active_neutrality") {
		t.Error("expiry event missing")
	}
	if !eng.IsPolicyOnCooldown("active_neutrality") {
		t.Error("expiry should stamp the cooldown")
	}

	clock.Advance(4 * time.Hour)
	if eng.IsPolicyOnCooldown("active_neutrality") {
		t.Error("cooldown should clear four hours after expiry")
	}
}

func TestManualPolicyHasNoExpiry(t *testing.T) {
	eng, clock := newPolicyEngine(t)

	eng.ActivatePolicy("basic_income")
	if eng.State().ActivePolicies[0].ExpiresAt != nil {
		t.Fatal("untimed policy should have no expiry")
	}

	clock.Advance(24 * time.Hour)
	eng.Tick()
	if !eng.State().IsPolicyActive("basic_income") {
		t.Error("untimed policy should survive any amount of time")
	}
}
