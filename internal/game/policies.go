package game

import (
	"time"

	"github.com/Montyshaa/Sumeris/internal/catalog"
)

// Policy activation requires the headquarters at level 3 and caps the
// active set at three.
const (
	policyHQRequirement = 3
	maxActivePolicies   = 3
)

// IsPolicyOnCooldown reports whether the policy's cooldown window,
// started at its last deactivation or expiry, is still running.
func (e *Engine) IsPolicyOnCooldown(policyID string) bool {
	pt, ok := e.catalog.Policy(policyID)
	if !ok {
		return false
	}
	stamp, ok := e.state.PolicyCooldowns[policyID]
	if !ok {
		return false
	}
	return e.clock.Now().Before(stamp.Add(pt.Cooldown))
}

// CanActivatePolicy runs the full activation gate without mutating
// anything.
func (e *Engine) CanActivatePolicy(policyID string) bool {
	pt, ok := e.catalog.Policy(policyID)
	if !ok {
		return false
	}
	if e.state.Resources.CivicCredit < pt.Cost {
		return false
	}
	if e.state.IsPolicyActive(policyID) {
		return false
	}
	if e.IsPolicyOnCooldown(policyID) {
		return false
	}
	if len(e.state.ActivePolicies) >= maxActivePolicies {
		return false
	}
	return e.state.BuildingLevel(catalog.HQID) >= policyHQRequirement
}

// ActivatePolicy debits the civic-credit cost and adds the policy to
// the active set. The cost is not refunded on later deactivation. A
// zero catalog duration means no expiry.
func (e *Engine) ActivatePolicy(policyID string) bool {
	if !e.CanActivatePolicy(policyID) {
		return false
	}
	pt, _ := e.catalog.Policy(policyID)

	now := e.clock.Now()
	e.state.Resources.CivicCredit -= pt.Cost

	active := &ActivePolicy{ID: policyID, ActivatedAt: now}
	if pt.Duration > 0 {
		expires := now.Add(pt.Duration)
		active.ExpiresAt = &expires
	}
	e.state.ActivePolicies = append(e.state.ActivePolicies, active)
	return true
}

// DeactivatePolicy removes an active policy and starts its cooldown.
func (e *Engine) DeactivatePolicy(policyID string) bool {
	for i, ap := range e.state.ActivePolicies {
		if ap.ID != policyID {
			continue
		}
		e.state.ActivePolicies = append(e.state.ActivePolicies[:i], e.state.ActivePolicies[i+1:]...)
		e.state.PolicyCooldowns[policyID] = e.clock.Now()
		return true
	}
	return false
}

// sweepPolicies expires due policies. Expiry stamps the cooldown
// exactly as a manual deactivation would.
func (e *Engine) sweepPolicies(now time.Time) {
	remaining := e.state.ActivePolicies[:0]
	for _, ap := range e.state.ActivePolicies {
		if ap.ExpiresAt == nil || ap.ExpiresAt.After(now) {
			remaining = append(remaining, ap)
			continue
		}
		e.state.PolicyCooldowns[ap.ID] = now
		e.emit(Event{Type: EventPolicyExpired, Subject: ap.ID})
	}
	e.state.ActivePolicies = remaining
}
