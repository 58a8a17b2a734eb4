package game

import (
	"time"

	"github.com/Montyshaa/Sumeris/internal/catalog"
)

// ConstructionSlots is the queue capacity, a step function of the
// headquarters level.
func (e *Engine) ConstructionSlots() int {
	hq := e.state.BuildingLevel(catalog.HQID)
	switch {
	case hq >= 10:
		return 3
	case hq >= 5:
		return 2
	default:
		return 1
	}
}

// FreeConstructionSlots returns remaining capacity, never negative.
func (e *Engine) FreeConstructionSlots() int {
	free := e.ConstructionSlots() - len(e.state.Construction)
	if free < 0 {
		return 0
	}
	return free
}

// BuildingUnlocked reports whether the headquarters is high enough to
// start the building's first level.
func (e *Engine) BuildingUnlocked(bt *catalog.BuildingType) bool {
	return e.state.BuildingLevel(catalog.HQID) >= bt.RequiresHQ
}

// StartConstruction enqueues the next level of the building. The full
// discounted cost is debited synchronously; failure leaves the
// aggregate untouched.
func (e *Engine) StartConstruction(buildingID string) bool {
	bt, ok := e.catalog.Building(buildingID)
	if !ok {
		return false
	}

	current := e.state.BuildingLevel(buildingID)
	target := current + 1
	if target > bt.MaxLevel {
		return false
	}
	if current == 0 && !e.BuildingUnlocked(bt) {
		return false
	}
	if b, ok := e.state.Buildings[buildingID]; ok && b.Upgrading {
		return false
	}
	if e.FreeConstructionSlots() <= 0 {
		return false
	}

	cost := e.scopedCost(catalog.ScopeBuilding, catalog.BuildingCost(bt, target))
	if !e.state.Resources.Covers(cost) {
		return false
	}
	duration := e.scopedDuration(catalog.ScopeBuilding, catalog.BuildingTime(bt, target))

	now := e.clock.Now()
	e.state.Resources = e.state.Resources.Sub(cost).ClampZero()

	if b, ok := e.state.Buildings[buildingID]; ok {
		b.Upgrading = true
	} else {
		e.state.Buildings[buildingID] = &Building{ID: buildingID, Upgrading: true}
	}

	e.state.Construction = append(e.state.Construction, &ConstructionOrder{
		ID:          e.nextID(buildingID),
		BuildingID:  buildingID,
		TargetLevel: target,
		StartedAt:   now,
		FinishAt:    now.Add(duration),
		Paid:        cost,
	})
	return true
}

// CancelConstruction refunds 75% of the recorded cost, floored per
// resource, and clears the upgrading flag.
func (e *Engine) CancelConstruction(orderID string) bool {
	for i, order := range e.state.Construction {
		if order.ID != orderID {
			continue
		}
		refund := order.Paid.Scale(refundFactor).Truncate()
		e.state.Resources = e.state.Resources.Add(refund).ClampZero()
		e.state.Construction = append(e.state.Construction[:i], e.state.Construction[i+1:]...)
		if b, ok := e.state.Buildings[order.BuildingID]; ok {
			b.Upgrading = false
		}
		return true
	}
	return false
}

// sweepConstruction commits every due order. Order among simultaneously
// due entries does not matter; each commit is independent.
func (e *Engine) sweepConstruction(now time.Time) {
	remaining := e.state.Construction[:0]
	for _, order := range e.state.Construction {
		if order.FinishAt.After(now) {
			remaining = append(remaining, order)
			continue
		}
		b, ok := e.state.Buildings[order.BuildingID]
		if !ok {
			b = &Building{ID: order.BuildingID}
			e.state.Buildings[order.BuildingID] = b
		}
		b.Level = order.TargetLevel
		b.Upgrading = false
		e.emit(Event{Type: EventConstructionCompleted, Subject: order.BuildingID, Value: order.TargetLevel})
	}
	e.state.Construction = remaining
}
