package game

import (
	"time"

	"github.com/Montyshaa/Sumeris/internal/catalog"
)

// TrainingSlots is gated entirely on the spaceport: none without it,
// then a step function of its level.
func (e *Engine) TrainingSlots() int {
	spaceport := e.state.BuildingLevel(catalog.SpaceportID)
	switch {
	case spaceport == 0:
		return 0
	case spaceport >= 10:
		return 3
	case spaceport >= 5:
		return 2
	default:
		return 1
	}
}

// FreeTrainingSlots returns remaining capacity, never negative.
func (e *Engine) FreeTrainingSlots() int {
	free := e.TrainingSlots() - len(e.state.Training)
	if free < 0 {
		return 0
	}
	return free
}

// IsUnitUnlocked checks the unit's building level requirements.
func (e *Engine) IsUnitUnlocked(unitID string) bool {
	ut, ok := e.catalog.Unit(unitID)
	if !ok {
		return false
	}
	for buildingID, level := range ut.RequiresLevel {
		if e.state.BuildingLevel(buildingID) < level {
			return false
		}
	}
	return true
}

// StartTraining enqueues a unit batch. Cost is linear in quantity; the
// batch time discount and any training modifiers are folded in before
// the debit.
func (e *Engine) StartTraining(unitID string, quantity int) bool {
	ut, ok := e.catalog.Unit(unitID)
	if !ok || quantity <= 0 {
		return false
	}
	if !e.IsUnitUnlocked(unitID) {
		return false
	}
	if e.FreeTrainingSlots() <= 0 {
		return false
	}

	cost := e.scopedCost(catalog.ScopeTraining, catalog.UnitCost(ut, quantity))
	if !e.state.Resources.Covers(cost) {
		return false
	}
	duration := e.scopedDuration(catalog.ScopeTraining, catalog.TrainingTime(ut, quantity))

	now := e.clock.Now()
	e.state.Resources = e.state.Resources.Sub(cost).ClampZero()
	e.state.Training = append(e.state.Training, &TrainingOrder{
		ID:        e.nextID(unitID),
		UnitID:    unitID,
		Quantity:  quantity,
		StartedAt: now,
		FinishAt:  now.Add(duration),
		Paid:      cost,
	})
	return true
}

// CancelTraining refunds 75% of the recorded cost and frees the slot.
func (e *Engine) CancelTraining(orderID string) bool {
	for i, order := range e.state.Training {
		if order.ID != orderID {
			continue
		}
		refund := order.Paid.Scale(refundFactor).Truncate()
		e.state.Resources = e.state.Resources.Add(refund).ClampZero()
		e.state.Training = append(e.state.Training[:i], e.state.Training[i+1:]...)
		return true
	}
	return false
}

// sweepTraining merges due batches into their unit stacks.
func (e *Engine) sweepTraining(now time.Time) {
	remaining := e.state.Training[:0]
	for _, order := range e.state.Training {
		if order.FinishAt.After(now) {
			remaining = append(remaining, order)
			continue
		}
		if stack, ok := e.state.Units[order.UnitID]; ok {
			stack.Count += order.Quantity
		} else {
			e.state.Units[order.UnitID] = &UnitStack{ID: order.UnitID, Count: order.Quantity}
		}
		e.emit(Event{Type: EventTrainingCompleted, Subject: order.UnitID, Value: order.Quantity})
	}
	e.state.Training = remaining
}
