package game

import (
	"time"

	"github.com/Montyshaa/Sumeris/internal/catalog"
)

// ResearchSlots is one plus any slot bonuses from completed research.
func (e *Engine) ResearchSlots() int {
	return 1 + e.slotBonus(catalog.ScopeResearch)
}

// FreeResearchSlots returns remaining capacity, never negative.
func (e *Engine) FreeResearchSlots() int {
	free := e.ResearchSlots() - len(e.state.Research)
	if free < 0 {
		return 0
	}
	return free
}

// IsResearchAvailable reports whether the entry is eligible to start:
// not completed and all prerequisites met.
func (e *Engine) IsResearchAvailable(researchID string) bool {
	for _, r := range e.catalog.AvailableResearch(e.state.CompletedResearchSet()) {
		if r.ID == researchID {
			return true
		}
	}
	return false
}

// StartResearch enqueues a research entry. The same entry cannot be
// queued twice.
func (e *Engine) StartResearch(researchID string) bool {
	rt, ok := e.catalog.Research(researchID)
	if !ok {
		return false
	}
	if !e.IsResearchAvailable(researchID) {
		return false
	}
	for _, order := range e.state.Research {
		if order.ResearchID == researchID {
			return false
		}
	}
	if e.FreeResearchSlots() <= 0 {
		return false
	}

	cost := e.scopedCost(catalog.ScopeResearch, rt.Cost)
	if !e.state.Resources.Covers(cost) {
		return false
	}
	duration := e.scopedDuration(catalog.ScopeResearch, rt.Duration)

	now := e.clock.Now()
	e.state.Resources = e.state.Resources.Sub(cost).ClampZero()
	e.state.Research = append(e.state.Research, &ResearchOrder{
		ID:         e.nextID(researchID),
		ResearchID: researchID,
		StartedAt:  now,
		FinishAt:   now.Add(duration),
		Paid:       cost,
	})
	return true
}

// CancelResearch refunds 75% of the recorded cost and frees the slot.
func (e *Engine) CancelResearch(orderID string) bool {
	for i, order := range e.state.Research {
		if order.ID != orderID {
			continue
		}
		refund := order.Paid.Scale(refundFactor).Truncate()
		e.state.Resources = e.state.Resources.Add(refund).ClampZero()
		e.state.Research = append(e.state.Research[:i], e.state.Research[i+1:]...)
		return true
	}
	return false
}

// sweepResearch moves due orders into the append-only completed set.
func (e *Engine) sweepResearch(now time.Time) {
	remaining := e.state.Research[:0]
	for _, order := range e.state.Research {
		if order.FinishAt.After(now) {
			remaining = append(remaining, order)
			continue
		}
		e.state.CompletedResearch = append(e.state.CompletedResearch, CompletedResearch{
			ID:          order.ResearchID,
			CompletedAt: now,
		})
		e.emit(Event{Type: EventResearchCompleted, Subject: order.ResearchID})
	}
	e.state.Research = remaining
}
