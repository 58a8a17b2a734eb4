package game

import (
	"time"

	"github.com/Montyshaa/Sumeris/internal/catalog"
)

// seedMissions starts the day-one cohort on a fresh aggregate. Loading
// an existing save leaves its mission list alone.
func (e *Engine) seedMissions() {
	if len(e.state.Missions) > 0 {
		return
	}
	e.startMissionCohort(1)
}

func (e *Engine) startMissionCohort(day int) {
	now := e.clock.Now()
	for _, m := range e.catalog.MissionsByDay(day) {
		progress := &MissionProgress{MissionID: m.ID, StartedAt: now}
		if obj, ok := m.Objective.(catalog.ProduceResource); ok {
			progress.ProducedBaseline = e.state.Produced.Get(obj.Resource)
		}
		e.state.Missions = append(e.state.Missions, progress)
	}
}

// recomputeMissions projects each incomplete mission's progress from
// live state. The projection is idempotent: identical inputs yield
// identical progress.
func (e *Engine) recomputeMissions(now time.Time) {
	for _, pm := range e.state.Missions {
		if pm.CompletedAt != nil {
			continue
		}
		m, ok := e.catalog.Mission(pm.MissionID)
		if !ok {
			continue
		}
		pm.Progress = e.missionProgress(m, pm, now)
		if pm.Progress >= 1 {
			pm.Progress = 1
			stamp := now
			pm.CompletedAt = &stamp
			e.grantMissionReward(m)
			e.emit(Event{Type: EventMissionCompleted, Subject: m.ID})
		}
	}
}

func (e *Engine) missionProgress(m *catalog.MissionType, pm *MissionProgress, now time.Time) float64 {
	switch obj := m.Objective.(type) {
	case catalog.ReachBuildingLevel:
		return ratio(float64(e.state.BuildingLevel(obj.Building)), float64(obj.Level))
	case catalog.ReachIndex:
		return ratio(e.EffectiveIndices().Get(obj.Index), obj.Value)
	case catalog.ProduceResource:
		produced := e.state.Produced.Get(obj.Resource) - pm.ProducedBaseline
		return ratio(produced, obj.Amount)
	case catalog.ExploreTerritories:
		return ratio(float64(len(e.state.Map.Explored)), float64(obj.Count))
	case catalog.ControlTerritories:
		return ratio(float64(len(e.state.Map.Controlled)), float64(obj.Count))
	case catalog.HoldTerritory:
		var longest time.Duration
		for _, since := range e.state.Map.ControlledAt {
			if held := now.Sub(since); held > longest {
				longest = held
			}
		}
		return ratio(longest.Minutes(), obj.Duration.Minutes())
	case catalog.TrainUnits:
		return ratio(float64(e.state.UnitCount(obj.Unit)), float64(obj.Count))
	case catalog.CompleteResearch:
		if e.state.IsResearchCompleted(obj.Research) {
			return 1
		}
		return 0
	case catalog.ActivatePolicy:
		if e.state.IsPolicyActive(obj.Policy) {
			return 1
		}
		return 0
	}
	return 0
}

func ratio(have, want float64) float64 {
	if want <= 0 {
		return 1
	}
	if have >= want {
		return 1
	}
	if have < 0 {
		return 0
	}
	return have / want
}

// grantMissionReward pays the reward exactly once, at the completion
// transition.
func (e *Engine) grantMissionReward(m *catalog.MissionType) {
	if !m.Reward.Resources.IsZero() {
		e.state.Resources = e.state.Resources.Add(m.Reward.Resources).ClampZero()
	}
	for kind, value := range m.Reward.Indices {
		e.state.Indices.Set(kind, e.state.Indices.Get(kind)+value)
	}
	e.state.Indices = e.state.Indices.Clamp()
}

// MissionState pairs a mission definition with the player's progress.
type MissionState struct {
	Mission  *catalog.MissionType
	Progress *MissionProgress
}

// CurrentDayMissions returns the active tutorial day's missions with
// progress, in display order.
func (e *Engine) CurrentDayMissions() []MissionState {
	var out []MissionState
	for _, m := range e.catalog.MissionsByDay(e.state.TutorialDay) {
		for _, pm := range e.state.Missions {
			if pm.MissionID == m.ID {
				out = append(out, MissionState{Mission: m, Progress: pm})
				break
			}
		}
	}
	return out
}

// AdvanceDay moves to the next tutorial day once every mission of the
// current day is complete, starting the next cohort.
func (e *Engine) AdvanceDay() bool {
	if e.state.TutorialDay >= catalog.TutorialDays {
		return false
	}
	for _, ms := range e.CurrentDayMissions() {
		if ms.Progress.CompletedAt == nil {
			return false
		}
	}
	e.state.TutorialDay++
	e.startMissionCohort(e.state.TutorialDay)
	e.emit(Event{Type: EventDayAdvanced, Value: e.state.TutorialDay})
	return true
}
