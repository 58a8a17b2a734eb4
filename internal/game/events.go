package game

// EventType names a state change the engine reports to observers.
type EventType string

const (
	EventConstructionCompleted EventType = "construction_completed"
	EventResearchCompleted     EventType = "research_completed"
	EventTrainingCompleted     EventType = "training_completed"
	EventPolicyExpired         EventType = "policy_expired"
	EventMissionCompleted      EventType = "mission_completed"
	EventDayAdvanced           EventType = "day_advanced"
)

// Event is a change notification emitted by engine operations. Subject
// carries the catalog id involved; Value carries the level, quantity or
// day where one applies.
type Event struct {
	Type    EventType `json:"type"`
	Subject string    `json:"subject,omitempty"`
	Value   int       `json:"value,omitempty"`
}
