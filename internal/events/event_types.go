package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventParticipantJoined  EventType = "participant_joined"
	EventParticipantRemoved EventType = "participant_removed"
	EventAssignmentsDrawn   EventType = "assignments_drawn"
)

// Event represents a domain event emitted by the registry.
type Event struct {
	ID            string      `json:"id"`
	Type          EventType   `json:"type"`
	ParticipantID string      `json:"participant_id,omitempty"`
	Timestamp     time.Time   `json:"timestamp"`
	Payload       interface{} `json:"payload"`
}

// ParticipantJoinedPayload payload.
type ParticipantJoinedPayload struct {
	Name string `json:"name"`
}

// ParticipantRemovedPayload payload.
type ParticipantRemovedPayload struct {
	Name string `json:"name"`
}

// AssignmentsDrawnPayload payload.
type AssignmentsDrawnPayload struct {
	Participants int `json:"participants"`
}
