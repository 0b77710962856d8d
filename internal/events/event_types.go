package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventDepartmentJSONCreated EventType = "department.json_created"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string    `json:"id"`
	Type      EventType `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Payload   any       `json:"payload"`
}

// DepartmentJSONCreatedPayload describes a produced department document.
type DepartmentJSONCreatedPayload struct {
	DepartmentName string  `json:"department_name"`
	HeadName       *string `json:"head_name"`
	JSON           string  `json:"json"`
}
