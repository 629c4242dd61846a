package timeline

import "time"

// EventType distinguishes clinical notes from audit records.
type EventType string

const (
	TypeNote  EventType = "Note"
	TypeAudit EventType = "Audit"
)

// Event is one entry on a patient's care timeline.
type Event struct {
	ID          int       `json:"id" yaml:"id"`
	Title       string    `json:"title" yaml:"title"`
	Description string    `json:"description" yaml:"description"`
	Timestamp   time.Time `json:"timestamp" yaml:"timestamp"`
	Message     string    `json:"message" yaml:"message"`
	Type        EventType `json:"type" yaml:"type"`
}
