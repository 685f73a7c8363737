package domain

import "outreach_backend/platform/events"

// Event names published by the tracking service.
const (
	EventRecordCreated    = "outreach.record_created"
	EventResponseRecorded = "outreach.response_recorded"
)

// RecordCreatedEvent is published after a new outreach record is durable.
type RecordCreatedEvent struct {
	events.BaseEvent
	OutreachID string
	ProjectID  string
	Contractor string
}

func (RecordCreatedEvent) EventName() string { return EventRecordCreated }

// ResponseRecordedEvent is published after an external response is appended.
type ResponseRecordedEvent struct {
	events.BaseEvent
	OutreachID string
	ProjectID  string
	Channel    string
	Type       ResponseType
	NewStatus  Status
}

func (ResponseRecordedEvent) EventName() string { return EventResponseRecorded }
