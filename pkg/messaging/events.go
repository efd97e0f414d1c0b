package messaging

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Event types
const (
	// Report pipeline events
	EventReportProcessed = "report.processed"
	EventReportRejected  = "report.rejected"

	// Feedback events
	EventFeedbackSubmitted = "feedback.submitted"

	// User events
	EventUserRegistered = "user.registered"
)

// Exchange names
const (
	ExchangeReportEvents = "report.events"
)

// Event is the base event structure
type Event struct {
	ID            string          `json:"id"`
	Type          string          `json:"type"`
	Source        string          `json:"source"`
	Timestamp     time.Time       `json:"timestamp"`
	CorrelationID string          `json:"correlation_id"`
	Data          json.RawMessage `json:"data"`
}

// NewEvent creates a new event with the given type and data
func NewEvent(eventType, source, correlationID string, data interface{}) (*Event, error) {
	dataBytes, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}

	return &Event{
		ID:            uuid.New().String(),
		Type:          eventType,
		Source:        source,
		Timestamp:     time.Now().UTC(),
		CorrelationID: correlationID,
		Data:          dataBytes,
	}, nil
}

// UnmarshalData unmarshals the event data into the provided struct
func (e *Event) UnmarshalData(v interface{}) error {
	return json.Unmarshal(e.Data, v)
}

// ReportProcessedEvent is published when a report finishes the pipeline successfully.
// It carries no report text, only anonymized metadata for analytics.
type ReportProcessedEvent struct {
	JobID       string   `json:"job_id"`
	Modality    string   `json:"modality,omitempty"`
	BodyRegion  string   `json:"body_region,omitempty"`
	PatientAge  *int     `json:"patient_age,omitempty"`
	PatientSex  string   `json:"patient_sex,omitempty"`
	Organs      []string `json:"organs,omitempty"`
	Conditions  []string `json:"conditions,omitempty"`
	DiseaseTags []string `json:"disease_tags,omitempty"`
	Language    string   `json:"language"`
	DurationMs  int64    `json:"duration_ms"`
}

// ReportRejectedEvent is published when an upload fails validation
type ReportRejectedEvent struct {
	JobID   string   `json:"job_id"`
	Reasons []string `json:"reasons"`
}

// FeedbackSubmittedEvent is published when a user submits feedback
type FeedbackSubmittedEvent struct {
	FeedbackID string `json:"feedback_id"`
	UserID     string `json:"user_id,omitempty"`
	Rating     int    `json:"rating"`
}

// UserRegisteredEvent is published when a new user signs up
type UserRegisteredEvent struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
}
