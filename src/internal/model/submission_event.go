package model

import "time"

type Event interface {
	GetId() string
}

type SubmissionEvent struct {
	EventID      string    `json:"event_id"`
	SubmissionID string    `json:"submission_id"`
	UserID       string    `json:"user_id"`
	WasteType    string    `json:"waste_type"`
	Status       string    `json:"status"`
	UpdatedBy    string    `json:"updated_by"`
	OccurredAt   time.Time `json:"occurred_at"`
}

func (e *SubmissionEvent) GetId() string {
	return e.EventID
}
