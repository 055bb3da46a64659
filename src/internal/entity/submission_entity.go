package entity

import (
	"errors"
	"time"

	"bank-sampah-service/src/pkg/utils"
)

type SubmissionStatus string

const (
	StatusPending   SubmissionStatus = "pending"
	StatusConfirmed SubmissionStatus = "confirmed"
	StatusPickedUp  SubmissionStatus = "picked_up"
	StatusProcessed SubmissionStatus = "processed"
	StatusCompleted SubmissionStatus = "completed"
	StatusCancelled SubmissionStatus = "cancelled"
)

var ErrInvalidTransition = errors.New("invalid status transition")

// statusTransitions is the closed transition table. Anything not listed is
// rejected; completed and cancelled have no outgoing edges.
var statusTransitions = map[SubmissionStatus][]SubmissionStatus{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusPickedUp, StatusCancelled},
	StatusPickedUp:  {StatusProcessed, StatusCancelled},
	StatusProcessed: {StatusCompleted, StatusCancelled},
}

func (s SubmissionStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusPickedUp, StatusProcessed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

func (s SubmissionStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

type Submission struct {
	ID                string           `json:"id" db:"id"`
	UserID            string           `json:"user_id" db:"user_id"`
	WasteType         string           `json:"waste_type" db:"waste_type"`
	EstimatedWeight   float64          `json:"estimated_weight" db:"estimated_weight"`
	ActualWeight      *float64         `json:"actual_weight,omitempty" db:"actual_weight"`
	PricePerKg        float64          `json:"price_per_kg" db:"price_per_kg"`
	FeeRate           float64          `json:"fee_rate" db:"fee_rate"`
	EstimatedValue    float64          `json:"estimated_value" db:"estimated_value"`
	EstimatedFee      float64          `json:"estimated_fee" db:"estimated_fee"`
	EstimatedTransfer float64          `json:"estimated_transfer" db:"estimated_transfer"`
	ActualValue       *float64         `json:"actual_value,omitempty" db:"actual_value"`
	PlatformFee       *float64         `json:"platform_fee,omitempty" db:"platform_fee"`
	ActualTransfer    *float64         `json:"actual_transfer,omitempty" db:"actual_transfer"`
	EwalletType       string           `json:"ewallet_type" db:"ewallet_type"`
	EwalletAccount    string           `json:"ewallet_account" db:"ewallet_account"`
	PickupAddress     string           `json:"pickup_address" db:"pickup_address"`
	PickupLat         float64          `json:"pickup_lat" db:"pickup_lat"`
	PickupLng         float64          `json:"pickup_lng" db:"pickup_lng"`
	PickupSchedule    time.Time        `json:"pickup_schedule" db:"pickup_schedule"`
	Images            StringList       `json:"images" db:"images"`
	Notes             string           `json:"notes" db:"notes"`
	Status            SubmissionStatus `json:"status" db:"status"`
	StatusHistory     []StatusHistory  `json:"status_history" db:"-"`
	CreatedAt         time.Time        `json:"created_at" db:"created_at"`
	UpdatedAt         time.Time        `json:"updated_at" db:"updated_at"`
}

// SubmissionFilter narrows repository queries; nil fields match everything.
type SubmissionFilter struct {
	UserID *string
	Status *SubmissionStatus
}

// StatusHistory entries are append-only; nothing in the codebase rewrites one.
type StatusHistory struct {
	ID           string           `json:"id" db:"id"`
	SubmissionID string           `json:"submission_id" db:"submission_id"`
	Status       SubmissionStatus `json:"status" db:"status"`
	Note         string           `json:"note" db:"note"`
	UpdatedBy    string           `json:"updated_by" db:"updated_by"`
	CreatedAt    time.Time        `json:"created_at" db:"created_at"`
}

func (s *Submission) CanTransition(to SubmissionStatus) bool {
	for _, allowed := range statusTransitions[s.Status] {
		if allowed == to {
			return true
		}
	}
	return false
}

// Transition moves the submission to a new status and appends the history
// entry. Financial fields are untouched unless the move is to processed with
// an actual weight, in which case the actual trio is derived from the price
// snapshotted at creation. Nothing changes when the transition is rejected.
func (s *Submission) Transition(to SubmissionStatus, actorID, note string, actualWeight *float64, historyID string, at time.Time) error {
	if !to.Valid() {
		return ErrInvalidTransition
	}
	if !s.CanTransition(to) {
		return ErrInvalidTransition
	}

	if to == StatusProcessed && actualWeight != nil {
		s.applyActualWeight(*actualWeight)
	}

	s.Status = to
	s.UpdatedAt = at
	s.StatusHistory = append(s.StatusHistory, StatusHistory{
		ID:           historyID,
		SubmissionID: s.ID,
		Status:       to,
		Note:         note,
		UpdatedBy:    actorID,
		CreatedAt:    at,
	})
	return nil
}

func (s *Submission) applyActualWeight(weight float64) {
	value := utils.Round2(weight * s.PricePerKg)
	fee := utils.Round2(value * s.FeeRate)
	transfer := utils.Round2(value - fee)

	s.ActualWeight = &weight
	s.ActualValue = &value
	s.PlatformFee = &fee
	s.ActualTransfer = &transfer
}

// DeriveEstimates fills the estimated trio from weight and snapshotted price.
func (s *Submission) DeriveEstimates() {
	s.EstimatedValue = utils.Round2(s.EstimatedWeight * s.PricePerKg)
	s.EstimatedFee = utils.Round2(s.EstimatedValue * s.FeeRate)
	s.EstimatedTransfer = utils.Round2(s.EstimatedValue - s.EstimatedFee)
}
