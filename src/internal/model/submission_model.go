package model

import (
	"time"

	"bank-sampah-service/src/internal/entity"
)

type CreateSubmissionRequest struct {
	UserID          string    `json:"-" validate:"required,max=100"`
	WasteType       string    `json:"waste_type" validate:"required,max=100"`
	EstimatedWeight float64   `json:"estimated_weight" validate:"required,gte=0.1,lte=100"`
	EwalletType     string    `json:"ewallet_type" validate:"required,oneof=dana ovo gopay"`
	PickupAddress   string    `json:"pickup_address" validate:"required,max=255"`
	PickupLat       float64   `json:"pickup_lat" validate:"required,gte=-90,lte=90"`
	PickupLng       float64   `json:"pickup_lng" validate:"required,gte=-180,lte=180"`
	PickupSchedule  time.Time `json:"pickup_schedule" validate:"required"`
	Notes           string    `json:"notes" validate:"max=500"`
	Images          []string  `json:"images" validate:"max=5,dive,max=255"`
}

type UpdateSubmissionStatusRequest struct {
	SubmissionID string   `json:"-" validate:"required,max=100"`
	ActorID      string   `json:"-" validate:"required,max=100"`
	ActorRole    string   `json:"-" validate:"required,oneof=user admin"`
	Status       string   `json:"status" validate:"required,max=50"`
	Note         string   `json:"note" validate:"max=500"`
	ActualWeight *float64 `json:"actual_weight,omitempty" validate:"omitempty,gte=0.1,lte=1000"`
}

type CancelSubmissionRequest struct {
	SubmissionID string `json:"-" validate:"required,max=100"`
	ActorID      string `json:"-" validate:"required,max=100"`
}

type GetSubmissionRequest struct {
	SubmissionID string `json:"-" validate:"required,max=100"`
	ActorID      string `json:"-" validate:"required,max=100"`
	ActorRole    string `json:"-" validate:"required,oneof=user admin"`
}

type ListSubmissionsRequest struct {
	UserID string `json:"-" validate:"max=100"`
	Status string `json:"-" validate:"max=50"`
	Page   int    `json:"-" validate:"gte=0"`
	Limit  int    `json:"-" validate:"gte=0,lte=100"`
}

type SubmissionResponse struct {
	ID                string                  `json:"id"`
	UserID            string                  `json:"user_id"`
	WasteType         string                  `json:"waste_type"`
	EstimatedWeight   float64                 `json:"estimated_weight"`
	ActualWeight      *float64                `json:"actual_weight,omitempty"`
	PricePerKg        float64                 `json:"price_per_kg"`
	EstimatedValue    float64                 `json:"estimated_value"`
	EstimatedFee      float64                 `json:"estimated_fee"`
	EstimatedTransfer float64                 `json:"estimated_transfer"`
	ActualValue       *float64                `json:"actual_value,omitempty"`
	PlatformFee       *float64                `json:"platform_fee,omitempty"`
	ActualTransfer    *float64                `json:"actual_transfer,omitempty"`
	EwalletType       string                  `json:"ewallet_type"`
	EwalletAccount    string                  `json:"ewallet_account"`
	PickupAddress     string                  `json:"pickup_address"`
	PickupLat         float64                 `json:"pickup_lat"`
	PickupLng         float64                 `json:"pickup_lng"`
	PickupSchedule    time.Time               `json:"pickup_schedule"`
	Images            []string                `json:"images"`
	Notes             string                  `json:"notes,omitempty"`
	Status            entity.SubmissionStatus `json:"status"`
	StatusHistory     []StatusHistoryItem     `json:"status_history"`
	CreatedAt         time.Time               `json:"created_at"`
	UpdatedAt         time.Time               `json:"updated_at"`
}

type StatusHistoryItem struct {
	Status    entity.SubmissionStatus `json:"status"`
	Note      string                  `json:"note,omitempty"`
	UpdatedBy string                  `json:"updated_by"`
	CreatedAt time.Time               `json:"created_at"`
}

type PriceListResponse struct {
	Prices  map[string]float64 `json:"prices"`
	FeeRate float64            `json:"fee_rate"`
}
