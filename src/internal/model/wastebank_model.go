package model

import "time"

type SearchWasteBankRequest struct {
	Search    string   `json:"-" validate:"max=100"`
	City      string   `json:"-" validate:"max=100"`
	WasteType string   `json:"-" validate:"max=100"`
	Latitude  *float64 `json:"-" validate:"omitempty,gte=-90,lte=90"`
	Longitude *float64 `json:"-" validate:"omitempty,gte=-180,lte=180"`
	RadiusKm  float64  `json:"-" validate:"gte=0,lte=1000"`
	SortBy    string   `json:"-" validate:"omitempty,oneof=rating distance name"`
	Page      int      `json:"-" validate:"gte=0"`
	Limit     int      `json:"-" validate:"gte=0,lte=100"`
}

type WasteBankResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Description    string    `json:"description,omitempty"`
	Address        string    `json:"address"`
	City           string    `json:"city"`
	Province       string    `json:"province"`
	Latitude       float64   `json:"latitude"`
	Longitude      float64   `json:"longitude"`
	OperatingHours string    `json:"operating_hours,omitempty"`
	AcceptedTypes  []string  `json:"accepted_types"`
	IsPartner      bool      `json:"is_partner"`
	Rating         float64   `json:"rating"`
	TotalReviews   int       `json:"total_reviews"`
	DistanceKm     *float64  `json:"distance_km,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

type CreateWasteBankRequest struct {
	Name           string   `json:"name" validate:"required,max=100"`
	Description    string   `json:"description" validate:"max=500"`
	Address        string   `json:"address" validate:"required,max=255"`
	City           string   `json:"city" validate:"required,max=100"`
	Province       string   `json:"province" validate:"required,max=100"`
	Latitude       float64  `json:"latitude" validate:"required,gte=-90,lte=90"`
	Longitude      float64  `json:"longitude" validate:"required,gte=-180,lte=180"`
	OperatingHours string   `json:"operating_hours" validate:"max=100"`
	AcceptedTypes  []string `json:"accepted_types" validate:"required,min=1,dive,max=100"`
	IsPartner      bool     `json:"is_partner"`
}

type UpdateWasteBankRequest struct {
	ID             string   `json:"-" validate:"required,max=100"`
	Name           string   `json:"name,omitempty" validate:"max=100"`
	Description    string   `json:"description,omitempty" validate:"max=500"`
	Address        string   `json:"address,omitempty" validate:"max=255"`
	City           string   `json:"city,omitempty" validate:"max=100"`
	Province       string   `json:"province,omitempty" validate:"max=100"`
	OperatingHours string   `json:"operating_hours,omitempty" validate:"max=100"`
	AcceptedTypes  []string `json:"accepted_types,omitempty" validate:"omitempty,min=1,dive,max=100"`
	IsActive       *bool    `json:"is_active,omitempty"`
	IsPartner      *bool    `json:"is_partner,omitempty"`
}

type SubmitReviewRequest struct {
	WasteBankID string `json:"-" validate:"required,max=100"`
	UserID      string `json:"-" validate:"required,max=100"`
	UserName    string `json:"-" validate:"required,max=100"`
	Rating      int    `json:"rating" validate:"required,gte=1,lte=5"`
	Comment     string `json:"comment" validate:"max=500"`
}

type SubmitReviewResponse struct {
	Review     ReviewResponse `json:"review"`
	BankRating float64        `json:"bank_rating"`
}

type ListReviewsRequest struct {
	WasteBankID string `json:"-" validate:"required,max=100"`
	Sort        string `json:"-" validate:"omitempty,oneof=newest oldest rating_high rating_low"`
	Page        int    `json:"-" validate:"gte=0"`
	Limit       int    `json:"-" validate:"gte=0,lte=100"`
}

type ReviewResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	UserName  string    `json:"user_name"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ReviewListResponse struct {
	Reviews   []ReviewResponse `json:"reviews"`
	Histogram map[int]int      `json:"histogram"`
}
