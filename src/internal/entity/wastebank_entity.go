package entity

import (
	"time"

	"bank-sampah-service/src/pkg/utils"
)

type WasteBank struct {
	ID             string     `json:"id" db:"id"`
	Name           string     `json:"name" db:"name"`
	Description    string     `json:"description" db:"description"`
	Address        string     `json:"address" db:"address"`
	City           string     `json:"city" db:"city"`
	Province       string     `json:"province" db:"province"`
	Latitude       float64    `json:"latitude" db:"latitude"`
	Longitude      float64    `json:"longitude" db:"longitude"`
	OperatingHours string     `json:"operating_hours" db:"operating_hours"`
	AcceptedTypes  StringList `json:"accepted_types" db:"accepted_types"`
	IsActive       bool       `json:"is_active" db:"is_active"`
	IsPartner      bool       `json:"is_partner" db:"is_partner"`
	Rating         float64    `json:"rating" db:"rating"`
	TotalReviews   int        `json:"total_reviews" db:"total_reviews"`
	Reviews        []Review   `json:"-" db:"-"`
	CreatedAt      time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at" db:"updated_at"`
}

type Review struct {
	ID          string    `json:"id" db:"id"`
	WasteBankID string    `json:"waste_bank_id" db:"waste_bank_id"`
	UserID      string    `json:"user_id" db:"user_id"`
	UserName    string    `json:"user_name" db:"user_name"`
	Rating      int       `json:"rating" db:"rating"`
	Comment     string    `json:"comment" db:"comment"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// AcceptsType reports whether the bank takes the given waste type.
func (w *WasteBank) AcceptsType(wasteType string) bool {
	for _, t := range w.AcceptedTypes {
		if t == wasteType {
			return true
		}
	}
	return false
}

// RecomputeRating keeps rating and total_reviews derived from the review
// collection: rating is the mean rounded to one decimal.
func (w *WasteBank) RecomputeRating(reviews []Review) {
	w.TotalReviews = len(reviews)
	if len(reviews) == 0 {
		w.Rating = 0
		return
	}
	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}
	w.Rating = utils.Round1(float64(sum) / float64(len(reviews)))
}
