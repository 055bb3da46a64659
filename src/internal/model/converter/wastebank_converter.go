package converter

import (
	"bank-sampah-service/src/internal/entity"
	"bank-sampah-service/src/internal/model"
	"bank-sampah-service/src/pkg/utils"
)

// WasteBankToResponse maps a bank plus the optional computed distance. The
// distance is rounded to 2 decimals for display only.
func WasteBankToResponse(bank *entity.WasteBank, distanceKm *float64) *model.WasteBankResponse {
	resp := &model.WasteBankResponse{
		ID:             bank.ID,
		Name:           bank.Name,
		Description:    bank.Description,
		Address:        bank.Address,
		City:           bank.City,
		Province:       bank.Province,
		Latitude:       bank.Latitude,
		Longitude:      bank.Longitude,
		OperatingHours: bank.OperatingHours,
		AcceptedTypes:  bank.AcceptedTypes,
		IsPartner:      bank.IsPartner,
		Rating:         bank.Rating,
		TotalReviews:   bank.TotalReviews,
		CreatedAt:      bank.CreatedAt,
	}
	if distanceKm != nil {
		rounded := utils.Round2(*distanceKm)
		resp.DistanceKm = &rounded
	}
	return resp
}

func ReviewToResponse(review *entity.Review) model.ReviewResponse {
	return model.ReviewResponse{
		ID:        review.ID,
		UserID:    review.UserID,
		UserName:  review.UserName,
		Rating:    review.Rating,
		Comment:   review.Comment,
		CreatedAt: review.CreatedAt,
		UpdatedAt: review.UpdatedAt,
	}
}
