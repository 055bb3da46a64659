package converter

import (
	"bank-sampah-service/src/internal/entity"
	"bank-sampah-service/src/internal/model"
)

func SubmissionToResponse(s *entity.Submission) *model.SubmissionResponse {
	history := make([]model.StatusHistoryItem, 0, len(s.StatusHistory))
	for _, h := range s.StatusHistory {
		history = append(history, model.StatusHistoryItem{
			Status:    h.Status,
			Note:      h.Note,
			UpdatedBy: h.UpdatedBy,
			CreatedAt: h.CreatedAt,
		})
	}
	return &model.SubmissionResponse{
		ID:                s.ID,
		UserID:            s.UserID,
		WasteType:         s.WasteType,
		EstimatedWeight:   s.EstimatedWeight,
		ActualWeight:      s.ActualWeight,
		PricePerKg:        s.PricePerKg,
		EstimatedValue:    s.EstimatedValue,
		EstimatedFee:      s.EstimatedFee,
		EstimatedTransfer: s.EstimatedTransfer,
		ActualValue:       s.ActualValue,
		PlatformFee:       s.PlatformFee,
		ActualTransfer:    s.ActualTransfer,
		EwalletType:       s.EwalletType,
		EwalletAccount:    s.EwalletAccount,
		PickupAddress:     s.PickupAddress,
		PickupLat:         s.PickupLat,
		PickupLng:         s.PickupLng,
		PickupSchedule:    s.PickupSchedule,
		Images:            s.Images,
		Notes:             s.Notes,
		Status:            s.Status,
		StatusHistory:     history,
		CreatedAt:         s.CreatedAt,
		UpdatedAt:         s.UpdatedAt,
	}
}

func SubmissionToEvent(s *entity.Submission, eventID, updatedBy string) *model.SubmissionEvent {
	return &model.SubmissionEvent{
		EventID:      eventID,
		SubmissionID: s.ID,
		UserID:       s.UserID,
		WasteType:    s.WasteType,
		Status:       string(s.Status),
		UpdatedBy:    updatedBy,
		OccurredAt:   s.UpdatedAt,
	}
}
