package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"bank-sampah-service/src/internal/entity"
	"bank-sampah-service/src/internal/gateway/messaging"
	"bank-sampah-service/src/internal/model"
	"bank-sampah-service/src/internal/model/converter"
	"bank-sampah-service/src/internal/repository"
	httpError "bank-sampah-service/src/pkg/http-error"
	"bank-sampah-service/src/pkg/log"
	"bank-sampah-service/src/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/spf13/viper"
)

const TypePickupReminder = "submission:pickup-reminder"

type SubmissionUseCase struct {
	Log                  log.Log
	Validate             *validator.Validate
	SubmissionRepository repository.SubmissionRepository
	UserRepository       repository.UserRepository
	PriceTable           entity.PriceTable
	Config               *viper.Viper
	SubmissionProducer   *messaging.SubmissionProducer
	AsynqClient          *asynq.Client
}

func NewSubmissionUseCase(
	logger log.Log,
	validate *validator.Validate,
	submissionRepository repository.SubmissionRepository,
	userRepository repository.UserRepository,
	priceTable entity.PriceTable,
	cfg *viper.Viper,
	submissionProducer *messaging.SubmissionProducer,
	asynqClient *asynq.Client,
) *SubmissionUseCase {
	return &SubmissionUseCase{
		Log:                  logger,
		Validate:             validate,
		SubmissionRepository: submissionRepository,
		UserRepository:       userRepository,
		PriceTable:           priceTable,
		Config:               cfg,
		SubmissionProducer:   submissionProducer,
		AsynqClient:          asynqClient,
	}
}

func (c *SubmissionUseCase) CreateSubmission(ctx context.Context, request *model.CreateSubmissionRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("submission-usecase", errObj.Message, "CreateSubmission", utils.ConvertString(request))
		return result
	}

	pricePerKg, ok := c.PriceTable.PriceFor(request.WasteType)
	if !ok {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("unknown waste type: %s", request.WasteType)
		result.Error = errObj
		c.Log.Error("submission-usecase", errObj.Message, "CreateSubmission", request.WasteType)
		return result
	}

	user, err := c.UserRepository.FindByID(ctx, request.UserID)
	if err != nil {
		errObj := httpError.NewNotFound()
		errObj.Message = fmt.Sprintf("user with id %s not found", request.UserID)
		result.Error = errObj
		c.Log.Error("submission-usecase", errObj.Message, "CreateSubmission", utils.ConvertString(err))
		return result
	}

	if !user.IsActive {
		errObj := httpError.NewForbidden()
		errObj.Message = "account is deactivated"
		result.Error = errObj
		c.Log.Error("submission-usecase", errObj.Message, "CreateSubmission", request.UserID)
		return result
	}

	wallet, ok := user.EwalletFor(request.EwalletType)
	if !ok {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("no registered %s e-wallet, please add one first", request.EwalletType)
		result.Error = errObj
		c.Log.Error("submission-usecase", errObj.Message, "CreateSubmission", request.UserID)
		return result
	}

	now := time.Now()
	submission := &entity.Submission{
		ID:              uuid.NewString(),
		UserID:          user.UserID,
		WasteType:       request.WasteType,
		EstimatedWeight: request.EstimatedWeight,
		PricePerKg:      pricePerKg,
		FeeRate:         c.PriceTable.FeeRate,
		EwalletType:     request.EwalletType,
		EwalletAccount:  wallet.Account,
		PickupAddress:   request.PickupAddress,
		PickupLat:       request.PickupLat,
		PickupLng:       request.PickupLng,
		PickupSchedule:  request.PickupSchedule,
		Images:          request.Images,
		Notes:           request.Notes,
		Status:          entity.StatusPending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	submission.DeriveEstimates()
	submission.StatusHistory = []entity.StatusHistory{{
		ID:           uuid.NewString(),
		SubmissionID: submission.ID,
		Status:       entity.StatusPending,
		Note:         "submission created",
		UpdatedBy:    user.UserID,
		CreatedAt:    now,
	}}

	if err = c.SubmissionRepository.Insert(ctx, submission); err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = fmt.Sprintf("failed to save submission: %v", err)
		result.Error = errObj
		c.Log.Error("submission-usecase", errObj.Message, "CreateSubmission", utils.ConvertString(err))
		return result
	}

	c.publishStatusChanged(submission, user.UserID)

	c.Log.Info("submission-usecase", "submission created", "CreateSubmission", submission.ID)
	result.Data = converter.SubmissionToResponse(submission)
	return result
}

func (c *SubmissionUseCase) UpdateStatus(ctx context.Context, request *model.UpdateSubmissionStatusRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("submission-usecase", errObj.Message, "UpdateStatus", utils.ConvertString(request))
		return result
	}

	if request.ActorRole != entity.RoleAdmin {
		errObj := httpError.NewForbidden()
		errObj.Message = "only admins can update submission status"
		result.Error = errObj
		c.Log.Error("submission-usecase", errObj.Message, "UpdateStatus", request.ActorID)
		return result
	}

	newStatus := entity.SubmissionStatus(request.Status)
	if !newStatus.Valid() {
		errObj := httpError.NewConflict()
		errObj.Message = fmt.Sprintf("unknown status: %s", request.Status)
		result.Error = errObj
		c.Log.Error("submission-usecase", errObj.Message, "UpdateStatus", request.Status)
		return result
	}

	submission, err := c.SubmissionRepository.FindByID(ctx, request.SubmissionID)
	if err != nil {
		errObj := httpError.NewNotFound()
		errObj.Message = "submission not found"
		result.Error = errObj
		c.Log.Error("submission-usecase", errObj.Message, "UpdateStatus", utils.ConvertString(err))
		return result
	}

	if submission.Status.Terminal() {
		errObj := httpError.NewConflict()
		errObj.Message = "submission is no longer updatable (already completed or cancelled)"
		result.Error = errObj
		c.Log.Error("submission-usecase", errObj.Message, "UpdateStatus", string(submission.Status))
		return result
	}

	if newStatus == entity.StatusProcessed && request.ActualWeight == nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = "actual_weight is required when marking a submission processed"
		result.Error = errObj
		c.Log.Error("submission-usecase", errObj.Message, "UpdateStatus", submission.ID)
		return result
	}

	return c.applyTransition(ctx, submission, newStatus, request.ActorID, request.Note, request.ActualWeight)
}

// CancelSubmission is the owner path: allowed only while the submission is
// still pending.
func (c *SubmissionUseCase) CancelSubmission(ctx context.Context, request *model.CancelSubmissionRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("submission-usecase", errObj.Message, "CancelSubmission", utils.ConvertString(request))
		return result
	}

	submission, err := c.SubmissionRepository.FindByID(ctx, request.SubmissionID)
	if err != nil {
		errObj := httpError.NewNotFound()
		errObj.Message = "submission not found"
		result.Error = errObj
		c.Log.Error("submission-usecase", errObj.Message, "CancelSubmission", utils.ConvertString(err))
		return result
	}

	if submission.UserID != request.ActorID {
		errObj := httpError.NewForbidden()
		errObj.Message = "only the owner can cancel a submission"
		result.Error = errObj
		c.Log.Error("submission-usecase", errObj.Message, "CancelSubmission", request.ActorID)
		return result
	}

	if submission.Status != entity.StatusPending {
		errObj := httpError.NewForbidden()
		errObj.Message = fmt.Sprintf("submission can only be cancelled while pending, current status: %s", submission.Status)
		result.Error = errObj
		c.Log.Error("submission-usecase", errObj.Message, "CancelSubmission", string(submission.Status))
		return result
	}

	return c.applyTransition(ctx, submission, entity.StatusCancelled, request.ActorID, "cancelled by owner", nil)
}

func (c *SubmissionUseCase) GetSubmission(ctx context.Context, request *model.GetSubmissionRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("submission-usecase", errObj.Message, "GetSubmission", utils.ConvertString(request))
		return result
	}

	submission, err := c.SubmissionRepository.FindByID(ctx, request.SubmissionID)
	if err != nil {
		errObj := httpError.NewNotFound()
		errObj.Message = "submission not found"
		result.Error = errObj
		c.Log.Error("submission-usecase", errObj.Message, "GetSubmission", utils.ConvertString(err))
		return result
	}

	if request.ActorRole != entity.RoleAdmin && submission.UserID != request.ActorID {
		errObj := httpError.NewForbidden()
		errObj.Message = "not allowed to view this submission"
		result.Error = errObj
		c.Log.Error("submission-usecase", errObj.Message, "GetSubmission", request.ActorID)
		return result
	}

	result.Data = converter.SubmissionToResponse(submission)
	return result
}

func (c *SubmissionUseCase) ListSubmissions(ctx context.Context, request *model.ListSubmissionsRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("submission-usecase", errObj.Message, "ListSubmissions", utils.ConvertString(request))
		return result
	}

	filter := entity.SubmissionFilter{}
	if request.UserID != "" {
		filter.UserID = &request.UserID
	}
	if request.Status != "" {
		status := entity.SubmissionStatus(request.Status)
		if !status.Valid() {
			errObj := httpError.NewBadRequest()
			errObj.Message = fmt.Sprintf("unknown status filter: %s", request.Status)
			result.Error = errObj
			return result
		}
		filter.Status = &status
	}

	submissions, err := c.SubmissionRepository.FindFiltered(ctx, filter)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = fmt.Sprintf("failed to load submissions: %v", err)
		result.Error = errObj
		c.Log.Error("submission-usecase", errObj.Message, "ListSubmissions", utils.ConvertString(err))
		return result
	}

	page, limit := normalizePage(request.Page, request.Limit)
	pageItems := utils.Paginate(submissions, page, limit)
	responses := make([]*model.SubmissionResponse, 0, len(pageItems))
	for i := range pageItems {
		responses = append(responses, converter.SubmissionToResponse(&pageItems[i]))
	}

	result.Data = responses
	result.MetaData = utils.Meta{Page: page, Limit: limit, Total: len(submissions)}
	return result
}

func (c *SubmissionUseCase) GetPriceList() utils.Result {
	return utils.Result{Data: &model.PriceListResponse{
		Prices:  c.PriceTable.Prices,
		FeeRate: c.PriceTable.FeeRate,
	}}
}

// HandlePickupReminder is registered on the asynq mux; it fires near the
// pickup schedule for confirmed submissions.
func (c *SubmissionUseCase) HandlePickupReminder(ctx context.Context, task *asynq.Task) error {
	var payload struct {
		SubmissionID string `json:"submission_id"`
	}
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return err
	}

	submission, err := c.SubmissionRepository.FindByID(ctx, payload.SubmissionID)
	if err != nil {
		c.Log.Error("submission-usecase", fmt.Sprintf("reminder: submission not found: %v", err), "HandlePickupReminder", payload.SubmissionID)
		return nil
	}

	if submission.Status != entity.StatusConfirmed {
		return nil
	}

	c.Log.Info("submission-usecase", "pickup reminder due", "HandlePickupReminder", submission.ID)
	return nil
}

func (c *SubmissionUseCase) applyTransition(ctx context.Context, submission *entity.Submission, to entity.SubmissionStatus, actorID, note string, actualWeight *float64) utils.Result {
	var result utils.Result

	now := time.Now()
	historyID := uuid.NewString()
	if err := submission.Transition(to, actorID, note, actualWeight, historyID, now); err != nil {
		errObj := httpError.NewConflict()
		errObj.Message = fmt.Sprintf("cannot move submission from %s to %s", submission.Status, to)
		result.Error = errObj
		c.Log.Error("submission-usecase", errObj.Message, "applyTransition", submission.ID)
		return result
	}

	history := &submission.StatusHistory[len(submission.StatusHistory)-1]
	if err := c.SubmissionRepository.UpdateWithHistory(ctx, submission, history); err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = fmt.Sprintf("failed to persist status change: %v", err)
		result.Error = errObj
		c.Log.Error("submission-usecase", errObj.Message, "applyTransition", utils.ConvertString(err))
		return result
	}

	c.publishStatusChanged(submission, actorID)

	if to == entity.StatusConfirmed {
		c.enqueuePickupReminder(submission)
	}

	result.Data = converter.SubmissionToResponse(submission)
	return result
}

func (c *SubmissionUseCase) publishStatusChanged(submission *entity.Submission, updatedBy string) {
	if c.SubmissionProducer == nil {
		return
	}
	event := converter.SubmissionToEvent(submission, uuid.NewString(), updatedBy)
	if err := c.SubmissionProducer.SendStatusChanged(event); err != nil {
		c.Log.Error("submission-usecase", fmt.Sprintf("failed to publish status event: %v", err), "publishStatusChanged", submission.ID)
	}
}

func (c *SubmissionUseCase) enqueuePickupReminder(submission *entity.Submission) {
	if c.AsynqClient == nil {
		return
	}

	payload, _ := json.Marshal(map[string]string{"submission_id": submission.ID})
	leadHours := c.Config.GetInt("reminder.lead_hours")
	if leadHours <= 0 {
		leadHours = 2
	}
	processAt := submission.PickupSchedule.Add(-time.Duration(leadHours) * time.Hour)

	task := asynq.NewTask(TypePickupReminder, payload)
	if _, err := c.AsynqClient.Enqueue(task, asynq.ProcessAt(processAt)); err != nil {
		c.Log.Error("submission-usecase", fmt.Sprintf("failed to enqueue pickup reminder: %v", err), "enqueuePickupReminder", submission.ID)
	}
}

func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	return page, limit
}
