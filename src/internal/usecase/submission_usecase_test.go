package usecase_test

import (
	"context"
	"testing"
	"time"

	"bank-sampah-service/src/internal/entity"
	"bank-sampah-service/src/internal/model"
	"bank-sampah-service/src/internal/usecase"
	httpError "bank-sampah-service/src/pkg/http-error"
	"bank-sampah-service/src/pkg/log"
	"bank-sampah-service/src/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSubmissionEnv() (*usecase.SubmissionUseCase, *fakeUserRepository, *fakeSubmissionRepository) {
	userRepo := &fakeUserRepository{}
	submissionRepo := &fakeSubmissionRepository{}
	priceTable := entity.PriceTable{
		Prices:  map[string]float64{"Botol Plastik": 3000, "Kertas": 2000},
		FeeRate: 0.10,
	}
	uc := usecase.NewSubmissionUseCase(log.Log{}, validator.New(), submissionRepo, userRepo, priceTable, viper.New(), nil, nil)
	return uc, userRepo, submissionRepo
}

func seedUser(repo *fakeUserRepository, id string) *entity.User {
	u := &entity.User{
		UserID:   id,
		FullName: "Budi Santoso",
		Email:    id + "@mail.com",
		Role:     entity.RoleUser,
		IsActive: true,
		Ewallets: []entity.EWallet{
			{ID: "wallet-" + id, UserID: id, Provider: "gopay", Account: "081234567890"},
		},
	}
	repo.users = append(repo.users, u)
	return u
}

func validCreateRequest(userID string) *model.CreateSubmissionRequest {
	return &model.CreateSubmissionRequest{
		UserID:          userID,
		WasteType:       "Botol Plastik",
		EstimatedWeight: 2.0,
		EwalletType:     "gopay",
		PickupAddress:   "Jl. Pandanaran No. 12, Semarang",
		PickupLat:       -6.9930,
		PickupLng:       110.4203,
		PickupSchedule:  time.Now().Add(48 * time.Hour),
	}
}

func requireHTTPError(t *testing.T, err error, code int) {
	t.Helper()
	var commonErr *httpError.CommonError
	require.ErrorAs(t, err, &commonErr)
	assert.Equal(t, code, commonErr.Code)
}

func TestCreateSubmission(t *testing.T) {
	uc, userRepo, submissionRepo := newSubmissionEnv()
	seedUser(userRepo, "user-1")

	result := uc.CreateSubmission(context.Background(), validCreateRequest("user-1"))
	require.NoError(t, result.Error)

	response := result.Data.(*model.SubmissionResponse)
	assert.Equal(t, entity.StatusPending, response.Status)
	assert.Equal(t, 3000.0, response.PricePerKg)
	assert.Equal(t, 6000.0, response.EstimatedValue)
	assert.Equal(t, 600.0, response.EstimatedFee)
	assert.Equal(t, 5400.0, response.EstimatedTransfer)
	assert.Nil(t, response.ActualValue)
	assert.Equal(t, "081234567890", response.EwalletAccount)
	require.Len(t, response.StatusHistory, 1)
	assert.Equal(t, entity.StatusPending, response.StatusHistory[0].Status)

	require.Len(t, submissionRepo.submissions, 1)
}

func TestCreateSubmissionUnknownWasteType(t *testing.T) {
	uc, userRepo, _ := newSubmissionEnv()
	seedUser(userRepo, "user-1")

	request := validCreateRequest("user-1")
	request.WasteType = "Styrofoam"

	result := uc.CreateSubmission(context.Background(), request)
	requireHTTPError(t, result.Error, 400)
}

func TestCreateSubmissionWithoutEwallet(t *testing.T) {
	uc, userRepo, _ := newSubmissionEnv()
	seedUser(userRepo, "user-1")

	request := validCreateRequest("user-1")
	request.EwalletType = "dana"

	result := uc.CreateSubmission(context.Background(), request)
	requireHTTPError(t, result.Error, 400)
}

func TestCreateSubmissionDeactivatedUser(t *testing.T) {
	uc, userRepo, _ := newSubmissionEnv()
	user := seedUser(userRepo, "user-1")
	user.IsActive = false

	result := uc.CreateSubmission(context.Background(), validCreateRequest("user-1"))
	requireHTTPError(t, result.Error, 403)
}

func TestUpdateStatusFullLifecycle(t *testing.T) {
	uc, userRepo, _ := newSubmissionEnv()
	seedUser(userRepo, "user-1")
	ctx := context.Background()

	created := uc.CreateSubmission(ctx, validCreateRequest("user-1"))
	require.NoError(t, created.Error)
	id := created.Data.(*model.SubmissionResponse).ID

	steps := []struct {
		status string
		weight *float64
	}{
		{"confirmed", nil},
		{"picked_up", nil},
		{"processed", f64(1.8)},
		{"completed", nil},
	}
	for _, step := range steps {
		result := uc.UpdateStatus(ctx, &model.UpdateSubmissionStatusRequest{
			SubmissionID: id,
			ActorID:      "admin-1",
			ActorRole:    entity.RoleAdmin,
			Status:       step.status,
			ActualWeight: step.weight,
		})
		require.NoError(t, result.Error, "transition to %s", step.status)
	}

	final := uc.GetSubmission(ctx, &model.GetSubmissionRequest{
		SubmissionID: id, ActorID: "admin-1", ActorRole: entity.RoleAdmin,
	})
	require.NoError(t, final.Error)
	response := final.Data.(*model.SubmissionResponse)
	assert.Equal(t, entity.StatusCompleted, response.Status)
	require.NotNil(t, response.ActualValue)
	assert.Equal(t, 5400.0, *response.ActualValue)
	assert.Equal(t, 540.0, *response.PlatformFee)
	assert.Equal(t, 4860.0, *response.ActualTransfer)
	assert.Len(t, response.StatusHistory, 5)

	// terminal, any further update conflicts
	again := uc.UpdateStatus(ctx, &model.UpdateSubmissionStatusRequest{
		SubmissionID: id, ActorID: "admin-1", ActorRole: entity.RoleAdmin, Status: "cancelled",
	})
	requireHTTPError(t, again.Error, 409)
}

func TestUpdateStatusSkippingStepsRejected(t *testing.T) {
	uc, userRepo, _ := newSubmissionEnv()
	seedUser(userRepo, "user-1")
	ctx := context.Background()

	created := uc.CreateSubmission(ctx, validCreateRequest("user-1"))
	require.NoError(t, created.Error)
	id := created.Data.(*model.SubmissionResponse).ID

	result := uc.UpdateStatus(ctx, &model.UpdateSubmissionStatusRequest{
		SubmissionID: id, ActorID: "admin-1", ActorRole: entity.RoleAdmin, Status: "picked_up",
	})
	requireHTTPError(t, result.Error, 409)
}

func TestUpdateStatusProcessedRequiresActualWeight(t *testing.T) {
	uc, userRepo, _ := newSubmissionEnv()
	seedUser(userRepo, "user-1")
	ctx := context.Background()

	created := uc.CreateSubmission(ctx, validCreateRequest("user-1"))
	require.NoError(t, created.Error)
	id := created.Data.(*model.SubmissionResponse).ID

	for _, status := range []string{"confirmed", "picked_up"} {
		result := uc.UpdateStatus(ctx, &model.UpdateSubmissionStatusRequest{
			SubmissionID: id, ActorID: "admin-1", ActorRole: entity.RoleAdmin, Status: status,
		})
		require.NoError(t, result.Error)
	}

	result := uc.UpdateStatus(ctx, &model.UpdateSubmissionStatusRequest{
		SubmissionID: id, ActorID: "admin-1", ActorRole: entity.RoleAdmin, Status: "processed",
	})
	requireHTTPError(t, result.Error, 400)
}

func TestUpdateStatusNonAdmin(t *testing.T) {
	uc, userRepo, _ := newSubmissionEnv()
	seedUser(userRepo, "user-1")
	ctx := context.Background()

	created := uc.CreateSubmission(ctx, validCreateRequest("user-1"))
	require.NoError(t, created.Error)
	id := created.Data.(*model.SubmissionResponse).ID

	result := uc.UpdateStatus(ctx, &model.UpdateSubmissionStatusRequest{
		SubmissionID: id, ActorID: "user-1", ActorRole: entity.RoleUser, Status: "confirmed",
	})
	requireHTTPError(t, result.Error, 403)
}

func TestCancelSubmissionOwnerWhilePending(t *testing.T) {
	uc, userRepo, _ := newSubmissionEnv()
	seedUser(userRepo, "user-1")
	ctx := context.Background()

	created := uc.CreateSubmission(ctx, validCreateRequest("user-1"))
	require.NoError(t, created.Error)
	id := created.Data.(*model.SubmissionResponse).ID

	result := uc.CancelSubmission(ctx, &model.CancelSubmissionRequest{SubmissionID: id, ActorID: "user-1"})
	require.NoError(t, result.Error)

	response := result.Data.(*model.SubmissionResponse)
	assert.Equal(t, entity.StatusCancelled, response.Status)
	assert.Equal(t, "cancelled by owner", response.StatusHistory[len(response.StatusHistory)-1].Note)
}

func TestCancelSubmissionNotOwner(t *testing.T) {
	uc, userRepo, _ := newSubmissionEnv()
	seedUser(userRepo, "user-1")
	seedUser(userRepo, "user-2")
	ctx := context.Background()

	created := uc.CreateSubmission(ctx, validCreateRequest("user-1"))
	require.NoError(t, created.Error)
	id := created.Data.(*model.SubmissionResponse).ID

	result := uc.CancelSubmission(ctx, &model.CancelSubmissionRequest{SubmissionID: id, ActorID: "user-2"})
	requireHTTPError(t, result.Error, 403)
}

func TestCancelSubmissionAfterConfirmation(t *testing.T) {
	uc, userRepo, _ := newSubmissionEnv()
	seedUser(userRepo, "user-1")
	ctx := context.Background()

	created := uc.CreateSubmission(ctx, validCreateRequest("user-1"))
	require.NoError(t, created.Error)
	id := created.Data.(*model.SubmissionResponse).ID

	confirmed := uc.UpdateStatus(ctx, &model.UpdateSubmissionStatusRequest{
		SubmissionID: id, ActorID: "admin-1", ActorRole: entity.RoleAdmin, Status: "confirmed",
	})
	require.NoError(t, confirmed.Error)

	result := uc.CancelSubmission(ctx, &model.CancelSubmissionRequest{SubmissionID: id, ActorID: "user-1"})
	requireHTTPError(t, result.Error, 403)
}

func TestGetSubmissionOwnership(t *testing.T) {
	uc, userRepo, _ := newSubmissionEnv()
	seedUser(userRepo, "user-1")
	ctx := context.Background()

	created := uc.CreateSubmission(ctx, validCreateRequest("user-1"))
	require.NoError(t, created.Error)
	id := created.Data.(*model.SubmissionResponse).ID

	other := uc.GetSubmission(ctx, &model.GetSubmissionRequest{
		SubmissionID: id, ActorID: "user-2", ActorRole: entity.RoleUser,
	})
	requireHTTPError(t, other.Error, 403)

	admin := uc.GetSubmission(ctx, &model.GetSubmissionRequest{
		SubmissionID: id, ActorID: "admin-1", ActorRole: entity.RoleAdmin,
	})
	require.NoError(t, admin.Error)
}

func TestListSubmissionsPagination(t *testing.T) {
	uc, userRepo, _ := newSubmissionEnv()
	seedUser(userRepo, "user-1")
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		created := uc.CreateSubmission(ctx, validCreateRequest("user-1"))
		require.NoError(t, created.Error)
	}

	result := uc.ListSubmissions(ctx, &model.ListSubmissionsRequest{UserID: "user-1", Page: 2, Limit: 2})
	require.NoError(t, result.Error)

	responses := result.Data.([]*model.SubmissionResponse)
	assert.Len(t, responses, 2)
	assert.Equal(t, utils.Meta{Page: 2, Limit: 2, Total: 5}, result.MetaData)
}

func TestListSubmissionsUnknownStatus(t *testing.T) {
	uc, _, _ := newSubmissionEnv()

	result := uc.ListSubmissions(context.Background(), &model.ListSubmissionsRequest{Status: "verified"})
	requireHTTPError(t, result.Error, 400)
}

func TestGetPriceList(t *testing.T) {
	uc, _, _ := newSubmissionEnv()

	result := uc.GetPriceList()
	require.NoError(t, result.Error)

	response := result.Data.(*model.PriceListResponse)
	assert.Equal(t, 3000.0, response.Prices["Botol Plastik"])
	assert.Equal(t, 0.10, response.FeeRate)
}
