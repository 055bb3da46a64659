package usecase_test

import (
	"context"
	"testing"
	"time"

	"bank-sampah-service/src/internal/entity"
	"bank-sampah-service/src/internal/model"
	"bank-sampah-service/src/internal/usecase"
	"bank-sampah-service/src/pkg/log"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newWasteBankEnv() (*usecase.WasteBankUseCase, *fakeWasteBankRepository) {
	repo := newFakeWasteBankRepository()
	uc := usecase.NewWasteBankUseCase(log.Log{}, validator.New(), repo, viper.New())
	return uc, repo
}

func seedBanks(repo *fakeWasteBankRepository) {
	repo.banks = append(repo.banks,
		&entity.WasteBank{
			ID: "bank-resik", Name: "Bank Sampah Resik", City: "Semarang", Province: "Jawa Tengah",
			Address: "Jl. Simpang Lima No. 1", Latitude: -6.9930, Longitude: 110.4203,
			AcceptedTypes: entity.StringList{"Botol Plastik", "Kertas"}, Rating: 4.8, IsActive: true,
		},
		&entity.WasteBank{
			ID: "bank-asri", Name: "Bank Sampah Asri", City: "Semarang", Province: "Jawa Tengah",
			Address: "Jl. Tugu Muda No. 5", Latitude: -6.9660, Longitude: 110.4103,
			AcceptedTypes: entity.StringList{"Kaleng"}, Rating: 4.2, IsActive: true,
		},
		&entity.WasteBank{
			ID: "bank-hijau", Name: "Bank Sampah Hijau", City: "Jakarta", Province: "DKI Jakarta",
			Address: "Jl. Sudirman No. 10", Latitude: -6.2088, Longitude: 106.8456,
			AcceptedTypes: entity.StringList{"Botol Plastik"}, Rating: 4.5, IsActive: true,
		},
		&entity.WasteBank{
			ID: "bank-tutup", Name: "Bank Sampah Tutup", City: "Semarang", Province: "Jawa Tengah",
			Latitude: -6.99, Longitude: 110.42, Rating: 5.0, IsActive: false,
		},
	)
}

func TestSearchWasteBanksByCity(t *testing.T) {
	uc, repo := newWasteBankEnv()
	seedBanks(repo)

	result := uc.SearchWasteBanks(context.Background(), &model.SearchWasteBankRequest{City: "semarang"})
	require.NoError(t, result.Error)

	responses := result.Data.([]*model.WasteBankResponse)
	require.Len(t, responses, 2)
	for _, r := range responses {
		assert.Equal(t, "Semarang", r.City)
		assert.NotEqual(t, "bank-tutup", r.ID)
	}
}

func TestSearchWasteBanksByWasteType(t *testing.T) {
	uc, repo := newWasteBankEnv()
	seedBanks(repo)

	result := uc.SearchWasteBanks(context.Background(), &model.SearchWasteBankRequest{WasteType: "Botol Plastik"})
	require.NoError(t, result.Error)

	responses := result.Data.([]*model.WasteBankResponse)
	require.Len(t, responses, 2)
	// default sort is rating descending
	assert.Equal(t, "bank-resik", responses[0].ID)
	assert.Equal(t, "bank-hijau", responses[1].ID)
}

func TestSearchWasteBanksWithinRadius(t *testing.T) {
	uc, repo := newWasteBankEnv()
	seedBanks(repo)

	lat, lng := -6.9930, 110.4203
	result := uc.SearchWasteBanks(context.Background(), &model.SearchWasteBankRequest{
		Latitude: &lat, Longitude: &lng, RadiusKm: 5, SortBy: "distance",
	})
	require.NoError(t, result.Error)

	responses := result.Data.([]*model.WasteBankResponse)
	require.Len(t, responses, 2)
	assert.Equal(t, "bank-resik", responses[0].ID)
	assert.Equal(t, "bank-asri", responses[1].ID)

	require.NotNil(t, responses[0].DistanceKm)
	require.NotNil(t, responses[1].DistanceKm)
	assert.Equal(t, 0.0, *responses[0].DistanceKm)
	assert.InDelta(t, 3.2, *responses[1].DistanceKm, 0.1)
}

func TestSearchWasteBanksSortByName(t *testing.T) {
	uc, repo := newWasteBankEnv()
	seedBanks(repo)

	result := uc.SearchWasteBanks(context.Background(), &model.SearchWasteBankRequest{SortBy: "name"})
	require.NoError(t, result.Error)

	responses := result.Data.([]*model.WasteBankResponse)
	require.Len(t, responses, 3)
	assert.Equal(t, "Bank Sampah Asri", responses[0].Name)
	assert.Equal(t, "Bank Sampah Hijau", responses[1].Name)
	assert.Equal(t, "Bank Sampah Resik", responses[2].Name)
}

func TestSearchWasteBanksDistanceSortWithoutCoords(t *testing.T) {
	uc, repo := newWasteBankEnv()
	seedBanks(repo)

	result := uc.SearchWasteBanks(context.Background(), &model.SearchWasteBankRequest{SortBy: "distance"})
	require.NoError(t, result.Error)

	// nothing to rank by, so the collection order stays and no distance is attached
	responses := result.Data.([]*model.WasteBankResponse)
	require.Len(t, responses, 3)
	assert.Equal(t, "bank-resik", responses[0].ID)
	assert.Equal(t, "bank-asri", responses[1].ID)
	assert.Equal(t, "bank-hijau", responses[2].ID)
	for _, r := range responses {
		assert.Nil(t, r.DistanceKm)
	}
}

func TestSearchWasteBanksTextSearch(t *testing.T) {
	uc, repo := newWasteBankEnv()
	seedBanks(repo)

	result := uc.SearchWasteBanks(context.Background(), &model.SearchWasteBankRequest{Search: "tugu muda"})
	require.NoError(t, result.Error)

	responses := result.Data.([]*model.WasteBankResponse)
	require.Len(t, responses, 1)
	assert.Equal(t, "bank-asri", responses[0].ID)
}

func TestGetWasteBankInactive(t *testing.T) {
	uc, repo := newWasteBankEnv()
	seedBanks(repo)

	result := uc.GetWasteBank(context.Background(), "bank-tutup")
	requireHTTPError(t, result.Error, 404)
}

func TestListReviewsInactiveBank(t *testing.T) {
	uc, repo := newWasteBankEnv()
	seedBanks(repo)

	result := uc.ListReviews(context.Background(), &model.ListReviewsRequest{WasteBankID: "bank-tutup"})
	requireHTTPError(t, result.Error, 404)
}

func TestSubmitReviewUpsert(t *testing.T) {
	uc, repo := newWasteBankEnv()
	seedBanks(repo)
	ctx := context.Background()

	first := uc.SubmitReview(ctx, &model.SubmitReviewRequest{
		WasteBankID: "bank-resik", UserID: "user-1", UserName: "Budi", Rating: 5, Comment: "mantap",
	})
	require.NoError(t, first.Error)
	firstID := first.Data.(*model.SubmitReviewResponse).Review.ID

	second := uc.SubmitReview(ctx, &model.SubmitReviewRequest{
		WasteBankID: "bank-resik", UserID: "user-1", UserName: "Budi", Rating: 3, Comment: "menurun",
	})
	require.NoError(t, second.Error)
	response := second.Data.(*model.SubmitReviewResponse)

	// same review row, not a second one
	assert.Equal(t, firstID, response.Review.ID)
	assert.Equal(t, 3, response.Review.Rating)
	assert.Equal(t, 3.0, response.BankRating)

	reviews, err := repo.FindReviews(ctx, "bank-resik")
	require.NoError(t, err)
	require.Len(t, reviews, 1)

	bank, err := repo.FindByID(ctx, "bank-resik")
	require.NoError(t, err)
	assert.Equal(t, 3.0, bank.Rating)
	assert.Equal(t, 1, bank.TotalReviews)
}

func TestSubmitReviewRecomputesMean(t *testing.T) {
	uc, repo := newWasteBankEnv()
	seedBanks(repo)
	ctx := context.Background()

	for i, rating := range []int{5, 4, 4} {
		result := uc.SubmitReview(ctx, &model.SubmitReviewRequest{
			WasteBankID: "bank-asri", UserID: "user-" + string(rune('a'+i)), UserName: "Reviewer", Rating: rating,
		})
		require.NoError(t, result.Error)
	}

	bank, err := repo.FindByID(ctx, "bank-asri")
	require.NoError(t, err)
	assert.Equal(t, 4.3, bank.Rating)
	assert.Equal(t, 3, bank.TotalReviews)
}

func TestListReviewsHistogramAndSort(t *testing.T) {
	uc, repo := newWasteBankEnv()
	seedBanks(repo)
	now := time.Now()
	repo.reviews["bank-resik"] = []entity.Review{
		{ID: "r1", WasteBankID: "bank-resik", UserID: "u1", Rating: 5, CreatedAt: now.Add(-3 * time.Hour)},
		{ID: "r2", WasteBankID: "bank-resik", UserID: "u2", Rating: 4, CreatedAt: now.Add(-2 * time.Hour)},
		{ID: "r3", WasteBankID: "bank-resik", UserID: "u3", Rating: 4, CreatedAt: now.Add(-1 * time.Hour)},
	}

	result := uc.ListReviews(context.Background(), &model.ListReviewsRequest{WasteBankID: "bank-resik"})
	require.NoError(t, result.Error)

	response := result.Data.(*model.ReviewListResponse)
	assert.Equal(t, map[int]int{1: 0, 2: 0, 3: 0, 4: 2, 5: 1}, response.Histogram)
	// default sort is newest first
	require.Len(t, response.Reviews, 3)
	assert.Equal(t, "r3", response.Reviews[0].ID)

	lowFirst := uc.ListReviews(context.Background(), &model.ListReviewsRequest{WasteBankID: "bank-resik", Sort: "rating_low"})
	require.NoError(t, lowFirst.Error)
	assert.Equal(t, 4, lowFirst.Data.(*model.ReviewListResponse).Reviews[0].Rating)

	highFirst := uc.ListReviews(context.Background(), &model.ListReviewsRequest{WasteBankID: "bank-resik", Sort: "rating_high"})
	require.NoError(t, highFirst.Error)
	assert.Equal(t, 5, highFirst.Data.(*model.ReviewListResponse).Reviews[0].Rating)
}

func TestCreateAndUpdateWasteBank(t *testing.T) {
	uc, repo := newWasteBankEnv()
	ctx := context.Background()

	created := uc.CreateWasteBank(ctx, &model.CreateWasteBankRequest{
		Name: "Bank Sampah Baru", Address: "Jl. Baru No. 1", City: "Semarang", Province: "Jawa Tengah",
		Latitude: -6.98, Longitude: 110.41, AcceptedTypes: []string{"Kertas"},
	})
	require.NoError(t, created.Error)
	id := created.Data.(*model.WasteBankResponse).ID
	require.Len(t, repo.banks, 1)
	assert.True(t, repo.banks[0].IsActive)

	inactive := false
	updated := uc.UpdateWasteBank(ctx, &model.UpdateWasteBankRequest{
		ID: id, Name: "Bank Sampah Diperbarui", IsActive: &inactive,
	})
	require.NoError(t, updated.Error)

	bank, err := repo.FindByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Bank Sampah Diperbarui", bank.Name)
	assert.False(t, bank.IsActive)
}
