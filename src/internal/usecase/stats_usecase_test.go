package usecase_test

import (
	"context"
	"fmt"
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

func newStatsEnv() (*usecase.StatsUseCase, *fakeUserRepository, *fakeSubmissionRepository) {
	userRepo := &fakeUserRepository{}
	submissionRepo := &fakeSubmissionRepository{}
	uc := usecase.NewStatsUseCase(log.Log{}, validator.New(), submissionRepo, userRepo, viper.New(), nil)
	return uc, userRepo, submissionRepo
}

func seedActiveUser(repo *fakeUserRepository, id, name string) {
	repo.users = append(repo.users, &entity.User{UserID: id, FullName: name, IsActive: true})
}

func completedSubmission(userID string, weight float64, createdAt time.Time) *entity.Submission {
	value := weight * 3000
	fee := value * 0.10
	transfer := value - fee
	return &entity.Submission{
		ID:             fmt.Sprintf("sub-%s-%d", userID, createdAt.UnixNano()),
		UserID:         userID,
		WasteType:      "Botol Plastik",
		Status:         entity.StatusCompleted,
		ActualWeight:   f64(weight),
		ActualValue:    f64(value),
		PlatformFee:    f64(fee),
		ActualTransfer: f64(transfer),
		CreatedAt:      createdAt,
	}
}

func TestGetUserStats(t *testing.T) {
	uc, _, submissionRepo := newStatsEnv()
	now := time.Now()

	submissionRepo.submissions = append(submissionRepo.submissions,
		completedSubmission("user-1", 40, now.Add(-48*time.Hour)),
		&entity.Submission{
			ID: "sub-pending", UserID: "user-1", Status: entity.StatusPending,
			EstimatedValue: 6000, CreatedAt: now,
		},
		completedSubmission("user-2", 99, now),
	)

	result := uc.GetUserStats(context.Background(), &model.GetUserStatsRequest{UserID: "user-1"})
	require.NoError(t, result.Error)

	response := result.Data.(*model.UserStatsResponse)
	assert.Equal(t, map[string]int{"completed": 1, "pending": 1}, response.CountsByStatus)
	assert.Equal(t, 40.0, response.TotalWeight)
	assert.Equal(t, 108000.0, response.TotalEarnings)
	// (120000 actual + 6000 estimated) / 2
	assert.Equal(t, 63000.0, response.AverageValue)
	assert.Equal(t, 100.0, response.Impact.CO2SavedKg)
	assert.Equal(t, 2, response.Impact.TreesSaved)
}

func TestGetUserStatsDateRange(t *testing.T) {
	uc, _, submissionRepo := newStatsEnv()

	submissionRepo.submissions = append(submissionRepo.submissions,
		completedSubmission("user-1", 10, time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)),
		completedSubmission("user-1", 20, time.Date(2026, 6, 10, 12, 0, 0, 0, time.UTC)),
	)

	result := uc.GetUserStats(context.Background(), &model.GetUserStatsRequest{
		UserID: "user-1", From: "2026-05-01", To: "2026-06-30",
	})
	require.NoError(t, result.Error)

	response := result.Data.(*model.UserStatsResponse)
	assert.Equal(t, 20.0, response.TotalWeight)
	assert.Equal(t, 1, response.CountsByStatus["completed"])
}

func TestGetUserStatsBadDate(t *testing.T) {
	uc, _, _ := newStatsEnv()

	result := uc.GetUserStats(context.Background(), &model.GetUserStatsRequest{
		UserID: "user-1", From: "01-05-2026",
	})
	requireHTTPError(t, result.Error, 400)
}

func TestLeaderboardRankingAndTies(t *testing.T) {
	uc, userRepo, submissionRepo := newStatsEnv()
	now := time.Now()

	seedActiveUser(userRepo, "user-a", "Ani")
	seedActiveUser(userRepo, "user-b", "Bima")
	seedActiveUser(userRepo, "user-c", "Citra")

	submissionRepo.submissions = append(submissionRepo.submissions,
		completedSubmission("user-b", 10, now),
		completedSubmission("user-a", 5, now),
		completedSubmission("user-c", 5, now),
	)

	result := uc.GetLeaderboard(context.Background(), &model.LeaderboardRequest{UserID: "user-c"})
	require.NoError(t, result.Error)

	response := result.Data.(*model.LeaderboardResponse)
	assert.Equal(t, "weight", response.Metric)
	require.Len(t, response.Entries, 3)
	assert.Equal(t, "user-b", response.Entries[0].UserID)
	assert.Equal(t, 1, response.Entries[0].Rank)
	// ties keep the user collection order, so a before c
	assert.Equal(t, "user-a", response.Entries[1].UserID)
	assert.Equal(t, "user-c", response.Entries[2].UserID)
	assert.Equal(t, 3, response.Entries[2].Rank)

	require.NotNil(t, response.MyRank)
	assert.Equal(t, 3, response.MyRank.Rank)
	assert.Equal(t, 5.0, response.MyRank.Value)
}

func TestLeaderboardLimitKeepsMyRank(t *testing.T) {
	uc, userRepo, submissionRepo := newStatsEnv()
	now := time.Now()

	for i := 0; i < 5; i++ {
		id := fmt.Sprintf("user-%d", i)
		seedActiveUser(userRepo, id, id)
		submissionRepo.submissions = append(submissionRepo.submissions,
			completedSubmission(id, float64(50-i*10), now))
	}

	result := uc.GetLeaderboard(context.Background(), &model.LeaderboardRequest{UserID: "user-4", Limit: 2})
	require.NoError(t, result.Error)

	response := result.Data.(*model.LeaderboardResponse)
	assert.Len(t, response.Entries, 2)
	require.NotNil(t, response.MyRank)
	assert.Equal(t, 5, response.MyRank.Rank)
}

func TestLeaderboardSubmissionsMetricCountsAllStatuses(t *testing.T) {
	uc, userRepo, submissionRepo := newStatsEnv()
	now := time.Now()

	seedActiveUser(userRepo, "user-a", "Ani")
	submissionRepo.submissions = append(submissionRepo.submissions,
		completedSubmission("user-a", 10, now),
		&entity.Submission{ID: "s2", UserID: "user-a", Status: entity.StatusCancelled, CreatedAt: now},
	)

	result := uc.GetLeaderboard(context.Background(), &model.LeaderboardRequest{UserID: "user-a", Metric: "submissions"})
	require.NoError(t, result.Error)

	response := result.Data.(*model.LeaderboardResponse)
	assert.Equal(t, 2.0, response.Entries[0].Value)
}

func TestGetPlatformStats(t *testing.T) {
	uc, userRepo, submissionRepo := newStatsEnv()
	now := time.Now()
	lastMonth := time.Date(now.Year(), now.Month(), 1, 12, 0, 0, 0, now.Location()).AddDate(0, -1, 0)

	seedActiveUser(userRepo, "user-a", "Ani")
	seedActiveUser(userRepo, "user-b", "Bima")
	submissionRepo.submissions = append(submissionRepo.submissions,
		completedSubmission("user-a", 10, now),
		&entity.Submission{ID: "s2", UserID: "user-b", Status: entity.StatusPending, CreatedAt: lastMonth},
	)

	result := uc.GetPlatformStats(context.Background(), &model.GetPlatformStatsRequest{Months: 2})
	require.NoError(t, result.Error)

	response := result.Data.(*model.PlatformStatsResponse)
	assert.Equal(t, 2, response.TotalUsers)
	assert.Equal(t, 2, response.TotalSubmissions)
	assert.Equal(t, 10.0, response.TotalWeight)
	assert.Equal(t, 3000.0, response.TotalRevenue)

	require.Len(t, response.Trend, 2)
	// oldest month first
	assert.Equal(t, lastMonth.Format("2006-01"), response.Trend[0].Month)
	assert.Equal(t, 1, response.Trend[0].Submissions)
	assert.Equal(t, 0, response.Trend[0].Completed)
	assert.Equal(t, 1, response.Trend[1].Completed)
	assert.Equal(t, 10.0, response.Trend[1].Weight)
}

func TestGetMonthComparisonPreviousZero(t *testing.T) {
	uc, _, submissionRepo := newStatsEnv()

	submissionRepo.submissions = append(submissionRepo.submissions,
		completedSubmission("user-a", 10, time.Now()),
	)

	result := uc.GetMonthComparison(context.Background())
	require.NoError(t, result.Error)

	response := result.Data.(*model.MonthComparisonResponse)
	byMetric := map[string]model.MonthComparison{}
	for _, c := range response.Comparisons {
		byMetric[c.Metric] = c
	}

	// previous month empty: any current activity reports as a 100% change
	assert.Equal(t, 1.0, byMetric["submissions"].Current)
	assert.Equal(t, 0.0, byMetric["submissions"].Previous)
	assert.Equal(t, 100.0, byMetric["submissions"].ChangePct)
	assert.Equal(t, 10.0, byMetric["weight"].Current)
	assert.Equal(t, 100.0, byMetric["weight"].ChangePct)
}

func TestGetMonthComparisonChange(t *testing.T) {
	uc, _, submissionRepo := newStatsEnv()
	now := time.Now()
	lastMonth := time.Date(now.Year(), now.Month(), 1, 12, 0, 0, 0, now.Location()).AddDate(0, -1, 0)

	submissionRepo.submissions = append(submissionRepo.submissions,
		completedSubmission("user-a", 10, lastMonth),
		completedSubmission("user-a", 15, now),
	)

	result := uc.GetMonthComparison(context.Background())
	require.NoError(t, result.Error)

	response := result.Data.(*model.MonthComparisonResponse)
	byMetric := map[string]model.MonthComparison{}
	for _, c := range response.Comparisons {
		byMetric[c.Metric] = c
	}

	assert.Equal(t, 50.0, byMetric["weight"].ChangePct)
	assert.Equal(t, 0.0, byMetric["submissions"].ChangePct)
}
