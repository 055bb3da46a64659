package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"time"

	"bank-sampah-service/src/internal/entity"
	"bank-sampah-service/src/internal/model"
	"bank-sampah-service/src/internal/repository"
	httpError "bank-sampah-service/src/pkg/http-error"
	"bank-sampah-service/src/pkg/log"
	"bank-sampah-service/src/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
)

// Environmental impact factors, display-only linear coefficients.
const (
	co2PerKg    = 2.5
	kgPerTree   = 20.0
	monthLayout = "2006-01"
)

type StatsUseCase struct {
	Log                  log.Log
	Validate             *validator.Validate
	SubmissionRepository repository.SubmissionRepository
	UserRepository       repository.UserRepository
	Config               *viper.Viper
	Redis                redis.UniversalClient
}

func NewStatsUseCase(
	logger log.Log,
	validate *validator.Validate,
	submissionRepository repository.SubmissionRepository,
	userRepository repository.UserRepository,
	cfg *viper.Viper,
	redisClient redis.UniversalClient,
) *StatsUseCase {
	return &StatsUseCase{
		Log:                  logger,
		Validate:             validate,
		SubmissionRepository: submissionRepository,
		UserRepository:       userRepository,
		Config:               cfg,
		Redis:                redisClient,
	}
}

func (c *StatsUseCase) GetUserStats(ctx context.Context, request *model.GetUserStatsRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("stats-usecase", errObj.Message, "GetUserStats", utils.ConvertString(request))
		return result
	}

	submissions, err := c.SubmissionRepository.FindFiltered(ctx, entity.SubmissionFilter{UserID: &request.UserID})
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = fmt.Sprintf("failed to load submissions: %v", err)
		result.Error = errObj
		c.Log.Error("stats-usecase", errObj.Message, "GetUserStats", utils.ConvertString(err))
		return result
	}

	submissions, err = filterByDateRange(submissions, request.From, request.To)
	if err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = err.Error()
		result.Error = errObj
		return result
	}

	counts := map[string]int{}
	var totalWeight, totalEarnings, totalValue float64
	for i := range submissions {
		s := &submissions[i]
		counts[string(s.Status)]++
		if s.Status == entity.StatusCompleted && s.ActualWeight != nil {
			totalWeight += *s.ActualWeight
			totalEarnings += *s.ActualTransfer
		}
		totalValue += submissionValue(s)
	}

	avgValue := 0.0
	if len(submissions) > 0 {
		avgValue = utils.Round2(totalValue / float64(len(submissions)))
	}

	result.Data = &model.UserStatsResponse{
		UserID:         request.UserID,
		CountsByStatus: counts,
		TotalWeight:    utils.Round2(totalWeight),
		TotalEarnings:  utils.Round2(totalEarnings),
		AverageValue:   avgValue,
		Impact:         impactFor(totalWeight),
	}
	return result
}

func (c *StatsUseCase) GetPlatformStats(ctx context.Context, request *model.GetPlatformStatsRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("stats-usecase", errObj.Message, "GetPlatformStats", utils.ConvertString(request))
		return result
	}

	months := request.Months
	if months <= 0 {
		months = 6
	}

	cacheKey := fmt.Sprintf("STATS:PLATFORM:%d", months)
	if c.Redis != nil {
		if cached, err := c.Redis.Get(ctx, cacheKey).Result(); err == nil && cached != "" {
			var response model.PlatformStatsResponse
			if err = json.Unmarshal([]byte(cached), &response); err == nil {
				result.Data = &response
				return result
			}
		}
	}

	users, err := c.UserRepository.FindAllActive(ctx)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = fmt.Sprintf("failed to load users: %v", err)
		result.Error = errObj
		c.Log.Error("stats-usecase", errObj.Message, "GetPlatformStats", utils.ConvertString(err))
		return result
	}

	submissions, err := c.SubmissionRepository.FindAll(ctx)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = fmt.Sprintf("failed to load submissions: %v", err)
		result.Error = errObj
		c.Log.Error("stats-usecase", errObj.Message, "GetPlatformStats", utils.ConvertString(err))
		return result
	}

	counts := map[string]int{}
	var totalWeight, totalRevenue float64
	for i := range submissions {
		s := &submissions[i]
		counts[string(s.Status)]++
		if s.Status == entity.StatusCompleted && s.ActualWeight != nil {
			totalWeight += *s.ActualWeight
			totalRevenue += *s.PlatformFee
		}
	}

	response := &model.PlatformStatsResponse{
		TotalUsers:       len(users),
		TotalSubmissions: len(submissions),
		CountsByStatus:   counts,
		TotalWeight:      utils.Round2(totalWeight),
		TotalRevenue:     utils.Round2(totalRevenue),
		Impact:           impactFor(totalWeight),
		Trend:            monthlyTrend(submissions, months, time.Now()),
	}

	if c.Redis != nil {
		if payload, err := json.Marshal(response); err == nil {
			c.Redis.Set(ctx, cacheKey, payload, 5*time.Minute)
		}
	}

	result.Data = response
	return result
}

// GetLeaderboard ranks active users by the chosen metric. The sort is
// stable, so users with equal values keep their collection order, and ranks
// are assigned 1-based after sorting.
func (c *StatsUseCase) GetLeaderboard(ctx context.Context, request *model.LeaderboardRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("stats-usecase", errObj.Message, "GetLeaderboard", utils.ConvertString(request))
		return result
	}

	metric := request.Metric
	if metric == "" {
		metric = "weight"
	}
	limit := request.Limit
	if limit <= 0 {
		limit = 10
	}

	users, err := c.UserRepository.FindAllActive(ctx)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = fmt.Sprintf("failed to load users: %v", err)
		result.Error = errObj
		c.Log.Error("stats-usecase", errObj.Message, "GetLeaderboard", utils.ConvertString(err))
		return result
	}

	submissions, err := c.SubmissionRepository.FindAll(ctx)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = fmt.Sprintf("failed to load submissions: %v", err)
		result.Error = errObj
		c.Log.Error("stats-usecase", errObj.Message, "GetLeaderboard", utils.ConvertString(err))
		return result
	}

	byUser := map[string][]*entity.Submission{}
	for i := range submissions {
		byUser[submissions[i].UserID] = append(byUser[submissions[i].UserID], &submissions[i])
	}

	entries := make([]model.LeaderboardEntry, 0, len(users))
	for _, user := range users {
		entries = append(entries, model.LeaderboardEntry{
			UserID:   user.UserID,
			FullName: user.FullName,
			Value:    metricValue(metric, byUser[user.UserID]),
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Value > entries[j].Value
	})
	for i := range entries {
		entries[i].Rank = i + 1
	}

	var myRank *model.LeaderboardEntry
	for i := range entries {
		if entries[i].UserID == request.UserID {
			rank := entries[i]
			myRank = &rank
			break
		}
	}

	if len(entries) > limit {
		entries = entries[:limit]
	}

	result.Data = &model.LeaderboardResponse{
		Metric:  metric,
		Entries: entries,
		MyRank:  myRank,
	}
	return result
}

// GetMonthComparison compares the current calendar month with the previous
// one. When the previous month is zero, the change is reported as 100 if the
// current month has any activity and 0 otherwise; this sidesteps division by
// zero and is the documented policy.
func (c *StatsUseCase) GetMonthComparison(ctx context.Context) utils.Result {
	var result utils.Result

	submissions, err := c.SubmissionRepository.FindAll(ctx)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = fmt.Sprintf("failed to load submissions: %v", err)
		result.Error = errObj
		c.Log.Error("stats-usecase", errObj.Message, "GetMonthComparison", utils.ConvertString(err))
		return result
	}

	now := time.Now()
	current := bucketFor(submissions, now.Year(), now.Month())
	prevTime := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -1, 0)
	previous := bucketFor(submissions, prevTime.Year(), prevTime.Month())

	result.Data = &model.MonthComparisonResponse{
		CurrentMonth:  fmt.Sprintf("%04d-%02d", now.Year(), now.Month()),
		PreviousMonth: fmt.Sprintf("%04d-%02d", prevTime.Year(), prevTime.Month()),
		Comparisons: []model.MonthComparison{
			compare("submissions", float64(current.Submissions), float64(previous.Submissions)),
			compare("completed", float64(current.Completed), float64(previous.Completed)),
			compare("revenue", current.Revenue, previous.Revenue),
			compare("weight", current.Weight, previous.Weight),
		},
	}
	return result
}

func compare(metric string, current, previous float64) model.MonthComparison {
	var change float64
	switch {
	case previous != 0:
		change = utils.Round2((current - previous) / previous * 100)
	case current > 0:
		change = 100
	default:
		change = 0
	}
	return model.MonthComparison{
		Metric:    metric,
		Current:   current,
		Previous:  previous,
		ChangePct: change,
	}
}

// monthlyTrend buckets submissions into the most recent n calendar months,
// oldest first.
func monthlyTrend(submissions []entity.Submission, n int, now time.Time) []model.MonthBucket {
	buckets := make([]model.MonthBucket, 0, n)
	for i := n - 1; i >= 0; i-- {
		monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -i, 0)
		bucket := bucketFor(submissions, monthStart.Year(), monthStart.Month())
		bucket.Month = monthStart.Format(monthLayout)
		buckets = append(buckets, bucket)
	}
	return buckets
}

func bucketFor(submissions []entity.Submission, year int, month time.Month) model.MonthBucket {
	var bucket model.MonthBucket
	for i := range submissions {
		s := &submissions[i]
		if s.CreatedAt.Year() != year || s.CreatedAt.Month() != month {
			continue
		}
		bucket.Submissions++
		if s.Status == entity.StatusCompleted {
			bucket.Completed++
			if s.PlatformFee != nil {
				bucket.Revenue += *s.PlatformFee
			}
			if s.ActualWeight != nil {
				bucket.Weight += *s.ActualWeight
			}
		}
	}
	bucket.Revenue = utils.Round2(bucket.Revenue)
	bucket.Weight = utils.Round2(bucket.Weight)
	return bucket
}

func metricValue(metric string, submissions []*entity.Submission) float64 {
	var weight, earnings float64
	count := 0
	for _, s := range submissions {
		count++
		if s.Status == entity.StatusCompleted && s.ActualWeight != nil {
			weight += *s.ActualWeight
			earnings += *s.ActualTransfer
		}
	}
	switch metric {
	case "earnings":
		return utils.Round2(earnings)
	case "submissions":
		return float64(count)
	case "impact":
		return utils.Round2(weight * co2PerKg)
	default: // weight
		return utils.Round2(weight)
	}
}

func impactFor(totalWeight float64) model.EnvironmentalImpact {
	return model.EnvironmentalImpact{
		CO2SavedKg:  utils.Round2(totalWeight * co2PerKg),
		TreesSaved:  int(math.Floor(totalWeight / kgPerTree)),
		TotalWeight: utils.Round2(totalWeight),
	}
}

func submissionValue(s *entity.Submission) float64 {
	if s.ActualValue != nil {
		return *s.ActualValue
	}
	return s.EstimatedValue
}

func filterByDateRange(submissions []entity.Submission, from, to string) ([]entity.Submission, error) {
	if from == "" && to == "" {
		return submissions, nil
	}

	var fromTime, toTime time.Time
	var err error
	if from != "" {
		if fromTime, err = time.Parse("2006-01-02", from); err != nil {
			return nil, fmt.Errorf("invalid from date: %s", from)
		}
	}
	if to != "" {
		if toTime, err = time.Parse("2006-01-02", to); err != nil {
			return nil, fmt.Errorf("invalid to date: %s", to)
		}
		toTime = toTime.AddDate(0, 0, 1)
	}

	filtered := make([]entity.Submission, 0, len(submissions))
	for _, s := range submissions {
		if from != "" && s.CreatedAt.Before(fromTime) {
			continue
		}
		if to != "" && !s.CreatedAt.Before(toTime) {
			continue
		}
		filtered = append(filtered, s)
	}
	return filtered, nil
}
