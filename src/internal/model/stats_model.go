package model

type GetUserStatsRequest struct {
	UserID string `json:"-" validate:"required,max=100"`
	From   string `json:"-" validate:"omitempty,datetime=2006-01-02"`
	To     string `json:"-" validate:"omitempty,datetime=2006-01-02"`
}

type GetPlatformStatsRequest struct {
	Months int `json:"-" validate:"gte=0,lte=24"`
}

type LeaderboardRequest struct {
	Metric string `json:"-" validate:"omitempty,oneof=weight earnings submissions impact"`
	Limit  int    `json:"-" validate:"gte=0,lte=100"`
	UserID string `json:"-" validate:"required,max=100"`
}

type EnvironmentalImpact struct {
	CO2SavedKg  float64 `json:"co2_saved_kg"`
	TreesSaved  int     `json:"trees_saved"`
	TotalWeight float64 `json:"total_weight_kg"`
}

type UserStatsResponse struct {
	UserID         string              `json:"user_id"`
	CountsByStatus map[string]int      `json:"counts_by_status"`
	TotalWeight    float64             `json:"total_weight_kg"`
	TotalEarnings  float64             `json:"total_earnings"`
	AverageValue   float64             `json:"average_value"`
	Impact         EnvironmentalImpact `json:"impact"`
}

type MonthBucket struct {
	Month       string  `json:"month"`
	Submissions int     `json:"submissions"`
	Completed   int     `json:"completed"`
	Revenue     float64 `json:"revenue"`
	Weight      float64 `json:"weight_kg"`
}

type PlatformStatsResponse struct {
	TotalUsers       int                 `json:"total_users"`
	TotalSubmissions int                 `json:"total_submissions"`
	CountsByStatus   map[string]int      `json:"counts_by_status"`
	TotalWeight      float64             `json:"total_weight_kg"`
	TotalRevenue     float64             `json:"total_revenue"`
	Impact           EnvironmentalImpact `json:"impact"`
	Trend            []MonthBucket       `json:"trend"`
}

type LeaderboardEntry struct {
	Rank     int     `json:"rank"`
	UserID   string  `json:"user_id"`
	FullName string  `json:"full_name"`
	Value    float64 `json:"value"`
}

type LeaderboardResponse struct {
	Metric  string             `json:"metric"`
	Entries []LeaderboardEntry `json:"entries"`
	MyRank  *LeaderboardEntry  `json:"my_rank,omitempty"`
}

type MonthComparison struct {
	Metric    string  `json:"metric"`
	Current   float64 `json:"current"`
	Previous  float64 `json:"previous"`
	ChangePct float64 `json:"change_pct"`
}

type MonthComparisonResponse struct {
	CurrentMonth  string            `json:"current_month"`
	PreviousMonth string            `json:"previous_month"`
	Comparisons   []MonthComparison `json:"comparisons"`
}
