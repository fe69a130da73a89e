package models

// CategoryCount is a generic group-by-category aggregation row
type CategoryCount struct {
	Category string `bson:"_id" json:"category"`
	Count    int64  `bson:"count" json:"count"`
}

// MonthCount is a month-bucketed count (1-12)
type MonthCount struct {
	Month int64 `bson:"_id" json:"month"`
	Count int64 `bson:"count" json:"count"`
}

// RevenueByTarget sums confirmed totals per referenced trip or event
type RevenueByTarget struct {
	TargetID string  `bson:"_id" json:"targetId"`
	Total    float64 `bson:"total" json:"total"`
}

// DailyRevenue is one merged trip+event revenue bucket, labelled YYYY-MM-DD
type DailyRevenue struct {
	Label string  `json:"label"`
	Trip  float64 `json:"trip"`
	Event float64 `json:"event"`
}

// TimeSeries is a label-aligned series used by the dashboard charts
type TimeSeries struct {
	Labels []string `json:"labels"`
	Data   []int64  `json:"data"`
}

// UserEngagement groups the engagement counters on the user stats payload
type UserEngagement struct {
	SurveysCompleted int64 `json:"surveysCompleted"`
	ReservationsMade int64 `json:"reservationsMade"`
	CommunityPosts   int64 `json:"communityPosts"`
	RewardsRedeemed  int64 `json:"rewardsRedeemed"`
}

// UserStats is the operator-facing user dashboard payload
type UserStats struct {
	TotalUsers          int64            `json:"totalUsers"`
	NewUsersToday       int64            `json:"newUsersToday"`
	ActiveUsers         int              `json:"activeUsers"`
	UsersByLocation     map[string]int64 `json:"usersByLocation"`
	UserEngagement      UserEngagement   `json:"userEngagement"`
	RegisterOverTime    TimeSeries       `json:"registerOverTime"`
	UserActivity        TimeSeries       `json:"userActivity"`
	TopUsers            []*User          `json:"topUsers"`
	PreferenceBreakdown []CategoryCount  `json:"preferenceBreakdown"`
}

// TripStats is the trip/booking dashboard payload
type TripStats struct {
	TotalTrips           int64             `json:"totalTrips"`
	TripTypeBreakdown    []CategoryCount   `json:"tripTypeBreakdown"`
	ReservationRevenue   []RevenueByTarget `json:"reservationRevenue"`
	ReservationsPerMonth []MonthCount      `json:"reservationsPerMonth"`
}

// SurveyStats is the survey dashboard payload
type SurveyStats struct {
	TotalSurveys    int64           `json:"totalSurveys"`
	SurveysByStatus []CategoryCount `json:"surveysByStatus"`
	TopSurveys      []*Survey       `json:"topSurveys"`
}

// RewardStats is the reward dashboard payload
type RewardStats struct {
	TotalRewards      int64           `json:"totalRewards"`
	RewardsByCategory []CategoryCount `json:"rewardsByCategory"`
	TopRewards        []*Reward       `json:"topRewards"`
}

// LikedPost is a community post projected to its like count
type LikedPost struct {
	ID        string `bson:"_id" json:"id"`
	Text      string `bson:"text" json:"text"`
	LikeCount int64  `bson:"likeCount" json:"likeCount"`
}

// CommunityStats is the community dashboard payload
type CommunityStats struct {
	TotalPosts    int64       `json:"totalPosts"`
	TopLikedPosts []LikedPost `json:"topLikedPosts"`
	TotalComments int64       `json:"totalComments"`
}
