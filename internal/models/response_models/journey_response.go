package response_models

type JourneyResponse struct {
	ID                string `json:"id"`
	StartDate         string `json:"start_date"`
	EndDate           string `json:"end_date,omitempty"`
	EndReason         string `json:"end_reason"`
	ElapsedSeconds    int64  `json:"elapsed_seconds"`
	FinalSeconds      int64  `json:"final_seconds,omitempty"`
	AchievementsCount int64  `json:"achievements_count"`
	ViolationsCount   int64  `json:"violations_count"`
}

type JourneyDetailResponse struct {
	Journey JourneyResponse `json:"journey"`
	Badges  []BadgeResponse `json:"badges"`
}
