package response_models

type BadgeResponse struct {
	ID               string `json:"id"`
	JourneyID        string `json:"journey_id"`
	MilestoneSeconds int64  `json:"milestone_seconds"`
	Emoji            string `json:"emoji"`
	Name             string `json:"name"`
	Message          string `json:"message"`
	Source           string `json:"source,omitempty"`
	EarnedAt         string `json:"earned_at"`
}
