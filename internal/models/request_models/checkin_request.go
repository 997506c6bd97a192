package request_models

type CreateCheckInRequest struct {
	Mood string   `json:"mood"`
	Note string   `json:"note" binding:"required"`
	Tags []string `json:"tags"`
}
