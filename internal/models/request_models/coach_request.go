package request_models

type CoachMessageRequest struct {
	Message string `json:"message" binding:"required"`
}
