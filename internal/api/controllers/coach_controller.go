package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kamehameha/internal/models/request_models"
	"kamehameha/internal/services"
	"kamehameha/pkg/utils"
)

type CoachController struct {
	coachService services.CoachServiceInterface
}

func NewCoachController(coachService services.CoachServiceInterface) *CoachController {
	return &CoachController{
		coachService: coachService,
	}
}

// Message godoc
// @Summary Send a message to the coach
// @Description One-shot supportive reply, seeded with the account's current streak. Messages are not stored.
// @Tags Coach
// @Accept json
// @Produce json
// @Param request body request_models.CoachMessageRequest true "Message payload"
// @Success 200 {object} utils.APIResponse
// @Failure 503 {object} utils.APIResponse
// @Security BearerAuth
// @Router /coach/message [post]
func (co *CoachController) Message(c *gin.Context) {
	var req request_models.CoachMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "message is required")
		return
	}

	accountID := c.GetString("account_id")

	reply, err := co.coachService.Reply(c.Request.Context(), accountID, req.Message)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"reply": reply}, "Coach replied")
}
