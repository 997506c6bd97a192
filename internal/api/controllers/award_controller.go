package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kamehameha/internal/models/request_models"
	"kamehameha/internal/services"
	"kamehameha/pkg/utils"
)

type AwardController struct {
	awardService services.AwardServiceInterface
	sweepService services.SweepServiceInterface
	liveService  services.LiveAwardServiceInterface
}

func NewAwardController(
	awardService services.AwardServiceInterface,
	sweepService services.SweepServiceInterface,
	liveService services.LiveAwardServiceInterface,
) *AwardController {
	return &AwardController{
		awardService: awardService,
		sweepService: sweepService,
		liveService:  liveService,
	}
}

// ListBadges godoc
// @Summary List badges for a journey
// @Description Fetch every milestone badge a journey has earned, ascending by threshold
// @Tags Awards
// @Produce json
// @Param journeyId path string true "Journey ID"
// @Success 200 {array} response_models.BadgeResponse
// @Security BearerAuth
// @Router /journeys/{journeyId}/badges [get]
func (a *AwardController) ListBadges(c *gin.Context) {
	journeyID := c.Param("journeyId")
	if journeyID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Journey ID is required")
		return
	}

	badges, err := a.awardService.ListBadges(c.Request.Context(), journeyID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, badges, "Badges fetched")
}

// RunSweep godoc
// @Summary Run a milestone sweep now
// @Description Evaluate every active journey against the milestone table immediately, without waiting for the scheduled pass. Safe to call at any time; repeat awards are no-ops.
// @Tags Awards
// @Produce json
// @Success 200 {object} services.SweepReport
// @Security BearerAuth
// @Router /awards/sweep [post]
func (a *AwardController) RunSweep(c *gin.Context) {
	report, err := a.sweepService.RunOnce(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, report, "Sweep completed")
}

// OpenLiveSession godoc
// @Summary Open a live award session
// @Description Start the per-session watcher that awards milestones within a second of crossing, while this journey is open in the client
// @Tags Awards
// @Accept json
// @Produce json
// @Param request body request_models.OpenLiveSessionRequest true "Session and journey"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /live/open [post]
func (a *AwardController) OpenLiveSession(c *gin.Context) {
	var req request_models.OpenLiveSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "journey_id is required")
		return
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = c.GetString("account_id")
	}

	if err := a.liveService.OpenSession(c.Request.Context(), sessionID, req.JourneyID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Live session opened")
}

// CloseLiveSession godoc
// @Summary Close a live award session
// @Description Stop the session's watcher. The scheduled sweep remains the backstop for any award the watcher missed.
// @Tags Awards
// @Accept json
// @Produce json
// @Param request body request_models.CloseLiveSessionRequest false "Session"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /live/close [post]
func (a *AwardController) CloseLiveSession(c *gin.Context) {
	var req request_models.CloseLiveSessionRequest
	_ = c.ShouldBindJSON(&req)

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = c.GetString("account_id")
	}

	a.liveService.CloseSession(sessionID)
	utils.RespondSuccess(c, nil, "Live session closed")
}
