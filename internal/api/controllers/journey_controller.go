package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"kamehameha/internal/models/request_models"
	"kamehameha/internal/services"
	"kamehameha/pkg/utils"
)

type JourneyController struct {
	journeyService services.JourneyServiceInterface
}

func NewJourneyController(journeyService services.JourneyServiceInterface) *JourneyController {
	return &JourneyController{
		journeyService: journeyService,
	}
}

// StartJourney godoc
// @Summary Start a new journey
// @Description Begin a fresh streak for the authenticated account. Fails if a journey is still active.
// @Tags Journey
// @Accept json
// @Produce json
// @Success 200 {object} response_models.JourneyResponse
// @Failure 409 {object} utils.APIResponse
// @Security BearerAuth
// @Router /journeys/start [post]
func (j *JourneyController) StartJourney(c *gin.Context) {
	accountID := c.GetString("account_id")

	journey, err := j.journeyService.StartJourney(c.Request.Context(), accountID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, journey, "Journey started")
}

// GetCurrentJourney godoc
// @Summary Get the current journey
// @Description Fetch the authenticated account's active journey with its badges
// @Tags Journey
// @Produce json
// @Success 200 {object} response_models.JourneyDetailResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /journeys/current [get]
func (j *JourneyController) GetCurrentJourney(c *gin.Context) {
	accountID := c.GetString("account_id")

	journey, err := j.journeyService.GetCurrentJourney(c.Request.Context(), accountID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, journey, "Current journey fetched")
}

// GetJourneyDetail godoc
// @Summary Get journey details by ID
// @Description Fetch a journey with its badges. Works for ended journeys too; badges are permanent.
// @Tags Journey
// @Produce json
// @Param journeyId path string true "Journey ID"
// @Success 200 {object} response_models.JourneyDetailResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /journeys/{journeyId} [get]
func (j *JourneyController) GetJourneyDetail(c *gin.Context) {
	journeyID := c.Param("journeyId")
	if journeyID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Journey ID is required")
		return
	}

	journey, err := j.journeyService.GetJourneyDetail(c.Request.Context(), journeyID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, journey, "Journey details fetched")
}

// ListJourneys godoc
// @Summary List journeys
// @Description Fetch a paginated history of the authenticated account's journeys
// @Tags Journey
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(10) minimum(1) maximum(100)
// @Success 200 {array} response_models.JourneyResponse
// @Security BearerAuth
// @Router /journeys [get]
func (j *JourneyController) ListJourneys(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page number")
		return
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("pageSize", "10"))
	if err != nil || pageSize < 1 || pageSize > 100 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page size (must be 1-100)")
		return
	}

	accountID := c.GetString("account_id")

	journeys, err := j.journeyService.ListJourneys(c.Request.Context(), accountID, page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, journeys, "Journeys fetched")
}

// ReportRelapse godoc
// @Summary Report a relapse
// @Description Record a relapse against the current journey. reset=true ends the journey; reset=false only increments the violation counter. Earned badges are kept either way.
// @Tags Journey
// @Accept json
// @Produce json
// @Param request body request_models.RelapseRequest true "Relapse payload"
// @Success 200 {object} response_models.JourneyResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /journeys/relapse [post]
func (j *JourneyController) ReportRelapse(c *gin.Context) {
	var req request_models.RelapseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	accountID := c.GetString("account_id")

	journey, err := j.journeyService.ReportRelapse(c.Request.Context(), accountID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, journey, "Relapse recorded")
}
