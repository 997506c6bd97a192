package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"kamehameha/internal/models/request_models"
	"kamehameha/internal/services"
	"kamehameha/pkg/utils"
)

type CheckInController struct {
	checkInService services.CheckInServiceInterface
}

func NewCheckInController(checkInService services.CheckInServiceInterface) *CheckInController {
	return &CheckInController{
		checkInService: checkInService,
	}
}

// CreateCheckIn godoc
// @Summary Create a check-in
// @Description Write a journal entry against the current journey
// @Tags CheckIns
// @Accept json
// @Produce json
// @Param request body request_models.CreateCheckInRequest true "Check-in payload"
// @Success 200 {object} response_models.CheckInResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /checkins [post]
func (ci *CheckInController) CreateCheckIn(c *gin.Context) {
	var req request_models.CreateCheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "note is required")
		return
	}

	accountID := c.GetString("account_id")

	checkIn, err := ci.checkInService.CreateCheckIn(c.Request.Context(), accountID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, checkIn, "Check-in saved")
}

// ListCheckIns godoc
// @Summary List check-ins for a journey
// @Tags CheckIns
// @Produce json
// @Param journeyId path string true "Journey ID"
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(20)
// @Success 200 {array} response_models.CheckInResponse
// @Security BearerAuth
// @Router /journeys/{journeyId}/checkins [get]
func (ci *CheckInController) ListCheckIns(c *gin.Context) {
	journeyID := c.Param("journeyId")
	if journeyID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Journey ID is required")
		return
	}

	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page number")
		return
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("pageSize", "20"))
	if err != nil || pageSize < 1 || pageSize > 100 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page size (must be 1-100)")
		return
	}

	checkIns, err := ci.checkInService.ListCheckIns(c.Request.Context(), journeyID, page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, checkIns, "Check-ins fetched")
}

// FindSimilar godoc
// @Summary Find similar past check-ins
// @Description Search the account's journal for reflections closest in meaning to the query text
// @Tags CheckIns
// @Produce json
// @Param q query string true "Query text"
// @Param limit query int false "Max results" default(10)
// @Success 200 {array} response_models.CheckInResponse
// @Security BearerAuth
// @Router /checkins/similar [get]
func (ci *CheckInController) FindSimilar(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		utils.RespondError(c, http.StatusBadRequest, "Query text is required")
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	accountID := c.GetString("account_id")

	checkIns, err := ci.checkInService.FindSimilar(c.Request.Context(), accountID, query, limit)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, checkIns, "Similar check-ins fetched")
}
