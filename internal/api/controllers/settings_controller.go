package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kamehameha/internal/models/request_models"
	"kamehameha/internal/services"
	"kamehameha/pkg/utils"
)

type SettingsController struct {
	settingsService services.SettingsServiceInterface
}

func NewSettingsController(settingsService services.SettingsServiceInterface) *SettingsController {
	return &SettingsController{
		settingsService: settingsService,
	}
}

// GetTimerSettings godoc
// @Summary Get focus timer settings
// @Tags Settings
// @Produce json
// @Success 200 {object} response_models.TimerSettingsResponse
// @Security BearerAuth
// @Router /settings/timer [get]
func (s *SettingsController) GetTimerSettings(c *gin.Context) {
	accountID := c.GetString("account_id")

	settings, err := s.settingsService.GetTimerSettings(c.Request.Context(), accountID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, settings, "Settings fetched")
}

// UpdateTimerSettings godoc
// @Summary Update focus timer settings
// @Tags Settings
// @Accept json
// @Produce json
// @Param request body request_models.UpdateTimerSettingsRequest true "Settings payload"
// @Success 200 {object} response_models.TimerSettingsResponse
// @Security BearerAuth
// @Router /settings/timer [put]
func (s *SettingsController) UpdateTimerSettings(c *gin.Context) {
	var req request_models.UpdateTimerSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid settings payload")
		return
	}

	accountID := c.GetString("account_id")

	settings, err := s.settingsService.UpdateTimerSettings(c.Request.Context(), accountID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, settings, "Settings updated")
}
