package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/the88gb/influencer-dashboard-backend/internal/database/repository"
	"github.com/the88gb/influencer-dashboard-backend/internal/models"
	"github.com/the88gb/influencer-dashboard-backend/internal/services"
)

type CampaignAnalyticsHandler struct {
	analyticsService *services.CampaignAnalyticsService
}

func NewCampaignAnalyticsHandler(db *gorm.DB) *CampaignAnalyticsHandler {
	analyticsRepo := repository.NewCampaignAnalyticsRepository(db)

	return &CampaignAnalyticsHandler{
		analyticsService: services.NewCampaignAnalyticsService(analyticsRepo),
	}
}

// GetByCampaign godoc
// @Summary Get campaign analytics
// @Description The optional aggregate record for one campaign
// @Tags analytics
// @Produce json
// @Param id path string true "Campaign ID"
// @Success 200 {object} models.CampaignAnalytics
// @Failure 404 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /campaigns/{id}/analytics [get]
func (h *CampaignAnalyticsHandler) GetByCampaign(c *gin.Context) {
	analytics, err := h.analyticsService.GetByCampaign(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch campaign analytics"})
		return
	}
	if analytics == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No analytics data for campaign"})
		return
	}
	c.JSON(http.StatusOK, analytics)
}

// Upsert godoc
// @Summary Upsert campaign analytics
// @Description Insert or replace the aggregate record keyed on campaign_id
// @Tags analytics
// @Accept json
// @Produce json
// @Param id path string true "Campaign ID"
// @Param request body models.UpsertCampaignAnalyticsRequest true "Analytics payload"
// @Success 200 {object} models.CampaignAnalytics
// @Failure 400 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /campaigns/{id}/analytics [put]
func (h *CampaignAnalyticsHandler) Upsert(c *gin.Context) {
	var req models.UpsertCampaignAnalyticsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data"})
		return
	}

	analytics, err := h.analyticsService.Upsert(c.Param("id"), &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update campaign analytics"})
		return
	}
	c.JSON(http.StatusOK, analytics)
}
