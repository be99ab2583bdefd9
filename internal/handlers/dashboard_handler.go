package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/the88gb/influencer-dashboard-backend/internal/database/repository"
	"github.com/the88gb/influencer-dashboard-backend/internal/services"
)

type DashboardHandler struct {
	dashboardService *services.DashboardService
}

func NewDashboardHandler(db *gorm.DB) *DashboardHandler {
	brandRepo := repository.NewBrandRepository(db)
	campaignRepo := repository.NewCampaignRepository(db)
	analyticsRepo := repository.NewCampaignAnalyticsRepository(db)

	return &DashboardHandler{
		dashboardService: services.NewDashboardService(brandRepo, campaignRepo, analyticsRepo),
	}
}

// GetStats godoc
// @Summary Dashboard aggregates
// @Description Brand/campaign counts, total budget and best-effort average ROI
// @Tags dashboard
// @Produce json
// @Success 200 {object} models.DashboardStats
// @Failure 500 {object} map[string]interface{}
// @Router /dashboard/stats [get]
func (h *DashboardHandler) GetStats(c *gin.Context) {
	stats, err := h.dashboardService.GetStats()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch dashboard stats"})
		return
	}
	c.JSON(http.StatusOK, stats)
}
