package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/the88gb/influencer-dashboard-backend/internal/database/repository"
	"github.com/the88gb/influencer-dashboard-backend/internal/services"
)

type InfluencerHandler struct {
	influencerService *services.CampaignInfluencerService
}

func NewInfluencerHandler(db *gorm.DB) *InfluencerHandler {
	influencerRepo := repository.NewCampaignInfluencerRepository(db)

	return &InfluencerHandler{
		influencerService: services.NewCampaignInfluencerService(influencerRepo),
	}
}

// GetInfluencers godoc
// @Summary List all influencer rows
// @Description Every influencer-detail row across campaigns, name ascending
// @Tags influencers
// @Produce json
// @Success 200 {array} models.CampaignInfluencer
// @Failure 500 {object} map[string]interface{}
// @Router /influencers [get]
func (h *InfluencerHandler) GetInfluencers(c *gin.Context) {
	rows, err := h.influencerService.GetAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch influencers"})
		return
	}
	c.JSON(http.StatusOK, rows)
}
