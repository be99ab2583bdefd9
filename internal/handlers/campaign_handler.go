package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/the88gb/influencer-dashboard-backend/internal/database/repository"
	"github.com/the88gb/influencer-dashboard-backend/internal/models"
	"github.com/the88gb/influencer-dashboard-backend/internal/services"
)

type CampaignHandler struct {
	campaignService *services.CampaignService
	influencerRepo  *repository.CampaignInfluencerRepository
}

func NewCampaignHandler(db *gorm.DB) *CampaignHandler {
	campaignRepo := repository.NewCampaignRepository(db)
	influencerRepo := repository.NewCampaignInfluencerRepository(db)

	return &CampaignHandler{
		campaignService: services.NewCampaignService(campaignRepo, influencerRepo),
		influencerRepo:  influencerRepo,
	}
}

// GetCampaigns godoc
// @Summary List campaigns
// @Description List all campaigns, newest first, with the owning brand embedded
// @Tags campaigns
// @Produce json
// @Success 200 {array} models.Campaign
// @Failure 500 {object} map[string]interface{}
// @Router /campaigns [get]
func (h *CampaignHandler) GetCampaigns(c *gin.Context) {
	campaigns, err := h.campaignService.GetCampaigns()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch campaigns"})
		return
	}
	c.JSON(http.StatusOK, campaigns)
}

// GetCampaignByID godoc
// @Summary Get campaign by ID
// @Tags campaigns
// @Produce json
// @Param id path string true "Campaign ID"
// @Success 200 {object} models.Campaign
// @Failure 404 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /campaigns/{id} [get]
func (h *CampaignHandler) GetCampaignByID(c *gin.Context) {
	campaign, err := h.campaignService.GetCampaignByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Campaign not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch campaign"})
		return
	}
	c.JSON(http.StatusOK, campaign)
}

// CreateCampaign godoc
// @Summary Create a campaign
// @Description Create a new campaign; name is required. A client-supplied
// @Description brand embed is ignored and reconstructed on fetch.
// @Tags campaigns
// @Accept json
// @Produce json
// @Param request body models.CreateCampaignRequest true "Create campaign request"
// @Success 200 {object} models.Campaign
// @Failure 400 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /campaigns [post]
func (h *CampaignHandler) CreateCampaign(c *gin.Context) {
	var req models.CreateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Campaign name is required"})
		return
	}

	campaign, err := h.campaignService.CreateCampaign(&req)
	if err != nil {
		if strings.Contains(err.Error(), "invalid campaign status") {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create campaign"})
		return
	}
	c.JSON(http.StatusOK, campaign)
}

// UpdateCampaign godoc
// @Summary Update a campaign
// @Description Apply a partial update; summary-only patches leave every other field untouched
// @Tags campaigns
// @Accept json
// @Produce json
// @Param id path string true "Campaign ID"
// @Param request body models.UpdateCampaignRequest true "Update campaign request"
// @Success 200 {object} models.Campaign
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /campaigns/{id} [put]
func (h *CampaignHandler) UpdateCampaign(c *gin.Context) {
	var req models.UpdateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data"})
		return
	}

	campaign, err := h.campaignService.UpdateCampaign(c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Campaign not found"})
			return
		}
		if strings.Contains(err.Error(), "invalid campaign status") {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update campaign"})
		return
	}
	c.JSON(http.StatusOK, campaign)
}

// DeleteCampaign godoc
// @Summary Delete a campaign
// @Tags campaigns
// @Produce json
// @Param id path string true "Campaign ID"
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /campaigns/{id} [delete]
func (h *CampaignHandler) DeleteCampaign(c *gin.Context) {
	if err := h.campaignService.DeleteCampaign(c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete campaign"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GetCampaignStats godoc
// @Summary Per-campaign engagement totals
// @Description Engagement (likes+comments+shares) and reach totals over the campaign's influencer rows
// @Tags campaigns
// @Produce json
// @Param id path string true "Campaign ID"
// @Success 200 {object} models.CampaignStatsResponse
// @Failure 500 {object} map[string]interface{}
// @Router /campaigns/{id}/stats [get]
func (h *CampaignHandler) GetCampaignStats(c *gin.Context) {
	stats, err := h.campaignService.GetCampaignStats(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch campaign stats"})
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GetInfluencerCounts godoc
// @Summary Influencer counts per campaign
// @Description Mapping of campaign_id to number of influencer rows
// @Tags campaigns
// @Produce json
// @Success 200 {object} map[string]int
// @Failure 500 {object} map[string]interface{}
// @Router /campaigns/influencer-counts [get]
func (h *CampaignHandler) GetInfluencerCounts(c *gin.Context) {
	campaignIDs, err := h.influencerRepo.CampaignIDs()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch influencer counts"})
		return
	}
	c.JSON(http.StatusOK, services.CountByKey(campaignIDs))
}
