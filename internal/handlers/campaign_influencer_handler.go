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

type CampaignInfluencerHandler struct {
	influencerService *services.CampaignInfluencerService
}

func NewCampaignInfluencerHandler(db *gorm.DB) *CampaignInfluencerHandler {
	influencerRepo := repository.NewCampaignInfluencerRepository(db)

	return &CampaignInfluencerHandler{
		influencerService: services.NewCampaignInfluencerService(influencerRepo),
	}
}

// GetByCampaign godoc
// @Summary List influencer rows for a campaign
// @Description Influencer-detail rows scoped to one campaign, newest first
// @Tags influencers
// @Produce json
// @Param id path string true "Campaign ID"
// @Success 200 {array} models.CampaignInfluencer
// @Failure 404 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /campaigns/{id}/influencers [get]
func (h *CampaignInfluencerHandler) GetByCampaign(c *gin.Context) {
	rows, err := h.influencerService.GetByCampaign(c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrTableNotProvisioned) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Campaign influencers table not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch campaign influencers"})
		return
	}
	c.JSON(http.StatusOK, rows)
}

// Create godoc
// @Summary Add an influencer row to a campaign
// @Description The campaign id comes from the route; engagement counters default to 0
// @Tags influencers
// @Accept json
// @Produce json
// @Param id path string true "Campaign ID"
// @Param request body models.CreateCampaignInfluencerRequest true "Create influencer request"
// @Success 201 {object} models.CampaignInfluencer
// @Failure 400 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /campaigns/{id}/influencers [post]
func (h *CampaignInfluencerHandler) Create(c *gin.Context) {
	var req models.CreateCampaignInfluencerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data"})
		return
	}

	row, err := h.influencerService.Create(c.Param("id"), &req)
	if err != nil {
		if strings.Contains(err.Error(), "invalid") {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create campaign influencer"})
		return
	}
	c.JSON(http.StatusCreated, row)
}

// Update godoc
// @Summary Update an influencer row
// @Description The target row id travels in the body; only supplied fields change
// @Tags influencers
// @Accept json
// @Produce json
// @Param id path string true "Campaign ID"
// @Param request body models.UpdateCampaignInfluencerRequest true "Update influencer request"
// @Success 200 {object} models.CampaignInfluencer
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /campaigns/{id}/influencers [put]
func (h *CampaignInfluencerHandler) Update(c *gin.Context) {
	var req models.UpdateCampaignInfluencerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data"})
		return
	}
	if req.ID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Influencer ID is required"})
		return
	}

	row, err := h.influencerService.Update(&req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Campaign influencer not found"})
			return
		}
		if strings.Contains(err.Error(), "invalid") {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update campaign influencer"})
		return
	}
	c.JSON(http.StatusOK, row)
}

// Delete godoc
// @Summary Delete an influencer row
// @Description Deletes the row identified by the id query parameter
// @Tags influencers
// @Produce json
// @Param id path string true "Campaign ID"
// @Param id query string true "Influencer row ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /campaigns/{id}/influencers [delete]
func (h *CampaignInfluencerHandler) Delete(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Influencer ID is required"})
		return
	}

	if err := h.influencerService.Delete(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete campaign influencer"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
