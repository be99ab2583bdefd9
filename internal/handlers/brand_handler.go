package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/the88gb/influencer-dashboard-backend/internal/database/repository"
	"github.com/the88gb/influencer-dashboard-backend/internal/models"
	"github.com/the88gb/influencer-dashboard-backend/internal/services"
)

type BrandHandler struct {
	brandService *services.BrandService
	campaignRepo *repository.CampaignRepository
}

func NewBrandHandler(db *gorm.DB) *BrandHandler {
	brandRepo := repository.NewBrandRepository(db)
	campaignRepo := repository.NewCampaignRepository(db)

	return &BrandHandler{
		brandService: services.NewBrandService(brandRepo),
		campaignRepo: campaignRepo,
	}
}

// GetBrands godoc
// @Summary List brands
// @Description List all brands ordered by name ascending
// @Tags brands
// @Produce json
// @Success 200 {array} models.Brand
// @Failure 500 {object} map[string]interface{}
// @Router /brands [get]
func (h *BrandHandler) GetBrands(c *gin.Context) {
	brands, err := h.brandService.GetBrands()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch brands"})
		return
	}
	c.JSON(http.StatusOK, brands)
}

// GetBrandByID godoc
// @Summary Get brand by ID
// @Tags brands
// @Produce json
// @Param id path string true "Brand ID"
// @Success 200 {object} models.Brand
// @Failure 404 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /brands/{id} [get]
func (h *BrandHandler) GetBrandByID(c *gin.Context) {
	brand, err := h.brandService.GetBrandByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Brand not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch brand"})
		return
	}
	c.JSON(http.StatusOK, brand)
}

// CreateBrand godoc
// @Summary Create a brand
// @Description Create a new brand; name is required
// @Tags brands
// @Accept json
// @Produce json
// @Param request body models.CreateBrandRequest true "Create brand request"
// @Success 200 {object} models.Brand
// @Failure 400 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /brands [post]
func (h *BrandHandler) CreateBrand(c *gin.Context) {
	var req models.CreateBrandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Brand name is required"})
		return
	}

	brand, err := h.brandService.CreateBrand(&req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create brand"})
		return
	}
	c.JSON(http.StatusOK, brand)
}

// UpdateBrand godoc
// @Summary Update a brand
// @Description Apply a partial update; only supplied fields change
// @Tags brands
// @Accept json
// @Produce json
// @Param id path string true "Brand ID"
// @Param request body models.UpdateBrandRequest true "Update brand request"
// @Success 200 {object} models.Brand
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /brands/{id} [put]
func (h *BrandHandler) UpdateBrand(c *gin.Context) {
	var req models.UpdateBrandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data"})
		return
	}

	brand, err := h.brandService.UpdateBrand(c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Brand not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update brand"})
		return
	}
	c.JSON(http.StatusOK, brand)
}

// DeleteBrand godoc
// @Summary Delete a brand
// @Description Delete a brand; dependent campaigns keep their brand_id
// @Tags brands
// @Produce json
// @Param id path string true "Brand ID"
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /brands/{id} [delete]
func (h *BrandHandler) DeleteBrand(c *gin.Context) {
	if err := h.brandService.DeleteBrand(c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete brand"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GetCampaignCounts godoc
// @Summary Campaign counts per brand
// @Description Mapping of brand_id to number of campaigns
// @Tags brands
// @Produce json
// @Success 200 {object} map[string]int
// @Failure 500 {object} map[string]interface{}
// @Router /brands/campaign-counts [get]
func (h *BrandHandler) GetCampaignCounts(c *gin.Context) {
	brandIDs, err := h.campaignRepo.BrandIDs()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch campaign counts"})
		return
	}
	c.JSON(http.StatusOK, services.CountByKey(brandIDs))
}
