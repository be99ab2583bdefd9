package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/the88gb/influencer-dashboard-backend/internal/database/repository"
	"github.com/the88gb/influencer-dashboard-backend/internal/services"
)

type SearchHandler struct {
	searchService *services.SearchService
}

func NewSearchHandler(db *gorm.DB) *SearchHandler {
	brandRepo := repository.NewBrandRepository(db)
	campaignRepo := repository.NewCampaignRepository(db)
	influencerRepo := repository.NewCampaignInfluencerRepository(db)

	return &SearchHandler{
		searchService: services.NewSearchService(brandRepo, campaignRepo, influencerRepo),
	}
}

// Search godoc
// @Summary Cross-entity search
// @Description Case-insensitive substring search over campaigns, brands and influencers; first 10 matches
// @Tags search
// @Produce json
// @Param q query string false "Search query"
// @Success 200 {array} models.SearchResult
// @Failure 500 {object} map[string]interface{}
// @Router /search [get]
func (h *SearchHandler) Search(c *gin.Context) {
	results, err := h.searchService.Search(c.Query("q"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search"})
		return
	}
	c.JSON(http.StatusOK, results)
}
