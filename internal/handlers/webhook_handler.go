package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/the88gb/influencer-dashboard-backend/internal/models"
	"github.com/the88gb/influencer-dashboard-backend/internal/services"
)

type WebhookHandler struct {
	metricsService *services.MetricsService
}

func NewWebhookHandler(metricsService *services.MetricsService) *WebhookHandler {
	return &WebhookHandler{metricsService: metricsService}
}

// FetchPostMetrics godoc
// @Summary Fetch post metrics via the external webhook
// @Description Forwards the post URL to the metrics webhook and returns the normalized metrics
// @Tags webhook
// @Accept json
// @Produce json
// @Param request body models.FetchPostMetricsRequest true "Post URL"
// @Success 200 {object} models.PostMetrics
// @Failure 400 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /webhook/fetch-post-metrics [post]
func (h *WebhookHandler) FetchPostMetrics(c *gin.Context) {
	var req models.FetchPostMetricsRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.PostURL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Post URL is required"})
		return
	}

	metrics, err := h.metricsService.FetchPostMetrics(req.PostURL)
	if err != nil {
		if errors.Is(err, services.ErrPostURLRequired) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Post URL is required"})
			return
		}
		if errors.Is(err, services.ErrWebhookTimeout) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Webhook request timed out after 30 seconds"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch post metrics"})
		return
	}
	c.JSON(http.StatusOK, metrics)
}
