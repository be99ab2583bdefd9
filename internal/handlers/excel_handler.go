package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/the88gb/influencer-dashboard-backend/internal/database/repository"
	"github.com/the88gb/influencer-dashboard-backend/internal/services/excel"
)

// ExcelHandler handles HTTP requests related to Excel exports
type ExcelHandler struct {
	excelService *excel.Service
}

// NewExcelHandler creates a new ExcelHandler instance
func NewExcelHandler(db *gorm.DB) *ExcelHandler {
	campaignRepo := repository.NewCampaignRepository(db)
	influencerRepo := repository.NewCampaignInfluencerRepository(db)

	return &ExcelHandler{
		excelService: excel.NewService(campaignRepo, influencerRepo),
	}
}

// ExportCampaigns godoc
// @Summary Export campaigns to Excel
// @Description Download an xlsx report of all campaigns with brand, status, budget and influencer count
// @Tags excel
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} file
// @Failure 500 {object} map[string]interface{}
// @Router /export/campaigns [get]
func (h *ExcelHandler) ExportCampaigns(c *gin.Context) {
	f, filename, err := h.excelService.ExportCampaigns()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export campaigns"})
		return
	}
	defer f.Close()

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := f.Write(c.Writer); err != nil {
		logrus.Errorf("Failed to write Excel export: %v", err)
	}
}
