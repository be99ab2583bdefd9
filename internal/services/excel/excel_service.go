package excel

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/the88gb/influencer-dashboard-backend/internal/database/repository"
	"github.com/the88gb/influencer-dashboard-backend/internal/services"
)

// Service exports campaign reports to Excel
type Service struct {
	campaignRepo   *repository.CampaignRepository
	influencerRepo *repository.CampaignInfluencerRepository
}

// NewService creates a new Excel export service instance
func NewService(
	campaignRepo *repository.CampaignRepository,
	influencerRepo *repository.CampaignInfluencerRepository,
) *Service {
	return &Service{
		campaignRepo:   campaignRepo,
		influencerRepo: influencerRepo,
	}
}

// ExportCampaigns builds an xlsx workbook with one row per campaign: brand,
// status, dates, budget and the influencer count. The caller owns closing
// the returned file.
func (s *Service) ExportCampaigns() (*excelize.File, string, error) {
	campaigns, err := s.campaignRepo.List()
	if err != nil {
		return nil, "", fmt.Errorf("failed to get campaigns: %w", err)
	}

	campaignIDs, err := s.influencerRepo.CampaignIDs()
	if err != nil {
		return nil, "", fmt.Errorf("failed to get influencer counts: %w", err)
	}
	influencerCounts := services.CountByKey(campaignIDs)

	f := excelize.NewFile()
	sheet := "Campaigns"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Campaign", "Brand", "Status", "Start Date", "End Date", "Budget", "Influencers"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, header)
	}

	for i, campaign := range campaigns {
		row := i + 2
		brandName := ""
		if campaign.Brand != nil {
			brandName = campaign.Brand.Name
		}
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), campaign.Name)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), brandName)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), campaign.Status)
		if campaign.StartDate != nil {
			f.SetCellValue(sheet, fmt.Sprintf("D%d", row), campaign.StartDate.Format("2006-01-02"))
		}
		if campaign.EndDate != nil {
			f.SetCellValue(sheet, fmt.Sprintf("E%d", row), campaign.EndDate.Format("2006-01-02"))
		}
		if campaign.Budget != nil {
			f.SetCellValue(sheet, fmt.Sprintf("F%d", row), *campaign.Budget)
		}
		f.SetCellValue(sheet, fmt.Sprintf("G%d", row), influencerCounts[campaign.ID])
	}

	f.SetColWidth(sheet, "A", "B", 30)
	f.SetColWidth(sheet, "C", "G", 15)

	filename := fmt.Sprintf("campaigns_report_%d.xlsx", time.Now().Unix())
	return f, filename, nil
}
