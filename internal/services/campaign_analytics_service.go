package services

import (
	"github.com/the88gb/influencer-dashboard-backend/internal/database/repository"
	"github.com/the88gb/influencer-dashboard-backend/internal/models"
)

type CampaignAnalyticsService struct {
	analyticsRepo *repository.CampaignAnalyticsRepository
}

func NewCampaignAnalyticsService(analyticsRepo *repository.CampaignAnalyticsRepository) *CampaignAnalyticsService {
	return &CampaignAnalyticsService{analyticsRepo: analyticsRepo}
}

// GetByCampaign retrieves the aggregate record for a campaign, nil when none exists
func (s *CampaignAnalyticsService) GetByCampaign(campaignID string) (*models.CampaignAnalytics, error) {
	return s.analyticsRepo.GetByCampaignID(campaignID)
}

// Upsert writes the aggregate record for a campaign, keyed on campaign_id
func (s *CampaignAnalyticsService) Upsert(campaignID string, req *models.UpsertCampaignAnalyticsRequest) (*models.CampaignAnalytics, error) {
	analytics := &models.CampaignAnalytics{
		CampaignID:       campaignID,
		TotalReach:       clampNonNegative(req.TotalReach),
		TotalEngagement:  clampNonNegative(req.TotalEngagement),
		TotalImpressions: clampNonNegative(req.TotalImpressions),
		TotalClicks:      clampNonNegative(req.TotalClicks),
		ConversionRate:   req.ConversionRate,
		ROI:              req.ROI,
	}
	return s.analyticsRepo.Upsert(analytics)
}
