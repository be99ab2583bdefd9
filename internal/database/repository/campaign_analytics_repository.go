package repository

import (
	"github.com/the88gb/influencer-dashboard-backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CampaignAnalyticsRepository struct {
	db *gorm.DB
}

func NewCampaignAnalyticsRepository(db *gorm.DB) *CampaignAnalyticsRepository {
	return &CampaignAnalyticsRepository{db: db}
}

// GetByCampaignID retrieves the analytics record for a campaign, or nil when
// none exists.
func (r *CampaignAnalyticsRepository) GetByCampaignID(campaignID string) (*models.CampaignAnalytics, error) {
	var rows []*models.CampaignAnalytics
	err := r.db.Where("campaign_id = ?", campaignID).Limit(1).Find(&rows).Error
	if err != nil {
		return nil, storeErr("campaign analytics", "get", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0], nil
}

// Upsert writes the aggregate record for a campaign, inserting or replacing
// the existing row keyed on campaign_id.
func (r *CampaignAnalyticsRepository) Upsert(analytics *models.CampaignAnalytics) (*models.CampaignAnalytics, error) {
	err := r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "campaign_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"total_reach", "total_engagement", "total_impressions",
			"total_clicks", "conversion_rate", "roi", "updated_at",
		}),
	}).Create(analytics).Error
	if err != nil {
		return nil, storeErr("campaign analytics", "upsert", err)
	}
	return r.GetByCampaignID(analytics.CampaignID)
}

// ListROI returns the roi values of all existing analytics rows
func (r *CampaignAnalyticsRepository) ListROI() ([]float64, error) {
	var rois []float64
	err := r.db.Model(&models.CampaignAnalytics{}).Pluck("roi", &rois).Error
	if err != nil {
		return nil, storeErr("campaign analytics", "list roi", err)
	}
	return rois, nil
}

// TableExists reports whether the campaign_analytics table is provisioned
func (r *CampaignAnalyticsRepository) TableExists() (bool, error) {
	return TableExists(r.db, "campaign_analytics")
}
