package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CampaignAnalytics holds the optional aggregate record for one campaign.
// At most one row exists per campaign; writes go through an upsert keyed on
// campaign_id.
type CampaignAnalytics struct {
	ID               string    `json:"id" gorm:"primaryKey;type:uuid"`
	CampaignID       string    `json:"campaign_id" gorm:"not null;uniqueIndex;type:uuid"`
	TotalReach       int       `json:"total_reach" gorm:"default:0"`
	TotalEngagement  int       `json:"total_engagement" gorm:"default:0"`
	TotalImpressions int       `json:"total_impressions" gorm:"default:0"`
	TotalClicks      int       `json:"total_clicks" gorm:"default:0"`
	ConversionRate   float64   `json:"conversion_rate" gorm:"default:0"`
	ROI              float64   `json:"roi" gorm:"column:roi;default:0"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// TableName specifies the table name for the CampaignAnalytics model
func (CampaignAnalytics) TableName() string {
	return "campaign_analytics"
}

// BeforeCreate assigns a server-generated ID
func (a *CampaignAnalytics) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}

// UpsertCampaignAnalyticsRequest represents the aggregate payload written for
// a campaign. The campaign_id comes from the route, not the body.
type UpsertCampaignAnalyticsRequest struct {
	TotalReach       int     `json:"total_reach"`
	TotalEngagement  int     `json:"total_engagement"`
	TotalImpressions int     `json:"total_impressions"`
	TotalClicks      int     `json:"total_clicks"`
	ConversionRate   float64 `json:"conversion_rate"`
	ROI              float64 `json:"roi"`
}
