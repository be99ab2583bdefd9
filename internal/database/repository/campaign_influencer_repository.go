package repository

import (
	"github.com/the88gb/influencer-dashboard-backend/internal/models"

	"gorm.io/gorm"
)

type CampaignInfluencerRepository struct {
	db *gorm.DB
}

func NewCampaignInfluencerRepository(db *gorm.DB) *CampaignInfluencerRepository {
	return &CampaignInfluencerRepository{db: db}
}

// ListByCampaign retrieves the influencer rows for one campaign, newest first
func (r *CampaignInfluencerRepository) ListByCampaign(campaignID string) ([]*models.CampaignInfluencer, error) {
	var rows []*models.CampaignInfluencer
	err := r.db.Where("campaign_id = ?", campaignID).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, storeErr("campaign influencer", "list", err)
	}
	return rows, nil
}

// ListAll retrieves every influencer row across campaigns, ordered by name ascending
func (r *CampaignInfluencerRepository) ListAll() ([]*models.CampaignInfluencer, error) {
	var rows []*models.CampaignInfluencer
	err := r.db.Order("name ASC").Find(&rows).Error
	if err != nil {
		return nil, storeErr("campaign influencer", "list", err)
	}
	return rows, nil
}

// GetByID retrieves an influencer row by ID
func (r *CampaignInfluencerRepository) GetByID(id string) (*models.CampaignInfluencer, error) {
	var row models.CampaignInfluencer
	err := r.db.First(&row, "id = ?", id).Error
	if err != nil {
		return nil, storeErr("campaign influencer", "get", err)
	}
	return &row, nil
}

// Create creates a new influencer row
func (r *CampaignInfluencerRepository) Create(row *models.CampaignInfluencer) error {
	if err := r.db.Create(row).Error; err != nil {
		return storeErr("campaign influencer", "create", err)
	}
	return nil
}

// Update applies the supplied fields to an influencer row and returns the fresh row.
func (r *CampaignInfluencerRepository) Update(id string, updates map[string]interface{}) (*models.CampaignInfluencer, error) {
	if len(updates) > 0 {
		if err := r.db.Model(&models.CampaignInfluencer{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			return nil, storeErr("campaign influencer", "update", err)
		}
	}
	return r.GetByID(id)
}

// Delete deletes an influencer row
func (r *CampaignInfluencerRepository) Delete(id string) error {
	if err := r.db.Delete(&models.CampaignInfluencer{}, "id = ?", id).Error; err != nil {
		return storeErr("campaign influencer", "delete", err)
	}
	return nil
}

// CampaignIDs returns the flat list of campaign foreign keys, one entry per
// influencer row, for grouping into per-campaign counts.
func (r *CampaignInfluencerRepository) CampaignIDs() ([]string, error) {
	var ids []string
	err := r.db.Model(&models.CampaignInfluencer{}).
		Where("campaign_id IS NOT NULL").
		Pluck("campaign_id", &ids).Error
	if err != nil {
		return nil, storeErr("campaign influencer", "list campaign ids", err)
	}
	return ids, nil
}

// TableExists reports whether the campaign_influencers table is provisioned
func (r *CampaignInfluencerRepository) TableExists() (bool, error) {
	return TableExists(r.db, "campaign_influencers")
}
