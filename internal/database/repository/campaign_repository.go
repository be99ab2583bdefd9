package repository

import (
	"github.com/the88gb/influencer-dashboard-backend/internal/models"

	"gorm.io/gorm"
)

type CampaignRepository struct {
	db *gorm.DB
}

func NewCampaignRepository(db *gorm.DB) *CampaignRepository {
	return &CampaignRepository{db: db}
}

// List retrieves all campaigns with their brand embedded, newest first
func (r *CampaignRepository) List() ([]*models.Campaign, error) {
	var campaigns []*models.Campaign
	err := r.db.Preload("Brand").
		Order("created_at DESC").
		Find(&campaigns).Error
	if err != nil {
		return nil, storeErr("campaign", "list", err)
	}
	return campaigns, nil
}

// GetByID retrieves a campaign by ID with its brand embedded
func (r *CampaignRepository) GetByID(id string) (*models.Campaign, error) {
	var campaign models.Campaign
	err := r.db.Preload("Brand").
		First(&campaign, "id = ?", id).Error
	if err != nil {
		return nil, storeErr("campaign", "get", err)
	}
	return &campaign, nil
}

// Create creates a new campaign and returns it with the brand embed
// reconstructed. Any brand embed on the input is ignored; the join is
// read-only.
func (r *CampaignRepository) Create(campaign *models.Campaign) (*models.Campaign, error) {
	campaign.Brand = nil
	if err := r.db.Omit("Brand").Create(campaign).Error; err != nil {
		return nil, storeErr("campaign", "create", err)
	}
	return r.GetByID(campaign.ID)
}

// Update applies the supplied fields to a campaign and returns the fresh row
// with its brand embedded.
func (r *CampaignRepository) Update(id string, updates map[string]interface{}) (*models.Campaign, error) {
	if len(updates) > 0 {
		if err := r.db.Model(&models.Campaign{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			return nil, storeErr("campaign", "update", err)
		}
	}
	return r.GetByID(id)
}

// Delete deletes a campaign. Influencer rows are not cascaded (current behavior).
func (r *CampaignRepository) Delete(id string) error {
	if err := r.db.Delete(&models.Campaign{}, "id = ?", id).Error; err != nil {
		return storeErr("campaign", "delete", err)
	}
	return nil
}

// Count returns the number of campaigns without materializing rows
func (r *CampaignRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Campaign{}).Count(&count).Error
	if err != nil {
		return 0, storeErr("campaign", "count", err)
	}
	return count, nil
}

// CountByStatus returns the number of campaigns with the given status
func (r *CampaignRepository) CountByStatus(status string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Campaign{}).Where("status = ?", status).Count(&count).Error
	if err != nil {
		return 0, storeErr("campaign", "count", err)
	}
	return count, nil
}

// SumBudget returns the sum of all non-null campaign budgets, unfiltered by status
func (r *CampaignRepository) SumBudget() (float64, error) {
	var total float64
	err := r.db.Model(&models.Campaign{}).
		Where("budget IS NOT NULL").
		Select("COALESCE(SUM(budget), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, storeErr("campaign", "sum budget", err)
	}
	return total, nil
}

// BrandIDs returns the flat list of non-null brand foreign keys, one entry
// per campaign, for grouping into per-brand counts.
func (r *CampaignRepository) BrandIDs() ([]string, error) {
	var ids []string
	err := r.db.Model(&models.Campaign{}).
		Where("brand_id IS NOT NULL").
		Pluck("brand_id", &ids).Error
	if err != nil {
		return nil, storeErr("campaign", "list brand ids", err)
	}
	return ids, nil
}
