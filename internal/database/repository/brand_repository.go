package repository

import (
	"github.com/the88gb/influencer-dashboard-backend/internal/models"

	"gorm.io/gorm"
)

type BrandRepository struct {
	db *gorm.DB
}

func NewBrandRepository(db *gorm.DB) *BrandRepository {
	return &BrandRepository{db: db}
}

// List retrieves all brands ordered by name ascending
func (r *BrandRepository) List() ([]*models.Brand, error) {
	var brands []*models.Brand
	err := r.db.Order("name ASC").Find(&brands).Error
	if err != nil {
		return nil, storeErr("brand", "list", err)
	}
	return brands, nil
}

// GetByID retrieves a brand by ID
func (r *BrandRepository) GetByID(id string) (*models.Brand, error) {
	var brand models.Brand
	err := r.db.First(&brand, "id = ?", id).Error
	if err != nil {
		return nil, storeErr("brand", "get", err)
	}
	return &brand, nil
}

// Create creates a new brand
func (r *BrandRepository) Create(brand *models.Brand) error {
	if err := r.db.Create(brand).Error; err != nil {
		return storeErr("brand", "create", err)
	}
	return nil
}

// Update applies the supplied fields to a brand and returns the fresh row.
func (r *BrandRepository) Update(id string, updates map[string]interface{}) (*models.Brand, error) {
	if len(updates) > 0 {
		if err := r.db.Model(&models.Brand{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			return nil, storeErr("brand", "update", err)
		}
	}
	return r.GetByID(id)
}

// Delete deletes a brand. Dependent campaigns are left untouched; their
// brand_id dangles (current behavior, no cascade).
func (r *BrandRepository) Delete(id string) error {
	if err := r.db.Delete(&models.Brand{}, "id = ?", id).Error; err != nil {
		return storeErr("brand", "delete", err)
	}
	return nil
}

// Count returns the number of brands without materializing rows
func (r *BrandRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Brand{}).Count(&count).Error
	if err != nil {
		return 0, storeErr("brand", "count", err)
	}
	return count, nil
}
