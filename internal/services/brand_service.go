package services

import (
	"github.com/the88gb/influencer-dashboard-backend/internal/database/repository"
	"github.com/the88gb/influencer-dashboard-backend/internal/models"
)

type BrandService struct {
	brandRepo *repository.BrandRepository
}

func NewBrandService(brandRepo *repository.BrandRepository) *BrandService {
	return &BrandService{brandRepo: brandRepo}
}

// GetBrands retrieves all brands, name ascending
func (s *BrandService) GetBrands() ([]*models.Brand, error) {
	return s.brandRepo.List()
}

// GetBrandByID retrieves a single brand
func (s *BrandService) GetBrandByID(id string) (*models.Brand, error) {
	return s.brandRepo.GetByID(id)
}

// CreateBrand creates a new brand
func (s *BrandService) CreateBrand(req *models.CreateBrandRequest) (*models.Brand, error) {
	brand := &models.Brand{
		Name:        req.Name,
		Description: req.Description,
		Website:     req.Website,
		Industry:    req.Industry,
		LogoURL:     req.LogoURL,
	}
	if err := s.brandRepo.Create(brand); err != nil {
		return nil, err
	}
	return brand, nil
}

// UpdateBrand applies a partial update to a brand
func (s *BrandService) UpdateBrand(id string, req *models.UpdateBrandRequest) (*models.Brand, error) {
	return s.brandRepo.Update(id, req.Updates())
}

// DeleteBrand deletes a brand. Campaigns referencing it keep their brand_id.
func (s *BrandService) DeleteBrand(id string) error {
	return s.brandRepo.Delete(id)
}
