package services

import (
	"errors"
	"fmt"

	"github.com/the88gb/influencer-dashboard-backend/internal/database/repository"
	"github.com/the88gb/influencer-dashboard-backend/internal/models"
)

// ErrTableNotProvisioned is returned when the campaign_influencers table has
// not been created in the store yet.
var ErrTableNotProvisioned = errors.New("campaign influencers table not found")

type CampaignInfluencerService struct {
	influencerRepo *repository.CampaignInfluencerRepository
}

func NewCampaignInfluencerService(influencerRepo *repository.CampaignInfluencerRepository) *CampaignInfluencerService {
	return &CampaignInfluencerService{influencerRepo: influencerRepo}
}

// GetByCampaign retrieves the influencer rows for a campaign, newest first.
// The table is probed first so an unprovisioned store maps to a distinct
// not-found condition instead of a generic failure.
func (s *CampaignInfluencerService) GetByCampaign(campaignID string) ([]*models.CampaignInfluencer, error) {
	exists, err := s.influencerRepo.TableExists()
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrTableNotProvisioned
	}
	return s.influencerRepo.ListByCampaign(campaignID)
}

// GetAll retrieves every influencer row across campaigns, name ascending
func (s *CampaignInfluencerService) GetAll() ([]*models.CampaignInfluencer, error) {
	return s.influencerRepo.ListAll()
}

// Create adds an influencer row to a campaign. The campaign id comes from
// the route context; counters are clamped to zero at this boundary.
func (s *CampaignInfluencerService) Create(campaignID string, req *models.CreateCampaignInfluencerRequest) (*models.CampaignInfluencer, error) {
	platform := req.Platform
	if platform == "" {
		platform = models.PlatformInstagram
	}
	if !models.ValidPlatform(platform) {
		return nil, fmt.Errorf("invalid platform: %q", platform)
	}
	status := req.Status
	if status == "" {
		status = models.InfluencerStatusActive
	}
	if !models.ValidInfluencerStatus(status) {
		return nil, fmt.Errorf("invalid influencer status: %q", status)
	}

	row := &models.CampaignInfluencer{
		CampaignID:     campaignID,
		Name:           req.Name,
		Platform:       platform,
		Username:       req.Username,
		ContentType:    req.ContentType,
		PostURL:        req.PostURL,
		Likes:          clampNonNegative(req.Likes),
		Comments:       clampNonNegative(req.Comments),
		Shares:         clampNonNegative(req.Shares),
		Views:          clampNonNegative(req.Views),
		FollowersCount: clampNonNegative(req.FollowersCount),
		Status:         status,
		Notes:          req.Notes,
	}
	if err := s.influencerRepo.Create(row); err != nil {
		return nil, err
	}
	return row, nil
}

// Update applies a partial update to an influencer row identified by the id
// carried in the request body.
func (s *CampaignInfluencerService) Update(req *models.UpdateCampaignInfluencerRequest) (*models.CampaignInfluencer, error) {
	if req.Platform != nil && !models.ValidPlatform(*req.Platform) {
		return nil, fmt.Errorf("invalid platform: %q", *req.Platform)
	}
	if req.Status != nil && !models.ValidInfluencerStatus(*req.Status) {
		return nil, fmt.Errorf("invalid influencer status: %q", *req.Status)
	}
	return s.influencerRepo.Update(req.ID, req.Updates())
}

// Delete removes an influencer row
func (s *CampaignInfluencerService) Delete(id string) error {
	return s.influencerRepo.Delete(id)
}

func clampNonNegative(v int) int {
	if v < 0 {
		return 0
	}
	return v
}
