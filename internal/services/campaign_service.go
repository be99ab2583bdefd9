package services

import (
	"fmt"

	"github.com/the88gb/influencer-dashboard-backend/internal/database/repository"
	"github.com/the88gb/influencer-dashboard-backend/internal/models"
)

type CampaignService struct {
	campaignRepo   *repository.CampaignRepository
	influencerRepo *repository.CampaignInfluencerRepository
}

func NewCampaignService(
	campaignRepo *repository.CampaignRepository,
	influencerRepo *repository.CampaignInfluencerRepository,
) *CampaignService {
	return &CampaignService{
		campaignRepo:   campaignRepo,
		influencerRepo: influencerRepo,
	}
}

// GetCampaigns retrieves all campaigns with their brand embedded, newest first
func (s *CampaignService) GetCampaigns() ([]*models.Campaign, error) {
	return s.campaignRepo.List()
}

// GetCampaignByID retrieves a single campaign with its brand embedded
func (s *CampaignService) GetCampaignByID(id string) (*models.Campaign, error) {
	return s.campaignRepo.GetByID(id)
}

// CreateCampaign creates a new campaign. The status defaults to draft and is
// validated against the enumerated set before anything is persisted.
func (s *CampaignService) CreateCampaign(req *models.CreateCampaignRequest) (*models.Campaign, error) {
	status := req.Status
	if status == "" {
		status = models.CampaignStatusDraft
	}
	if !models.ValidCampaignStatus(status) {
		return nil, fmt.Errorf("invalid campaign status: %q", status)
	}

	campaign := &models.Campaign{
		BrandID:        req.BrandID,
		Name:           req.Name,
		Description:    req.Description,
		Summary:        req.Summary,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		Status:         status,
		Budget:         req.Budget,
		TargetAudience: req.TargetAudience,
		Goals:          req.Goals,
	}
	return s.campaignRepo.Create(campaign)
}

// UpdateCampaign applies a partial update to a campaign. Unsupplied fields
// are untouched; only updated_at refreshes alongside the patch.
func (s *CampaignService) UpdateCampaign(id string, req *models.UpdateCampaignRequest) (*models.Campaign, error) {
	if req.Status != nil && !models.ValidCampaignStatus(*req.Status) {
		return nil, fmt.Errorf("invalid campaign status: %q", *req.Status)
	}
	return s.campaignRepo.Update(id, req.Updates())
}

// DeleteCampaign deletes a campaign. Influencer rows are not cascaded.
func (s *CampaignService) DeleteCampaign(id string) error {
	return s.campaignRepo.Delete(id)
}

// GetCampaignStats computes the engagement totals for one campaign by
// reducing its influencer rows. No additional store access beyond the list.
func (s *CampaignService) GetCampaignStats(campaignID string) (*models.CampaignStatsResponse, error) {
	rows, err := s.influencerRepo.ListByCampaign(campaignID)
	if err != nil {
		return nil, err
	}
	return &models.CampaignStatsResponse{
		CampaignID:      campaignID,
		InfluencerCount: len(rows),
		TotalEngagement: EngagementTotal(rows),
		TotalReach:      ReachTotal(rows),
	}, nil
}
