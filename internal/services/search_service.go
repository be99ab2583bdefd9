package services

import (
	"fmt"
	"strings"
	"sync"

	"github.com/the88gb/influencer-dashboard-backend/internal/database/repository"
	"github.com/the88gb/influencer-dashboard-backend/internal/models"
)

const maxSearchResults = 10

type SearchService struct {
	brandRepo      *repository.BrandRepository
	campaignRepo   *repository.CampaignRepository
	influencerRepo *repository.CampaignInfluencerRepository
}

func NewSearchService(
	brandRepo *repository.BrandRepository,
	campaignRepo *repository.CampaignRepository,
	influencerRepo *repository.CampaignInfluencerRepository,
) *SearchService {
	return &SearchService{
		brandRepo:      brandRepo,
		campaignRepo:   campaignRepo,
		influencerRepo: influencerRepo,
	}
}

// Search runs a cross-entity substring search. A whitespace-only query
// yields an empty result set without touching the store; otherwise the three
// entity fetches run concurrently and the combined matches are truncated to
// the first 10, campaigns first, then brands, then influencers.
func (s *SearchService) Search(query string) ([]models.SearchResult, error) {
	if strings.TrimSpace(query) == "" {
		return []models.SearchResult{}, nil
	}

	var (
		campaigns   []*models.Campaign
		brands      []*models.Brand
		influencers []*models.CampaignInfluencer

		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)
	run := func(f func() error) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := f(); err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
			}
		}()
	}

	run(func() error {
		var err error
		campaigns, err = s.campaignRepo.List()
		return err
	})
	run(func() error {
		var err error
		brands, err = s.brandRepo.List()
		return err
	})
	run(func() error {
		var err error
		influencers, err = s.influencerRepo.ListAll()
		return err
	})
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	return matchResults(query, campaigns, brands, influencers), nil
}

// matchResults tests case-insensitive substring containment over each entity
// type's fixed field set and maps hits into the uniform result shape.
func matchResults(
	query string,
	campaigns []*models.Campaign,
	brands []*models.Brand,
	influencers []*models.CampaignInfluencer,
) []models.SearchResult {
	q := strings.ToLower(query)
	results := []models.SearchResult{}

	for _, campaign := range campaigns {
		if !containsFold(q, campaign.Name, campaign.Description) {
			continue
		}
		subtitle := "No brand"
		if campaign.Brand != nil && campaign.Brand.Name != "" {
			subtitle = campaign.Brand.Name
		}
		results = append(results, models.SearchResult{
			ID:       campaign.ID,
			Type:     models.SearchTypeCampaign,
			Title:    campaign.Name,
			Subtitle: subtitle,
			URL:      "/campaigns/" + campaign.ID,
		})
	}

	for _, brand := range brands {
		if !containsFold(q, brand.Name, brand.Description) {
			continue
		}
		subtitle := brand.Industry
		if subtitle == "" {
			subtitle = "No industry"
		}
		results = append(results, models.SearchResult{
			ID:       brand.ID,
			Type:     models.SearchTypeBrand,
			Title:    brand.Name,
			Subtitle: subtitle,
			URL:      "/brands",
		})
	}

	for _, influencer := range influencers {
		if !containsFold(q, influencer.Name, influencer.Username, influencer.Platform) {
			continue
		}
		username := influencer.Username
		if username == "" {
			username = "No username"
		}
		results = append(results, models.SearchResult{
			ID:       influencer.ID,
			Type:     models.SearchTypeInfluencer,
			Title:    influencer.Name,
			Subtitle: fmt.Sprintf("%s • @%s", influencer.Platform, username),
			URL:      "/influencers",
		})
	}

	if len(results) > maxSearchResults {
		results = results[:maxSearchResults]
	}
	return results
}

// containsFold reports whether any of the fields contains the already
// lowercased query.
func containsFold(loweredQuery string, fields ...string) bool {
	for _, field := range fields {
		if field == "" {
			continue
		}
		if strings.Contains(strings.ToLower(field), loweredQuery) {
			return true
		}
	}
	return false
}
