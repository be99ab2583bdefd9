package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/the88gb/influencer-dashboard-backend/internal/models"
)

func TestMatchResultsCampaignNotBrand(t *testing.T) {
	campaigns := []*models.Campaign{
		{ID: "c1", Name: "Test Campaign", Brand: &models.Brand{Name: "Other"}},
	}
	brands := []*models.Brand{
		{ID: "b1", Name: "Other"},
	}

	results := matchResults("test", campaigns, brands, nil)

	require.Len(t, results, 1)
	assert.Equal(t, "c1", results[0].ID)
	assert.Equal(t, models.SearchTypeCampaign, results[0].Type)
	assert.Equal(t, "Test Campaign", results[0].Title)
	assert.Equal(t, "Other", results[0].Subtitle)
	assert.Equal(t, "/campaigns/c1", results[0].URL)
}

func TestMatchResultsCaseInsensitive(t *testing.T) {
	brands := []*models.Brand{
		{ID: "b1", Name: "ACME Sportswear", Industry: "Fashion"},
	}

	results := matchResults("acme", nil, brands, nil)

	require.Len(t, results, 1)
	assert.Equal(t, "Fashion", results[0].Subtitle)
}

func TestMatchResultsInfluencerFields(t *testing.T) {
	influencers := []*models.CampaignInfluencer{
		{ID: "i1", Name: "Sarah Johnson", Username: "sarahjstyle", Platform: "instagram"},
		{ID: "i2", Name: "Mike", Username: "mikefit", Platform: "tiktok"},
	}

	// Platform is part of the influencer field set.
	results := matchResults("tiktok", nil, nil, influencers)
	require.Len(t, results, 1)
	assert.Equal(t, "i2", results[0].ID)
	assert.Equal(t, "tiktok • @mikefit", results[0].Subtitle)

	// Username matches too.
	results = matchResults("sarahj", nil, nil, influencers)
	require.Len(t, results, 1)
	assert.Equal(t, "i1", results[0].ID)
}

func TestMatchResultsDescriptionMatch(t *testing.T) {
	campaigns := []*models.Campaign{
		{ID: "c1", Name: "Launch", Description: "featuring our summer line"},
	}

	results := matchResults("summer", campaigns, nil, nil)

	require.Len(t, results, 1)
	assert.Equal(t, "No brand", results[0].Subtitle)
}

func TestMatchResultsTypeOrdering(t *testing.T) {
	campaigns := []*models.Campaign{{ID: "c1", Name: "glow"}}
	brands := []*models.Brand{{ID: "b1", Name: "glow"}}
	influencers := []*models.CampaignInfluencer{{ID: "i1", Name: "glow", Platform: "youtube"}}

	results := matchResults("glow", campaigns, brands, influencers)

	require.Len(t, results, 3)
	assert.Equal(t, models.SearchTypeCampaign, results[0].Type)
	assert.Equal(t, models.SearchTypeBrand, results[1].Type)
	assert.Equal(t, models.SearchTypeInfluencer, results[2].Type)
}

func TestMatchResultsTruncatedToTen(t *testing.T) {
	var campaigns []*models.Campaign
	for i := 0; i < 15; i++ {
		campaigns = append(campaigns, &models.Campaign{
			ID:   fmt.Sprintf("c%d", i),
			Name: fmt.Sprintf("Holiday push %d", i),
		})
	}

	results := matchResults("holiday", campaigns, nil, nil)

	assert.Len(t, results, 10)
}

func TestMatchResultsNoMatch(t *testing.T) {
	campaigns := []*models.Campaign{{ID: "c1", Name: "Launch"}}

	results := matchResults("zzz", campaigns, nil, nil)

	assert.Empty(t, results)
}

func TestSearchWhitespaceQuery(t *testing.T) {
	// A whitespace-only query must not touch the store at all, so a service
	// with nil repositories is safe here.
	svc := NewSearchService(nil, nil, nil)

	results, err := svc.Search("   ")

	require.NoError(t, err)
	assert.Empty(t, results)
}
