package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidCampaignStatus(t *testing.T) {
	for _, status := range []string{"draft", "active", "completed", "paused"} {
		assert.True(t, ValidCampaignStatus(status), status)
	}
	assert.False(t, ValidCampaignStatus("archived"))
	assert.False(t, ValidCampaignStatus(""))
}

func TestValidPlatform(t *testing.T) {
	for _, platform := range []string{"instagram", "tiktok", "youtube", "twitter", "facebook", "linkedin"} {
		assert.True(t, ValidPlatform(platform), platform)
	}
	assert.False(t, ValidPlatform("threads"))
	assert.False(t, ValidPlatform("Instagram"))
}

func TestValidInfluencerStatus(t *testing.T) {
	for _, status := range []string{"active", "inactive", "completed"} {
		assert.True(t, ValidInfluencerStatus(status), status)
	}
	assert.False(t, ValidInfluencerStatus("invited"))
}

// A summary-only patch must produce a single-column update.
func TestUpdateCampaignRequestSummaryOnly(t *testing.T) {
	summary := "<p>x</p>"
	req := &UpdateCampaignRequest{Summary: &summary}

	updates := req.Updates()

	assert.Equal(t, map[string]interface{}{"summary": "<p>x</p>"}, updates)
}

func TestUpdateCampaignRequestEmpty(t *testing.T) {
	req := &UpdateCampaignRequest{}

	assert.Empty(t, req.Updates())
}

func TestUpdateBrandRequestSuppliedFields(t *testing.T) {
	name := "Acme"
	industry := ""
	req := &UpdateBrandRequest{Name: &name, Industry: &industry}

	updates := req.Updates()

	// An explicitly supplied empty string still counts as a patch field.
	assert.Equal(t, map[string]interface{}{"name": "Acme", "industry": ""}, updates)
}

func TestUpdateCampaignInfluencerRequestClampsCounters(t *testing.T) {
	likes := -3
	views := 100
	req := &UpdateCampaignInfluencerRequest{ID: "i1", Likes: &likes, Views: &views}

	updates := req.Updates()

	assert.Equal(t, 0, updates["likes"])
	assert.Equal(t, 100, updates["views"])
	assert.NotContains(t, updates, "comments")
}
