package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Campaign statuses
const (
	CampaignStatusDraft     = "draft"
	CampaignStatusActive    = "active"
	CampaignStatusCompleted = "completed"
	CampaignStatusPaused    = "paused"
)

// ValidCampaignStatus reports whether s is one of the allowed campaign statuses.
func ValidCampaignStatus(s string) bool {
	switch s {
	case CampaignStatusDraft, CampaignStatusActive, CampaignStatusCompleted, CampaignStatusPaused:
		return true
	}
	return false
}

// Campaign represents a time-boxed marketing effort owned by a brand.
// Reads always embed the owning brand; the embed is read-only and is
// reconstructed on fetch, never written from client payloads.
type Campaign struct {
	ID             string     `json:"id" gorm:"primaryKey;type:uuid"`
	BrandID        *string    `json:"brand_id" gorm:"type:uuid;index"`
	Name           string     `json:"name" gorm:"type:varchar(255);not null" example:"Summer Collection Launch"`
	Description    string     `json:"description,omitempty" gorm:"type:text"`
	Summary        string     `json:"summary,omitempty" gorm:"type:text"` // rich-text HTML
	StartDate      *time.Time `json:"start_date" gorm:"index"`
	EndDate        *time.Time `json:"end_date" gorm:"index"`
	Status         string     `json:"status" gorm:"type:varchar(20);index;default:'draft'" example:"active"`
	Budget         *float64   `json:"budget,omitempty"`
	TargetAudience string     `json:"target_audience,omitempty" gorm:"type:text"`
	Goals          string     `json:"goals,omitempty" gorm:"type:text"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`

	// Relationships
	Brand *Brand `json:"brand,omitempty" gorm:"foreignKey:BrandID;references:ID"`
}

// TableName specifies the table name for the Campaign model
func (Campaign) TableName() string {
	return "campaigns"
}

// BeforeCreate assigns a server-generated ID
func (c *Campaign) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// CreateCampaignRequest represents the request to create a new campaign
type CreateCampaignRequest struct {
	Name           string     `json:"name" binding:"required" example:"Summer Collection Launch"`
	BrandID        *string    `json:"brand_id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Description    string     `json:"description"`
	Summary        string     `json:"summary"`
	StartDate      *time.Time `json:"start_date"`
	EndDate        *time.Time `json:"end_date"`
	Status         string     `json:"status" example:"draft"`
	Budget         *float64   `json:"budget" example:"50000"`
	TargetAudience string     `json:"target_audience"`
	Goals          string     `json:"goals"`
}

// UpdateCampaignRequest represents a partial update to a campaign.
// Summary-only updates are the common case from the detail view editor.
type UpdateCampaignRequest struct {
	Name           *string    `json:"name,omitempty"`
	BrandID        *string    `json:"brand_id,omitempty"`
	Description    *string    `json:"description,omitempty"`
	Summary        *string    `json:"summary,omitempty"`
	StartDate      *time.Time `json:"start_date,omitempty"`
	EndDate        *time.Time `json:"end_date,omitempty"`
	Status         *string    `json:"status,omitempty"`
	Budget         *float64   `json:"budget,omitempty"`
	TargetAudience *string    `json:"target_audience,omitempty"`
	Goals          *string    `json:"goals,omitempty"`
}

// Updates returns the supplied fields keyed by column name.
func (r *UpdateCampaignRequest) Updates() map[string]interface{} {
	updates := map[string]interface{}{}
	if r.Name != nil {
		updates["name"] = *r.Name
	}
	if r.BrandID != nil {
		updates["brand_id"] = *r.BrandID
	}
	if r.Description != nil {
		updates["description"] = *r.Description
	}
	if r.Summary != nil {
		updates["summary"] = *r.Summary
	}
	if r.StartDate != nil {
		updates["start_date"] = *r.StartDate
	}
	if r.EndDate != nil {
		updates["end_date"] = *r.EndDate
	}
	if r.Status != nil {
		updates["status"] = *r.Status
	}
	if r.Budget != nil {
		updates["budget"] = *r.Budget
	}
	if r.TargetAudience != nil {
		updates["target_audience"] = *r.TargetAudience
	}
	if r.Goals != nil {
		updates["goals"] = *r.Goals
	}
	return updates
}

// CampaignStatsResponse carries the per-campaign engagement totals computed
// over the campaign's influencer rows.
type CampaignStatsResponse struct {
	CampaignID      string `json:"campaign_id"`
	InfluencerCount int    `json:"influencer_count"`
	TotalEngagement int    `json:"total_engagement"`
	TotalReach      int    `json:"total_reach"`
}
