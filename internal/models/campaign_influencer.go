package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Influencer platforms
const (
	PlatformInstagram = "instagram"
	PlatformTikTok    = "tiktok"
	PlatformYouTube   = "youtube"
	PlatformTwitter   = "twitter"
	PlatformFacebook  = "facebook"
	PlatformLinkedIn  = "linkedin"
)

// Influencer statuses
const (
	InfluencerStatusActive    = "active"
	InfluencerStatusInactive  = "inactive"
	InfluencerStatusCompleted = "completed"
)

// ValidPlatform reports whether p is one of the supported social platforms.
func ValidPlatform(p string) bool {
	switch p {
	case PlatformInstagram, PlatformTikTok, PlatformYouTube, PlatformTwitter, PlatformFacebook, PlatformLinkedIn:
		return true
	}
	return false
}

// ValidInfluencerStatus reports whether s is one of the allowed participation statuses.
func ValidInfluencerStatus(s string) bool {
	switch s {
	case InfluencerStatusActive, InfluencerStatusInactive, InfluencerStatusCompleted:
		return true
	}
	return false
}

// CampaignInfluencer captures one influencer's participation in a campaign:
// identity, platform and the engagement counters accumulated for their post.
// The campaign_id is always injected from the route context, never trusted
// from the request body.
type CampaignInfluencer struct {
	ID             string    `json:"id" gorm:"primaryKey;type:uuid"`
	CampaignID     string    `json:"campaign_id" gorm:"not null;index;type:uuid"`
	Name           string    `json:"name" gorm:"type:varchar(255)" example:"Sarah Johnson"`
	Platform       string    `json:"platform" gorm:"type:varchar(20);index" example:"instagram"`
	Username       string    `json:"username" gorm:"type:varchar(255)" example:"sarahjstyle"`
	ContentType    string    `json:"content_type,omitempty" gorm:"type:varchar(100)" example:"reel"`
	PostURL        string    `json:"post_url,omitempty" gorm:"type:text"`
	Likes          int       `json:"likes" gorm:"default:0"`
	Comments       int       `json:"comments" gorm:"default:0"`
	Shares         int       `json:"shares" gorm:"default:0"`
	Views          int       `json:"views" gorm:"default:0"`
	FollowersCount int       `json:"followers_count" gorm:"default:0"`
	Status         string    `json:"status" gorm:"type:varchar(20);index;default:'active'" example:"active"`
	Notes          string    `json:"notes,omitempty" gorm:"type:text"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// TableName specifies the table name for the CampaignInfluencer model
func (CampaignInfluencer) TableName() string {
	return "campaign_influencers"
}

// BeforeCreate assigns a server-generated ID
func (ci *CampaignInfluencer) BeforeCreate(tx *gorm.DB) error {
	if ci.ID == "" {
		ci.ID = uuid.NewString()
	}
	return nil
}

// CreateCampaignInfluencerRequest represents the request to add an influencer
// row to a campaign. Engagement counters default to 0 when absent.
type CreateCampaignInfluencerRequest struct {
	Name           string `json:"name" binding:"required" example:"Sarah Johnson"`
	Platform       string `json:"platform" example:"instagram"`
	Username       string `json:"username" example:"sarahjstyle"`
	ContentType    string `json:"content_type"`
	PostURL        string `json:"post_url"`
	Likes          int    `json:"likes"`
	Comments       int    `json:"comments"`
	Shares         int    `json:"shares"`
	Views          int    `json:"views"`
	FollowersCount int    `json:"followers_count"`
	Status         string `json:"status" example:"active"`
	Notes          string `json:"notes"`
}

// UpdateCampaignInfluencerRequest represents a partial update to an influencer
// row. The target row ID travels in the body, matching the campaign-scoped
// PUT route.
type UpdateCampaignInfluencerRequest struct {
	ID             string  `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Name           *string `json:"name,omitempty"`
	Platform       *string `json:"platform,omitempty"`
	Username       *string `json:"username,omitempty"`
	ContentType    *string `json:"content_type,omitempty"`
	PostURL        *string `json:"post_url,omitempty"`
	Likes          *int    `json:"likes,omitempty"`
	Comments       *int    `json:"comments,omitempty"`
	Shares         *int    `json:"shares,omitempty"`
	Views          *int    `json:"views,omitempty"`
	FollowersCount *int    `json:"followers_count,omitempty"`
	Status         *string `json:"status,omitempty"`
	Notes          *string `json:"notes,omitempty"`
}

// Updates returns the supplied fields keyed by column name. Counter fields
// are clamped to zero, never negative.
func (r *UpdateCampaignInfluencerRequest) Updates() map[string]interface{} {
	updates := map[string]interface{}{}
	if r.Name != nil {
		updates["name"] = *r.Name
	}
	if r.Platform != nil {
		updates["platform"] = *r.Platform
	}
	if r.Username != nil {
		updates["username"] = *r.Username
	}
	if r.ContentType != nil {
		updates["content_type"] = *r.ContentType
	}
	if r.PostURL != nil {
		updates["post_url"] = *r.PostURL
	}
	if r.Likes != nil {
		updates["likes"] = clampNonNegative(*r.Likes)
	}
	if r.Comments != nil {
		updates["comments"] = clampNonNegative(*r.Comments)
	}
	if r.Shares != nil {
		updates["shares"] = clampNonNegative(*r.Shares)
	}
	if r.Views != nil {
		updates["views"] = clampNonNegative(*r.Views)
	}
	if r.FollowersCount != nil {
		updates["followers_count"] = clampNonNegative(*r.FollowersCount)
	}
	if r.Status != nil {
		updates["status"] = *r.Status
	}
	if r.Notes != nil {
		updates["notes"] = *r.Notes
	}
	return updates
}

func clampNonNegative(v int) int {
	if v < 0 {
		return 0
	}
	return v
}
