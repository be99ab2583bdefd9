package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Brand represents the commercial entity sponsoring campaigns
type Brand struct {
	ID          string    `json:"id" gorm:"primaryKey;type:uuid"`
	Name        string    `json:"name" gorm:"type:varchar(255);not null" example:"Acme"`
	Description string    `json:"description,omitempty" gorm:"type:text"`
	Website     string    `json:"website,omitempty" gorm:"type:text"`
	Industry    string    `json:"industry,omitempty" gorm:"type:varchar(100)" example:"Fashion"`
	LogoURL     string    `json:"logo_url,omitempty" gorm:"type:text"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName specifies the table name for the Brand model
func (Brand) TableName() string {
	return "brands"
}

// BeforeCreate assigns a server-generated ID
func (b *Brand) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}

// CreateBrandRequest represents the request to create a new brand
type CreateBrandRequest struct {
	Name        string `json:"name" binding:"required" example:"Acme"`
	Description string `json:"description" example:"Sportswear brand"`
	Website     string `json:"website" example:"https://acme.example.com"`
	Industry    string `json:"industry" example:"Fashion"`
	LogoURL     string `json:"logo_url"`
}

// UpdateBrandRequest represents a partial update to a brand.
// Only the fields present in the payload are persisted.
type UpdateBrandRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Website     *string `json:"website,omitempty"`
	Industry    *string `json:"industry,omitempty"`
	LogoURL     *string `json:"logo_url,omitempty"`
}

// Updates returns the supplied fields keyed by column name.
func (r *UpdateBrandRequest) Updates() map[string]interface{} {
	updates := map[string]interface{}{}
	if r.Name != nil {
		updates["name"] = *r.Name
	}
	if r.Description != nil {
		updates["description"] = *r.Description
	}
	if r.Website != nil {
		updates["website"] = *r.Website
	}
	if r.Industry != nil {
		updates["industry"] = *r.Industry
	}
	if r.LogoURL != nil {
		updates["logo_url"] = *r.LogoURL
	}
	return updates
}
