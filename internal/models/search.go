package models

// Search result types
const (
	SearchTypeCampaign   = "campaign"
	SearchTypeBrand      = "brand"
	SearchTypeInfluencer = "influencer"
)

// SearchResult is the uniform shape returned for any matching entity.
type SearchResult struct {
	ID       string `json:"id"`
	Type     string `json:"type" example:"campaign"`
	Title    string `json:"title" example:"Summer Collection Launch"`
	Subtitle string `json:"subtitle" example:"Acme"`
	URL      string `json:"url" example:"/campaigns/550e8400-e29b-41d4-a716-446655440000"`
}
