package models

// FetchPostMetricsRequest carries the post URL forwarded to the external
// metrics webhook.
type FetchPostMetricsRequest struct {
	PostURL string `json:"postUrl" example:"https://www.instagram.com/p/Cx1yz/"`
}

// PostMetrics is the normalized shape of the webhook's ad hoc response.
// Missing numeric fields default to 0, missing strings to "".
type PostMetrics struct {
	Likes    int    `json:"likes"`
	Comments int    `json:"comments"`
	Views    int    `json:"views"`
	Name     string `json:"name"`
	Username string `json:"username"`
}
