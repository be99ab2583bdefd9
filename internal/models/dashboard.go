package models

// DashboardStats aggregates the top-level numbers shown on the dashboard.
// AverageROI is best-effort: ROIAvailable is false when the analytics table
// is absent or holds no rows, which distinguishes "no data" from a computed
// zero ROI.
type DashboardStats struct {
	TotalBrands        int64   `json:"total_brands"`
	TotalCampaigns     int64   `json:"total_campaigns"`
	ActiveCampaigns    int64   `json:"active_campaigns"`
	CompletedCampaigns int64   `json:"completed_campaigns"`
	TotalBudget        float64 `json:"total_budget"`
	AverageROI         float64 `json:"average_roi"`
	ROIAvailable       bool    `json:"roi_available"`
}
