package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/the88gb/influencer-dashboard-backend/internal/models"
)

func TestEngagementTotal(t *testing.T) {
	rows := []*models.CampaignInfluencer{
		{Likes: 1240, Comments: 89, Shares: 23, Views: 5600},
		{Likes: 890, Comments: 45, Shares: 12, Views: 3200},
	}

	assert.Equal(t, 2299, EngagementTotal(rows))
	assert.Equal(t, 8800, ReachTotal(rows))
}

// The reduction must match a direct iteration regardless of row order.
func TestEngagementTotalOrderIndependent(t *testing.T) {
	rows := []*models.CampaignInfluencer{
		{Likes: 10, Comments: 2, Shares: 1},
		{Likes: 5, Comments: 0, Shares: 7},
		{Likes: 0, Comments: 3, Shares: 0},
	}
	reversed := []*models.CampaignInfluencer{rows[2], rows[1], rows[0]}

	direct := 0
	for _, row := range rows {
		direct += row.Likes + row.Comments + row.Shares
	}

	assert.Equal(t, direct, EngagementTotal(rows))
	assert.Equal(t, direct, EngagementTotal(reversed))
}

func TestEngagementTotalEmpty(t *testing.T) {
	assert.Equal(t, 0, EngagementTotal(nil))
	assert.Equal(t, 0, ReachTotal(nil))
}

func TestCountByKey(t *testing.T) {
	counts := CountByKey([]string{"b1", "b2", "b1", "b1"})

	assert.Equal(t, map[string]int{"b1": 3, "b2": 1}, counts)
}

func TestCountByKeyEmpty(t *testing.T) {
	assert.Empty(t, CountByKey(nil))
}

func TestAverageROI(t *testing.T) {
	assert.InDelta(t, 150.0, averageROI([]float64{100, 200}), 1e-9)
	assert.Equal(t, 0.0, averageROI(nil))
	assert.Equal(t, 0.0, averageROI([]float64{0, 0}))
}

func TestClampNonNegative(t *testing.T) {
	assert.Equal(t, 0, clampNonNegative(-5))
	assert.Equal(t, 0, clampNonNegative(0))
	assert.Equal(t, 42, clampNonNegative(42))
}
