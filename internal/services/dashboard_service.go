package services

import (
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/the88gb/influencer-dashboard-backend/internal/database/repository"
	"github.com/the88gb/influencer-dashboard-backend/internal/models"
)

type DashboardService struct {
	brandRepo     *repository.BrandRepository
	campaignRepo  *repository.CampaignRepository
	analyticsRepo *repository.CampaignAnalyticsRepository
}

func NewDashboardService(
	brandRepo *repository.BrandRepository,
	campaignRepo *repository.CampaignRepository,
	analyticsRepo *repository.CampaignAnalyticsRepository,
) *DashboardService {
	return &DashboardService{
		brandRepo:     brandRepo,
		campaignRepo:  campaignRepo,
		analyticsRepo: analyticsRepo,
	}
}

// GetStats computes the dashboard aggregates. The five count/sum queries are
// issued concurrently and joined before returning; the first store error
// fails the call. The ROI average is best-effort: when the analytics table
// is absent or empty the stats come back with ROIAvailable false instead of
// an error.
func (s *DashboardService) GetStats() (*models.DashboardStats, error) {
	stats := &models.DashboardStats{}

	var (
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
		n, err := s.brandRepo.Count()
		stats.TotalBrands = n
		return err
	})
	run(func() error {
		n, err := s.campaignRepo.Count()
		stats.TotalCampaigns = n
		return err
	})
	run(func() error {
		n, err := s.campaignRepo.CountByStatus(models.CampaignStatusActive)
		stats.ActiveCampaigns = n
		return err
	})
	run(func() error {
		n, err := s.campaignRepo.CountByStatus(models.CampaignStatusCompleted)
		stats.CompletedCampaigns = n
		return err
	})
	run(func() error {
		total, err := s.campaignRepo.SumBudget()
		stats.TotalBudget = total
		return err
	})
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}

	rois, err := s.analyticsRepo.ListROI()
	if err != nil {
		// Analytics availability is optional; a missing table is not an error here.
		logrus.Warnf("Analytics unavailable for dashboard stats: %v", err)
		return stats, nil
	}
	if len(rois) > 0 {
		stats.AverageROI = averageROI(rois)
		stats.ROIAvailable = true
	}
	return stats, nil
}

// EngagementTotal sums likes, comments and shares across influencer rows.
// Pure reducer over an already-fetched collection.
func EngagementTotal(rows []*models.CampaignInfluencer) int {
	total := 0
	for _, row := range rows {
		total += row.Likes + row.Comments + row.Shares
	}
	return total
}

// ReachTotal sums views across influencer rows.
func ReachTotal(rows []*models.CampaignInfluencer) int {
	total := 0
	for _, row := range rows {
		total += row.Views
	}
	return total
}

// CountByKey groups a flat list of foreign keys into an id -> count mapping.
// Every entry contributes exactly one count to its parent's tally.
func CountByKey(ids []string) map[string]int {
	counts := map[string]int{}
	for _, id := range ids {
		counts[id]++
	}
	return counts
}

func averageROI(rois []float64) float64 {
	if len(rois) == 0 {
		return 0
	}
	sum := 0.0
	for _, roi := range rois {
		sum += roi
	}
	return sum / float64(len(rois))
}
