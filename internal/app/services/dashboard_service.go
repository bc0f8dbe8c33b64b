package services

import (
	"context"
	"time"

	"github.com/mertkaya/edumanage/internal/app/models"
	"github.com/mertkaya/edumanage/internal/app/models/dto"
	"github.com/mertkaya/edumanage/internal/app/storage"
	"github.com/mertkaya/edumanage/internal/pkg/cache"
)

const dashboardCacheTTL = 30 * time.Second

// DashboardService aggregates the administrative overview. Results are
// cached briefly when a cache helper is configured.
type DashboardService struct {
	store storage.Storage
	cache *cache.Helper
}

// NewDashboardService creates a new dashboard service instance. The cache
// helper may be nil.
func NewDashboardService(store storage.Storage, cacheHelper *cache.Helper) *DashboardService {
	return &DashboardService{
		store: store,
		cache: cacheHelper,
	}
}

// GetStats collects the dashboard counters from every module.
func (s *DashboardService) GetStats(ctx context.Context) (*dto.DashboardResponse, error) {
	if s.cache != nil {
		var cached dto.DashboardResponse
		err := s.cache.GetOrFetch(ctx, "stats", &cached, dashboardCacheTTL, func() (interface{}, error) {
			return s.collectStats(ctx)
		})
		if err != nil {
			return nil, err
		}
		return &cached, nil
	}

	return s.collectStats(ctx)
}

func (s *DashboardService) collectStats(ctx context.Context) (*dto.DashboardResponse, error) {
	students, err := s.store.GetStudents(ctx)
	if err != nil {
		return nil, err
	}

	active := 0
	for _, student := range students {
		if student.Status == models.StudentActive {
			active++
		}
	}

	totalFees, err := s.store.TotalFeesCollected(ctx)
	if err != nil {
		return nil, err
	}

	occupancy, err := s.store.HostelOccupancy(ctx)
	if err != nil {
		return nil, err
	}

	booksToday, err := s.store.BooksIssuedToday(ctx)
	if err != nil {
		return nil, err
	}

	performance, err := s.store.AverageExamPerformance(ctx)
	if err != nil {
		return nil, err
	}

	complaints, err := s.store.GetComplaints(ctx)
	if err != nil {
		return nil, err
	}
	pendingComplaints := 0
	for _, complaint := range complaints {
		if complaint.Status == models.ComplaintPending {
			pendingComplaints++
		}
	}

	return &dto.DashboardResponse{
		TotalStudents:     len(students),
		ActiveStudents:    active,
		TotalFees:         totalFees,
		HostelOccupancy:   occupancy,
		BooksIssuedToday:  booksToday,
		ExamPerformance:   performance,
		PendingComplaints: pendingComplaints,
	}, nil
}
