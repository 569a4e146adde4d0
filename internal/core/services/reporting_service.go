package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/buffetjuniors/buffet_management_app/internal/core/domain"
	portsrepo "github.com/buffetjuniors/buffet_management_app/internal/core/ports/repositories"
	portssvc "github.com/buffetjuniors/buffet_management_app/internal/core/ports/services"
)

const dashboardCacheKey = "dashboard"

// reportingService serves the dashboard and yearly report. Both aggregate
// over the whole ledger, so results are held in short-lived TTL caches
// rather than recomputed on every page load.
type reportingService struct {
	BaseService
	reportingRepo  portsrepo.ReportingRepositoryFacade
	dashboardCache *expirable.LRU[string, *domain.DashboardSummary]
	monthlyCache   *expirable.LRU[int, []domain.MonthlyReportRow]
}

// NewReportingService creates a new reporting service whose cached results
// live for cacheTTL.
func NewReportingService(reportingRepo portsrepo.ReportingRepositoryFacade, cacheTTL time.Duration) portssvc.ReportingSvcFacade {
	if cacheTTL <= 0 {
		cacheTTL = time.Minute
	}
	return &reportingService{
		reportingRepo:  reportingRepo,
		dashboardCache: expirable.NewLRU[string, *domain.DashboardSummary](1, nil, cacheTTL),
		monthlyCache:   expirable.NewLRU[int, []domain.MonthlyReportRow](8, nil, cacheTTL),
	}
}

// Ensure reportingService implements the portssvc.ReportingSvcFacade interface
var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// GetDashboard returns the current month's aggregates.
func (s *reportingService) GetDashboard(ctx context.Context) (*domain.DashboardSummary, error) {
	if cached, ok := s.dashboardCache.Get(dashboardCacheKey); ok {
		return cached, nil
	}

	summary, err := s.reportingRepo.GetDashboardSummary(ctx, time.Now().UTC())
	if err != nil {
		s.LogError(ctx, err, "Failed to build dashboard summary")
		return nil, fmt.Errorf("failed to build dashboard summary: %w", err)
	}

	s.dashboardCache.Add(dashboardCacheKey, summary)
	return summary, nil
}

// GetMonthlyReport returns one row per month of the given year.
func (s *reportingService) GetMonthlyReport(ctx context.Context, year int) ([]domain.MonthlyReportRow, error) {
	if cached, ok := s.monthlyCache.Get(year); ok {
		return cached, nil
	}

	rows, err := s.reportingRepo.GetMonthlyReport(ctx, year)
	if err != nil {
		s.LogError(ctx, err, "Failed to build monthly report", slog.Int("year", year))
		return nil, fmt.Errorf("failed to build monthly report: %w", err)
	}

	s.monthlyCache.Add(year, rows)
	return rows, nil
}
