package repositories

import (
	"context"
	"time"

	"github.com/buffetjuniors/buffet_management_app/internal/core/domain"
)

// ReportingRepositoryFacade defines the aggregate queries behind the
// dashboard and the monthly report.
type ReportingRepositoryFacade interface {
	// GetDashboardSummary aggregates the month containing now: ledger totals,
	// event counts by status, upcoming events within 7 days of now, and
	// outstanding payment totals.
	GetDashboardSummary(ctx context.Context, now time.Time) (*domain.DashboardSummary, error)

	// GetMonthlyReport returns one row per month of the given year with
	// income, expense and net totals.
	GetMonthlyReport(ctx context.Context, year int) ([]domain.MonthlyReportRow, error)
}
