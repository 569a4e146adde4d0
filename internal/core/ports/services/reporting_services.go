package services

import (
	"context"

	"github.com/buffetjuniors/buffet_management_app/internal/core/domain"
)

// ReportingSvcFacade defines operations for the dashboard and yearly reports
type ReportingSvcFacade interface {
	// GetDashboard returns the current month's aggregates. Results are served
	// from a short-lived in-process cache.
	GetDashboard(ctx context.Context) (*domain.DashboardSummary, error)

	// GetMonthlyReport returns one row per month of the given year.
	GetMonthlyReport(ctx context.Context, year int) ([]domain.MonthlyReportRow, error)
}
