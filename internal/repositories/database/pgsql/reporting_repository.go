package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/buffetjuniors/buffet_management_app/internal/core/domain"
	portsrepo "github.com/buffetjuniors/buffet_management_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// reportingRepository implements the reporting aggregate queries
type reportingRepository struct {
	BaseRepository
}

func newReportingRepository(db *pgxpool.Pool) portsrepo.ReportingRepositoryFacade {
	return &reportingRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

// Ensure reportingRepository implements portsrepo.ReportingRepositoryFacade
var _ portsrepo.ReportingRepositoryFacade = (*reportingRepository)(nil)

// GetDashboardSummary aggregates the month containing now plus the
// short-horizon outlook used on the dashboard page.
func (r *reportingRepository) GetDashboardSummary(ctx context.Context, now time.Time) (*domain.DashboardSummary, error) {
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, 0)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	weekEnd := today.AddDate(0, 0, 7)

	summary := &domain.DashboardSummary{
		EventsByStatus: map[domain.EventStatus]int{},
	}

	ledgerQuery := `
		SELECT
			COALESCE(SUM(CASE WHEN entry_type = 'income' THEN amount ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN entry_type = 'expense' THEN amount ELSE 0 END), 0)
		FROM cash_flow_entries
		WHERE transaction_date >= $1 AND transaction_date < $2;
	`
	if err := r.Pool.QueryRow(ctx, ledgerQuery, monthStart, monthEnd).Scan(&summary.MonthIncome, &summary.MonthExpenses); err != nil {
		return nil, fmt.Errorf("error querying month ledger totals: %w", err)
	}
	summary.MonthNet = summary.MonthIncome.Sub(summary.MonthExpenses)

	statusQuery := `
		SELECT status, COUNT(*)
		FROM events
		WHERE event_date >= $1 AND event_date < $2
		GROUP BY status;
	`
	rows, err := r.Pool.Query(ctx, statusQuery, monthStart, monthEnd)
	if err != nil {
		return nil, fmt.Errorf("error querying event status counts: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("error scanning event status row: %w", err)
		}
		summary.EventsByStatus[domain.EventStatus(status)] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating event status rows: %w", err)
	}

	upcomingQuery := `
		SELECT COUNT(*)
		FROM events
		WHERE event_date >= $1 AND event_date < $2 AND status != 'cancelled';
	`
	if err := r.Pool.QueryRow(ctx, upcomingQuery, today, weekEnd).Scan(&summary.UpcomingEvents); err != nil {
		return nil, fmt.Errorf("error querying upcoming event count: %w", err)
	}

	outstandingQuery := `
		SELECT
			COALESCE(SUM(CASE WHEN status = 'pending' THEN amount ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN status = 'overdue' THEN amount ELSE 0 END), 0)
		FROM payments;
	`
	if err := r.Pool.QueryRow(ctx, outstandingQuery).Scan(&summary.PendingPayments, &summary.OverduePayments); err != nil {
		return nil, fmt.Errorf("error querying outstanding payment totals: %w", err)
	}

	return summary, nil
}

// GetMonthlyReport returns income/expense/net per month of the given year.
// Months without entries come back as zero rows.
func (r *reportingRepository) GetMonthlyReport(ctx context.Context, year int) ([]domain.MonthlyReportRow, error) {
	query := `
		SELECT
			EXTRACT(MONTH FROM transaction_date)::int AS month,
			COALESCE(SUM(CASE WHEN entry_type = 'income' THEN amount ELSE 0 END), 0) AS income,
			COALESCE(SUM(CASE WHEN entry_type = 'expense' THEN amount ELSE 0 END), 0) AS expenses
		FROM cash_flow_entries
		WHERE transaction_date >= $1 AND transaction_date < $2
		GROUP BY 1
		ORDER BY 1;
	`
	yearStart := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	yearEnd := yearStart.AddDate(1, 0, 0)

	rows, err := r.Pool.Query(ctx, query, yearStart, yearEnd)
	if err != nil {
		return nil, fmt.Errorf("error querying monthly report for %d: %w", year, err)
	}
	defer rows.Close()

	result := make([]domain.MonthlyReportRow, 12)
	for i := range result {
		result[i] = domain.MonthlyReportRow{
			Month:    i + 1,
			Income:   decimal.Zero,
			Expenses: decimal.Zero,
			Net:      decimal.Zero,
		}
	}

	for rows.Next() {
		var month int
		var income, expenses decimal.Decimal
		if err := rows.Scan(&month, &income, &expenses); err != nil {
			return nil, fmt.Errorf("error scanning monthly report row: %w", err)
		}
		if month < 1 || month > 12 {
			continue
		}
		result[month-1].Income = income
		result[month-1].Expenses = expenses
		result[month-1].Net = income.Sub(expenses)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating monthly report rows: %w", err)
	}

	return result, nil
}
