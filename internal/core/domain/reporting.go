package domain

import (
	"github.com/shopspring/decimal"
)

// DashboardSummary aggregates the current month's activity for the dashboard.
type DashboardSummary struct {
	MonthIncome     decimal.Decimal     `json:"monthIncome"`
	MonthExpenses   decimal.Decimal     `json:"monthExpenses"`
	MonthNet        decimal.Decimal     `json:"monthNet"`
	EventsByStatus  map[EventStatus]int `json:"eventsByStatus"` // Counts for the current month
	UpcomingEvents  int                 `json:"upcomingEvents"` // Non-cancelled events in the next 7 days
	PendingPayments decimal.Decimal     `json:"pendingPayments"`
	OverduePayments decimal.Decimal     `json:"overduePayments"`
}

// MonthlyReportRow represents one month of a yearly income/expense report.
type MonthlyReportRow struct {
	Month    int             `json:"month"` // 1..12
	Income   decimal.Decimal `json:"income"`
	Expenses decimal.Decimal `json:"expenses"`
	Net      decimal.Decimal `json:"net"`
}
