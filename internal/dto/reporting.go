package dto

import (
	"github.com/buffetjuniors/buffet_management_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// MonthlyReportParams selects the year of the monthly report.
type MonthlyReportParams struct {
	Year int `form:"year" binding:"required,min=2000,max=2100"`
}

// DashboardResponse carries the aggregates behind the dashboard page.
type DashboardResponse struct {
	MonthIncome     decimal.Decimal            `json:"monthIncome"`
	MonthExpenses   decimal.Decimal            `json:"monthExpenses"`
	MonthNet        decimal.Decimal            `json:"monthNet"`
	EventsByStatus  map[domain.EventStatus]int `json:"eventsByStatus"`
	UpcomingEvents  int                        `json:"upcomingEvents"`
	PendingPayments decimal.Decimal            `json:"pendingPayments"`
	OverduePayments decimal.Decimal            `json:"overduePayments"`
}

// MonthlyReportRowResponse is one month of the yearly report.
type MonthlyReportRowResponse struct {
	Month    int             `json:"month"`
	Income   decimal.Decimal `json:"income"`
	Expenses decimal.Decimal `json:"expenses"`
	Net      decimal.Decimal `json:"net"`
}

// MonthlyReportResponse wraps the twelve rows of one year.
type MonthlyReportResponse struct {
	Year   int                        `json:"year"`
	Months []MonthlyReportRowResponse `json:"months"`
}

// ToDashboardResponse converts a domain.DashboardSummary to its DTO
func ToDashboardResponse(s *domain.DashboardSummary) DashboardResponse {
	return DashboardResponse{
		MonthIncome:     s.MonthIncome,
		MonthExpenses:   s.MonthExpenses,
		MonthNet:        s.MonthNet,
		EventsByStatus:  s.EventsByStatus,
		UpcomingEvents:  s.UpcomingEvents,
		PendingPayments: s.PendingPayments,
		OverduePayments: s.OverduePayments,
	}
}

// ToMonthlyReportResponse converts the yearly rows to their DTO
func ToMonthlyReportResponse(year int, rows []domain.MonthlyReportRow) MonthlyReportResponse {
	months := make([]MonthlyReportRowResponse, len(rows))
	for i, r := range rows {
		months[i] = MonthlyReportRowResponse{
			Month:    r.Month,
			Income:   r.Income,
			Expenses: r.Expenses,
			Net:      r.Net,
		}
	}
	return MonthlyReportResponse{Year: year, Months: months}
}
