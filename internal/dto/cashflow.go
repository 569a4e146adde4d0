package dto

import (
	"time"

	"github.com/buffetjuniors/buffet_management_app/internal/core/domain"
	"github.com/buffetjuniors/buffet_management_app/internal/utils"
	"github.com/shopspring/decimal"
)

// CreateCashFlowEntryRequest defines a manual ledger entry. Entries derived
// from payments and expenses are created by their own endpoints.
type CreateCashFlowEntryRequest struct {
	EntryType       domain.EntryType `json:"entryType" binding:"required,oneof=income expense"`
	Amount          decimal.Decimal  `json:"amount" binding:"required"`
	Description     string           `json:"description" binding:"required"`
	TransactionDate string           `json:"transactionDate" binding:"required,datetime=2006-01-02"`
}

// ListCashFlowParams defines query parameters for listing ledger entries.
type ListCashFlowParams struct {
	EntryType string `form:"entryType" binding:"omitempty,oneof=income expense"`
	DateFrom  string `form:"dateFrom" binding:"omitempty,datetime=2006-01-02"`
	DateTo    string `form:"dateTo" binding:"omitempty,datetime=2006-01-02"`
	PageParams
}

// CashFlowSummaryParams bounds the summary totals; both sides are optional.
type CashFlowSummaryParams struct {
	From string `form:"from" binding:"omitempty,datetime=2006-01-02"`
	To   string `form:"to" binding:"omitempty,datetime=2006-01-02"`
}

// CashFlowEntryResponse defines the data returned for a ledger entry.
type CashFlowEntryResponse struct {
	EntryID         string           `json:"entryID"`
	EntryType       domain.EntryType `json:"entryType"`
	Amount          decimal.Decimal  `json:"amount"`
	Description     string           `json:"description"`
	TransactionDate string           `json:"transactionDate"` // YYYY-MM-DD
	PaymentID       *string          `json:"paymentID,omitempty"`
	ExpenseID       *string          `json:"expenseID,omitempty"`
	CreatedAt       time.Time        `json:"createdAt"`
}

// CashFlowSummaryResponse totals the ledger over the requested range.
type CashFlowSummaryResponse struct {
	TotalIncome  decimal.Decimal `json:"totalIncome"`
	TotalExpense decimal.Decimal `json:"totalExpense"`
	Net          decimal.Decimal `json:"net"`
}

// ListCashFlowResponse wraps one page of ledger entries.
type ListCashFlowResponse struct {
	Data []CashFlowEntryResponse `json:"data"`
	Pagination
}

// ToCashFlowEntryResponse converts a domain.CashFlowEntry to its DTO
func ToCashFlowEntryResponse(entry *domain.CashFlowEntry) CashFlowEntryResponse {
	return CashFlowEntryResponse{
		EntryID:         entry.EntryID,
		EntryType:       entry.EntryType,
		Amount:          entry.Amount,
		Description:     entry.Description,
		TransactionDate: utils.FormatDateOnly(entry.TransactionDate),
		PaymentID:       entry.PaymentID,
		ExpenseID:       entry.ExpenseID,
		CreatedAt:       entry.CreatedAt,
	}
}

// ToCashFlowSummaryResponse converts a domain.CashFlowSummary to its DTO
func ToCashFlowSummaryResponse(s *domain.CashFlowSummary) CashFlowSummaryResponse {
	return CashFlowSummaryResponse{
		TotalIncome:  s.TotalIncome,
		TotalExpense: s.TotalExpense,
		Net:          s.Net,
	}
}

// ToListCashFlowResponse converts a page of domain entries to ListCashFlowResponse DTO
func ToListCashFlowResponse(entries []domain.CashFlowEntry, p Pagination) ListCashFlowResponse {
	data := make([]CashFlowEntryResponse, len(entries))
	for i, e := range entries {
		data[i] = ToCashFlowEntryResponse(&e)
	}
	return ListCashFlowResponse{Data: data, Pagination: p}
}
