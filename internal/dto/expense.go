package dto

import (
	"time"

	"github.com/buffetjuniors/buffet_management_app/internal/core/domain"
	"github.com/buffetjuniors/buffet_management_app/internal/utils"
	"github.com/shopspring/decimal"
)

// CreateExpenseRequest defines the data needed to record an operational cost.
type CreateExpenseRequest struct {
	Description string                 `json:"description" binding:"required"`
	Category    domain.ExpenseCategory `json:"category" binding:"required,oneof=supplies staff maintenance marketing other"`
	Amount      decimal.Decimal        `json:"amount" binding:"required"`
	ExpenseDate string                 `json:"expenseDate" binding:"required,datetime=2006-01-02"`
	Notes       string                 `json:"notes"`
}

// UpdateExpenseRequest defines the data allowed for updating an expense.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateExpenseRequest struct {
	Description *string                 `json:"description"`
	Category    *domain.ExpenseCategory `json:"category" binding:"omitempty,oneof=supplies staff maintenance marketing other"`
	Amount      *decimal.Decimal        `json:"amount"`
	ExpenseDate *string                 `json:"expenseDate" binding:"omitempty,datetime=2006-01-02"`
	Notes       *string                 `json:"notes"`
}

// ListExpensesParams defines query parameters for listing expenses.
type ListExpensesParams struct {
	Category string `form:"category" binding:"omitempty,oneof=supplies staff maintenance marketing other"`
	DateFrom string `form:"dateFrom" binding:"omitempty,datetime=2006-01-02"`
	DateTo   string `form:"dateTo" binding:"omitempty,datetime=2006-01-02"`
	Search   string `form:"search"`
	PageParams
}

// ExpenseResponse defines the data returned for an expense.
type ExpenseResponse struct {
	ExpenseID   string                 `json:"expenseID"`
	Description string                 `json:"description"`
	Category    domain.ExpenseCategory `json:"category"`
	Amount      decimal.Decimal        `json:"amount"`
	ExpenseDate string                 `json:"expenseDate"` // YYYY-MM-DD
	Notes       string                 `json:"notes"`
	CreatedAt   time.Time              `json:"createdAt"`
}

// ListExpensesResponse wraps one page of expenses.
type ListExpensesResponse struct {
	Data []ExpenseResponse `json:"data"`
	Pagination
}

// ToExpenseResponse converts a domain.Expense to ExpenseResponse DTO
func ToExpenseResponse(expense *domain.Expense) ExpenseResponse {
	return ExpenseResponse{
		ExpenseID:   expense.ExpenseID,
		Description: expense.Description,
		Category:    expense.Category,
		Amount:      expense.Amount,
		ExpenseDate: utils.FormatDateOnly(expense.ExpenseDate),
		Notes:       expense.Notes,
		CreatedAt:   expense.CreatedAt,
	}
}

// ToListExpensesResponse converts a page of domain expenses to ListExpensesResponse DTO
func ToListExpensesResponse(expenses []domain.Expense, p Pagination) ListExpensesResponse {
	data := make([]ExpenseResponse, len(expenses))
	for i, e := range expenses {
		data[i] = ToExpenseResponse(&e)
	}
	return ListExpensesResponse{Data: data, Pagination: p}
}
