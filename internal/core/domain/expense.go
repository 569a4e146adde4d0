package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExpenseCategory groups operational costs for reporting.
type ExpenseCategory string

const (
	ExpenseSupplies    ExpenseCategory = "supplies"
	ExpenseStaff       ExpenseCategory = "staff"
	ExpenseMaintenance ExpenseCategory = "maintenance"
	ExpenseMarketing   ExpenseCategory = "marketing"
	ExpenseOther       ExpenseCategory = "other"
)

// Expense represents a standalone operational cost of running the buffet.
// Every expense is mirrored by one expense-type cash flow entry.
type Expense struct {
	ExpenseID   string          `json:"expenseID"` // Primary Key (UUID)
	Description string          `json:"description"`
	Category    ExpenseCategory `json:"category"`
	Amount      decimal.Decimal `json:"amount"` // Positive value
	ExpenseDate time.Time       `json:"expenseDate"`
	Notes       string          `json:"notes"`
	AuditFields
}
