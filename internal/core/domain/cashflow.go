package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryType indicates the direction of a cash flow entry.
type EntryType string

const (
	EntryIncome  EntryType = "income"
	EntryExpense EntryType = "expense"
)

// CashFlowEntry represents one ledger row. Entries created from payments or
// expenses carry the source id; manual entries carry neither.
type CashFlowEntry struct {
	EntryID         string          `json:"entryID"` // Primary Key (UUID)
	EntryType       EntryType       `json:"entryType"`
	Amount          decimal.Decimal `json:"amount"` // Positive value
	Description     string          `json:"description"`
	TransactionDate time.Time       `json:"transactionDate"`
	PaymentID       *string         `json:"paymentID,omitempty"` // Nullable FK -> Payment.paymentID
	ExpenseID       *string         `json:"expenseID,omitempty"` // Nullable FK -> Expense.expenseID
	AuditFields
}

// IsManual reports whether the entry was recorded by hand rather than
// derived from a payment or expense.
func (c CashFlowEntry) IsManual() bool {
	return c.PaymentID == nil && c.ExpenseID == nil
}

// CashFlowSummary totals the ledger over a date range.
type CashFlowSummary struct {
	TotalIncome  decimal.Decimal `json:"totalIncome"`
	TotalExpense decimal.Decimal `json:"totalExpense"`
	Net          decimal.Decimal `json:"net"`
}
