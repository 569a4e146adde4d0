package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense maps one row of the expenses table.
type Expense struct {
	ExpenseID   string          `db:"expense_id"`
	Description string          `db:"description"`
	Category    string          `db:"category"`
	Amount      decimal.Decimal `db:"amount"`
	ExpenseDate time.Time       `db:"expense_date"`
	Notes       string          `db:"notes"`
	AuditFields
}
