package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CashFlowEntry maps one row of the cash_flow_entries table.
type CashFlowEntry struct {
	EntryID         string          `db:"entry_id"`
	EntryType       string          `db:"entry_type"`
	Amount          decimal.Decimal `db:"amount"`
	Description     string          `db:"description"`
	TransactionDate time.Time       `db:"transaction_date"`
	PaymentID       *string         `db:"payment_id"`
	ExpenseID       *string         `db:"expense_id"`
	AuditFields
}
