package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment maps one row of the payments table.
type Payment struct {
	PaymentID string          `db:"payment_id"`
	EventID   string          `db:"event_id"`
	Amount    decimal.Decimal `db:"amount"`
	Method    string          `db:"method"`
	Status    string          `db:"status"`
	DueDate   time.Time       `db:"due_date"`
	PaidDate  *time.Time      `db:"paid_date"`
	Notes     string          `db:"notes"`
	AuditFields
}
