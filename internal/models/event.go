package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Event maps one row of the events table. The time window is stored as
// minutes since midnight so overlap checks are integer comparisons.
type Event struct {
	EventID     string          `db:"event_id"`
	ClientID    string          `db:"client_id"`
	Title       string          `db:"title"`
	EventDate   time.Time       `db:"event_date"`
	StartMinute int             `db:"start_minute"`
	EndMinute   int             `db:"end_minute"`
	GuestCount  int             `db:"guest_count"`
	PackageType string          `db:"package_type"`
	TotalValue  decimal.Decimal `db:"total_value"`
	Status      string          `db:"status"`
	Notes       string          `db:"notes"`
	AuditFields
}
