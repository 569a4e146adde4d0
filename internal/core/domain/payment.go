package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus indicates the collection state of a payment.
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
	PaymentOverdue PaymentStatus = "overdue"
)

// PaymentMethod identifies how a payment is settled.
type PaymentMethod string

const (
	MethodPix        PaymentMethod = "pix"
	MethodCash       PaymentMethod = "cash"
	MethodCreditCard PaymentMethod = "credit_card"
	MethodDebitCard  PaymentMethod = "debit_card"
	MethodTransfer   PaymentMethod = "transfer"
)

// Payment represents an installment owed for an event.
// A payment in status paid always has a PaidDate and exactly one income
// cash flow entry referencing it.
type Payment struct {
	PaymentID string          `json:"paymentID"` // Primary Key (UUID)
	EventID   string          `json:"eventID"`   // FK -> Event.eventID (Not Null)
	Amount    decimal.Decimal `json:"amount"`    // Positive value
	Method    PaymentMethod   `json:"method"`
	Status    PaymentStatus   `json:"status"` // Default: pending
	DueDate   time.Time       `json:"dueDate"`
	PaidDate  *time.Time      `json:"paidDate,omitempty"` // Set when Status is paid
	Notes     string          `json:"notes"`
	AuditFields
}
