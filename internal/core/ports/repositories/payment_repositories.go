package repositories

import (
	"context"
	"time"

	"github.com/buffetjuniors/buffet_management_app/internal/core/domain"
)

// PaymentListFilter narrows and orders a payment listing.
type PaymentListFilter struct {
	Status  *domain.PaymentStatus
	EventID *string
	DueFrom *time.Time
	DueTo   *time.Time
	ListOptions
}

// PaymentReader defines read operations for payment data
type PaymentReader interface {
	// FindPaymentByID retrieves a specific payment by its ID.
	FindPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error)

	// ListPayments retrieves a filtered page of payments and the total match count.
	ListPayments(ctx context.Context, filter PaymentListFilter) ([]domain.Payment, int64, error)

	// ListPaymentsByEvent retrieves every payment of one event ordered by due date.
	ListPaymentsByEvent(ctx context.Context, eventID string) ([]domain.Payment, error)
}

// PaymentWriter defines write operations for payment data.
// The ledger-coupled writes run inside a single transaction so the payment
// state and its cash flow entries can never diverge.
type PaymentWriter interface {
	// SavePayment persists a new payment; when entry is non-nil (payment
	// created directly as paid) the income entry is inserted in the same
	// transaction.
	SavePayment(ctx context.Context, payment domain.Payment, entry *domain.CashFlowEntry) error

	// UpdatePayment updates a payment row. When entry is non-nil it is inserted
	// in the same transaction (transition to paid); when removeEntries is true
	// every entry referencing the payment is deleted in the same transaction
	// (transition away from paid).
	UpdatePayment(ctx context.Context, payment domain.Payment, entry *domain.CashFlowEntry, removeEntries bool) error
}

// PaymentLifecycleManager defines operations for removing payments
type PaymentLifecycleManager interface {
	// DeletePaymentWithEntries removes the payment and every cash flow entry
	// referencing it inside one transaction.
	DeletePaymentWithEntries(ctx context.Context, paymentID string) error
}

// PaymentRepositoryFacade combines all payment-related repository interfaces
type PaymentRepositoryFacade interface {
	PaymentReader
	PaymentWriter
	PaymentLifecycleManager
}
