package services

import (
	"context"

	"github.com/buffetjuniors/buffet_management_app/internal/core/domain"
	"github.com/buffetjuniors/buffet_management_app/internal/dto"
)

// PaymentReaderSvc defines read operations for payment data
type PaymentReaderSvc interface {
	// GetPaymentByID retrieves a payment by ID.
	GetPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error)

	// ListPayments retrieves a filtered page of payments and the total match count.
	ListPayments(ctx context.Context, params dto.ListPaymentsParams) ([]domain.Payment, int64, error)
}

// PaymentWriterSvc defines write operations for payment data. Status
// transitions keep the cash flow ledger in sync transactionally: entering
// paid inserts one income entry, leaving paid removes the linked entries.
type PaymentWriterSvc interface {
	// CreatePayment records a new payment installment for an event.
	CreatePayment(ctx context.Context, req dto.CreatePaymentRequest, creatorUserID string) (*domain.Payment, error)

	// UpdatePayment updates an existing payment.
	UpdatePayment(ctx context.Context, paymentID string, req dto.UpdatePaymentRequest, updaterUserID string) (*domain.Payment, error)
}

// PaymentLifecycleSvc defines operations for removing payments
type PaymentLifecycleSvc interface {
	// DeletePayment removes the payment and its ledger entries in one transaction.
	DeletePayment(ctx context.Context, paymentID string, deleterUserID string) error
}

// PaymentSvcFacade combines all payment-related service interfaces
type PaymentSvcFacade interface {
	PaymentReaderSvc
	PaymentWriterSvc
	PaymentLifecycleSvc
}
