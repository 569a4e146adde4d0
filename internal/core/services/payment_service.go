package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/buffetjuniors/buffet_management_app/internal/apperrors"
	"github.com/buffetjuniors/buffet_management_app/internal/core/domain"
	portsrepo "github.com/buffetjuniors/buffet_management_app/internal/core/ports/repositories"
	portssvc "github.com/buffetjuniors/buffet_management_app/internal/core/ports/services"
	"github.com/buffetjuniors/buffet_management_app/internal/dto"
	"github.com/buffetjuniors/buffet_management_app/internal/utils"
)

// paymentService provides payment operations and keeps the cash flow ledger
// in lockstep with payment status: a paid payment always has exactly one
// income entry, a non-paid payment has none.
type paymentService struct {
	BaseService
	paymentRepo portsrepo.PaymentRepositoryFacade
	eventRepo   portsrepo.EventRepositoryFacade
}

// NewPaymentService creates a new payment service.
func NewPaymentService(paymentRepo portsrepo.PaymentRepositoryFacade, eventRepo portsrepo.EventRepositoryFacade) portssvc.PaymentSvcFacade {
	return &paymentService{
		paymentRepo: paymentRepo,
		eventRepo:   eventRepo,
	}
}

// Ensure paymentService implements the portssvc.PaymentSvcFacade interface
var _ portssvc.PaymentSvcFacade = (*paymentService)(nil)

// newIncomeEntry builds the ledger entry mirroring a paid payment. The entry
// is described by the event title so the ledger reads like a statement.
func newIncomeEntry(payment domain.Payment, eventTitle string, userID string, now time.Time) domain.CashFlowEntry {
	paymentID := payment.PaymentID
	paidDate := now
	if payment.PaidDate != nil {
		paidDate = *payment.PaidDate
	}
	return domain.CashFlowEntry{
		EntryID:         uuid.NewString(),
		EntryType:       domain.EntryIncome,
		Amount:          payment.Amount,
		Description:     eventTitle,
		TransactionDate: paidDate,
		PaymentID:       &paymentID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
}

// findEvent resolves the payment's event, translating a missing event into a
// validation error on the payment request.
func (s *paymentService) findEvent(ctx context.Context, eventID string) (*domain.Event, error) {
	event, err := s.eventRepo.FindEventByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: event %s does not exist", apperrors.ErrValidation, eventID)
		}
		return nil, fmt.Errorf("failed to verify event: %w", err)
	}
	return event, nil
}

// CreatePayment records a new payment installment for an event. A payment
// created directly as paid gets its income entry in the same transaction.
func (s *paymentService) CreatePayment(ctx context.Context, req dto.CreatePaymentRequest, creatorUserID string) (*domain.Payment, error) {
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}

	event, err := s.findEvent(ctx, req.EventID)
	if err != nil {
		return nil, err
	}

	dueDate, err := utils.ParseDateOnly(req.DueDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid due date: %v", apperrors.ErrValidation, err)
	}

	status := req.Status
	if status == "" {
		status = domain.PaymentPending
	}

	now := time.Now().UTC()
	payment := domain.Payment{
		PaymentID: uuid.NewString(),
		EventID:   req.EventID,
		Amount:    req.Amount,
		Method:    req.Method,
		Status:    status,
		DueDate:   dueDate,
		Notes:     req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	var entry *domain.CashFlowEntry
	if status == domain.PaymentPaid {
		if req.PaidDate == nil {
			return nil, fmt.Errorf("%w: paidDate is required when status is paid", apperrors.ErrValidation)
		}
		paidDate, err := utils.ParseDateOnly(*req.PaidDate)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid paid date: %v", apperrors.ErrValidation, err)
		}
		payment.PaidDate = &paidDate

		e := newIncomeEntry(payment, event.Title, creatorUserID, now)
		entry = &e
	}

	if err := s.paymentRepo.SavePayment(ctx, payment, entry); err != nil {
		s.LogError(ctx, err, "Failed to save new payment", slog.String("event_id", req.EventID))
		return nil, fmt.Errorf("failed to create payment: %w", err)
	}

	s.LogInfo(ctx, "Payment created",
		slog.String("payment_id", payment.PaymentID),
		slog.String("status", string(payment.Status)))
	return &payment, nil
}

// GetPaymentByID retrieves a payment by ID.
func (s *paymentService) GetPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error) {
	payment, err := s.paymentRepo.FindPaymentByID(ctx, paymentID)
	if err != nil {
		return nil, fmt.Errorf("failed to get payment by ID: %w", err)
	}
	return payment, nil
}

// ListPayments retrieves a filtered page of payments and the total match count.
func (s *paymentService) ListPayments(ctx context.Context, params dto.ListPaymentsParams) ([]domain.Payment, int64, error) {
	params.Normalize()
	filter := portsrepo.PaymentListFilter{
		ListOptions: portsrepo.ListOptions{
			Limit:     params.Limit,
			Offset:    params.Offset(),
			SortBy:    params.SortBy,
			SortOrder: portsrepo.SortOrder(params.SortOrder),
		},
	}
	if params.Status != "" {
		status := domain.PaymentStatus(params.Status)
		filter.Status = &status
	}
	if params.EventID != "" {
		eventID := params.EventID
		filter.EventID = &eventID
	}
	if params.DueFrom != "" {
		from, err := utils.ParseDateOnly(params.DueFrom)
		if err != nil {
			return nil, 0, fmt.Errorf("%w: invalid dueFrom: %v", apperrors.ErrValidation, err)
		}
		filter.DueFrom = &from
	}
	if params.DueTo != "" {
		to, err := utils.ParseDateOnly(params.DueTo)
		if err != nil {
			return nil, 0, fmt.Errorf("%w: invalid dueTo: %v", apperrors.ErrValidation, err)
		}
		filter.DueTo = &to
	}

	payments, total, err := s.paymentRepo.ListPayments(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list payments")
		return nil, 0, fmt.Errorf("failed to list payments: %w", err)
	}
	return payments, total, nil
}

// UpdatePayment updates an existing payment. Status transitions drive the
// ledger: entering paid inserts the income entry, leaving paid removes every
// entry referencing the payment, and amount or paid date edits on an already
// paid payment rewrite the entry. All of it happens in one transaction with
// the payment row.
func (s *paymentService) UpdatePayment(ctx context.Context, paymentID string, req dto.UpdatePaymentRequest, updaterUserID string) (*domain.Payment, error) {
	payment, err := s.paymentRepo.FindPaymentByID(ctx, paymentID)
	if err != nil {
		return nil, fmt.Errorf("failed to find payment for update: %w", err)
	}

	wasPaid := payment.Status == domain.PaymentPaid
	prevAmount := payment.Amount
	prevPaidDate := payment.PaidDate

	if req.Amount != nil {
		if req.Amount.LessThanOrEqual(decimal.Zero) {
			return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
		}
		payment.Amount = *req.Amount
	}
	if req.Method != nil {
		payment.Method = *req.Method
	}
	if req.Status != nil {
		payment.Status = *req.Status
	}
	if req.DueDate != nil {
		dueDate, err := utils.ParseDateOnly(*req.DueDate)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid due date: %v", apperrors.ErrValidation, err)
		}
		payment.DueDate = dueDate
	}
	if req.PaidDate != nil {
		paidDate, err := utils.ParseDateOnly(*req.PaidDate)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid paid date: %v", apperrors.ErrValidation, err)
		}
		payment.PaidDate = &paidDate
	}
	if req.Notes != nil {
		payment.Notes = *req.Notes
	}

	isPaid := payment.Status == domain.PaymentPaid
	if isPaid && payment.PaidDate == nil {
		return nil, fmt.Errorf("%w: paidDate is required when status is paid", apperrors.ErrValidation)
	}
	if !isPaid {
		payment.PaidDate = nil
	}

	now := time.Now().UTC()
	payment.LastUpdatedAt = now
	payment.LastUpdatedBy = updaterUserID

	var entry *domain.CashFlowEntry
	removeEntries := false
	switch {
	case !wasPaid && isPaid:
		event, err := s.findEvent(ctx, payment.EventID)
		if err != nil {
			return nil, err
		}
		e := newIncomeEntry(*payment, event.Title, updaterUserID, now)
		entry = &e
	case wasPaid && !isPaid:
		removeEntries = true
	case wasPaid && isPaid:
		sameDate := prevPaidDate != nil && payment.PaidDate != nil && prevPaidDate.Equal(*payment.PaidDate)
		if !payment.Amount.Equal(prevAmount) || !sameDate {
			event, err := s.findEvent(ctx, payment.EventID)
			if err != nil {
				return nil, err
			}
			e := newIncomeEntry(*payment, event.Title, updaterUserID, now)
			entry = &e
			removeEntries = true
		}
	}

	if err := s.paymentRepo.UpdatePayment(ctx, *payment, entry, removeEntries); err != nil {
		s.LogError(ctx, err, "Failed to update payment", slog.String("payment_id", paymentID))
		return nil, fmt.Errorf("failed to update payment: %w", err)
	}

	if !wasPaid && isPaid {
		s.LogInfo(ctx, "Payment marked paid",
			slog.String("payment_id", paymentID),
			slog.String("amount", payment.Amount.String()))
	}
	return payment, nil
}

// DeletePayment removes the payment and its ledger entries in one transaction.
func (s *paymentService) DeletePayment(ctx context.Context, paymentID string, deleterUserID string) error {
	if _, err := s.paymentRepo.FindPaymentByID(ctx, paymentID); err != nil {
		return fmt.Errorf("failed to find payment for deletion: %w", err)
	}

	if err := s.paymentRepo.DeletePaymentWithEntries(ctx, paymentID); err != nil {
		s.LogError(ctx, err, "Failed to delete payment", slog.String("payment_id", paymentID))
		return fmt.Errorf("failed to delete payment: %w", err)
	}

	s.LogInfo(ctx, "Payment deleted", slog.String("payment_id", paymentID), slog.String("deleted_by", deleterUserID))
	return nil
}
