package services

import (
	"context"
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

// cashFlowService provides read access to the ledger plus writes of manual
// entries. Payment and expense derived entries are owned by those services
// and cannot be touched from here.
type cashFlowService struct {
	BaseService
	cashFlowRepo portsrepo.CashFlowRepositoryFacade
}

// NewCashFlowService creates a new cash flow service.
func NewCashFlowService(cashFlowRepo portsrepo.CashFlowRepositoryFacade) portssvc.CashFlowSvcFacade {
	return &cashFlowService{
		cashFlowRepo: cashFlowRepo,
	}
}

// Ensure cashFlowService implements the portssvc.CashFlowSvcFacade interface
var _ portssvc.CashFlowSvcFacade = (*cashFlowService)(nil)

// ListEntries retrieves a filtered page of entries and the total match count.
func (s *cashFlowService) ListEntries(ctx context.Context, params dto.ListCashFlowParams) ([]domain.CashFlowEntry, int64, error) {
	params.Normalize()
	filter := portsrepo.CashFlowListFilter{
		ListOptions: portsrepo.ListOptions{
			Limit:     params.Limit,
			Offset:    params.Offset(),
			SortBy:    params.SortBy,
			SortOrder: portsrepo.SortOrder(params.SortOrder),
		},
	}
	if params.EntryType != "" {
		entryType := domain.EntryType(params.EntryType)
		filter.EntryType = &entryType
	}
	if params.DateFrom != "" {
		from, err := utils.ParseDateOnly(params.DateFrom)
		if err != nil {
			return nil, 0, fmt.Errorf("%w: invalid dateFrom: %v", apperrors.ErrValidation, err)
		}
		filter.DateFrom = &from
	}
	if params.DateTo != "" {
		to, err := utils.ParseDateOnly(params.DateTo)
		if err != nil {
			return nil, 0, fmt.Errorf("%w: invalid dateTo: %v", apperrors.ErrValidation, err)
		}
		filter.DateTo = &to
	}

	entries, total, err := s.cashFlowRepo.ListEntries(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list cash flow entries")
		return nil, 0, fmt.Errorf("failed to list cash flow entries: %w", err)
	}
	return entries, total, nil
}

// Summarize totals income and expense entries over an optional date range.
func (s *cashFlowService) Summarize(ctx context.Context, params dto.CashFlowSummaryParams) (*domain.CashFlowSummary, error) {
	var from, to *time.Time
	if params.From != "" {
		f, err := utils.ParseDateOnly(params.From)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid from date: %v", apperrors.ErrValidation, err)
		}
		from = &f
	}
	if params.To != "" {
		t, err := utils.ParseDateOnly(params.To)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid to date: %v", apperrors.ErrValidation, err)
		}
		to = &t
	}

	summary, err := s.cashFlowRepo.SummarizeEntries(ctx, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to summarize cash flow")
		return nil, fmt.Errorf("failed to summarize cash flow: %w", err)
	}
	return summary, nil
}

// CreateManualEntry records a hand-written ledger entry.
func (s *cashFlowService) CreateManualEntry(ctx context.Context, req dto.CreateCashFlowEntryRequest, creatorUserID string) (*domain.CashFlowEntry, error) {
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}

	transactionDate, err := utils.ParseDateOnly(req.TransactionDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid transaction date: %v", apperrors.ErrValidation, err)
	}

	now := time.Now().UTC()
	entry := domain.CashFlowEntry{
		EntryID:         uuid.NewString(),
		EntryType:       req.EntryType,
		Amount:          req.Amount,
		Description:     req.Description,
		TransactionDate: transactionDate,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.cashFlowRepo.SaveEntry(ctx, entry); err != nil {
		s.LogError(ctx, err, "Failed to save manual cash flow entry")
		return nil, fmt.Errorf("failed to create cash flow entry: %w", err)
	}

	s.LogInfo(ctx, "Manual cash flow entry created",
		slog.String("entry_id", entry.EntryID),
		slog.String("type", string(entry.EntryType)))
	return &entry, nil
}

// DeleteManualEntry removes a manual entry. Entries linked to a payment or
// expense are refused; they disappear with their source.
func (s *cashFlowService) DeleteManualEntry(ctx context.Context, entryID string, deleterUserID string) error {
	entry, err := s.cashFlowRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		return fmt.Errorf("failed to find cash flow entry for deletion: %w", err)
	}

	if !entry.IsManual() {
		return fmt.Errorf("%w: entry is managed by its source payment or expense", apperrors.ErrConflict)
	}

	if err := s.cashFlowRepo.DeleteEntry(ctx, entryID); err != nil {
		s.LogError(ctx, err, "Failed to delete cash flow entry", slog.String("entry_id", entryID))
		return fmt.Errorf("failed to delete cash flow entry: %w", err)
	}

	s.LogInfo(ctx, "Manual cash flow entry deleted", slog.String("entry_id", entryID), slog.String("deleted_by", deleterUserID))
	return nil
}
