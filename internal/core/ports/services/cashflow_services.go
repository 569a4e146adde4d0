package services

import (
	"context"

	"github.com/buffetjuniors/buffet_management_app/internal/core/domain"
	"github.com/buffetjuniors/buffet_management_app/internal/dto"
)

// CashFlowReaderSvc defines read operations for the ledger
type CashFlowReaderSvc interface {
	// ListEntries retrieves a filtered page of entries and the total match count.
	ListEntries(ctx context.Context, params dto.ListCashFlowParams) ([]domain.CashFlowEntry, int64, error)

	// Summarize totals income and expense entries over an optional date range.
	Summarize(ctx context.Context, params dto.CashFlowSummaryParams) (*domain.CashFlowSummary, error)
}

// CashFlowWriterSvc defines write operations for manual ledger entries.
// Entries derived from payments and expenses are managed by those services.
type CashFlowWriterSvc interface {
	// CreateManualEntry records a hand-written ledger entry.
	CreateManualEntry(ctx context.Context, req dto.CreateCashFlowEntryRequest, creatorUserID string) (*domain.CashFlowEntry, error)

	// DeleteManualEntry removes a manual entry. Entries linked to a payment or
	// expense are refused; they disappear with their source.
	DeleteManualEntry(ctx context.Context, entryID string, deleterUserID string) error
}

// CashFlowSvcFacade combines the ledger service interfaces
type CashFlowSvcFacade interface {
	CashFlowReaderSvc
	CashFlowWriterSvc
}
