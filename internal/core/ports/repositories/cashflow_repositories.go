package repositories

import (
	"context"
	"time"

	"github.com/buffetjuniors/buffet_management_app/internal/core/domain"
)

// CashFlowListFilter narrows and orders a ledger listing.
type CashFlowListFilter struct {
	EntryType *domain.EntryType
	DateFrom  *time.Time
	DateTo    *time.Time
	ListOptions
}

// CashFlowReader defines read operations for the ledger
type CashFlowReader interface {
	// FindEntryByID retrieves a specific cash flow entry by its ID.
	FindEntryByID(ctx context.Context, entryID string) (*domain.CashFlowEntry, error)

	// ListEntries retrieves a filtered page of entries and the total match count.
	ListEntries(ctx context.Context, filter CashFlowListFilter) ([]domain.CashFlowEntry, int64, error)

	// SummarizeEntries totals income and expense entries over an inclusive
	// date range. Nil bounds leave that side open.
	SummarizeEntries(ctx context.Context, from, to *time.Time) (*domain.CashFlowSummary, error)
}

// CashFlowWriter defines write operations for manual ledger entries.
// Payment and expense derived entries are written by their owning
// repositories inside the same transaction as the source row.
type CashFlowWriter interface {
	// SaveEntry persists a manual cash flow entry.
	SaveEntry(ctx context.Context, entry domain.CashFlowEntry) error

	// DeleteEntry removes an entry row.
	DeleteEntry(ctx context.Context, entryID string) error
}

// CashFlowRepositoryFacade combines the ledger repository interfaces
type CashFlowRepositoryFacade interface {
	CashFlowReader
	CashFlowWriter
}
