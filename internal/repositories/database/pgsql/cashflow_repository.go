package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/buffetjuniors/buffet_management_app/internal/apperrors"
	"github.com/buffetjuniors/buffet_management_app/internal/core/domain"
	portsrepo "github.com/buffetjuniors/buffet_management_app/internal/core/ports/repositories"
	"github.com/buffetjuniors/buffet_management_app/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxCashFlowRepository struct {
	BaseRepository
}

func newPgxCashFlowRepository(pool *pgxpool.Pool) portsrepo.CashFlowRepositoryFacade {
	return &PgxCashFlowRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxCashFlowRepository implements portsrepo.CashFlowRepositoryFacade
var _ portsrepo.CashFlowRepositoryFacade = (*PgxCashFlowRepository)(nil)

var cashFlowSortColumns = map[string]string{
	"entryType":       "entry_type",
	"amount":          "amount",
	"transactionDate": "transaction_date",
	"createdAt":       "created_at",
}

const entryColumns = `entry_id, entry_type, amount, description, transaction_date, payment_id, expense_id, created_at, created_by, last_updated_at, last_updated_by`

func toModelEntry(d domain.CashFlowEntry) models.CashFlowEntry {
	return models.CashFlowEntry{
		EntryID:         d.EntryID,
		EntryType:       string(d.EntryType),
		Amount:          d.Amount,
		Description:     d.Description,
		TransactionDate: d.TransactionDate,
		PaymentID:       d.PaymentID,
		ExpenseID:       d.ExpenseID,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
}

func toDomainEntry(m models.CashFlowEntry) domain.CashFlowEntry {
	return domain.CashFlowEntry{
		EntryID:         m.EntryID,
		EntryType:       domain.EntryType(m.EntryType),
		Amount:          m.Amount,
		Description:     m.Description,
		TransactionDate: m.TransactionDate,
		PaymentID:       m.PaymentID,
		ExpenseID:       m.ExpenseID,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

func scanEntry(row pgx.Row) (models.CashFlowEntry, error) {
	var m models.CashFlowEntry
	err := row.Scan(
		&m.EntryID,
		&m.EntryType,
		&m.Amount,
		&m.Description,
		&m.TransactionDate,
		&m.PaymentID,
		&m.ExpenseID,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxCashFlowRepository) SaveEntry(ctx context.Context, entry domain.CashFlowEntry) error {
	m := toModelEntry(entry)
	_, err := r.Pool.Exec(ctx, insertEntryQuery,
		m.EntryID,
		m.EntryType,
		m.Amount,
		m.Description,
		m.TransactionDate,
		m.PaymentID,
		m.ExpenseID,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save cash flow entry: %w", err)
	}
	return nil
}

func (r *PgxCashFlowRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.CashFlowEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM cash_flow_entries WHERE entry_id = $1;`
	m, err := scanEntry(r.Pool.QueryRow(ctx, query, entryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find cash flow entry by ID %s: %w", entryID, err)
	}
	e := toDomainEntry(m)
	return &e, nil
}

func (r *PgxCashFlowRepository) ListEntries(ctx context.Context, filter portsrepo.CashFlowListFilter) ([]domain.CashFlowEntry, int64, error) {
	where := ` WHERE 1=1`
	args := []interface{}{}
	if filter.EntryType != nil {
		args = append(args, string(*filter.EntryType))
		where += ` AND entry_type = $` + strconv.Itoa(len(args))
	}
	if filter.DateFrom != nil {
		args = append(args, *filter.DateFrom)
		where += ` AND transaction_date >= $` + strconv.Itoa(len(args))
	}
	if filter.DateTo != nil {
		args = append(args, *filter.DateTo)
		where += ` AND transaction_date <= $` + strconv.Itoa(len(args))
	}

	var total int64
	if err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM cash_flow_entries`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count cash flow entries: %w", err)
	}

	query := `SELECT ` + entryColumns + ` FROM cash_flow_entries` + where +
		orderClause(filter.SortBy, cashFlowSortColumns, "transaction_date", filter.SortOrder) +
		` LIMIT $` + strconv.Itoa(len(args)+1) + ` OFFSET $` + strconv.Itoa(len(args)+2)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query cash flow entries: %w", err)
	}
	defer rows.Close()

	entries := []domain.CashFlowEntry{}
	for rows.Next() {
		m, err := scanEntry(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan cash flow entry row: %w", err)
		}
		entries = append(entries, toDomainEntry(m))
	}
	if rows.Err() != nil {
		return nil, 0, fmt.Errorf("error iterating cash flow entry rows: %w", rows.Err())
	}
	return entries, total, nil
}

// SummarizeEntries folds the ledger into income and expense totals with one
// conditional aggregation pass.
func (r *PgxCashFlowRepository) SummarizeEntries(ctx context.Context, from, to *time.Time) (*domain.CashFlowSummary, error) {
	where := ` WHERE 1=1`
	args := []interface{}{}
	if from != nil {
		args = append(args, *from)
		where += ` AND transaction_date >= $` + strconv.Itoa(len(args))
	}
	if to != nil {
		args = append(args, *to)
		where += ` AND transaction_date <= $` + strconv.Itoa(len(args))
	}

	query := `
		SELECT
			COALESCE(SUM(CASE WHEN entry_type = 'income' THEN amount ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN entry_type = 'expense' THEN amount ELSE 0 END), 0)
		FROM cash_flow_entries` + where

	var income, expense decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query, args...).Scan(&income, &expense); err != nil {
		return nil, fmt.Errorf("failed to summarize cash flow entries: %w", err)
	}

	return &domain.CashFlowSummary{
		TotalIncome:  income,
		TotalExpense: expense,
		Net:          income.Sub(expense),
	}, nil
}

func (r *PgxCashFlowRepository) DeleteEntry(ctx context.Context, entryID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM cash_flow_entries WHERE entry_id = $1;`, entryID)
	if err != nil {
		return fmt.Errorf("failed to delete cash flow entry %s: %w", entryID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("cash flow entry not found: %w", apperrors.ErrNotFound)
	}
	return nil
}
