package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/buffetjuniors/buffet_management_app/internal/apperrors"
	"github.com/buffetjuniors/buffet_management_app/internal/core/domain"
	portsrepo "github.com/buffetjuniors/buffet_management_app/internal/core/ports/repositories"
	"github.com/buffetjuniors/buffet_management_app/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxExpenseRepository struct {
	BaseRepository
}

func newPgxExpenseRepository(pool *pgxpool.Pool) portsrepo.ExpenseRepositoryFacade {
	return &PgxExpenseRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxExpenseRepository implements portsrepo.ExpenseRepositoryFacade
var _ portsrepo.ExpenseRepositoryFacade = (*PgxExpenseRepository)(nil)

var expenseSortColumns = map[string]string{
	"description": "description",
	"category":    "category",
	"amount":      "amount",
	"expenseDate": "expense_date",
	"createdAt":   "created_at",
}

const expenseColumns = `expense_id, description, category, amount, expense_date, notes, created_at, created_by, last_updated_at, last_updated_by`

func toModelExpense(d domain.Expense) models.Expense {
	return models.Expense{
		ExpenseID:   d.ExpenseID,
		Description: d.Description,
		Category:    string(d.Category),
		Amount:      d.Amount,
		ExpenseDate: d.ExpenseDate,
		Notes:       d.Notes,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
}

func toDomainExpense(m models.Expense) domain.Expense {
	return domain.Expense{
		ExpenseID:   m.ExpenseID,
		Description: m.Description,
		Category:    domain.ExpenseCategory(m.Category),
		Amount:      m.Amount,
		ExpenseDate: m.ExpenseDate,
		Notes:       m.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

func scanExpense(row pgx.Row) (models.Expense, error) {
	var m models.Expense
	err := row.Scan(
		&m.ExpenseID,
		&m.Description,
		&m.Category,
		&m.Amount,
		&m.ExpenseDate,
		&m.Notes,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveExpense inserts the expense and its mirrored ledger entry in one
// transaction.
func (r *PgxExpenseRepository) SaveExpense(ctx context.Context, expense domain.Expense, entry domain.CashFlowEntry) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m := toModelExpense(expense)
	query := `
		INSERT INTO expenses (expense_id, description, category, amount, expense_date, notes, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err = tx.Exec(ctx, query,
		m.ExpenseID,
		m.Description,
		m.Category,
		m.Amount,
		m.ExpenseDate,
		m.Notes,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save expense: %w", err)
	}

	if err := execInsertEntry(ctx, tx, entry); err != nil {
		return fmt.Errorf("failed to insert ledger entry for expense %s: %w", expense.ExpenseID, err)
	}

	return r.Commit(ctx, tx)
}

func (r *PgxExpenseRepository) FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error) {
	query := `SELECT ` + expenseColumns + ` FROM expenses WHERE expense_id = $1;`
	m, err := scanExpense(r.Pool.QueryRow(ctx, query, expenseID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find expense by ID %s: %w", expenseID, err)
	}
	e := toDomainExpense(m)
	return &e, nil
}

func (r *PgxExpenseRepository) ListExpenses(ctx context.Context, filter portsrepo.ExpenseListFilter) ([]domain.Expense, int64, error) {
	where := ` WHERE 1=1`
	args := []interface{}{}
	if filter.Category != nil {
		args = append(args, string(*filter.Category))
		where += ` AND category = $` + strconv.Itoa(len(args))
	}
	if filter.DateFrom != nil {
		args = append(args, *filter.DateFrom)
		where += ` AND expense_date >= $` + strconv.Itoa(len(args))
	}
	if filter.DateTo != nil {
		args = append(args, *filter.DateTo)
		where += ` AND expense_date <= $` + strconv.Itoa(len(args))
	}
	if filter.Search != "" {
		args = append(args, likePattern(filter.Search))
		where += ` AND description ILIKE $` + strconv.Itoa(len(args))
	}

	var total int64
	if err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM expenses`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count expenses: %w", err)
	}

	query := `SELECT ` + expenseColumns + ` FROM expenses` + where +
		orderClause(filter.SortBy, expenseSortColumns, "expense_date", filter.SortOrder) +
		` LIMIT $` + strconv.Itoa(len(args)+1) + ` OFFSET $` + strconv.Itoa(len(args)+2)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query expenses: %w", err)
	}
	defer rows.Close()

	expenses := []domain.Expense{}
	for rows.Next() {
		m, err := scanExpense(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan expense row: %w", err)
		}
		expenses = append(expenses, toDomainExpense(m))
	}
	if rows.Err() != nil {
		return nil, 0, fmt.Errorf("error iterating expense rows: %w", rows.Err())
	}
	return expenses, total, nil
}

// UpdateExpense rewrites the expense row and keeps its mirrored ledger entry
// aligned (amount, description, date) inside one transaction.
func (r *PgxExpenseRepository) UpdateExpense(ctx context.Context, expense domain.Expense) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m := toModelExpense(expense)
	query := `
		UPDATE expenses
		SET description = $1, category = $2, amount = $3, expense_date = $4, notes = $5,
		    last_updated_at = $6, last_updated_by = $7
		WHERE expense_id = $8;
	`
	cmdTag, err := tx.Exec(ctx, query,
		m.Description,
		m.Category,
		m.Amount,
		m.ExpenseDate,
		m.Notes,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.ExpenseID,
	)
	if err != nil {
		return fmt.Errorf("failed to execute update expense query: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("expense not found: %w", apperrors.ErrNotFound)
	}

	_, err = tx.Exec(ctx, `
		UPDATE cash_flow_entries
		SET amount = $1, description = $2, transaction_date = $3, last_updated_at = $4, last_updated_by = $5
		WHERE expense_id = $6;
	`, m.Amount, m.Description, m.ExpenseDate, m.LastUpdatedAt, m.LastUpdatedBy, m.ExpenseID)
	if err != nil {
		return fmt.Errorf("failed to sync ledger entry for expense %s: %w", expense.ExpenseID, err)
	}

	return r.Commit(ctx, tx)
}

// DeleteExpenseWithEntry removes the expense and its mirrored ledger entry in
// one transaction.
func (r *PgxExpenseRepository) DeleteExpenseWithEntry(ctx context.Context, expenseID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if _, err := tx.Exec(ctx, `DELETE FROM cash_flow_entries WHERE expense_id = $1;`, expenseID); err != nil {
		return fmt.Errorf("failed to delete ledger entry for expense %s: %w", expenseID, err)
	}

	cmdTag, err := tx.Exec(ctx, `DELETE FROM expenses WHERE expense_id = $1;`, expenseID)
	if err != nil {
		return fmt.Errorf("failed to delete expense %s: %w", expenseID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("expense not found: %w", apperrors.ErrNotFound)
	}

	return r.Commit(ctx, tx)
}
