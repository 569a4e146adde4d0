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

type PgxPaymentRepository struct {
	BaseRepository
}

func newPgxPaymentRepository(pool *pgxpool.Pool) portsrepo.PaymentRepositoryFacade {
	return &PgxPaymentRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxPaymentRepository implements portsrepo.PaymentRepositoryFacade
var _ portsrepo.PaymentRepositoryFacade = (*PgxPaymentRepository)(nil)

var paymentSortColumns = map[string]string{
	"amount":    "amount",
	"method":    "method",
	"status":    "status",
	"dueDate":   "due_date",
	"paidDate":  "paid_date",
	"createdAt": "created_at",
}

const paymentColumns = `payment_id, event_id, amount, method, status, due_date, paid_date, notes, created_at, created_by, last_updated_at, last_updated_by`

const insertEntryQuery = `
	INSERT INTO cash_flow_entries (entry_id, entry_type, amount, description, transaction_date, payment_id, expense_id, created_at, created_by, last_updated_at, last_updated_by)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
`

func toModelPayment(d domain.Payment) models.Payment {
	return models.Payment{
		PaymentID: d.PaymentID,
		EventID:   d.EventID,
		Amount:    d.Amount,
		Method:    string(d.Method),
		Status:    string(d.Status),
		DueDate:   d.DueDate,
		PaidDate:  d.PaidDate,
		Notes:     d.Notes,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
}

func toDomainPayment(m models.Payment) domain.Payment {
	return domain.Payment{
		PaymentID: m.PaymentID,
		EventID:   m.EventID,
		Amount:    m.Amount,
		Method:    domain.PaymentMethod(m.Method),
		Status:    domain.PaymentStatus(m.Status),
		DueDate:   m.DueDate,
		PaidDate:  m.PaidDate,
		Notes:     m.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

func scanPayment(row pgx.Row) (models.Payment, error) {
	var m models.Payment
	err := row.Scan(
		&m.PaymentID,
		&m.EventID,
		&m.Amount,
		&m.Method,
		&m.Status,
		&m.DueDate,
		&m.PaidDate,
		&m.Notes,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func execInsertEntry(ctx context.Context, tx pgx.Tx, entry domain.CashFlowEntry) error {
	m := toModelEntry(entry)
	_, err := tx.Exec(ctx, insertEntryQuery,
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
	return err
}

// SavePayment inserts the payment; when entry is non-nil (created directly as
// paid) the income entry lands in the same transaction.
func (r *PgxPaymentRepository) SavePayment(ctx context.Context, payment domain.Payment, entry *domain.CashFlowEntry) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m := toModelPayment(payment)
	query := `
		INSERT INTO payments (payment_id, event_id, amount, method, status, due_date, paid_date, notes, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err = tx.Exec(ctx, query,
		m.PaymentID,
		m.EventID,
		m.Amount,
		m.Method,
		m.Status,
		m.DueDate,
		m.PaidDate,
		m.Notes,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("event does not exist: %w", apperrors.ErrValidation)
		}
		return fmt.Errorf("failed to save payment: %w", err)
	}

	if entry != nil {
		if err := execInsertEntry(ctx, tx, *entry); err != nil {
			return fmt.Errorf("failed to insert ledger entry for payment %s: %w", payment.PaymentID, err)
		}
	}

	return r.Commit(ctx, tx)
}

func (r *PgxPaymentRepository) FindPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE payment_id = $1;`
	m, err := scanPayment(r.Pool.QueryRow(ctx, query, paymentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find payment by ID %s: %w", paymentID, err)
	}
	p := toDomainPayment(m)
	return &p, nil
}

func (r *PgxPaymentRepository) ListPayments(ctx context.Context, filter portsrepo.PaymentListFilter) ([]domain.Payment, int64, error) {
	where := ` WHERE 1=1`
	args := []interface{}{}
	if filter.Status != nil {
		args = append(args, string(*filter.Status))
		where += ` AND status = $` + strconv.Itoa(len(args))
	}
	if filter.EventID != nil {
		args = append(args, *filter.EventID)
		where += ` AND event_id = $` + strconv.Itoa(len(args))
	}
	if filter.DueFrom != nil {
		args = append(args, *filter.DueFrom)
		where += ` AND due_date >= $` + strconv.Itoa(len(args))
	}
	if filter.DueTo != nil {
		args = append(args, *filter.DueTo)
		where += ` AND due_date <= $` + strconv.Itoa(len(args))
	}

	var total int64
	if err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM payments`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count payments: %w", err)
	}

	query := `SELECT ` + paymentColumns + ` FROM payments` + where +
		orderClause(filter.SortBy, paymentSortColumns, "due_date", filter.SortOrder) +
		` LIMIT $` + strconv.Itoa(len(args)+1) + ` OFFSET $` + strconv.Itoa(len(args)+2)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query payments: %w", err)
	}
	defer rows.Close()

	payments := []domain.Payment{}
	for rows.Next() {
		m, err := scanPayment(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan payment row: %w", err)
		}
		payments = append(payments, toDomainPayment(m))
	}
	if rows.Err() != nil {
		return nil, 0, fmt.Errorf("error iterating payment rows: %w", rows.Err())
	}
	return payments, total, nil
}

func (r *PgxPaymentRepository) ListPaymentsByEvent(ctx context.Context, eventID string) ([]domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE event_id = $1 ORDER BY due_date ASC;`
	rows, err := r.Pool.Query(ctx, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to query payments for event %s: %w", eventID, err)
	}
	defer rows.Close()

	payments := []domain.Payment{}
	for rows.Next() {
		m, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payment row: %w", err)
		}
		payments = append(payments, toDomainPayment(m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating payment rows: %w", rows.Err())
	}
	return payments, nil
}

// UpdatePayment writes the payment row and applies the ledger side effect of
// a status transition inside one transaction: entry non-nil inserts the
// income entry, removeEntries drops every entry referencing the payment.
func (r *PgxPaymentRepository) UpdatePayment(ctx context.Context, payment domain.Payment, entry *domain.CashFlowEntry, removeEntries bool) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m := toModelPayment(payment)
	query := `
		UPDATE payments
		SET amount = $1, method = $2, status = $3, due_date = $4, paid_date = $5, notes = $6,
		    last_updated_at = $7, last_updated_by = $8
		WHERE payment_id = $9;
	`
	cmdTag, err := tx.Exec(ctx, query,
		m.Amount,
		m.Method,
		m.Status,
		m.DueDate,
		m.PaidDate,
		m.Notes,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.PaymentID,
	)
	if err != nil {
		return fmt.Errorf("failed to execute update payment query: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("payment not found: %w", apperrors.ErrNotFound)
	}

	if removeEntries {
		if _, err := tx.Exec(ctx, `DELETE FROM cash_flow_entries WHERE payment_id = $1;`, payment.PaymentID); err != nil {
			return fmt.Errorf("failed to delete ledger entries for payment %s: %w", payment.PaymentID, err)
		}
	}
	if entry != nil {
		if err := execInsertEntry(ctx, tx, *entry); err != nil {
			return fmt.Errorf("failed to insert ledger entry for payment %s: %w", payment.PaymentID, err)
		}
	}

	return r.Commit(ctx, tx)
}

// DeletePaymentWithEntries removes the payment and its ledger entries in one
// transaction.
func (r *PgxPaymentRepository) DeletePaymentWithEntries(ctx context.Context, paymentID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if _, err := tx.Exec(ctx, `DELETE FROM cash_flow_entries WHERE payment_id = $1;`, paymentID); err != nil {
		return fmt.Errorf("failed to delete ledger entries for payment %s: %w", paymentID, err)
	}

	cmdTag, err := tx.Exec(ctx, `DELETE FROM payments WHERE payment_id = $1;`, paymentID)
	if err != nil {
		return fmt.Errorf("failed to delete payment %s: %w", paymentID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("payment not found: %w", apperrors.ErrNotFound)
	}

	return r.Commit(ctx, tx)
}
