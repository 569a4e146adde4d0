package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	portsrepo "github.com/buffetjuniors/buffet_management_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	Pool *pgxpool.Pool
}

// Begin starts a new database transaction
func (r *BaseRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	tx, err := r.Pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return tx, nil
}

// Commit commits a transaction
func (r *BaseRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// Rollback rolls back a transaction
func (r *BaseRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, sql.ErrTxDone) && !errors.Is(err, pgx.ErrTxClosed) {
		return fmt.Errorf("failed to rollback transaction: %w", err)
	}
	return nil
}

// orderClause resolves a sort key against the repository's column map and
// builds the ORDER BY fragment. Unknown keys fall back to the default column
// so user input never reaches the SQL text.
func orderClause(sortBy string, columns map[string]string, defaultColumn string, order portsrepo.SortOrder) string {
	column, ok := columns[sortBy]
	if !ok {
		column = defaultColumn
	}
	direction := "ASC"
	if order == portsrepo.SortDesc {
		direction = "DESC"
	}
	return " ORDER BY " + column + " " + direction
}

// likePattern wraps a search term for ILIKE matching.
func likePattern(term string) string {
	return "%" + term + "%"
}

// isUniqueViolation reports a Postgres unique constraint violation.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// isForeignKeyViolation reports a Postgres foreign key constraint violation.
func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23503"
}
