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
)

type PgxClientRepository struct {
	BaseRepository
}

func newPgxClientRepository(pool *pgxpool.Pool) portsrepo.ClientRepositoryFacade {
	return &PgxClientRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxClientRepository implements portsrepo.ClientRepositoryFacade
var _ portsrepo.ClientRepositoryFacade = (*PgxClientRepository)(nil)

var clientSortColumns = map[string]string{
	"name":      "name",
	"email":     "email",
	"phone":     "phone",
	"createdAt": "created_at",
}

const clientColumns = `client_id, name, email, phone, address, notes, created_at, created_by, last_updated_at, last_updated_by, deleted_at`

func toModelClient(d domain.Client) models.Client {
	return models.Client{
		ClientID: d.ClientID,
		Name:     d.Name,
		Email:    d.Email,
		Phone:    d.Phone,
		Address:  d.Address,
		Notes:    d.Notes,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
		DeletedAt: d.DeletedAt,
	}
}

func toDomainClient(m models.Client) domain.Client {
	return domain.Client{
		ClientID: m.ClientID,
		Name:     m.Name,
		Email:    m.Email,
		Phone:    m.Phone,
		Address:  m.Address,
		Notes:    m.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
		DeletedAt: m.DeletedAt,
	}
}

func scanClient(row pgx.Row) (models.Client, error) {
	var m models.Client
	err := row.Scan(
		&m.ClientID,
		&m.Name,
		&m.Email,
		&m.Phone,
		&m.Address,
		&m.Notes,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
		&m.DeletedAt,
	)
	return m, err
}

func (r *PgxClientRepository) SaveClient(ctx context.Context, client domain.Client) error {
	m := toModelClient(client)
	query := `
		INSERT INTO clients (client_id, name, email, phone, address, notes, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ClientID,
		m.Name,
		m.Email,
		m.Phone,
		m.Address,
		m.Notes,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("client email taken: %w", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save client: %w", err)
	}
	return nil
}

func (r *PgxClientRepository) FindClientByID(ctx context.Context, clientID string) (*domain.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE client_id = $1 AND deleted_at IS NULL;`
	m, err := scanClient(r.Pool.QueryRow(ctx, query, clientID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find client by ID %s: %w", clientID, err)
	}
	c := toDomainClient(m)
	return &c, nil
}

func (r *PgxClientRepository) FindClientByEmail(ctx context.Context, email string) (*domain.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE email = $1 AND deleted_at IS NULL;`
	m, err := scanClient(r.Pool.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find client by email: %w", err)
	}
	c := toDomainClient(m)
	return &c, nil
}

func (r *PgxClientRepository) ListClients(ctx context.Context, filter portsrepo.ClientListFilter) ([]domain.Client, int64, error) {
	where := ` WHERE deleted_at IS NULL`
	args := []interface{}{}
	if filter.Search != "" {
		args = append(args, likePattern(filter.Search))
		n := strconv.Itoa(len(args))
		where += ` AND (name ILIKE $` + n + ` OR email ILIKE $` + n + ` OR phone ILIKE $` + n + `)`
	}

	var total int64
	if err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM clients`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count clients: %w", err)
	}

	query := `SELECT ` + clientColumns + ` FROM clients` + where +
		orderClause(filter.SortBy, clientSortColumns, "name", filter.SortOrder) +
		` LIMIT $` + strconv.Itoa(len(args)+1) + ` OFFSET $` + strconv.Itoa(len(args)+2)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query clients: %w", err)
	}
	defer rows.Close()

	clients := []domain.Client{}
	for rows.Next() {
		m, err := scanClient(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan client row: %w", err)
		}
		clients = append(clients, toDomainClient(m))
	}
	if rows.Err() != nil {
		return nil, 0, fmt.Errorf("error iterating client rows: %w", rows.Err())
	}
	return clients, total, nil
}

func (r *PgxClientRepository) UpdateClient(ctx context.Context, client domain.Client) error {
	m := toModelClient(client)
	query := `
		UPDATE clients
		SET name = $1, email = $2, phone = $3, address = $4, notes = $5, last_updated_at = $6, last_updated_by = $7
		WHERE client_id = $8 AND deleted_at IS NULL;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.Name,
		m.Email,
		m.Phone,
		m.Address,
		m.Notes,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.ClientID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("client email taken: %w", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to execute update client query: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("client not found or already deleted: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxClientRepository) MarkClientDeleted(ctx context.Context, clientID string, deletedAt time.Time, deletedBy string) error {
	query := `
		UPDATE clients
		SET deleted_at = $1, last_updated_at = $1, last_updated_by = $2
		WHERE client_id = $3 AND deleted_at IS NULL;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, deletedAt, deletedBy, clientID)
	if err != nil {
		return fmt.Errorf("failed to mark client as deleted: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("client not found or already deleted: %w", apperrors.ErrNotFound)
	}
	return nil
}
