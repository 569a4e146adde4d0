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

type PgxDocumentRepository struct {
	BaseRepository
}

func newPgxDocumentRepository(pool *pgxpool.Pool) portsrepo.DocumentRepositoryFacade {
	return &PgxDocumentRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxDocumentRepository implements portsrepo.DocumentRepositoryFacade
var _ portsrepo.DocumentRepositoryFacade = (*PgxDocumentRepository)(nil)

var documentSortColumns = map[string]string{
	"name":      "name",
	"category":  "category",
	"fileName":  "file_name",
	"sizeBytes": "size_bytes",
	"createdAt": "created_at",
}

const documentColumns = `document_id, name, category, file_name, mime_type, size_bytes, client_id, event_id, notes, created_at, created_by, last_updated_at, last_updated_by`

func toModelDocument(d domain.Document) models.Document {
	return models.Document{
		DocumentID: d.DocumentID,
		Name:       d.Name,
		Category:   string(d.Category),
		FileName:   d.FileName,
		MimeType:   d.MimeType,
		SizeBytes:  d.SizeBytes,
		ClientID:   d.ClientID,
		EventID:    d.EventID,
		Notes:      d.Notes,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
}

func toDomainDocument(m models.Document) domain.Document {
	return domain.Document{
		DocumentID: m.DocumentID,
		Name:       m.Name,
		Category:   domain.DocumentCategory(m.Category),
		FileName:   m.FileName,
		MimeType:   m.MimeType,
		SizeBytes:  m.SizeBytes,
		ClientID:   m.ClientID,
		EventID:    m.EventID,
		Notes:      m.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

func scanDocument(row pgx.Row) (models.Document, error) {
	var m models.Document
	err := row.Scan(
		&m.DocumentID,
		&m.Name,
		&m.Category,
		&m.FileName,
		&m.MimeType,
		&m.SizeBytes,
		&m.ClientID,
		&m.EventID,
		&m.Notes,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxDocumentRepository) SaveDocument(ctx context.Context, document domain.Document) error {
	m := toModelDocument(document)
	query := `
		INSERT INTO documents (document_id, name, category, file_name, mime_type, size_bytes, client_id, event_id, notes, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.DocumentID,
		m.Name,
		m.Category,
		m.FileName,
		m.MimeType,
		m.SizeBytes,
		m.ClientID,
		m.EventID,
		m.Notes,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("linked client or event does not exist: %w", apperrors.ErrValidation)
		}
		return fmt.Errorf("failed to save document: %w", err)
	}
	return nil
}

func (r *PgxDocumentRepository) FindDocumentByID(ctx context.Context, documentID string) (*domain.Document, error) {
	query := `SELECT ` + documentColumns + ` FROM documents WHERE document_id = $1;`
	m, err := scanDocument(r.Pool.QueryRow(ctx, query, documentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find document by ID %s: %w", documentID, err)
	}
	d := toDomainDocument(m)
	return &d, nil
}

func (r *PgxDocumentRepository) ListDocuments(ctx context.Context, filter portsrepo.DocumentListFilter) ([]domain.Document, int64, error) {
	where := ` WHERE 1=1`
	args := []interface{}{}
	if filter.Category != nil {
		args = append(args, string(*filter.Category))
		where += ` AND category = $` + strconv.Itoa(len(args))
	}
	if filter.ClientID != nil {
		args = append(args, *filter.ClientID)
		where += ` AND client_id = $` + strconv.Itoa(len(args))
	}
	if filter.EventID != nil {
		args = append(args, *filter.EventID)
		where += ` AND event_id = $` + strconv.Itoa(len(args))
	}
	if filter.Search != "" {
		args = append(args, likePattern(filter.Search))
		n := strconv.Itoa(len(args))
		where += ` AND (name ILIKE $` + n + ` OR file_name ILIKE $` + n + `)`
	}

	var total int64
	if err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM documents`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count documents: %w", err)
	}

	query := `SELECT ` + documentColumns + ` FROM documents` + where +
		orderClause(filter.SortBy, documentSortColumns, "created_at", filter.SortOrder) +
		` LIMIT $` + strconv.Itoa(len(args)+1) + ` OFFSET $` + strconv.Itoa(len(args)+2)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query documents: %w", err)
	}
	defer rows.Close()

	documents := []domain.Document{}
	for rows.Next() {
		m, err := scanDocument(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan document row: %w", err)
		}
		documents = append(documents, toDomainDocument(m))
	}
	if rows.Err() != nil {
		return nil, 0, fmt.Errorf("error iterating document rows: %w", rows.Err())
	}
	return documents, total, nil
}

func (r *PgxDocumentRepository) UpdateDocument(ctx context.Context, document domain.Document) error {
	m := toModelDocument(document)
	query := `
		UPDATE documents
		SET name = $1, category = $2, client_id = $3, event_id = $4, notes = $5,
		    last_updated_at = $6, last_updated_by = $7
		WHERE document_id = $8;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.Name,
		m.Category,
		m.ClientID,
		m.EventID,
		m.Notes,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.DocumentID,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("linked client or event does not exist: %w", apperrors.ErrValidation)
		}
		return fmt.Errorf("failed to execute update document query: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("document not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxDocumentRepository) DeleteDocument(ctx context.Context, documentID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM documents WHERE document_id = $1;`, documentID)
	if err != nil {
		return fmt.Errorf("failed to delete document %s: %w", documentID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("document not found: %w", apperrors.ErrNotFound)
	}
	return nil
}
