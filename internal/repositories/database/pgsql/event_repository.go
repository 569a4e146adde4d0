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

type PgxEventRepository struct {
	BaseRepository
}

func newPgxEventRepository(pool *pgxpool.Pool) portsrepo.EventRepositoryFacade {
	return &PgxEventRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxEventRepository implements portsrepo.EventRepositoryFacade
var _ portsrepo.EventRepositoryFacade = (*PgxEventRepository)(nil)

var eventSortColumns = map[string]string{
	"title":      "title",
	"eventDate":  "event_date",
	"startTime":  "start_minute",
	"guestCount": "guest_count",
	"totalValue": "total_value",
	"status":     "status",
	"createdAt":  "created_at",
}

const eventColumns = `event_id, client_id, title, event_date, start_minute, end_minute, guest_count, package_type, total_value, status, notes, created_at, created_by, last_updated_at, last_updated_by`

func toModelEvent(d domain.Event) models.Event {
	return models.Event{
		EventID:     d.EventID,
		ClientID:    d.ClientID,
		Title:       d.Title,
		EventDate:   d.EventDate,
		StartMinute: d.StartMinute,
		EndMinute:   d.EndMinute,
		GuestCount:  d.GuestCount,
		PackageType: string(d.PackageType),
		TotalValue:  d.TotalValue,
		Status:      string(d.Status),
		Notes:       d.Notes,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
}

func toDomainEvent(m models.Event) domain.Event {
	return domain.Event{
		EventID:     m.EventID,
		ClientID:    m.ClientID,
		Title:       m.Title,
		EventDate:   m.EventDate,
		StartMinute: m.StartMinute,
		EndMinute:   m.EndMinute,
		GuestCount:  m.GuestCount,
		PackageType: domain.PackageType(m.PackageType),
		TotalValue:  m.TotalValue,
		Status:      domain.EventStatus(m.Status),
		Notes:       m.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

func scanEvent(row pgx.Row) (models.Event, error) {
	var m models.Event
	err := row.Scan(
		&m.EventID,
		&m.ClientID,
		&m.Title,
		&m.EventDate,
		&m.StartMinute,
		&m.EndMinute,
		&m.GuestCount,
		&m.PackageType,
		&m.TotalValue,
		&m.Status,
		&m.Notes,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxEventRepository) SaveEvent(ctx context.Context, event domain.Event) error {
	m := toModelEvent(event)
	query := `
		INSERT INTO events (event_id, client_id, title, event_date, start_minute, end_minute, guest_count, package_type, total_value, status, notes, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.EventID,
		m.ClientID,
		m.Title,
		m.EventDate,
		m.StartMinute,
		m.EndMinute,
		m.GuestCount,
		m.PackageType,
		m.TotalValue,
		m.Status,
		m.Notes,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("client does not exist: %w", apperrors.ErrValidation)
		}
		return fmt.Errorf("failed to save event: %w", err)
	}
	return nil
}

func (r *PgxEventRepository) FindEventByID(ctx context.Context, eventID string) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE event_id = $1;`
	m, err := scanEvent(r.Pool.QueryRow(ctx, query, eventID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find event by ID %s: %w", eventID, err)
	}
	e := toDomainEvent(m)
	return &e, nil
}

// FindFirstOverlapping applies the interval intersection test
// existing.start < candidate.end AND existing.end > candidate.start,
// restricted to the same date and non-cancelled events. The earliest
// conflicting event wins so the response is deterministic.
func (r *PgxEventRepository) FindFirstOverlapping(ctx context.Context, date time.Time, startMinute, endMinute int, excludeEventID *string) (*domain.Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM events
		WHERE event_date = $1
		  AND status != 'cancelled'
		  AND start_minute < $3
		  AND end_minute > $2
	`
	args := []interface{}{date, startMinute, endMinute}
	if excludeEventID != nil {
		args = append(args, *excludeEventID)
		query += ` AND event_id != $4`
	}
	query += ` ORDER BY start_minute ASC, created_at ASC LIMIT 1;`

	m, err := scanEvent(r.Pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to check event overlap: %w", err)
	}
	e := toDomainEvent(m)
	return &e, nil
}

func (r *PgxEventRepository) ListEvents(ctx context.Context, filter portsrepo.EventListFilter) ([]domain.Event, int64, error) {
	where := ` WHERE 1=1`
	args := []interface{}{}
	if filter.Status != nil {
		args = append(args, string(*filter.Status))
		where += ` AND status = $` + strconv.Itoa(len(args))
	}
	if filter.ClientID != nil {
		args = append(args, *filter.ClientID)
		where += ` AND client_id = $` + strconv.Itoa(len(args))
	}
	if filter.DateFrom != nil {
		args = append(args, *filter.DateFrom)
		where += ` AND event_date >= $` + strconv.Itoa(len(args))
	}
	if filter.DateTo != nil {
		args = append(args, *filter.DateTo)
		where += ` AND event_date <= $` + strconv.Itoa(len(args))
	}
	if filter.Search != "" {
		args = append(args, likePattern(filter.Search))
		where += ` AND title ILIKE $` + strconv.Itoa(len(args))
	}

	var total int64
	if err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM events`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count events: %w", err)
	}

	query := `SELECT ` + eventColumns + ` FROM events` + where +
		orderClause(filter.SortBy, eventSortColumns, "event_date", filter.SortOrder) +
		` LIMIT $` + strconv.Itoa(len(args)+1) + ` OFFSET $` + strconv.Itoa(len(args)+2)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query events: %w", err)
	}
	defer rows.Close()

	events := []domain.Event{}
	for rows.Next() {
		m, err := scanEvent(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan event row: %w", err)
		}
		events = append(events, toDomainEvent(m))
	}
	if rows.Err() != nil {
		return nil, 0, fmt.Errorf("error iterating event rows: %w", rows.Err())
	}
	return events, total, nil
}

func (r *PgxEventRepository) ListEventsInRange(ctx context.Context, from, to time.Time) ([]domain.Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM events
		WHERE event_date >= $1 AND event_date <= $2
		ORDER BY event_date ASC, start_minute ASC;
	`
	rows, err := r.Pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query events in range: %w", err)
	}
	defer rows.Close()

	events := []domain.Event{}
	for rows.Next() {
		m, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event row: %w", err)
		}
		events = append(events, toDomainEvent(m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating event rows: %w", rows.Err())
	}
	return events, nil
}

func (r *PgxEventRepository) CountEventsByClient(ctx context.Context, clientID string) (int64, error) {
	var count int64
	err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM events WHERE client_id = $1;`, clientID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count events for client %s: %w", clientID, err)
	}
	return count, nil
}

func (r *PgxEventRepository) UpdateEvent(ctx context.Context, event domain.Event) error {
	m := toModelEvent(event)
	query := `
		UPDATE events
		SET client_id = $1, title = $2, event_date = $3, start_minute = $4, end_minute = $5,
		    guest_count = $6, package_type = $7, total_value = $8, status = $9, notes = $10,
		    last_updated_at = $11, last_updated_by = $12
		WHERE event_id = $13;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.ClientID,
		m.Title,
		m.EventDate,
		m.StartMinute,
		m.EndMinute,
		m.GuestCount,
		m.PackageType,
		m.TotalValue,
		m.Status,
		m.Notes,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.EventID,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("client does not exist: %w", apperrors.ErrValidation)
		}
		return fmt.Errorf("failed to execute update event query: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("event not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

// DeleteEventCascade removes the event and its dependents in one transaction:
// ledger entries of the event's payments, the payments, then the event row.
// Documents pointing at the event keep their row with the link cleared.
func (r *PgxEventRepository) DeleteEventCascade(ctx context.Context, eventID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	_, err = tx.Exec(ctx, `
		DELETE FROM cash_flow_entries
		WHERE payment_id IN (SELECT payment_id FROM payments WHERE event_id = $1);
	`, eventID)
	if err != nil {
		return fmt.Errorf("failed to delete ledger entries for event %s: %w", eventID, err)
	}

	_, err = tx.Exec(ctx, `DELETE FROM payments WHERE event_id = $1;`, eventID)
	if err != nil {
		return fmt.Errorf("failed to delete payments for event %s: %w", eventID, err)
	}

	_, err = tx.Exec(ctx, `UPDATE documents SET event_id = NULL WHERE event_id = $1;`, eventID)
	if err != nil {
		return fmt.Errorf("failed to unlink documents for event %s: %w", eventID, err)
	}

	cmdTag, err := tx.Exec(ctx, `DELETE FROM events WHERE event_id = $1;`, eventID)
	if err != nil {
		return fmt.Errorf("failed to delete event %s: %w", eventID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("event not found: %w", apperrors.ErrNotFound)
	}

	return r.Commit(ctx, tx)
}
