package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/buffetjuniors/buffet_management_app/internal/apperrors"
	"github.com/buffetjuniors/buffet_management_app/internal/core/domain"
	portsrepo "github.com/buffetjuniors/buffet_management_app/internal/core/ports/repositories"
	portssvc "github.com/buffetjuniors/buffet_management_app/internal/core/ports/services"
	"github.com/buffetjuniors/buffet_management_app/internal/dto"
	"github.com/buffetjuniors/buffet_management_app/internal/utils"
)

// eventService provides event booking operations. It owns the one business
// rule everything else leans on: no two active events may occupy
// intersecting time windows on the same date.
type eventService struct {
	BaseService
	eventRepo  portsrepo.EventRepositoryFacade
	clientRepo portsrepo.ClientRepositoryFacade
}

// NewEventService creates a new event service.
func NewEventService(eventRepo portsrepo.EventRepositoryFacade, clientRepo portsrepo.ClientRepositoryFacade) portssvc.EventSvcFacade {
	return &eventService{
		eventRepo:  eventRepo,
		clientRepo: clientRepo,
	}
}

// Ensure eventService implements the portssvc.EventSvcFacade interface
var _ portssvc.EventSvcFacade = (*eventService)(nil)

// ensureClientExists verifies the referenced client is live.
func (s *eventService) ensureClientExists(ctx context.Context, clientID string) error {
	_, err := s.clientRepo.FindClientByID(ctx, clientID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("%w: client %s does not exist", apperrors.ErrValidation, clientID)
		}
		return fmt.Errorf("failed to verify client: %w", err)
	}
	return nil
}

// ensureWindowFree checks the candidate window against every active event on
// the same date. A collision comes back as *domain.EventConflictError
// carrying the earliest-starting blocking event.
func (s *eventService) ensureWindowFree(ctx context.Context, date time.Time, startMinute, endMinute int, excludeEventID *string) error {
	conflicting, err := s.eventRepo.FindFirstOverlapping(ctx, date, startMinute, endMinute, excludeEventID)
	if err != nil {
		return fmt.Errorf("failed to check for overlapping events: %w", err)
	}
	if conflicting != nil {
		return &domain.EventConflictError{Conflicting: *conflicting}
	}
	return nil
}

// CreateEvent books a new event after validating its time window.
func (s *eventService) CreateEvent(ctx context.Context, req dto.CreateEventRequest, creatorUserID string) (*domain.Event, error) {
	date, err := utils.ParseDateOnly(req.EventDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid event date: %v", apperrors.ErrValidation, err)
	}
	startMinute, err := utils.ParseTimeOfDay(req.StartTime)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid start time: %v", apperrors.ErrValidation, err)
	}
	endMinute, err := utils.ParseTimeOfDay(req.EndTime)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid end time: %v", apperrors.ErrValidation, err)
	}

	status := req.Status
	if status == "" {
		status = domain.EventPending
	}

	now := time.Now().UTC()
	event := domain.Event{
		EventID:     uuid.NewString(),
		ClientID:    req.ClientID,
		Title:       req.Title,
		EventDate:   date,
		StartMinute: startMinute,
		EndMinute:   endMinute,
		GuestCount:  req.GuestCount,
		PackageType: req.PackageType,
		TotalValue:  req.TotalValue,
		Status:      status,
		Notes:       req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := event.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	if err := s.ensureClientExists(ctx, event.ClientID); err != nil {
		return nil, err
	}
	// Cancelled events hold no slot, so they skip the collision check.
	if event.Status != domain.EventCancelled {
		if err := s.ensureWindowFree(ctx, event.EventDate, event.StartMinute, event.EndMinute, nil); err != nil {
			return nil, err
		}
	}

	if err := s.eventRepo.SaveEvent(ctx, event); err != nil {
		s.LogError(ctx, err, "Failed to save new event", slog.String("title", req.Title))
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	s.LogInfo(ctx, "Event created",
		slog.String("event_id", event.EventID),
		slog.String("date", utils.FormatDateOnly(event.EventDate)),
		slog.String("window", fmt.Sprintf("%s-%s", utils.FormatTimeOfDay(event.StartMinute), utils.FormatTimeOfDay(event.EndMinute))))
	return &event, nil
}

// GetEventByID retrieves an event by ID.
func (s *eventService) GetEventByID(ctx context.Context, eventID string) (*domain.Event, error) {
	event, err := s.eventRepo.FindEventByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to get event by ID: %w", err)
	}
	return event, nil
}

// ListEvents retrieves a filtered page of events and the total match count.
func (s *eventService) ListEvents(ctx context.Context, params dto.ListEventsParams) ([]domain.Event, int64, error) {
	params.Normalize()
	filter := portsrepo.EventListFilter{
		Search: params.Search,
		ListOptions: portsrepo.ListOptions{
			Limit:     params.Limit,
			Offset:    params.Offset(),
			SortBy:    params.SortBy,
			SortOrder: portsrepo.SortOrder(params.SortOrder),
		},
	}
	if params.Status != "" {
		status := domain.EventStatus(params.Status)
		filter.Status = &status
	}
	if params.ClientID != "" {
		clientID := params.ClientID
		filter.ClientID = &clientID
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

	events, total, err := s.eventRepo.ListEvents(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list events")
		return nil, 0, fmt.Errorf("failed to list events: %w", err)
	}
	return events, total, nil
}

// GetAgenda retrieves every event in an inclusive date range ordered by date
// and start time.
func (s *eventService) GetAgenda(ctx context.Context, params dto.AgendaParams) ([]domain.Event, error) {
	from, err := utils.ParseDateOnly(params.From)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid from date: %v", apperrors.ErrValidation, err)
	}
	to, err := utils.ParseDateOnly(params.To)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid to date: %v", apperrors.ErrValidation, err)
	}
	if to.Before(from) {
		return nil, fmt.Errorf("%w: to date must not be before from date", apperrors.ErrValidation)
	}

	events, err := s.eventRepo.ListEventsInRange(ctx, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to load agenda",
			slog.String("from", params.From), slog.String("to", params.To))
		return nil, fmt.Errorf("failed to load agenda: %w", err)
	}
	return events, nil
}

// UpdateEvent updates an existing event. Any change to the date or time
// window, and any revival out of cancelled, re-runs the collision check
// against the other active events of that date.
func (s *eventService) UpdateEvent(ctx context.Context, eventID string, req dto.UpdateEventRequest, updaterUserID string) (*domain.Event, error) {
	event, err := s.eventRepo.FindEventByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to find event for update: %w", err)
	}

	wasCancelled := event.Status == domain.EventCancelled
	windowChanged := false

	if req.ClientID != nil && *req.ClientID != event.ClientID {
		if err := s.ensureClientExists(ctx, *req.ClientID); err != nil {
			return nil, err
		}
		event.ClientID = *req.ClientID
	}
	if req.Title != nil {
		event.Title = *req.Title
	}
	if req.EventDate != nil {
		date, err := utils.ParseDateOnly(*req.EventDate)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid event date: %v", apperrors.ErrValidation, err)
		}
		if !date.Equal(event.EventDate) {
			event.EventDate = date
			windowChanged = true
		}
	}
	if req.StartTime != nil {
		startMinute, err := utils.ParseTimeOfDay(*req.StartTime)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid start time: %v", apperrors.ErrValidation, err)
		}
		if startMinute != event.StartMinute {
			event.StartMinute = startMinute
			windowChanged = true
		}
	}
	if req.EndTime != nil {
		endMinute, err := utils.ParseTimeOfDay(*req.EndTime)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid end time: %v", apperrors.ErrValidation, err)
		}
		if endMinute != event.EndMinute {
			event.EndMinute = endMinute
			windowChanged = true
		}
	}
	if req.GuestCount != nil {
		event.GuestCount = *req.GuestCount
	}
	if req.PackageType != nil {
		event.PackageType = *req.PackageType
	}
	if req.TotalValue != nil {
		event.TotalValue = *req.TotalValue
	}
	if req.Status != nil {
		event.Status = *req.Status
	}
	if req.Notes != nil {
		event.Notes = *req.Notes
	}

	if err := event.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}

	revived := wasCancelled && event.Status != domain.EventCancelled
	if event.Status != domain.EventCancelled && (windowChanged || revived) {
		if err := s.ensureWindowFree(ctx, event.EventDate, event.StartMinute, event.EndMinute, &eventID); err != nil {
			return nil, err
		}
	}

	event.LastUpdatedAt = time.Now().UTC()
	event.LastUpdatedBy = updaterUserID

	if err := s.eventRepo.UpdateEvent(ctx, *event); err != nil {
		s.LogError(ctx, err, "Failed to update event", slog.String("event_id", eventID))
		return nil, fmt.Errorf("failed to update event: %w", err)
	}

	return event, nil
}

// DeleteEvent removes the event together with its payments and their ledger
// entries in one transaction.
func (s *eventService) DeleteEvent(ctx context.Context, eventID string, deleterUserID string) error {
	if _, err := s.eventRepo.FindEventByID(ctx, eventID); err != nil {
		return fmt.Errorf("failed to find event for deletion: %w", err)
	}

	if err := s.eventRepo.DeleteEventCascade(ctx, eventID); err != nil {
		s.LogError(ctx, err, "Failed to delete event", slog.String("event_id", eventID))
		return fmt.Errorf("failed to delete event: %w", err)
	}

	s.LogInfo(ctx, "Event deleted", slog.String("event_id", eventID), slog.String("deleted_by", deleterUserID))
	return nil
}
