package services

import (
	"context"

	"github.com/buffetjuniors/buffet_management_app/internal/core/domain"
	"github.com/buffetjuniors/buffet_management_app/internal/dto"
)

// EventReaderSvc defines read operations for event data
type EventReaderSvc interface {
	// GetEventByID retrieves an event by ID.
	GetEventByID(ctx context.Context, eventID string) (*domain.Event, error)

	// ListEvents retrieves a filtered page of events and the total match count.
	ListEvents(ctx context.Context, params dto.ListEventsParams) ([]domain.Event, int64, error)

	// GetAgenda retrieves every event in an inclusive date range ordered by
	// date and start time.
	GetAgenda(ctx context.Context, params dto.AgendaParams) ([]domain.Event, error)
}

// EventWriterSvc defines write operations for event data. Creation and any
// reschedule re-run the overlap check; a collision surfaces as a
// *domain.EventConflictError carrying the blocking event.
type EventWriterSvc interface {
	// CreateEvent books a new event after validating its time window.
	CreateEvent(ctx context.Context, req dto.CreateEventRequest, creatorUserID string) (*domain.Event, error)

	// UpdateEvent updates an existing event.
	UpdateEvent(ctx context.Context, eventID string, req dto.UpdateEventRequest, updaterUserID string) (*domain.Event, error)
}

// EventLifecycleSvc defines operations for removing events
type EventLifecycleSvc interface {
	// DeleteEvent removes the event together with its payments and their
	// ledger entries in one transaction.
	DeleteEvent(ctx context.Context, eventID string, deleterUserID string) error
}

// EventSvcFacade combines all event-related service interfaces
type EventSvcFacade interface {
	EventReaderSvc
	EventWriterSvc
	EventLifecycleSvc
}
