package repositories

import (
	"context"
	"time"

	"github.com/buffetjuniors/buffet_management_app/internal/core/domain"
)

// EventListFilter narrows and orders an event listing.
type EventListFilter struct {
	Status   *domain.EventStatus
	ClientID *string
	DateFrom *time.Time
	DateTo   *time.Time
	Search   string // matches title
	ListOptions
}

// EventReader defines read operations for event data
type EventReader interface {
	// FindEventByID retrieves a specific event by its ID.
	FindEventByID(ctx context.Context, eventID string) (*domain.Event, error)

	// ListEvents retrieves a filtered page of events and the total match count.
	ListEvents(ctx context.Context, filter EventListFilter) ([]domain.Event, int64, error)

	// ListEventsInRange retrieves every event between two dates inclusive,
	// ordered by date then start minute, for the agenda view.
	ListEventsInRange(ctx context.Context, from, to time.Time) ([]domain.Event, error)

	// FindFirstOverlapping returns the earliest non-cancelled event on the given
	// date whose [start, end) window intersects the candidate window, ordered by
	// start minute then creation time. excludeEventID skips the event being
	// updated. Returns nil when the slot is free.
	FindFirstOverlapping(ctx context.Context, date time.Time, startMinute, endMinute int, excludeEventID *string) (*domain.Event, error)

	// CountEventsByClient returns how many events reference the given client.
	CountEventsByClient(ctx context.Context, clientID string) (int64, error)
}

// EventWriter defines write operations for event data
type EventWriter interface {
	// SaveEvent persists a new event.
	SaveEvent(ctx context.Context, event domain.Event) error

	// UpdateEvent updates an existing event's details.
	UpdateEvent(ctx context.Context, event domain.Event) error
}

// EventLifecycleManager defines operations for removing events
type EventLifecycleManager interface {
	// DeleteEventCascade removes the event inside one transaction: cash flow
	// entries of its payments first, then its payments, then the event row.
	// Documents referencing the event keep their row but lose the event link.
	DeleteEventCascade(ctx context.Context, eventID string) error
}

// EventRepositoryFacade combines all event-related repository interfaces
type EventRepositoryFacade interface {
	EventReader
	EventWriter
	EventLifecycleManager
}
