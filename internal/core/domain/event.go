package domain

import (
	"fmt"
	"time"

	"github.com/buffetjuniors/buffet_management_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

// EventStatus indicates where an event sits in its booking lifecycle.
type EventStatus string

const (
	EventPending   EventStatus = "pending"
	EventConfirmed EventStatus = "confirmed"
	EventCancelled EventStatus = "cancelled"
	EventCompleted EventStatus = "completed"
)

// PackageType identifies the party package sold for an event.
type PackageType string

const (
	PackageBasic    PackageType = "basic"
	PackageStandard PackageType = "standard"
	PackagePremium  PackageType = "premium"
	PackageCustom   PackageType = "custom"
)

// MinutesPerDay bounds the start/end minute window of an event.
const MinutesPerDay = 24 * 60

// Event represents a booked party occupying a time window on a given date.
// StartMinute/EndMinute are minutes since midnight; the window is [start, end).
type Event struct {
	EventID     string          `json:"eventID"`  // Primary Key (UUID)
	ClientID    string          `json:"clientID"` // FK -> Client.clientID (Not Null)
	Title       string          `json:"title"`
	EventDate   time.Time       `json:"eventDate"` // Date only, midnight UTC
	StartMinute int             `json:"startMinute"`
	EndMinute   int             `json:"endMinute"`
	GuestCount  int             `json:"guestCount"`
	PackageType PackageType     `json:"packageType"`
	TotalValue  decimal.Decimal `json:"totalValue"`
	Status      EventStatus     `json:"status"` // Default: pending
	Notes       string          `json:"notes"`
	AuditFields
}

// Validate checks the time window invariants of the event.
func (e Event) Validate() error {
	if e.StartMinute < 0 || e.StartMinute >= MinutesPerDay {
		return fmt.Errorf("start time must be within the day")
	}
	if e.EndMinute <= 0 || e.EndMinute > MinutesPerDay {
		return fmt.Errorf("end time must be within the day")
	}
	if e.EndMinute <= e.StartMinute {
		return fmt.Errorf("end time must be after start time")
	}
	return nil
}

// Overlaps reports whether two events on the same date occupy intersecting
// [start, end) windows. Events on different dates never overlap.
func (e Event) Overlaps(other Event) bool {
	if !e.EventDate.Equal(other.EventDate) {
		return false
	}
	return other.StartMinute < e.EndMinute && other.EndMinute > e.StartMinute
}

// EventConflictError reports that a requested time window collides with an
// already booked event. It unwraps to apperrors.ErrConflict.
type EventConflictError struct {
	Conflicting Event
}

func (e *EventConflictError) Error() string {
	return fmt.Sprintf("time window overlaps event %s (%s)", e.Conflicting.EventID, e.Conflicting.Title)
}

func (e *EventConflictError) Unwrap() error {
	return apperrors.ErrConflict
}
