package dto

import (
	"time"

	"github.com/buffetjuniors/buffet_management_app/internal/core/domain"
	"github.com/buffetjuniors/buffet_management_app/internal/utils"
	"github.com/shopspring/decimal"
)

// CreateEventRequest defines the data needed to book a new event.
// Times are "HH:MM" strings; the window is [startTime, endTime).
type CreateEventRequest struct {
	ClientID    string             `json:"clientID" binding:"required,uuid"`
	Title       string             `json:"title" binding:"required"`
	EventDate   string             `json:"eventDate" binding:"required,datetime=2006-01-02"`
	StartTime   string             `json:"startTime" binding:"required,hhmm"`
	EndTime     string             `json:"endTime" binding:"required,hhmm"`
	GuestCount  int                `json:"guestCount" binding:"required,min=1"`
	PackageType domain.PackageType `json:"packageType" binding:"required,oneof=basic standard premium custom"`
	TotalValue  decimal.Decimal    `json:"totalValue" binding:"required"`
	Status      domain.EventStatus `json:"status" binding:"omitempty,oneof=pending confirmed cancelled completed"`
	Notes       string             `json:"notes"`
}

// UpdateEventRequest defines the data allowed for updating an event.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateEventRequest struct {
	ClientID    *string             `json:"clientID" binding:"omitempty,uuid"`
	Title       *string             `json:"title"`
	EventDate   *string             `json:"eventDate" binding:"omitempty,datetime=2006-01-02"`
	StartTime   *string             `json:"startTime" binding:"omitempty,hhmm"`
	EndTime     *string             `json:"endTime" binding:"omitempty,hhmm"`
	GuestCount  *int                `json:"guestCount" binding:"omitempty,min=1"`
	PackageType *domain.PackageType `json:"packageType" binding:"omitempty,oneof=basic standard premium custom"`
	TotalValue  *decimal.Decimal    `json:"totalValue"`
	Status      *domain.EventStatus `json:"status" binding:"omitempty,oneof=pending confirmed cancelled completed"`
	Notes       *string             `json:"notes"`
}

// ListEventsParams defines query parameters for listing events.
type ListEventsParams struct {
	Status   string `form:"status" binding:"omitempty,oneof=pending confirmed cancelled completed"`
	ClientID string `form:"clientID" binding:"omitempty,uuid"`
	DateFrom string `form:"dateFrom" binding:"omitempty,datetime=2006-01-02"`
	DateTo   string `form:"dateTo" binding:"omitempty,datetime=2006-01-02"`
	Search   string `form:"search"`
	PageParams
}

// AgendaParams defines the inclusive date range of the agenda view.
type AgendaParams struct {
	From string `form:"from" binding:"required,datetime=2006-01-02"`
	To   string `form:"to" binding:"required,datetime=2006-01-02"`
}

// EventResponse defines the data returned for an event.
type EventResponse struct {
	EventID     string             `json:"eventID"`
	ClientID    string             `json:"clientID"`
	Title       string             `json:"title"`
	EventDate   string             `json:"eventDate"` // YYYY-MM-DD
	StartTime   string             `json:"startTime"` // HH:MM
	EndTime     string             `json:"endTime"`   // HH:MM
	GuestCount  int                `json:"guestCount"`
	PackageType domain.PackageType `json:"packageType"`
	TotalValue  decimal.Decimal    `json:"totalValue"`
	Status      domain.EventStatus `json:"status"`
	Notes       string             `json:"notes"`
	CreatedAt   time.Time          `json:"createdAt"`
}

// EventConflictResponse is the 409 body returned when a requested time window
// collides with an already booked event.
type EventConflictResponse struct {
	Error            string        `json:"error"`
	ConflictingEvent EventResponse `json:"conflictingEvent"`
}

// ListEventsResponse wraps one page of events.
type ListEventsResponse struct {
	Data []EventResponse `json:"data"`
	Pagination
}

// ToEventResponse converts a domain.Event to EventResponse DTO
func ToEventResponse(event *domain.Event) EventResponse {
	return EventResponse{
		EventID:     event.EventID,
		ClientID:    event.ClientID,
		Title:       event.Title,
		EventDate:   utils.FormatDateOnly(event.EventDate),
		StartTime:   utils.FormatTimeOfDay(event.StartMinute),
		EndTime:     utils.FormatTimeOfDay(event.EndMinute),
		GuestCount:  event.GuestCount,
		PackageType: event.PackageType,
		TotalValue:  event.TotalValue,
		Status:      event.Status,
		Notes:       event.Notes,
		CreatedAt:   event.CreatedAt,
	}
}

// ToListEventsResponse converts a page of domain events to ListEventsResponse DTO
func ToListEventsResponse(events []domain.Event, p Pagination) ListEventsResponse {
	data := make([]EventResponse, len(events))
	for i, e := range events {
		data[i] = ToEventResponse(&e)
	}
	return ListEventsResponse{Data: data, Pagination: p}
}

// ToEventResponses converts a slice of domain events for unpaginated views.
func ToEventResponses(events []domain.Event) []EventResponse {
	data := make([]EventResponse, len(events))
	for i, e := range events {
		data[i] = ToEventResponse(&e)
	}
	return data
}
