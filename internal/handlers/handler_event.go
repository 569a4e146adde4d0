package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/buffetjuniors/buffet_management_app/internal/apperrors"
	"github.com/buffetjuniors/buffet_management_app/internal/core/domain"
	portssvc "github.com/buffetjuniors/buffet_management_app/internal/core/ports/services"
	"github.com/buffetjuniors/buffet_management_app/internal/dto"
	"github.com/buffetjuniors/buffet_management_app/internal/middleware"

	"github.com/gin-gonic/gin"
)

// eventHandler handles HTTP requests related to events.
type eventHandler struct {
	eventService portssvc.EventSvcFacade
}

// newEventHandler creates a new eventHandler.
func newEventHandler(es portssvc.EventSvcFacade) *eventHandler {
	return &eventHandler{
		eventService: es,
	}
}

// registerEventRoutes registers all event-related routes.
func registerEventRoutes(rg *gin.RouterGroup, eventService portssvc.EventSvcFacade) {
	h := newEventHandler(eventService)

	events := rg.Group("/events")
	{
		events.POST("", h.createEvent)
		events.GET("", h.listEvents)
		events.GET("/agenda", h.getAgenda)
		events.GET("/:id", h.getEvent)
		events.PUT("/:id", h.updateEvent)
		events.DELETE("/:id", h.deleteEvent)
	}
}

// respondEventConflict writes the 409 body carrying the event that blocks the
// requested time window.
func respondEventConflict(c *gin.Context, conflictErr *domain.EventConflictError) {
	c.JSON(http.StatusConflict, dto.EventConflictResponse{
		Error:            conflictErr.Error(),
		ConflictingEvent: dto.ToEventResponse(&conflictErr.Conflicting),
	})
}

// createEvent godoc
// @Summary Book a new event
// @Description Books a party on the requested date and time window. The window is rejected with 409 if it overlaps an already booked event.
// @Tags events
// @Accept  json
// @Produce  json
// @Param   event body dto.CreateEventRequest true "Event details"
// @Success 201 {object} dto.EventResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} dto.EventConflictResponse "Time window already booked"
// @Failure 500 {object} map[string]string "Failed to create event"
// @Security BearerAuth
// @Router /events [post]
func (h *eventHandler) createEvent(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for create event request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Creator user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	createdEvent, err := h.eventService.CreateEvent(c.Request.Context(), req, creatorUserID)
	if err != nil {
		var conflictErr *domain.EventConflictError
		switch {
		case errors.As(err, &conflictErr):
			logger.Warn("Event time window conflict", slog.String("conflicting_event_id", conflictErr.Conflicting.EventID))
			respondEventConflict(c, conflictErr)
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to create event in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create event"})
		}
		return
	}

	logger.Info("Event created successfully", slog.String("event_id", createdEvent.EventID))
	c.JSON(http.StatusCreated, dto.ToEventResponse(createdEvent))
}

// getEvent godoc
// @Summary Get an event by ID
// @Description Retrieves details for a specific event
// @Tags events
// @Produce  json
// @Param   id path string true "Event ID"
// @Success 200 {object} dto.EventResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Event not found"
// @Failure 500 {object} map[string]string "Failed to retrieve event"
// @Security BearerAuth
// @Router /events/{id} [get]
func (h *eventHandler) getEvent(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	eventID := c.Param("id")

	event, err := h.eventService.GetEventByID(c.Request.Context(), eventID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Event not found", slog.String("event_id", eventID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		} else {
			logger.Error("Failed to get event from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve event"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

// listEvents godoc
// @Summary List events
// @Description Retrieves a paginated list of events with optional status, client and date range filters
// @Tags events
// @Produce  json
// @Param   status query string false "Filter by status" Enums(pending, confirmed, cancelled, completed)
// @Param   clientID query string false "Filter by client"
// @Param   dateFrom query string false "Earliest event date (YYYY-MM-DD)"
// @Param   dateTo query string false "Latest event date (YYYY-MM-DD)"
// @Param   search query string false "Filter by title (case-insensitive substring)"
// @Param   page query int false "Page number" default(1)
// @Param   limit query int false "Results per page" default(20)
// @Param   sortBy query string false "Sort column"
// @Param   sortOrder query string false "asc or desc" default(asc)
// @Success 200 {object} dto.ListEventsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list events"
// @Security BearerAuth
// @Router /events [get]
func (h *eventHandler) listEvents(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListEventsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for ListEvents", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	params.Normalize()

	events, total, err := h.eventService.ListEvents(c.Request.Context(), params)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to list events from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list events"})
		return
	}

	pagination := dto.NewPagination(total, params.Page, params.Limit)
	c.JSON(http.StatusOK, dto.ToListEventsResponse(events, pagination))
}

// getAgenda godoc
// @Summary Agenda view
// @Description Retrieves every event within an inclusive date range, ordered by date and start time
// @Tags events
// @Produce  json
// @Param   from query string true "Range start (YYYY-MM-DD)"
// @Param   to query string true "Range end (YYYY-MM-DD)"
// @Success 200 {array} dto.EventResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to load agenda"
// @Security BearerAuth
// @Router /events/agenda [get]
func (h *eventHandler) getAgenda(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.AgendaParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for GetAgenda", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	events, err := h.eventService.GetAgenda(c.Request.Context(), params)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to load agenda from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load agenda"})
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponses(events))
}

// updateEvent godoc
// @Summary Update an event
// @Description Updates an event's details. Rescheduling re-runs the overlap check against other booked events.
// @Tags events
// @Accept  json
// @Produce  json
// @Param   id path string true "Event ID to update"
// @Param   event body dto.UpdateEventRequest true "Event details to update"
// @Success 200 {object} dto.EventResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Event not found"
// @Failure 409 {object} dto.EventConflictResponse "Time window already booked"
// @Failure 500 {object} map[string]string "Failed to update event"
// @Security BearerAuth
// @Router /events/{id} [put]
func (h *eventHandler) updateEvent(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	eventID := c.Param("id")
	var req dto.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateEvent", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Updater user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	updatedEvent, err := h.eventService.UpdateEvent(c.Request.Context(), eventID, req, updaterUserID)
	if err != nil {
		var conflictErr *domain.EventConflictError
		switch {
		case errors.As(err, &conflictErr):
			logger.Warn("Event time window conflict on update", slog.String("conflicting_event_id", conflictErr.Conflicting.EventID))
			respondEventConflict(c, conflictErr)
		case errors.Is(err, apperrors.ErrNotFound):
			logger.Warn("Event not found for update", slog.String("event_id", eventID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to update event in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update event"})
		}
		return
	}

	logger.Info("Event updated successfully", slog.String("event_id", eventID))
	c.JSON(http.StatusOK, dto.ToEventResponse(updatedEvent))
}

// deleteEvent godoc
// @Summary Delete an event
// @Description Removes the event together with its payments and their ledger entries
// @Tags events
// @Produce  json
// @Param   id path string true "Event ID to delete"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Event not found"
// @Failure 500 {object} map[string]string "Failed to delete event"
// @Security BearerAuth
// @Router /events/{id} [delete]
func (h *eventHandler) deleteEvent(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	eventID := c.Param("id")

	deleterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Deleter user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	err := h.eventService.DeleteEvent(c.Request.Context(), eventID, deleterUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Event not found for deletion", slog.String("event_id", eventID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		} else {
			logger.Error("Failed to delete event in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete event"})
		}
		return
	}

	logger.Info("Event deleted successfully", slog.String("event_id", eventID))
	c.Status(http.StatusNoContent)
}
