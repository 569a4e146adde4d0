package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/buffetjuniors/buffet_management_app/internal/apperrors"
	portssvc "github.com/buffetjuniors/buffet_management_app/internal/core/ports/services"
	"github.com/buffetjuniors/buffet_management_app/internal/dto"
	"github.com/buffetjuniors/buffet_management_app/internal/middleware"

	"github.com/gin-gonic/gin"
)

// cashFlowHandler handles HTTP requests related to the cash flow ledger.
type cashFlowHandler struct {
	cashFlowService portssvc.CashFlowSvcFacade
}

// newCashFlowHandler creates a new cashFlowHandler.
func newCashFlowHandler(cs portssvc.CashFlowSvcFacade) *cashFlowHandler {
	return &cashFlowHandler{
		cashFlowService: cs,
	}
}

// registerCashFlowRoutes registers all ledger-related routes.
func registerCashFlowRoutes(rg *gin.RouterGroup, cashFlowService portssvc.CashFlowSvcFacade) {
	h := newCashFlowHandler(cashFlowService)

	cashflow := rg.Group("/cashflow")
	{
		cashflow.GET("", h.listEntries)
		cashflow.GET("/summary", h.getSummary)
		cashflow.POST("", h.createManualEntry)
		cashflow.DELETE("/:id", h.deleteManualEntry)
	}
}

// listEntries godoc
// @Summary List ledger entries
// @Description Retrieves a paginated list of cash flow entries with optional type and date range filters
// @Tags cashflow
// @Produce  json
// @Param   entryType query string false "Filter by entry type" Enums(income, expense)
// @Param   dateFrom query string false "Earliest transaction date (YYYY-MM-DD)"
// @Param   dateTo query string false "Latest transaction date (YYYY-MM-DD)"
// @Param   page query int false "Page number" default(1)
// @Param   limit query int false "Results per page" default(20)
// @Param   sortBy query string false "Sort column"
// @Param   sortOrder query string false "asc or desc" default(asc)
// @Success 200 {object} dto.ListCashFlowResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list entries"
// @Security BearerAuth
// @Router /cashflow [get]
func (h *cashFlowHandler) listEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListCashFlowParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for ListEntries", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	params.Normalize()

	entries, total, err := h.cashFlowService.ListEntries(c.Request.Context(), params)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to list ledger entries from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list entries"})
		return
	}

	pagination := dto.NewPagination(total, params.Page, params.Limit)
	c.JSON(http.StatusOK, dto.ToListCashFlowResponse(entries, pagination))
}

// getSummary godoc
// @Summary Cash flow summary
// @Description Totals income and expense entries over an optional date range
// @Tags cashflow
// @Produce  json
// @Param   from query string false "Range start (YYYY-MM-DD)"
// @Param   to query string false "Range end (YYYY-MM-DD)"
// @Success 200 {object} dto.CashFlowSummaryResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to compute summary"
// @Security BearerAuth
// @Router /cashflow/summary [get]
func (h *cashFlowHandler) getSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.CashFlowSummaryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for GetSummary", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	summary, err := h.cashFlowService.Summarize(c.Request.Context(), params)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to compute ledger summary", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute summary"})
		return
	}

	c.JSON(http.StatusOK, dto.ToCashFlowSummaryResponse(summary))
}

// createManualEntry godoc
// @Summary Record a manual ledger entry
// @Description Records a hand-written income or expense entry. Entries derived from payments and expenses are managed by their own endpoints.
// @Tags cashflow
// @Accept  json
// @Produce  json
// @Param   entry body dto.CreateCashFlowEntryRequest true "Entry details"
// @Success 201 {object} dto.CashFlowEntryResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create entry"
// @Security BearerAuth
// @Router /cashflow [post]
func (h *cashFlowHandler) createManualEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateCashFlowEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for create entry request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Creator user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	createdEntry, err := h.cashFlowService.CreateManualEntry(c.Request.Context(), req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to create ledger entry in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create entry"})
		return
	}

	logger.Info("Ledger entry created successfully", slog.String("entry_id", createdEntry.EntryID))
	c.JSON(http.StatusCreated, dto.ToCashFlowEntryResponse(createdEntry))
}

// deleteManualEntry godoc
// @Summary Delete a manual ledger entry
// @Description Removes a manual entry. Entries linked to a payment or expense are refused; they disappear with their source.
// @Tags cashflow
// @Produce  json
// @Param   id path string true "Entry ID to delete"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Entry not found"
// @Failure 409 {object} map[string]string "Entry is managed by its source"
// @Failure 500 {object} map[string]string "Failed to delete entry"
// @Security BearerAuth
// @Router /cashflow/{id} [delete]
func (h *cashFlowHandler) deleteManualEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entryID := c.Param("id")

	deleterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Deleter user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	err := h.cashFlowService.DeleteManualEntry(c.Request.Context(), entryID, deleterUserID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			logger.Warn("Ledger entry not found for deletion", slog.String("entry_id", entryID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Entry not found"})
		case errors.Is(err, apperrors.ErrConflict):
			logger.Warn("Ledger entry deletion blocked", slog.String("error", err.Error()))
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to delete ledger entry in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete entry"})
		}
		return
	}

	logger.Info("Ledger entry deleted successfully", slog.String("entry_id", entryID))
	c.Status(http.StatusNoContent)
}
