package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/buffetjuniors/buffet_management_app/internal/apperrors"
	"github.com/buffetjuniors/buffet_management_app/internal/core/domain"
	portsrepo "github.com/buffetjuniors/buffet_management_app/internal/core/ports/repositories"
	portssvc "github.com/buffetjuniors/buffet_management_app/internal/core/ports/services"
	"github.com/buffetjuniors/buffet_management_app/internal/dto"
	"github.com/buffetjuniors/buffet_management_app/internal/utils"
)

// expenseService provides expense operations. Every expense is mirrored by
// one expense-type cash flow entry, written and kept in sync by the
// repository inside the same transaction as the expense row.
type expenseService struct {
	BaseService
	expenseRepo portsrepo.ExpenseRepositoryFacade
}

// NewExpenseService creates a new expense service.
func NewExpenseService(expenseRepo portsrepo.ExpenseRepositoryFacade) portssvc.ExpenseSvcFacade {
	return &expenseService{
		expenseRepo: expenseRepo,
	}
}

// Ensure expenseService implements the portssvc.ExpenseSvcFacade interface
var _ portssvc.ExpenseSvcFacade = (*expenseService)(nil)

// CreateExpense records a new operational cost and its mirrored ledger entry.
func (s *expenseService) CreateExpense(ctx context.Context, req dto.CreateExpenseRequest, creatorUserID string) (*domain.Expense, error) {
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}

	expenseDate, err := utils.ParseDateOnly(req.ExpenseDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid expense date: %v", apperrors.ErrValidation, err)
	}

	now := time.Now().UTC()
	expense := domain.Expense{
		ExpenseID:   uuid.NewString(),
		Description: req.Description,
		Category:    req.Category,
		Amount:      req.Amount,
		ExpenseDate: expenseDate,
		Notes:       req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	expenseID := expense.ExpenseID
	entry := domain.CashFlowEntry{
		EntryID:         uuid.NewString(),
		EntryType:       domain.EntryExpense,
		Amount:          expense.Amount,
		Description:     expense.Description,
		TransactionDate: expense.ExpenseDate,
		ExpenseID:       &expenseID,
		AuditFields:     expense.AuditFields,
	}

	if err := s.expenseRepo.SaveExpense(ctx, expense, entry); err != nil {
		s.LogError(ctx, err, "Failed to save new expense", slog.String("description", req.Description))
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}

	s.LogInfo(ctx, "Expense created",
		slog.String("expense_id", expense.ExpenseID),
		slog.String("category", string(expense.Category)))
	return &expense, nil
}

// GetExpenseByID retrieves an expense by ID.
func (s *expenseService) GetExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error) {
	expense, err := s.expenseRepo.FindExpenseByID(ctx, expenseID)
	if err != nil {
		return nil, fmt.Errorf("failed to get expense by ID: %w", err)
	}
	return expense, nil
}

// ListExpenses retrieves a filtered page of expenses and the total match count.
func (s *expenseService) ListExpenses(ctx context.Context, params dto.ListExpensesParams) ([]domain.Expense, int64, error) {
	params.Normalize()
	filter := portsrepo.ExpenseListFilter{
		Search: params.Search,
		ListOptions: portsrepo.ListOptions{
			Limit:     params.Limit,
			Offset:    params.Offset(),
			SortBy:    params.SortBy,
			SortOrder: portsrepo.SortOrder(params.SortOrder),
		},
	}
	if params.Category != "" {
		category := domain.ExpenseCategory(params.Category)
		filter.Category = &category
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

	expenses, total, err := s.expenseRepo.ListExpenses(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list expenses")
		return nil, 0, fmt.Errorf("failed to list expenses: %w", err)
	}
	return expenses, total, nil
}

// UpdateExpense updates an existing expense. The repository rewrites the
// mirrored entry's amount, description and date in the same transaction.
func (s *expenseService) UpdateExpense(ctx context.Context, expenseID string, req dto.UpdateExpenseRequest, updaterUserID string) (*domain.Expense, error) {
	expense, err := s.expenseRepo.FindExpenseByID(ctx, expenseID)
	if err != nil {
		return nil, fmt.Errorf("failed to find expense for update: %w", err)
	}

	if req.Amount != nil {
		if req.Amount.LessThanOrEqual(decimal.Zero) {
			return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
		}
		expense.Amount = *req.Amount
	}
	if req.Description != nil {
		expense.Description = *req.Description
	}
	if req.Category != nil {
		expense.Category = *req.Category
	}
	if req.ExpenseDate != nil {
		expenseDate, err := utils.ParseDateOnly(*req.ExpenseDate)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid expense date: %v", apperrors.ErrValidation, err)
		}
		expense.ExpenseDate = expenseDate
	}
	if req.Notes != nil {
		expense.Notes = *req.Notes
	}

	expense.LastUpdatedAt = time.Now().UTC()
	expense.LastUpdatedBy = updaterUserID

	if err := s.expenseRepo.UpdateExpense(ctx, *expense); err != nil {
		s.LogError(ctx, err, "Failed to update expense", slog.String("expense_id", expenseID))
		return nil, fmt.Errorf("failed to update expense: %w", err)
	}

	return expense, nil
}

// DeleteExpense removes the expense and its ledger entry in one transaction.
func (s *expenseService) DeleteExpense(ctx context.Context, expenseID string, deleterUserID string) error {
	if _, err := s.expenseRepo.FindExpenseByID(ctx, expenseID); err != nil {
		return fmt.Errorf("failed to find expense for deletion: %w", err)
	}

	if err := s.expenseRepo.DeleteExpenseWithEntry(ctx, expenseID); err != nil {
		s.LogError(ctx, err, "Failed to delete expense", slog.String("expense_id", expenseID))
		return fmt.Errorf("failed to delete expense: %w", err)
	}

	s.LogInfo(ctx, "Expense deleted", slog.String("expense_id", expenseID), slog.String("deleted_by", deleterUserID))
	return nil
}
