package services

import (
	"context"

	"github.com/buffetjuniors/buffet_management_app/internal/core/domain"
	"github.com/buffetjuniors/buffet_management_app/internal/dto"
)

// ExpenseReaderSvc defines read operations for expense data
type ExpenseReaderSvc interface {
	// GetExpenseByID retrieves an expense by ID.
	GetExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error)

	// ListExpenses retrieves a filtered page of expenses and the total match count.
	ListExpenses(ctx context.Context, params dto.ListExpensesParams) ([]domain.Expense, int64, error)
}

// ExpenseWriterSvc defines write operations for expense data. Every write
// keeps the mirrored expense-type ledger entry in sync transactionally.
type ExpenseWriterSvc interface {
	// CreateExpense records a new operational cost.
	CreateExpense(ctx context.Context, req dto.CreateExpenseRequest, creatorUserID string) (*domain.Expense, error)

	// UpdateExpense updates an existing expense.
	UpdateExpense(ctx context.Context, expenseID string, req dto.UpdateExpenseRequest, updaterUserID string) (*domain.Expense, error)
}

// ExpenseLifecycleSvc defines operations for removing expenses
type ExpenseLifecycleSvc interface {
	// DeleteExpense removes the expense and its ledger entry in one transaction.
	DeleteExpense(ctx context.Context, expenseID string, deleterUserID string) error
}

// ExpenseSvcFacade combines all expense-related service interfaces
type ExpenseSvcFacade interface {
	ExpenseReaderSvc
	ExpenseWriterSvc
	ExpenseLifecycleSvc
}
