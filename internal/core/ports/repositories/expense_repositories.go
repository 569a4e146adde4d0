package repositories

import (
	"context"
	"time"

	"github.com/buffetjuniors/buffet_management_app/internal/core/domain"
)

// ExpenseListFilter narrows and orders an expense listing.
type ExpenseListFilter struct {
	Category *domain.ExpenseCategory
	DateFrom *time.Time
	DateTo   *time.Time
	Search   string // matches description
	ListOptions
}

// ExpenseReader defines read operations for expense data
type ExpenseReader interface {
	// FindExpenseByID retrieves a specific expense by its ID.
	FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error)

	// ListExpenses retrieves a filtered page of expenses and the total match count.
	ListExpenses(ctx context.Context, filter ExpenseListFilter) ([]domain.Expense, int64, error)
}

// ExpenseWriter defines write operations for expense data. Every write keeps
// the mirrored expense-type cash flow entry in sync within one transaction.
type ExpenseWriter interface {
	// SaveExpense persists a new expense and its mirrored cash flow entry.
	SaveExpense(ctx context.Context, expense domain.Expense, entry domain.CashFlowEntry) error

	// UpdateExpense updates an expense and rewrites the amount, description and
	// date of its mirrored entry in the same transaction.
	UpdateExpense(ctx context.Context, expense domain.Expense) error
}

// ExpenseLifecycleManager defines operations for removing expenses
type ExpenseLifecycleManager interface {
	// DeleteExpenseWithEntry removes the expense and its mirrored cash flow
	// entry inside one transaction.
	DeleteExpenseWithEntry(ctx context.Context, expenseID string) error
}

// ExpenseRepositoryFacade combines all expense-related repository interfaces
type ExpenseRepositoryFacade interface {
	ExpenseReader
	ExpenseWriter
	ExpenseLifecycleManager
}
