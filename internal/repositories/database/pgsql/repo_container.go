package pgsql

import (
	portsrepo "github.com/buffetjuniors/buffet_management_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	userRepo := newPgxUserRepository(dbPool)
	clientRepo := newPgxClientRepository(dbPool)
	eventRepo := newPgxEventRepository(dbPool)
	paymentRepo := newPgxPaymentRepository(dbPool)
	expenseRepo := newPgxExpenseRepository(dbPool)
	documentRepo := newPgxDocumentRepository(dbPool)
	cashFlowRepo := newPgxCashFlowRepository(dbPool)
	reportingRepo := newReportingRepository(dbPool)

	return portsrepo.RepositoryProvider{
		UserRepo:      userRepo,
		ClientRepo:    clientRepo,
		EventRepo:     eventRepo,
		PaymentRepo:   paymentRepo,
		ExpenseRepo:   expenseRepo,
		DocumentRepo:  documentRepo,
		CashFlowRepo:  cashFlowRepo,
		ReportingRepo: reportingRepo,
	}
}
