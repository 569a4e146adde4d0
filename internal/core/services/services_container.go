package services

import (
	portsrepo "github.com/buffetjuniors/buffet_management_app/internal/core/ports/repositories"
	portssvc "github.com/buffetjuniors/buffet_management_app/internal/core/ports/services"
	"github.com/buffetjuniors/buffet_management_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.User = NewUserService(repos.UserRepo)
	container.Client = NewClientService(repos.ClientRepo, repos.EventRepo)
	container.Event = NewEventService(repos.EventRepo, repos.ClientRepo)
	container.Payment = NewPaymentService(repos.PaymentRepo, repos.EventRepo)
	container.Expense = NewExpenseService(repos.ExpenseRepo)
	container.Document = NewDocumentService(repos.DocumentRepo, repos.ClientRepo, repos.EventRepo)
	container.CashFlow = NewCashFlowService(repos.CashFlowRepo)
	container.Reporting = NewReportingService(repos.ReportingRepo, cfg.DashboardCacheTTL)

	return container
}
