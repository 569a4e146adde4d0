package repositories

import (
	"context"
	"time"

	"github.com/buffetjuniors/buffet_management_app/internal/core/domain"
)

// ClientListFilter narrows and orders a client listing.
type ClientListFilter struct {
	Search string // matches name, email or phone
	ListOptions
}

// ClientReader defines read operations for client data
type ClientReader interface {
	// FindClientByID retrieves a specific client by their ID.
	FindClientByID(ctx context.Context, clientID string) (*domain.Client, error)

	// FindClientByEmail retrieves a non-deleted client by email.
	FindClientByEmail(ctx context.Context, email string) (*domain.Client, error)

	// ListClients retrieves a filtered page of clients and the total match count.
	ListClients(ctx context.Context, filter ClientListFilter) ([]domain.Client, int64, error)
}

// ClientWriter defines write operations for client data
type ClientWriter interface {
	// SaveClient persists a new client.
	SaveClient(ctx context.Context, client domain.Client) error

	// UpdateClient updates an existing client's details.
	UpdateClient(ctx context.Context, client domain.Client) error
}

// ClientLifecycleManager defines operations for managing client lifecycle
type ClientLifecycleManager interface {
	// MarkClientDeleted marks a client as deleted (soft delete).
	MarkClientDeleted(ctx context.Context, clientID string, deletedAt time.Time, deletedBy string) error
}

// ClientRepositoryFacade combines all client-related repository interfaces
type ClientRepositoryFacade interface {
	ClientReader
	ClientWriter
	ClientLifecycleManager
}
