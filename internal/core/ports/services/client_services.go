package services

import (
	"context"

	"github.com/buffetjuniors/buffet_management_app/internal/core/domain"
	"github.com/buffetjuniors/buffet_management_app/internal/dto"
)

// ClientReaderSvc defines read operations for client data
type ClientReaderSvc interface {
	// GetClientByID retrieves a client by ID.
	GetClientByID(ctx context.Context, clientID string) (*domain.Client, error)

	// ListClients retrieves a filtered page of clients and the total match count.
	ListClients(ctx context.Context, params dto.ListClientsParams) ([]domain.Client, int64, error)
}

// ClientWriterSvc defines write operations for client data
type ClientWriterSvc interface {
	// CreateClient creates a new client. Email uniqueness is enforced.
	CreateClient(ctx context.Context, req dto.CreateClientRequest, creatorUserID string) (*domain.Client, error)

	// UpdateClient updates an existing client.
	UpdateClient(ctx context.Context, clientID string, req dto.UpdateClientRequest, updaterUserID string) (*domain.Client, error)
}

// ClientLifecycleSvc defines operations for managing client lifecycle
type ClientLifecycleSvc interface {
	// DeleteClient marks a client as deleted (soft delete). Clients that still
	// have events are not deletable.
	DeleteClient(ctx context.Context, clientID string, deleterUserID string) error
}

// ClientSvcFacade combines all client-related service interfaces
type ClientSvcFacade interface {
	ClientReaderSvc
	ClientWriterSvc
	ClientLifecycleSvc
}
