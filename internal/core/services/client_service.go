package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/buffetjuniors/buffet_management_app/internal/apperrors"
	"github.com/buffetjuniors/buffet_management_app/internal/core/domain"
	portsrepo "github.com/buffetjuniors/buffet_management_app/internal/core/ports/repositories"
	portssvc "github.com/buffetjuniors/buffet_management_app/internal/core/ports/services"
	"github.com/buffetjuniors/buffet_management_app/internal/dto"
)

// clientService provides client management operations.
type clientService struct {
	BaseService
	clientRepo portsrepo.ClientRepositoryFacade
	eventRepo  portsrepo.EventRepositoryFacade
}

// NewClientService creates a new client service.
func NewClientService(clientRepo portsrepo.ClientRepositoryFacade, eventRepo portsrepo.EventRepositoryFacade) portssvc.ClientSvcFacade {
	return &clientService{
		clientRepo: clientRepo,
		eventRepo:  eventRepo,
	}
}

// Ensure clientService implements the portssvc.ClientSvcFacade interface
var _ portssvc.ClientSvcFacade = (*clientService)(nil)

// ensureEmailFree rejects an email already held by another live client.
// Empty emails are allowed and never collide.
func (s *clientService) ensureEmailFree(ctx context.Context, email, ownClientID string) error {
	if email == "" {
		return nil
	}
	existing, err := s.clientRepo.FindClientByEmail(ctx, email)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return fmt.Errorf("failed to check client email availability: %w", err)
	}
	if existing != nil && existing.ClientID != ownClientID {
		return fmt.Errorf("%w: a client with email %s already exists", apperrors.ErrDuplicate, email)
	}
	return nil
}

// CreateClient creates a new client.
func (s *clientService) CreateClient(ctx context.Context, req dto.CreateClientRequest, creatorUserID string) (*domain.Client, error) {
	if err := s.ensureEmailFree(ctx, req.Email, ""); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	client := domain.Client{
		ClientID: uuid.NewString(),
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Address:  req.Address,
		Notes:    req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.clientRepo.SaveClient(ctx, client); err != nil {
		s.LogError(ctx, err, "Failed to save new client", slog.String("name", req.Name))
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	s.LogInfo(ctx, "Client created", slog.String("client_id", client.ClientID))
	return &client, nil
}

// GetClientByID retrieves a client by ID.
func (s *clientService) GetClientByID(ctx context.Context, clientID string) (*domain.Client, error) {
	client, err := s.clientRepo.FindClientByID(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to get client by ID: %w", err)
	}
	return client, nil
}

// ListClients retrieves a filtered page of clients and the total match count.
func (s *clientService) ListClients(ctx context.Context, params dto.ListClientsParams) ([]domain.Client, int64, error) {
	params.Normalize()
	filter := portsrepo.ClientListFilter{
		Search: params.Search,
		ListOptions: portsrepo.ListOptions{
			Limit:     params.Limit,
			Offset:    params.Offset(),
			SortBy:    params.SortBy,
			SortOrder: portsrepo.SortOrder(params.SortOrder),
		},
	}

	clients, total, err := s.clientRepo.ListClients(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list clients")
		return nil, 0, fmt.Errorf("failed to list clients: %w", err)
	}
	return clients, total, nil
}

// UpdateClient updates an existing client.
func (s *clientService) UpdateClient(ctx context.Context, clientID string, req dto.UpdateClientRequest, updaterUserID string) (*domain.Client, error) {
	client, err := s.clientRepo.FindClientByID(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to find client for update: %w", err)
	}

	if req.Email != nil && *req.Email != client.Email {
		if err := s.ensureEmailFree(ctx, *req.Email, clientID); err != nil {
			return nil, err
		}
		client.Email = *req.Email
	}
	if req.Name != nil {
		client.Name = *req.Name
	}
	if req.Phone != nil {
		client.Phone = *req.Phone
	}
	if req.Address != nil {
		client.Address = *req.Address
	}
	if req.Notes != nil {
		client.Notes = *req.Notes
	}

	client.LastUpdatedAt = time.Now().UTC()
	client.LastUpdatedBy = updaterUserID

	if err := s.clientRepo.UpdateClient(ctx, *client); err != nil {
		s.LogError(ctx, err, "Failed to update client", slog.String("client_id", clientID))
		return nil, fmt.Errorf("failed to update client: %w", err)
	}

	return client, nil
}

// DeleteClient marks a client as deleted. Clients that still have events,
// whatever their status, cannot be removed.
func (s *clientService) DeleteClient(ctx context.Context, clientID string, deleterUserID string) error {
	if _, err := s.clientRepo.FindClientByID(ctx, clientID); err != nil {
		return fmt.Errorf("failed to find client for deletion: %w", err)
	}

	count, err := s.eventRepo.CountEventsByClient(ctx, clientID)
	if err != nil {
		s.LogError(ctx, err, "Failed to count events for client deletion", slog.String("client_id", clientID))
		return fmt.Errorf("failed to count client events: %w", err)
	}
	if count > 0 {
		return fmt.Errorf("%w: client has %d events and cannot be deleted", apperrors.ErrConflict, count)
	}

	now := time.Now().UTC()
	if err := s.clientRepo.MarkClientDeleted(ctx, clientID, now, deleterUserID); err != nil {
		s.LogError(ctx, err, "Failed to mark client deleted", slog.String("client_id", clientID))
		return fmt.Errorf("failed to delete client: %w", err)
	}

	s.LogInfo(ctx, "Client deleted", slog.String("client_id", clientID), slog.String("deleted_by", deleterUserID))
	return nil
}
