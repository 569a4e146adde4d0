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

// documentService manages document metadata. File content lives elsewhere;
// this service only tracks what was stored and who it belongs to.
type documentService struct {
	BaseService
	documentRepo portsrepo.DocumentRepositoryFacade
	clientRepo   portsrepo.ClientRepositoryFacade
	eventRepo    portsrepo.EventRepositoryFacade
}

// NewDocumentService creates a new document service.
func NewDocumentService(documentRepo portsrepo.DocumentRepositoryFacade, clientRepo portsrepo.ClientRepositoryFacade, eventRepo portsrepo.EventRepositoryFacade) portssvc.DocumentSvcFacade {
	return &documentService{
		documentRepo: documentRepo,
		clientRepo:   clientRepo,
		eventRepo:    eventRepo,
	}
}

// Ensure documentService implements the portssvc.DocumentSvcFacade interface
var _ portssvc.DocumentSvcFacade = (*documentService)(nil)

// verifyLinks checks that an optional client link and event link both point
// at live rows before they are stored.
func (s *documentService) verifyLinks(ctx context.Context, clientID, eventID *string) error {
	if clientID != nil {
		if _, err := s.clientRepo.FindClientByID(ctx, *clientID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return fmt.Errorf("%w: client %s does not exist", apperrors.ErrValidation, *clientID)
			}
			return fmt.Errorf("failed to verify client link: %w", err)
		}
	}
	if eventID != nil {
		if _, err := s.eventRepo.FindEventByID(ctx, *eventID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return fmt.Errorf("%w: event %s does not exist", apperrors.ErrValidation, *eventID)
			}
			return fmt.Errorf("failed to verify event link: %w", err)
		}
	}
	return nil
}

// CreateDocument records metadata for a stored file.
func (s *documentService) CreateDocument(ctx context.Context, req dto.CreateDocumentRequest, creatorUserID string) (*domain.Document, error) {
	if err := s.verifyLinks(ctx, req.ClientID, req.EventID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	document := domain.Document{
		DocumentID: uuid.NewString(),
		Name:       req.Name,
		Category:   req.Category,
		FileName:   req.FileName,
		MimeType:   req.MimeType,
		SizeBytes:  req.SizeBytes,
		ClientID:   req.ClientID,
		EventID:    req.EventID,
		Notes:      req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.documentRepo.SaveDocument(ctx, document); err != nil {
		s.LogError(ctx, err, "Failed to save new document", slog.String("name", req.Name))
		return nil, fmt.Errorf("failed to create document: %w", err)
	}

	s.LogInfo(ctx, "Document created", slog.String("document_id", document.DocumentID))
	return &document, nil
}

// GetDocumentByID retrieves a document by ID.
func (s *documentService) GetDocumentByID(ctx context.Context, documentID string) (*domain.Document, error) {
	document, err := s.documentRepo.FindDocumentByID(ctx, documentID)
	if err != nil {
		return nil, fmt.Errorf("failed to get document by ID: %w", err)
	}
	return document, nil
}

// ListDocuments retrieves a filtered page of documents and the total match count.
func (s *documentService) ListDocuments(ctx context.Context, params dto.ListDocumentsParams) ([]domain.Document, int64, error) {
	params.Normalize()
	filter := portsrepo.DocumentListFilter{
		Search: params.Search,
		ListOptions: portsrepo.ListOptions{
			Limit:     params.Limit,
			Offset:    params.Offset(),
			SortBy:    params.SortBy,
			SortOrder: portsrepo.SortOrder(params.SortOrder),
		},
	}
	if params.Category != "" {
		category := domain.DocumentCategory(params.Category)
		filter.Category = &category
	}
	if params.ClientID != "" {
		clientID := params.ClientID
		filter.ClientID = &clientID
	}
	if params.EventID != "" {
		eventID := params.EventID
		filter.EventID = &eventID
	}

	documents, total, err := s.documentRepo.ListDocuments(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list documents")
		return nil, 0, fmt.Errorf("failed to list documents: %w", err)
	}
	return documents, total, nil
}

// UpdateDocument updates an existing document.
func (s *documentService) UpdateDocument(ctx context.Context, documentID string, req dto.UpdateDocumentRequest, updaterUserID string) (*domain.Document, error) {
	document, err := s.documentRepo.FindDocumentByID(ctx, documentID)
	if err != nil {
		return nil, fmt.Errorf("failed to find document for update: %w", err)
	}

	if err := s.verifyLinks(ctx, req.ClientID, req.EventID); err != nil {
		return nil, err
	}

	if req.Name != nil {
		document.Name = *req.Name
	}
	if req.Category != nil {
		document.Category = *req.Category
	}
	if req.ClientID != nil {
		document.ClientID = req.ClientID
	}
	if req.EventID != nil {
		document.EventID = req.EventID
	}
	if req.Notes != nil {
		document.Notes = *req.Notes
	}

	document.LastUpdatedAt = time.Now().UTC()
	document.LastUpdatedBy = updaterUserID

	if err := s.documentRepo.UpdateDocument(ctx, *document); err != nil {
		s.LogError(ctx, err, "Failed to update document", slog.String("document_id", documentID))
		return nil, fmt.Errorf("failed to update document: %w", err)
	}

	return document, nil
}

// DeleteDocument removes a document row.
func (s *documentService) DeleteDocument(ctx context.Context, documentID string, deleterUserID string) error {
	if _, err := s.documentRepo.FindDocumentByID(ctx, documentID); err != nil {
		return fmt.Errorf("failed to find document for deletion: %w", err)
	}

	if err := s.documentRepo.DeleteDocument(ctx, documentID); err != nil {
		s.LogError(ctx, err, "Failed to delete document", slog.String("document_id", documentID))
		return fmt.Errorf("failed to delete document: %w", err)
	}

	s.LogInfo(ctx, "Document deleted", slog.String("document_id", documentID), slog.String("deleted_by", deleterUserID))
	return nil
}
