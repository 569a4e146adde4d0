package services

import (
	"context"

	"github.com/buffetjuniors/buffet_management_app/internal/core/domain"
	"github.com/buffetjuniors/buffet_management_app/internal/dto"
)

// DocumentReaderSvc defines read operations for document metadata
type DocumentReaderSvc interface {
	// GetDocumentByID retrieves a document by ID.
	GetDocumentByID(ctx context.Context, documentID string) (*domain.Document, error)

	// ListDocuments retrieves a filtered page of documents and the total match count.
	ListDocuments(ctx context.Context, params dto.ListDocumentsParams) ([]domain.Document, int64, error)
}

// DocumentWriterSvc defines write operations for document metadata. Client
// and event links are verified before they are stored.
type DocumentWriterSvc interface {
	// CreateDocument records metadata for a stored file.
	CreateDocument(ctx context.Context, req dto.CreateDocumentRequest, creatorUserID string) (*domain.Document, error)

	// UpdateDocument updates an existing document.
	UpdateDocument(ctx context.Context, documentID string, req dto.UpdateDocumentRequest, updaterUserID string) (*domain.Document, error)
}

// DocumentLifecycleSvc defines operations for removing documents
type DocumentLifecycleSvc interface {
	// DeleteDocument removes a document row.
	DeleteDocument(ctx context.Context, documentID string, deleterUserID string) error
}

// DocumentSvcFacade combines all document-related service interfaces
type DocumentSvcFacade interface {
	DocumentReaderSvc
	DocumentWriterSvc
	DocumentLifecycleSvc
}
