package repositories

import (
	"context"

	"github.com/buffetjuniors/buffet_management_app/internal/core/domain"
)

// DocumentListFilter narrows and orders a document listing.
type DocumentListFilter struct {
	Category *domain.DocumentCategory
	ClientID *string
	EventID  *string
	Search   string // matches name or file name
	ListOptions
}

// DocumentReader defines read operations for document metadata
type DocumentReader interface {
	// FindDocumentByID retrieves a specific document by its ID.
	FindDocumentByID(ctx context.Context, documentID string) (*domain.Document, error)

	// ListDocuments retrieves a filtered page of documents and the total match count.
	ListDocuments(ctx context.Context, filter DocumentListFilter) ([]domain.Document, int64, error)
}

// DocumentWriter defines write operations for document metadata
type DocumentWriter interface {
	// SaveDocument persists a new document.
	SaveDocument(ctx context.Context, document domain.Document) error

	// UpdateDocument updates an existing document's details.
	UpdateDocument(ctx context.Context, document domain.Document) error
}

// DocumentLifecycleManager defines operations for removing documents
type DocumentLifecycleManager interface {
	// DeleteDocument removes a document row.
	DeleteDocument(ctx context.Context, documentID string) error
}

// DocumentRepositoryFacade combines all document-related repository interfaces
type DocumentRepositoryFacade interface {
	DocumentReader
	DocumentWriter
	DocumentLifecycleManager
}
