package dto

import (
	"time"

	"github.com/buffetjuniors/buffet_management_app/internal/core/domain"
)

// CreateDocumentRequest defines the metadata recorded for a stored file.
type CreateDocumentRequest struct {
	Name      string                  `json:"name" binding:"required"`
	Category  domain.DocumentCategory `json:"category" binding:"required,oneof=contract invoice receipt other"`
	FileName  string                  `json:"fileName" binding:"required"`
	MimeType  string                  `json:"mimeType"`
	SizeBytes int64                   `json:"sizeBytes" binding:"omitempty,min=0"`
	ClientID  *string                 `json:"clientID" binding:"omitempty,uuid"`
	EventID   *string                 `json:"eventID" binding:"omitempty,uuid"`
	Notes     string                  `json:"notes"`
}

// UpdateDocumentRequest defines the data allowed for updating a document.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateDocumentRequest struct {
	Name     *string                  `json:"name"`
	Category *domain.DocumentCategory `json:"category" binding:"omitempty,oneof=contract invoice receipt other"`
	ClientID *string                  `json:"clientID" binding:"omitempty,uuid"`
	EventID  *string                  `json:"eventID" binding:"omitempty,uuid"`
	Notes    *string                  `json:"notes"`
}

// ListDocumentsParams defines query parameters for listing documents.
type ListDocumentsParams struct {
	Category string `form:"category" binding:"omitempty,oneof=contract invoice receipt other"`
	ClientID string `form:"clientID" binding:"omitempty,uuid"`
	EventID  string `form:"eventID" binding:"omitempty,uuid"`
	Search   string `form:"search"`
	PageParams
}

// DocumentResponse defines the data returned for a document.
type DocumentResponse struct {
	DocumentID string                  `json:"documentID"`
	Name       string                  `json:"name"`
	Category   domain.DocumentCategory `json:"category"`
	FileName   string                  `json:"fileName"`
	MimeType   string                  `json:"mimeType"`
	SizeBytes  int64                   `json:"sizeBytes"`
	ClientID   *string                 `json:"clientID,omitempty"`
	EventID    *string                 `json:"eventID,omitempty"`
	Notes      string                  `json:"notes"`
	CreatedAt  time.Time               `json:"createdAt"`
}

// ListDocumentsResponse wraps one page of documents.
type ListDocumentsResponse struct {
	Data []DocumentResponse `json:"data"`
	Pagination
}

// ToDocumentResponse converts a domain.Document to DocumentResponse DTO
func ToDocumentResponse(doc *domain.Document) DocumentResponse {
	return DocumentResponse{
		DocumentID: doc.DocumentID,
		Name:       doc.Name,
		Category:   doc.Category,
		FileName:   doc.FileName,
		MimeType:   doc.MimeType,
		SizeBytes:  doc.SizeBytes,
		ClientID:   doc.ClientID,
		EventID:    doc.EventID,
		Notes:      doc.Notes,
		CreatedAt:  doc.CreatedAt,
	}
}

// ToListDocumentsResponse converts a page of domain documents to ListDocumentsResponse DTO
func ToListDocumentsResponse(docs []domain.Document, p Pagination) ListDocumentsResponse {
	data := make([]DocumentResponse, len(docs))
	for i, d := range docs {
		data[i] = ToDocumentResponse(&d)
	}
	return ListDocumentsResponse{Data: data, Pagination: p}
}
