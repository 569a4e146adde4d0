package domain

// DocumentCategory classifies stored document metadata.
type DocumentCategory string

const (
	DocContract DocumentCategory = "contract"
	DocInvoice  DocumentCategory = "invoice"
	DocReceipt  DocumentCategory = "receipt"
	DocOther    DocumentCategory = "other"
)

// Document represents metadata for a file kept outside the application,
// optionally linked to a client and/or an event. Binary content is not managed here.
type Document struct {
	DocumentID string           `json:"documentID"` // Primary Key (UUID)
	Name       string           `json:"name"`
	Category   DocumentCategory `json:"category"`
	FileName   string           `json:"fileName"`
	MimeType   string           `json:"mimeType"`
	SizeBytes  int64            `json:"sizeBytes"`
	ClientID   *string          `json:"clientID,omitempty"` // Nullable FK -> Client.clientID
	EventID    *string          `json:"eventID,omitempty"`  // Nullable FK -> Event.eventID
	Notes      string           `json:"notes"`
	AuditFields
}
