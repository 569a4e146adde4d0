package models

// Document maps one row of the documents table.
type Document struct {
	DocumentID string  `db:"document_id"`
	Name       string  `db:"name"`
	Category   string  `db:"category"`
	FileName   string  `db:"file_name"`
	MimeType   string  `db:"mime_type"`
	SizeBytes  int64   `db:"size_bytes"`
	ClientID   *string `db:"client_id"`
	EventID    *string `db:"event_id"`
	Notes      string  `db:"notes"`
	AuditFields
}
