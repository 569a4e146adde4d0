package domain

import "time"

// Client represents a customer who books events at the buffet.
type Client struct {
	ClientID string `json:"clientID"` // Primary Key (UUID)
	Name     string `json:"name"`
	Email    string `json:"email"` // Unique among non-deleted clients; may be empty
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Notes    string `json:"notes"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"` // Used for soft delete
}
