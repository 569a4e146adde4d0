package models

import "time"

// Client maps one row of the clients table.
type Client struct {
	ClientID string `db:"client_id"`
	Name     string `db:"name"`
	Email    string `db:"email"`
	Phone    string `db:"phone"`
	Address  string `db:"address"`
	Notes    string `db:"notes"`
	AuditFields
	DeletedAt *time.Time `db:"deleted_at"`
}
