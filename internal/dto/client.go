package dto

import (
	"time"

	"github.com/buffetjuniors/buffet_management_app/internal/core/domain"
)

// CreateClientRequest defines the data needed to create a new client.
type CreateClientRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"omitempty,email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Notes   string `json:"notes"`
}

// UpdateClientRequest defines the data allowed for updating a client.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateClientRequest struct {
	Name    *string `json:"name"`
	Email   *string `json:"email" binding:"omitempty,email"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
	Notes   *string `json:"notes"`
}

// ListClientsParams defines query parameters for listing clients.
type ListClientsParams struct {
	Search string `form:"search"`
	PageParams
}

// ClientResponse defines the data returned for a client.
type ClientResponse struct {
	ClientID      string    `json:"clientID"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	Address       string    `json:"address"`
	Notes         string    `json:"notes"`
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// ListClientsResponse wraps one page of clients.
type ListClientsResponse struct {
	Data []ClientResponse `json:"data"`
	Pagination
}

// ToClientResponse converts a domain.Client to ClientResponse DTO
func ToClientResponse(client *domain.Client) ClientResponse {
	return ClientResponse{
		ClientID:      client.ClientID,
		Name:          client.Name,
		Email:         client.Email,
		Phone:         client.Phone,
		Address:       client.Address,
		Notes:         client.Notes,
		CreatedAt:     client.CreatedAt,
		LastUpdatedAt: client.LastUpdatedAt,
	}
}

// ToListClientsResponse converts a page of domain clients to ListClientsResponse DTO
func ToListClientsResponse(clients []domain.Client, p Pagination) ListClientsResponse {
	data := make([]ClientResponse, len(clients))
	for i, c := range clients {
		data[i] = ToClientResponse(&c)
	}
	return ListClientsResponse{Data: data, Pagination: p}
}
