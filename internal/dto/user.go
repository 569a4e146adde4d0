package dto

import (
	"time"

	"github.com/buffetjuniors/buffet_management_app/internal/core/domain"
)

// CreateUserRequest defines the data needed to create a user (admin only).
type CreateUserRequest struct {
	Username string          `json:"username" binding:"required,min=3,max=50"`
	Email    string          `json:"email" binding:"required,email"`
	Name     string          `json:"name" binding:"required"`
	Password string          `json:"password" binding:"required,min=8"`
	Role     domain.UserRole `json:"role" binding:"required,oneof=admin staff"`
}

// UpdateUserRequest defines the data allowed for updating a user.
// Using pointers to differentiate between omitted fields and zero-value fields.
type UpdateUserRequest struct {
	Email    *string          `json:"email" binding:"omitempty,email"`
	Name     *string          `json:"name"`
	Password *string          `json:"password" binding:"omitempty,min=8"`
	Role     *domain.UserRole `json:"role" binding:"omitempty,oneof=admin staff"`
}

// ListUsersParams defines query parameters for listing users.
type ListUsersParams struct {
	Search string `form:"search"`
	PageParams
}

// UserResponse defines the data returned for a user.
type UserResponse struct {
	UserID    string          `json:"userID"`
	Username  string          `json:"username"`
	Email     string          `json:"email"`
	Name      string          `json:"name"`
	Role      domain.UserRole `json:"role"`
	CreatedAt time.Time       `json:"createdAt"`
}

// ListUsersResponse wraps one page of users.
type ListUsersResponse struct {
	Data []UserResponse `json:"data"`
	Pagination
}

// ToUserResponse converts a domain.User to UserResponse DTO
func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		UserID:    user.UserID,
		Username:  user.Username,
		Email:     user.Email,
		Name:      user.Name,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
	}
}

// ToListUsersResponse converts a page of domain users to ListUsersResponse DTO
func ToListUsersResponse(users []domain.User, p Pagination) ListUsersResponse {
	data := make([]UserResponse, len(users))
	for i, u := range users {
		data[i] = ToUserResponse(&u)
	}
	return ListUsersResponse{Data: data, Pagination: p}
}
