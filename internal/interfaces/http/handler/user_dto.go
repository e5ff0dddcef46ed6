package handler

import (
	"time"

	"github.com/sandarbhasthana/ship-reporting-sub001/internal/domain/identity"
)

// CreateUserRequest represents a request to create a user
type CreateUserRequest struct {
	OrganizationID string  `json:"organization_id" binding:"omitempty,uuid"`
	Email          string  `json:"email" binding:"required,email,max=200"`
	Password       string  `json:"password" binding:"required,min=8"`
	DisplayName    string  `json:"display_name" binding:"max=100"`
	Role           string  `json:"role" binding:"required,oneof=SUPER_ADMIN ADMIN CAPTAIN"`
	VesselID       *string `json:"vessel_id" binding:"omitempty,uuid"`
}

// UpdateUserRequest represents a request to update a user's profile
type UpdateUserRequest struct {
	Email       *string `json:"email" binding:"omitempty,email,max=200"`
	DisplayName *string `json:"display_name" binding:"omitempty,max=100"`
}

// ChangeUserRoleRequest represents a request to change a user's role
type ChangeUserRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=SUPER_ADMIN ADMIN CAPTAIN"`
}

// AssignVesselRequest represents a request to assign a captain to a vessel
type AssignVesselRequest struct {
	VesselID string `json:"vessel_id" binding:"required,uuid"`
}

// ResetPasswordRequest represents an administrative password reset
type ResetPasswordRequest struct {
	NewPassword string `json:"new_password" binding:"required,min=8"`
}

// ListUsersRequest represents query filters for listing users
type ListUsersRequest struct {
	Page            int    `form:"page" binding:"omitempty,min=1"`
	PageSize        int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	SortBy          string `form:"sort_by"`
	SortOrder       string `form:"sort_order" binding:"omitempty,oneof=asc desc"`
	Keyword         string `form:"keyword"`
	Role            string `form:"role" binding:"omitempty,oneof=SUPER_ADMIN ADMIN CAPTAIN"`
	IncludeInactive bool   `form:"include_inactive"`
}

// UserResponse represents a user in API responses
type UserResponse struct {
	ID             string     `json:"id"`
	OrganizationID string     `json:"organization_id"`
	Email          string     `json:"email"`
	DisplayName    string     `json:"display_name,omitempty"`
	Role           string     `json:"role"`
	VesselID       *string    `json:"vessel_id,omitempty"`
	Active         bool       `json:"active"`
	Locked         bool       `json:"locked"`
	LastLoginAt    *time.Time `json:"last_login_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

func newUserResponse(user *identity.User) UserResponse {
	resp := UserResponse{
		ID:             user.ID.String(),
		OrganizationID: user.OrganizationID.String(),
		Email:          user.Email,
		DisplayName:    user.DisplayName,
		Role:           string(user.Role),
		Active:         user.Active,
		Locked:         user.IsLocked(),
		LastLoginAt:    user.LastLoginAt,
		CreatedAt:      user.CreatedAt,
		UpdatedAt:      user.UpdatedAt,
	}
	if user.VesselID != nil {
		s := user.VesselID.String()
		resp.VesselID = &s
	}
	return resp
}

func newUserResponses(users []*identity.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, user := range users {
		out = append(out, newUserResponse(user))
	}
	return out
}
