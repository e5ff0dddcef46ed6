package handler

import (
	"time"

	"github.com/sandarbhasthana/ship-reporting-sub001/internal/domain/identity"
)

// CreateOrganizationRequest represents a request to create an organization
type CreateOrganizationRequest struct {
	Name         string `json:"name" binding:"required,min=1,max=200"`
	ContactName  string `json:"contact_name" binding:"max=100"`
	ContactEmail string `json:"contact_email" binding:"omitempty,email,max=200"`
	ContactPhone string `json:"contact_phone" binding:"max=50"`
	Address      string `json:"address" binding:"max=500"`
}

// UpdateOrganizationRequest represents a request to update an organization
type UpdateOrganizationRequest struct {
	Name         *string `json:"name" binding:"omitempty,min=1,max=200"`
	ContactName  *string `json:"contact_name" binding:"omitempty,max=100"`
	ContactEmail *string `json:"contact_email" binding:"omitempty,email,max=200"`
	ContactPhone *string `json:"contact_phone" binding:"omitempty,max=50"`
	Address      *string `json:"address" binding:"omitempty,max=500"`
}

// ListOrganizationsRequest represents query filters for listing organizations
type ListOrganizationsRequest struct {
	Page            int    `form:"page" binding:"omitempty,min=1"`
	PageSize        int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	SortBy          string `form:"sort_by"`
	SortOrder       string `form:"sort_order" binding:"omitempty,oneof=asc desc"`
	Keyword         string `form:"keyword"`
	IncludeInactive bool   `form:"include_inactive"`
}

// OrganizationResponse represents an organization in API responses
type OrganizationResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	ContactName  string    `json:"contact_name,omitempty"`
	ContactEmail string    `json:"contact_email,omitempty"`
	ContactPhone string    `json:"contact_phone,omitempty"`
	Address      string    `json:"address,omitempty"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func newOrganizationResponse(org *identity.Organization) OrganizationResponse {
	return OrganizationResponse{
		ID:           org.ID.String(),
		Name:         org.Name,
		ContactName:  org.ContactName,
		ContactEmail: org.ContactEmail,
		ContactPhone: org.ContactPhone,
		Address:      org.Address,
		Active:       org.Active,
		CreatedAt:    org.CreatedAt,
		UpdatedAt:    org.UpdatedAt,
	}
}

func newOrganizationResponses(orgs []*identity.Organization) []OrganizationResponse {
	out := make([]OrganizationResponse, 0, len(orgs))
	for _, org := range orgs {
		out = append(out, newOrganizationResponse(org))
	}
	return out
}
