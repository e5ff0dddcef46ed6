package handler

import (
	"time"

	"github.com/sandarbhasthana/ship-reporting-sub001/internal/domain/fleet"
)

// RegisterVesselRequest represents a request to register a vessel
type RegisterVesselRequest struct {
	OrganizationID string   `json:"organization_id" binding:"omitempty,uuid"`
	Name           string   `json:"name" binding:"required,min=1,max=200"`
	IMONumber      string   `json:"imo_number" binding:"required,imo"`
	Type           string   `json:"type" binding:"required,oneof=CARGO TANKER PASSENGER FISHING TUG OFFSHORE OTHER"`
	FlagState      string   `json:"flag_state" binding:"max=100"`
	GrossTonnage   *float64 `json:"gross_tonnage" binding:"omitempty,gt=0"`
	YearBuilt      int      `json:"year_built" binding:"omitempty,min=1850"`
}

// UpdateVesselRequest represents a request to update a vessel
type UpdateVesselRequest struct {
	Name         *string  `json:"name" binding:"omitempty,min=1,max=200"`
	Type         *string  `json:"type" binding:"omitempty,oneof=CARGO TANKER PASSENGER FISHING TUG OFFSHORE OTHER"`
	FlagState    *string  `json:"flag_state" binding:"omitempty,max=100"`
	GrossTonnage *float64 `json:"gross_tonnage" binding:"omitempty,gt=0"`
	YearBuilt    *int     `json:"year_built" binding:"omitempty,min=1850"`
}

// AssignCaptainRequest represents a request to assign a captain
type AssignCaptainRequest struct {
	CaptainID string `json:"captain_id" binding:"required,uuid"`
}

// ListVesselsRequest represents query filters for listing vessels
type ListVesselsRequest struct {
	Page            int    `form:"page" binding:"omitempty,min=1"`
	PageSize        int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	SortBy          string `form:"sort_by"`
	SortOrder       string `form:"sort_order" binding:"omitempty,oneof=asc desc"`
	Keyword         string `form:"keyword"`
	Type            string `form:"type" binding:"omitempty,oneof=CARGO TANKER PASSENGER FISHING TUG OFFSHORE OTHER"`
	IncludeInactive bool   `form:"include_inactive"`
}

// VesselResponse represents a vessel in API responses
type VesselResponse struct {
	ID             string    `json:"id"`
	OrganizationID string    `json:"organization_id"`
	Name           string    `json:"name"`
	IMONumber      string    `json:"imo_number"`
	Type           string    `json:"type"`
	FlagState      string    `json:"flag_state,omitempty"`
	GrossTonnage   string    `json:"gross_tonnage"`
	YearBuilt      int       `json:"year_built,omitempty"`
	CaptainID      *string   `json:"captain_id,omitempty"`
	Active         bool      `json:"active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func newVesselResponse(vessel *fleet.Vessel) VesselResponse {
	resp := VesselResponse{
		ID:             vessel.ID.String(),
		OrganizationID: vessel.OrganizationID.String(),
		Name:           vessel.Name,
		IMONumber:      vessel.IMONumber,
		Type:           string(vessel.Type),
		FlagState:      vessel.FlagState,
		GrossTonnage:   vessel.GrossTonnage.String(),
		YearBuilt:      vessel.YearBuilt,
		Active:         vessel.Active,
		CreatedAt:      vessel.CreatedAt,
		UpdatedAt:      vessel.UpdatedAt,
	}
	if vessel.CaptainID != nil {
		s := vessel.CaptainID.String()
		resp.CaptainID = &s
	}
	return resp
}

func newVesselResponses(vessels []*fleet.Vessel) []VesselResponse {
	out := make([]VesselResponse, 0, len(vessels))
	for _, vessel := range vessels {
		out = append(out, newVesselResponse(vessel))
	}
	return out
}
