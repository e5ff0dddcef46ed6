package fleet

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	identityapp "github.com/sandarbhasthana/ship-reporting-sub001/internal/application/identity"
	"github.com/sandarbhasthana/ship-reporting-sub001/internal/domain/fleet"
)

// Actor aliases the identity application actor so callers wire one type
// through all services
type Actor = identityapp.Actor

// RegisterVesselInput contains the input for registering a vessel
type RegisterVesselInput struct {
	Actor          Actor
	OrganizationID uuid.UUID
	Name           string
	IMONumber      string
	Type           fleet.VesselType
	FlagState      string
	GrossTonnage   *decimal.Decimal
	YearBuilt      int
}

// UpdateVesselInput contains the input for updating a vessel. Only fields
// present are changed.
type UpdateVesselInput struct {
	Actor        Actor
	VesselID     uuid.UUID
	Name         *string
	Type         *fleet.VesselType
	FlagState    *string
	GrossTonnage *decimal.Decimal
	YearBuilt    *int
}

// AssignCaptainInput contains the input for assigning a captain to a vessel
type AssignCaptainInput struct {
	Actor     Actor
	VesselID  uuid.UUID
	CaptainID uuid.UUID
}

// ListVesselsInput contains filters for listing vessels
type ListVesselsInput struct {
	OrganizationID  uuid.UUID
	Keyword         string
	Type            *fleet.VesselType
	IncludeInactive bool
	Page            int
	PageSize        int
	SortBy          string
	SortOrder       string
}

// ListVesselsResult contains one page of vessels
type ListVesselsResult struct {
	Vessels  []*fleet.Vessel
	Total    int64
	Page     int
	PageSize int
}
