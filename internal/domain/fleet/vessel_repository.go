package fleet

import (
	"context"

	"github.com/google/uuid"
)

// VesselRepository defines the interface for vessel persistence
type VesselRepository interface {
	// Create creates a new vessel
	Create(ctx context.Context, vessel *Vessel) error

	// Update updates an existing vessel
	Update(ctx context.Context, vessel *Vessel) error

	// FindByID finds a vessel by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Vessel, error)

	// FindByIMONumber finds a vessel by IMO number. IMO numbers are unique
	// platform-wide, so this lookup is not organization-scoped.
	FindByIMONumber(ctx context.Context, imoNumber string) (*Vessel, error)

	// FindAll returns vessels matching the filter with pagination
	FindAll(ctx context.Context, filter VesselFilter) ([]*Vessel, int64, error)

	// ExistsByIMONumber checks if an IMO number is already registered
	ExistsByIMONumber(ctx context.Context, imoNumber string) (bool, error)

	// Count returns the number of vessels matching the filter
	Count(ctx context.Context, filter VesselFilter) (int64, error)
}

// VesselFilter contains filter options for querying vessels
type VesselFilter struct {
	// Scope to one organization; nil means platform-wide (super admin only)
	OrganizationID *uuid.UUID

	// Search keyword for name or IMO number
	Keyword string

	// Filter by vessel type
	Type *VesselType

	// Restrict to one vessel (captain scope)
	VesselID *uuid.UUID

	// Soft-deleted vessels are excluded unless IncludeInactive is set
	IncludeInactive bool

	// Pagination
	Page     int
	PageSize int

	// Sorting
	SortBy    string
	SortOrder string // "asc" or "desc"
}

// NewVesselFilter creates a new VesselFilter with default values
func NewVesselFilter() VesselFilter {
	return VesselFilter{
		Page:      1,
		PageSize:  20,
		SortBy:    "created_at",
		SortOrder: "desc",
	}
}

// WithOrganization scopes the filter to one organization
func (f VesselFilter) WithOrganization(orgID uuid.UUID) VesselFilter {
	f.OrganizationID = &orgID
	return f
}

// WithKeyword sets the search keyword
func (f VesselFilter) WithKeyword(keyword string) VesselFilter {
	f.Keyword = keyword
	return f
}

// WithType sets the vessel type filter
func (f VesselFilter) WithType(vesselType VesselType) VesselFilter {
	f.Type = &vesselType
	return f
}

// WithVessel restricts results to a single vessel
func (f VesselFilter) WithVessel(vesselID uuid.UUID) VesselFilter {
	f.VesselID = &vesselID
	return f
}

// WithInactive includes soft-deleted vessels in results
func (f VesselFilter) WithInactive() VesselFilter {
	f.IncludeInactive = true
	return f
}

// WithPagination sets pagination parameters
func (f VesselFilter) WithPagination(page, pageSize int) VesselFilter {
	f.Page = page
	f.PageSize = pageSize
	return f
}

// WithSorting sets sorting parameters
func (f VesselFilter) WithSorting(sortBy, sortOrder string) VesselFilter {
	f.SortBy = sortBy
	f.SortOrder = sortOrder
	return f
}

// Offset returns the offset for pagination
func (f VesselFilter) Offset() int {
	if f.Page <= 0 {
		return 0
	}
	return (f.Page - 1) * f.PageSize
}

// Limit returns the limit for pagination
func (f VesselFilter) Limit() int {
	if f.PageSize <= 0 {
		return 20
	}
	if f.PageSize > 100 {
		return 100
	}
	return f.PageSize
}
