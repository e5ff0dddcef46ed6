package identity

import (
	"context"

	"github.com/google/uuid"
)

// OrganizationRepository defines the interface for organization persistence
type OrganizationRepository interface {
	// Create creates a new organization
	Create(ctx context.Context, org *Organization) error

	// Update updates an existing organization
	Update(ctx context.Context, org *Organization) error

	// FindByID finds an organization by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Organization, error)

	// FindByName finds an organization by exact name
	FindByName(ctx context.Context, name string) (*Organization, error)

	// FindAll returns organizations matching the filter with pagination
	FindAll(ctx context.Context, filter OrganizationFilter) ([]*Organization, int64, error)

	// ExistsByName checks if an organization name already exists
	ExistsByName(ctx context.Context, name string) (bool, error)

	// Count returns the number of organizations matching the filter
	Count(ctx context.Context, filter OrganizationFilter) (int64, error)
}

// OrganizationFilter contains filter options for querying organizations
type OrganizationFilter struct {
	// Search keyword for name or contact name
	Keyword string

	// Soft-deleted organizations are excluded unless IncludeInactive is set
	IncludeInactive bool

	// Pagination
	Page     int
	PageSize int

	// Sorting
	SortBy    string
	SortOrder string // "asc" or "desc"
}

// NewOrganizationFilter creates a new OrganizationFilter with default values
func NewOrganizationFilter() OrganizationFilter {
	return OrganizationFilter{
		Page:      1,
		PageSize:  20,
		SortBy:    "created_at",
		SortOrder: "desc",
	}
}

// WithKeyword sets the search keyword
func (f OrganizationFilter) WithKeyword(keyword string) OrganizationFilter {
	f.Keyword = keyword
	return f
}

// WithInactive includes soft-deleted organizations in results
func (f OrganizationFilter) WithInactive() OrganizationFilter {
	f.IncludeInactive = true
	return f
}

// WithPagination sets pagination parameters
func (f OrganizationFilter) WithPagination(page, pageSize int) OrganizationFilter {
	f.Page = page
	f.PageSize = pageSize
	return f
}

// WithSorting sets sorting parameters
func (f OrganizationFilter) WithSorting(sortBy, sortOrder string) OrganizationFilter {
	f.SortBy = sortBy
	f.SortOrder = sortOrder
	return f
}

// Offset returns the offset for pagination
func (f OrganizationFilter) Offset() int {
	if f.Page <= 0 {
		return 0
	}
	return (f.Page - 1) * f.PageSize
}

// Limit returns the limit for pagination
func (f OrganizationFilter) Limit() int {
	if f.PageSize <= 0 {
		return 20
	}
	if f.PageSize > 100 {
		return 100
	}
	return f.PageSize
}
