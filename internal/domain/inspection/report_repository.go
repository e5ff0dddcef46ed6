package inspection

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ReportRepository defines the interface for inspection report persistence.
// Reports and their entries are saved and loaded as one unit.
type ReportRepository interface {
	// Create creates a new report with its entries
	Create(ctx context.Context, report *Report) error

	// Update updates a report and replaces its entries
	Update(ctx context.Context, report *Report) error

	// FindByID finds a report by ID with its entries loaded
	FindByID(ctx context.Context, id uuid.UUID) (*Report, error)

	// FindAll returns reports matching the filter with pagination.
	// Entries are not loaded for listings.
	FindAll(ctx context.Context, filter ReportFilter) ([]*Report, int64, error)

	// Count returns the number of reports matching the filter
	Count(ctx context.Context, filter ReportFilter) (int64, error)
}

// ReportFilter contains filter options for querying reports
type ReportFilter struct {
	// Scope to one organization; nil means platform-wide (super admin only)
	OrganizationID *uuid.UUID

	// Filter by vessel
	VesselID *uuid.UUID

	// Filter by inspector
	InspectorID *uuid.UUID

	// Filter by status
	Status *Status

	// Inspection date range
	DateFrom *time.Time
	DateTo   *time.Time

	// Search keyword for title or port
	Keyword string

	// Soft-deleted reports are excluded unless IncludeInactive is set
	IncludeInactive bool

	// Pagination
	Page     int
	PageSize int

	// Sorting
	SortBy    string
	SortOrder string // "asc" or "desc"
}

// NewReportFilter creates a new ReportFilter with default values
func NewReportFilter() ReportFilter {
	return ReportFilter{
		Page:      1,
		PageSize:  20,
		SortBy:    "inspection_date",
		SortOrder: "desc",
	}
}

// WithOrganization scopes the filter to one organization
func (f ReportFilter) WithOrganization(orgID uuid.UUID) ReportFilter {
	f.OrganizationID = &orgID
	return f
}

// WithVessel sets the vessel filter
func (f ReportFilter) WithVessel(vesselID uuid.UUID) ReportFilter {
	f.VesselID = &vesselID
	return f
}

// WithInspector sets the inspector filter
func (f ReportFilter) WithInspector(inspectorID uuid.UUID) ReportFilter {
	f.InspectorID = &inspectorID
	return f
}

// WithStatus sets the status filter
func (f ReportFilter) WithStatus(status Status) ReportFilter {
	f.Status = &status
	return f
}

// WithDateRange sets the inspection date range
func (f ReportFilter) WithDateRange(from, to time.Time) ReportFilter {
	if !from.IsZero() {
		f.DateFrom = &from
	}
	if !to.IsZero() {
		f.DateTo = &to
	}
	return f
}

// WithKeyword sets the search keyword
func (f ReportFilter) WithKeyword(keyword string) ReportFilter {
	f.Keyword = keyword
	return f
}

// WithInactive includes soft-deleted reports in results
func (f ReportFilter) WithInactive() ReportFilter {
	f.IncludeInactive = true
	return f
}

// WithPagination sets pagination parameters
func (f ReportFilter) WithPagination(page, pageSize int) ReportFilter {
	f.Page = page
	f.PageSize = pageSize
	return f
}

// WithSorting sets sorting parameters
func (f ReportFilter) WithSorting(sortBy, sortOrder string) ReportFilter {
	f.SortBy = sortBy
	f.SortOrder = sortOrder
	return f
}

// Offset returns the offset for pagination
func (f ReportFilter) Offset() int {
	if f.Page <= 0 {
		return 0
	}
	return (f.Page - 1) * f.PageSize
}

// Limit returns the limit for pagination
func (f ReportFilter) Limit() int {
	if f.PageSize <= 0 {
		return 20
	}
	if f.PageSize > 100 {
		return 100
	}
	return f.PageSize
}
