package audit

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// LogRepository defines the interface for audit log persistence.
// The log is append-only: there is deliberately no update or delete.
type LogRepository interface {
	// Create appends a new audit log entry
	Create(ctx context.Context, log *Log) error

	// FindByID finds a log entry by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Log, error)

	// FindAll returns log entries matching the filter with pagination
	FindAll(ctx context.Context, filter LogFilter) ([]*Log, int64, error)

	// Count returns the number of log entries matching the filter
	Count(ctx context.Context, filter LogFilter) (int64, error)
}

// LogFilter contains filter options for querying audit logs
type LogFilter struct {
	// Scope to one organization; nil means platform-wide (super admin only)
	OrganizationID *uuid.UUID

	// Filter by entity
	EntityType string
	EntityID   *uuid.UUID

	// Filter by actor
	ActorID *uuid.UUID

	// Filter by action
	Action *Action

	// Creation time range
	From *time.Time
	To   *time.Time

	// Pagination
	Page     int
	PageSize int

	// Sorting
	SortBy    string
	SortOrder string // "asc" or "desc"
}

// NewLogFilter creates a new LogFilter with default values
func NewLogFilter() LogFilter {
	return LogFilter{
		Page:      1,
		PageSize:  20,
		SortBy:    "created_at",
		SortOrder: "desc",
	}
}

// WithOrganization scopes the filter to one organization
func (f LogFilter) WithOrganization(orgID uuid.UUID) LogFilter {
	f.OrganizationID = &orgID
	return f
}

// WithEntity filters by entity type and optionally a specific entity
func (f LogFilter) WithEntity(entityType string, entityID *uuid.UUID) LogFilter {
	f.EntityType = entityType
	f.EntityID = entityID
	return f
}

// WithActor filters by the acting user
func (f LogFilter) WithActor(actorID uuid.UUID) LogFilter {
	f.ActorID = &actorID
	return f
}

// WithAction filters by action
func (f LogFilter) WithAction(action Action) LogFilter {
	f.Action = &action
	return f
}

// WithTimeRange filters by creation time
func (f LogFilter) WithTimeRange(from, to time.Time) LogFilter {
	if !from.IsZero() {
		f.From = &from
	}
	if !to.IsZero() {
		f.To = &to
	}
	return f
}

// WithPagination sets pagination parameters
func (f LogFilter) WithPagination(page, pageSize int) LogFilter {
	f.Page = page
	f.PageSize = pageSize
	return f
}

// WithSorting sets sorting parameters
func (f LogFilter) WithSorting(sortBy, sortOrder string) LogFilter {
	f.SortBy = sortBy
	f.SortOrder = sortOrder
	return f
}

// Offset returns the offset for pagination
func (f LogFilter) Offset() int {
	if f.Page <= 0 {
		return 0
	}
	return (f.Page - 1) * f.PageSize
}

// Limit returns the limit for pagination
func (f LogFilter) Limit() int {
	if f.PageSize <= 0 {
		return 20
	}
	if f.PageSize > 100 {
		return 100
	}
	return f.PageSize
}
