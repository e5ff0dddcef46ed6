package audit

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sandarbhasthana/ship-reporting-sub001/internal/domain/audit"
	"github.com/sandarbhasthana/ship-reporting-sub001/internal/domain/shared"
)

// QueryService reads the audit trail. The trail is append-only, so this
// service only exposes lookups.
type QueryService struct {
	logRepo audit.LogRepository
	logger  *zap.Logger
}

// NewQueryService creates a new audit query service
func NewQueryService(logRepo audit.LogRepository, logger *zap.Logger) *QueryService {
	return &QueryService{
		logRepo: logRepo,
		logger:  logger,
	}
}

// ListLogsInput contains filters for listing audit log entries. A nil
// OrganizationID lists platform-wide; callers must restrict it to platform
// operators.
type ListLogsInput struct {
	OrganizationID *uuid.UUID
	EntityType     string
	EntityID       *uuid.UUID
	ActorID        *uuid.UUID
	Action         string
	From           *time.Time
	To             *time.Time
	Page           int
	PageSize       int
	SortBy         string
	SortOrder      string
}

// ListLogsResult contains one page of audit log entries
type ListLogsResult struct {
	Logs     []*audit.Log
	Total    int64
	Page     int
	PageSize int
}

// ListLogs returns audit log entries matching the filters
func (s *QueryService) ListLogs(ctx context.Context, input ListLogsInput) (*ListLogsResult, error) {
	filter := audit.NewLogFilter()
	if input.OrganizationID != nil {
		filter = filter.WithOrganization(*input.OrganizationID)
	}

	if input.EntityType != "" {
		filter = filter.WithEntity(input.EntityType, input.EntityID)
	}
	if input.ActorID != nil {
		filter = filter.WithActor(*input.ActorID)
	}
	if input.Action != "" {
		action := audit.Action(input.Action)
		if !action.IsValid() {
			return nil, shared.NewDomainError("INVALID_ACTION", "Unknown audit action")
		}
		filter = filter.WithAction(action)
	}
	if input.From != nil || input.To != nil {
		var from, to time.Time
		if input.From != nil {
			from = *input.From
		}
		if input.To != nil {
			to = *input.To
		}
		filter = filter.WithTimeRange(from, to)
	}
	if input.Page > 0 {
		filter = filter.WithPagination(input.Page, input.PageSize)
	}
	if input.SortBy != "" {
		filter = filter.WithSorting(input.SortBy, input.SortOrder)
	}

	logs, total, err := s.logRepo.FindAll(ctx, filter)
	if err != nil {
		s.logger.Error("Failed to list audit logs", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to list audit logs")
	}

	return &ListLogsResult{
		Logs:     logs,
		Total:    total,
		Page:     filter.Page,
		PageSize: filter.Limit(),
	}, nil
}

// GetLog returns a single audit log entry. A nil organization scope reads
// platform-wide; callers must restrict it to platform operators.
func (s *QueryService) GetLog(ctx context.Context, orgScope *uuid.UUID, logID uuid.UUID) (*audit.Log, error) {
	log, err := s.logRepo.FindByID(ctx, logID)
	if err != nil {
		return nil, shared.ErrNotFound
	}

	// Cross-organization access is refused outright
	if orgScope != nil && log.OrganizationID != *orgScope {
		return nil, shared.ErrForbidden
	}

	return log, nil
}
