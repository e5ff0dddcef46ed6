package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sandarbhasthana/ship-reporting-sub001/internal/domain/audit"
	"github.com/sandarbhasthana/ship-reporting-sub001/internal/domain/shared"
	"github.com/sandarbhasthana/ship-reporting-sub001/internal/infrastructure/persistence/models"
	"github.com/sandarbhasthana/ship-reporting-sub001/internal/infrastructure/persistence/orgscope"
	"gorm.io/gorm"
)

// GormAuditLogRepository implements LogRepository using GORM.
// The audit log is append-only; there are no update or delete operations.
type GormAuditLogRepository struct {
	db *gorm.DB
}

// NewGormAuditLogRepository creates a new GormAuditLogRepository
func NewGormAuditLogRepository(db *gorm.DB) *GormAuditLogRepository {
	return &GormAuditLogRepository{db: db}
}

// Create appends a new audit log entry
func (r *GormAuditLogRepository) Create(ctx context.Context, log *audit.Log) error {
	model := models.AuditLogModelFromDomain(log)
	return r.db.WithContext(ctx).Create(model).Error
}

// FindByID finds a log entry by ID
func (r *GormAuditLogRepository) FindByID(ctx context.Context, id uuid.UUID) (*audit.Log, error) {
	var model models.AuditLogModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll returns log entries matching the filter with pagination
func (r *GormAuditLogRepository) FindAll(ctx context.Context, filter audit.LogFilter) ([]*audit.Log, int64, error) {
	var logModels []*models.AuditLogModel
	var total int64

	query := r.db.WithContext(ctx).Model(&models.AuditLogModel{})
	query = r.applyFilter(query, filter)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	sortBy := ValidateSortField(filter.SortBy, AuditLogSortFields, "created_at")
	sortOrder := ValidateSortOrder(filter.SortOrder)
	query = query.Order(sortBy + " " + sortOrder)

	query = query.Offset(filter.Offset()).Limit(filter.Limit())

	if err := query.Find(&logModels).Error; err != nil {
		return nil, 0, err
	}

	logs := make([]*audit.Log, len(logModels))
	for i, model := range logModels {
		logs[i] = model.ToDomain()
	}

	return logs, total, nil
}

// Count returns the number of log entries matching the filter
func (r *GormAuditLogRepository) Count(ctx context.Context, filter audit.LogFilter) (int64, error) {
	var count int64
	query := r.applyFilter(r.db.WithContext(ctx).Model(&models.AuditLogModel{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// applyFilter applies filter options to the query
func (r *GormAuditLogRepository) applyFilter(query *gorm.DB, filter audit.LogFilter) *gorm.DB {
	if filter.OrganizationID != nil {
		query = query.Scopes(orgscope.OrgScope(*filter.OrganizationID))
	}

	if filter.EntityType != "" {
		query = query.Where("entity_type = ?", filter.EntityType)
	}

	if filter.EntityID != nil {
		query = query.Where("entity_id = ?", *filter.EntityID)
	}

	if filter.ActorID != nil {
		query = query.Where("actor_id = ?", *filter.ActorID)
	}

	if filter.Action != nil {
		query = query.Where("action = ?", *filter.Action)
	}

	if filter.From != nil {
		query = query.Where("created_at >= ?", *filter.From)
	}

	if filter.To != nil {
		query = query.Where("created_at <= ?", *filter.To)
	}

	return query
}

// Ensure GormAuditLogRepository implements LogRepository
var _ audit.LogRepository = (*GormAuditLogRepository)(nil)
