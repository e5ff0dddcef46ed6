package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sandarbhasthana/ship-reporting-sub001/internal/domain/fleet"
	"github.com/sandarbhasthana/ship-reporting-sub001/internal/domain/shared"
	"github.com/sandarbhasthana/ship-reporting-sub001/internal/infrastructure/persistence/models"
	"github.com/sandarbhasthana/ship-reporting-sub001/internal/infrastructure/persistence/orgscope"
	"gorm.io/gorm"
)

// GormVesselRepository implements VesselRepository using GORM
type GormVesselRepository struct {
	db *gorm.DB
}

// NewGormVesselRepository creates a new GormVesselRepository
func NewGormVesselRepository(db *gorm.DB) *GormVesselRepository {
	return &GormVesselRepository{db: db}
}

// Create creates a new vessel
func (r *GormVesselRepository) Create(ctx context.Context, vessel *fleet.Vessel) error {
	model := models.VesselModelFromDomain(vessel)
	return r.db.WithContext(ctx).Create(model).Error
}

// Update updates an existing vessel
func (r *GormVesselRepository) Update(ctx context.Context, vessel *fleet.Vessel) error {
	model := models.VesselModelFromDomain(vessel)
	result := r.db.WithContext(ctx).Save(model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// FindByID finds a vessel by ID
func (r *GormVesselRepository) FindByID(ctx context.Context, id uuid.UUID) (*fleet.Vessel, error) {
	var model models.VesselModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByIMONumber finds a vessel by IMO number. IMO numbers are unique
// platform-wide, so this lookup is not organization-scoped.
func (r *GormVesselRepository) FindByIMONumber(ctx context.Context, imoNumber string) (*fleet.Vessel, error) {
	if imoNumber == "" {
		return nil, shared.ErrNotFound
	}
	var model models.VesselModel
	if err := r.db.WithContext(ctx).
		Where("imo_number = ?", imoNumber).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll returns vessels matching the filter with pagination
func (r *GormVesselRepository) FindAll(ctx context.Context, filter fleet.VesselFilter) ([]*fleet.Vessel, int64, error) {
	var vesselModels []*models.VesselModel
	var total int64

	query := r.db.WithContext(ctx).Model(&models.VesselModel{})
	query = r.applyFilter(query, filter)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	sortBy := ValidateSortField(filter.SortBy, VesselSortFields, "created_at")
	sortOrder := ValidateSortOrder(filter.SortOrder)
	query = query.Order(sortBy + " " + sortOrder)

	query = query.Offset(filter.Offset()).Limit(filter.Limit())

	if err := query.Find(&vesselModels).Error; err != nil {
		return nil, 0, err
	}

	vessels := make([]*fleet.Vessel, len(vesselModels))
	for i, model := range vesselModels {
		vessels[i] = model.ToDomain()
	}

	return vessels, total, nil
}

// ExistsByIMONumber checks if an IMO number is already registered
func (r *GormVesselRepository) ExistsByIMONumber(ctx context.Context, imoNumber string) (bool, error) {
	if imoNumber == "" {
		return false, nil
	}
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.VesselModel{}).
		Where("imo_number = ?", imoNumber).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Count returns the number of vessels matching the filter
func (r *GormVesselRepository) Count(ctx context.Context, filter fleet.VesselFilter) (int64, error) {
	var count int64
	query := r.applyFilter(r.db.WithContext(ctx).Model(&models.VesselModel{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// applyFilter applies filter options to the query
func (r *GormVesselRepository) applyFilter(query *gorm.DB, filter fleet.VesselFilter) *gorm.DB {
	if filter.OrganizationID != nil {
		query = query.Scopes(orgscope.OrgScope(*filter.OrganizationID))
	}

	if filter.VesselID != nil {
		query = query.Where("id = ?", *filter.VesselID)
	}

	if filter.Keyword != "" {
		searchPattern := "%" + filter.Keyword + "%"
		query = query.Where(
			"name ILIKE ? OR imo_number ILIKE ?",
			searchPattern, searchPattern,
		)
	}

	if filter.Type != nil {
		query = query.Where("type = ?", *filter.Type)
	}

	if !filter.IncludeInactive {
		query = query.Where("active = ?", true)
	}

	return query
}

// Ensure GormVesselRepository implements VesselRepository
var _ fleet.VesselRepository = (*GormVesselRepository)(nil)
