package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/sandarbhasthana/ship-reporting-sub001/internal/domain/identity"
	"github.com/sandarbhasthana/ship-reporting-sub001/internal/domain/shared"
	"github.com/sandarbhasthana/ship-reporting-sub001/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormOrganizationRepository implements OrganizationRepository using GORM
type GormOrganizationRepository struct {
	db *gorm.DB
}

// NewGormOrganizationRepository creates a new GormOrganizationRepository
func NewGormOrganizationRepository(db *gorm.DB) *GormOrganizationRepository {
	return &GormOrganizationRepository{db: db}
}

// Create creates a new organization
func (r *GormOrganizationRepository) Create(ctx context.Context, org *identity.Organization) error {
	model := models.OrganizationModelFromDomain(org)
	return r.db.WithContext(ctx).Create(model).Error
}

// Update updates an existing organization
func (r *GormOrganizationRepository) Update(ctx context.Context, org *identity.Organization) error {
	model := models.OrganizationModelFromDomain(org)
	result := r.db.WithContext(ctx).Save(model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// FindByID finds an organization by ID
func (r *GormOrganizationRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.Organization, error) {
	var model models.OrganizationModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByName finds an organization by exact name
func (r *GormOrganizationRepository) FindByName(ctx context.Context, name string) (*identity.Organization, error) {
	var model models.OrganizationModel
	if err := r.db.WithContext(ctx).
		Where("LOWER(name) = ?", strings.ToLower(name)).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll returns organizations matching the filter with pagination
func (r *GormOrganizationRepository) FindAll(ctx context.Context, filter identity.OrganizationFilter) ([]*identity.Organization, int64, error) {
	var orgModels []*models.OrganizationModel
	var total int64

	query := r.db.WithContext(ctx).Model(&models.OrganizationModel{})
	query = r.applyFilter(query, filter)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	sortBy := ValidateSortField(filter.SortBy, OrganizationSortFields, "created_at")
	sortOrder := ValidateSortOrder(filter.SortOrder)
	query = query.Order(sortBy + " " + sortOrder)

	query = query.Offset(filter.Offset()).Limit(filter.Limit())

	if err := query.Find(&orgModels).Error; err != nil {
		return nil, 0, err
	}

	orgs := make([]*identity.Organization, len(orgModels))
	for i, model := range orgModels {
		orgs[i] = model.ToDomain()
	}

	return orgs, total, nil
}

// ExistsByName checks if an organization name already exists
func (r *GormOrganizationRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.OrganizationModel{}).
		Where("LOWER(name) = ?", strings.ToLower(name)).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Count returns the number of organizations matching the filter
func (r *GormOrganizationRepository) Count(ctx context.Context, filter identity.OrganizationFilter) (int64, error) {
	var count int64
	query := r.applyFilter(r.db.WithContext(ctx).Model(&models.OrganizationModel{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// applyFilter applies filter options to the query
func (r *GormOrganizationRepository) applyFilter(query *gorm.DB, filter identity.OrganizationFilter) *gorm.DB {
	if filter.Keyword != "" {
		searchPattern := "%" + filter.Keyword + "%"
		query = query.Where(
			"name ILIKE ? OR contact_name ILIKE ? OR contact_email ILIKE ?",
			searchPattern, searchPattern, searchPattern,
		)
	}

	if !filter.IncludeInactive {
		query = query.Where("active = ?", true)
	}

	return query
}

// Ensure GormOrganizationRepository implements OrganizationRepository
var _ identity.OrganizationRepository = (*GormOrganizationRepository)(nil)
