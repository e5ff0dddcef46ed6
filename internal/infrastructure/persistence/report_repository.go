package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sandarbhasthana/ship-reporting-sub001/internal/domain/inspection"
	"github.com/sandarbhasthana/ship-reporting-sub001/internal/domain/shared"
	"github.com/sandarbhasthana/ship-reporting-sub001/internal/infrastructure/persistence/models"
	"github.com/sandarbhasthana/ship-reporting-sub001/internal/infrastructure/persistence/orgscope"
	"gorm.io/gorm"
)

// GormReportRepository implements ReportRepository using GORM
type GormReportRepository struct {
	db *gorm.DB
}

// NewGormReportRepository creates a new GormReportRepository
func NewGormReportRepository(db *gorm.DB) *GormReportRepository {
	return &GormReportRepository{db: db}
}

// Create creates a new report with its entries
func (r *GormReportRepository) Create(ctx context.Context, report *inspection.Report) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		model := models.ReportModelFromDomain(report)
		if err := tx.Create(model).Error; err != nil {
			return err
		}

		for _, entry := range report.Entries {
			entryModel := models.EntryModelFromDomain(entry)
			entryModel.ReportID = report.ID
			if err := tx.Create(entryModel).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

// Update updates a report and replaces its entries
func (r *GormReportRepository) Update(ctx context.Context, report *inspection.Report) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		model := models.ReportModelFromDomain(report)
		result := tx.Save(model)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}

		// Handle entries: delete removed entries and save/update remaining ones
		currentEntryIDs := make([]uuid.UUID, len(report.Entries))
		for i, entry := range report.Entries {
			currentEntryIDs[i] = entry.ID
		}

		if len(currentEntryIDs) > 0 {
			if err := tx.Where("report_id = ? AND id NOT IN ?", report.ID, currentEntryIDs).
				Delete(&models.EntryModel{}).Error; err != nil {
				return err
			}
		} else {
			if err := tx.Where("report_id = ?", report.ID).
				Delete(&models.EntryModel{}).Error; err != nil {
				return err
			}
		}

		for _, entry := range report.Entries {
			entryModel := models.EntryModelFromDomain(entry)
			entryModel.ReportID = report.ID
			if err := tx.Save(entryModel).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

// FindByID finds a report by ID with its entries loaded
func (r *GormReportRepository) FindByID(ctx context.Context, id uuid.UUID) (*inspection.Report, error) {
	var model models.ReportModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}

	report := model.ToDomain()

	var entryModels []*models.EntryModel
	if err := r.db.WithContext(ctx).
		Where("report_id = ?", id).
		Order("created_at asc").
		Find(&entryModels).Error; err != nil {
		return nil, err
	}

	entries := make([]*inspection.Entry, len(entryModels))
	for i, em := range entryModels {
		entries[i] = em.ToDomain()
	}
	report.Entries = entries

	return report, nil
}

// FindAll returns reports matching the filter with pagination.
// Entries are not loaded for listings.
func (r *GormReportRepository) FindAll(ctx context.Context, filter inspection.ReportFilter) ([]*inspection.Report, int64, error) {
	var reportModels []*models.ReportModel
	var total int64

	query := r.db.WithContext(ctx).Model(&models.ReportModel{})
	query = r.applyFilter(query, filter)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	sortBy := ValidateSortField(filter.SortBy, ReportSortFields, "inspection_date")
	sortOrder := ValidateSortOrder(filter.SortOrder)
	query = query.Order(sortBy + " " + sortOrder)

	query = query.Offset(filter.Offset()).Limit(filter.Limit())

	if err := query.Find(&reportModels).Error; err != nil {
		return nil, 0, err
	}

	reports := make([]*inspection.Report, len(reportModels))
	for i, model := range reportModels {
		reports[i] = model.ToDomain()
	}

	return reports, total, nil
}

// Count returns the number of reports matching the filter
func (r *GormReportRepository) Count(ctx context.Context, filter inspection.ReportFilter) (int64, error) {
	var count int64
	query := r.applyFilter(r.db.WithContext(ctx).Model(&models.ReportModel{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// applyFilter applies filter options to the query
func (r *GormReportRepository) applyFilter(query *gorm.DB, filter inspection.ReportFilter) *gorm.DB {
	if filter.OrganizationID != nil {
		query = query.Scopes(orgscope.OrgScope(*filter.OrganizationID))
	}

	if filter.VesselID != nil {
		query = query.Where("vessel_id = ?", *filter.VesselID)
	}

	if filter.InspectorID != nil {
		query = query.Where("inspector_id = ?", *filter.InspectorID)
	}

	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}

	if filter.DateFrom != nil {
		query = query.Where("inspection_date >= ?", *filter.DateFrom)
	}

	if filter.DateTo != nil {
		query = query.Where("inspection_date <= ?", *filter.DateTo)
	}

	if filter.Keyword != "" {
		searchPattern := "%" + filter.Keyword + "%"
		query = query.Where(
			"title ILIKE ? OR port ILIKE ?",
			searchPattern, searchPattern,
		)
	}

	if !filter.IncludeInactive {
		query = query.Where("active = ?", true)
	}

	return query
}

// Ensure GormReportRepository implements ReportRepository
var _ inspection.ReportRepository = (*GormReportRepository)(nil)
