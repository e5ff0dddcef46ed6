package inspection

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	auditapp "github.com/sandarbhasthana/ship-reporting-sub001/internal/application/audit"
	domainaudit "github.com/sandarbhasthana/ship-reporting-sub001/internal/domain/audit"
	"github.com/sandarbhasthana/ship-reporting-sub001/internal/domain/fleet"
	"github.com/sandarbhasthana/ship-reporting-sub001/internal/domain/identity"
	"github.com/sandarbhasthana/ship-reporting-sub001/internal/domain/inspection"
	"github.com/sandarbhasthana/ship-reporting-sub001/internal/domain/shared"
	"github.com/sandarbhasthana/ship-reporting-sub001/internal/infrastructure/telemetry"
)

// Presigned photo URLs default to this lifetime when the storage layer does
// not override it
const photoURLExpiration = 15 * time.Minute

var allowedPhotoContentTypes = map[string]string{
	"image/jpeg": "jpg",
	"image/png":  "png",
	"image/webp": "webp",
}

// ReportService handles the inspection report lifecycle. Captains work on
// reports for their own vessel; admins manage all reports in their
// organization.
type ReportService struct {
	reportRepo inspection.ReportRepository
	vesselRepo fleet.VesselRepository
	storage    ObjectStorageService
	recorder   *auditapp.Recorder
	metrics    *telemetry.ReportingMetrics
	logger     *zap.Logger
}

// NewReportService creates a new report service. Metrics may be nil when
// telemetry is disabled.
func NewReportService(
	reportRepo inspection.ReportRepository,
	vesselRepo fleet.VesselRepository,
	storage ObjectStorageService,
	recorder *auditapp.Recorder,
	metrics *telemetry.ReportingMetrics,
	logger *zap.Logger,
) *ReportService {
	return &ReportService{
		reportRepo: reportRepo,
		vesselRepo: vesselRepo,
		storage:    storage,
		recorder:   recorder,
		metrics:    metrics,
		logger:     logger,
	}
}

// Create opens a new draft report for a vessel. The actor becomes the
// inspector of record.
func (s *ReportService) Create(ctx context.Context, input CreateReportInput) (*inspection.Report, error) {
	vessel, err := s.vesselRepo.FindByID(ctx, input.VesselID)
	if err != nil {
		return nil, shared.NewDomainError("VESSEL_NOT_FOUND", "Vessel not found")
	}
	if !input.Actor.IsSuperAdmin() && vessel.OrganizationID != input.Actor.OrganizationID {
		return nil, shared.NewDomainError("VESSEL_NOT_FOUND", "Vessel not found")
	}
	if !vessel.Active {
		return nil, shared.NewDomainError("VESSEL_INACTIVE", "Cannot open a report for a deactivated vessel")
	}

	// Captains only inspect the vessel they are assigned to
	if input.Actor.Role == identity.RoleCaptain {
		if input.Actor.VesselID == nil || *input.Actor.VesselID != vessel.ID {
			return nil, shared.ErrForbidden
		}
	}

	report, err := inspection.NewReport(vessel.OrganizationID, vessel.ID, input.Actor.UserID, input.Title, input.InspectionDate)
	if err != nil {
		return nil, err
	}

	if input.Port != "" || input.Summary != "" {
		if err := report.Update(input.Title, input.Port, input.Summary, input.InspectionDate); err != nil {
			return nil, err
		}
	}

	if err := s.reportRepo.Create(ctx, report); err != nil {
		s.logger.Error("Failed to create report", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to create report")
	}

	s.recorder.Record(ctx, auditapp.RecordInput{
		OrganizationID: report.OrganizationID,
		Action:         domainaudit.ActionCreate,
		EntityType:     "inspection_report",
		EntityID:       report.ID,
		NewValue:       reportSnapshot(report),
		ActorID:        &input.Actor.UserID,
		ActorEmail:     input.Actor.Email,
		IPAddress:      input.Actor.IPAddress,
		UserAgent:      input.Actor.UserAgent,
	})

	if s.metrics != nil {
		s.metrics.RecordReportCreated(ctx, report.OrganizationID.String(), report.VesselID.String())
	}

	s.logger.Info("Inspection report created",
		zap.String("report_id", report.ID.String()),
		zap.String("vessel_id", report.VesselID.String()),
		zap.String("inspector_id", report.InspectorID.String()))

	return report, nil
}

// Update changes a draft report's header fields
func (s *ReportService) Update(ctx context.Context, input UpdateReportInput) (*inspection.Report, error) {
	report, err := s.loadEditableReport(ctx, input.Actor, input.ReportID)
	if err != nil {
		return nil, err
	}

	before := reportSnapshot(report)

	if err := report.Update(input.Title, input.Port, input.Summary, input.InspectionDate); err != nil {
		return nil, err
	}

	if err := s.reportRepo.Update(ctx, report); err != nil {
		s.logger.Error("Failed to update report", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to update report")
	}

	s.recordChange(ctx, input.Actor, report, domainaudit.ActionUpdate, before)

	return report, nil
}

// AddEntry appends a finding to a draft report
func (s *ReportService) AddEntry(ctx context.Context, input AddEntryInput) (*inspection.Entry, error) {
	report, err := s.loadEditableReport(ctx, input.Actor, input.ReportID)
	if err != nil {
		return nil, err
	}

	entry, err := report.AddEntry(input.Category, input.Item, input.Condition, input.Description)
	if err != nil {
		return nil, err
	}

	if err := s.reportRepo.Update(ctx, report); err != nil {
		s.logger.Error("Failed to save report entry", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to save entry")
	}

	s.recordChange(ctx, input.Actor, report, domainaudit.ActionUpdate, nil)

	if s.metrics != nil {
		s.metrics.RecordEntry(ctx, report.OrganizationID.String(), string(entry.Category),
			entry.Condition == inspection.ConditionCritical)
	}

	return entry, nil
}

// UpdateEntry changes a finding on a draft report
func (s *ReportService) UpdateEntry(ctx context.Context, input UpdateEntryInput) (*inspection.Report, error) {
	report, err := s.loadEditableReport(ctx, input.Actor, input.ReportID)
	if err != nil {
		return nil, err
	}

	if err := report.UpdateEntry(input.EntryID, input.Condition, input.Description, input.RequiresFollowup); err != nil {
		return nil, err
	}

	if err := s.reportRepo.Update(ctx, report); err != nil {
		s.logger.Error("Failed to update report entry", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to update entry")
	}

	s.recordChange(ctx, input.Actor, report, domainaudit.ActionUpdate, nil)

	return report, nil
}

// SetEntryMeasurement records a measured reading on a draft report's entry
func (s *ReportService) SetEntryMeasurement(ctx context.Context, input SetEntryMeasurementInput) (*inspection.Report, error) {
	report, err := s.loadEditableReport(ctx, input.Actor, input.ReportID)
	if err != nil {
		return nil, err
	}

	if err := report.SetEntryMeasurement(input.EntryID, input.Value, input.Unit); err != nil {
		return nil, err
	}

	if err := s.reportRepo.Update(ctx, report); err != nil {
		s.logger.Error("Failed to save measurement", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to save measurement")
	}

	s.recordChange(ctx, input.Actor, report, domainaudit.ActionUpdate, nil)

	return report, nil
}

// RemoveEntry removes a finding from a draft report. An attached photo is
// deleted from storage as well.
func (s *ReportService) RemoveEntry(ctx context.Context, input RemoveEntryInput) (*inspection.Report, error) {
	report, err := s.loadEditableReport(ctx, input.Actor, input.ReportID)
	if err != nil {
		return nil, err
	}

	entry := report.GetEntry(input.EntryID)
	if entry == nil {
		return nil, shared.ErrNotFound
	}
	photoKey := entry.PhotoKey

	if err := report.RemoveEntry(input.EntryID); err != nil {
		return nil, err
	}

	if err := s.reportRepo.Update(ctx, report); err != nil {
		s.logger.Error("Failed to remove report entry", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to remove entry")
	}

	if photoKey != "" && s.storage != nil {
		if err := s.storage.DeleteObject(ctx, photoKey); err != nil {
			// The entry is gone either way; orphaned photos are cleanup work
			s.logger.Warn("Failed to delete entry photo",
				zap.String("photo_key", photoKey),
				zap.Error(err))
		}
	}

	s.recordChange(ctx, input.Actor, report, domainaudit.ActionUpdate, nil)

	return report, nil
}

// RequestPhotoUpload presigns an upload URL for an entry photo. The client
// uploads directly to object storage and then confirms with AttachPhoto.
func (s *ReportService) RequestPhotoUpload(ctx context.Context, input RequestPhotoUploadInput) (*PhotoUploadResult, error) {
	if s.storage == nil {
		return nil, shared.NewDomainError("STORAGE_DISABLED", "Photo storage is not configured")
	}

	ext, ok := allowedPhotoContentTypes[strings.ToLower(input.ContentType)]
	if !ok {
		return nil, shared.NewDomainError("UNSUPPORTED_CONTENT_TYPE", "Photos must be JPEG, PNG or WebP")
	}

	report, err := s.loadEditableReport(ctx, input.Actor, input.ReportID)
	if err != nil {
		return nil, err
	}
	if report.GetEntry(input.EntryID) == nil {
		return nil, shared.ErrNotFound
	}

	photoKey := fmt.Sprintf("inspections/%s/%s/%s.%s",
		report.OrganizationID, report.ID, uuid.New(), ext)

	uploadURL, expiresAt, err := s.storage.GenerateUploadURL(ctx, photoKey, input.ContentType, photoURLExpiration)
	if err != nil {
		s.logger.Error("Failed to presign photo upload", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to presign photo upload")
	}

	return &PhotoUploadResult{
		UploadURL: uploadURL,
		PhotoKey:  photoKey,
		ExpiresAt: expiresAt,
	}, nil
}

// AttachPhoto binds an uploaded photo to an entry after verifying the
// object actually landed in storage
func (s *ReportService) AttachPhoto(ctx context.Context, input AttachPhotoInput) (*inspection.Report, error) {
	if s.storage == nil {
		return nil, shared.NewDomainError("STORAGE_DISABLED", "Photo storage is not configured")
	}

	report, err := s.loadEditableReport(ctx, input.Actor, input.ReportID)
	if err != nil {
		return nil, err
	}

	// Keys are scoped per report; refuse keys pointing elsewhere
	prefix := fmt.Sprintf("inspections/%s/%s/", report.OrganizationID, report.ID)
	if !strings.HasPrefix(input.PhotoKey, prefix) {
		return nil, shared.NewDomainError("INVALID_PHOTO_KEY", "Photo key does not belong to this report")
	}

	exists, err := s.storage.ObjectExists(ctx, input.PhotoKey)
	if err != nil {
		s.logger.Error("Failed to check photo object", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to verify uploaded photo")
	}
	if !exists {
		return nil, shared.NewDomainError("PHOTO_NOT_UPLOADED", "Photo has not been uploaded yet")
	}

	if err := report.AttachEntryPhoto(input.EntryID, input.PhotoKey); err != nil {
		return nil, err
	}

	if err := s.reportRepo.Update(ctx, report); err != nil {
		s.logger.Error("Failed to attach photo", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to attach photo")
	}

	s.recordChange(ctx, input.Actor, report, domainaudit.ActionUpdate, nil)

	return report, nil
}

// GetPhotoURL presigns a download URL for an entry's photo
func (s *ReportService) GetPhotoURL(ctx context.Context, actor Actor, reportID, entryID uuid.UUID) (*PhotoDownloadResult, error) {
	if s.storage == nil {
		return nil, shared.NewDomainError("STORAGE_DISABLED", "Photo storage is not configured")
	}

	report, err := s.loadVisibleReport(ctx, actor, reportID)
	if err != nil {
		return nil, err
	}

	entry := report.GetEntry(entryID)
	if entry == nil || entry.PhotoKey == "" {
		return nil, shared.ErrNotFound
	}

	downloadURL, expiresAt, err := s.storage.GenerateDownloadURL(ctx, entry.PhotoKey, photoURLExpiration)
	if err != nil {
		s.logger.Error("Failed to presign photo download", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to presign photo download")
	}

	return &PhotoDownloadResult{
		DownloadURL: downloadURL,
		ExpiresAt:   expiresAt,
	}, nil
}

// Submit moves a draft report to SUBMITTED
func (s *ReportService) Submit(ctx context.Context, actor Actor, reportID uuid.UUID) (*inspection.Report, error) {
	report, err := s.loadEditableReport(ctx, actor, reportID)
	if err != nil {
		return nil, err
	}

	before := reportSnapshot(report)

	if err := report.Submit(); err != nil {
		return nil, err
	}

	if err := s.reportRepo.Update(ctx, report); err != nil {
		s.logger.Error("Failed to submit report", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to submit report")
	}

	s.recordChange(ctx, actor, report, domainaudit.ActionStatusChange, before)

	if s.metrics != nil {
		s.metrics.RecordReportSubmitted(ctx, report.OrganizationID.String(), report.VesselID.String())
	}

	s.logger.Info("Inspection report submitted",
		zap.String("report_id", report.ID.String()),
		zap.Int("entries", report.EntryCount()),
		zap.String("overall_rating", string(report.OverallRating)))

	return report, nil
}

// Review marks a submitted report as reviewed. Reviewing requires an admin;
// captains never review, not even their own reports.
func (s *ReportService) Review(ctx context.Context, actor Actor, reportID uuid.UUID) (*inspection.Report, error) {
	if !actor.Role.AtLeast(identity.RoleAdmin) {
		return nil, shared.ErrForbidden
	}

	report, err := s.loadVisibleReport(ctx, actor, reportID)
	if err != nil {
		return nil, err
	}

	before := reportSnapshot(report)

	if err := report.Review(actor.UserID); err != nil {
		return nil, err
	}

	if err := s.reportRepo.Update(ctx, report); err != nil {
		s.logger.Error("Failed to review report", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to review report")
	}

	s.recordChange(ctx, actor, report, domainaudit.ActionStatusChange, before)

	if s.metrics != nil {
		s.metrics.RecordReportReviewed(ctx, report.OrganizationID.String())
	}

	return report, nil
}

// Archive moves a reviewed report to its terminal state. Admin only.
func (s *ReportService) Archive(ctx context.Context, actor Actor, reportID uuid.UUID) (*inspection.Report, error) {
	if !actor.Role.AtLeast(identity.RoleAdmin) {
		return nil, shared.ErrForbidden
	}

	report, err := s.loadVisibleReport(ctx, actor, reportID)
	if err != nil {
		return nil, err
	}

	before := reportSnapshot(report)

	if err := report.Archive(); err != nil {
		return nil, err
	}

	if err := s.reportRepo.Update(ctx, report); err != nil {
		s.logger.Error("Failed to archive report", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to archive report")
	}

	s.recordChange(ctx, actor, report, domainaudit.ActionStatusChange, before)

	if s.metrics != nil {
		s.metrics.RecordReportArchived(ctx, report.OrganizationID.String())
	}

	return report, nil
}

// Delete soft deletes a draft report
func (s *ReportService) Delete(ctx context.Context, actor Actor, reportID uuid.UUID) error {
	report, err := s.loadEditableReport(ctx, actor, reportID)
	if err != nil {
		return err
	}

	before := reportSnapshot(report)

	if err := report.Delete(); err != nil {
		return err
	}

	if err := s.reportRepo.Update(ctx, report); err != nil {
		s.logger.Error("Failed to delete report", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to delete report")
	}

	s.recorder.Record(ctx, auditapp.RecordInput{
		OrganizationID: report.OrganizationID,
		Action:         domainaudit.ActionDelete,
		EntityType:     "inspection_report",
		EntityID:       report.ID,
		OldValue:       before,
		ActorID:        &actor.UserID,
		ActorEmail:     actor.Email,
		IPAddress:      actor.IPAddress,
		UserAgent:      actor.UserAgent,
	})

	s.logger.Info("Inspection report deleted", zap.String("report_id", report.ID.String()))

	return nil
}

// Get returns a single report with its entries, scoped to the actor's reach
func (s *ReportService) Get(ctx context.Context, actor Actor, reportID uuid.UUID) (*inspection.Report, error) {
	return s.loadVisibleReport(ctx, actor, reportID)
}

// List returns reports matching the filters. Captains only see reports for
// their own vessel.
func (s *ReportService) List(ctx context.Context, actor Actor, input ListReportsInput) (*ListReportsResult, error) {
	orgID := input.OrganizationID
	if !actor.IsSuperAdmin() {
		orgID = actor.OrganizationID
	}

	filter := inspection.NewReportFilter().WithOrganization(orgID)

	if actor.Role == identity.RoleCaptain {
		if actor.VesselID == nil {
			return &ListReportsResult{Reports: []*inspection.Report{}, Page: 1, PageSize: filter.Limit()}, nil
		}
		filter = filter.WithVessel(*actor.VesselID)
	} else if input.VesselID != nil {
		filter = filter.WithVessel(*input.VesselID)
	}

	if input.InspectorID != nil {
		filter = filter.WithInspector(*input.InspectorID)
	}
	if input.Status != nil {
		filter = filter.WithStatus(*input.Status)
	}
	if input.DateFrom != nil || input.DateTo != nil {
		var from, to time.Time
		if input.DateFrom != nil {
			from = *input.DateFrom
		}
		if input.DateTo != nil {
			to = *input.DateTo
		}
		filter = filter.WithDateRange(from, to)
	}
	if input.Keyword != "" {
		filter = filter.WithKeyword(input.Keyword)
	}
	if input.IncludeInactive {
		filter = filter.WithInactive()
	}
	if input.Page > 0 {
		filter = filter.WithPagination(input.Page, input.PageSize)
	}
	if input.SortBy != "" {
		filter = filter.WithSorting(input.SortBy, input.SortOrder)
	}

	reports, total, err := s.reportRepo.FindAll(ctx, filter)
	if err != nil {
		s.logger.Error("Failed to list reports", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to list reports")
	}

	return &ListReportsResult{
		Reports:  reports,
		Total:    total,
		Page:     filter.Page,
		PageSize: filter.Limit(),
	}, nil
}

// loadVisibleReport loads a report the actor may read. Cross-organization
// reads and reports for vessels outside a captain's scope come back as
// forbidden.
func (s *ReportService) loadVisibleReport(ctx context.Context, actor Actor, reportID uuid.UUID) (*inspection.Report, error) {
	report, err := s.reportRepo.FindByID(ctx, reportID)
	if err != nil {
		return nil, shared.ErrNotFound
	}
	if !report.Active {
		return nil, shared.ErrNotFound
	}

	if !actor.IsSuperAdmin() && report.OrganizationID != actor.OrganizationID {
		return nil, shared.ErrForbidden
	}

	if actor.Role == identity.RoleCaptain {
		if actor.VesselID == nil || *actor.VesselID != report.VesselID {
			return nil, shared.ErrForbidden
		}
	}

	return report, nil
}

// loadEditableReport loads a report the actor may modify. Captains may only
// touch their own drafts; admins may touch any draft in their organization.
func (s *ReportService) loadEditableReport(ctx context.Context, actor Actor, reportID uuid.UUID) (*inspection.Report, error) {
	report, err := s.loadVisibleReport(ctx, actor, reportID)
	if err != nil {
		return nil, err
	}

	if actor.Role == identity.RoleCaptain && report.InspectorID != actor.UserID {
		return nil, shared.ErrForbidden
	}

	return report, nil
}

func (s *ReportService) recordChange(ctx context.Context, actor Actor, report *inspection.Report, action domainaudit.Action, before map[string]any) {
	s.recorder.Record(ctx, auditapp.RecordInput{
		OrganizationID: report.OrganizationID,
		Action:         action,
		EntityType:     "inspection_report",
		EntityID:       report.ID,
		OldValue:       before,
		NewValue:       reportSnapshot(report),
		ActorID:        &actor.UserID,
		ActorEmail:     actor.Email,
		IPAddress:      actor.IPAddress,
		UserAgent:      actor.UserAgent,
	})
}

// reportSnapshot captures audit-relevant report fields. Entries are counted,
// not copied; the trail stays small.
func reportSnapshot(report *inspection.Report) map[string]any {
	return map[string]any{
		"title":           report.Title,
		"status":          string(report.Status),
		"vessel_id":       report.VesselID.String(),
		"inspector_id":    report.InspectorID.String(),
		"inspection_date": report.InspectionDate.Format(time.RFC3339),
		"port":            report.Port,
		"overall_rating":  string(report.OverallRating),
		"entry_count":     report.EntryCount(),
		"active":          report.Active,
	}
}
