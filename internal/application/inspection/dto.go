package inspection

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	identityapp "github.com/sandarbhasthana/ship-reporting-sub001/internal/application/identity"
	"github.com/sandarbhasthana/ship-reporting-sub001/internal/domain/inspection"
)

// Actor aliases the identity application actor so callers wire one type
// through all services
type Actor = identityapp.Actor

// ObjectStorageService abstracts presigned access to inspection photos.
// Clients upload and download directly against the returned URLs; the API
// never proxies photo bytes.
type ObjectStorageService interface {
	// GenerateUploadURL returns a presigned PUT URL for the given storage key
	GenerateUploadURL(ctx context.Context, storageKey, contentType string, expiresIn time.Duration) (string, time.Time, error)

	// GenerateDownloadURL returns a presigned GET URL for the given storage key
	GenerateDownloadURL(ctx context.Context, storageKey string, expiresIn time.Duration) (string, time.Time, error)

	// DeleteObject removes an object from storage
	DeleteObject(ctx context.Context, storageKey string) error

	// ObjectExists checks whether an object exists in storage
	ObjectExists(ctx context.Context, storageKey string) (bool, error)
}

// CreateReportInput contains the input for creating a draft report
type CreateReportInput struct {
	Actor          Actor
	VesselID       uuid.UUID
	Title          string
	InspectionDate time.Time
	Port           string
	Summary        string
}

// UpdateReportInput contains the input for updating a draft report's header
type UpdateReportInput struct {
	Actor          Actor
	ReportID       uuid.UUID
	Title          string
	Port           string
	Summary        string
	InspectionDate time.Time
}

// AddEntryInput contains the input for adding an entry to a draft report
type AddEntryInput struct {
	Actor       Actor
	ReportID    uuid.UUID
	Category    inspection.Category
	Item        string
	Condition   inspection.Condition
	Description string
}

// UpdateEntryInput contains the input for updating an entry
type UpdateEntryInput struct {
	Actor            Actor
	ReportID         uuid.UUID
	EntryID          uuid.UUID
	Condition        inspection.Condition
	Description      string
	RequiresFollowup bool
}

// SetEntryMeasurementInput contains the input for recording a measurement
type SetEntryMeasurementInput struct {
	Actor    Actor
	ReportID uuid.UUID
	EntryID  uuid.UUID
	Value    decimal.Decimal
	Unit     string
}

// RemoveEntryInput contains the input for removing an entry
type RemoveEntryInput struct {
	Actor    Actor
	ReportID uuid.UUID
	EntryID  uuid.UUID
}

// RequestPhotoUploadInput contains the input for presigning a photo upload
type RequestPhotoUploadInput struct {
	Actor       Actor
	ReportID    uuid.UUID
	EntryID     uuid.UUID
	ContentType string
}

// PhotoUploadResult contains the presigned upload URL and the storage key
// the client must confirm after uploading
type PhotoUploadResult struct {
	UploadURL string
	PhotoKey  string
	ExpiresAt time.Time
}

// AttachPhotoInput confirms an uploaded photo and binds it to the entry
type AttachPhotoInput struct {
	Actor    Actor
	ReportID uuid.UUID
	EntryID  uuid.UUID
	PhotoKey string
}

// PhotoDownloadResult contains a presigned download URL
type PhotoDownloadResult struct {
	DownloadURL string
	ExpiresAt   time.Time
}

// ListReportsInput contains filters for listing reports
type ListReportsInput struct {
	OrganizationID  uuid.UUID
	VesselID        *uuid.UUID
	InspectorID     *uuid.UUID
	Status          *inspection.Status
	DateFrom        *time.Time
	DateTo          *time.Time
	Keyword         string
	IncludeInactive bool
	Page            int
	PageSize        int
	SortBy          string
	SortOrder       string
}

// ListReportsResult contains one page of reports without entries
type ListReportsResult struct {
	Reports  []*inspection.Report
	Total    int64
	Page     int
	PageSize int
}

// ExportReportResult contains a rendered PDF of a report
type ExportReportResult struct {
	PDFData   []byte
	FileName  string
	PageCount int
}
