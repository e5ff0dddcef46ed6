package handler

import (
	"time"

	"github.com/sandarbhasthana/ship-reporting-sub001/internal/domain/inspection"
)

// CreateReportRequest represents a request to open a draft report
type CreateReportRequest struct {
	VesselID       string    `json:"vessel_id" binding:"required,uuid"`
	Title          string    `json:"title" binding:"required,min=1,max=200"`
	InspectionDate time.Time `json:"inspection_date" binding:"required"`
	Port           string    `json:"port" binding:"max=100"`
	Summary        string    `json:"summary" binding:"max=4000"`
}

// UpdateReportRequest represents a request to update a draft report's header
type UpdateReportRequest struct {
	Title          string    `json:"title" binding:"required,min=1,max=200"`
	InspectionDate time.Time `json:"inspection_date" binding:"required"`
	Port           string    `json:"port" binding:"max=100"`
	Summary        string    `json:"summary" binding:"max=4000"`
}

// AddEntryRequest represents a request to add an inspection entry
type AddEntryRequest struct {
	Category    string `json:"category" binding:"required,oneof=HULL ENGINE NAVIGATION SAFETY_EQUIPMENT CARGO_GEAR ACCOMMODATION POLLUTION_PREVENTION DOCUMENTATION"`
	Item        string `json:"item" binding:"required,min=1,max=200"`
	Condition   string `json:"condition" binding:"required,oneof=GOOD FAIR POOR CRITICAL"`
	Description string `json:"description" binding:"max=4000"`
}

// UpdateEntryRequest represents a request to update an inspection entry
type UpdateEntryRequest struct {
	Condition        string `json:"condition" binding:"required,oneof=GOOD FAIR POOR CRITICAL"`
	Description      string `json:"description" binding:"max=4000"`
	RequiresFollowup bool   `json:"requires_followup"`
}

// SetMeasurementRequest represents a request to record a measurement
type SetMeasurementRequest struct {
	Value float64 `json:"value" binding:"required"`
	Unit  string  `json:"unit" binding:"required,min=1,max=20"`
}

// RequestPhotoUploadRequest represents a request to presign a photo upload
type RequestPhotoUploadRequest struct {
	ContentType string `json:"content_type" binding:"required"`
}

// AttachPhotoRequest confirms an uploaded photo key
type AttachPhotoRequest struct {
	PhotoKey string `json:"photo_key" binding:"required"`
}

// ListReportsRequest represents query filters for listing reports
type ListReportsRequest struct {
	Page            int        `form:"page" binding:"omitempty,min=1"`
	PageSize        int        `form:"page_size" binding:"omitempty,min=1,max=100"`
	SortBy          string     `form:"sort_by"`
	SortOrder       string     `form:"sort_order" binding:"omitempty,oneof=asc desc"`
	Keyword         string     `form:"keyword"`
	VesselID        string     `form:"vessel_id" binding:"omitempty,uuid"`
	InspectorID     string     `form:"inspector_id" binding:"omitempty,uuid"`
	Status          string     `form:"status" binding:"omitempty,oneof=DRAFT SUBMITTED REVIEWED ARCHIVED"`
	DateFrom        *time.Time `form:"date_from" time_format:"2006-01-02"`
	DateTo          *time.Time `form:"date_to" time_format:"2006-01-02"`
	IncludeInactive bool       `form:"include_inactive"`
}

// EntryResponse represents an inspection entry in API responses
type EntryResponse struct {
	ID               string    `json:"id"`
	Category         string    `json:"category"`
	Item             string    `json:"item"`
	Condition        string    `json:"condition"`
	Description      string    `json:"description,omitempty"`
	MeasuredValue    *string   `json:"measured_value,omitempty"`
	MeasuredUnit     string    `json:"measured_unit,omitempty"`
	HasPhoto         bool      `json:"has_photo"`
	RequiresFollowup bool      `json:"requires_followup"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// ReportResponse represents an inspection report in API responses
type ReportResponse struct {
	ID             string          `json:"id"`
	OrganizationID string          `json:"organization_id"`
	VesselID       string          `json:"vessel_id"`
	InspectorID    string          `json:"inspector_id"`
	Title          string          `json:"title"`
	Status         string          `json:"status"`
	InspectionDate time.Time       `json:"inspection_date"`
	Port           string          `json:"port,omitempty"`
	Summary        string          `json:"summary,omitempty"`
	OverallRating  string          `json:"overall_rating,omitempty"`
	SubmittedAt    *time.Time      `json:"submitted_at,omitempty"`
	ReviewedAt     *time.Time      `json:"reviewed_at,omitempty"`
	ReviewedBy     *string         `json:"reviewed_by,omitempty"`
	Active         bool            `json:"active"`
	Entries        []EntryResponse `json:"entries,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// PhotoUploadResponse carries a presigned upload URL
type PhotoUploadResponse struct {
	UploadURL string    `json:"upload_url"`
	PhotoKey  string    `json:"photo_key"`
	ExpiresAt time.Time `json:"expires_at"`
}

// PhotoDownloadResponse carries a presigned download URL
type PhotoDownloadResponse struct {
	DownloadURL string    `json:"download_url"`
	ExpiresAt   time.Time `json:"expires_at"`
}

func newEntryResponse(entry *inspection.Entry) EntryResponse {
	resp := EntryResponse{
		ID:               entry.ID.String(),
		Category:         string(entry.Category),
		Item:             entry.Item,
		Condition:        string(entry.Condition),
		Description:      entry.Description,
		MeasuredUnit:     entry.MeasuredUnit,
		HasPhoto:         entry.PhotoKey != "",
		RequiresFollowup: entry.RequiresFollowup,
		CreatedAt:        entry.CreatedAt,
		UpdatedAt:        entry.UpdatedAt,
	}
	if entry.MeasuredValue != nil {
		s := entry.MeasuredValue.String()
		resp.MeasuredValue = &s
	}
	return resp
}

func newReportResponse(report *inspection.Report) ReportResponse {
	resp := ReportResponse{
		ID:             report.ID.String(),
		OrganizationID: report.OrganizationID.String(),
		VesselID:       report.VesselID.String(),
		InspectorID:    report.InspectorID.String(),
		Title:          report.Title,
		Status:         string(report.Status),
		InspectionDate: report.InspectionDate,
		Port:           report.Port,
		Summary:        report.Summary,
		OverallRating:  string(report.OverallRating),
		SubmittedAt:    report.SubmittedAt,
		ReviewedAt:     report.ReviewedAt,
		Active:         report.Active,
		CreatedAt:      report.CreatedAt,
		UpdatedAt:      report.UpdatedAt,
	}
	if report.ReviewedBy != nil {
		s := report.ReviewedBy.String()
		resp.ReviewedBy = &s
	}
	for _, entry := range report.Entries {
		resp.Entries = append(resp.Entries, newEntryResponse(entry))
	}
	return resp
}

// newReportSummaryResponses maps reports without their entries, for lists
func newReportSummaryResponses(reports []*inspection.Report) []ReportResponse {
	out := make([]ReportResponse, 0, len(reports))
	for _, report := range reports {
		resp := newReportResponse(report)
		resp.Entries = nil
		out = append(out, resp)
	}
	return out
}
