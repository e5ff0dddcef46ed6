package inspection

import (
	"github.com/google/uuid"
	"github.com/sandarbhasthana/ship-reporting-sub001/internal/domain/shared"
)

// Aggregate type constant for Report
const AggregateTypeReport = "InspectionReport"

// Inspection domain event types
const (
	EventTypeReportCreated   = "InspectionReportCreated"
	EventTypeReportSubmitted = "InspectionReportSubmitted"
	EventTypeReportReviewed  = "InspectionReportReviewed"
)

// ReportCreatedEvent is published when a report is created
type ReportCreatedEvent struct {
	shared.BaseDomainEvent
	VesselID    uuid.UUID `json:"vessel_id"`
	InspectorID uuid.UUID `json:"inspector_id"`
	Title       string    `json:"title"`
}

// NewReportCreatedEvent creates a new ReportCreatedEvent
func NewReportCreatedEvent(report *Report) *ReportCreatedEvent {
	return &ReportCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeReportCreated, AggregateTypeReport, report.ID, report.OrganizationID),
		VesselID:        report.VesselID,
		InspectorID:     report.InspectorID,
		Title:           report.Title,
	}
}

// ReportSubmittedEvent is published when a report is submitted
type ReportSubmittedEvent struct {
	shared.BaseDomainEvent
	VesselID      uuid.UUID `json:"vessel_id"`
	OverallRating Condition `json:"overall_rating"`
	EntryCount    int       `json:"entry_count"`
}

// NewReportSubmittedEvent creates a new ReportSubmittedEvent
func NewReportSubmittedEvent(report *Report) *ReportSubmittedEvent {
	return &ReportSubmittedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeReportSubmitted, AggregateTypeReport, report.ID, report.OrganizationID),
		VesselID:        report.VesselID,
		OverallRating:   report.OverallRating,
		EntryCount:      report.EntryCount(),
	}
}

// ReportReviewedEvent is published when a report is reviewed
type ReportReviewedEvent struct {
	shared.BaseDomainEvent
	ReviewerID uuid.UUID `json:"reviewer_id"`
}

// NewReportReviewedEvent creates a new ReportReviewedEvent
func NewReportReviewedEvent(report *Report, reviewerID uuid.UUID) *ReportReviewedEvent {
	return &ReportReviewedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeReportReviewed, AggregateTypeReport, report.ID, report.OrganizationID),
		ReviewerID:      reviewerID,
	}
}
