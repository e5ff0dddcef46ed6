package inspection

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sandarbhasthana/ship-reporting-sub001/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Status represents the lifecycle state of an inspection report
type Status string

const (
	StatusDraft     Status = "DRAFT"
	StatusSubmitted Status = "SUBMITTED"
	StatusReviewed  Status = "REVIEWED"
	StatusArchived  Status = "ARCHIVED"
)

// IsValid checks if the status is a known Status
func (s Status) IsValid() bool {
	switch s {
	case StatusDraft, StatusSubmitted, StatusReviewed, StatusArchived:
		return true
	}
	return false
}

// String returns the string representation of Status
func (s Status) String() string {
	return string(s)
}

// CanTransitionTo checks if the status can transition to the target status
func (s Status) CanTransitionTo(target Status) bool {
	switch s {
	case StatusDraft:
		return target == StatusSubmitted
	case StatusSubmitted:
		return target == StatusReviewed
	case StatusReviewed:
		return target == StatusArchived
	case StatusArchived:
		return false
	}
	return false
}

// Report is the aggregate root for a vessel inspection. It owns its
// entries; they are loaded and saved together. Only DRAFT reports accept
// content changes.
type Report struct {
	shared.OrgAggregateRoot
	VesselID       uuid.UUID
	InspectorID    uuid.UUID
	Title          string
	Status         Status
	InspectionDate time.Time
	Port           string
	Summary        string
	OverallRating  Condition
	SubmittedAt    *time.Time
	ReviewedAt     *time.Time
	ReviewedBy     *uuid.UUID
	Active         bool
	Entries        []*Entry
}

// NewReport creates a new draft inspection report
func NewReport(organizationID, vesselID, inspectorID uuid.UUID, title string, inspectionDate time.Time) (*Report, error) {
	if vesselID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_VESSEL_ID", "Vessel ID cannot be empty")
	}
	if inspectorID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INSPECTOR_ID", "Inspector ID cannot be empty")
	}
	if err := validateTitle(title); err != nil {
		return nil, err
	}
	if inspectionDate.IsZero() {
		inspectionDate = time.Now()
	}

	report := &Report{
		OrgAggregateRoot: shared.NewOrgAggregateRootWithCreator(organizationID, inspectorID),
		VesselID:         vesselID,
		InspectorID:      inspectorID,
		Title:            strings.TrimSpace(title),
		Status:           StatusDraft,
		InspectionDate:   inspectionDate,
		OverallRating:    ConditionGood,
		Active:           true,
		Entries:          make([]*Entry, 0),
	}

	report.AddDomainEvent(NewReportCreatedEvent(report))

	return report, nil
}

// Update changes the report's header fields. Only DRAFT reports can change.
func (r *Report) Update(title, port, summary string, inspectionDate time.Time) error {
	if err := r.ensureEditable(); err != nil {
		return err
	}
	if err := validateTitle(title); err != nil {
		return err
	}
	if port != "" && len(port) > 100 {
		return shared.NewDomainError("INVALID_PORT", "Port cannot exceed 100 characters")
	}

	r.Title = strings.TrimSpace(title)
	r.Port = strings.TrimSpace(port)
	r.Summary = strings.TrimSpace(summary)
	if !inspectionDate.IsZero() {
		r.InspectionDate = inspectionDate
	}
	r.UpdatedAt = time.Now()
	r.IncrementVersion()

	return nil
}

// AddEntry appends a new entry to a draft report
func (r *Report) AddEntry(category Category, item string, condition Condition, description string) (*Entry, error) {
	if err := r.ensureEditable(); err != nil {
		return nil, err
	}

	entry, err := NewEntry(r.ID, category, item, condition, description)
	if err != nil {
		return nil, err
	}

	r.Entries = append(r.Entries, entry)
	r.recalculateOverallRating()
	r.UpdatedAt = time.Now()
	r.IncrementVersion()

	return entry, nil
}

// UpdateEntry changes an existing entry on a draft report
func (r *Report) UpdateEntry(entryID uuid.UUID, condition Condition, description string, requiresFollowup bool) error {
	if err := r.ensureEditable(); err != nil {
		return err
	}

	entry := r.GetEntry(entryID)
	if entry == nil {
		return shared.ErrNotFound
	}

	if err := entry.Update(condition, description, requiresFollowup); err != nil {
		return err
	}

	r.recalculateOverallRating()
	r.UpdatedAt = time.Now()
	r.IncrementVersion()

	return nil
}

// SetEntryMeasurement records a measured reading on a draft report's entry
func (r *Report) SetEntryMeasurement(entryID uuid.UUID, value decimal.Decimal, unit string) error {
	if err := r.ensureEditable(); err != nil {
		return err
	}

	entry := r.GetEntry(entryID)
	if entry == nil {
		return shared.ErrNotFound
	}

	if err := entry.SetMeasurement(value, unit); err != nil {
		return err
	}

	r.UpdatedAt = time.Now()
	r.IncrementVersion()

	return nil
}

// AttachEntryPhoto records an uploaded photo key on a draft report's entry
func (r *Report) AttachEntryPhoto(entryID uuid.UUID, photoKey string) error {
	if err := r.ensureEditable(); err != nil {
		return err
	}

	entry := r.GetEntry(entryID)
	if entry == nil {
		return shared.ErrNotFound
	}

	if err := entry.AttachPhoto(photoKey); err != nil {
		return err
	}

	r.UpdatedAt = time.Now()
	r.IncrementVersion()

	return nil
}

// RemoveEntry removes an entry from a draft report
func (r *Report) RemoveEntry(entryID uuid.UUID) error {
	if err := r.ensureEditable(); err != nil {
		return err
	}

	found := false
	entries := make([]*Entry, 0, len(r.Entries))
	for _, e := range r.Entries {
		if e.ID != entryID {
			entries = append(entries, e)
		} else {
			found = true
		}
	}
	if !found {
		return shared.ErrNotFound
	}

	r.Entries = entries
	r.recalculateOverallRating()
	r.UpdatedAt = time.Now()
	r.IncrementVersion()

	return nil
}

// Submit moves the report from DRAFT to SUBMITTED. A report without
// entries cannot be submitted.
func (r *Report) Submit() error {
	if !r.Status.CanTransitionTo(StatusSubmitted) {
		return shared.NewDomainError("INVALID_STATUS_TRANSITION",
			"Cannot submit a report in status "+r.Status.String())
	}
	if len(r.Entries) == 0 {
		return shared.NewDomainError("EMPTY_REPORT", "Report must have at least one entry before submission")
	}

	now := time.Now()
	r.Status = StatusSubmitted
	r.SubmittedAt = &now
	r.UpdatedAt = now
	r.IncrementVersion()

	r.AddDomainEvent(NewReportSubmittedEvent(r))

	return nil
}

// Review marks a submitted report as reviewed
func (r *Report) Review(reviewerID uuid.UUID) error {
	if !r.Status.CanTransitionTo(StatusReviewed) {
		return shared.NewDomainError("INVALID_STATUS_TRANSITION",
			"Cannot review a report in status "+r.Status.String())
	}
	if reviewerID == uuid.Nil {
		return shared.NewDomainError("INVALID_REVIEWER_ID", "Reviewer ID cannot be empty")
	}

	now := time.Now()
	r.Status = StatusReviewed
	r.ReviewedAt = &now
	r.ReviewedBy = &reviewerID
	r.UpdatedAt = now
	r.IncrementVersion()

	r.AddDomainEvent(NewReportReviewedEvent(r, reviewerID))

	return nil
}

// Archive moves a reviewed report to its terminal state
func (r *Report) Archive() error {
	if !r.Status.CanTransitionTo(StatusArchived) {
		return shared.NewDomainError("INVALID_STATUS_TRANSITION",
			"Cannot archive a report in status "+r.Status.String())
	}

	r.Status = StatusArchived
	r.UpdatedAt = time.Now()
	r.IncrementVersion()

	return nil
}

// Delete soft-deletes a draft report
func (r *Report) Delete() error {
	if r.Status != StatusDraft {
		return shared.NewDomainError("INVALID_STATE", "Only draft reports can be deleted")
	}
	if !r.Active {
		return shared.NewDomainError("ALREADY_DELETED", "Report is already deleted")
	}

	r.Active = false
	r.UpdatedAt = time.Now()
	r.IncrementVersion()

	return nil
}

// GetEntry returns an entry by ID, or nil if not present
func (r *Report) GetEntry(entryID uuid.UUID) *Entry {
	for _, e := range r.Entries {
		if e.ID == entryID {
			return e
		}
	}
	return nil
}

// EntryCount returns the number of entries
func (r *Report) EntryCount() int {
	return len(r.Entries)
}

// IsDraft returns true if the report is in draft status
func (r *Report) IsDraft() bool {
	return r.Status == StatusDraft
}

// CanModify returns true if the report content can still change
func (r *Report) CanModify() bool {
	return r.Status == StatusDraft && r.Active
}

// RequiresFollowup returns true if any entry needs followup
func (r *Report) RequiresFollowup() bool {
	for _, e := range r.Entries {
		if e.RequiresFollowup {
			return true
		}
	}
	return false
}

// recalculateOverallRating sets the overall rating to the worst entry condition
func (r *Report) recalculateOverallRating() {
	rating := ConditionGood
	for _, e := range r.Entries {
		if e.Condition.WorseThan(rating) {
			rating = e.Condition
		}
	}
	r.OverallRating = rating
}

func (r *Report) ensureEditable() error {
	if !r.Active {
		return shared.ErrNotFound
	}
	if r.Status != StatusDraft {
		return shared.NewDomainError("REPORT_NOT_EDITABLE", "Only draft reports can be modified")
	}
	return nil
}

func validateTitle(title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return shared.NewDomainError("INVALID_TITLE", "Report title cannot be empty")
	}
	if len(title) > 200 {
		return shared.NewDomainError("INVALID_TITLE", "Report title cannot exceed 200 characters")
	}
	return nil
}
