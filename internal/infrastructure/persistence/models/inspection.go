package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/sandarbhasthana/ship-reporting-sub001/internal/domain/inspection"
	"github.com/sandarbhasthana/ship-reporting-sub001/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// ReportModel is the persistence model for the inspection Report aggregate.
type ReportModel struct {
	OrgAggregateModel
	VesselID       uuid.UUID            `gorm:"type:uuid;not null;index"`
	InspectorID    uuid.UUID            `gorm:"type:uuid;not null;index"`
	Title          string               `gorm:"type:varchar(200);not null"`
	Status         inspection.Status    `gorm:"type:varchar(20);not null;index"`
	InspectionDate time.Time            `gorm:"not null;index"`
	Port           string               `gorm:"type:varchar(200)"`
	Summary        string               `gorm:"type:text"`
	OverallRating  inspection.Condition `gorm:"type:varchar(20)"`
	SubmittedAt    *time.Time
	ReviewedAt     *time.Time
	ReviewedBy     *uuid.UUID `gorm:"type:uuid"`
	Active         bool       `gorm:"not null;default:true;index"`
}

// TableName returns the table name for GORM
func (ReportModel) TableName() string {
	return "inspection_reports"
}

// ToDomain converts the persistence model to a domain Report aggregate.
// Note: Entries must be loaded separately by the repository.
func (m *ReportModel) ToDomain() *inspection.Report {
	return &inspection.Report{
		OrgAggregateRoot: shared.OrgAggregateRoot{
			BaseAggregateRoot: shared.BaseAggregateRoot{
				BaseEntity: shared.BaseEntity{
					ID:        m.ID,
					CreatedAt: m.CreatedAt,
					UpdatedAt: m.UpdatedAt,
				},
				Version: m.Version,
			},
			OrganizationID: m.OrganizationID,
			CreatedBy:      m.CreatedBy,
		},
		VesselID:       m.VesselID,
		InspectorID:    m.InspectorID,
		Title:          m.Title,
		Status:         m.Status,
		InspectionDate: m.InspectionDate,
		Port:           m.Port,
		Summary:        m.Summary,
		OverallRating:  m.OverallRating,
		SubmittedAt:    m.SubmittedAt,
		ReviewedAt:     m.ReviewedAt,
		ReviewedBy:     m.ReviewedBy,
		Active:         m.Active,
		Entries:        make([]*inspection.Entry, 0), // Loaded separately
	}
}

// FromDomain populates the persistence model from a domain Report aggregate.
func (m *ReportModel) FromDomain(r *inspection.Report) {
	m.FromDomainOrgAggregateRoot(r.OrgAggregateRoot)
	m.VesselID = r.VesselID
	m.InspectorID = r.InspectorID
	m.Title = r.Title
	m.Status = r.Status
	m.InspectionDate = r.InspectionDate
	m.Port = r.Port
	m.Summary = r.Summary
	m.OverallRating = r.OverallRating
	m.SubmittedAt = r.SubmittedAt
	m.ReviewedAt = r.ReviewedAt
	m.ReviewedBy = r.ReviewedBy
	m.Active = r.Active
}

// ReportModelFromDomain creates a new persistence model from a domain Report aggregate.
func ReportModelFromDomain(r *inspection.Report) *ReportModel {
	m := &ReportModel{}
	m.FromDomain(r)
	return m
}

// EntryModel is the persistence model for inspection report entries.
type EntryModel struct {
	ID               uuid.UUID            `gorm:"type:uuid;primary_key"`
	ReportID         uuid.UUID            `gorm:"type:uuid;not null;index"`
	Category         inspection.Category  `gorm:"type:varchar(30);not null;index"`
	Item             string               `gorm:"type:varchar(200);not null"`
	Condition        inspection.Condition `gorm:"type:varchar(20);not null"`
	Description      string               `gorm:"type:text"`
	MeasuredValue    *decimal.Decimal     `gorm:"type:numeric(14,4)"`
	MeasuredUnit     string               `gorm:"type:varchar(20)"`
	PhotoKey         string               `gorm:"type:varchar(500)"`
	RequiresFollowup bool                 `gorm:"not null;default:false;index"`
	CreatedAt        time.Time            `gorm:"not null"`
	UpdatedAt        time.Time            `gorm:"not null"`
}

// TableName returns the table name for GORM
func (EntryModel) TableName() string {
	return "inspection_entries"
}

// ToDomain converts the persistence model to a domain Entry.
func (m *EntryModel) ToDomain() *inspection.Entry {
	return &inspection.Entry{
		ID:               m.ID,
		ReportID:         m.ReportID,
		Category:         m.Category,
		Item:             m.Item,
		Condition:        m.Condition,
		Description:      m.Description,
		MeasuredValue:    m.MeasuredValue,
		MeasuredUnit:     m.MeasuredUnit,
		PhotoKey:         m.PhotoKey,
		RequiresFollowup: m.RequiresFollowup,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

// FromDomain populates the persistence model from a domain Entry.
func (m *EntryModel) FromDomain(e *inspection.Entry) {
	m.ID = e.ID
	m.ReportID = e.ReportID
	m.Category = e.Category
	m.Item = e.Item
	m.Condition = e.Condition
	m.Description = e.Description
	m.MeasuredValue = e.MeasuredValue
	m.MeasuredUnit = e.MeasuredUnit
	m.PhotoKey = e.PhotoKey
	m.RequiresFollowup = e.RequiresFollowup
	m.CreatedAt = e.CreatedAt
	m.UpdatedAt = e.UpdatedAt
}

// EntryModelFromDomain creates a new persistence model from a domain Entry.
func EntryModelFromDomain(e *inspection.Entry) *EntryModel {
	m := &EntryModel{}
	m.FromDomain(e)
	return m
}
