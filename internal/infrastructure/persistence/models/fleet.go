package models

import (
	"github.com/google/uuid"
	"github.com/sandarbhasthana/ship-reporting-sub001/internal/domain/fleet"
	"github.com/sandarbhasthana/ship-reporting-sub001/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// VesselModel is the persistence model for the Vessel domain entity.
type VesselModel struct {
	OrgAggregateModel
	Name         string           `gorm:"type:varchar(200);not null"`
	IMONumber    string           `gorm:"column:imo_number;type:varchar(7);not null;uniqueIndex"`
	FlagState    string           `gorm:"type:varchar(100)"`
	Type         fleet.VesselType `gorm:"type:varchar(20);not null;index"`
	GrossTonnage decimal.Decimal  `gorm:"type:numeric(12,2);not null;default:0"`
	YearBuilt    int              `gorm:"not null;default:0"`
	CaptainID    *uuid.UUID       `gorm:"type:uuid;index"`
	Active       bool             `gorm:"not null;default:true;index"`
}

// TableName returns the table name for GORM
func (VesselModel) TableName() string {
	return "vessels"
}

// ToDomain converts the persistence model to a domain Vessel entity.
func (m *VesselModel) ToDomain() *fleet.Vessel {
	return &fleet.Vessel{
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
		Name:         m.Name,
		IMONumber:    m.IMONumber,
		FlagState:    m.FlagState,
		Type:         m.Type,
		GrossTonnage: m.GrossTonnage,
		YearBuilt:    m.YearBuilt,
		CaptainID:    m.CaptainID,
		Active:       m.Active,
	}
}

// FromDomain populates the persistence model from a domain Vessel entity.
func (m *VesselModel) FromDomain(v *fleet.Vessel) {
	m.FromDomainOrgAggregateRoot(v.OrgAggregateRoot)
	m.Name = v.Name
	m.IMONumber = v.IMONumber
	m.FlagState = v.FlagState
	m.Type = v.Type
	m.GrossTonnage = v.GrossTonnage
	m.YearBuilt = v.YearBuilt
	m.CaptainID = v.CaptainID
	m.Active = v.Active
}

// VesselModelFromDomain creates a new persistence model from a domain Vessel entity.
func VesselModelFromDomain(v *fleet.Vessel) *VesselModel {
	m := &VesselModel{}
	m.FromDomain(v)
	return m
}
