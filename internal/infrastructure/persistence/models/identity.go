package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/sandarbhasthana/ship-reporting-sub001/internal/domain/identity"
	"github.com/sandarbhasthana/ship-reporting-sub001/internal/domain/shared"
)

// OrganizationModel is the persistence model for the Organization domain entity.
type OrganizationModel struct {
	AggregateModel
	Name         string `gorm:"type:varchar(200);not null;uniqueIndex"`
	ContactName  string `gorm:"type:varchar(100)"`
	ContactEmail string `gorm:"type:varchar(200)"`
	ContactPhone string `gorm:"type:varchar(50)"`
	Address      string `gorm:"type:text"`
	Active       bool   `gorm:"not null;default:true;index"`
}

// TableName returns the table name for GORM
func (OrganizationModel) TableName() string {
	return "organizations"
}

// ToDomain converts the persistence model to a domain Organization entity.
func (m *OrganizationModel) ToDomain() *identity.Organization {
	return &identity.Organization{
		BaseAggregateRoot: shared.BaseAggregateRoot{
			BaseEntity: shared.BaseEntity{
				ID:        m.ID,
				CreatedAt: m.CreatedAt,
				UpdatedAt: m.UpdatedAt,
			},
			Version: m.Version,
		},
		Name:         m.Name,
		ContactName:  m.ContactName,
		ContactEmail: m.ContactEmail,
		ContactPhone: m.ContactPhone,
		Address:      m.Address,
		Active:       m.Active,
	}
}

// FromDomain populates the persistence model from a domain Organization entity.
func (m *OrganizationModel) FromDomain(o *identity.Organization) {
	m.FromDomainAggregateRoot(o.BaseAggregateRoot)
	m.Name = o.Name
	m.ContactName = o.ContactName
	m.ContactEmail = o.ContactEmail
	m.ContactPhone = o.ContactPhone
	m.Address = o.Address
	m.Active = o.Active
}

// OrganizationModelFromDomain creates a new persistence model from a domain Organization entity.
func OrganizationModelFromDomain(o *identity.Organization) *OrganizationModel {
	m := &OrganizationModel{}
	m.FromDomain(o)
	return m
}

// UserModel is the persistence model for the User domain entity.
type UserModel struct {
	OrgAggregateModel
	Email             string        `gorm:"type:varchar(200);not null;uniqueIndex"`
	PasswordHash      string        `gorm:"type:varchar(255);not null"`
	DisplayName       string        `gorm:"type:varchar(200)"`
	Role              identity.Role `gorm:"type:varchar(20);not null;index"`
	VesselID          *uuid.UUID    `gorm:"type:uuid;index"`
	Active            bool          `gorm:"not null;default:true;index"`
	LastLoginAt       *time.Time    `gorm:"index"`
	LastLoginIP       string        `gorm:"type:varchar(45)"`
	FailedAttempts    int           `gorm:"not null;default:0"`
	LockedUntil       *time.Time
	PasswordChangedAt *time.Time
}

// TableName returns the table name for GORM
func (UserModel) TableName() string {
	return "users"
}

// ToDomain converts the persistence model to a domain User entity.
func (m *UserModel) ToDomain() *identity.User {
	return &identity.User{
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
		Email:             m.Email,
		PasswordHash:      m.PasswordHash,
		DisplayName:       m.DisplayName,
		Role:              m.Role,
		VesselID:          m.VesselID,
		Active:            m.Active,
		LastLoginAt:       m.LastLoginAt,
		LastLoginIP:       m.LastLoginIP,
		FailedAttempts:    m.FailedAttempts,
		LockedUntil:       m.LockedUntil,
		PasswordChangedAt: m.PasswordChangedAt,
	}
}

// FromDomain populates the persistence model from a domain User entity.
func (m *UserModel) FromDomain(u *identity.User) {
	m.FromDomainOrgAggregateRoot(u.OrgAggregateRoot)
	m.Email = u.Email
	m.PasswordHash = u.PasswordHash
	m.DisplayName = u.DisplayName
	m.Role = u.Role
	m.VesselID = u.VesselID
	m.Active = u.Active
	m.LastLoginAt = u.LastLoginAt
	m.LastLoginIP = u.LastLoginIP
	m.FailedAttempts = u.FailedAttempts
	m.LockedUntil = u.LockedUntil
	m.PasswordChangedAt = u.PasswordChangedAt
}

// UserModelFromDomain creates a new persistence model from a domain User entity.
func UserModelFromDomain(u *identity.User) *UserModel {
	m := &UserModel{}
	m.FromDomain(u)
	return m
}
