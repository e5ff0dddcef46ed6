package identity

import (
	"github.com/google/uuid"
	"github.com/sandarbhasthana/ship-reporting-sub001/internal/domain/shared"
)

// Aggregate type constants
const (
	AggregateTypeOrganization = "Organization"
	AggregateTypeUser         = "User"
)

// Identity domain event types
const (
	EventTypeOrganizationCreated     = "OrganizationCreated"
	EventTypeOrganizationDeactivated = "OrganizationDeactivated"
	EventTypeUserCreated             = "UserCreated"
	EventTypeUserDeactivated         = "UserDeactivated"
	EventTypeUserVesselAssigned      = "UserVesselAssigned"
)

// OrganizationCreatedEvent is published when an organization is created
type OrganizationCreatedEvent struct {
	shared.BaseDomainEvent
	Name string `json:"name"`
}

// NewOrganizationCreatedEvent creates a new OrganizationCreatedEvent
func NewOrganizationCreatedEvent(org *Organization) *OrganizationCreatedEvent {
	return &OrganizationCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeOrganizationCreated, AggregateTypeOrganization, org.ID, org.ID),
		Name:            org.Name,
	}
}

// OrganizationDeactivatedEvent is published when an organization is deactivated
type OrganizationDeactivatedEvent struct {
	shared.BaseDomainEvent
	Name string `json:"name"`
}

// NewOrganizationDeactivatedEvent creates a new OrganizationDeactivatedEvent
func NewOrganizationDeactivatedEvent(org *Organization) *OrganizationDeactivatedEvent {
	return &OrganizationDeactivatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeOrganizationDeactivated, AggregateTypeOrganization, org.ID, org.ID),
		Name:            org.Name,
	}
}

// UserCreatedEvent is published when a user is created
type UserCreatedEvent struct {
	shared.BaseDomainEvent
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// NewUserCreatedEvent creates a new UserCreatedEvent
func NewUserCreatedEvent(user *User) *UserCreatedEvent {
	return &UserCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeUserCreated, AggregateTypeUser, user.ID, user.OrganizationID),
		Email:           user.Email,
		Role:            user.Role,
	}
}

// UserDeactivatedEvent is published when a user is deactivated
type UserDeactivatedEvent struct {
	shared.BaseDomainEvent
	Email string `json:"email"`
}

// NewUserDeactivatedEvent creates a new UserDeactivatedEvent
func NewUserDeactivatedEvent(user *User) *UserDeactivatedEvent {
	return &UserDeactivatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeUserDeactivated, AggregateTypeUser, user.ID, user.OrganizationID),
		Email:           user.Email,
	}
}

// UserVesselAssignedEvent is published when a captain is assigned to a vessel
type UserVesselAssignedEvent struct {
	shared.BaseDomainEvent
	Email    string    `json:"email"`
	VesselID uuid.UUID `json:"vessel_id"`
}

// NewUserVesselAssignedEvent creates a new UserVesselAssignedEvent
func NewUserVesselAssignedEvent(user *User, vesselID uuid.UUID) *UserVesselAssignedEvent {
	return &UserVesselAssignedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeUserVesselAssigned, AggregateTypeUser, user.ID, user.OrganizationID),
		Email:           user.Email,
		VesselID:        vesselID,
	}
}
