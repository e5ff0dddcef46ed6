package fleet

import (
	"github.com/google/uuid"
	"github.com/sandarbhasthana/ship-reporting-sub001/internal/domain/shared"
)

// Aggregate type constant for Vessel
const AggregateTypeVessel = "Vessel"

// Fleet domain event types
const (
	EventTypeVesselRegistered      = "VesselRegistered"
	EventTypeVesselCaptainAssigned = "VesselCaptainAssigned"
	EventTypeVesselDeactivated     = "VesselDeactivated"
)

// VesselRegisteredEvent is published when a vessel is registered
type VesselRegisteredEvent struct {
	shared.BaseDomainEvent
	Name      string `json:"name"`
	IMONumber string `json:"imo_number"`
}

// NewVesselRegisteredEvent creates a new VesselRegisteredEvent
func NewVesselRegisteredEvent(vessel *Vessel) *VesselRegisteredEvent {
	return &VesselRegisteredEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeVesselRegistered, AggregateTypeVessel, vessel.ID, vessel.OrganizationID),
		Name:            vessel.Name,
		IMONumber:       vessel.IMONumber,
	}
}

// VesselCaptainAssignedEvent is published when a captain is assigned
type VesselCaptainAssignedEvent struct {
	shared.BaseDomainEvent
	CaptainID uuid.UUID `json:"captain_id"`
}

// NewVesselCaptainAssignedEvent creates a new VesselCaptainAssignedEvent
func NewVesselCaptainAssignedEvent(vessel *Vessel, captainID uuid.UUID) *VesselCaptainAssignedEvent {
	return &VesselCaptainAssignedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeVesselCaptainAssigned, AggregateTypeVessel, vessel.ID, vessel.OrganizationID),
		CaptainID:       captainID,
	}
}

// VesselDeactivatedEvent is published when a vessel is deactivated
type VesselDeactivatedEvent struct {
	shared.BaseDomainEvent
	Name string `json:"name"`
}

// NewVesselDeactivatedEvent creates a new VesselDeactivatedEvent
func NewVesselDeactivatedEvent(vessel *Vessel) *VesselDeactivatedEvent {
	return &VesselDeactivatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeVesselDeactivated, AggregateTypeVessel, vessel.ID, vessel.OrganizationID),
		Name:            vessel.Name,
	}
}
