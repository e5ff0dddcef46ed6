package fleet

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sandarbhasthana/ship-reporting-sub001/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// VesselType classifies a vessel
type VesselType string

const (
	VesselTypeCargo     VesselType = "CARGO"
	VesselTypeTanker    VesselType = "TANKER"
	VesselTypePassenger VesselType = "PASSENGER"
	VesselTypeFishing   VesselType = "FISHING"
	VesselTypeTug       VesselType = "TUG"
	VesselTypeOffshore  VesselType = "OFFSHORE"
	VesselTypeOther     VesselType = "OTHER"
)

// IsValid returns true if the vessel type is known
func (t VesselType) IsValid() bool {
	switch t {
	case VesselTypeCargo, VesselTypeTanker, VesselTypePassenger,
		VesselTypeFishing, VesselTypeTug, VesselTypeOffshore, VesselTypeOther:
		return true
	}
	return false
}

// Vessel represents a ship registered by an organization.
// It is the aggregate root for fleet operations. The IMO number is unique
// across the whole platform, not per organization.
type Vessel struct {
	shared.OrgAggregateRoot
	Name         string
	IMONumber    string
	FlagState    string
	Type         VesselType
	GrossTonnage decimal.Decimal
	YearBuilt    int
	CaptainID    *uuid.UUID
	Active       bool
}

// NewVessel creates a new active vessel
func NewVessel(organizationID uuid.UUID, name, imoNumber string, vesselType VesselType) (*Vessel, error) {
	if err := validateVesselName(name); err != nil {
		return nil, err
	}
	imoNumber = strings.TrimSpace(imoNumber)
	if err := ValidateIMONumber(imoNumber); err != nil {
		return nil, err
	}
	if !vesselType.IsValid() {
		return nil, shared.NewDomainError("INVALID_VESSEL_TYPE", "Unknown vessel type")
	}

	vessel := &Vessel{
		OrgAggregateRoot: shared.NewOrgAggregateRoot(organizationID),
		Name:             strings.TrimSpace(name),
		IMONumber:        imoNumber,
		Type:             vesselType,
		GrossTonnage:     decimal.Zero,
		Active:           true,
	}

	vessel.AddDomainEvent(NewVesselRegisteredEvent(vessel))

	return vessel, nil
}

// Rename changes the vessel's name
func (v *Vessel) Rename(name string) error {
	if err := validateVesselName(name); err != nil {
		return err
	}

	v.Name = strings.TrimSpace(name)
	v.UpdatedAt = time.Now()
	v.IncrementVersion()

	return nil
}

// SetFlagState sets the vessel's flag state
func (v *Vessel) SetFlagState(flagState string) error {
	if len(flagState) > 100 {
		return shared.NewDomainError("INVALID_FLAG_STATE", "Flag state cannot exceed 100 characters")
	}

	v.FlagState = strings.TrimSpace(flagState)
	v.UpdatedAt = time.Now()
	v.IncrementVersion()

	return nil
}

// SetType changes the vessel's type
func (v *Vessel) SetType(vesselType VesselType) error {
	if !vesselType.IsValid() {
		return shared.NewDomainError("INVALID_VESSEL_TYPE", "Unknown vessel type")
	}

	v.Type = vesselType
	v.UpdatedAt = time.Now()
	v.IncrementVersion()

	return nil
}

// SetGrossTonnage sets the vessel's gross tonnage
func (v *Vessel) SetGrossTonnage(tonnage decimal.Decimal) error {
	if tonnage.IsNegative() {
		return shared.NewDomainError("INVALID_TONNAGE", "Gross tonnage cannot be negative")
	}

	v.GrossTonnage = tonnage
	v.UpdatedAt = time.Now()
	v.IncrementVersion()

	return nil
}

// SetYearBuilt sets the vessel's build year
func (v *Vessel) SetYearBuilt(year int) error {
	if year != 0 && (year < 1850 || year > time.Now().Year()+1) {
		return shared.NewDomainError("INVALID_YEAR_BUILT", "Year built is out of range")
	}

	v.YearBuilt = year
	v.UpdatedAt = time.Now()
	v.IncrementVersion()

	return nil
}

// AssignCaptain binds a captain user to the vessel. The caller is
// responsible for verifying the user is an active captain of the same
// organization.
func (v *Vessel) AssignCaptain(captainID uuid.UUID) error {
	if captainID == uuid.Nil {
		return shared.NewDomainError("INVALID_CAPTAIN_ID", "Captain ID cannot be empty")
	}

	v.CaptainID = &captainID
	v.UpdatedAt = time.Now()
	v.IncrementVersion()

	v.AddDomainEvent(NewVesselCaptainAssignedEvent(v, captainID))

	return nil
}

// UnassignCaptain clears the vessel's captain
func (v *Vessel) UnassignCaptain() {
	v.CaptainID = nil
	v.UpdatedAt = time.Now()
	v.IncrementVersion()
}

// Deactivate soft-deletes the vessel. Deactivated vessels are excluded from
// default listings and refuse new inspection reports.
func (v *Vessel) Deactivate() error {
	if !v.Active {
		return shared.NewDomainError("ALREADY_DEACTIVATED", "Vessel is already deactivated")
	}

	v.Active = false
	v.UpdatedAt = time.Now()
	v.IncrementVersion()

	v.AddDomainEvent(NewVesselDeactivatedEvent(v))

	return nil
}

// Activate restores a deactivated vessel
func (v *Vessel) Activate() error {
	if v.Active {
		return shared.NewDomainError("ALREADY_ACTIVE", "Vessel is already active")
	}

	v.Active = true
	v.UpdatedAt = time.Now()
	v.IncrementVersion()

	return nil
}

// Validation functions

var imoRegex = regexp.MustCompile(`^[0-9]{7}$`)

// ValidateIMONumber validates a 7-digit IMO number including its check digit.
// The check digit is the last digit: sum of the first six digits multiplied
// by weights 7..2, modulo 10.
func ValidateIMONumber(imo string) error {
	if !imoRegex.MatchString(imo) {
		return shared.NewDomainError("INVALID_IMO", "IMO number must be exactly 7 digits")
	}

	sum := 0
	for i := 0; i < 6; i++ {
		sum += int(imo[i]-'0') * (7 - i)
	}
	if sum%10 != int(imo[6]-'0') {
		return shared.NewDomainError("INVALID_IMO", "IMO number check digit is invalid")
	}

	return nil
}

func validateVesselName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_VESSEL_NAME", "Vessel name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_VESSEL_NAME", "Vessel name cannot exceed 200 characters")
	}
	return nil
}
