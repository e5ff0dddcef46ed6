package identity

import (
	"strings"
	"time"

	"github.com/sandarbhasthana/ship-reporting-sub001/internal/domain/shared"
)

// Organization represents a ship operator and is the tenant boundary:
// users, vessels, and inspection reports are scoped to one organization.
// It is the aggregate root for organization-related operations.
type Organization struct {
	shared.BaseAggregateRoot
	Name         string
	ContactName  string
	ContactEmail string
	ContactPhone string
	Address      string
	Active       bool
}

// NewOrganization creates a new active organization
func NewOrganization(name string) (*Organization, error) {
	if err := validateOrganizationName(name); err != nil {
		return nil, err
	}

	org := &Organization{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              strings.TrimSpace(name),
		Active:            true,
	}

	org.AddDomainEvent(NewOrganizationCreatedEvent(org))

	return org, nil
}

// Rename changes the organization's name
func (o *Organization) Rename(name string) error {
	if err := validateOrganizationName(name); err != nil {
		return err
	}

	o.Name = strings.TrimSpace(name)
	o.UpdatedAt = time.Now()
	o.IncrementVersion()

	return nil
}

// SetContact sets the organization's contact information
func (o *Organization) SetContact(contactName, email, phone string) error {
	if contactName != "" && len(contactName) > 100 {
		return shared.NewDomainError("INVALID_CONTACT_NAME", "Contact name cannot exceed 100 characters")
	}
	if email != "" {
		if err := validateEmail(email); err != nil {
			return err
		}
		email = strings.ToLower(strings.TrimSpace(email))
	}
	if phone != "" && len(phone) > 50 {
		return shared.NewDomainError("INVALID_PHONE", "Phone cannot exceed 50 characters")
	}

	o.ContactName = strings.TrimSpace(contactName)
	o.ContactEmail = email
	o.ContactPhone = strings.TrimSpace(phone)
	o.UpdatedAt = time.Now()
	o.IncrementVersion()

	return nil
}

// SetAddress sets the organization's address
func (o *Organization) SetAddress(address string) error {
	if len(address) > 500 {
		return shared.NewDomainError("INVALID_ADDRESS", "Address cannot exceed 500 characters")
	}

	o.Address = strings.TrimSpace(address)
	o.UpdatedAt = time.Now()
	o.IncrementVersion()

	return nil
}

// Deactivate soft-deletes the organization. Its users can no longer log in
// and the organization disappears from default listings.
func (o *Organization) Deactivate() error {
	if !o.Active {
		return shared.NewDomainError("ALREADY_DEACTIVATED", "Organization is already deactivated")
	}

	o.Active = false
	o.UpdatedAt = time.Now()
	o.IncrementVersion()

	o.AddDomainEvent(NewOrganizationDeactivatedEvent(o))

	return nil
}

// Activate restores a deactivated organization
func (o *Organization) Activate() error {
	if o.Active {
		return shared.NewDomainError("ALREADY_ACTIVE", "Organization is already active")
	}

	o.Active = true
	o.UpdatedAt = time.Now()
	o.IncrementVersion()

	return nil
}

func validateOrganizationName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_ORG_NAME", "Organization name cannot be empty")
	}
	if len(name) < 2 {
		return shared.NewDomainError("INVALID_ORG_NAME", "Organization name must be at least 2 characters")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_ORG_NAME", "Organization name cannot exceed 200 characters")
	}
	return nil
}
