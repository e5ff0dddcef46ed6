package identity

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	auditapp "github.com/sandarbhasthana/ship-reporting-sub001/internal/application/audit"
	domainaudit "github.com/sandarbhasthana/ship-reporting-sub001/internal/domain/audit"
	"github.com/sandarbhasthana/ship-reporting-sub001/internal/domain/identity"
	"github.com/sandarbhasthana/ship-reporting-sub001/internal/domain/shared"
)

// OrganizationService handles organization management. Creating, deactivating
// and reactivating organizations is restricted to platform operators; admins
// may view and update their own organization.
type OrganizationService struct {
	orgRepo  identity.OrganizationRepository
	recorder *auditapp.Recorder
	logger   *zap.Logger
}

// NewOrganizationService creates a new organization service
func NewOrganizationService(
	orgRepo identity.OrganizationRepository,
	recorder *auditapp.Recorder,
	logger *zap.Logger,
) *OrganizationService {
	return &OrganizationService{
		orgRepo:  orgRepo,
		recorder: recorder,
		logger:   logger,
	}
}

// Create registers a new organization on the platform
func (s *OrganizationService) Create(ctx context.Context, input CreateOrganizationInput) (*identity.Organization, error) {
	if !input.Actor.IsSuperAdmin() {
		return nil, shared.ErrForbidden
	}

	exists, err := s.orgRepo.ExistsByName(ctx, input.Name)
	if err != nil {
		s.logger.Error("Failed to check organization name", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to check organization name")
	}
	if exists {
		return nil, shared.ErrAlreadyExists
	}

	org, err := identity.NewOrganization(input.Name)
	if err != nil {
		return nil, err
	}

	if input.ContactName != "" || input.ContactEmail != "" || input.ContactPhone != "" {
		if err := org.SetContact(input.ContactName, input.ContactEmail, input.ContactPhone); err != nil {
			return nil, err
		}
	}
	if input.Address != "" {
		if err := org.SetAddress(input.Address); err != nil {
			return nil, err
		}
	}

	if err := s.orgRepo.Create(ctx, org); err != nil {
		s.logger.Error("Failed to create organization", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to create organization")
	}

	s.recorder.Record(ctx, auditapp.RecordInput{
		OrganizationID: org.ID,
		Action:         domainaudit.ActionCreate,
		EntityType:     "organization",
		EntityID:       org.ID,
		NewValue:       organizationSnapshot(org),
		ActorID:        &input.Actor.UserID,
		ActorEmail:     input.Actor.Email,
		IPAddress:      input.Actor.IPAddress,
		UserAgent:      input.Actor.UserAgent,
	})

	s.logger.Info("Organization created",
		zap.String("org_id", org.ID.String()),
		zap.String("name", org.Name))

	return org, nil
}

// Update modifies an organization's profile. Only fields present in the
// input are changed.
func (s *OrganizationService) Update(ctx context.Context, input UpdateOrganizationInput) (*identity.Organization, error) {
	if err := s.authorizeOrgAccess(input.Actor, input.OrganizationID); err != nil {
		return nil, err
	}

	org, err := s.orgRepo.FindByID(ctx, input.OrganizationID)
	if err != nil {
		return nil, shared.ErrNotFound
	}

	before := organizationSnapshot(org)

	if input.Name != nil && *input.Name != org.Name {
		exists, err := s.orgRepo.ExistsByName(ctx, *input.Name)
		if err != nil {
			s.logger.Error("Failed to check organization name", zap.Error(err))
			return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to check organization name")
		}
		if exists {
			return nil, shared.ErrAlreadyExists
		}
		if err := org.Rename(*input.Name); err != nil {
			return nil, err
		}
	}

	if input.ContactName != nil || input.ContactEmail != nil || input.ContactPhone != nil {
		contactName := org.ContactName
		contactEmail := org.ContactEmail
		contactPhone := org.ContactPhone
		if input.ContactName != nil {
			contactName = *input.ContactName
		}
		if input.ContactEmail != nil {
			contactEmail = *input.ContactEmail
		}
		if input.ContactPhone != nil {
			contactPhone = *input.ContactPhone
		}
		if err := org.SetContact(contactName, contactEmail, contactPhone); err != nil {
			return nil, err
		}
	}

	if input.Address != nil {
		if err := org.SetAddress(*input.Address); err != nil {
			return nil, err
		}
	}

	if err := s.orgRepo.Update(ctx, org); err != nil {
		s.logger.Error("Failed to update organization", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to update organization")
	}

	s.recorder.Record(ctx, auditapp.RecordInput{
		OrganizationID: org.ID,
		Action:         domainaudit.ActionUpdate,
		EntityType:     "organization",
		EntityID:       org.ID,
		OldValue:       before,
		NewValue:       organizationSnapshot(org),
		ActorID:        &input.Actor.UserID,
		ActorEmail:     input.Actor.Email,
		IPAddress:      input.Actor.IPAddress,
		UserAgent:      input.Actor.UserAgent,
	})

	return org, nil
}

// Get returns a single organization
func (s *OrganizationService) Get(ctx context.Context, actor Actor, organizationID uuid.UUID) (*identity.Organization, error) {
	if err := s.authorizeOrgAccess(actor, organizationID); err != nil {
		return nil, err
	}

	org, err := s.orgRepo.FindByID(ctx, organizationID)
	if err != nil {
		return nil, shared.ErrNotFound
	}

	return org, nil
}

// List returns organizations matching the filters. Non-platform actors only
// ever see their own organization.
func (s *OrganizationService) List(ctx context.Context, actor Actor, input ListOrganizationsInput) (*ListOrganizationsResult, error) {
	if !actor.IsSuperAdmin() {
		org, err := s.orgRepo.FindByID(ctx, actor.OrganizationID)
		if err != nil {
			return nil, shared.ErrNotFound
		}
		return &ListOrganizationsResult{
			Organizations: []*identity.Organization{org},
			Total:         1,
			Page:          1,
			PageSize:      1,
		}, nil
	}

	filter := identity.NewOrganizationFilter()
	if input.Keyword != "" {
		filter = filter.WithKeyword(input.Keyword)
	}
	if input.IncludeInactive {
		filter = filter.WithInactive()
	}
	if input.Page > 0 {
		filter = filter.WithPagination(input.Page, input.PageSize)
	}
	if input.SortBy != "" {
		filter = filter.WithSorting(input.SortBy, input.SortOrder)
	}

	orgs, total, err := s.orgRepo.FindAll(ctx, filter)
	if err != nil {
		s.logger.Error("Failed to list organizations", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to list organizations")
	}

	return &ListOrganizationsResult{
		Organizations: orgs,
		Total:         total,
		Page:          filter.Page,
		PageSize:      filter.Limit(),
	}, nil
}

// Deactivate soft deletes an organization
func (s *OrganizationService) Deactivate(ctx context.Context, actor Actor, organizationID uuid.UUID) error {
	return s.setActive(ctx, actor, organizationID, false)
}

// Activate restores a soft-deleted organization
func (s *OrganizationService) Activate(ctx context.Context, actor Actor, organizationID uuid.UUID) error {
	return s.setActive(ctx, actor, organizationID, true)
}

func (s *OrganizationService) setActive(ctx context.Context, actor Actor, organizationID uuid.UUID, active bool) error {
	if !actor.IsSuperAdmin() {
		return shared.ErrForbidden
	}

	org, err := s.orgRepo.FindByID(ctx, organizationID)
	if err != nil {
		return shared.ErrNotFound
	}

	before := organizationSnapshot(org)
	if active {
		err = org.Activate()
	} else {
		err = org.Deactivate()
	}
	if err != nil {
		return err
	}

	if err := s.orgRepo.Update(ctx, org); err != nil {
		s.logger.Error("Failed to update organization status", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to update organization status")
	}

	s.recorder.Record(ctx, auditapp.RecordInput{
		OrganizationID: org.ID,
		Action:         domainaudit.ActionStatusChange,
		EntityType:     "organization",
		EntityID:       org.ID,
		OldValue:       before,
		NewValue:       organizationSnapshot(org),
		ActorID:        &actor.UserID,
		ActorEmail:     actor.Email,
		IPAddress:      actor.IPAddress,
		UserAgent:      actor.UserAgent,
	})

	s.logger.Info("Organization status changed",
		zap.String("org_id", org.ID.String()),
		zap.Bool("active", active))

	return nil
}

// authorizeOrgAccess allows platform operators everywhere and admins within
// their own organization
func (s *OrganizationService) authorizeOrgAccess(actor Actor, organizationID uuid.UUID) error {
	if actor.IsSuperAdmin() {
		return nil
	}
	if actor.Role == identity.RoleAdmin && actor.OrganizationID == organizationID {
		return nil
	}
	return shared.ErrForbidden
}

// organizationSnapshot captures audit-relevant organization fields
func organizationSnapshot(org *identity.Organization) map[string]any {
	return map[string]any{
		"name":          org.Name,
		"contact_name":  org.ContactName,
		"contact_email": org.ContactEmail,
		"contact_phone": org.ContactPhone,
		"address":       org.Address,
		"active":        org.Active,
	}
}
