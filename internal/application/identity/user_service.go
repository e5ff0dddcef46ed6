package identity

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	auditapp "github.com/sandarbhasthana/ship-reporting-sub001/internal/application/audit"
	domainaudit "github.com/sandarbhasthana/ship-reporting-sub001/internal/domain/audit"
	"github.com/sandarbhasthana/ship-reporting-sub001/internal/domain/fleet"
	"github.com/sandarbhasthana/ship-reporting-sub001/internal/domain/identity"
	"github.com/sandarbhasthana/ship-reporting-sub001/internal/domain/shared"
)

// UserService handles user account management within an organization
type UserService struct {
	userRepo   identity.UserRepository
	orgRepo    identity.OrganizationRepository
	vesselRepo fleet.VesselRepository
	recorder   *auditapp.Recorder
	logger     *zap.Logger
}

// NewUserService creates a new user service
func NewUserService(
	userRepo identity.UserRepository,
	orgRepo identity.OrganizationRepository,
	vesselRepo fleet.VesselRepository,
	recorder *auditapp.Recorder,
	logger *zap.Logger,
) *UserService {
	return &UserService{
		userRepo:   userRepo,
		orgRepo:    orgRepo,
		vesselRepo: vesselRepo,
		recorder:   recorder,
		logger:     logger,
	}
}

// Create creates a new user account
func (s *UserService) Create(ctx context.Context, input CreateUserInput) (*identity.User, error) {
	if !input.Actor.Role.CanManage(input.Role) {
		return nil, shared.ErrForbidden
	}
	if !input.Actor.IsSuperAdmin() && input.Actor.OrganizationID != input.OrganizationID {
		return nil, shared.ErrForbidden
	}

	// Target organization must exist and be active
	org, err := s.orgRepo.FindByID(ctx, input.OrganizationID)
	if err != nil {
		return nil, shared.NewDomainError("ORGANIZATION_NOT_FOUND", "Organization not found")
	}
	if !org.Active {
		return nil, shared.NewDomainError("ORGANIZATION_INACTIVE", "Organization has been deactivated")
	}

	exists, err := s.userRepo.ExistsByEmail(ctx, input.Email)
	if err != nil {
		s.logger.Error("Failed to check email uniqueness", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to check email")
	}
	if exists {
		return nil, shared.ErrAlreadyExists
	}

	user, err := identity.NewUser(input.OrganizationID, input.Email, input.Password, input.Role)
	if err != nil {
		return nil, err
	}

	if input.DisplayName != "" {
		if err := user.SetDisplayName(input.DisplayName); err != nil {
			return nil, err
		}
	}

	var vessel *fleet.Vessel
	if input.VesselID != nil {
		vessel, err = s.loadAssignableVessel(ctx, input.OrganizationID, *input.VesselID)
		if err != nil {
			return nil, err
		}
		if err := user.AssignVessel(vessel.ID); err != nil {
			return nil, err
		}
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		s.logger.Error("Failed to create user", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to create user")
	}

	if vessel != nil {
		if err := s.bindVessel(ctx, vessel, user); err != nil {
			return nil, err
		}
	}

	s.recorder.Record(ctx, auditapp.RecordInput{
		OrganizationID: user.OrganizationID,
		Action:         domainaudit.ActionCreate,
		EntityType:     "user",
		EntityID:       user.ID,
		NewValue:       userSnapshot(user),
		ActorID:        &input.Actor.UserID,
		ActorEmail:     input.Actor.Email,
		IPAddress:      input.Actor.IPAddress,
		UserAgent:      input.Actor.UserAgent,
	})

	s.logger.Info("User created",
		zap.String("user_id", user.ID.String()),
		zap.String("org_id", user.OrganizationID.String()),
		zap.String("role", string(user.Role)))

	return user, nil
}

// Update modifies a user's profile fields
func (s *UserService) Update(ctx context.Context, input UpdateUserInput) (*identity.User, error) {
	user, err := s.loadManagedUser(ctx, input.Actor, input.UserID)
	if err != nil {
		return nil, err
	}

	before := userSnapshot(user)

	if input.Email != nil && *input.Email != user.Email {
		exists, err := s.userRepo.ExistsByEmail(ctx, *input.Email)
		if err != nil {
			s.logger.Error("Failed to check email uniqueness", zap.Error(err))
			return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to check email")
		}
		if exists {
			return nil, shared.ErrAlreadyExists
		}
		if err := user.SetEmail(*input.Email); err != nil {
			return nil, err
		}
	}

	if input.DisplayName != nil {
		if err := user.SetDisplayName(*input.DisplayName); err != nil {
			return nil, err
		}
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		s.logger.Error("Failed to update user", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to update user")
	}

	s.recorder.Record(ctx, auditapp.RecordInput{
		OrganizationID: user.OrganizationID,
		Action:         domainaudit.ActionUpdate,
		EntityType:     "user",
		EntityID:       user.ID,
		OldValue:       before,
		NewValue:       userSnapshot(user),
		ActorID:        &input.Actor.UserID,
		ActorEmail:     input.Actor.Email,
		IPAddress:      input.Actor.IPAddress,
		UserAgent:      input.Actor.UserAgent,
	})

	return user, nil
}

// ChangeRole changes a user's role. The actor must be allowed to manage both
// the current and the target role.
func (s *UserService) ChangeRole(ctx context.Context, input ChangeUserRoleInput) (*identity.User, error) {
	if !input.Actor.Role.CanManage(input.Role) {
		return nil, shared.ErrForbidden
	}

	user, err := s.loadManagedUser(ctx, input.Actor, input.UserID)
	if err != nil {
		return nil, err
	}

	before := userSnapshot(user)

	// Leaving the captain role releases the vessel on both sides
	if user.Role == identity.RoleCaptain && input.Role != identity.RoleCaptain && user.VesselID != nil {
		if err := s.releaseVessel(ctx, *user.VesselID, user.ID); err != nil {
			return nil, err
		}
	}

	if err := user.ChangeRole(input.Role); err != nil {
		return nil, err
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		s.logger.Error("Failed to change user role", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to change user role")
	}

	s.recorder.Record(ctx, auditapp.RecordInput{
		OrganizationID: user.OrganizationID,
		Action:         domainaudit.ActionUpdate,
		EntityType:     "user",
		EntityID:       user.ID,
		OldValue:       before,
		NewValue:       userSnapshot(user),
		ActorID:        &input.Actor.UserID,
		ActorEmail:     input.Actor.Email,
		IPAddress:      input.Actor.IPAddress,
		UserAgent:      input.Actor.UserAgent,
	})

	s.logger.Info("User role changed",
		zap.String("user_id", user.ID.String()),
		zap.String("role", string(user.Role)))

	return user, nil
}

// AssignVessel assigns a captain to a vessel in their organization
func (s *UserService) AssignVessel(ctx context.Context, input AssignUserVesselInput) (*identity.User, error) {
	user, err := s.loadManagedUser(ctx, input.Actor, input.UserID)
	if err != nil {
		return nil, err
	}

	vessel, err := s.loadAssignableVessel(ctx, user.OrganizationID, input.VesselID)
	if err != nil {
		return nil, err
	}

	before := userSnapshot(user)

	// Release the vessel the user currently holds
	if user.VesselID != nil && *user.VesselID != vessel.ID {
		if err := s.releaseVessel(ctx, *user.VesselID, user.ID); err != nil {
			return nil, err
		}
	}

	if err := user.AssignVessel(vessel.ID); err != nil {
		return nil, err
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		s.logger.Error("Failed to assign vessel", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to assign vessel")
	}

	if err := s.bindVessel(ctx, vessel, user); err != nil {
		return nil, err
	}

	s.recorder.Record(ctx, auditapp.RecordInput{
		OrganizationID: user.OrganizationID,
		Action:         domainaudit.ActionAssign,
		EntityType:     "user",
		EntityID:       user.ID,
		OldValue:       before,
		NewValue:       userSnapshot(user),
		ActorID:        &input.Actor.UserID,
		ActorEmail:     input.Actor.Email,
		IPAddress:      input.Actor.IPAddress,
		UserAgent:      input.Actor.UserAgent,
	})

	return user, nil
}

// UnassignVessel removes a captain's vessel assignment
func (s *UserService) UnassignVessel(ctx context.Context, actor Actor, userID uuid.UUID) (*identity.User, error) {
	user, err := s.loadManagedUser(ctx, actor, userID)
	if err != nil {
		return nil, err
	}

	before := userSnapshot(user)

	if user.VesselID != nil {
		if err := s.releaseVessel(ctx, *user.VesselID, user.ID); err != nil {
			return nil, err
		}
	}
	user.UnassignVessel()

	if err := s.userRepo.Update(ctx, user); err != nil {
		s.logger.Error("Failed to unassign vessel", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to unassign vessel")
	}

	s.recorder.Record(ctx, auditapp.RecordInput{
		OrganizationID: user.OrganizationID,
		Action:         domainaudit.ActionAssign,
		EntityType:     "user",
		EntityID:       user.ID,
		OldValue:       before,
		NewValue:       userSnapshot(user),
		ActorID:        &actor.UserID,
		ActorEmail:     actor.Email,
		IPAddress:      actor.IPAddress,
		UserAgent:      actor.UserAgent,
	})

	return user, nil
}

// Deactivate soft deletes a user account
func (s *UserService) Deactivate(ctx context.Context, actor Actor, userID uuid.UUID) error {
	if actor.UserID == userID {
		return shared.NewDomainError("SELF_DEACTIVATION", "You cannot deactivate your own account")
	}
	return s.setActive(ctx, actor, userID, false)
}

// Activate restores a soft-deleted user account
func (s *UserService) Activate(ctx context.Context, actor Actor, userID uuid.UUID) error {
	return s.setActive(ctx, actor, userID, true)
}

// Unlock clears a user's login lockout
func (s *UserService) Unlock(ctx context.Context, actor Actor, userID uuid.UUID) error {
	user, err := s.loadManagedUser(ctx, actor, userID)
	if err != nil {
		return err
	}

	if err := user.Unlock(); err != nil {
		return err
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		s.logger.Error("Failed to unlock user", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to unlock user")
	}

	s.recorder.Record(ctx, auditapp.RecordInput{
		OrganizationID: user.OrganizationID,
		Action:         domainaudit.ActionStatusChange,
		EntityType:     "user",
		EntityID:       user.ID,
		NewValue:       map[string]any{"locked": false},
		ActorID:        &actor.UserID,
		ActorEmail:     actor.Email,
		IPAddress:      actor.IPAddress,
		UserAgent:      actor.UserAgent,
	})

	s.logger.Info("User unlocked", zap.String("user_id", user.ID.String()))

	return nil
}

// ResetPassword sets a new password on a managed user without requiring the
// current one
func (s *UserService) ResetPassword(ctx context.Context, actor Actor, userID uuid.UUID, newPassword string) error {
	user, err := s.loadManagedUser(ctx, actor, userID)
	if err != nil {
		return err
	}

	if err := user.SetPassword(newPassword); err != nil {
		return err
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		s.logger.Error("Failed to reset password", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to reset password")
	}

	s.recorder.Record(ctx, auditapp.RecordInput{
		OrganizationID: user.OrganizationID,
		Action:         domainaudit.ActionUpdate,
		EntityType:     "user",
		EntityID:       user.ID,
		NewValue:       map[string]any{"password_reset": true},
		ActorID:        &actor.UserID,
		ActorEmail:     actor.Email,
		IPAddress:      actor.IPAddress,
		UserAgent:      actor.UserAgent,
	})

	s.logger.Info("User password reset", zap.String("user_id", user.ID.String()))

	return nil
}

// Get returns a single user scoped to the actor's reach
func (s *UserService) Get(ctx context.Context, actor Actor, userID uuid.UUID) (*identity.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, shared.ErrNotFound
	}

	// Cross-organization access is refused outright
	if !actor.IsSuperAdmin() && user.OrganizationID != actor.OrganizationID {
		return nil, shared.ErrForbidden
	}

	return user, nil
}

// List returns users in an organization matching the filters
func (s *UserService) List(ctx context.Context, actor Actor, input ListUsersInput) (*ListUsersResult, error) {
	orgID := input.OrganizationID
	if !actor.IsSuperAdmin() {
		orgID = actor.OrganizationID
	}

	filter := identity.NewUserFilter().WithOrganization(orgID)
	if input.Keyword != "" {
		filter = filter.WithKeyword(input.Keyword)
	}
	if input.Role != nil {
		filter = filter.WithRole(*input.Role)
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

	users, total, err := s.userRepo.FindAll(ctx, filter)
	if err != nil {
		s.logger.Error("Failed to list users", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to list users")
	}

	return &ListUsersResult{
		Users:    users,
		Total:    total,
		Page:     filter.Page,
		PageSize: filter.Limit(),
	}, nil
}

func (s *UserService) setActive(ctx context.Context, actor Actor, userID uuid.UUID, active bool) error {
	user, err := s.loadManagedUser(ctx, actor, userID)
	if err != nil {
		return err
	}

	before := userSnapshot(user)
	if active {
		err = user.Activate()
	} else {
		err = user.Deactivate()
	}
	if err != nil {
		return err
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		s.logger.Error("Failed to update user status", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to update user status")
	}

	s.recorder.Record(ctx, auditapp.RecordInput{
		OrganizationID: user.OrganizationID,
		Action:         domainaudit.ActionStatusChange,
		EntityType:     "user",
		EntityID:       user.ID,
		OldValue:       before,
		NewValue:       userSnapshot(user),
		ActorID:        &actor.UserID,
		ActorEmail:     actor.Email,
		IPAddress:      actor.IPAddress,
		UserAgent:      actor.UserAgent,
	})

	s.logger.Info("User status changed",
		zap.String("user_id", user.ID.String()),
		zap.Bool("active", active))

	return nil
}

// loadManagedUser loads a user the actor is allowed to manage. Users in
// foreign organizations and users the actor's role cannot manage come back
// as forbidden.
func (s *UserService) loadManagedUser(ctx context.Context, actor Actor, userID uuid.UUID) (*identity.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, shared.ErrNotFound
	}

	if !actor.IsSuperAdmin() && user.OrganizationID != actor.OrganizationID {
		return nil, shared.ErrForbidden
	}

	if !actor.Role.CanManage(user.Role) {
		return nil, shared.ErrForbidden
	}

	return user, nil
}

// loadAssignableVessel verifies the vessel exists, is active, and belongs
// to the given organization
func (s *UserService) loadAssignableVessel(ctx context.Context, orgID, vesselID uuid.UUID) (*fleet.Vessel, error) {
	vessel, err := s.vesselRepo.FindByID(ctx, vesselID)
	if err != nil {
		return nil, shared.NewDomainError("VESSEL_NOT_FOUND", "Vessel not found")
	}
	if vessel.OrganizationID != orgID {
		return nil, shared.NewDomainError("VESSEL_NOT_FOUND", "Vessel not found")
	}
	if !vessel.Active {
		return nil, shared.NewDomainError("VESSEL_INACTIVE", "Vessel has been deactivated")
	}
	return vessel, nil
}

// bindVessel points a vessel at its new captain, releasing any previous
// captain, and persists the vessel side of the pairing
func (s *UserService) bindVessel(ctx context.Context, vessel *fleet.Vessel, user *identity.User) error {
	if vessel.CaptainID != nil && *vessel.CaptainID != user.ID {
		previous, err := s.userRepo.FindByID(ctx, *vessel.CaptainID)
		if err == nil {
			previous.UnassignVessel()
			if err := s.userRepo.Update(ctx, previous); err != nil {
				s.logger.Error("Failed to update previous captain", zap.Error(err))
				return shared.NewDomainError("INTERNAL_ERROR", "Failed to assign vessel")
			}
		}
	}

	if err := vessel.AssignCaptain(user.ID); err != nil {
		return err
	}
	if err := s.vesselRepo.Update(ctx, vessel); err != nil {
		s.logger.Error("Failed to update vessel", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to assign vessel")
	}
	return nil
}

// releaseVessel clears a vessel's captain reference when it still points at
// the given user
func (s *UserService) releaseVessel(ctx context.Context, vesselID, userID uuid.UUID) error {
	vessel, err := s.vesselRepo.FindByID(ctx, vesselID)
	if err != nil {
		return nil
	}
	if vessel.CaptainID == nil || *vessel.CaptainID != userID {
		return nil
	}
	vessel.UnassignCaptain()
	if err := s.vesselRepo.Update(ctx, vessel); err != nil {
		s.logger.Error("Failed to release previous vessel", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to unassign vessel")
	}
	return nil
}

// userSnapshot captures audit-relevant user fields. Credentials never enter
// the audit trail.
func userSnapshot(user *identity.User) map[string]any {
	snapshot := map[string]any{
		"email":        user.Email,
		"display_name": user.DisplayName,
		"role":         string(user.Role),
		"active":       user.Active,
	}
	if user.VesselID != nil {
		snapshot["vessel_id"] = user.VesselID.String()
	}
	return snapshot
}
