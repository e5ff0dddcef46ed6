package fleet

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

// VesselService handles fleet management. Registering and modifying vessels
// requires an admin; captains see only the vessel they are assigned to.
type VesselService struct {
	vesselRepo fleet.VesselRepository
	userRepo   identity.UserRepository
	recorder   *auditapp.Recorder
	logger     *zap.Logger
}

// NewVesselService creates a new vessel service
func NewVesselService(
	vesselRepo fleet.VesselRepository,
	userRepo identity.UserRepository,
	recorder *auditapp.Recorder,
	logger *zap.Logger,
) *VesselService {
	return &VesselService{
		vesselRepo: vesselRepo,
		userRepo:   userRepo,
		recorder:   recorder,
		logger:     logger,
	}
}

// Register registers a new vessel. The IMO number must be valid and not yet
// registered anywhere on the platform.
func (s *VesselService) Register(ctx context.Context, input RegisterVesselInput) (*fleet.Vessel, error) {
	if err := s.authorizeAdmin(input.Actor, input.OrganizationID); err != nil {
		return nil, err
	}

	exists, err := s.vesselRepo.ExistsByIMONumber(ctx, input.IMONumber)
	if err != nil {
		s.logger.Error("Failed to check IMO number", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to check IMO number")
	}
	if exists {
		return nil, shared.ErrAlreadyExists
	}

	vessel, err := fleet.NewVessel(input.OrganizationID, input.Name, input.IMONumber, input.Type)
	if err != nil {
		return nil, err
	}

	if input.FlagState != "" {
		if err := vessel.SetFlagState(input.FlagState); err != nil {
			return nil, err
		}
	}
	if input.GrossTonnage != nil {
		if err := vessel.SetGrossTonnage(*input.GrossTonnage); err != nil {
			return nil, err
		}
	}
	if input.YearBuilt != 0 {
		if err := vessel.SetYearBuilt(input.YearBuilt); err != nil {
			return nil, err
		}
	}

	if err := s.vesselRepo.Create(ctx, vessel); err != nil {
		s.logger.Error("Failed to create vessel", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to register vessel")
	}

	s.recorder.Record(ctx, auditapp.RecordInput{
		OrganizationID: vessel.OrganizationID,
		Action:         domainaudit.ActionCreate,
		EntityType:     "vessel",
		EntityID:       vessel.ID,
		NewValue:       vesselSnapshot(vessel),
		ActorID:        &input.Actor.UserID,
		ActorEmail:     input.Actor.Email,
		IPAddress:      input.Actor.IPAddress,
		UserAgent:      input.Actor.UserAgent,
	})

	s.logger.Info("Vessel registered",
		zap.String("vessel_id", vessel.ID.String()),
		zap.String("imo", vessel.IMONumber),
		zap.String("org_id", vessel.OrganizationID.String()))

	return vessel, nil
}

// Update modifies a vessel's profile. The IMO number is immutable.
func (s *VesselService) Update(ctx context.Context, input UpdateVesselInput) (*fleet.Vessel, error) {
	vessel, err := s.loadManagedVessel(ctx, input.Actor, input.VesselID)
	if err != nil {
		return nil, err
	}

	before := vesselSnapshot(vessel)

	if input.Name != nil {
		if err := vessel.Rename(*input.Name); err != nil {
			return nil, err
		}
	}
	if input.Type != nil {
		if err := vessel.SetType(*input.Type); err != nil {
			return nil, err
		}
	}
	if input.FlagState != nil {
		if err := vessel.SetFlagState(*input.FlagState); err != nil {
			return nil, err
		}
	}
	if input.GrossTonnage != nil {
		if err := vessel.SetGrossTonnage(*input.GrossTonnage); err != nil {
			return nil, err
		}
	}
	if input.YearBuilt != nil {
		if err := vessel.SetYearBuilt(*input.YearBuilt); err != nil {
			return nil, err
		}
	}

	if err := s.vesselRepo.Update(ctx, vessel); err != nil {
		s.logger.Error("Failed to update vessel", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to update vessel")
	}

	s.recorder.Record(ctx, auditapp.RecordInput{
		OrganizationID: vessel.OrganizationID,
		Action:         domainaudit.ActionUpdate,
		EntityType:     "vessel",
		EntityID:       vessel.ID,
		OldValue:       before,
		NewValue:       vesselSnapshot(vessel),
		ActorID:        &input.Actor.UserID,
		ActorEmail:     input.Actor.Email,
		IPAddress:      input.Actor.IPAddress,
		UserAgent:      input.Actor.UserAgent,
	})

	return vessel, nil
}

// AssignCaptain assigns a captain to a vessel. The captain must be an active
// captain in the vessel's organization. The assignment is kept symmetric: the
// vessel points at the captain and the captain's user record points back.
func (s *VesselService) AssignCaptain(ctx context.Context, input AssignCaptainInput) (*fleet.Vessel, error) {
	vessel, err := s.loadManagedVessel(ctx, input.Actor, input.VesselID)
	if err != nil {
		return nil, err
	}

	captain, err := s.userRepo.FindByID(ctx, input.CaptainID)
	if err != nil {
		return nil, shared.NewDomainError("CAPTAIN_NOT_FOUND", "Captain not found")
	}
	if captain.OrganizationID != vessel.OrganizationID {
		return nil, shared.NewDomainError("CAPTAIN_NOT_FOUND", "Captain not found")
	}
	if captain.Role != identity.RoleCaptain {
		return nil, shared.NewDomainError("NOT_A_CAPTAIN", "Only captains can be assigned to a vessel")
	}
	if !captain.Active {
		return nil, shared.NewDomainError("CAPTAIN_INACTIVE", "Captain has been deactivated")
	}

	before := vesselSnapshot(vessel)

	// A vessel holds one captain; reassignment releases the previous one
	if vessel.CaptainID != nil && *vessel.CaptainID != captain.ID {
		previous, err := s.userRepo.FindByID(ctx, *vessel.CaptainID)
		if err == nil {
			previous.UnassignVessel()
			if err := s.userRepo.Update(ctx, previous); err != nil {
				s.logger.Error("Failed to update previous captain", zap.Error(err))
				return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to assign captain")
			}
		}
	}

	if err := vessel.AssignCaptain(captain.ID); err != nil {
		return nil, err
	}
	if err := captain.AssignVessel(vessel.ID); err != nil {
		return nil, err
	}

	if err := s.vesselRepo.Update(ctx, vessel); err != nil {
		s.logger.Error("Failed to update vessel", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to assign captain")
	}
	if err := s.userRepo.Update(ctx, captain); err != nil {
		s.logger.Error("Failed to update captain", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to assign captain")
	}

	s.recorder.Record(ctx, auditapp.RecordInput{
		OrganizationID: vessel.OrganizationID,
		Action:         domainaudit.ActionAssign,
		EntityType:     "vessel",
		EntityID:       vessel.ID,
		OldValue:       before,
		NewValue:       vesselSnapshot(vessel),
		ActorID:        &input.Actor.UserID,
		ActorEmail:     input.Actor.Email,
		IPAddress:      input.Actor.IPAddress,
		UserAgent:      input.Actor.UserAgent,
	})

	s.logger.Info("Captain assigned to vessel",
		zap.String("vessel_id", vessel.ID.String()),
		zap.String("captain_id", captain.ID.String()))

	return vessel, nil
}

// UnassignCaptain clears a vessel's captain and the captain's back-reference
func (s *VesselService) UnassignCaptain(ctx context.Context, actor Actor, vesselID uuid.UUID) (*fleet.Vessel, error) {
	vessel, err := s.loadManagedVessel(ctx, actor, vesselID)
	if err != nil {
		return nil, err
	}

	before := vesselSnapshot(vessel)

	if vessel.CaptainID != nil {
		captain, err := s.userRepo.FindByID(ctx, *vessel.CaptainID)
		if err == nil {
			captain.UnassignVessel()
			if err := s.userRepo.Update(ctx, captain); err != nil {
				s.logger.Error("Failed to update captain", zap.Error(err))
				return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to unassign captain")
			}
		}
	}

	vessel.UnassignCaptain()

	if err := s.vesselRepo.Update(ctx, vessel); err != nil {
		s.logger.Error("Failed to update vessel", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to unassign captain")
	}

	s.recorder.Record(ctx, auditapp.RecordInput{
		OrganizationID: vessel.OrganizationID,
		Action:         domainaudit.ActionAssign,
		EntityType:     "vessel",
		EntityID:       vessel.ID,
		OldValue:       before,
		NewValue:       vesselSnapshot(vessel),
		ActorID:        &actor.UserID,
		ActorEmail:     actor.Email,
		IPAddress:      actor.IPAddress,
		UserAgent:      actor.UserAgent,
	})

	return vessel, nil
}

// Deactivate soft deletes a vessel
func (s *VesselService) Deactivate(ctx context.Context, actor Actor, vesselID uuid.UUID) error {
	return s.setActive(ctx, actor, vesselID, false)
}

// Activate restores a soft-deleted vessel
func (s *VesselService) Activate(ctx context.Context, actor Actor, vesselID uuid.UUID) error {
	return s.setActive(ctx, actor, vesselID, true)
}

// Get returns a single vessel scoped to the actor's reach. Captains can only
// read the vessel they are assigned to.
func (s *VesselService) Get(ctx context.Context, actor Actor, vesselID uuid.UUID) (*fleet.Vessel, error) {
	vessel, err := s.vesselRepo.FindByID(ctx, vesselID)
	if err != nil {
		return nil, shared.ErrNotFound
	}

	// Cross-organization access is refused outright
	if !actor.IsSuperAdmin() && vessel.OrganizationID != actor.OrganizationID {
		return nil, shared.ErrForbidden
	}

	if actor.Role == identity.RoleCaptain {
		if actor.VesselID == nil || *actor.VesselID != vessel.ID {
			return nil, shared.ErrForbidden
		}
	}

	return vessel, nil
}

// List returns vessels matching the filters. Captains only ever see their
// own vessel.
func (s *VesselService) List(ctx context.Context, actor Actor, input ListVesselsInput) (*ListVesselsResult, error) {
	orgID := input.OrganizationID
	if !actor.IsSuperAdmin() {
		orgID = actor.OrganizationID
	}

	filter := fleet.NewVesselFilter().WithOrganization(orgID)

	if actor.Role == identity.RoleCaptain {
		if actor.VesselID == nil {
			return &ListVesselsResult{Vessels: []*fleet.Vessel{}, Page: 1, PageSize: filter.Limit()}, nil
		}
		filter = filter.WithVessel(*actor.VesselID)
	}

	if input.Keyword != "" {
		filter = filter.WithKeyword(input.Keyword)
	}
	if input.Type != nil {
		filter = filter.WithType(*input.Type)
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

	vessels, total, err := s.vesselRepo.FindAll(ctx, filter)
	if err != nil {
		s.logger.Error("Failed to list vessels", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to list vessels")
	}

	return &ListVesselsResult{
		Vessels:  vessels,
		Total:    total,
		Page:     filter.Page,
		PageSize: filter.Limit(),
	}, nil
}

func (s *VesselService) setActive(ctx context.Context, actor Actor, vesselID uuid.UUID, active bool) error {
	vessel, err := s.loadManagedVessel(ctx, actor, vesselID)
	if err != nil {
		return err
	}

	before := vesselSnapshot(vessel)
	if active {
		err = vessel.Activate()
	} else {
		err = vessel.Deactivate()
	}
	if err != nil {
		return err
	}

	if err := s.vesselRepo.Update(ctx, vessel); err != nil {
		s.logger.Error("Failed to update vessel status", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to update vessel status")
	}

	s.recorder.Record(ctx, auditapp.RecordInput{
		OrganizationID: vessel.OrganizationID,
		Action:         domainaudit.ActionStatusChange,
		EntityType:     "vessel",
		EntityID:       vessel.ID,
		OldValue:       before,
		NewValue:       vesselSnapshot(vessel),
		ActorID:        &actor.UserID,
		ActorEmail:     actor.Email,
		IPAddress:      actor.IPAddress,
		UserAgent:      actor.UserAgent,
	})

	s.logger.Info("Vessel status changed",
		zap.String("vessel_id", vessel.ID.String()),
		zap.Bool("active", active))

	return nil
}

// authorizeAdmin allows platform operators everywhere and admins within
// their own organization
func (s *VesselService) authorizeAdmin(actor Actor, organizationID uuid.UUID) error {
	if actor.IsSuperAdmin() {
		return nil
	}
	if actor.Role == identity.RoleAdmin && actor.OrganizationID == organizationID {
		return nil
	}
	return shared.ErrForbidden
}

// loadManagedVessel loads a vessel the actor may modify. Vessels in foreign
// organizations come back as forbidden; captains may never modify vessels.
func (s *VesselService) loadManagedVessel(ctx context.Context, actor Actor, vesselID uuid.UUID) (*fleet.Vessel, error) {
	vessel, err := s.vesselRepo.FindByID(ctx, vesselID)
	if err != nil {
		return nil, shared.ErrNotFound
	}

	if !actor.IsSuperAdmin() && vessel.OrganizationID != actor.OrganizationID {
		return nil, shared.ErrForbidden
	}

	if !actor.Role.AtLeast(identity.RoleAdmin) {
		return nil, shared.ErrForbidden
	}

	return vessel, nil
}

// vesselSnapshot captures audit-relevant vessel fields
func vesselSnapshot(vessel *fleet.Vessel) map[string]any {
	snapshot := map[string]any{
		"name":          vessel.Name,
		"imo_number":    vessel.IMONumber,
		"type":          string(vessel.Type),
		"flag_state":    vessel.FlagState,
		"gross_tonnage": vessel.GrossTonnage.String(),
		"year_built":    vessel.YearBuilt,
		"active":        vessel.Active,
	}
	if vessel.CaptainID != nil {
		snapshot["captain_id"] = vessel.CaptainID.String()
	}
	return snapshot
}
