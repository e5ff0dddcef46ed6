package fleet

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	auditapp "github.com/sandarbhasthana/ship-reporting-sub001/internal/application/audit"
	domainaudit "github.com/sandarbhasthana/ship-reporting-sub001/internal/domain/audit"
	"github.com/sandarbhasthana/ship-reporting-sub001/internal/domain/fleet"
	"github.com/sandarbhasthana/ship-reporting-sub001/internal/domain/identity"
	"github.com/sandarbhasthana/ship-reporting-sub001/internal/domain/shared"
)

// MockVesselRepository is a mock implementation of fleet.VesselRepository
type MockVesselRepository struct {
	mock.Mock
}

func (m *MockVesselRepository) Create(ctx context.Context, vessel *fleet.Vessel) error {
	args := m.Called(ctx, vessel)
	return args.Error(0)
}

func (m *MockVesselRepository) Update(ctx context.Context, vessel *fleet.Vessel) error {
	args := m.Called(ctx, vessel)
	return args.Error(0)
}

func (m *MockVesselRepository) FindByID(ctx context.Context, id uuid.UUID) (*fleet.Vessel, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*fleet.Vessel), args.Error(1)
}

func (m *MockVesselRepository) FindByIMONumber(ctx context.Context, imoNumber string) (*fleet.Vessel, error) {
	args := m.Called(ctx, imoNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*fleet.Vessel), args.Error(1)
}

func (m *MockVesselRepository) FindAll(ctx context.Context, filter fleet.VesselFilter) ([]*fleet.Vessel, int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]*fleet.Vessel), args.Get(1).(int64), args.Error(2)
}

func (m *MockVesselRepository) ExistsByIMONumber(ctx context.Context, imoNumber string) (bool, error) {
	args := m.Called(ctx, imoNumber)
	return args.Bool(0), args.Error(1)
}

func (m *MockVesselRepository) Count(ctx context.Context, filter fleet.VesselFilter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

// MockUserRepository is a mock implementation of identity.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *identity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *identity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*identity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindAll(ctx context.Context, filter identity.UserFilter) ([]*identity.User, int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]*identity.User), args.Get(1).(int64), args.Error(2)
}

func (m *MockUserRepository) FindByVesselID(ctx context.Context, vesselID uuid.UUID) ([]*identity.User, error) {
	args := m.Called(ctx, vesselID)
	return args.Get(0).([]*identity.User), args.Error(1)
}

func (m *MockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) Count(ctx context.Context, filter identity.UserFilter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

// MockLogRepository is a mock implementation of audit.LogRepository
type MockLogRepository struct {
	mock.Mock
}

func (m *MockLogRepository) Create(ctx context.Context, log *domainaudit.Log) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}

func (m *MockLogRepository) FindByID(ctx context.Context, id uuid.UUID) (*domainaudit.Log, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domainaudit.Log), args.Error(1)
}

func (m *MockLogRepository) FindAll(ctx context.Context, filter domainaudit.LogFilter) ([]*domainaudit.Log, int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]*domainaudit.Log), args.Get(1).(int64), args.Error(2)
}

func (m *MockLogRepository) Count(ctx context.Context, filter domainaudit.LogFilter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func createVesselService(vesselRepo *MockVesselRepository, userRepo *MockUserRepository) *VesselService {
	logRepo := new(MockLogRepository)
	logRepo.On("Create", mock.Anything, mock.Anything).Return(nil).Maybe()
	recorder := auditapp.NewRecorder(logRepo, zap.NewNop())
	return NewVesselService(vesselRepo, userRepo, recorder, zap.NewNop())
}

func adminActor(orgID uuid.UUID) Actor {
	return Actor{
		UserID:         uuid.New(),
		OrganizationID: orgID,
		Email:          "admin@example.com",
		Role:           identity.RoleAdmin,
	}
}

func captainActor(orgID uuid.UUID, vesselID *uuid.UUID) Actor {
	return Actor{
		UserID:         uuid.New(),
		OrganizationID: orgID,
		Email:          "captain@example.com",
		Role:           identity.RoleCaptain,
		VesselID:       vesselID,
	}
}

func TestVesselService_Register_Success(t *testing.T) {
	ctx := context.Background()
	orgID := uuid.New()
	vesselRepo := new(MockVesselRepository)

	vesselRepo.On("ExistsByIMONumber", ctx, "9074729").Return(false, nil)
	vesselRepo.On("Create", ctx, mock.Anything).Return(nil)

	svc := createVesselService(vesselRepo, new(MockUserRepository))

	tonnage := decimal.NewFromInt(52000)
	vessel, err := svc.Register(ctx, RegisterVesselInput{
		Actor:          adminActor(orgID),
		OrganizationID: orgID,
		Name:           "MV Aegean Star",
		IMONumber:      "9074729",
		Type:           fleet.VesselTypeCargo,
		FlagState:      "Norway",
		GrossTonnage:   &tonnage,
		YearBuilt:      2008,
	})

	require.NoError(t, err)
	assert.Equal(t, "MV Aegean Star", vessel.Name)
	assert.Equal(t, "9074729", vessel.IMONumber)
	assert.Equal(t, "Norway", vessel.FlagState)
	assert.Equal(t, 2008, vessel.YearBuilt)
	assert.True(t, vessel.Active)
	vesselRepo.AssertExpectations(t)
}

func TestVesselService_Register_DuplicateIMO(t *testing.T) {
	ctx := context.Background()
	orgID := uuid.New()
	vesselRepo := new(MockVesselRepository)

	vesselRepo.On("ExistsByIMONumber", ctx, "9074729").Return(true, nil)

	svc := createVesselService(vesselRepo, new(MockUserRepository))

	vessel, err := svc.Register(ctx, RegisterVesselInput{
		Actor:          adminActor(orgID),
		OrganizationID: orgID,
		Name:           "MV Aegean Star",
		IMONumber:      "9074729",
		Type:           fleet.VesselTypeCargo,
	})

	require.ErrorIs(t, err, shared.ErrAlreadyExists)
	assert.Nil(t, vessel)
}

func TestVesselService_Register_InvalidIMOCheckDigit(t *testing.T) {
	ctx := context.Background()
	orgID := uuid.New()
	vesselRepo := new(MockVesselRepository)

	vesselRepo.On("ExistsByIMONumber", ctx, "9074721").Return(false, nil)

	svc := createVesselService(vesselRepo, new(MockUserRepository))

	vessel, err := svc.Register(ctx, RegisterVesselInput{
		Actor:          adminActor(orgID),
		OrganizationID: orgID,
		Name:           "MV Aegean Star",
		IMONumber:      "9074721",
		Type:           fleet.VesselTypeCargo,
	})

	require.Error(t, err)
	assert.Nil(t, vessel)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_IMO", domainErr.Code)
}

func TestVesselService_Register_CaptainForbidden(t *testing.T) {
	ctx := context.Background()
	orgID := uuid.New()
	svc := createVesselService(new(MockVesselRepository), new(MockUserRepository))

	vessel, err := svc.Register(ctx, RegisterVesselInput{
		Actor:          captainActor(orgID, nil),
		OrganizationID: orgID,
		Name:           "MV Aegean Star",
		IMONumber:      "9074729",
		Type:           fleet.VesselTypeCargo,
	})

	require.ErrorIs(t, err, shared.ErrForbidden)
	assert.Nil(t, vessel)
}

func TestVesselService_Update_CrossOrgForbidden(t *testing.T) {
	ctx := context.Background()
	vesselRepo := new(MockVesselRepository)

	vessel, _ := fleet.NewVessel(uuid.New(), "MV Aegean Star", "9074729", fleet.VesselTypeCargo)
	vesselRepo.On("FindByID", ctx, vessel.ID).Return(vessel, nil)

	svc := createVesselService(vesselRepo, new(MockUserRepository))

	name := "MV Renamed"
	updated, err := svc.Update(ctx, UpdateVesselInput{
		Actor:    adminActor(uuid.New()),
		VesselID: vessel.ID,
		Name:     &name,
	})

	require.ErrorIs(t, err, shared.ErrForbidden)
	assert.Nil(t, updated)
}

func TestVesselService_AssignCaptain_Success(t *testing.T) {
	ctx := context.Background()
	orgID := uuid.New()
	vesselRepo := new(MockVesselRepository)
	userRepo := new(MockUserRepository)

	vessel, _ := fleet.NewVessel(orgID, "MV Aegean Star", "9074729", fleet.VesselTypeCargo)
	captain, _ := identity.NewUser(orgID, "captain@example.com", "Password123", identity.RoleCaptain)

	vesselRepo.On("FindByID", ctx, vessel.ID).Return(vessel, nil)
	userRepo.On("FindByID", ctx, captain.ID).Return(captain, nil)
	vesselRepo.On("Update", ctx, vessel).Return(nil)
	userRepo.On("Update", ctx, captain).Return(nil)

	svc := createVesselService(vesselRepo, userRepo)

	updated, err := svc.AssignCaptain(ctx, AssignCaptainInput{
		Actor:     adminActor(orgID),
		VesselID:  vessel.ID,
		CaptainID: captain.ID,
	})

	require.NoError(t, err)
	require.NotNil(t, updated.CaptainID)
	assert.Equal(t, captain.ID, *updated.CaptainID)
	require.NotNil(t, captain.VesselID)
	assert.Equal(t, vessel.ID, *captain.VesselID)
}

func TestVesselService_AssignCaptain_NotACaptain(t *testing.T) {
	ctx := context.Background()
	orgID := uuid.New()
	vesselRepo := new(MockVesselRepository)
	userRepo := new(MockUserRepository)

	vessel, _ := fleet.NewVessel(orgID, "MV Aegean Star", "9074729", fleet.VesselTypeCargo)
	admin, _ := identity.NewUser(orgID, "admin2@example.com", "Password123", identity.RoleAdmin)

	vesselRepo.On("FindByID", ctx, vessel.ID).Return(vessel, nil)
	userRepo.On("FindByID", ctx, admin.ID).Return(admin, nil)

	svc := createVesselService(vesselRepo, userRepo)

	updated, err := svc.AssignCaptain(ctx, AssignCaptainInput{
		Actor:     adminActor(orgID),
		VesselID:  vessel.ID,
		CaptainID: admin.ID,
	})

	require.Error(t, err)
	assert.Nil(t, updated)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "NOT_A_CAPTAIN", domainErr.Code)
}

func TestVesselService_AssignCaptain_ForeignOrgCaptain(t *testing.T) {
	ctx := context.Background()
	orgID := uuid.New()
	vesselRepo := new(MockVesselRepository)
	userRepo := new(MockUserRepository)

	vessel, _ := fleet.NewVessel(orgID, "MV Aegean Star", "9074729", fleet.VesselTypeCargo)
	captain, _ := identity.NewUser(uuid.New(), "captain@example.com", "Password123", identity.RoleCaptain)

	vesselRepo.On("FindByID", ctx, vessel.ID).Return(vessel, nil)
	userRepo.On("FindByID", ctx, captain.ID).Return(captain, nil)

	svc := createVesselService(vesselRepo, userRepo)

	updated, err := svc.AssignCaptain(ctx, AssignCaptainInput{
		Actor:     adminActor(orgID),
		VesselID:  vessel.ID,
		CaptainID: captain.ID,
	})

	require.Error(t, err)
	assert.Nil(t, updated)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "CAPTAIN_NOT_FOUND", domainErr.Code)
}

func TestVesselService_AssignCaptain_ReleasesPreviousCaptain(t *testing.T) {
	ctx := context.Background()
	orgID := uuid.New()
	vesselRepo := new(MockVesselRepository)
	userRepo := new(MockUserRepository)

	vessel, _ := fleet.NewVessel(orgID, "MV Aegean Star", "9074729", fleet.VesselTypeCargo)
	previous, _ := identity.NewUser(orgID, "old-captain@example.com", "Password123", identity.RoleCaptain)
	replacement, _ := identity.NewUser(orgID, "new-captain@example.com", "Password123", identity.RoleCaptain)
	require.NoError(t, vessel.AssignCaptain(previous.ID))
	require.NoError(t, previous.AssignVessel(vessel.ID))

	vesselRepo.On("FindByID", ctx, vessel.ID).Return(vessel, nil)
	userRepo.On("FindByID", ctx, replacement.ID).Return(replacement, nil)
	userRepo.On("FindByID", ctx, previous.ID).Return(previous, nil)
	vesselRepo.On("Update", ctx, vessel).Return(nil)
	userRepo.On("Update", ctx, previous).Return(nil)
	userRepo.On("Update", ctx, replacement).Return(nil)

	svc := createVesselService(vesselRepo, userRepo)

	updated, err := svc.AssignCaptain(ctx, AssignCaptainInput{
		Actor:     adminActor(orgID),
		VesselID:  vessel.ID,
		CaptainID: replacement.ID,
	})

	require.NoError(t, err)
	require.NotNil(t, updated.CaptainID)
	assert.Equal(t, replacement.ID, *updated.CaptainID)
	assert.Nil(t, previous.VesselID)
	require.NotNil(t, replacement.VesselID)
	assert.Equal(t, vessel.ID, *replacement.VesselID)
}

func TestVesselService_UnassignCaptain_ClearsBothSides(t *testing.T) {
	ctx := context.Background()
	orgID := uuid.New()
	vesselRepo := new(MockVesselRepository)
	userRepo := new(MockUserRepository)

	vessel, _ := fleet.NewVessel(orgID, "MV Aegean Star", "9074729", fleet.VesselTypeCargo)
	captain, _ := identity.NewUser(orgID, "captain@example.com", "Password123", identity.RoleCaptain)
	require.NoError(t, vessel.AssignCaptain(captain.ID))
	require.NoError(t, captain.AssignVessel(vessel.ID))

	vesselRepo.On("FindByID", ctx, vessel.ID).Return(vessel, nil)
	userRepo.On("FindByID", ctx, captain.ID).Return(captain, nil)
	userRepo.On("Update", ctx, captain).Return(nil)
	vesselRepo.On("Update", ctx, vessel).Return(nil)

	svc := createVesselService(vesselRepo, userRepo)

	updated, err := svc.UnassignCaptain(ctx, adminActor(orgID), vessel.ID)

	require.NoError(t, err)
	assert.Nil(t, updated.CaptainID)
	assert.Nil(t, captain.VesselID)
}

func TestVesselService_Get_CaptainOwnVesselOnly(t *testing.T) {
	ctx := context.Background()
	orgID := uuid.New()
	vesselRepo := new(MockVesselRepository)

	own, _ := fleet.NewVessel(orgID, "MV Aegean Star", "9074729", fleet.VesselTypeCargo)
	other, _ := fleet.NewVessel(orgID, "MV Baltic Moon", "9083287", fleet.VesselTypeTanker)

	vesselRepo.On("FindByID", ctx, own.ID).Return(own, nil)
	vesselRepo.On("FindByID", ctx, other.ID).Return(other, nil)

	svc := createVesselService(vesselRepo, new(MockUserRepository))
	actor := captainActor(orgID, &own.ID)

	got, err := svc.Get(ctx, actor, own.ID)
	require.NoError(t, err)
	assert.Equal(t, own.ID, got.ID)

	got, err = svc.Get(ctx, actor, other.ID)
	require.ErrorIs(t, err, shared.ErrForbidden)
	assert.Nil(t, got)
}

func TestVesselService_List_CaptainScopedToOwnVessel(t *testing.T) {
	ctx := context.Background()
	orgID := uuid.New()
	vesselRepo := new(MockVesselRepository)

	own, _ := fleet.NewVessel(orgID, "MV Aegean Star", "9074729", fleet.VesselTypeCargo)

	vesselRepo.On("FindAll", ctx, mock.MatchedBy(func(f fleet.VesselFilter) bool {
		return f.VesselID != nil && *f.VesselID == own.ID
	})).Return([]*fleet.Vessel{own}, int64(1), nil)

	svc := createVesselService(vesselRepo, new(MockUserRepository))

	result, err := svc.List(ctx, captainActor(orgID, &own.ID), ListVesselsInput{})

	require.NoError(t, err)
	assert.Equal(t, int64(1), result.Total)
	require.Len(t, result.Vessels, 1)
	assert.Equal(t, own.ID, result.Vessels[0].ID)
	vesselRepo.AssertExpectations(t)
}

func TestVesselService_List_UnassignedCaptainSeesNothing(t *testing.T) {
	ctx := context.Background()
	orgID := uuid.New()
	svc := createVesselService(new(MockVesselRepository), new(MockUserRepository))

	result, err := svc.List(ctx, captainActor(orgID, nil), ListVesselsInput{})

	require.NoError(t, err)
	assert.Equal(t, int64(0), result.Total)
	assert.Empty(t, result.Vessels)
}

func TestVesselService_Deactivate_Success(t *testing.T) {
	ctx := context.Background()
	orgID := uuid.New()
	vesselRepo := new(MockVesselRepository)

	vessel, _ := fleet.NewVessel(orgID, "MV Aegean Star", "9074729", fleet.VesselTypeCargo)

	vesselRepo.On("FindByID", ctx, vessel.ID).Return(vessel, nil)
	vesselRepo.On("Update", ctx, vessel).Return(nil)

	svc := createVesselService(vesselRepo, new(MockUserRepository))

	err := svc.Deactivate(ctx, adminActor(orgID), vessel.ID)

	require.NoError(t, err)
	assert.False(t, vessel.Active)
}
