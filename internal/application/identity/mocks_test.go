package identity

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	auditapp "github.com/sandarbhasthana/ship-reporting-sub001/internal/application/audit"
	domainaudit "github.com/sandarbhasthana/ship-reporting-sub001/internal/domain/audit"
	"github.com/sandarbhasthana/ship-reporting-sub001/internal/domain/fleet"
	"github.com/sandarbhasthana/ship-reporting-sub001/internal/domain/identity"
)

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

// MockOrganizationRepository is a mock implementation of identity.OrganizationRepository
type MockOrganizationRepository struct {
	mock.Mock
}

func (m *MockOrganizationRepository) Create(ctx context.Context, org *identity.Organization) error {
	args := m.Called(ctx, org)
	return args.Error(0)
}

func (m *MockOrganizationRepository) Update(ctx context.Context, org *identity.Organization) error {
	args := m.Called(ctx, org)
	return args.Error(0)
}

func (m *MockOrganizationRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.Organization, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.Organization), args.Error(1)
}

func (m *MockOrganizationRepository) FindByName(ctx context.Context, name string) (*identity.Organization, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.Organization), args.Error(1)
}

func (m *MockOrganizationRepository) FindAll(ctx context.Context, filter identity.OrganizationFilter) ([]*identity.Organization, int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]*identity.Organization), args.Get(1).(int64), args.Error(2)
}

func (m *MockOrganizationRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	args := m.Called(ctx, name)
	return args.Bool(0), args.Error(1)
}

func (m *MockOrganizationRepository) Count(ctx context.Context, filter identity.OrganizationFilter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

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

// newRecordingAudit returns a recorder backed by a mock that accepts any write
func newRecordingAudit() *auditapp.Recorder {
	logRepo := new(MockLogRepository)
	logRepo.On("Create", mock.Anything, mock.Anything).Return(nil).Maybe()
	return auditapp.NewRecorder(logRepo, zap.NewNop())
}
