package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	auditapp "github.com/sandarbhasthana/ship-reporting-sub001/internal/application/audit"
	fleetapp "github.com/sandarbhasthana/ship-reporting-sub001/internal/application/fleet"
	identityapp "github.com/sandarbhasthana/ship-reporting-sub001/internal/application/identity"
	"github.com/sandarbhasthana/ship-reporting-sub001/internal/domain/audit"
	"github.com/sandarbhasthana/ship-reporting-sub001/internal/domain/fleet"
	"github.com/sandarbhasthana/ship-reporting-sub001/internal/domain/identity"
	"github.com/sandarbhasthana/ship-reporting-sub001/internal/interfaces/http/dto"
	"github.com/sandarbhasthana/ship-reporting-sub001/internal/interfaces/http/middleware"
)

// MockVesselRepository implements fleet.VesselRepository for testing
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

// MockUserRepository implements identity.UserRepository for testing
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

// MockAuditLogRepository implements audit.LogRepository for testing
type MockAuditLogRepository struct {
	mock.Mock
}

func (m *MockAuditLogRepository) Create(ctx context.Context, log *audit.Log) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}

func (m *MockAuditLogRepository) FindByID(ctx context.Context, id uuid.UUID) (*audit.Log, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*audit.Log), args.Error(1)
}

func (m *MockAuditLogRepository) FindAll(ctx context.Context, filter audit.LogFilter) ([]*audit.Log, int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]*audit.Log), args.Get(1).(int64), args.Error(2)
}

func (m *MockAuditLogRepository) Count(ctx context.Context, filter audit.LogFilter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

var setupValidatorOnce sync.Once

// newVesselTestRouter wires a real VesselService behind the handler, with an
// actor injected the way the auth middleware chain would
func newVesselTestRouter(vesselRepo *MockVesselRepository, userRepo *MockUserRepository, actor identityapp.Actor) *gin.Engine {
	setupValidatorOnce.Do(middleware.SetupValidator)

	auditRepo := new(MockAuditLogRepository)
	auditRepo.On("Create", mock.Anything, mock.Anything).Return(nil).Maybe()

	recorder := auditapp.NewRecorder(auditRepo, zap.NewNop())
	svc := fleetapp.NewVesselService(vesselRepo, userRepo, recorder, zap.NewNop())
	h := NewVesselHandler(svc)

	engine := gin.New()
	api := engine.Group("/api/v1", func(c *gin.Context) {
		c.Set(middleware.ActorKey, actor)
		c.Next()
	})
	h.RegisterRoutes(api)
	return engine
}

func adminActor() identityapp.Actor {
	return identityapp.Actor{
		UserID:         uuid.New(),
		OrganizationID: uuid.New(),
		Email:          "admin@example.com",
		Role:           identity.RoleAdmin,
	}
}

// 9074729 carries a valid check digit
const testIMO = "9074729"

func TestVesselHandlerRegister(t *testing.T) {
	actor := adminActor()

	t.Run("creates vessel", func(t *testing.T) {
		vesselRepo := new(MockVesselRepository)
		vesselRepo.On("ExistsByIMONumber", mock.Anything, testIMO).Return(false, nil)
		vesselRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

		engine := newVesselTestRouter(vesselRepo, new(MockUserRepository), actor)

		body, _ := json.Marshal(RegisterVesselRequest{
			Name:      "MV Northern Star",
			IMONumber: testIMO,
			Type:      "CARGO",
			FlagState: "Panama",
		})
		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/api/v1/vessels", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		engine.ServeHTTP(w, req)

		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var resp dto.Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Success)

		data := resp.Data.(map[string]any)
		assert.Equal(t, testIMO, data["imo_number"])
		assert.Equal(t, actor.OrganizationID.String(), data["organization_id"])
		vesselRepo.AssertExpectations(t)
	})

	t.Run("duplicate IMO returns 409", func(t *testing.T) {
		vesselRepo := new(MockVesselRepository)
		vesselRepo.On("ExistsByIMONumber", mock.Anything, testIMO).Return(true, nil)

		engine := newVesselTestRouter(vesselRepo, new(MockUserRepository), actor)

		body, _ := json.Marshal(RegisterVesselRequest{
			Name:      "MV Northern Star",
			IMONumber: testIMO,
			Type:      "CARGO",
		})
		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/api/v1/vessels", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		engine.ServeHTTP(w, req)

		require.Equal(t, http.StatusConflict, w.Code)

		var resp dto.Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, dto.ErrCodeAlreadyExists, resp.Error.Code)
	})

	t.Run("bad check digit rejected before any repository call", func(t *testing.T) {
		vesselRepo := new(MockVesselRepository)
		engine := newVesselTestRouter(vesselRepo, new(MockUserRepository), actor)

		body, _ := json.Marshal(RegisterVesselRequest{
			Name:      "MV Northern Star",
			IMONumber: "9074720",
			Type:      "CARGO",
		})
		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/api/v1/vessels", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		engine.ServeHTTP(w, req)

		require.Equal(t, http.StatusBadRequest, w.Code)
		vesselRepo.AssertNotCalled(t, "ExistsByIMONumber", mock.Anything, mock.Anything)
	})

	t.Run("captain is refused", func(t *testing.T) {
		captain := adminActor()
		captain.Role = identity.RoleCaptain

		engine := newVesselTestRouter(new(MockVesselRepository), new(MockUserRepository), captain)

		body, _ := json.Marshal(RegisterVesselRequest{
			Name:      "MV Northern Star",
			IMONumber: testIMO,
			Type:      "CARGO",
		})
		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/api/v1/vessels", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestVesselHandlerGet(t *testing.T) {
	actor := adminActor()

	t.Run("returns vessel in own organization", func(t *testing.T) {
		vessel, err := fleet.NewVessel(actor.OrganizationID, "MV Northern Star", testIMO, fleet.VesselTypeCargo)
		require.NoError(t, err)

		vesselRepo := new(MockVesselRepository)
		vesselRepo.On("FindByID", mock.Anything, vessel.ID).Return(vessel, nil)

		engine := newVesselTestRouter(vesselRepo, new(MockUserRepository), actor)

		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/api/v1/vessels/"+vessel.ID.String(), nil)
		engine.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var resp dto.Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		data := resp.Data.(map[string]any)
		assert.Equal(t, vessel.ID.String(), data["id"])
	})

	t.Run("foreign organization vessel is refused with 403", func(t *testing.T) {
		vessel, err := fleet.NewVessel(uuid.New(), "MV Foreign", testIMO, fleet.VesselTypeCargo)
		require.NoError(t, err)

		vesselRepo := new(MockVesselRepository)
		vesselRepo.On("FindByID", mock.Anything, vessel.ID).Return(vessel, nil)

		engine := newVesselTestRouter(vesselRepo, new(MockUserRepository), actor)

		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/api/v1/vessels/"+vessel.ID.String(), nil)
		engine.ServeHTTP(w, req)

		require.Equal(t, http.StatusForbidden, w.Code)

		var resp dto.Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, dto.ErrCodeForbidden, resp.Error.Code)
	})

	t.Run("malformed id returns 400", func(t *testing.T) {
		engine := newVesselTestRouter(new(MockVesselRepository), new(MockUserRepository), actor)

		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/api/v1/vessels/not-a-uuid", nil)
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestVesselHandlerList(t *testing.T) {
	actor := adminActor()

	vessel, err := fleet.NewVessel(actor.OrganizationID, "MV Northern Star", testIMO, fleet.VesselTypeCargo)
	require.NoError(t, err)

	vesselRepo := new(MockVesselRepository)
	vesselRepo.On("FindAll", mock.Anything, mock.Anything).Return([]*fleet.Vessel{vessel}, int64(1), nil)

	engine := newVesselTestRouter(vesselRepo, new(MockUserRepository), actor)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/v1/vessels?page=1&page_size=20", nil)
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	require.NotNil(t, resp.Meta)
	assert.Equal(t, int64(1), resp.Meta.Total)
}

func TestVesselHandlerDeactivate(t *testing.T) {
	actor := adminActor()

	vessel, err := fleet.NewVessel(actor.OrganizationID, "MV Northern Star", testIMO, fleet.VesselTypeCargo)
	require.NoError(t, err)

	vesselRepo := new(MockVesselRepository)
	vesselRepo.On("FindByID", mock.Anything, vessel.ID).Return(vessel, nil)
	vesselRepo.On("Update", mock.Anything, mock.Anything).Return(nil)

	engine := newVesselTestRouter(vesselRepo, new(MockUserRepository), actor)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/v1/vessels/"+vessel.ID.String()+"/deactivate", nil)
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusNoContent, w.Code)
	vesselRepo.AssertExpectations(t)
}
