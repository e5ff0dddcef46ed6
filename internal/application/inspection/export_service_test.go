package inspection

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/sandarbhasthana/ship-reporting-sub001/internal/domain/fleet"
	"github.com/sandarbhasthana/ship-reporting-sub001/internal/domain/identity"
	"github.com/sandarbhasthana/ship-reporting-sub001/internal/domain/inspection"
	"github.com/sandarbhasthana/ship-reporting-sub001/internal/domain/shared"
	"github.com/sandarbhasthana/ship-reporting-sub001/internal/infrastructure/printing"
)

// fakeRenderer returns canned PDF bytes and records the last request
type fakeRenderer struct {
	lastRequest *printing.RenderRequest
}

func (r *fakeRenderer) Render(ctx context.Context, req *printing.RenderRequest) (*printing.RenderResult, error) {
	r.lastRequest = req
	return &printing.RenderResult{
		PDFData:        []byte("%PDF-1.4 fake"),
		PageCount:      2,
		RenderDuration: 40 * time.Millisecond,
	}, nil
}

func (r *fakeRenderer) Close() error { return nil }

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

func TestExportService_ExportPDF_Success(t *testing.T) {
	ctx := context.Background()
	orgID := uuid.New()
	reportRepo := new(MockReportRepository)
	vesselRepo := new(MockVesselRepository)
	orgRepo := new(MockOrganizationRepository)
	userRepo := new(MockUserRepository)

	actor := adminActor(orgID)
	vessel, _ := fleet.NewVessel(orgID, "MV Aegean Star", "9074729", fleet.VesselTypeCargo)
	org, _ := identity.NewOrganization("Nordic Shipping AS")
	inspector, _ := identity.NewUser(orgID, "inspector@example.com", "Password123", identity.RoleAdmin)

	report := draftReport(t, orgID, vessel.ID, inspector.ID)
	_, err := report.AddEntry(inspection.CategoryHull, "Ballast tank 2 coating", inspection.ConditionCritical, "Severe corrosion")
	require.NoError(t, err)

	reportRepo.On("FindByID", ctx, report.ID).Return(report, nil)
	vesselRepo.On("FindByID", ctx, report.VesselID).Return(vessel, nil)
	orgRepo.On("FindByID", ctx, report.OrganizationID).Return(org, nil)
	userRepo.On("FindByID", ctx, report.InspectorID).Return(inspector, nil)

	renderer := &fakeRenderer{}
	reportsSvc := createReportService(reportRepo, vesselRepo, nil)
	svc := NewExportService(reportsSvc, vesselRepo, orgRepo, userRepo, renderer, zap.NewNop())

	result, err := svc.ExportPDF(ctx, actor, report.ID)

	require.NoError(t, err)
	assert.NotEmpty(t, result.PDFData)
	assert.Equal(t, 2, result.PageCount)
	assert.Contains(t, result.FileName, "quarterly-hull-inspection")
	assert.Contains(t, result.FileName, ".pdf")

	require.NotNil(t, renderer.lastRequest)
	assert.Equal(t, printing.PaperSizeA4, renderer.lastRequest.PaperSize)
	assert.Contains(t, renderer.lastRequest.HTML, "MV Aegean Star")
	assert.Contains(t, renderer.lastRequest.HTML, "Ballast tank 2 coating")
}

func TestExportService_ExportPDF_CrossOrgForbidden(t *testing.T) {
	ctx := context.Background()
	reportRepo := new(MockReportRepository)

	report := draftReport(t, uuid.New(), uuid.New(), uuid.New())
	reportRepo.On("FindByID", ctx, report.ID).Return(report, nil)

	reportsSvc := createReportService(reportRepo, new(MockVesselRepository), nil)
	svc := NewExportService(reportsSvc, new(MockVesselRepository), new(MockOrganizationRepository), new(MockUserRepository), &fakeRenderer{}, zap.NewNop())

	result, err := svc.ExportPDF(ctx, adminActor(uuid.New()), report.ID)

	require.ErrorIs(t, err, shared.ErrForbidden)
	assert.Nil(t, result)
}

func TestExportFileName(t *testing.T) {
	date := time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "quarterly-hull-inspection-2025-06-14.pdf",
		exportFileName("Quarterly Hull Inspection", date))
	assert.Equal(t, "inspection-report-2025-06-14.pdf",
		exportFileName("!!!", date))
}
