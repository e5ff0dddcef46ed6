package identity

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/sandarbhasthana/ship-reporting-sub001/internal/domain/identity"
	"github.com/sandarbhasthana/ship-reporting-sub001/internal/domain/shared"
	"github.com/sandarbhasthana/ship-reporting-sub001/internal/infrastructure/auth"
	"github.com/sandarbhasthana/ship-reporting-sub001/internal/infrastructure/config"
)

// Helper function to create a test captain
func createTestUser(orgID uuid.UUID) *identity.User {
	user, _ := identity.NewUser(orgID, "captain@example.com", "Password123", identity.RoleCaptain)
	return user
}

// Helper function to create auth service backed by an active organization
func createAuthService(userRepo *MockUserRepository) *AuthService {
	orgRepo := new(MockOrganizationRepository)
	org, _ := identity.NewOrganization("Aegean Shipping")
	orgRepo.On("FindByID", mock.Anything, mock.Anything).Return(org, nil).Maybe()
	return createAuthServiceWithOrgs(userRepo, orgRepo)
}

func createAuthServiceWithOrgs(userRepo *MockUserRepository, orgRepo *MockOrganizationRepository) *AuthService {
	jwtCfg := config.JWTConfig{
		Secret:                 "test-secret-key-32-characters-long",
		AccessTokenExpiration:  15 * time.Minute,
		RefreshTokenExpiration: 7 * 24 * time.Hour,
		Issuer:                 "test-issuer",
		MaxRefreshCount:        10,
	}
	jwtService := auth.NewJWTService(jwtCfg)

	return NewAuthService(
		userRepo,
		orgRepo,
		jwtService,
		nil,
		newRecordingAudit(),
		DefaultAuthServiceConfig(),
		zap.NewNop(),
	)
}

func TestAuthService_Login_Success(t *testing.T) {
	ctx := context.Background()
	orgID := uuid.New()
	userRepo := new(MockUserRepository)

	user := createTestUser(orgID)

	userRepo.On("FindByEmail", ctx, "captain@example.com").Return(user, nil)
	userRepo.On("Update", ctx, user).Return(nil)

	authService := createAuthService(userRepo)

	result, err := authService.Login(ctx, LoginInput{
		Email:    "captain@example.com",
		Password: "Password123",
		IP:       "127.0.0.1",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, result.AccessToken)
	assert.NotEmpty(t, result.RefreshToken)
	assert.Equal(t, "captain@example.com", result.User.Email)
	assert.Equal(t, orgID, result.User.OrganizationID)
	assert.Equal(t, identity.RoleCaptain, result.User.Role)
	assert.Equal(t, "Bearer", result.TokenType)

	userRepo.AssertExpectations(t)
}

func TestAuthService_Login_InvalidCredentials(t *testing.T) {
	ctx := context.Background()
	orgID := uuid.New()
	userRepo := new(MockUserRepository)

	user := createTestUser(orgID)

	userRepo.On("FindByEmail", ctx, "captain@example.com").Return(user, nil)
	userRepo.On("Update", ctx, user).Return(nil)

	authService := createAuthService(userRepo)

	result, err := authService.Login(ctx, LoginInput{
		Email:    "captain@example.com",
		Password: "wrongpassword",
		IP:       "127.0.0.1",
	})

	require.Error(t, err)
	assert.Nil(t, result)
	var domainErr *shared.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, "INVALID_CREDENTIALS", domainErr.Code)
}

func TestAuthService_Login_UserNotFound(t *testing.T) {
	ctx := context.Background()
	userRepo := new(MockUserRepository)

	userRepo.On("FindByEmail", ctx, "ghost@example.com").Return(nil, errors.New("user not found"))

	authService := createAuthService(userRepo)

	result, err := authService.Login(ctx, LoginInput{
		Email:    "ghost@example.com",
		Password: "Password123",
		IP:       "127.0.0.1",
	})

	require.Error(t, err)
	assert.Nil(t, result)
	var domainErr *shared.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, "INVALID_CREDENTIALS", domainErr.Code)
}

func TestAuthService_Login_DeactivatedOrganization(t *testing.T) {
	ctx := context.Background()

	org, _ := identity.NewOrganization("Aegean Shipping")
	require.NoError(t, org.Deactivate())

	user := createTestUser(org.ID)

	userRepo := new(MockUserRepository)
	orgRepo := new(MockOrganizationRepository)
	userRepo.On("FindByEmail", ctx, "captain@example.com").Return(user, nil)
	orgRepo.On("FindByID", ctx, org.ID).Return(org, nil)

	authService := createAuthServiceWithOrgs(userRepo, orgRepo)

	result, err := authService.Login(ctx, LoginInput{
		Email:    "captain@example.com",
		Password: "Password123",
		IP:       "127.0.0.1",
	})

	require.Error(t, err)
	assert.Nil(t, result)
	var domainErr *shared.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, "ACCOUNT_DEACTIVATED", domainErr.Code)
	userRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestAuthService_Login_LockedAccount(t *testing.T) {
	ctx := context.Background()
	orgID := uuid.New()
	userRepo := new(MockUserRepository)

	user := createTestUser(orgID)
	lockedUntil := time.Now().Add(1 * time.Hour)
	user.LockedUntil = &lockedUntil

	userRepo.On("FindByEmail", ctx, "captain@example.com").Return(user, nil)

	authService := createAuthService(userRepo)

	result, err := authService.Login(ctx, LoginInput{
		Email:    "captain@example.com",
		Password: "Password123",
		IP:       "127.0.0.1",
	})

	require.Error(t, err)
	assert.Nil(t, result)
	var domainErr *shared.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, "ACCOUNT_LOCKED", domainErr.Code)
}

func TestAuthService_Login_DeactivatedAccount(t *testing.T) {
	ctx := context.Background()
	orgID := uuid.New()
	userRepo := new(MockUserRepository)

	user := createTestUser(orgID)
	require.NoError(t, user.Deactivate())

	userRepo.On("FindByEmail", ctx, "captain@example.com").Return(user, nil)

	authService := createAuthService(userRepo)

	result, err := authService.Login(ctx, LoginInput{
		Email:    "captain@example.com",
		Password: "Password123",
		IP:       "127.0.0.1",
	})

	require.Error(t, err)
	assert.Nil(t, result)
	var domainErr *shared.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, "ACCOUNT_DEACTIVATED", domainErr.Code)
}

func TestAuthService_Login_AccountLocksAfterMaxAttempts(t *testing.T) {
	ctx := context.Background()
	orgID := uuid.New()
	userRepo := new(MockUserRepository)

	user := createTestUser(orgID)
	user.FailedAttempts = 4 // One more failure will lock

	userRepo.On("FindByEmail", ctx, "captain@example.com").Return(user, nil)
	userRepo.On("Update", ctx, mock.Anything).Return(nil)

	authService := createAuthService(userRepo)

	result, err := authService.Login(ctx, LoginInput{
		Email:    "captain@example.com",
		Password: "wrongpassword",
		IP:       "127.0.0.1",
	})

	require.Error(t, err)
	assert.Nil(t, result)
	var domainErr *shared.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, "ACCOUNT_LOCKED", domainErr.Code)
	assert.True(t, user.IsLocked())
}

func TestAuthService_RefreshToken_Success(t *testing.T) {
	ctx := context.Background()
	orgID := uuid.New()
	userRepo := new(MockUserRepository)

	user := createTestUser(orgID)

	userRepo.On("FindByEmail", ctx, "captain@example.com").Return(user, nil)
	userRepo.On("Update", ctx, user).Return(nil)

	authService := createAuthService(userRepo)

	loginResult, err := authService.Login(ctx, LoginInput{
		Email:    "captain@example.com",
		Password: "Password123",
		IP:       "127.0.0.1",
	})
	require.NoError(t, err)

	userRepo.On("FindByID", ctx, user.ID).Return(user, nil)

	refreshResult, err := authService.RefreshToken(ctx, RefreshTokenInput{
		RefreshToken: loginResult.RefreshToken,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, refreshResult.AccessToken)
	assert.NotEmpty(t, refreshResult.RefreshToken)
	assert.Equal(t, "Bearer", refreshResult.TokenType)
	assert.NotEqual(t, loginResult.AccessToken, refreshResult.AccessToken)
}

func TestAuthService_RefreshToken_InvalidToken(t *testing.T) {
	ctx := context.Background()
	userRepo := new(MockUserRepository)

	authService := createAuthService(userRepo)

	result, err := authService.RefreshToken(ctx, RefreshTokenInput{
		RefreshToken: "invalid-token",
	})

	require.Error(t, err)
	assert.Nil(t, result)
	var domainErr *shared.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, "TOKEN_INVALID", domainErr.Code)
}

func TestAuthService_RefreshToken_UserNotFound(t *testing.T) {
	ctx := context.Background()
	orgID := uuid.New()
	userRepo := new(MockUserRepository)

	user := createTestUser(orgID)

	userRepo.On("FindByEmail", ctx, "captain@example.com").Return(user, nil)
	userRepo.On("Update", ctx, user).Return(nil)

	authService := createAuthService(userRepo)

	loginResult, err := authService.Login(ctx, LoginInput{
		Email:    "captain@example.com",
		Password: "Password123",
		IP:       "127.0.0.1",
	})
	require.NoError(t, err)

	// User deleted between login and refresh
	userRepo.On("FindByID", ctx, user.ID).Return(nil, errors.New("user not found"))

	result, err := authService.RefreshToken(ctx, RefreshTokenInput{
		RefreshToken: loginResult.RefreshToken,
	})

	require.Error(t, err)
	assert.Nil(t, result)
	var domainErr *shared.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, "USER_NOT_FOUND", domainErr.Code)
}

func TestAuthService_RefreshToken_DeactivatedUser(t *testing.T) {
	ctx := context.Background()
	orgID := uuid.New()
	userRepo := new(MockUserRepository)

	user := createTestUser(orgID)

	userRepo.On("FindByEmail", ctx, "captain@example.com").Return(user, nil)
	userRepo.On("Update", ctx, user).Return(nil)

	authService := createAuthService(userRepo)

	loginResult, err := authService.Login(ctx, LoginInput{
		Email:    "captain@example.com",
		Password: "Password123",
		IP:       "127.0.0.1",
	})
	require.NoError(t, err)

	require.NoError(t, user.Deactivate())
	userRepo.On("FindByID", ctx, user.ID).Return(user, nil)

	result, err := authService.RefreshToken(ctx, RefreshTokenInput{
		RefreshToken: loginResult.RefreshToken,
	})

	require.Error(t, err)
	assert.Nil(t, result)
	var domainErr *shared.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, "ACCOUNT_INACTIVE", domainErr.Code)
}

func TestAuthService_GetCurrentUser_Success(t *testing.T) {
	ctx := context.Background()
	orgID := uuid.New()
	userRepo := new(MockUserRepository)

	user := createTestUser(orgID)

	userRepo.On("FindByID", ctx, user.ID).Return(user, nil)

	authService := createAuthService(userRepo)

	result, err := authService.GetCurrentUser(ctx, user.ID)

	require.NoError(t, err)
	assert.Equal(t, user.ID, result.ID)
	assert.Equal(t, user.Email, result.Email)

	userRepo.AssertExpectations(t)
}

func TestAuthService_ChangePassword_Success(t *testing.T) {
	ctx := context.Background()
	orgID := uuid.New()
	userRepo := new(MockUserRepository)

	user := createTestUser(orgID)

	userRepo.On("FindByID", ctx, user.ID).Return(user, nil)
	userRepo.On("Update", ctx, mock.Anything).Return(nil)

	authService := createAuthService(userRepo)

	err := authService.ChangePassword(ctx, ChangePasswordInput{
		UserID:      user.ID,
		OldPassword: "Password123",
		NewPassword: "NewPassword456",
	})

	require.NoError(t, err)
	assert.True(t, user.VerifyPassword("NewPassword456"))
	userRepo.AssertExpectations(t)
}

func TestAuthService_ChangePassword_WrongOldPassword(t *testing.T) {
	ctx := context.Background()
	orgID := uuid.New()
	userRepo := new(MockUserRepository)

	user := createTestUser(orgID)

	userRepo.On("FindByID", ctx, user.ID).Return(user, nil)

	authService := createAuthService(userRepo)

	err := authService.ChangePassword(ctx, ChangePasswordInput{
		UserID:      user.ID,
		OldPassword: "wrongpassword",
		NewPassword: "NewPassword456",
	})

	require.Error(t, err)
	var domainErr *shared.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, "INVALID_PASSWORD", domainErr.Code)
}

func TestAuthService_Logout_Success(t *testing.T) {
	ctx := context.Background()
	userRepo := new(MockUserRepository)

	authService := createAuthService(userRepo)

	err := authService.Logout(ctx, LogoutInput{
		Actor: Actor{
			UserID:         uuid.New(),
			OrganizationID: uuid.New(),
			Email:          "captain@example.com",
			Role:           identity.RoleCaptain,
		},
		TokenJTI: "some-jti",
	})

	require.NoError(t, err)
}
