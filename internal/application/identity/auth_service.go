package identity

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	auditapp "github.com/sandarbhasthana/ship-reporting-sub001/internal/application/audit"
	domainaudit "github.com/sandarbhasthana/ship-reporting-sub001/internal/domain/audit"
	"github.com/sandarbhasthana/ship-reporting-sub001/internal/domain/identity"
	"github.com/sandarbhasthana/ship-reporting-sub001/internal/domain/shared"
	"github.com/sandarbhasthana/ship-reporting-sub001/internal/infrastructure/auth"
)

// AuthServiceConfig contains configuration for the auth service
type AuthServiceConfig struct {
	MaxLoginAttempts int           // Maximum failed login attempts before lock
	LockDuration     time.Duration // How long to lock account after max attempts
}

// DefaultAuthServiceConfig returns default configuration
func DefaultAuthServiceConfig() AuthServiceConfig {
	return AuthServiceConfig{
		MaxLoginAttempts: 5,
		LockDuration:     30 * time.Minute,
	}
}

// AuthService handles authentication operations
type AuthService struct {
	userRepo   identity.UserRepository
	orgRepo    identity.OrganizationRepository
	jwtService *auth.JWTService
	blacklist  auth.TokenBlacklist
	recorder   *auditapp.Recorder
	config     AuthServiceConfig
	logger     *zap.Logger
}

// NewAuthService creates a new authentication service
func NewAuthService(
	userRepo identity.UserRepository,
	orgRepo identity.OrganizationRepository,
	jwtService *auth.JWTService,
	blacklist auth.TokenBlacklist,
	recorder *auditapp.Recorder,
	config AuthServiceConfig,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		orgRepo:    orgRepo,
		jwtService: jwtService,
		blacklist:  blacklist,
		recorder:   recorder,
		config:     config,
		logger:     logger,
	}
}

// Login authenticates a user and returns tokens
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	s.logger.Info("Login attempt", zap.String("email", input.Email))

	user, err := s.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		s.logger.Warn("User not found during login", zap.String("email", input.Email))
		return nil, shared.NewDomainError("INVALID_CREDENTIALS", "Invalid email or password")
	}

	if !user.CanLogin() {
		if user.IsLocked() {
			s.logger.Warn("Login attempt for locked account", zap.String("email", input.Email))
			return nil, shared.NewDomainError("ACCOUNT_LOCKED", "Account is locked. Please try again later or contact support")
		}
		s.logger.Warn("Login attempt for deactivated account", zap.String("email", input.Email))
		return nil, shared.NewDomainError("ACCOUNT_DEACTIVATED", "Account has been deactivated")
	}

	// Deactivating an organization locks out all of its users
	if err := s.checkOrganizationActive(ctx, user.OrganizationID); err != nil {
		s.logger.Warn("Login attempt for deactivated organization",
			zap.String("email", input.Email),
			zap.String("org_id", user.OrganizationID.String()))
		return nil, err
	}

	if !user.VerifyPassword(input.Password) {
		// Record failed attempt
		locked := user.RecordLoginFailure(s.config.MaxLoginAttempts, s.config.LockDuration)
		if err := s.userRepo.Update(ctx, user); err != nil {
			s.logger.Error("Failed to update user after login failure", zap.Error(err))
		}

		if locked {
			s.logger.Warn("Account locked after too many failed attempts",
				zap.String("email", input.Email),
				zap.Int("attempts", s.config.MaxLoginAttempts))
			return nil, shared.NewDomainError("ACCOUNT_LOCKED", "Too many failed login attempts. Account has been locked")
		}

		s.logger.Warn("Invalid password attempt",
			zap.String("email", input.Email),
			zap.Int("failed_attempts", user.FailedAttempts))
		return nil, shared.NewDomainError("INVALID_CREDENTIALS", "Invalid email or password")
	}

	tokenPair, err := s.jwtService.GenerateTokenPair(auth.GenerateTokenInput{
		OrgID:    user.OrganizationID,
		UserID:   user.ID,
		Email:    user.Email,
		Role:     string(user.Role),
		VesselID: user.VesselID,
	})
	if err != nil {
		s.logger.Error("Failed to generate token pair", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to generate authentication tokens")
	}

	// Record successful login
	user.RecordLoginSuccess(input.IP)
	if err := s.userRepo.Update(ctx, user); err != nil {
		// Don't fail the login - just log the error
		s.logger.Error("Failed to update user after successful login", zap.Error(err))
	}

	s.recorder.Record(ctx, auditapp.RecordInput{
		OrganizationID: user.OrganizationID,
		Action:         domainaudit.ActionLogin,
		EntityType:     "user",
		EntityID:       user.ID,
		ActorID:        &user.ID,
		ActorEmail:     user.Email,
		IPAddress:      input.IP,
	})

	s.logger.Info("User logged in successfully",
		zap.String("email", input.Email),
		zap.String("user_id", user.ID.String()))

	return &LoginResult{
		AccessToken:           tokenPair.AccessToken,
		RefreshToken:          tokenPair.RefreshToken,
		AccessTokenExpiresAt:  tokenPair.AccessTokenExpiresAt,
		RefreshTokenExpiresAt: tokenPair.RefreshTokenExpiresAt,
		TokenType:             tokenPair.TokenType,
		User:                  newUserInfo(user),
	}, nil
}

// RefreshToken refreshes the access token using a valid refresh token.
// Role and vessel assignment are reloaded from storage so a refreshed
// token never extends stale permissions.
func (s *AuthService) RefreshToken(ctx context.Context, input RefreshTokenInput) (*RefreshTokenResult, error) {
	refreshClaims, err := s.jwtService.ValidateRefreshToken(input.RefreshToken)
	if err != nil {
		s.logger.Warn("Refresh token validation failed", zap.Error(err))
		return nil, mapTokenError(err)
	}

	userID, err := refreshClaims.GetUserUUID()
	if err != nil {
		s.logger.Error("Invalid user ID in refresh token", zap.Error(err))
		return nil, shared.NewDomainError("TOKEN_INVALID", "Invalid user ID in token")
	}

	// Reject refresh tokens revoked by logout or force logout
	if s.blacklist != nil {
		if blacklisted, err := s.blacklist.IsBlacklisted(ctx, refreshClaims.ID); err == nil && blacklisted {
			return nil, shared.NewDomainError("TOKEN_INVALID", "Refresh token has been revoked")
		}
		issuedAt := refreshClaims.GetIssuedAtTime()
		if invalidated, err := s.blacklist.IsUserTokenInvalidated(ctx, refreshClaims.UserID, issuedAt); err == nil && invalidated {
			return nil, shared.NewDomainError("TOKEN_INVALID", "Session has been terminated")
		}
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		s.logger.Warn("User not found during token refresh", zap.String("user_id", userID.String()))
		return nil, shared.NewDomainError("USER_NOT_FOUND", "User not found")
	}

	if !user.CanLogin() {
		s.logger.Warn("Token refresh for inactive user", zap.String("user_id", userID.String()))
		return nil, shared.NewDomainError("ACCOUNT_INACTIVE", "Account is no longer active")
	}

	if err := s.checkOrganizationActive(ctx, user.OrganizationID); err != nil {
		s.logger.Warn("Token refresh for deactivated organization",
			zap.String("user_id", userID.String()))
		return nil, err
	}

	tokenPair, err := s.jwtService.RefreshTokenPair(input.RefreshToken, auth.RefreshTokenInput{
		Email:    user.Email,
		Role:     string(user.Role),
		VesselID: user.VesselID,
	})
	if err != nil {
		s.logger.Warn("Token refresh failed", zap.Error(err))
		return nil, mapTokenError(err)
	}

	s.logger.Info("Token refreshed successfully", zap.String("user_id", userID.String()))

	return &RefreshTokenResult{
		AccessToken:           tokenPair.AccessToken,
		RefreshToken:          tokenPair.RefreshToken,
		AccessTokenExpiresAt:  tokenPair.AccessTokenExpiresAt,
		RefreshTokenExpiresAt: tokenPair.RefreshTokenExpiresAt,
		TokenType:             tokenPair.TokenType,
	}, nil
}

// Logout revokes the current access token by blacklisting its JTI
func (s *AuthService) Logout(ctx context.Context, input LogoutInput) error {
	s.logger.Info("User logout",
		zap.String("user_id", input.Actor.UserID.String()),
		zap.String("org_id", input.Actor.OrganizationID.String()))

	if s.blacklist != nil && input.TokenJTI != "" {
		// Blacklist for the full access token lifetime; expired entries age out
		ttl := s.jwtService.GetAccessTokenExpiration()
		if err := s.blacklist.AddToBlacklist(ctx, input.TokenJTI, ttl); err != nil {
			s.logger.Error("Failed to blacklist token on logout", zap.Error(err))
			return shared.NewDomainError("INTERNAL_ERROR", "Failed to revoke token")
		}
	}

	s.recorder.Record(ctx, auditapp.RecordInput{
		OrganizationID: input.Actor.OrganizationID,
		Action:         domainaudit.ActionLogout,
		EntityType:     "user",
		EntityID:       input.Actor.UserID,
		ActorID:        &input.Actor.UserID,
		ActorEmail:     input.Actor.Email,
		IPAddress:      input.Actor.IPAddress,
		UserAgent:      input.Actor.UserAgent,
	})

	return nil
}

// GetCurrentUser retrieves the current user's information
func (s *AuthService) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*UserInfo, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, shared.NewDomainError("USER_NOT_FOUND", "User not found")
	}

	info := newUserInfo(user)
	return &info, nil
}

// ChangePassword changes a user's own password
func (s *AuthService) ChangePassword(ctx context.Context, input ChangePasswordInput) error {
	user, err := s.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return shared.NewDomainError("USER_NOT_FOUND", "User not found")
	}

	if err := user.ChangePassword(input.OldPassword, input.NewPassword); err != nil {
		return err
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		s.logger.Error("Failed to update user after password change", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to update password")
	}

	s.logger.Info("User password changed", zap.String("user_id", input.UserID.String()))

	return nil
}

// checkOrganizationActive refuses authentication for users whose
// organization has been deactivated
func (s *AuthService) checkOrganizationActive(ctx context.Context, orgID uuid.UUID) error {
	org, err := s.orgRepo.FindByID(ctx, orgID)
	if err != nil {
		s.logger.Error("Failed to load organization during authentication",
			zap.String("org_id", orgID.String()), zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to authenticate")
	}
	if !org.Active {
		return shared.NewDomainError("ACCOUNT_DEACTIVATED", "Organization has been deactivated")
	}
	return nil
}

// mapTokenError maps JWT validation errors to domain errors
func mapTokenError(err error) error {
	switch err {
	case auth.ErrExpiredToken:
		return shared.NewDomainError("TOKEN_EXPIRED", "Refresh token has expired")
	case auth.ErrInvalidToken, auth.ErrInvalidTokenType, auth.ErrInvalidClaims:
		return shared.NewDomainError("TOKEN_INVALID", "Invalid refresh token")
	case auth.ErrMaxRefreshExceeded:
		return shared.NewDomainError("TOKEN_MAX_REFRESH", "Maximum token refresh count exceeded. Please log in again")
	default:
		return shared.NewDomainError("TOKEN_ERROR", "Failed to validate refresh token")
	}
}
