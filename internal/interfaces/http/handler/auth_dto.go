package handler

import (
	"time"

	identityapp "github.com/sandarbhasthana/ship-reporting-sub001/internal/application/identity"
)

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// RefreshTokenRequest represents a token refresh request
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// ChangePasswordRequest represents a password change request
type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=8"`
}

// TokenResponse carries an issued token pair
type TokenResponse struct {
	AccessToken           string    `json:"access_token"`
	RefreshToken          string    `json:"refresh_token"`
	TokenType             string    `json:"token_type"`
	AccessTokenExpiresAt  time.Time `json:"access_token_expires_at"`
	RefreshTokenExpiresAt time.Time `json:"refresh_token_expires_at"`
}

// UserInfoResponse carries the authenticated user's profile
type UserInfoResponse struct {
	ID             string     `json:"id"`
	OrganizationID string     `json:"organization_id"`
	Email          string     `json:"email"`
	DisplayName    string     `json:"display_name"`
	Role           string     `json:"role"`
	VesselID       *string    `json:"vessel_id,omitempty"`
	Active         bool       `json:"active"`
	LastLoginAt    *time.Time `json:"last_login_at,omitempty"`
}

// LoginResponse combines tokens with the user profile
type LoginResponse struct {
	TokenResponse
	User UserInfoResponse `json:"user"`
}

func newUserInfoResponse(info identityapp.UserInfo) UserInfoResponse {
	resp := UserInfoResponse{
		ID:             info.ID.String(),
		OrganizationID: info.OrganizationID.String(),
		Email:          info.Email,
		DisplayName:    info.DisplayName,
		Role:           string(info.Role),
		Active:         info.Active,
		LastLoginAt:    info.LastLoginAt,
	}
	if info.VesselID != nil {
		s := info.VesselID.String()
		resp.VesselID = &s
	}
	return resp
}

func newLoginResponse(result *identityapp.LoginResult) LoginResponse {
	return LoginResponse{
		TokenResponse: TokenResponse{
			AccessToken:           result.AccessToken,
			RefreshToken:          result.RefreshToken,
			TokenType:             result.TokenType,
			AccessTokenExpiresAt:  result.AccessTokenExpiresAt,
			RefreshTokenExpiresAt: result.RefreshTokenExpiresAt,
		},
		User: newUserInfoResponse(result.User),
	}
}

func newRefreshResponse(result *identityapp.RefreshTokenResult) TokenResponse {
	return TokenResponse{
		AccessToken:           result.AccessToken,
		RefreshToken:          result.RefreshToken,
		TokenType:             result.TokenType,
		AccessTokenExpiresAt:  result.AccessTokenExpiresAt,
		RefreshTokenExpiresAt: result.RefreshTokenExpiresAt,
	}
}
