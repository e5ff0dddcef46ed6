package identity

import (
	"time"

	"github.com/google/uuid"

	"github.com/sandarbhasthana/ship-reporting-sub001/internal/domain/identity"
)

// Actor identifies who is performing an operation. It is populated from the
// authenticated request context and flows into authorization checks and the
// audit trail.
type Actor struct {
	UserID         uuid.UUID
	OrganizationID uuid.UUID
	Email          string
	Role           identity.Role
	VesselID       *uuid.UUID // Set only for captains
	IPAddress      string
	UserAgent      string
	// OrgScoped marks a platform operator who pinned the request to one
	// organization via the override header
	OrgScoped bool
}

// IsSuperAdmin returns true for platform operators
func (a Actor) IsSuperAdmin() bool {
	return a.Role == identity.RoleSuperAdmin
}

// LoginInput contains the input for user login
type LoginInput struct {
	Email    string
	Password string
	IP       string // Client IP for login tracking
}

// LoginResult contains the result of a successful login
type LoginResult struct {
	AccessToken           string
	RefreshToken          string
	AccessTokenExpiresAt  time.Time
	RefreshTokenExpiresAt time.Time
	TokenType             string
	User                  UserInfo
}

// UserInfo contains basic user information returned after login
type UserInfo struct {
	ID             uuid.UUID
	OrganizationID uuid.UUID
	Email          string
	DisplayName    string
	Role           identity.Role
	VesselID       *uuid.UUID
	Active         bool
	LastLoginAt    *time.Time
}

// RefreshTokenInput contains the input for token refresh
type RefreshTokenInput struct {
	RefreshToken string
}

// RefreshTokenResult contains the result of a token refresh
type RefreshTokenResult struct {
	AccessToken           string
	RefreshToken          string
	AccessTokenExpiresAt  time.Time
	RefreshTokenExpiresAt time.Time
	TokenType             string
}

// LogoutInput contains the input for user logout
type LogoutInput struct {
	Actor    Actor
	TokenJTI string    // JWT ID of the access token being revoked
	IssuedAt time.Time // When the access token was issued
}

// ChangePasswordInput contains the input for password change
type ChangePasswordInput struct {
	UserID      uuid.UUID
	OldPassword string
	NewPassword string
}

// CreateOrganizationInput contains the input for creating an organization
type CreateOrganizationInput struct {
	Actor        Actor
	Name         string
	ContactName  string
	ContactEmail string
	ContactPhone string
	Address      string
}

// UpdateOrganizationInput contains the input for updating an organization
type UpdateOrganizationInput struct {
	Actor          Actor
	OrganizationID uuid.UUID
	Name           *string
	ContactName    *string
	ContactEmail   *string
	ContactPhone   *string
	Address        *string
}

// ListOrganizationsInput contains filters for listing organizations
type ListOrganizationsInput struct {
	Keyword         string
	IncludeInactive bool
	Page            int
	PageSize        int
	SortBy          string
	SortOrder       string
}

// ListOrganizationsResult contains one page of organizations
type ListOrganizationsResult struct {
	Organizations []*identity.Organization
	Total         int64
	Page          int
	PageSize      int
}

// CreateUserInput contains the input for creating a user
type CreateUserInput struct {
	Actor          Actor
	OrganizationID uuid.UUID
	Email          string
	Password       string
	DisplayName    string
	Role           identity.Role
	VesselID       *uuid.UUID
}

// UpdateUserInput contains the input for updating a user's profile
type UpdateUserInput struct {
	Actor       Actor
	UserID      uuid.UUID
	Email       *string
	DisplayName *string
}

// ChangeUserRoleInput contains the input for changing a user's role
type ChangeUserRoleInput struct {
	Actor  Actor
	UserID uuid.UUID
	Role   identity.Role
}

// AssignUserVesselInput contains the input for assigning a captain to a vessel
type AssignUserVesselInput struct {
	Actor    Actor
	UserID   uuid.UUID
	VesselID uuid.UUID
}

// ListUsersInput contains filters for listing users
type ListUsersInput struct {
	OrganizationID  uuid.UUID
	Keyword         string
	Role            *identity.Role
	IncludeInactive bool
	Page            int
	PageSize        int
	SortBy          string
	SortOrder       string
}

// ListUsersResult contains one page of users
type ListUsersResult struct {
	Users    []*identity.User
	Total    int64
	Page     int
	PageSize int
}

// newUserInfo maps a domain user to the transport-facing UserInfo
func newUserInfo(user *identity.User) UserInfo {
	return UserInfo{
		ID:             user.ID,
		OrganizationID: user.OrganizationID,
		Email:          user.Email,
		DisplayName:    user.GetDisplayNameOrEmail(),
		Role:           user.Role,
		VesselID:       user.VesselID,
		Active:         user.Active,
		LastLoginAt:    user.LastLoginAt,
	}
}
