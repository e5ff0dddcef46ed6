package identity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	orgID := uuid.New()

	t.Run("creates user with valid email and password", func(t *testing.T) {
		user, err := NewUser(orgID, "captain@example.com", "Password123", RoleCaptain)

		require.NoError(t, err)
		assert.NotNil(t, user)
		assert.Equal(t, orgID, user.OrganizationID)
		assert.Equal(t, "captain@example.com", user.Email)
		assert.NotEmpty(t, user.PasswordHash)
		assert.Equal(t, RoleCaptain, user.Role)
		assert.True(t, user.Active)
		assert.Nil(t, user.VesselID)
		assert.NotNil(t, user.PasswordChangedAt)

		// Should have domain event
		events := user.GetDomainEvents()
		assert.Len(t, events, 1)
		_, ok := events[0].(*UserCreatedEvent)
		assert.True(t, ok)
	})

	t.Run("normalizes email to lowercase", func(t *testing.T) {
		user, err := NewUser(orgID, "Captain@Example.COM", "Password123", RoleAdmin)

		require.NoError(t, err)
		assert.Equal(t, "captain@example.com", user.Email)
	})

	t.Run("fails with empty email", func(t *testing.T) {
		_, err := NewUser(orgID, "", "Password123", RoleAdmin)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "cannot be empty")
	})

	t.Run("fails with invalid email", func(t *testing.T) {
		_, err := NewUser(orgID, "not-an-email", "Password123", RoleAdmin)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Invalid email format")
	})

	t.Run("fails with short password", func(t *testing.T) {
		_, err := NewUser(orgID, "captain@example.com", "Pass1", RoleAdmin)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "at least 8 characters")
	})

	t.Run("fails with password without numbers", func(t *testing.T) {
		_, err := NewUser(orgID, "captain@example.com", "Password", RoleAdmin)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "at least one letter and one number")
	})

	t.Run("fails with unknown role", func(t *testing.T) {
		_, err := NewUser(orgID, "captain@example.com", "Password123", Role("PIRATE"))

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Unknown role")
	})
}

func TestUser_AssignVessel(t *testing.T) {
	orgID := uuid.New()

	t.Run("assigns vessel to captain", func(t *testing.T) {
		user, _ := NewUser(orgID, "captain@example.com", "Password123", RoleCaptain)
		vesselID := uuid.New()

		err := user.AssignVessel(vesselID)

		require.NoError(t, err)
		require.NotNil(t, user.VesselID)
		assert.Equal(t, vesselID, *user.VesselID)
	})

	t.Run("reassigning replaces the previous vessel", func(t *testing.T) {
		user, _ := NewUser(orgID, "captain@example.com", "Password123", RoleCaptain)
		require.NoError(t, user.AssignVessel(uuid.New()))

		next := uuid.New()
		err := user.AssignVessel(next)

		require.NoError(t, err)
		assert.Equal(t, next, *user.VesselID)
	})

	t.Run("fails for non-captain roles", func(t *testing.T) {
		user, _ := NewUser(orgID, "admin@example.com", "Password123", RoleAdmin)

		err := user.AssignVessel(uuid.New())

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Only captains")
	})

	t.Run("fails with nil vessel id", func(t *testing.T) {
		user, _ := NewUser(orgID, "captain@example.com", "Password123", RoleCaptain)

		err := user.AssignVessel(uuid.Nil)

		assert.Error(t, err)
	})
}

func TestUser_ChangeRole(t *testing.T) {
	orgID := uuid.New()

	t.Run("leaving captain role clears vessel assignment", func(t *testing.T) {
		user, _ := NewUser(orgID, "captain@example.com", "Password123", RoleCaptain)
		require.NoError(t, user.AssignVessel(uuid.New()))

		err := user.ChangeRole(RoleAdmin)

		require.NoError(t, err)
		assert.Equal(t, RoleAdmin, user.Role)
		assert.Nil(t, user.VesselID)
	})

	t.Run("fails with unknown role", func(t *testing.T) {
		user, _ := NewUser(orgID, "admin@example.com", "Password123", RoleAdmin)

		err := user.ChangeRole(Role("BOSUN"))

		assert.Error(t, err)
	})
}

func TestUser_Passwords(t *testing.T) {
	orgID := uuid.New()

	t.Run("verify password", func(t *testing.T) {
		user, _ := NewUser(orgID, "captain@example.com", "Password123", RoleCaptain)

		assert.True(t, user.VerifyPassword("Password123"))
		assert.False(t, user.VerifyPassword("WrongPassword1"))
	})

	t.Run("change password requires current password", func(t *testing.T) {
		user, _ := NewUser(orgID, "captain@example.com", "Password123", RoleCaptain)

		err := user.ChangePassword("WrongPassword1", "NewPassword123")
		assert.Error(t, err)

		err = user.ChangePassword("Password123", "NewPassword123")
		require.NoError(t, err)
		assert.True(t, user.VerifyPassword("NewPassword123"))
	})
}

func TestUser_Lockout(t *testing.T) {
	orgID := uuid.New()

	t.Run("locks after max failed attempts", func(t *testing.T) {
		user, _ := NewUser(orgID, "captain@example.com", "Password123", RoleCaptain)

		locked := false
		for i := 0; i < 5; i++ {
			locked = user.RecordLoginFailure(5, 30*time.Minute)
		}

		assert.True(t, locked)
		assert.True(t, user.IsLocked())
		assert.False(t, user.CanLogin())
	})

	t.Run("expired lock no longer blocks login", func(t *testing.T) {
		user, _ := NewUser(orgID, "captain@example.com", "Password123", RoleCaptain)
		past := time.Now().Add(-time.Minute)
		user.LockedUntil = &past

		assert.False(t, user.IsLocked())
		assert.True(t, user.CanLogin())
	})

	t.Run("successful login resets failures", func(t *testing.T) {
		user, _ := NewUser(orgID, "captain@example.com", "Password123", RoleCaptain)
		user.RecordLoginFailure(5, 30*time.Minute)

		user.RecordLoginSuccess("203.0.113.9")

		assert.Equal(t, 0, user.FailedAttempts)
		assert.Nil(t, user.LockedUntil)
		assert.Equal(t, "203.0.113.9", user.LastLoginIP)
		assert.NotNil(t, user.LastLoginAt)
	})

	t.Run("unlock clears lockout", func(t *testing.T) {
		user, _ := NewUser(orgID, "captain@example.com", "Password123", RoleCaptain)
		for i := 0; i < 5; i++ {
			user.RecordLoginFailure(5, 30*time.Minute)
		}
		require.True(t, user.IsLocked())

		err := user.Unlock()

		require.NoError(t, err)
		assert.True(t, user.CanLogin())
	})
}

func TestUser_SoftDelete(t *testing.T) {
	orgID := uuid.New()

	t.Run("deactivate blocks login", func(t *testing.T) {
		user, _ := NewUser(orgID, "captain@example.com", "Password123", RoleCaptain)

		err := user.Deactivate()

		require.NoError(t, err)
		assert.False(t, user.Active)
		assert.False(t, user.CanLogin())
	})

	t.Run("deactivate twice fails", func(t *testing.T) {
		user, _ := NewUser(orgID, "captain@example.com", "Password123", RoleCaptain)
		require.NoError(t, user.Deactivate())

		err := user.Deactivate()

		assert.Error(t, err)
	})

	t.Run("activate restores the user", func(t *testing.T) {
		user, _ := NewUser(orgID, "captain@example.com", "Password123", RoleCaptain)
		require.NoError(t, user.Deactivate())

		err := user.Activate()

		require.NoError(t, err)
		assert.True(t, user.CanLogin())
	})
}

func TestRole_Hierarchy(t *testing.T) {
	assert.True(t, RoleSuperAdmin.AtLeast(RoleAdmin))
	assert.True(t, RoleAdmin.AtLeast(RoleCaptain))
	assert.False(t, RoleCaptain.AtLeast(RoleAdmin))

	assert.True(t, RoleSuperAdmin.CanManage(RoleSuperAdmin))
	assert.True(t, RoleAdmin.CanManage(RoleCaptain))
	assert.False(t, RoleAdmin.CanManage(RoleSuperAdmin))
	assert.False(t, RoleCaptain.CanManage(RoleCaptain))
}
