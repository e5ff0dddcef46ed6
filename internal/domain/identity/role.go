package identity

// Role represents a user's role in the platform.
// SUPER_ADMIN operates platform-wide, ADMIN within one organization,
// CAPTAIN within the single vessel assigned to them.
type Role string

const (
	RoleSuperAdmin Role = "SUPER_ADMIN"
	RoleAdmin      Role = "ADMIN"
	RoleCaptain    Role = "CAPTAIN"
)

// IsValid returns true if the role is a known role
func (r Role) IsValid() bool {
	switch r {
	case RoleSuperAdmin, RoleAdmin, RoleCaptain:
		return true
	}
	return false
}

// level orders roles for hierarchy checks. Higher means more privileged.
func (r Role) level() int {
	switch r {
	case RoleSuperAdmin:
		return 3
	case RoleAdmin:
		return 2
	case RoleCaptain:
		return 1
	}
	return 0
}

// AtLeast returns true if the role grants at least the privileges of other
func (r Role) AtLeast(other Role) bool {
	return r.level() >= other.level()
}

// CanManage returns true if the role may create or modify users of the other role.
// Admins cannot mint super admins.
func (r Role) CanManage(other Role) bool {
	if r == RoleSuperAdmin {
		return true
	}
	if r == RoleAdmin {
		return other == RoleAdmin || other == RoleCaptain
	}
	return false
}
