package domain

import "time"

type UserRole string

const (
	RoleAdmin UserRole = "ADMIN"
	RoleUser  UserRole = "USER"
)

type UserSubRole string

const (
	SubRoleOrdinary   UserSubRole = "ORDINARY"
	SubRoleOrganizer  UserSubRole = "ORGANIZER"
	SubRoleStaff      UserSubRole = "STAFF"
	SubRoleSuperAdmin UserSubRole = "SUPER_ADMIN"
)

// ValidSubRole reports whether sub is allowed under role: ADMIN carries
// STAFF or SUPER_ADMIN, USER carries ORDINARY or ORGANIZER.
func ValidSubRole(role UserRole, sub UserSubRole) bool {
	switch role {
	case RoleAdmin:
		return sub == SubRoleStaff || sub == SubRoleSuperAdmin
	case RoleUser:
		return sub == SubRoleOrdinary || sub == SubRoleOrganizer
	}
	return false
}

type User struct {
	ID           int64       `json:"id"`
	Email        string      `json:"email" validate:"required,email"`
	PasswordHash string      `json:"-"`
	Name         string      `json:"name"`
	Phone        string      `json:"phone,omitempty"`
	Role         UserRole    `json:"role"`
	SubRole      UserSubRole `json:"sub_role"`
	IsBanned     bool        `json:"is_banned"`
	BanReason    string      `json:"ban_reason,omitempty"`
	BanExpires   *time.Time  `json:"ban_expires,omitempty"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

// BanActive reports whether the user is banned as of now. A ban whose expiry
// has passed no longer blocks the account; a nil expiry is permanent.
func (u *User) BanActive(now time.Time) bool {
	if !u.IsBanned {
		return false
	}
	if u.BanExpires != nil && u.BanExpires.Before(now) {
		return false
	}
	return true
}

// Identity is the per-request authenticated principal resolved from a
// session token. Handlers and access checks read it from the gin context.
type Identity struct {
	UserID  int64
	Role    UserRole
	SubRole UserSubRole
}
