package middleware

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"tixnaija/internal/domain"
	"tixnaija/internal/pkg/response"
)

const (
	LoginPath        = "/login"
	UnauthorizedPath = "/unauthorized"
)

// Policy declares who may reach a protected resource. An empty set on either
// axis means no restriction on that axis.
type Policy struct {
	Roles    []domain.UserRole
	SubRoles []domain.UserSubRole
}

var (
	AdminOnly      = Policy{Roles: []domain.UserRole{domain.RoleAdmin}}
	SuperAdminOnly = Policy{SubRoles: []domain.UserSubRole{domain.SubRoleSuperAdmin}}
	StaffOrAbove   = Policy{SubRoles: []domain.UserSubRole{domain.SubRoleStaff, domain.SubRoleSuperAdmin}}
	OrganizerOnly  = Policy{SubRoles: []domain.UserSubRole{domain.SubRoleOrganizer}}
	AnyUser        = Policy{}
)

// Allowed is the single evaluation point for every gate. Both axes must
// pass; a nil identity never passes.
func Allowed(id *domain.Identity, p Policy) bool {
	if id == nil {
		return false
	}
	if len(p.Roles) > 0 && !containsRole(p.Roles, id.Role) {
		return false
	}
	if len(p.SubRoles) > 0 && !containsSubRole(p.SubRoles, id.SubRole) {
		return false
	}
	return true
}

// Require gates JSON endpoints: 401 without a session, 403 when the
// identity falls outside the policy.
func Require(p Policy) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := IdentityFrom(c)
		if !ok {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
			c.Abort()
			return
		}
		if !Allowed(id, p) {
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Access denied: insufficient permissions")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequirePage gates server-rendered pages: no session redirects to the login
// page with the original path preserved for post-login return; a session
// outside the policy redirects to the unauthorized page. Evaluated on every
// request, nothing cached.
func RequirePage(p Policy) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := IdentityFrom(c)
		if !ok {
			next := c.Request.URL.RequestURI()
			c.Redirect(http.StatusFound, LoginPath+"?next="+url.QueryEscape(next))
			c.Abort()
			return
		}
		if !Allowed(id, p) {
			c.Redirect(http.StatusFound, UnauthorizedPath)
			c.Abort()
			return
		}
		c.Next()
	}
}

func containsRole(roles []domain.UserRole, r domain.UserRole) bool {
	for _, candidate := range roles {
		if candidate == r {
			return true
		}
	}
	return false
}

func containsSubRole(subRoles []domain.UserSubRole, s domain.UserSubRole) bool {
	for _, candidate := range subRoles {
		if candidate == s {
			return true
		}
	}
	return false
}
