package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"tixnaija/internal/domain"
)

func withIdentity(id *domain.Identity) gin.HandlerFunc {
	return func(c *gin.Context) {
		if id != nil {
			c.Set(identityKey, id)
		}
		c.Next()
	}
}

func gateRouter(id *domain.Identity, gate gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/admin/dashboard", withIdentity(id), gate, func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	return r
}

func get(r *gin.Engine, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	r.ServeHTTP(w, req)
	return w
}

func TestAllowed(t *testing.T) {
	staff := &domain.Identity{UserID: 1, Role: domain.RoleAdmin, SubRole: domain.SubRoleStaff}
	organizer := &domain.Identity{UserID: 2, Role: domain.RoleUser, SubRole: domain.SubRoleOrganizer}

	if Allowed(nil, AnyUser) {
		t.Fatal("nil identity must never pass")
	}
	if !Allowed(staff, AnyUser) {
		t.Fatal("any identity passes the empty policy")
	}
	if !Allowed(staff, StaffOrAbove) {
		t.Fatal("staff passes StaffOrAbove")
	}
	if Allowed(organizer, StaffOrAbove) {
		t.Fatal("organizer must not pass StaffOrAbove")
	}
	if Allowed(staff, SuperAdminOnly) {
		t.Fatal("staff must not pass SuperAdminOnly")
	}
	if !Allowed(organizer, OrganizerOnly) {
		t.Fatal("organizer passes OrganizerOnly")
	}
	if Allowed(organizer, AdminOnly) {
		t.Fatal("USER role must not pass AdminOnly")
	}
}

func TestRequire_NoSession(t *testing.T) {
	r := gateRouter(nil, Require(AnyUser))
	w := get(r, "/admin/dashboard")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestRequire_WrongSubRole(t *testing.T) {
	id := &domain.Identity{UserID: 2, Role: domain.RoleUser, SubRole: domain.SubRoleOrdinary}
	r := gateRouter(id, Require(StaffOrAbove))
	w := get(r, "/admin/dashboard")
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", w.Code)
	}
}

func TestRequire_Allowed(t *testing.T) {
	id := &domain.Identity{UserID: 1, Role: domain.RoleAdmin, SubRole: domain.SubRoleSuperAdmin}
	r := gateRouter(id, Require(StaffOrAbove))
	w := get(r, "/admin/dashboard")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestRequirePage_RedirectsToLoginWithNext(t *testing.T) {
	r := gateRouter(nil, RequirePage(StaffOrAbove))
	w := get(r, "/admin/dashboard?tab=users")
	if w.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", w.Code)
	}
	want := "/login?next=%2Fadmin%2Fdashboard%3Ftab%3Dusers"
	if loc := w.Header().Get("Location"); loc != want {
		t.Fatalf("expected %s, got %s", want, loc)
	}
}

func TestRequirePage_RedirectsToUnauthorized(t *testing.T) {
	id := &domain.Identity{UserID: 2, Role: domain.RoleUser, SubRole: domain.SubRoleOrdinary}
	r := gateRouter(id, RequirePage(StaffOrAbove))
	w := get(r, "/admin/dashboard")
	if w.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/unauthorized" {
		t.Fatalf("expected /unauthorized, got %s", loc)
	}
}
