package middleware

import (
	"context"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"tixnaija/internal/domain"
	jwtsvc "tixnaija/internal/pkg/jwt"
)

// SessionCookie is the cookie the login handler sets for browser sessions.
// API clients may send the same token as a bearer header instead.
const SessionCookie = "session"

const identityKey = "identity"

type userSource interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// SessionResolver validates the request's credential material and, when it
// resolves to a live account, stores the identity in the gin context. It
// never aborts: access decisions belong to the gates, not the resolver.
// A banned account yields no identity at all, so bans invalidate sessions
// at the source rather than being re-checked by every policy.
func SessionResolver(jwt *jwtsvc.Service, users userSource) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.Next()
			return
		}

		claims, err := jwt.ValidateToken(token)
		if err != nil {
			c.Next()
			return
		}

		user, err := users.GetByID(c.Request.Context(), claims.UserID)
		if err != nil || user.BanActive(time.Now()) {
			c.Next()
			return
		}

		c.Set(identityKey, &domain.Identity{
			UserID:  user.ID,
			Role:    user.Role,
			SubRole: user.SubRole,
		})
		c.Set("user_id", user.ID)
		c.Set("role", string(user.Role))
		c.Set("sub_role", string(user.SubRole))

		c.Next()
	}
}

// IdentityFrom returns the resolved identity for this request, if any.
func IdentityFrom(c *gin.Context) (*domain.Identity, bool) {
	v, exists := c.Get(identityKey)
	if !exists {
		return nil, false
	}
	id, ok := v.(*domain.Identity)
	return id, ok
}

func extractToken(c *gin.Context) string {
	if cookie, err := c.Cookie(SessionCookie); err == nil && cookie != "" {
		return cookie
	}

	h := c.GetHeader("Authorization")
	if strings.HasPrefix(h, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
	}
	return ""
}
