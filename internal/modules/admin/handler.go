package admin

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"tixnaija/internal/domain"
	"tixnaija/internal/pkg/response"
)

type BanRequest struct {
	Reason  string     `json:"reason" binding:"required"`
	Expires *time.Time `json:"expires"`
}

type ChangeRoleRequest struct {
	Role    domain.UserRole    `json:"role" binding:"required"`
	SubRole domain.UserSubRole `json:"sub_role" binding:"required"`
}

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts user management under the super-admin group.
func (h *Handler) RegisterRoutes(superAdmin *gin.RouterGroup) {
	usersGroup := superAdmin.Group("/users")
	{
		usersGroup.GET("", h.ListUsers)
		usersGroup.POST("/:id/ban", h.BanUser)
		usersGroup.POST("/:id/unban", h.UnbanUser)
		usersGroup.PUT("/:id/role", h.ChangeRole)
	}
}

func (h *Handler) ListUsers(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	offset, _ := strconv.Atoi(c.Query("offset"))

	users, total, err := h.service.ListUsers(c.Request.Context(), limit, offset)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "LIST_FAILED", "Failed to load users")
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"users": users,
		"total": total,
	})
}

func (h *Handler) BanUser(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid user id")
		return
	}

	var req BanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	if err := h.service.BanUser(c.Request.Context(), userID, req.Reason, req.Expires); err != nil {
		h.writeServiceError(c, err, "BAN_FAILED", "Failed to ban user")
		return
	}
	response.Success(c, http.StatusOK, gin.H{})
}

func (h *Handler) UnbanUser(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid user id")
		return
	}

	if err := h.service.UnbanUser(c.Request.Context(), userID); err != nil {
		h.writeServiceError(c, err, "UNBAN_FAILED", "Failed to unban user")
		return
	}
	response.Success(c, http.StatusOK, gin.H{})
}

func (h *Handler) ChangeRole(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid user id")
		return
	}

	var req ChangeRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	err = h.service.ChangeRole(c.Request.Context(), c.GetInt64("user_id"), userID, req.Role, req.SubRole)
	if err != nil {
		h.writeServiceError(c, err, "ROLE_CHANGE_FAILED", "Failed to change role")
		return
	}
	response.Success(c, http.StatusOK, gin.H{})
}

func (h *Handler) writeServiceError(c *gin.Context, err error, code, fallback string) {
	switch {
	case errors.Is(err, ErrUserNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "User not found")
	case errors.Is(err, ErrInvalidSubRole):
		response.Error(c, http.StatusBadRequest, "INVALID_ROLE", "Sub role is not valid for the role")
	case errors.Is(err, ErrSelfDemotion):
		response.Error(c, http.StatusConflict, "SELF_CHANGE", "Cannot change your own role")
	default:
		response.Error(c, http.StatusInternalServerError, code, fallback)
	}
}
