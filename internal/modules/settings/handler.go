package settings

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"tixnaija/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/maintenance/status", h.MaintenanceStatus)
}

func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.GET("/settings", h.List)
	rg.PUT("/settings", h.Upsert)
	rg.DELETE("/settings/:key", h.Delete)
}

// MaintenanceStatus gates whether the rest of the site is reachable, so it
// must never itself become unavailable: always 200, fail-open to false.
func (h *Handler) MaintenanceStatus(c *gin.Context) {
	enabled, err := h.service.MaintenanceMode(c.Request.Context())

	body := gin.H{
		"maintenanceMode": enabled,
		"timestamp":       time.Now().UnixMilli(),
	}
	if err != nil {
		body["error"] = "settings temporarily unavailable"
	}
	c.JSON(http.StatusOK, body)
}

func (h *Handler) List(c *gin.Context) {
	all, err := h.service.All(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to list settings")
		return
	}
	response.Success(c, http.StatusOK, all)
}

type upsertRequest struct {
	Key   string `json:"key" binding:"required"`
	Value string `json:"value" binding:"required"`
}

func (h *Handler) Upsert(c *gin.Context) {
	var req upsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	if err := h.service.Set(c.Request.Context(), req.Key, req.Value); err != nil {
		response.Error(c, http.StatusInternalServerError, "SAVE_FAILED", "Failed to save setting")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"key": req.Key})
}

func (h *Handler) Delete(c *gin.Context) {
	key := c.Param("key")
	if key == "" {
		response.Error(c, http.StatusBadRequest, "INVALID_KEY", "Setting key is required")
		return
	}

	if err := h.service.DeleteKey(c.Request.Context(), key); err != nil {
		response.Error(c, http.StatusInternalServerError, "DELETE_FAILED", "Failed to delete setting")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"key": key})
}
