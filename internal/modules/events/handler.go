package events

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"tixnaija/internal/pkg/response"
	"tixnaija/internal/repository"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(v1 *gin.RouterGroup) {
	v1.GET("/events", h.List)
	v1.GET("/events/:slug", h.GetBySlug)
}

func (h *Handler) RegisterOrganizerRoutes(organizer *gin.RouterGroup) {
	eventsGroup := organizer.Group("/events")
	{
		eventsGroup.GET("", h.ListMine)
		eventsGroup.POST("", h.Create)
		eventsGroup.PUT("/:id", h.Update)
		eventsGroup.POST("/:id/submit", h.Submit)
	}
}

func (h *Handler) RegisterAdminRoutes(admin *gin.RouterGroup) {
	eventsGroup := admin.Group("/events")
	{
		eventsGroup.GET("/pending", h.ListPending)
		eventsGroup.POST("/:id/approve", h.Approve)
		eventsGroup.POST("/:id/reject", h.Reject)
		eventsGroup.POST("/:id/archive", h.Archive)
	}
}

func (h *Handler) List(c *gin.Context) {
	filter := repository.EventFilter{
		CityID:     queryInt64(c, "city_id"),
		CategoryID: queryInt64(c, "category_id"),
		Limit:      int(queryInt64(c, "limit")),
		Offset:     int(queryInt64(c, "offset")),
	}

	items, total, err := h.service.ListPublished(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "LIST_FAILED", "Failed to load events")
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"events": items,
		"total":  total,
	})
}

func (h *Handler) GetBySlug(c *gin.Context) {
	event, err := h.service.GetPublished(c.Request.Context(), c.Param("slug"))
	if err != nil {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Event not found")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"event": event})
}

func (h *Handler) ListMine(c *gin.Context) {
	items, err := h.service.ListOwn(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "LIST_FAILED", "Failed to load events")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"events": items})
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	event, err := h.service.Create(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "CREATE_FAILED", "Failed to create event")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"event": event})
}

func (h *Handler) Update(c *gin.Context) {
	eventID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid event id")
		return
	}

	var req UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	event, err := h.service.Update(c.Request.Context(), c.GetInt64("user_id"), eventID, req)
	if err != nil {
		h.writeServiceError(c, err, "UPDATE_FAILED", "Failed to update event")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"event": event})
}

func (h *Handler) Submit(c *gin.Context) {
	eventID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid event id")
		return
	}

	if err := h.service.Submit(c.Request.Context(), c.GetInt64("user_id"), eventID); err != nil {
		h.writeServiceError(c, err, "SUBMIT_FAILED", "Failed to submit event")
		return
	}
	response.Success(c, http.StatusOK, gin.H{})
}

func (h *Handler) ListPending(c *gin.Context) {
	items, err := h.service.ListPending(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "LIST_FAILED", "Failed to load events")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"events": items})
}

func (h *Handler) Approve(c *gin.Context) {
	eventID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid event id")
		return
	}

	if err := h.service.Approve(c.Request.Context(), eventID); err != nil {
		h.writeServiceError(c, err, "APPROVE_FAILED", "Failed to approve event")
		return
	}
	response.Success(c, http.StatusOK, gin.H{})
}

func (h *Handler) Reject(c *gin.Context) {
	eventID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid event id")
		return
	}

	var req RejectEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	if err := h.service.Reject(c.Request.Context(), eventID, req.Reason); err != nil {
		h.writeServiceError(c, err, "REJECT_FAILED", "Failed to reject event")
		return
	}
	response.Success(c, http.StatusOK, gin.H{})
}

func (h *Handler) Archive(c *gin.Context) {
	eventID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid event id")
		return
	}

	if err := h.service.Archive(c.Request.Context(), eventID); err != nil {
		h.writeServiceError(c, err, "ARCHIVE_FAILED", "Failed to archive event")
		return
	}
	response.Success(c, http.StatusOK, gin.H{})
}

func (h *Handler) writeServiceError(c *gin.Context, err error, code, fallback string) {
	switch {
	case errors.Is(err, ErrEventNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Event not found")
	case errors.Is(err, ErrNotOwner):
		response.Error(c, http.StatusForbidden, "NOT_OWNER", "Event belongs to another organizer")
	case errors.Is(err, ErrNotEditable):
		response.Error(c, http.StatusConflict, "NOT_EDITABLE", "Event can no longer be edited")
	default:
		response.Error(c, http.StatusInternalServerError, code, fallback)
	}
}

func queryInt64(c *gin.Context, name string) int64 {
	v, _ := strconv.ParseInt(c.Query(name), 10, 64)
	return v
}
