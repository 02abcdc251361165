package notification

import (
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"tixnaija/internal/pkg/response"
)

type Handler struct {
	service *Service
	hub     *Hub
}

func NewHandler(service *Service, hub *Hub) *Handler {
	return &Handler{service: service, hub: hub}
}

func (h *Handler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	rg.GET("/notifications", h.List)
	rg.GET("/notifications/unread-count", h.UnreadCount)
	rg.POST("/notifications/read", h.MarkRead)
	rg.POST("/notifications/read-all", h.MarkAllRead)
	rg.POST("/notifications/subscribe", h.Subscribe)
	rg.DELETE("/notifications/subscribe", h.Unsubscribe)
	rg.GET("/notifications/stream", h.Stream)
}

func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.POST("/notifications/push", h.SendPush)
}

func (h *Handler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	list, unread, err := h.service.GetUserNotifications(c.Request.Context(), c.GetInt64("user_id"), limit)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to list notifications")
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"notifications": list,
		"unread_count":  unread,
	})
}

func (h *Handler) UnreadCount(c *gin.Context) {
	_, unread, err := h.service.GetUserNotifications(c.Request.Context(), c.GetInt64("user_id"), 1)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to count notifications")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"unread_count": unread})
}

type markReadRequest struct {
	NotificationID int64 `json:"notificationId" binding:"required"`
}

// MarkRead is idempotent: marking an already-read notification succeeds.
func (h *Handler) MarkRead(c *gin.Context) {
	var req markReadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	if err := h.service.MarkAsRead(c.Request.Context(), req.NotificationID, c.GetInt64("user_id")); err != nil {
		response.Error(c, http.StatusInternalServerError, "UPDATE_FAILED", "Failed to mark notification as read")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"notificationId": req.NotificationID})
}

func (h *Handler) MarkAllRead(c *gin.Context) {
	if err := h.service.MarkAllAsRead(c.Request.Context(), c.GetInt64("user_id")); err != nil {
		response.Error(c, http.StatusInternalServerError, "UPDATE_FAILED", "Failed to mark notifications as read")
		return
	}
	response.Success(c, http.StatusOK, gin.H{})
}

// Subscribe stores the caller's push subscription payload as-is; the payload
// is opaque to the platform and only interpreted by the delivery provider.
func (h *Handler) Subscribe(c *gin.Context) {
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, 16*1024))
	if err != nil || len(body) == 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_SUBSCRIPTION", "Subscription payload is required")
		return
	}

	if err := h.service.Subscribe(c.Request.Context(), c.GetInt64("user_id"), string(body)); err != nil {
		response.Error(c, http.StatusInternalServerError, "SUBSCRIBE_FAILED", "Failed to save subscription")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{})
}

func (h *Handler) Unsubscribe(c *gin.Context) {
	if err := h.service.Unsubscribe(c.Request.Context(), c.GetInt64("user_id")); err != nil {
		response.Error(c, http.StatusInternalServerError, "UNSUBSCRIBE_FAILED", "Failed to remove subscription")
		return
	}
	response.Success(c, http.StatusOK, gin.H{})
}

type sendPushRequest struct {
	UserIDs        []int64 `json:"userIds" binding:"required"`
	Title          string  `json:"title" binding:"required"`
	Body           string  `json:"body" binding:"required"`
	URL            string  `json:"url"`
	NotificationID int64   `json:"notificationId"`
}

func (h *Handler) SendPush(c *gin.Context) {
	var req sendPushRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	result := h.service.SendPush(c.Request.Context(), req.UserIDs, req.Title, req.Body, req.URL, req.NotificationID)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"sent":    result.Sent,
		"total":   result.Total,
		"results": result.Results,
	})
}

func (h *Handler) Stream(c *gin.Context) {
	userID := c.GetInt64("user_id")
	if userID == 0 {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	h.hub.ServeWS(conn, userID)
}
