package blog

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"tixnaija/internal/pkg/response"
)

type PostRequest struct {
	Title     string `json:"title" binding:"required"`
	Body      string `json:"body"`
	Published bool   `json:"published"`
}

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(v1 *gin.RouterGroup) {
	v1.GET("/posts", h.List)
	v1.GET("/posts/:slug", h.GetBySlug)
}

func (h *Handler) RegisterStaffRoutes(staff *gin.RouterGroup) {
	staff.POST("/posts", h.Create)
	staff.PUT("/posts/:slug", h.Update)
}

func (h *Handler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	offset, _ := strconv.Atoi(c.Query("offset"))

	posts, total, err := h.service.ListPublished(c.Request.Context(), limit, offset)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "LIST_FAILED", "Failed to load posts")
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"posts": posts,
		"total": total,
	})
}

func (h *Handler) GetBySlug(c *gin.Context) {
	post, err := h.service.GetPublished(c.Request.Context(), c.Param("slug"))
	if err != nil {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Post not found")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"post": post})
}

func (h *Handler) Create(c *gin.Context) {
	var req PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	post, err := h.service.Create(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "CREATE_FAILED", "Failed to create post")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"post": post})
}

func (h *Handler) Update(c *gin.Context) {
	var req PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	post, err := h.service.Update(c.Request.Context(), c.Param("slug"), req)
	if err != nil {
		if errors.Is(err, ErrPostNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Post not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "UPDATE_FAILED", "Failed to update post")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"post": post})
}
