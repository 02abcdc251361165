package catalog

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"tixnaija/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(v1 *gin.RouterGroup) {
	v1.GET("/venues", h.ListVenues)
	v1.GET("/categories", h.ListCategories)
	v1.GET("/cities", h.ListCities)
}

func (h *Handler) RegisterAdminRoutes(admin *gin.RouterGroup) {
	admin.POST("/venues", h.CreateVenue)
	admin.PUT("/venues/:id", h.UpdateVenue)
	admin.POST("/categories", h.CreateCategory)
	admin.POST("/cities", h.CreateCity)
}

func (h *Handler) ListVenues(c *gin.Context) {
	cityID, _ := strconv.ParseInt(c.Query("city_id"), 10, 64)
	venues, err := h.service.ListVenues(c.Request.Context(), cityID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "LIST_FAILED", "Failed to load venues")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"venues": venues})
}

func (h *Handler) ListCategories(c *gin.Context) {
	categories, err := h.service.ListCategories(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "LIST_FAILED", "Failed to load categories")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"categories": categories})
}

func (h *Handler) ListCities(c *gin.Context) {
	cities, err := h.service.ListCities(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "LIST_FAILED", "Failed to load cities")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"cities": cities})
}

func (h *Handler) CreateVenue(c *gin.Context) {
	var req VenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	venue, err := h.service.CreateVenue(c.Request.Context(), req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "CREATE_FAILED", "Failed to create venue")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"venue": venue})
}

func (h *Handler) UpdateVenue(c *gin.Context) {
	venueID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid venue id")
		return
	}

	var req VenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	venue, err := h.service.UpdateVenue(c.Request.Context(), venueID, req)
	if err != nil {
		if errors.Is(err, ErrVenueNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Venue not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "UPDATE_FAILED", "Failed to update venue")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"venue": venue})
}

func (h *Handler) CreateCategory(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	category, err := h.service.CreateCategory(c.Request.Context(), req.Name)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "CREATE_FAILED", "Failed to create category")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"category": category})
}

func (h *Handler) CreateCity(c *gin.Context) {
	var req CityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	city, err := h.service.CreateCity(c.Request.Context(), req.Name, req.State)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "CREATE_FAILED", "Failed to create city")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"city": city})
}
