package orders

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

func (h *Handler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	rg.POST("/orders/checkout", h.Checkout)
	rg.GET("/orders/mine", h.ListMine)
	rg.GET("/orders/:id", h.GetMine)
	rg.POST("/orders/:id/refund", h.RequestRefund)
}

func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.POST("/orders/:id/refund/approve", h.resolveRefund(true))
	rg.POST("/orders/:id/refund/reject", h.resolveRefund(false))
	rg.POST("/orders/:id/void", h.Void)
}

func (h *Handler) Checkout(c *gin.Context) {
	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	buyerID := c.GetInt64("user_id")
	result, err := h.service.Checkout(c.Request.Context(), buyerID, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrEventNotFound):
			response.Error(c, http.StatusNotFound, "EVENT_NOT_FOUND", "Event not found")
		case errors.Is(err, ErrEventNotOnSale):
			response.Error(c, http.StatusConflict, "NOT_ON_SALE", "This event is not open for ticket sales")
		case errors.Is(err, ErrInvalidQuantity):
			response.Error(c, http.StatusBadRequest, "INVALID_QUANTITY", "Quantity must be at least 1")
		default:
			response.Error(c, http.StatusInternalServerError, "CHECKOUT_FAILED", "Failed to initiate checkout")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"order":      result.Order,
		"public_key": result.PublicKey,
	})
}

func (h *Handler) ListMine(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	orders, err := h.service.ListMine(c.Request.Context(), c.GetInt64("user_id"), limit)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to list orders")
		return
	}
	response.Success(c, http.StatusOK, orders)
}

func (h *Handler) GetMine(c *gin.Context) {
	orderID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid order ID")
		return
	}

	order, err := h.service.GetMine(c.Request.Context(), c.GetInt64("user_id"), orderID)
	if err != nil {
		if errors.Is(err, ErrNotOrderOwner) {
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "This order belongs to another user")
			return
		}
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Order not found")
		return
	}
	response.Success(c, http.StatusOK, order)
}

func (h *Handler) RequestRefund(c *gin.Context) {
	orderID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid order ID")
		return
	}

	if err := h.service.RequestRefund(c.Request.Context(), c.GetInt64("user_id"), orderID); err != nil {
		switch {
		case errors.Is(err, ErrNotOrderOwner):
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "This order belongs to another user")
		case errors.Is(err, ErrNotRefundable):
			response.Error(c, http.StatusConflict, "NOT_REFUNDABLE", "Order is not eligible for a refund")
		default:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Order not found")
		}
		return
	}
	response.Success(c, http.StatusOK, gin.H{})
}

func (h *Handler) resolveRefund(approve bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid order ID")
			return
		}

		if err := h.service.ResolveRefund(c.Request.Context(), orderID, approve); err != nil {
			if errors.Is(err, ErrNotRefundable) {
				response.Error(c, http.StatusConflict, "NOT_REFUNDABLE", "No pending refund request for this order")
				return
			}
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Order not found")
			return
		}
		response.Success(c, http.StatusOK, gin.H{})
	}
}

func (h *Handler) Void(c *gin.Context) {
	orderID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid order ID")
		return
	}

	if err := h.service.VoidPending(c.Request.Context(), orderID); err != nil {
		if errors.Is(err, ErrNotVoidable) {
			response.Error(c, http.StatusConflict, "NOT_VOIDABLE", "Only pending orders can be voided")
			return
		}
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Order not found")
		return
	}
	response.Success(c, http.StatusOK, gin.H{})
}
