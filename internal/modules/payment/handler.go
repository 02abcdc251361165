package payment

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	successPath = "/payment/success"
	errorPath   = "/payment/error"
)

// Handler owns the redirect-driven boundary: the service reports outcomes as
// errors and the handler alone maps them onto browser redirects.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/payments/callback", h.Callback)
}

// Callback receives the browser redirected back from Paystack's hosted
// checkout. Query: reference (required), status (informational only; the
// server-to-server verification is what decides the outcome).
func (h *Handler) Callback(c *gin.Context) {
	reference := c.Query("reference")
	if reference == "" {
		c.Redirect(http.StatusFound, errorPath)
		return
	}

	orderID, err := h.service.VerifyAndComplete(c.Request.Context(), reference)
	if err != nil {
		c.Redirect(http.StatusFound, errorRedirect(ReasonCode(err), reference))
		return
	}

	c.Redirect(http.StatusFound, successPath+"?orderId="+strconv.FormatInt(orderID, 10))
}

func errorRedirect(reason, reference string) string {
	target := errorPath + "?error=" + reason
	if reference != "" {
		target += "&reference=" + url.QueryEscape(reference)
	}
	return target
}
