package payment

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"tixnaija/internal/domain"
	"tixnaija/internal/paystack"
)

func newCallbackRouter(svc *Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewHandler(svc).RegisterPublicRoutes(r.Group("/"))
	return r
}

func doCallback(t *testing.T, r *gin.Engine, target string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	r.ServeHTTP(w, req)
	return w
}

func TestCallback_MissingReference(t *testing.T) {
	svc := newTestService(configuredSettings(), &mockGateway{}, &mockOrders{}, nil)
	r := newCallbackRouter(svc)

	w := doCallback(t, r, "/payments/callback")
	if w.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/payment/error" {
		t.Fatalf("expected bare error redirect, got %s", loc)
	}
}

func TestCallback_Success(t *testing.T) {
	orders := &mockOrders{order: &domain.Order{
		ID: 42, PaystackRef: "tx_123", TotalAmount: 5000, PaymentStatus: domain.OrderPending,
	}}
	gateway := &mockGateway{data: &paystack.VerifyData{
		Status: "success", Reference: "tx_123", Amount: 500000,
	}}
	svc := newTestService(configuredSettings(), gateway, orders, &mockCompletionNotifier{})
	r := newCallbackRouter(svc)

	w := doCallback(t, r, "/payments/callback?reference=tx_123&status=success")
	if w.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/payment/success?orderId=42" {
		t.Fatalf("unexpected redirect: %s", loc)
	}
}

func TestCallback_AmountMismatchRedirect(t *testing.T) {
	orders := &mockOrders{order: &domain.Order{
		ID: 42, PaystackRef: "tx_123", TotalAmount: 5000, PaymentStatus: domain.OrderPending,
	}}
	gateway := &mockGateway{data: &paystack.VerifyData{
		Status: "success", Reference: "tx_123", Amount: 450000,
	}}
	svc := newTestService(configuredSettings(), gateway, orders, nil)
	r := newCallbackRouter(svc)

	w := doCallback(t, r, "/payments/callback?reference=tx_123")
	if w.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", w.Code)
	}
	want := "/payment/error?error=amount_mismatch&reference=tx_123"
	if loc := w.Header().Get("Location"); loc != want {
		t.Fatalf("expected %s, got %s", want, loc)
	}
}

func TestCallback_UnknownReferenceRedirect(t *testing.T) {
	gateway := &mockGateway{data: &paystack.VerifyData{Status: "success", Amount: 100}}
	svc := newTestService(configuredSettings(), gateway, &mockOrders{}, nil)
	r := newCallbackRouter(svc)

	w := doCallback(t, r, "/payments/callback?reference=tx_nope")
	want := "/payment/error?error=order_not_found&reference=tx_nope"
	if loc := w.Header().Get("Location"); loc != want {
		t.Fatalf("expected %s, got %s", want, loc)
	}
}
