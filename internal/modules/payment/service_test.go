package payment

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"tixnaija/internal/domain"
	"tixnaija/internal/paystack"
)

type mockSettings struct {
	values map[string]string
}

func (m *mockSettings) Get(ctx context.Context, key string) (string, bool) {
	v, ok := m.values[key]
	return v, ok
}

type mockGateway struct {
	data  *paystack.VerifyData
	err   error
	calls int
}

func (m *mockGateway) VerifyTransaction(ctx context.Context, secretKey, reference string) (*paystack.VerifyData, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return m.data, nil
}

type mockOrders struct {
	order         *domain.Order
	completeErr   error
	completeCalls int
}

func (m *mockOrders) GetByRef(ctx context.Context, reference string) (*domain.Order, error) {
	if m.order == nil || m.order.PaystackRef != reference {
		return nil, errors.New("not found")
	}
	return m.order, nil
}

func (m *mockOrders) CompleteIfPending(ctx context.Context, orderID int64, reference string) (bool, error) {
	m.completeCalls++
	if m.completeErr != nil {
		return false, m.completeErr
	}
	if m.order.PaymentStatus != domain.OrderPending {
		return false, nil
	}
	m.order.PaymentStatus = domain.OrderCompleted
	m.order.VerifiedRef = reference
	return true, nil
}

type mockCompletionNotifier struct {
	calls int
}

func (m *mockCompletionNotifier) NotifyOrderCompleted(ctx context.Context, buyerID, orderID int64) {
	m.calls++
}

func newTestService(settings *mockSettings, gateway *mockGateway, orders *mockOrders, notifier *mockCompletionNotifier) *Service {
	log := zerolog.Nop()
	return NewService(settings, gateway, orders, notifier, &log)
}

func configuredSettings() *mockSettings {
	return &mockSettings{values: map[string]string{
		domain.SettingPaystackSecretKey: "sk_test_abc",
	}}
}

func TestVerifyAndComplete_Success(t *testing.T) {
	orders := &mockOrders{order: &domain.Order{
		ID: 42, BuyerID: 7, PaystackRef: "tx_123",
		TotalAmount: 5000, PaymentStatus: domain.OrderPending,
	}}
	gateway := &mockGateway{data: &paystack.VerifyData{
		Status: "success", Reference: "tx_123", Amount: 500000,
	}}
	notifier := &mockCompletionNotifier{}
	svc := newTestService(configuredSettings(), gateway, orders, notifier)

	orderID, err := svc.VerifyAndComplete(context.Background(), "tx_123")
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if orderID != 42 {
		t.Fatalf("expected order 42, got %d", orderID)
	}
	if orders.order.PaymentStatus != domain.OrderCompleted {
		t.Fatalf("expected order completed, got %s", orders.order.PaymentStatus)
	}
	if notifier.calls != 1 {
		t.Fatalf("expected one completion notification, got %d", notifier.calls)
	}
}

func TestVerifyAndComplete_MissingSecret(t *testing.T) {
	gateway := &mockGateway{}
	svc := newTestService(&mockSettings{values: map[string]string{}}, gateway, &mockOrders{}, nil)

	_, err := svc.VerifyAndComplete(context.Background(), "tx_123")
	if !errors.Is(err, ErrConfig) {
		t.Fatalf("expected ErrConfig, got %v", err)
	}
	if gateway.calls != 0 {
		t.Fatalf("expected no gateway call without a secret")
	}
}

func TestVerifyAndComplete_GatewayDeclined(t *testing.T) {
	orders := &mockOrders{order: &domain.Order{
		ID: 42, PaystackRef: "tx_123", TotalAmount: 5000, PaymentStatus: domain.OrderPending,
	}}
	gateway := &mockGateway{data: &paystack.VerifyData{
		Status: "failed", Reference: "tx_123", GatewayResponse: "Declined",
	}}
	svc := newTestService(configuredSettings(), gateway, orders, nil)

	_, err := svc.VerifyAndComplete(context.Background(), "tx_123")
	if !errors.Is(err, ErrVerificationFailed) {
		t.Fatalf("expected ErrVerificationFailed, got %v", err)
	}
	if orders.completeCalls != 0 {
		t.Fatalf("expected no completion attempt on declined transaction")
	}
}

func TestVerifyAndComplete_OrderNotFound(t *testing.T) {
	gateway := &mockGateway{data: &paystack.VerifyData{Status: "success", Amount: 100}}
	svc := newTestService(configuredSettings(), gateway, &mockOrders{}, nil)

	_, err := svc.VerifyAndComplete(context.Background(), "tx_unknown")
	if !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
}

func TestVerifyAndComplete_AmountMismatch(t *testing.T) {
	orders := &mockOrders{order: &domain.Order{
		ID: 42, PaystackRef: "tx_123", TotalAmount: 5000, PaymentStatus: domain.OrderPending,
	}}
	// Order expects 500000 kobo, gateway saw 450000.
	gateway := &mockGateway{data: &paystack.VerifyData{
		Status: "success", Reference: "tx_123", Amount: 450000,
	}}
	notifier := &mockCompletionNotifier{}
	svc := newTestService(configuredSettings(), gateway, orders, notifier)

	_, err := svc.VerifyAndComplete(context.Background(), "tx_123")
	if !errors.Is(err, ErrAmountMismatch) {
		t.Fatalf("expected ErrAmountMismatch, got %v", err)
	}
	if orders.order.PaymentStatus != domain.OrderPending {
		t.Fatalf("mismatched order must stay pending, got %s", orders.order.PaymentStatus)
	}
	if notifier.calls != 0 {
		t.Fatalf("expected no notification on mismatch")
	}
}

func TestVerifyAndComplete_DuplicateCallback(t *testing.T) {
	orders := &mockOrders{order: &domain.Order{
		ID: 42, BuyerID: 7, PaystackRef: "tx_123",
		TotalAmount: 5000, PaymentStatus: domain.OrderCompleted, VerifiedRef: "tx_123",
	}}
	gateway := &mockGateway{data: &paystack.VerifyData{
		Status: "success", Reference: "tx_123", Amount: 500000,
	}}
	notifier := &mockCompletionNotifier{}
	svc := newTestService(configuredSettings(), gateway, orders, notifier)

	orderID, err := svc.VerifyAndComplete(context.Background(), "tx_123")
	if err != nil {
		t.Fatalf("duplicate callback must succeed, got %v", err)
	}
	if orderID != 42 {
		t.Fatalf("expected order 42, got %d", orderID)
	}
	if orders.completeCalls != 0 {
		t.Fatalf("expected no second completion attempt")
	}
	if notifier.calls != 0 {
		t.Fatalf("expected no second notification")
	}
}

func TestVerifyAndComplete_CompletionFailure(t *testing.T) {
	orders := &mockOrders{
		order: &domain.Order{
			ID: 42, PaystackRef: "tx_123", TotalAmount: 5000, PaymentStatus: domain.OrderPending,
		},
		completeErr: errors.New("db down"),
	}
	gateway := &mockGateway{data: &paystack.VerifyData{
		Status: "success", Reference: "tx_123", Amount: 500000,
	}}
	svc := newTestService(configuredSettings(), gateway, orders, nil)

	_, err := svc.VerifyAndComplete(context.Background(), "tx_123")
	if !errors.Is(err, ErrCompletionFailed) {
		t.Fatalf("expected ErrCompletionFailed, got %v", err)
	}
}
