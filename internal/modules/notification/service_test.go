package notification

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"tixnaija/internal/domain"
)

type mockNotificationStore struct {
	mu      sync.Mutex
	created []*domain.Notification
}

func (m *mockNotificationStore) Create(ctx context.Context, n *domain.Notification) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	n.ID = int64(len(m.created) + 1)
	m.created = append(m.created, n)
	return nil
}

func (m *mockNotificationStore) GetByUserID(ctx context.Context, userID int64, limit int) ([]domain.Notification, error) {
	return nil, nil
}

func (m *mockNotificationStore) CountUnread(ctx context.Context, userID int64) (int64, error) {
	return 0, nil
}

func (m *mockNotificationStore) MarkAsRead(ctx context.Context, notificationID, userID int64) error {
	return nil
}

func (m *mockNotificationStore) MarkAllAsRead(ctx context.Context, userID int64) error {
	return nil
}

type mockSubscriptionStore struct {
	subs map[int64]string
}

func (m *mockSubscriptionStore) Upsert(ctx context.Context, userID int64, subscription string) error {
	m.subs[userID] = subscription
	return nil
}

func (m *mockSubscriptionStore) GetByUserID(ctx context.Context, userID int64) (*domain.PushSubscription, error) {
	s, ok := m.subs[userID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &domain.PushSubscription{UserID: userID, Subscription: s}, nil
}

func (m *mockSubscriptionStore) Delete(ctx context.Context, userID int64) error {
	delete(m.subs, userID)
	return nil
}

type mockPushSender struct {
	mu      sync.Mutex
	failFor map[string]bool
	sent    []string
}

func (m *mockPushSender) Send(ctx context.Context, subscription, title, body, link string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failFor[subscription] {
		return errors.New("provider unavailable")
	}
	m.sent = append(m.sent, subscription)
	return nil
}

func newDispatchService(subs *mockSubscriptionStore, sender *mockPushSender) *Service {
	log := zerolog.Nop()
	return NewService(&mockNotificationStore{}, subs, sender, NewHub(), &log)
}

func TestSendPush_MixedOutcomes(t *testing.T) {
	subs := &mockSubscriptionStore{subs: map[int64]string{
		1: `{"token":"tok-1"}`,
		3: `{"token":"tok-3"}`,
		// user 2 has no subscription
	}}
	sender := &mockPushSender{failFor: map[string]bool{`{"token":"tok-3"}`: true}}
	svc := newDispatchService(subs, sender)

	res := svc.SendPush(context.Background(), []int64{1, 2, 3}, "New event", "Burna live in Lagos", "/events/burna-live", 77)

	if res.Sent != 1 {
		t.Fatalf("expected 1 delivery, got %d", res.Sent)
	}
	if res.Total != 3 {
		t.Fatalf("total counts every recipient, got %d", res.Total)
	}
	if len(res.Results) != 3 {
		t.Fatalf("expected a result per recipient, got %d", len(res.Results))
	}

	byUser := map[int64]DeliveryResult{}
	for _, r := range res.Results {
		byUser[r.UserID] = r
	}
	if byUser[1].Status != StatusDelivered || !byUser[1].Success {
		t.Fatalf("user 1 should be delivered, got %+v", byUser[1])
	}
	if byUser[2].Status != StatusNoSubscription || byUser[2].Success {
		t.Fatalf("user 2 should be no_subscription, got %+v", byUser[2])
	}
	if byUser[3].Status != StatusDeliveryFailed || byUser[3].Success {
		t.Fatalf("user 3 should be delivery_failed, got %+v", byUser[3])
	}
	for _, r := range res.Results {
		if r.NotificationID != 77 {
			t.Fatalf("every result carries the dispatch notification id, got %+v", r)
		}
	}
}

func TestSendPush_ResultOrderMatchesInput(t *testing.T) {
	subs := &mockSubscriptionStore{subs: map[int64]string{
		5: `{"token":"tok-5"}`,
		9: `{"token":"tok-9"}`,
	}}
	svc := newDispatchService(subs, &mockPushSender{})

	res := svc.SendPush(context.Background(), []int64{9, 5}, "t", "b", "", 0)

	if res.Results[0].UserID != 9 || res.Results[1].UserID != 5 {
		t.Fatalf("results must keep the request order, got %+v", res.Results)
	}
}

func TestSendPush_NoRecipients(t *testing.T) {
	svc := newDispatchService(&mockSubscriptionStore{subs: map[int64]string{}}, &mockPushSender{})

	res := svc.SendPush(context.Background(), nil, "t", "b", "", 0)
	if res.Sent != 0 || res.Total != 0 || len(res.Results) != 0 {
		t.Fatalf("expected empty dispatch, got %+v", res)
	}
}

func TestCreate_PersistsAndPushesToHub(t *testing.T) {
	store := &mockNotificationStore{}
	log := zerolog.Nop()
	svc := NewService(store, &mockSubscriptionStore{subs: map[int64]string{}}, &mockPushSender{}, NewHub(), &log)

	err := svc.Create(context.Background(), 7, domain.NotifOrderCompleted, "Payment confirmed", "Order #42 paid", map[string]any{"order_id": 42})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if len(store.created) != 1 {
		t.Fatalf("expected one stored notification, got %d", len(store.created))
	}
	if store.created[0].Type != domain.NotifOrderCompleted {
		t.Fatalf("unexpected type %s", store.created[0].Type)
	}
}
