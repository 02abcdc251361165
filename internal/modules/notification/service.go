package notification

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"tixnaija/internal/domain"
)

type DeliveryStatus string

const (
	StatusDelivered      DeliveryStatus = "delivered"
	StatusNoSubscription DeliveryStatus = "no_subscription"
	StatusDeliveryFailed DeliveryStatus = "delivery_failed"
)

type DeliveryResult struct {
	UserID         int64          `json:"userId"`
	NotificationID int64          `json:"notificationId,omitempty"`
	Success        bool           `json:"success"`
	Status         DeliveryStatus `json:"status"`
}

type DispatchResult struct {
	Sent    int              `json:"sent"`
	Total   int              `json:"total"`
	Results []DeliveryResult `json:"results"`
}

type Service struct {
	repo   notificationStore
	subs   subscriptionStore
	sender pushSender
	hub    *Hub
	log    *zerolog.Logger
}

func NewService(repo notificationStore, subs subscriptionStore, sender pushSender, hub *Hub, log *zerolog.Logger) *Service {
	return &Service{
		repo:   repo,
		subs:   subs,
		sender: sender,
		hub:    hub,
		log:    log,
	}
}

func (s *Service) Create(ctx context.Context, userID int64, t domain.NotificationType, title, message string, data map[string]any) error {
	n := &domain.Notification{
		UserID:  userID,
		Type:    t,
		Title:   title,
		Message: message,
		Data:    data,
	}
	if err := s.repo.Create(ctx, n); err != nil {
		return err
	}
	if s.hub != nil {
		s.hub.Push(userID, n)
	}
	return nil
}

func (s *Service) GetUserNotifications(ctx context.Context, userID int64, limit int) ([]domain.Notification, int64, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	list, err := s.repo.GetByUserID(ctx, userID, limit)
	if err != nil {
		return nil, 0, err
	}

	unread, err := s.repo.CountUnread(ctx, userID)
	if err != nil {
		unread = 0
	}

	return list, unread, nil
}

func (s *Service) MarkAsRead(ctx context.Context, notificationID, userID int64) error {
	return s.repo.MarkAsRead(ctx, notificationID, userID)
}

func (s *Service) MarkAllAsRead(ctx context.Context, userID int64) error {
	return s.repo.MarkAllAsRead(ctx, userID)
}

func (s *Service) Subscribe(ctx context.Context, userID int64, subscription string) error {
	return s.subs.Upsert(ctx, userID, subscription)
}

func (s *Service) Unsubscribe(ctx context.Context, userID int64) error {
	return s.subs.Delete(ctx, userID)
}

// SendPush fans a push message out to the given users. Each delivery runs
// concurrently and fails alone: a dead subscription or provider error for
// one recipient never blocks the others. Users without a subscription are
// skipped but still counted in the total. notificationID correlates the
// dispatch with a stored notification; zero means the push stands alone.
func (s *Service) SendPush(ctx context.Context, userIDs []int64, title, body, link string, notificationID int64) *DispatchResult {
	results := make([]DeliveryResult, len(userIDs))

	var wg sync.WaitGroup
	for i, userID := range userIDs {
		wg.Add(1)
		go func(i int, userID int64) {
			defer wg.Done()
			results[i] = s.deliverOne(ctx, userID, title, body, link, notificationID)
		}(i, userID)
	}
	wg.Wait()

	sent := 0
	for _, r := range results {
		if r.Success {
			sent++
		}
	}

	s.log.Info().
		Int("sent", sent).
		Int("total", len(userIDs)).
		Int64("notification_id", notificationID).
		Str("title", title).
		Msg("push dispatch finished")

	return &DispatchResult{Sent: sent, Total: len(userIDs), Results: results}
}

func (s *Service) deliverOne(ctx context.Context, userID int64, title, body, link string, notificationID int64) DeliveryResult {
	sub, err := s.subs.GetByUserID(ctx, userID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.log.Warn().Err(err).Int64("user_id", userID).Msg("subscription lookup failed")
		}
		return DeliveryResult{UserID: userID, NotificationID: notificationID, Status: StatusNoSubscription}
	}

	if err := s.sender.Send(ctx, sub.Subscription, title, body, link); err != nil {
		s.log.Warn().Err(err).Int64("user_id", userID).Int64("notification_id", notificationID).Msg("push delivery failed")
		return DeliveryResult{UserID: userID, NotificationID: notificationID, Status: StatusDeliveryFailed}
	}

	return DeliveryResult{UserID: userID, NotificationID: notificationID, Success: true, Status: StatusDelivered}
}

func (s *Service) NotifyOrderCompleted(ctx context.Context, buyerID, orderID int64) {
	err := s.Create(ctx, buyerID, domain.NotifOrderCompleted,
		"Payment confirmed",
		fmt.Sprintf("Your order #%d has been paid. Your tickets are on the way.", orderID),
		map[string]any{"order_id": orderID},
	)
	if err != nil {
		s.log.Error().Err(err).Int64("order_id", orderID).Msg("failed to record order notification")
	}
}

func (s *Service) NotifyEventApproved(ctx context.Context, organizerID, eventID int64) {
	err := s.Create(ctx, organizerID, domain.NotifEventApproved,
		"Event approved",
		"Your event has been approved and is now live.",
		map[string]any{"event_id": eventID},
	)
	if err != nil {
		s.log.Error().Err(err).Int64("event_id", eventID).Msg("failed to record approval notification")
	}
}

func (s *Service) NotifyEventRejected(ctx context.Context, organizerID, eventID int64, reason string) {
	msg := "Your event was not approved."
	if reason != "" {
		msg += " Reason: " + reason
	}
	err := s.Create(ctx, organizerID, domain.NotifEventRejected, "Event rejected", msg,
		map[string]any{"event_id": eventID},
	)
	if err != nil {
		s.log.Error().Err(err).Int64("event_id", eventID).Msg("failed to record rejection notification")
	}
}
