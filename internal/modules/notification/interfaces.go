package notification

import (
	"context"

	"tixnaija/internal/domain"
)

type notificationStore interface {
	Create(ctx context.Context, n *domain.Notification) error
	GetByUserID(ctx context.Context, userID int64, limit int) ([]domain.Notification, error)
	CountUnread(ctx context.Context, userID int64) (int64, error)
	MarkAsRead(ctx context.Context, notificationID, userID int64) error
	MarkAllAsRead(ctx context.Context, userID int64) error
}

type subscriptionStore interface {
	Upsert(ctx context.Context, userID int64, subscription string) error
	GetByUserID(ctx context.Context, userID int64) (*domain.PushSubscription, error)
	Delete(ctx context.Context, userID int64) error
}

type pushSender interface {
	Send(ctx context.Context, subscription, title, body, link string) error
}
