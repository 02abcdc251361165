package domain

import "time"

type NotificationType string

const (
	NotifOrderCompleted NotificationType = "order_completed"
	NotifEventApproved  NotificationType = "event_approved"
	NotifEventRejected  NotificationType = "event_rejected"
	NotifAccountBanned  NotificationType = "account_banned"
	NotifBroadcast      NotificationType = "broadcast"
)

type Notification struct {
	ID        int64            `json:"id"`
	UserID    int64            `json:"user_id"`
	Type      NotificationType `json:"type"`
	Title     string           `json:"title"`
	Message   string           `json:"message,omitempty"`
	Data      map[string]any   `json:"data,omitempty"`
	IsRead    bool             `json:"is_read"`
	CreatedAt time.Time        `json:"created_at"`
}

// PushSubscription holds one push target per user. The Subscription payload
// is opaque to us and forwarded to the delivery provider as stored.
type PushSubscription struct {
	UserID       int64     `gorm:"primaryKey" json:"user_id"`
	Subscription string    `gorm:"type:text;not null" json:"subscription"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (PushSubscription) TableName() string { return "push_subscriptions" }
