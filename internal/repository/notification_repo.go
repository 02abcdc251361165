package repository

import (
	"context"
	"encoding/json"
	"time"

	"gorm.io/gorm"

	"tixnaija/internal/domain"
)

// NotificationRow is the storage shape for notifications; Data is stored as
// raw JSON and decoded back into a map on read.
type NotificationRow struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	UserID    int64     `gorm:"column:user_id;index"`
	Type      string    `gorm:"column:type"`
	Title     string    `gorm:"column:title"`
	Message   *string   `gorm:"column:message"`
	IsRead    bool      `gorm:"column:is_read;default:false"`
	Data      []byte    `gorm:"column:data"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (NotificationRow) TableName() string { return "notifications" }

type NotificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) Create(ctx context.Context, n *domain.Notification) error {
	var raw []byte
	if n.Data != nil {
		b, err := json.Marshal(n.Data)
		if err != nil {
			return err
		}
		raw = b
	}

	var msg *string
	if n.Message != "" {
		m := n.Message
		msg = &m
	}

	row := &NotificationRow{
		UserID:  n.UserID,
		Type:    string(n.Type),
		Title:   n.Title,
		Message: msg,
		IsRead:  n.IsRead,
		Data:    raw,
	}

	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return err
	}
	n.ID = row.ID
	n.CreatedAt = row.CreatedAt
	return nil
}

func (r *NotificationRepository) GetByUserID(ctx context.Context, userID int64, limit int) ([]domain.Notification, error) {
	var rows []NotificationRow

	q := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]domain.Notification, 0, len(rows))
	for _, row := range rows {
		out = append(out, toDomainNotification(row))
	}
	return out, nil
}

func (r *NotificationRepository) CountUnread(ctx context.Context, userID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&NotificationRow{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&count).Error
	return count, err
}

// MarkAsRead is idempotent: marking an already-read notification succeeds
// without touching the row again.
func (r *NotificationRepository) MarkAsRead(ctx context.Context, notificationID, userID int64) error {
	return r.db.WithContext(ctx).
		Model(&NotificationRow{}).
		Where("id = ? AND user_id = ? AND is_read = ?", notificationID, userID, false).
		Update("is_read", true).Error
}

func (r *NotificationRepository) MarkAllAsRead(ctx context.Context, userID int64) error {
	return r.db.WithContext(ctx).
		Model(&NotificationRow{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Update("is_read", true).Error
}

func toDomainNotification(row NotificationRow) domain.Notification {
	var decoded map[string]any
	if len(row.Data) > 0 {
		_ = json.Unmarshal(row.Data, &decoded)
	}

	msg := ""
	if row.Message != nil {
		msg = *row.Message
	}

	return domain.Notification{
		ID:        row.ID,
		UserID:    row.UserID,
		Type:      domain.NotificationType(row.Type),
		Title:     row.Title,
		Message:   msg,
		Data:      decoded,
		IsRead:    row.IsRead,
		CreatedAt: row.CreatedAt,
	}
}
