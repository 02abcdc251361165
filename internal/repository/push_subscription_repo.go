package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"tixnaija/internal/domain"
)

type PushSubscriptionRepository struct {
	db *gorm.DB
}

func NewPushSubscriptionRepository(db *gorm.DB) *PushSubscriptionRepository {
	return &PushSubscriptionRepository{db: db}
}

// Upsert keeps one active subscription per user; a re-subscribe from a new
// browser or device replaces the stored payload.
func (r *PushSubscriptionRepository) Upsert(ctx context.Context, userID int64, subscription string) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"subscription", "updated_at"}),
		}).
		Create(&domain.PushSubscription{
			UserID:       userID,
			Subscription: subscription,
			UpdatedAt:    time.Now(),
		}).Error
}

func (r *PushSubscriptionRepository) GetByUserID(ctx context.Context, userID int64) (*domain.PushSubscription, error) {
	var s domain.PushSubscription
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *PushSubscriptionRepository) Delete(ctx context.Context, userID int64) error {
	return r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&domain.PushSubscription{}).Error
}
