package orders

import (
	"context"

	"tixnaija/internal/domain"
)

type eventReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Event, error)
}

type orderStore interface {
	Create(ctx context.Context, o *domain.Order) error
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
	ListByBuyer(ctx context.Context, buyerID int64, limit int) ([]domain.Order, error)
	MarkFailed(ctx context.Context, orderID int64) error
	SetRefundStatus(ctx context.Context, orderID int64, status domain.RefundStatus) error
}

type settingsSource interface {
	Get(ctx context.Context, key string) (string, bool)
	GetInt(ctx context.Context, key string, def int64) int64
}
