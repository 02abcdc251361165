package repository

import (
	"context"

	"gorm.io/gorm"

	"tixnaija/internal/domain"
)

type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

func (r *OrderRepository) Create(ctx context.Context, o *domain.Order) error {
	return r.db.WithContext(ctx).Create(o).Error
}

func (r *OrderRepository) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	var o domain.Order
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) GetByRef(ctx context.Context, reference string) (*domain.Order, error) {
	var o domain.Order
	if err := r.db.WithContext(ctx).Where("paystack_ref = ?", reference).First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) ListByBuyer(ctx context.Context, buyerID int64, limit int) ([]domain.Order, error) {
	var orders []domain.Order
	q := r.db.WithContext(ctx).Where("buyer_id = ?", buyerID).Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// CompleteIfPending transitions the order to COMPLETED with a single
// conditional update. Duplicate gateway callbacks race on this row, so the
// PENDING guard lives in the WHERE clause rather than a read-then-write.
// Returns false with no error when the order was already completed.
func (r *OrderRepository) CompleteIfPending(ctx context.Context, orderID int64, reference string) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&domain.Order{}).
		Where("id = ? AND payment_status = ?", orderID, domain.OrderPending).
		Updates(map[string]any{
			"payment_status": domain.OrderCompleted,
			"verified_ref":   reference,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *OrderRepository) MarkFailed(ctx context.Context, orderID int64) error {
	return r.db.WithContext(ctx).
		Model(&domain.Order{}).
		Where("id = ? AND payment_status = ?", orderID, domain.OrderPending).
		Update("payment_status", domain.OrderFailed).Error
}

func (r *OrderRepository) SetRefundStatus(ctx context.Context, orderID int64, status domain.RefundStatus) error {
	updates := map[string]any{"refund_status": status}
	if status == domain.RefundApproved {
		updates["payment_status"] = domain.OrderRefunded
	}
	return r.db.WithContext(ctx).
		Model(&domain.Order{}).
		Where("id = ? AND payment_status = ?", orderID, domain.OrderCompleted).
		Updates(updates).Error
}
