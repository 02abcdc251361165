package domain

import "time"

type OrderPaymentStatus string

const (
	OrderPending   OrderPaymentStatus = "PENDING"
	OrderCompleted OrderPaymentStatus = "COMPLETED"
	OrderFailed    OrderPaymentStatus = "FAILED"
	OrderRefunded  OrderPaymentStatus = "REFUNDED"
)

type RefundStatus string

const (
	RefundRequested RefundStatus = "REQUESTED"
	RefundApproved  RefundStatus = "APPROVED"
	RefundRejected  RefundStatus = "REJECTED"
)

// Order is a ticket purchase. TotalAmount is whole naira; Paystack reports
// amounts in kobo, so the verifier compares against TotalAmount*100.
type Order struct {
	ID            int64              `gorm:"primaryKey" json:"id"`
	PaystackRef   string             `gorm:"uniqueIndex;type:varchar(64);not null" json:"paystack_ref"`
	EventID       int64              `gorm:"index;not null" json:"event_id"`
	BuyerID       int64              `gorm:"index;not null" json:"buyer_id"`
	Quantity      int                `gorm:"not null" json:"quantity"`
	TotalAmount   int64              `gorm:"not null" json:"total_amount"`
	PaymentStatus OrderPaymentStatus `gorm:"type:varchar(20);default:'PENDING';index" json:"payment_status"`
	RefundStatus  *RefundStatus      `gorm:"type:varchar(20)" json:"refund_status,omitempty"`
	PurchaseNotes string             `gorm:"type:text" json:"purchase_notes,omitempty"`
	VerifiedRef   string             `gorm:"type:varchar(64)" json:"verified_ref,omitempty"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`

	Event *Event `json:"event,omitempty" gorm:"foreignKey:EventID"`
	Buyer *User  `json:"buyer,omitempty" gorm:"foreignKey:BuyerID"`
}

func (Order) TableName() string { return "orders" }
