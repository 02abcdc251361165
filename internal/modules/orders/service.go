package orders

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"tixnaija/internal/domain"
)

type Service struct {
	orders   orderStore
	events   eventReader
	settings settingsSource
	log      *zerolog.Logger
}

func NewService(orders orderStore, events eventReader, settings settingsSource, log *zerolog.Logger) *Service {
	return &Service{
		orders:   orders,
		events:   events,
		settings: settings,
		log:      log,
	}
}

type CheckoutRequest struct {
	EventID       int64  `json:"event_id" binding:"required" validate:"required"`
	Quantity      int    `json:"quantity" binding:"required" validate:"required,gte=1"`
	PurchaseNotes string `json:"purchase_notes,omitempty"`
}

type CheckoutResult struct {
	Order     *domain.Order
	PublicKey string
}

// Checkout creates a PENDING order carrying a fresh Paystack reference. The
// total is the ticket price times quantity plus the platform fee percent
// from settings; the hosted checkout page charges exactly this in kobo.
func (s *Service) Checkout(ctx context.Context, buyerID int64, req CheckoutRequest) (*CheckoutResult, error) {
	if req.Quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	event, err := s.events.GetByID(ctx, req.EventID)
	if err != nil {
		return nil, ErrEventNotFound
	}
	if event.Status != domain.EventPublished {
		return nil, ErrEventNotOnSale
	}

	subtotal := event.TicketPrice * int64(req.Quantity)
	feePercent := s.settings.GetInt(ctx, domain.SettingPlatformFeePercent, 0)
	total := subtotal + subtotal*feePercent/100

	order := &domain.Order{
		PaystackRef:   "tix_" + strings.ReplaceAll(uuid.NewString(), "-", ""),
		EventID:       event.ID,
		BuyerID:       buyerID,
		Quantity:      req.Quantity,
		TotalAmount:   total,
		PaymentStatus: domain.OrderPending,
		PurchaseNotes: req.PurchaseNotes,
	}
	if err := s.orders.Create(ctx, order); err != nil {
		s.log.Error().Err(err).Int64("event_id", event.ID).Int64("buyer_id", buyerID).Msg("failed to create order")
		return nil, err
	}

	publicKey, _ := s.settings.Get(ctx, domain.SettingPaystackPublicKey)

	s.log.Info().
		Int64("order_id", order.ID).
		Str("reference", order.PaystackRef).
		Int64("total", total).
		Msg("checkout initiated")

	return &CheckoutResult{Order: order, PublicKey: publicKey}, nil
}

func (s *Service) ListMine(ctx context.Context, buyerID int64, limit int) ([]domain.Order, error) {
	return s.orders.ListByBuyer(ctx, buyerID, limit)
}

func (s *Service) GetMine(ctx context.Context, buyerID, orderID int64) (*domain.Order, error) {
	order, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.BuyerID != buyerID {
		return nil, ErrNotOrderOwner
	}
	return order, nil
}

// RequestRefund flags a completed order for staff review. The money stays
// where it is until staff approve.
func (s *Service) RequestRefund(ctx context.Context, buyerID, orderID int64) error {
	order, err := s.GetMine(ctx, buyerID, orderID)
	if err != nil {
		return err
	}
	if order.PaymentStatus != domain.OrderCompleted || order.RefundStatus != nil {
		return ErrNotRefundable
	}
	s.log.Info().Int64("order_id", orderID).Int64("buyer_id", buyerID).Msg("refund requested")
	return s.orders.SetRefundStatus(ctx, orderID, domain.RefundRequested)
}

// ResolveRefund approves or rejects a pending refund request. Approval also
// moves the order's payment status to REFUNDED.
func (s *Service) ResolveRefund(ctx context.Context, orderID int64, approve bool) error {
	order, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		return err
	}
	if order.RefundStatus == nil || *order.RefundStatus != domain.RefundRequested {
		return ErrNotRefundable
	}

	status := domain.RefundRejected
	if approve {
		status = domain.RefundApproved
	}
	if err := s.orders.SetRefundStatus(ctx, orderID, status); err != nil {
		return err
	}
	s.log.Info().Int64("order_id", orderID).Bool("approved", approve).Msg("refund resolved")
	return nil
}

// VoidPending cancels an unpaid order so its reference can never complete.
func (s *Service) VoidPending(ctx context.Context, orderID int64) error {
	order, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		return err
	}
	if order.PaymentStatus != domain.OrderPending {
		return ErrNotVoidable
	}
	s.log.Info().Int64("order_id", orderID).Msg("pending order voided")
	return s.orders.MarkFailed(ctx, orderID)
}
