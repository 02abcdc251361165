package payment

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"tixnaija/internal/domain"
)

// Service settles Paystack callbacks. The verification steps run strictly in
// sequence, each depending on the previous result: credential resolution,
// gateway call, order lookup, amount check, idempotency check, completion.
type Service struct {
	settings settingsSource
	gateway  gatewayVerifier
	orders   orderStore
	notifier completionNotifier
	log      *zerolog.Logger
}

func NewService(settings settingsSource, gateway gatewayVerifier, orders orderStore, notifier completionNotifier, log *zerolog.Logger) *Service {
	return &Service{
		settings: settings,
		gateway:  gateway,
		orders:   orders,
		notifier: notifier,
		log:      log,
	}
}

// VerifyAndComplete confirms the referenced transaction with Paystack and
// completes the matching order. The reference is client-controllable, so a
// missing order is an expected outcome, not an exception. Repeated callbacks
// for an already-completed order succeed without re-applying side effects.
func (s *Service) VerifyAndComplete(ctx context.Context, reference string) (int64, error) {
	secret, ok := s.settings.Get(ctx, domain.SettingPaystackSecretKey)
	if !ok || strings.TrimSpace(secret) == "" {
		s.log.Error().Str("reference", reference).Msg("paystack secret key is not configured")
		return 0, ErrConfig
	}

	data, err := s.gateway.VerifyTransaction(ctx, secret, reference)
	if err != nil {
		s.log.Error().Err(err).Str("reference", reference).Msg("gateway verification call failed")
		return 0, ErrVerificationFailed
	}
	if data.Status != "success" {
		s.log.Warn().
			Str("reference", reference).
			Str("gateway_status", data.Status).
			Str("gateway_response", data.GatewayResponse).
			Msg("gateway reports transaction not successful")
		return 0, ErrVerificationFailed
	}

	order, err := s.orders.GetByRef(ctx, reference)
	if err != nil {
		s.log.Warn().Str("reference", reference).Msg("callback reference matches no order")
		return 0, ErrOrderNotFound
	}

	// Order totals are whole naira; Paystack reports kobo.
	expected := order.TotalAmount * 100
	if data.Amount != expected {
		s.log.Error().
			Int64("order_id", order.ID).
			Str("reference", reference).
			Int64("expected_kobo", expected).
			Int64("paid_kobo", data.Amount).
			Msg("paid amount mismatch, order left for manual reconciliation")
		return 0, ErrAmountMismatch
	}

	if order.PaymentStatus == domain.OrderCompleted {
		s.log.Info().Int64("order_id", order.ID).Str("reference", reference).Msg("duplicate callback for completed order")
		return order.ID, nil
	}

	changed, err := s.orders.CompleteIfPending(ctx, order.ID, reference)
	if err != nil {
		s.log.Error().Err(err).Int64("order_id", order.ID).Msg("order completion failed")
		return 0, ErrCompletionFailed
	}

	if changed && s.notifier != nil {
		s.notifier.NotifyOrderCompleted(ctx, order.BuyerID, order.ID)
	}

	s.log.Info().
		Int64("order_id", order.ID).
		Str("reference", reference).
		Bool("state_changed", changed).
		Msg("order settlement verified")
	return order.ID, nil
}
