package payment

import (
	"context"

	"tixnaija/internal/domain"
	"tixnaija/internal/paystack"
)

type settingsSource interface {
	Get(ctx context.Context, key string) (string, bool)
}

type gatewayVerifier interface {
	VerifyTransaction(ctx context.Context, secretKey, reference string) (*paystack.VerifyData, error)
}

type orderStore interface {
	GetByRef(ctx context.Context, reference string) (*domain.Order, error)
	CompleteIfPending(ctx context.Context, orderID int64, reference string) (bool, error)
}

type completionNotifier interface {
	NotifyOrderCompleted(ctx context.Context, buyerID, orderID int64)
}
