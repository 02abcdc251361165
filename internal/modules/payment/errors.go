package payment

import "errors"

var (
	ErrConfig             = errors.New("payment gateway is not configured")
	ErrVerificationFailed = errors.New("transaction verification failed")
	ErrOrderNotFound      = errors.New("no order matches the reference")
	ErrAmountMismatch     = errors.New("paid amount does not match the order total")
	ErrCompletionFailed   = errors.New("order completion failed")
)

// ReasonCode maps a verification failure to the machine-readable code the
// error page carries for support correlation. Unknown failures collapse to
// system_error so no internal detail leaks to the requester.
func ReasonCode(err error) string {
	switch {
	case errors.Is(err, ErrConfig):
		return "config"
	case errors.Is(err, ErrVerificationFailed):
		return "verification_failed"
	case errors.Is(err, ErrOrderNotFound):
		return "order_not_found"
	case errors.Is(err, ErrAmountMismatch):
		return "amount_mismatch"
	case errors.Is(err, ErrCompletionFailed):
		return "completion_failed"
	default:
		return "system_error"
	}
}
