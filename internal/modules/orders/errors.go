package orders

import "errors"

var (
	ErrEventNotFound   = errors.New("event not found")
	ErrEventNotOnSale  = errors.New("event is not open for ticket sales")
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
	ErrNotOrderOwner   = errors.New("order belongs to another user")
	ErrNotRefundable   = errors.New("order is not eligible for a refund")
	ErrNotVoidable     = errors.New("only pending orders can be voided")
)
