package entities

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingAPISecret means the client was constructed without a Stripe
	// API secret. Nothing was sent over the wire.
	ErrMissingAPISecret = errors.New("missing stripe api secret")

	ErrResourceNotFound      = errors.New("stripe resource not found")
	ErrPaymentDeclined       = errors.New("payment declined")
	ErrChargeAlreadyRefunded = errors.New("charge already refunded")

	ErrInvalidAmount       = errors.New("amount must be a positive integer in the smallest currency unit")
	ErrInvalidCurrency     = errors.New("currency cannot be empty")
	ErrInvalidPaymentToken = errors.New("payment token cannot be empty")
	ErrInvalidCustomerID   = errors.New("customer id cannot be empty")
	ErrInvalidPlanID       = errors.New("plan id cannot be empty")
	ErrInvalidCouponID     = errors.New("coupon id cannot be empty")
	ErrInvalidChargeID     = errors.New("charge id cannot be empty")
)

// StripeError carries a Stripe API error verbatim (type/code/message as
// returned by the platform) for diagnostics.
//
// When the remote error maps onto one of the sentinel errors above, the
// StripeError unwraps to it, so callers can use errors.Is against the
// sentinels without losing the original code/message.
type StripeError struct {
	Type        string
	Code        string
	DeclineCode string
	Message     string
	HTTPStatus  int

	sentinel error
}

func NewStripeError(errType, code, declineCode, message string, httpStatus int, sentinel error) *StripeError {
	return &StripeError{
		Type:        errType,
		Code:        code,
		DeclineCode: declineCode,
		Message:     message,
		HTTPStatus:  httpStatus,
		sentinel:    sentinel,
	}
}

func (e *StripeError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("stripe: %s (%s): %s", e.Type, e.Code, e.Message)
	}
	return fmt.Sprintf("stripe: %s: %s", e.Type, e.Message)
}

func (e *StripeError) Unwrap() error {
	return e.sentinel
}
