package entities

// Coupon is a read-only view of a Stripe discount applicable to a
// subscription. Exactly one of PercentOff/AmountOff is set by the platform.
type Coupon struct {
	ID         string  `json:"id"`
	PercentOff float64 `json:"percent_off,omitempty"`
	AmountOff  int64   `json:"amount_off,omitempty"`
	Currency   string  `json:"currency,omitempty"`
	Duration   string  `json:"duration,omitempty"`
	Valid      bool    `json:"valid"`
}
