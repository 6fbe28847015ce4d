package entities

// Plan is a read-only view of a Stripe recurring billing definition.
// Amount is in the smallest currency unit.
type Plan struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Interval string `json:"interval"`
	Nickname string `json:"nickname,omitempty"`
}
