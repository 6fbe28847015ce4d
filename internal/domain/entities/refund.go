package entities

// Refund reason values accepted by Stripe. The client passes reasons through
// verbatim; an out-of-enumeration value is rejected remotely, not locally.
const (
	RefundReasonRequestedByCustomer = "requested_by_customer"
	RefundReasonDuplicate           = "duplicate"
	RefundReasonFraudulent          = "fraudulent"
)

// Refund is a read-only view of a Stripe refund against a Charge.
type Refund struct {
	ID       string            `json:"id"`
	ChargeID string            `json:"charge_id"`
	Amount   int64             `json:"amount"`
	Currency string            `json:"currency"`
	Reason   string            `json:"reason,omitempty"`
	Status   string            `json:"status"`
	Metadata map[string]string `json:"metadata,omitempty"`
}
