package entities

// Charge is a read-only view of a single Stripe payment movement.
//
// Amount, AmountRefunded and ApplicationFee are integers in the smallest
// currency unit. CustomerID is empty for one-off token charges.
type Charge struct {
	ID             string            `json:"id"`
	Amount         int64             `json:"amount"`
	AmountRefunded int64             `json:"amount_refunded"`
	Currency       string            `json:"currency"`
	CustomerID     string            `json:"customer_id,omitempty"`
	Description    string            `json:"description,omitempty"`
	Status         string            `json:"status"`
	Paid           bool              `json:"paid"`
	Refunded       bool              `json:"refunded"`
	ApplicationFee int64             `json:"application_fee,omitempty"`
	Metadata       map[string]string `json:"metadata,omitempty"`
}
