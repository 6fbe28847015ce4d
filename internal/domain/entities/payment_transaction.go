package entities

import "time"

// TransactionKind discriminates ledger entries.
type TransactionKind string

const (
	TransactionKindCharge TransactionKind = "charge"
	TransactionKindRefund TransactionKind = "refund"
)

// PaymentTransaction is the ledger entry persisted for every charge and
// refund executed through the service.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (charge_id-index): charge_id
//
// ChargeID is set for both kinds (for refunds it references the refunded
// charge); RefundID is set only for refunds.
type PaymentTransaction struct {
	ID                 string          `json:"id"`
	Kind               TransactionKind `json:"kind"`
	ChargeID           string          `json:"charge_id"`
	RefundID           string          `json:"refund_id,omitempty"`
	Amount             int64           `json:"amount"`
	Currency           string          `json:"currency"`
	Status             string          `json:"status"`
	ConnectedAccountID string          `json:"connected_account_id,omitempty"`
	Date               time.Time       `json:"date"`
}
