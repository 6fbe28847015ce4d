package request

import "stripe_billing/internal/usecase"

// CreateChargeRequest is the payload for one-off token charges.
//
// Amount is an integer in the smallest currency unit. ApplicationFee only
// makes sense together with ConnectedAccountID; both are forwarded as-is and
// validated by the use case / remote platform.
type CreateChargeRequest struct {
	Amount             int64             `json:"amount" binding:"required"`
	Currency           string            `json:"currency" binding:"required"`
	PaymentToken       string            `json:"payment_token" binding:"required"`
	ConnectedAccountID string            `json:"connected_account_id"`
	ApplicationFee     int64             `json:"application_fee"`
	Description        string            `json:"description"`
	Metadata           map[string]string `json:"metadata"`
}

func (r CreateChargeRequest) Options() usecase.ChargeOptions {
	return usecase.ChargeOptions{
		ConnectedAccountID: r.ConnectedAccountID,
		ApplicationFee:     r.ApplicationFee,
		Description:        r.Description,
		Metadata:           r.Metadata,
	}
}

// ChargeCustomerRequest charges the stored default payment instrument of an
// existing customer; the customer ID comes from the URL path.
type ChargeCustomerRequest struct {
	Amount             int64             `json:"amount" binding:"required"`
	Currency           string            `json:"currency" binding:"required"`
	ConnectedAccountID string            `json:"connected_account_id"`
	ApplicationFee     int64             `json:"application_fee"`
	Description        string            `json:"description"`
	Metadata           map[string]string `json:"metadata"`
}

func (r ChargeCustomerRequest) Options() usecase.ChargeOptions {
	return usecase.ChargeOptions{
		ConnectedAccountID: r.ConnectedAccountID,
		ApplicationFee:     r.ApplicationFee,
		Description:        r.Description,
		Metadata:           r.Metadata,
	}
}

// RefundChargeRequest is the payload for refunds; the charge ID comes from
// the URL path. Amount zero requests a full refund. RefundApplicationFee
// defaults to true when omitted.
type RefundChargeRequest struct {
	Amount               int64             `json:"amount"`
	Reason               string            `json:"reason"`
	Metadata             map[string]string `json:"metadata"`
	RefundApplicationFee *bool             `json:"refund_application_fee"`
	ReverseTransfer      bool              `json:"reverse_transfer"`
	ConnectedAccountID   string            `json:"connected_account_id"`
}

func (r RefundChargeRequest) Options() usecase.RefundOptions {
	return usecase.RefundOptions{
		Amount:               r.Amount,
		Metadata:             r.Metadata,
		Reason:               r.Reason,
		RefundApplicationFee: r.RefundApplicationFee,
		ReverseTransfer:      r.ReverseTransfer,
		ConnectedAccountID:   r.ConnectedAccountID,
	}
}
