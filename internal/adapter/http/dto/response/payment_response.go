package response

import (
	"time"

	"stripe_billing/internal/domain/entities"
)

type CustomerResponse struct {
	ID            string `json:"id"`
	Email         string `json:"email,omitempty"`
	DefaultSource string `json:"default_source,omitempty"`
}

func FromCustomer(c entities.Customer) CustomerResponse {
	return CustomerResponse{
		ID:            c.ID,
		Email:         c.Email,
		DefaultSource: c.DefaultSource,
	}
}

type PlanResponse struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Interval string `json:"interval"`
	Nickname string `json:"nickname,omitempty"`
}

func FromPlan(p entities.Plan) PlanResponse {
	return PlanResponse{
		ID:       p.ID,
		Amount:   p.Amount,
		Currency: p.Currency,
		Interval: p.Interval,
		Nickname: p.Nickname,
	}
}

type CouponResponse struct {
	ID         string  `json:"id"`
	PercentOff float64 `json:"percent_off,omitempty"`
	AmountOff  int64   `json:"amount_off,omitempty"`
	Currency   string  `json:"currency,omitempty"`
	Duration   string  `json:"duration,omitempty"`
	Valid      bool    `json:"valid"`
}

func FromCoupon(c entities.Coupon) CouponResponse {
	return CouponResponse{
		ID:         c.ID,
		PercentOff: c.PercentOff,
		AmountOff:  c.AmountOff,
		Currency:   c.Currency,
		Duration:   c.Duration,
		Valid:      c.Valid,
	}
}

type SubscriptionResponse struct {
	ID         string `json:"id"`
	CustomerID string `json:"customer_id"`
	PlanID     string `json:"plan_id"`
	Status     string `json:"status"`
	CouponID   string `json:"coupon_id,omitempty"`
}

func FromSubscription(s entities.Subscription) SubscriptionResponse {
	return SubscriptionResponse{
		ID:         s.ID,
		CustomerID: s.CustomerID,
		PlanID:     s.PlanID,
		Status:     s.Status,
		CouponID:   s.CouponID,
	}
}

type ChargeResponse struct {
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

func FromCharge(c entities.Charge) ChargeResponse {
	return ChargeResponse{
		ID:             c.ID,
		Amount:         c.Amount,
		AmountRefunded: c.AmountRefunded,
		Currency:       c.Currency,
		CustomerID:     c.CustomerID,
		Description:    c.Description,
		Status:         c.Status,
		Paid:           c.Paid,
		Refunded:       c.Refunded,
		ApplicationFee: c.ApplicationFee,
		Metadata:       c.Metadata,
	}
}

// TransactionResponse is the ledger view returned by charge/refund routes.
// TransactionID and ID carry the same value for integration compatibility.
type TransactionResponse struct {
	TransactionID      string    `json:"transaction_id"`
	ID                 string    `json:"id"`
	Kind               string    `json:"kind"`
	ChargeID           string    `json:"charge_id"`
	RefundID           string    `json:"refund_id,omitempty"`
	Amount             int64     `json:"amount"`
	Currency           string    `json:"currency"`
	Status             string    `json:"status"`
	ConnectedAccountID string    `json:"connected_account_id,omitempty"`
	Date               time.Time `json:"date"`
}

func FromTransaction(tx entities.PaymentTransaction) TransactionResponse {
	return TransactionResponse{
		TransactionID:      tx.ID,
		ID:                 tx.ID,
		Kind:               string(tx.Kind),
		ChargeID:           tx.ChargeID,
		RefundID:           tx.RefundID,
		Amount:             tx.Amount,
		Currency:           tx.Currency,
		Status:             tx.Status,
		ConnectedAccountID: tx.ConnectedAccountID,
		Date:               tx.Date,
	}
}
