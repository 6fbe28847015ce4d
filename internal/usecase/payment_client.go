package usecase

import (
	"context"
	"strings"

	"stripe_billing/internal/domain/entities"
	"stripe_billing/internal/usecase/interfaces"
)

// ChargeOptions carries the optional tail of CreateCharge / ChargeCustomer.
//
// ApplicationFee is included in the request only when positive.
// ConnectedAccountID is never part of the payload body; it travels as a
// routing option (Stripe-Account header) on the gateway call.
type ChargeOptions struct {
	ConnectedAccountID string
	ApplicationFee     int64
	Description        string
	Metadata           map[string]string
}

// RefundOptions carries the optional tail of RefundCharge.
//
// Amount zero means a full refund of the remaining charge balance (the field
// is omitted from the request). Reason defaults to requested_by_customer and
// is passed through to Stripe without local validation.
// RefundApplicationFee defaults to true when nil.
type RefundOptions struct {
	Amount               int64
	Metadata             map[string]string
	Reason               string
	RefundApplicationFee *bool
	ReverseTransfer      bool
	ConnectedAccountID   string
}

// IPaymentClient exposes the business operations of the Stripe facade.
//
// Every operation is a single blocking round trip against Stripe, except the
// two subscription composites which are a fixed two-step sequence; step 2 is
// attempted exactly once after step 1 succeeds, with no rollback of step 1 on
// failure. The client holds no mutable state, performs no retries and no
// logging; errors surface to the caller unmodified.
type IPaymentClient interface {
	RetrieveCoupon(ctx context.Context, couponID string) (entities.Coupon, error)
	RetrievePlan(ctx context.Context, planID string) (entities.Plan, error)
	RetrieveCustomer(ctx context.Context, customerID string) (entities.Customer, error)
	RetrieveCharge(ctx context.Context, chargeID string) (entities.Charge, error)
	SubscribeCustomerToPlan(ctx context.Context, planID, paymentToken, customerEmail, couponID string) (entities.Customer, error)
	SubscribeExistingCustomerToPlan(ctx context.Context, customerID, planID string, extraParams map[string]any) (entities.Subscription, error)
	CreateCharge(ctx context.Context, amount int64, currency, paymentToken string, opts ChargeOptions) (entities.Charge, error)
	CreateCustomer(ctx context.Context, paymentToken, email string) (entities.Customer, error)
	ChargeCustomer(ctx context.Context, amount int64, currency, customerID string, opts ChargeOptions) (entities.Charge, error)
	RefundCharge(ctx context.Context, chargeID string, opts RefundOptions) (entities.Refund, error)
}

type PaymentClient struct {
	gateway interfaces.IStripeGateway
}

var _ IPaymentClient = (*PaymentClient)(nil)

// NewPaymentClient builds the facade on top of a gateway. The gateway owns
// the authenticated session; see payments.NewStripeGateway.
func NewPaymentClient(gateway interfaces.IStripeGateway) *PaymentClient {
	return &PaymentClient{gateway: gateway}
}

func (c *PaymentClient) RetrieveCoupon(ctx context.Context, couponID string) (entities.Coupon, error) {
	couponID = strings.TrimSpace(couponID)
	if couponID == "" {
		return entities.Coupon{}, entities.ErrInvalidCouponID
	}
	return c.gateway.RetrieveCoupon(ctx, couponID)
}

func (c *PaymentClient) RetrievePlan(ctx context.Context, planID string) (entities.Plan, error) {
	planID = strings.TrimSpace(planID)
	if planID == "" {
		return entities.Plan{}, entities.ErrInvalidPlanID
	}
	return c.gateway.RetrievePlan(ctx, planID)
}

func (c *PaymentClient) RetrieveCustomer(ctx context.Context, customerID string) (entities.Customer, error) {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return entities.Customer{}, entities.ErrInvalidCustomerID
	}
	return c.gateway.RetrieveCustomer(ctx, customerID)
}

func (c *PaymentClient) RetrieveCharge(ctx context.Context, chargeID string) (entities.Charge, error) {
	chargeID = strings.TrimSpace(chargeID)
	if chargeID == "" {
		return entities.Charge{}, entities.ErrInvalidChargeID
	}
	return c.gateway.RetrieveCharge(ctx, chargeID)
}

// SubscribeCustomerToPlan creates a new customer from the payment token, then
// subscribes it to the plan, including the coupon only when one is given.
//
// The two steps are not atomic: when subscription creation fails the customer
// already exists remotely and is not rolled back. The step-2 error is
// returned as-is and the created customer is not exposed to the caller.
func (c *PaymentClient) SubscribeCustomerToPlan(ctx context.Context, planID, paymentToken, customerEmail, couponID string) (entities.Customer, error) {
	planID = strings.TrimSpace(planID)
	if planID == "" {
		return entities.Customer{}, entities.ErrInvalidPlanID
	}
	paymentToken = strings.TrimSpace(paymentToken)
	if paymentToken == "" {
		return entities.Customer{}, entities.ErrInvalidPaymentToken
	}

	customer, err := c.gateway.CreateCustomer(ctx, interfaces.Params{
		"source": paymentToken,
		"email":  customerEmail,
	})
	if err != nil {
		return entities.Customer{}, err
	}

	payload := interfaces.Params{
		"customer": customer.ID,
		"plan":     planID,
	}
	if couponID = strings.TrimSpace(couponID); couponID != "" {
		payload["coupon"] = couponID
	}

	if _, err := c.gateway.CreateSubscription(ctx, payload); err != nil {
		return entities.Customer{}, err
	}
	return customer, nil
}

// SubscribeExistingCustomerToPlan subscribes an existing customer to a plan.
// extraParams is merged into the request; the mandatory customer/plan fields
// win over colliding keys.
func (c *PaymentClient) SubscribeExistingCustomerToPlan(ctx context.Context, customerID, planID string, extraParams map[string]any) (entities.Subscription, error) {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return entities.Subscription{}, entities.ErrInvalidCustomerID
	}
	planID = strings.TrimSpace(planID)
	if planID == "" {
		return entities.Subscription{}, entities.ErrInvalidPlanID
	}

	payload := make(interfaces.Params, len(extraParams)+2)
	for k, v := range extraParams {
		payload[k] = v
	}
	payload["customer"] = customerID
	payload["plan"] = planID

	return c.gateway.CreateSubscription(ctx, payload)
}

func (c *PaymentClient) CreateCharge(ctx context.Context, amount int64, currency, paymentToken string, opts ChargeOptions) (entities.Charge, error) {
	paymentToken = strings.TrimSpace(paymentToken)
	if paymentToken == "" {
		return entities.Charge{}, entities.ErrInvalidPaymentToken
	}
	payload, routing, err := buildChargePayload(amount, currency, opts)
	if err != nil {
		return entities.Charge{}, err
	}
	payload["source"] = paymentToken

	return c.gateway.CreateCharge(ctx, payload, routing)
}

// ChargeCustomer charges the default payment instrument on file for an
// existing customer. Identical to CreateCharge except the payload references
// the customer ID instead of a fresh source token.
func (c *PaymentClient) ChargeCustomer(ctx context.Context, amount int64, currency, customerID string, opts ChargeOptions) (entities.Charge, error) {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return entities.Charge{}, entities.ErrInvalidCustomerID
	}
	payload, routing, err := buildChargePayload(amount, currency, opts)
	if err != nil {
		return entities.Charge{}, err
	}
	payload["customer"] = customerID

	return c.gateway.CreateCharge(ctx, payload, routing)
}

func (c *PaymentClient) CreateCustomer(ctx context.Context, paymentToken, email string) (entities.Customer, error) {
	paymentToken = strings.TrimSpace(paymentToken)
	if paymentToken == "" {
		return entities.Customer{}, entities.ErrInvalidPaymentToken
	}

	payload := interfaces.Params{"source": paymentToken}
	if email = strings.TrimSpace(email); email != "" {
		payload["email"] = email
	}
	return c.gateway.CreateCustomer(ctx, payload)
}

func (c *PaymentClient) RefundCharge(ctx context.Context, chargeID string, opts RefundOptions) (entities.Refund, error) {
	chargeID = strings.TrimSpace(chargeID)
	if chargeID == "" {
		return entities.Refund{}, entities.ErrInvalidChargeID
	}

	reason := strings.TrimSpace(opts.Reason)
	if reason == "" {
		reason = entities.RefundReasonRequestedByCustomer
	}
	refundApplicationFee := true
	if opts.RefundApplicationFee != nil {
		refundApplicationFee = *opts.RefundApplicationFee
	}

	payload := interfaces.Params{
		"charge":                 chargeID,
		"reason":                 reason,
		"refund_application_fee": refundApplicationFee,
		"reverse_transfer":       opts.ReverseTransfer,
	}
	if opts.Amount > 0 {
		payload["amount"] = opts.Amount
	}
	if len(opts.Metadata) > 0 {
		payload["metadata"] = opts.Metadata
	}

	return c.gateway.CreateRefund(ctx, payload, routingOptions(opts.ConnectedAccountID))
}

func buildChargePayload(amount int64, currency string, opts ChargeOptions) (interfaces.Params, interfaces.RequestOptions, error) {
	if amount <= 0 {
		return nil, interfaces.RequestOptions{}, entities.ErrInvalidAmount
	}
	currency = strings.TrimSpace(currency)
	if currency == "" {
		return nil, interfaces.RequestOptions{}, entities.ErrInvalidCurrency
	}

	payload := interfaces.Params{
		"amount":   amount,
		"currency": currency,
	}
	if opts.Description != "" {
		payload["description"] = opts.Description
	}
	if len(opts.Metadata) > 0 {
		payload["metadata"] = opts.Metadata
	}
	if opts.ApplicationFee > 0 {
		payload["application_fee"] = opts.ApplicationFee
	}

	return payload, routingOptions(opts.ConnectedAccountID), nil
}

func routingOptions(connectedAccountID string) interfaces.RequestOptions {
	return interfaces.RequestOptions{StripeAccount: strings.TrimSpace(connectedAccountID)}
}
