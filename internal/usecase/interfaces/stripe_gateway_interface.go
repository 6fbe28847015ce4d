package interfaces

import (
	"context"

	"stripe_billing/internal/domain/entities"
)

// Params is the free-form request payload sent to a Stripe create endpoint.
// Values may be strings, integers, booleans or a map[string]string for
// bracket-encoded groups such as metadata.
type Params map[string]any

// RequestOptions carries per-request routing options that are kept
// structurally separate from the payload body. A non-empty StripeAccount
// re-routes the call to a connected account via the Stripe-Account header.
type RequestOptions struct {
	StripeAccount string
}

// IStripeGateway abstracts the Stripe REST API per resource type.
//
// Errors returned by implementations map onto the entities sentinels
// (ErrResourceNotFound, ErrPaymentDeclined, ErrChargeAlreadyRefunded) or
// *entities.StripeError for anything else the platform reports.
type IStripeGateway interface {
	RetrieveCoupon(ctx context.Context, couponID string) (entities.Coupon, error)
	RetrievePlan(ctx context.Context, planID string) (entities.Plan, error)
	RetrieveCustomer(ctx context.Context, customerID string) (entities.Customer, error)
	RetrieveCharge(ctx context.Context, chargeID string) (entities.Charge, error)

	CreateCustomer(ctx context.Context, payload Params) (entities.Customer, error)
	CreateSubscription(ctx context.Context, payload Params) (entities.Subscription, error)
	CreateCharge(ctx context.Context, payload Params, opts RequestOptions) (entities.Charge, error)
	CreateRefund(ctx context.Context, payload Params, opts RequestOptions) (entities.Refund, error)
}
