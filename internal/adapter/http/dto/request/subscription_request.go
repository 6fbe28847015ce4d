package request

// CreateCustomerRequest creates a customer from a tokenized payment
// instrument with an optional contact email.
type CreateCustomerRequest struct {
	PaymentToken string `json:"payment_token" binding:"required"`
	Email        string `json:"email"`
}

// SubscribeRequest is the new-customer subscription flow: a customer is
// created from the token, then subscribed to the plan. CouponID is included
// in the subscription request only when non-empty.
type SubscribeRequest struct {
	PlanID       string `json:"plan_id" binding:"required"`
	PaymentToken string `json:"payment_token" binding:"required"`
	Email        string `json:"email" binding:"required"`
	CouponID     string `json:"coupon_id"`
}

// SubscribeExistingRequest subscribes an existing customer (ID from the URL
// path) to a plan. ExtraParams is forwarded to the subscription request;
// the mandatory customer/plan fields win over colliding keys.
type SubscribeExistingRequest struct {
	PlanID      string         `json:"plan_id" binding:"required"`
	ExtraParams map[string]any `json:"extra_params"`
}
