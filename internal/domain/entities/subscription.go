package entities

// Subscription links a Customer to a Plan, optionally discounted by a Coupon.
type Subscription struct {
	ID         string `json:"id"`
	CustomerID string `json:"customer_id"`
	PlanID     string `json:"plan_id"`
	Status     string `json:"status"`
	CouponID   string `json:"coupon_id,omitempty"`
}
