package entities

// Customer is a read-only view of a Stripe customer.
//
// Customers are created remotely (CreateCustomer / SubscribeCustomerToPlan)
// and never mutated locally. DefaultSource references the payment instrument
// on file that ChargeCustomer falls back to.
type Customer struct {
	ID            string `json:"id"`
	Email         string `json:"email,omitempty"`
	DefaultSource string `json:"default_source,omitempty"`
}
