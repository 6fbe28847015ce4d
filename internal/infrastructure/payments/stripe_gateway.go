package payments

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"stripe_billing/internal/domain/entities"
	"stripe_billing/internal/usecase/interfaces"

	stripe "github.com/stripe/stripe-go/v82"
)

const defaultStripeAPIBase = "https://api.stripe.com"

// StripeGateway implements interfaces.IStripeGateway with form-encoded HTTP
// calls against the Stripe REST API.
//
// The API secret is held per gateway instance and sent as a bearer token on
// every request; there is no process-wide key state, so concurrent gateways
// with different secrets are safe. Connected-account routing travels in the
// Stripe-Account header, never in the request body.
type StripeGateway struct {
	httpClient *http.Client
	apiSecret  string
	baseURL    string
}

var _ interfaces.IStripeGateway = (*StripeGateway)(nil)

type Option func(*StripeGateway)

// WithBaseURL overrides the Stripe API base URL. Used by tests to point the
// gateway at an httptest server.
func WithBaseURL(baseURL string) Option {
	return func(g *StripeGateway) {
		g.baseURL = strings.TrimSuffix(baseURL, "/")
	}
}

// WithHTTPClient overrides the transport, e.g. to impose a timeout.
func WithHTTPClient(client *http.Client) Option {
	return func(g *StripeGateway) {
		g.httpClient = client
	}
}

// NewStripeGateway validates the API secret and builds the gateway. No
// network call is made here; an empty secret fails immediately.
func NewStripeGateway(apiSecret string, opts ...Option) (*StripeGateway, error) {
	apiSecret = strings.TrimSpace(apiSecret)
	if apiSecret == "" {
		log.Printf("[payment][gateway] missing STRIPE_API_SECRET")
		return nil, entities.ErrMissingAPISecret
	}

	g := &StripeGateway{
		httpClient: &http.Client{},
		apiSecret:  apiSecret,
		baseURL:    defaultStripeAPIBase,
	}
	for _, opt := range opts {
		opt(g)
	}
	log.Printf("[payment][gateway] stripe gateway initialized api_base=%s", g.baseURL)
	return g, nil
}

func (g *StripeGateway) RetrieveCoupon(ctx context.Context, couponID string) (entities.Coupon, error) {
	var wire stripeCoupon
	if err := g.retrieve(ctx, "/v1/coupons/"+url.PathEscape(couponID), &wire); err != nil {
		return entities.Coupon{}, err
	}
	return wire.toEntity(), nil
}

func (g *StripeGateway) RetrievePlan(ctx context.Context, planID string) (entities.Plan, error) {
	var wire stripePlan
	if err := g.retrieve(ctx, "/v1/plans/"+url.PathEscape(planID), &wire); err != nil {
		return entities.Plan{}, err
	}
	return wire.toEntity(), nil
}

func (g *StripeGateway) RetrieveCustomer(ctx context.Context, customerID string) (entities.Customer, error) {
	var wire stripeCustomer
	if err := g.retrieve(ctx, "/v1/customers/"+url.PathEscape(customerID), &wire); err != nil {
		return entities.Customer{}, err
	}
	return wire.toEntity(), nil
}

func (g *StripeGateway) RetrieveCharge(ctx context.Context, chargeID string) (entities.Charge, error) {
	var wire stripeCharge
	if err := g.retrieve(ctx, "/v1/charges/"+url.PathEscape(chargeID), &wire); err != nil {
		return entities.Charge{}, err
	}
	return wire.toEntity(), nil
}

func (g *StripeGateway) CreateCustomer(ctx context.Context, payload interfaces.Params) (entities.Customer, error) {
	var wire stripeCustomer
	if err := g.create(ctx, "/v1/customers", payload, interfaces.RequestOptions{}, &wire); err != nil {
		return entities.Customer{}, err
	}
	return wire.toEntity(), nil
}

func (g *StripeGateway) CreateSubscription(ctx context.Context, payload interfaces.Params) (entities.Subscription, error) {
	var wire stripeSubscription
	if err := g.create(ctx, "/v1/subscriptions", payload, interfaces.RequestOptions{}, &wire); err != nil {
		return entities.Subscription{}, err
	}
	return wire.toEntity(), nil
}

func (g *StripeGateway) CreateCharge(ctx context.Context, payload interfaces.Params, opts interfaces.RequestOptions) (entities.Charge, error) {
	var wire stripeCharge
	if err := g.create(ctx, "/v1/charges", payload, opts, &wire); err != nil {
		return entities.Charge{}, err
	}
	return wire.toEntity(), nil
}

func (g *StripeGateway) CreateRefund(ctx context.Context, payload interfaces.Params, opts interfaces.RequestOptions) (entities.Refund, error) {
	var wire stripeRefund
	if err := g.create(ctx, "/v1/refunds", payload, opts, &wire); err != nil {
		return entities.Refund{}, err
	}
	return wire.toEntity(), nil
}

func (g *StripeGateway) retrieve(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+path, nil)
	if err != nil {
		return err
	}
	g.setHeaders(req, interfaces.RequestOptions{})

	return g.do(req, out)
}

func (g *StripeGateway) create(ctx context.Context, path string, payload interfaces.Params, opts interfaces.RequestOptions, out any) error {
	body := encodeParams(payload).Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+path, strings.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	g.setHeaders(req, opts)

	return g.do(req, out)
}

func (g *StripeGateway) do(req *http.Request, out any) error {
	resp, err := g.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("stripe request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return handleErrorResponse(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode stripe response: %w", err)
	}
	return nil
}

func (g *StripeGateway) setHeaders(req *http.Request, opts interfaces.RequestOptions) {
	req.Header.Set("Authorization", "Bearer "+g.apiSecret)
	req.Header.Set("Stripe-Version", stripe.APIVersion)
	if opts.StripeAccount != "" {
		req.Header.Set("Stripe-Account", opts.StripeAccount)
	}
}

// encodeParams flattens a payload mapping into Stripe's form encoding.
// Nested string maps (metadata) use bracket notation: metadata[key]=value.
func encodeParams(payload interfaces.Params) url.Values {
	values := url.Values{}
	for key, v := range payload {
		switch val := v.(type) {
		case string:
			values.Set(key, val)
		case bool:
			values.Set(key, strconv.FormatBool(val))
		case int:
			values.Set(key, strconv.Itoa(val))
		case int64:
			values.Set(key, strconv.FormatInt(val, 10))
		case float64:
			// JSON-decoded numbers arrive as float64.
			values.Set(key, strconv.FormatFloat(val, 'f', -1, 64))
		case map[string]string:
			for k, s := range val {
				values.Set(key+"["+k+"]", s)
			}
		case map[string]any:
			for k, nested := range val {
				values.Set(key+"["+k+"]", fmt.Sprintf("%v", nested))
			}
		default:
			values.Set(key, fmt.Sprintf("%v", val))
		}
	}
	return values
}

// --- Error handling --------------------------------------------------------

type stripeErrorBody struct {
	Type        string `json:"type"`
	Code        string `json:"code"`
	DeclineCode string `json:"decline_code"`
	Message     string `json:"message"`
	Param       string `json:"param"`
}

// handleErrorResponse decodes Stripe's {"error": {...}} body and maps it onto
// the domain taxonomy. The verbatim code/message is always preserved.
func handleErrorResponse(resp *http.Response) error {
	body, readErr := io.ReadAll(resp.Body)
	if readErr != nil {
		return entities.NewStripeError("api_error", "", "",
			fmt.Sprintf("stripe returned status %d and the response body was unreadable", resp.StatusCode),
			resp.StatusCode, nil)
	}

	var wrapper struct {
		Error stripeErrorBody `json:"error"`
	}
	if err := json.Unmarshal(body, &wrapper); err != nil {
		return entities.NewStripeError("api_error", "", "",
			fmt.Sprintf("stripe returned status %d with a non-JSON body", resp.StatusCode),
			resp.StatusCode, nil)
	}

	e := wrapper.Error
	var sentinel error
	switch {
	case stripe.ErrorCode(e.Code) == stripe.ErrorCodeChargeAlreadyRefunded:
		sentinel = entities.ErrChargeAlreadyRefunded
	case stripe.ErrorCode(e.Code) == stripe.ErrorCodeCardDeclined || e.DeclineCode != "":
		sentinel = entities.ErrPaymentDeclined
	case stripe.ErrorCode(e.Code) == stripe.ErrorCodeResourceMissing || resp.StatusCode == http.StatusNotFound:
		sentinel = entities.ErrResourceNotFound
	}

	return entities.NewStripeError(e.Type, e.Code, e.DeclineCode, e.Message, resp.StatusCode, sentinel)
}

// --- Wire types ------------------------------------------------------------

type stripeCoupon struct {
	ID         string  `json:"id"`
	PercentOff float64 `json:"percent_off"`
	AmountOff  int64   `json:"amount_off"`
	Currency   string  `json:"currency"`
	Duration   string  `json:"duration"`
	Valid      bool    `json:"valid"`
}

func (w stripeCoupon) toEntity() entities.Coupon {
	return entities.Coupon{
		ID:         w.ID,
		PercentOff: w.PercentOff,
		AmountOff:  w.AmountOff,
		Currency:   w.Currency,
		Duration:   w.Duration,
		Valid:      w.Valid,
	}
}

type stripePlan struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Interval string `json:"interval"`
	Nickname string `json:"nickname"`
}

func (w stripePlan) toEntity() entities.Plan {
	return entities.Plan{
		ID:       w.ID,
		Amount:   w.Amount,
		Currency: w.Currency,
		Interval: w.Interval,
		Nickname: w.Nickname,
	}
}

type stripeCustomer struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	DefaultSource string `json:"default_source"`
}

func (w stripeCustomer) toEntity() entities.Customer {
	return entities.Customer{
		ID:            w.ID,
		Email:         w.Email,
		DefaultSource: w.DefaultSource,
	}
}

type stripeSubscription struct {
	ID       string `json:"id"`
	Customer string `json:"customer"`
	Status   string `json:"status"`
	Plan     struct {
		ID string `json:"id"`
	} `json:"plan"`
	Discount *struct {
		Coupon struct {
			ID string `json:"id"`
		} `json:"coupon"`
	} `json:"discount"`
}

func (w stripeSubscription) toEntity() entities.Subscription {
	sub := entities.Subscription{
		ID:         w.ID,
		CustomerID: w.Customer,
		PlanID:     w.Plan.ID,
		Status:     w.Status,
	}
	if w.Discount != nil {
		sub.CouponID = w.Discount.Coupon.ID
	}
	return sub
}

type stripeCharge struct {
	ID                   string            `json:"id"`
	Amount               int64             `json:"amount"`
	AmountRefunded       int64             `json:"amount_refunded"`
	Currency             string            `json:"currency"`
	Customer             string            `json:"customer"`
	Description          string            `json:"description"`
	Status               string            `json:"status"`
	Paid                 bool              `json:"paid"`
	Refunded             bool              `json:"refunded"`
	ApplicationFeeAmount int64             `json:"application_fee_amount"`
	Metadata             map[string]string `json:"metadata"`
}

func (w stripeCharge) toEntity() entities.Charge {
	return entities.Charge{
		ID:             w.ID,
		Amount:         w.Amount,
		AmountRefunded: w.AmountRefunded,
		Currency:       w.Currency,
		CustomerID:     w.Customer,
		Description:    w.Description,
		Status:         w.Status,
		Paid:           w.Paid,
		Refunded:       w.Refunded,
		ApplicationFee: w.ApplicationFeeAmount,
		Metadata:       w.Metadata,
	}
}

type stripeRefund struct {
	ID       string            `json:"id"`
	Charge   string            `json:"charge"`
	Amount   int64             `json:"amount"`
	Currency string            `json:"currency"`
	Reason   string            `json:"reason"`
	Status   string            `json:"status"`
	Metadata map[string]string `json:"metadata"`
}

func (w stripeRefund) toEntity() entities.Refund {
	return entities.Refund{
		ID:       w.ID,
		ChargeID: w.Charge,
		Amount:   w.Amount,
		Currency: w.Currency,
		Reason:   w.Reason,
		Status:   w.Status,
		Metadata: w.Metadata,
	}
}
