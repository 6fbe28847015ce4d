package handlers

import (
	"log"
	"net/http"

	request "stripe_billing/internal/adapter/http/dto/request"
	response "stripe_billing/internal/adapter/http/dto/response"
	"stripe_billing/internal/usecase"
	"stripe_billing/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidSubscriptionPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid subscription payload", http.StatusBadRequest)

// SubscriptionHandler handles HTTP requests for customers, subscriptions and
// the read-only plan/coupon catalog.
type SubscriptionHandler struct {
	client usecase.IPaymentClient
}

func NewSubscriptionHandler(client usecase.IPaymentClient) *SubscriptionHandler {
	return &SubscriptionHandler{client: client}
}

// CreateCustomer creates a customer from a payment token.
func (h *SubscriptionHandler) CreateCustomer(c *gin.Context) {
	var payload request.CreateCustomerRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSubscriptionPayload.HTTPStatus, errInvalidSubscriptionPayload.ToHTTPError())
		return
	}

	customer, err := h.client.CreateCustomer(c.Request.Context(), payload.PaymentToken, payload.Email)
	if err != nil {
		log.Printf("[subscription][handler] create customer failed err=%v", err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[subscription][handler] create customer success customer_id=%s", customer.ID)

	c.JSON(http.StatusCreated, response.FromCustomer(customer))
}

// GetCustomer reads a customer from the payment platform.
func (h *SubscriptionHandler) GetCustomer(c *gin.Context) {
	customerID := c.Param("customer_id")

	customer, err := h.client.RetrieveCustomer(c.Request.Context(), customerID)
	if err != nil {
		log.Printf("[subscription][handler] get customer failed customer_id=%s err=%v", customerID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCustomer(customer))
}

// Subscribe creates a new customer from a payment token and subscribes it to
// a plan. When subscription creation fails the customer already exists
// remotely; the error is surfaced as-is with no rollback.
func (h *SubscriptionHandler) Subscribe(c *gin.Context) {
	var payload request.SubscribeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSubscriptionPayload.HTTPStatus, errInvalidSubscriptionPayload.ToHTTPError())
		return
	}

	customer, err := h.client.SubscribeCustomerToPlan(c.Request.Context(), payload.PlanID, payload.PaymentToken, payload.Email, payload.CouponID)
	if err != nil {
		log.Printf("[subscription][handler] subscribe failed plan_id=%s err=%v", payload.PlanID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[subscription][handler] subscribe success plan_id=%s customer_id=%s", payload.PlanID, customer.ID)

	c.JSON(http.StatusCreated, response.FromCustomer(customer))
}

// SubscribeExisting subscribes an existing customer to a plan.
func (h *SubscriptionHandler) SubscribeExisting(c *gin.Context) {
	customerID := c.Param("customer_id")

	var payload request.SubscribeExistingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSubscriptionPayload.HTTPStatus, errInvalidSubscriptionPayload.ToHTTPError())
		return
	}

	sub, err := h.client.SubscribeExistingCustomerToPlan(c.Request.Context(), customerID, payload.PlanID, payload.ExtraParams)
	if err != nil {
		log.Printf("[subscription][handler] subscribe existing failed customer_id=%s plan_id=%s err=%v", customerID, payload.PlanID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[subscription][handler] subscribe existing success customer_id=%s subscription_id=%s", customerID, sub.ID)

	c.JSON(http.StatusCreated, response.FromSubscription(sub))
}

// GetPlan reads a plan from the payment platform.
func (h *SubscriptionHandler) GetPlan(c *gin.Context) {
	planID := c.Param("plan_id")

	plan, err := h.client.RetrievePlan(c.Request.Context(), planID)
	if err != nil {
		log.Printf("[subscription][handler] get plan failed plan_id=%s err=%v", planID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPlan(plan))
}

// GetCoupon reads a coupon from the payment platform.
func (h *SubscriptionHandler) GetCoupon(c *gin.Context) {
	couponID := c.Param("coupon_id")

	coupon, err := h.client.RetrieveCoupon(c.Request.Context(), couponID)
	if err != nil {
		log.Printf("[subscription][handler] get coupon failed coupon_id=%s err=%v", couponID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCoupon(coupon))
}
