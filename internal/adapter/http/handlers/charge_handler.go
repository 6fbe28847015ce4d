package handlers

import (
	"errors"
	"log"
	"net/http"

	request "stripe_billing/internal/adapter/http/dto/request"
	response "stripe_billing/internal/adapter/http/dto/response"
	"stripe_billing/internal/domain/entities"
	"stripe_billing/internal/usecase"
	"stripe_billing/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidChargePayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid charge payload", http.StatusBadRequest)

// ChargeHandler handles HTTP requests for charges, refunds and the
// transaction ledger.
type ChargeHandler struct {
	transactions usecase.ITransactionUseCase
	client       usecase.IPaymentClient
}

func NewChargeHandler(transactions usecase.ITransactionUseCase, client usecase.IPaymentClient) *ChargeHandler {
	return &ChargeHandler{transactions: transactions, client: client}
}

// CreateCharge charges a tokenized payment instrument.
func (h *ChargeHandler) CreateCharge(c *gin.Context) {
	var payload request.CreateChargeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[charge][handler] invalid create payload err=%v", err)
		c.JSON(errInvalidChargePayload.HTTPStatus, errInvalidChargePayload.ToHTTPError())
		return
	}

	tx, err := h.transactions.CreateCharge(c.Request.Context(), payload.Amount, payload.Currency, payload.PaymentToken, payload.Options())
	if err != nil {
		log.Printf("[charge][handler] create failed err=%v", err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[charge][handler] create success tx_id=%s charge_id=%s", tx.ID, tx.ChargeID)

	c.JSON(http.StatusCreated, response.FromTransaction(tx))
}

// ChargeCustomer charges the default payment instrument stored on an
// existing customer.
func (h *ChargeHandler) ChargeCustomer(c *gin.Context) {
	customerID := c.Param("customer_id")

	var payload request.ChargeCustomerRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[charge][handler] invalid customer charge payload customer_id=%s err=%v", customerID, err)
		c.JSON(errInvalidChargePayload.HTTPStatus, errInvalidChargePayload.ToHTTPError())
		return
	}

	tx, err := h.transactions.ChargeCustomer(c.Request.Context(), payload.Amount, payload.Currency, customerID, payload.Options())
	if err != nil {
		log.Printf("[charge][handler] customer charge failed customer_id=%s err=%v", customerID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[charge][handler] customer charge success customer_id=%s tx_id=%s", customerID, tx.ID)

	c.JSON(http.StatusCreated, response.FromTransaction(tx))
}

// GetCharge reads a charge straight from the payment platform.
func (h *ChargeHandler) GetCharge(c *gin.Context) {
	chargeID := c.Param("charge_id")

	charge, err := h.client.RetrieveCharge(c.Request.Context(), chargeID)
	if err != nil {
		log.Printf("[charge][handler] get failed charge_id=%s err=%v", chargeID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCharge(charge))
}

// RefundCharge refunds a charge, fully or partially.
func (h *ChargeHandler) RefundCharge(c *gin.Context) {
	chargeID := c.Param("charge_id")

	var payload request.RefundChargeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[charge][handler] invalid refund payload charge_id=%s err=%v", chargeID, err)
		c.JSON(errInvalidChargePayload.HTTPStatus, errInvalidChargePayload.ToHTTPError())
		return
	}

	tx, err := h.transactions.RefundCharge(c.Request.Context(), chargeID, payload.Options())
	if err != nil {
		log.Printf("[charge][handler] refund failed charge_id=%s err=%v", chargeID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[charge][handler] refund success charge_id=%s tx_id=%s refund_id=%s", chargeID, tx.ID, tx.RefundID)

	c.JSON(http.StatusCreated, response.FromTransaction(tx))
}

// GetTransaction returns a single ledger entry.
func (h *ChargeHandler) GetTransaction(c *gin.Context) {
	id := c.Param("transaction_id")

	tx, err := h.transactions.GetByID(c.Request.Context(), id)
	if err != nil {
		log.Printf("[charge][handler] get transaction failed tx_id=%s err=%v", id, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTransaction(tx))
}

// ListChargeTransactions returns the ledger entries referencing a charge.
func (h *ChargeHandler) ListChargeTransactions(c *gin.Context) {
	chargeID := c.Param("charge_id")

	txs, err := h.transactions.ListByChargeID(c.Request.Context(), chargeID)
	if err != nil {
		log.Printf("[charge][handler] list transactions failed charge_id=%s err=%v", chargeID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	out := make([]response.TransactionResponse, 0, len(txs))
	for _, tx := range txs {
		out = append(out, response.FromTransaction(tx))
	}
	c.JSON(http.StatusOK, out)
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, entities.ErrInvalidAmount),
		errors.Is(err, entities.ErrInvalidCurrency),
		errors.Is(err, entities.ErrInvalidPaymentToken),
		errors.Is(err, entities.ErrInvalidCustomerID),
		errors.Is(err, entities.ErrInvalidPlanID),
		errors.Is(err, entities.ErrInvalidCouponID),
		errors.Is(err, entities.ErrInvalidChargeID),
		errors.Is(err, usecase.ErrInvalidTransactionID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", err.Error(), http.StatusBadRequest)
	case errors.Is(err, entities.ErrPaymentDeclined):
		return pkg.NewDomainErrorSimple("PAYMENT_DECLINED", "Payment instrument was declined", http.StatusPaymentRequired)
	case errors.Is(err, entities.ErrChargeAlreadyRefunded):
		return pkg.NewDomainErrorSimple("CHARGE_ALREADY_REFUNDED", "Charge has no refundable balance remaining", http.StatusConflict)
	case errors.Is(err, entities.ErrResourceNotFound):
		return pkg.NewDomainErrorSimple("RESOURCE_NOT_FOUND", "Referenced payment resource not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrTransactionNotFound):
		return pkg.NewDomainErrorSimple("TRANSACTION_NOT_FOUND", "Transaction not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrMissingAPISecret):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNCONFIGURED", "Payment provider not configured", http.StatusServiceUnavailable)
	default:
		var stripeErr *entities.StripeError
		if errors.As(err, &stripeErr) {
			return pkg.NewDomainError("PAYMENT_PROVIDER_ERROR", stripeErr.Message, err, http.StatusBadGateway)
		}
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
