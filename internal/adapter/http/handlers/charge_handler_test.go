package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"stripe_billing/internal/adapter/http/handlers/mocks"
	"stripe_billing/internal/domain/entities"
	"stripe_billing/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestChargeHandler_CreateCharge(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITransactionUseCase(ctrl)
		h := NewChargeHandler(uc, nil)

		r := gin.New()
		r.POST("/v1/charges", h.CreateCharge)

		req := httptest.NewRequest(http.MethodPost, "/v1/charges", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing required fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITransactionUseCase(ctrl)
		h := NewChargeHandler(uc, nil)

		r := gin.New()
		r.POST("/v1/charges", h.CreateCharge)

		req := httptest.NewRequest(http.MethodPost, "/v1/charges", bytes.NewBufferString(`{"amount":1000}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITransactionUseCase(ctrl)
		h := NewChargeHandler(uc, nil)

		uc.EXPECT().CreateCharge(gomock.Any(), int64(2500), "usd", "tok_visa", usecase.ChargeOptions{
			ConnectedAccountID: "acct_1",
			ApplicationFee:     150,
			Description:        "order #42",
		}).Return(entities.PaymentTransaction{
			ID:       "tx-1",
			Kind:     entities.TransactionKindCharge,
			ChargeID: "ch_1",
			Amount:   2500,
			Currency: "usd",
			Status:   "succeeded",
			Date:     time.Now().UTC(),
		}, nil)

		r := gin.New()
		r.POST("/v1/charges", h.CreateCharge)

		body := `{"amount":2500,"currency":"usd","payment_token":"tok_visa","connected_account_id":"acct_1","application_fee":150,"description":"order #42"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/charges", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d body=%s", w.Code, w.Body.String())
		}

		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response: %v", err)
		}
		if resp["transaction_id"] != "tx-1" || resp["charge_id"] != "ch_1" {
			t.Fatalf("unexpected response: %v", resp)
		}
	})

	t.Run("card declined", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITransactionUseCase(ctrl)
		h := NewChargeHandler(uc, nil)

		remote := entities.NewStripeError("card_error", "card_declined", "insufficient_funds", "Your card was declined.", 402, entities.ErrPaymentDeclined)
		uc.EXPECT().CreateCharge(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.PaymentTransaction{}, remote)

		r := gin.New()
		r.POST("/v1/charges", h.CreateCharge)

		req := httptest.NewRequest(http.MethodPost, "/v1/charges", bytes.NewBufferString(`{"amount":2500,"currency":"usd","payment_token":"tok_visa"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusPaymentRequired {
			t.Fatalf("expected 402, got %d", w.Code)
		}
	})

	t.Run("validation error from use case", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITransactionUseCase(ctrl)
		h := NewChargeHandler(uc, nil)

		uc.EXPECT().CreateCharge(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.PaymentTransaction{}, entities.ErrInvalidCurrency)

		r := gin.New()
		r.POST("/v1/charges", h.CreateCharge)

		req := httptest.NewRequest(http.MethodPost, "/v1/charges", bytes.NewBufferString(`{"amount":2500,"currency":"  ","payment_token":"tok_visa"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unmapped stripe error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITransactionUseCase(ctrl)
		h := NewChargeHandler(uc, nil)

		remote := entities.NewStripeError("rate_limit_error", "rate_limit", "", "Too many requests.", 429, nil)
		uc.EXPECT().CreateCharge(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.PaymentTransaction{}, remote)

		r := gin.New()
		r.POST("/v1/charges", h.CreateCharge)

		req := httptest.NewRequest(http.MethodPost, "/v1/charges", bytes.NewBufferString(`{"amount":2500,"currency":"usd","payment_token":"tok_visa"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})

	t.Run("internal error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITransactionUseCase(ctrl)
		h := NewChargeHandler(uc, nil)

		uc.EXPECT().CreateCharge(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.PaymentTransaction{}, errors.New("db"))

		r := gin.New()
		r.POST("/v1/charges", h.CreateCharge)

		req := httptest.NewRequest(http.MethodPost, "/v1/charges", bytes.NewBufferString(`{"amount":2500,"currency":"usd","payment_token":"tok_visa"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestChargeHandler_ChargeCustomer(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITransactionUseCase(ctrl)
		h := NewChargeHandler(uc, nil)

		uc.EXPECT().ChargeCustomer(gomock.Any(), int64(900), "eur", "cus_9", gomock.Any()).Return(entities.PaymentTransaction{
			ID:       "tx-2",
			Kind:     entities.TransactionKindCharge,
			ChargeID: "ch_2",
		}, nil)

		r := gin.New()
		r.POST("/v1/customers/:customer_id/charges", h.ChargeCustomer)

		req := httptest.NewRequest(http.MethodPost, "/v1/customers/cus_9/charges", bytes.NewBufferString(`{"amount":900,"currency":"eur"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d body=%s", w.Code, w.Body.String())
		}
	})

	t.Run("customer not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITransactionUseCase(ctrl)
		h := NewChargeHandler(uc, nil)

		remote := entities.NewStripeError("invalid_request_error", "resource_missing", "", "No such customer: cus_missing", 404, entities.ErrResourceNotFound)
		uc.EXPECT().ChargeCustomer(gomock.Any(), gomock.Any(), gomock.Any(), "cus_missing", gomock.Any()).Return(entities.PaymentTransaction{}, remote)

		r := gin.New()
		r.POST("/v1/customers/:customer_id/charges", h.ChargeCustomer)

		req := httptest.NewRequest(http.MethodPost, "/v1/customers/cus_missing/charges", bytes.NewBufferString(`{"amount":900,"currency":"eur"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestChargeHandler_RefundCharge(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success forwards options", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITransactionUseCase(ctrl)
		h := NewChargeHandler(uc, nil)

		uc.EXPECT().RefundCharge(gomock.Any(), "ch_1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, opts usecase.RefundOptions) (entities.PaymentTransaction, error) {
				if opts.Amount != 500 || opts.Reason != "duplicate" {
					t.Fatalf("unexpected options: %+v", opts)
				}
				if opts.RefundApplicationFee == nil || *opts.RefundApplicationFee != false {
					t.Fatalf("expected refund_application_fee false, got %+v", opts.RefundApplicationFee)
				}
				return entities.PaymentTransaction{ID: "tx-3", Kind: entities.TransactionKindRefund, ChargeID: "ch_1", RefundID: "re_1"}, nil
			},
		)

		r := gin.New()
		r.POST("/v1/charges/:charge_id/refunds", h.RefundCharge)

		body := `{"amount":500,"reason":"duplicate","refund_application_fee":false}`
		req := httptest.NewRequest(http.MethodPost, "/v1/charges/ch_1/refunds", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d body=%s", w.Code, w.Body.String())
		}

		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response: %v", err)
		}
		if resp["refund_id"] != "re_1" || resp["kind"] != string(entities.TransactionKindRefund) {
			t.Fatalf("unexpected response: %v", resp)
		}
	})

	t.Run("already refunded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITransactionUseCase(ctrl)
		h := NewChargeHandler(uc, nil)

		remote := entities.NewStripeError("invalid_request_error", "charge_already_refunded", "", "Charge ch_1 has already been refunded.", 400, entities.ErrChargeAlreadyRefunded)
		uc.EXPECT().RefundCharge(gomock.Any(), "ch_1", gomock.Any()).Return(entities.PaymentTransaction{}, remote)

		r := gin.New()
		r.POST("/v1/charges/:charge_id/refunds", h.RefundCharge)

		req := httptest.NewRequest(http.MethodPost, "/v1/charges/ch_1/refunds", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestChargeHandler_GetCharge(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		client := mocks.NewMockIPaymentClient(ctrl)
		h := NewChargeHandler(nil, client)

		client.EXPECT().RetrieveCharge(gomock.Any(), "ch_1").Return(entities.Charge{
			ID: "ch_1", Amount: 2500, Currency: "usd", Status: "succeeded", Paid: true,
		}, nil)

		r := gin.New()
		r.GET("/v1/charges/:charge_id", h.GetCharge)

		req := httptest.NewRequest(http.MethodGet, "/v1/charges/ch_1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response: %v", err)
		}
		if resp["id"] != "ch_1" || resp["paid"] != true {
			t.Fatalf("unexpected response: %v", resp)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		client := mocks.NewMockIPaymentClient(ctrl)
		h := NewChargeHandler(nil, client)

		remote := entities.NewStripeError("invalid_request_error", "resource_missing", "", "No such charge: ch_x", 404, entities.ErrResourceNotFound)
		client.EXPECT().RetrieveCharge(gomock.Any(), "ch_x").Return(entities.Charge{}, remote)

		r := gin.New()
		r.GET("/v1/charges/:charge_id", h.GetCharge)

		req := httptest.NewRequest(http.MethodGet, "/v1/charges/ch_x", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestChargeHandler_Transactions(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("get transaction", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITransactionUseCase(ctrl)
		h := NewChargeHandler(uc, nil)

		uc.EXPECT().GetByID(gomock.Any(), "tx-1").Return(entities.PaymentTransaction{ID: "tx-1", ChargeID: "ch_1"}, nil)

		r := gin.New()
		r.GET("/v1/transactions/:transaction_id", h.GetTransaction)

		req := httptest.NewRequest(http.MethodGet, "/v1/transactions/tx-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("transaction not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITransactionUseCase(ctrl)
		h := NewChargeHandler(uc, nil)

		uc.EXPECT().GetByID(gomock.Any(), "tx-x").Return(entities.PaymentTransaction{}, usecase.ErrTransactionNotFound)

		r := gin.New()
		r.GET("/v1/transactions/:transaction_id", h.GetTransaction)

		req := httptest.NewRequest(http.MethodGet, "/v1/transactions/tx-x", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("list by charge", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITransactionUseCase(ctrl)
		h := NewChargeHandler(uc, nil)

		uc.EXPECT().ListByChargeID(gomock.Any(), "ch_1").Return([]entities.PaymentTransaction{
			{ID: "tx-1", Kind: entities.TransactionKindCharge, ChargeID: "ch_1"},
			{ID: "tx-2", Kind: entities.TransactionKindRefund, ChargeID: "ch_1", RefundID: "re_1"},
		}, nil)

		r := gin.New()
		r.GET("/v1/charges/:charge_id/transactions", h.ListChargeTransactions)

		req := httptest.NewRequest(http.MethodGet, "/v1/charges/ch_1/transactions", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var resp []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response: %v", err)
		}
		if len(resp) != 2 || resp[1]["refund_id"] != "re_1" {
			t.Fatalf("unexpected response: %v", resp)
		}
	})

	t.Run("empty list stays a json array", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITransactionUseCase(ctrl)
		h := NewChargeHandler(uc, nil)

		uc.EXPECT().ListByChargeID(gomock.Any(), "ch_2").Return(nil, nil)

		r := gin.New()
		r.GET("/v1/charges/:charge_id/transactions", h.ListChargeTransactions)

		req := httptest.NewRequest(http.MethodGet, "/v1/charges/ch_2/transactions", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK || w.Body.String() != "[]" {
			t.Fatalf("expected empty array, got %d %s", w.Code, w.Body.String())
		}
	})
}
