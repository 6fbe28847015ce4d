package request

import "testing"

func TestCreateChargeRequest_Options(t *testing.T) {
	r := CreateChargeRequest{
		Amount:             2500,
		Currency:           "usd",
		PaymentToken:       "tok_visa",
		ConnectedAccountID: "acct_1",
		ApplicationFee:     150,
		Description:        "order #42",
		Metadata:           map[string]string{"order_id": "42"},
	}

	opts := r.Options()
	if opts.ConnectedAccountID != "acct_1" || opts.ApplicationFee != 150 {
		t.Fatalf("unexpected options: %+v", opts)
	}
	if opts.Description != "order #42" || opts.Metadata["order_id"] != "42" {
		t.Fatalf("unexpected options: %+v", opts)
	}
}

func TestRefundChargeRequest_Options(t *testing.T) {
	t.Run("defaults stay nil", func(t *testing.T) {
		opts := RefundChargeRequest{}.Options()
		if opts.Amount != 0 || opts.Reason != "" {
			t.Fatalf("unexpected options: %+v", opts)
		}
		if opts.RefundApplicationFee != nil {
			t.Fatalf("expected nil refund_application_fee, got %v", *opts.RefundApplicationFee)
		}
	})

	t.Run("explicit false is preserved", func(t *testing.T) {
		noFeeRefund := false
		opts := RefundChargeRequest{
			Amount:               500,
			Reason:               "fraudulent",
			RefundApplicationFee: &noFeeRefund,
			ReverseTransfer:      true,
			ConnectedAccountID:   "acct_1",
		}.Options()

		if opts.Amount != 500 || opts.Reason != "fraudulent" {
			t.Fatalf("unexpected options: %+v", opts)
		}
		if opts.RefundApplicationFee == nil || *opts.RefundApplicationFee {
			t.Fatalf("unexpected refund_application_fee: %+v", opts.RefundApplicationFee)
		}
		if !opts.ReverseTransfer || opts.ConnectedAccountID != "acct_1" {
			t.Fatalf("unexpected options: %+v", opts)
		}
	})
}
