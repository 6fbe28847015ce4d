package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"stripe_billing/internal/domain/entities"
	"stripe_billing/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrTransactionNotFound  = errors.New("transaction not found")
	ErrInvalidTransactionID = errors.New("invalid transaction id")
)

// ITransactionUseCase executes charges and refunds through the payment
// client and records each one in the transaction ledger.
type ITransactionUseCase interface {
	CreateCharge(ctx context.Context, amount int64, currency, paymentToken string, opts ChargeOptions) (entities.PaymentTransaction, error)
	ChargeCustomer(ctx context.Context, amount int64, currency, customerID string, opts ChargeOptions) (entities.PaymentTransaction, error)
	RefundCharge(ctx context.Context, chargeID string, opts RefundOptions) (entities.PaymentTransaction, error)
	GetByID(ctx context.Context, id string) (entities.PaymentTransaction, error)
	ListByChargeID(ctx context.Context, chargeID string) ([]entities.PaymentTransaction, error)
}

type TransactionUseCase struct {
	client IPaymentClient
	repo   interfaces.ITransactionRepository
}

var _ ITransactionUseCase = (*TransactionUseCase)(nil)

func NewTransactionUseCase(client IPaymentClient, repo interfaces.ITransactionRepository) *TransactionUseCase {
	return &TransactionUseCase{client: client, repo: repo}
}

func (u *TransactionUseCase) CreateCharge(ctx context.Context, amount int64, currency, paymentToken string, opts ChargeOptions) (entities.PaymentTransaction, error) {
	if u.client == nil {
		return entities.PaymentTransaction{}, errors.New("payment client not configured")
	}

	log.Printf("[transaction][usecase] charge start amount=%d currency=%s connected_account=%q", amount, currency, opts.ConnectedAccountID)
	charge, err := u.client.CreateCharge(ctx, amount, currency, paymentToken, opts)
	if err != nil {
		log.Printf("[transaction][usecase] charge failed err=%v", err)
		return entities.PaymentTransaction{}, err
	}
	return u.recordCharge(ctx, charge, opts.ConnectedAccountID)
}

func (u *TransactionUseCase) ChargeCustomer(ctx context.Context, amount int64, currency, customerID string, opts ChargeOptions) (entities.PaymentTransaction, error) {
	if u.client == nil {
		return entities.PaymentTransaction{}, errors.New("payment client not configured")
	}

	log.Printf("[transaction][usecase] customer charge start amount=%d currency=%s customer_id=%s", amount, currency, customerID)
	charge, err := u.client.ChargeCustomer(ctx, amount, currency, customerID, opts)
	if err != nil {
		log.Printf("[transaction][usecase] customer charge failed customer_id=%s err=%v", customerID, err)
		return entities.PaymentTransaction{}, err
	}
	return u.recordCharge(ctx, charge, opts.ConnectedAccountID)
}

func (u *TransactionUseCase) RefundCharge(ctx context.Context, chargeID string, opts RefundOptions) (entities.PaymentTransaction, error) {
	if u.client == nil {
		return entities.PaymentTransaction{}, errors.New("payment client not configured")
	}

	log.Printf("[transaction][usecase] refund start charge_id=%s amount=%d", chargeID, opts.Amount)
	refund, err := u.client.RefundCharge(ctx, chargeID, opts)
	if err != nil {
		log.Printf("[transaction][usecase] refund failed charge_id=%s err=%v", chargeID, err)
		return entities.PaymentTransaction{}, err
	}

	tx := entities.PaymentTransaction{
		ID:                 uuid.NewString(),
		Kind:               entities.TransactionKindRefund,
		ChargeID:           refund.ChargeID,
		RefundID:           refund.ID,
		Amount:             refund.Amount,
		Currency:           refund.Currency,
		Status:             refund.Status,
		ConnectedAccountID: strings.TrimSpace(opts.ConnectedAccountID),
		Date:               time.Now().UTC(),
	}
	return u.persist(ctx, tx)
}

func (u *TransactionUseCase) GetByID(ctx context.Context, id string) (entities.PaymentTransaction, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.PaymentTransaction{}, ErrInvalidTransactionID
	}

	tx, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.PaymentTransaction{}, err
	}
	if tx.ID == "" {
		return entities.PaymentTransaction{}, ErrTransactionNotFound
	}
	return tx, nil
}

func (u *TransactionUseCase) ListByChargeID(ctx context.Context, chargeID string) ([]entities.PaymentTransaction, error) {
	chargeID = strings.TrimSpace(chargeID)
	if chargeID == "" {
		return nil, entities.ErrInvalidChargeID
	}
	return u.repo.ListByChargeID(ctx, chargeID)
}

func (u *TransactionUseCase) recordCharge(ctx context.Context, charge entities.Charge, connectedAccountID string) (entities.PaymentTransaction, error) {
	tx := entities.PaymentTransaction{
		ID:                 uuid.NewString(),
		Kind:               entities.TransactionKindCharge,
		ChargeID:           charge.ID,
		Amount:             charge.Amount,
		Currency:           charge.Currency,
		Status:             charge.Status,
		ConnectedAccountID: strings.TrimSpace(connectedAccountID),
		Date:               time.Now().UTC(),
	}
	return u.persist(ctx, tx)
}

func (u *TransactionUseCase) persist(ctx context.Context, tx entities.PaymentTransaction) (entities.PaymentTransaction, error) {
	if u.repo == nil {
		return entities.PaymentTransaction{}, errors.New("transaction repository not configured")
	}

	created, err := u.repo.Create(ctx, tx)
	if err != nil {
		log.Printf("[transaction][usecase] ledger create failed tx_id=%s charge_id=%s err=%v", tx.ID, tx.ChargeID, err)
		return entities.PaymentTransaction{}, err
	}
	log.Printf("[transaction][usecase] ledger create success tx_id=%s kind=%s charge_id=%s status=%s", created.ID, created.Kind, created.ChargeID, created.Status)
	return created, nil
}
