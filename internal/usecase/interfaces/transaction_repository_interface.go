package interfaces

import (
	"context"

	"stripe_billing/internal/domain/entities"
)

// ITransactionRepository abstracts DynamoDB persistence for the
// charge/refund ledger.
type ITransactionRepository interface {
	Create(ctx context.Context, tx entities.PaymentTransaction) (entities.PaymentTransaction, error)
	GetByID(ctx context.Context, id string) (entities.PaymentTransaction, error)
	ListByChargeID(ctx context.Context, chargeID string) ([]entities.PaymentTransaction, error)
}
