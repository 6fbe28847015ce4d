package repository

import (
	"context"
	"time"

	"stripe_billing/internal/domain/entities"
	"stripe_billing/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultTransactionsTableName = "transactions"
	transactionsChargeIDIndex    = "charge_id-index"
)

type transactionItem struct {
	ID                 string `dynamodbav:"id"`
	Kind               string `dynamodbav:"kind"`
	ChargeID           string `dynamodbav:"charge_id"`
	RefundID           string `dynamodbav:"refund_id,omitempty"`
	Amount             int64  `dynamodbav:"amount"`
	Currency           string `dynamodbav:"currency"`
	Status             string `dynamodbav:"status"`
	ConnectedAccountID string `dynamodbav:"connected_account_id,omitempty"`
	Date               string `dynamodbav:"date"`
}

// TransactionDynamoRepository persists PaymentTransaction entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: charge_id-index (PK: charge_id)

type TransactionDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ITransactionRepository = (*TransactionDynamoRepository)(nil)

func NewTransactionDynamoRepository(ddb *dynamodb.Client) *TransactionDynamoRepository {
	return &TransactionDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("TRANSACTIONS_TABLE", defaultTransactionsTableName),
	}
}

func (r *TransactionDynamoRepository) Create(ctx context.Context, tx entities.PaymentTransaction) (entities.PaymentTransaction, error) {
	it := toTransactionItem(tx)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.PaymentTransaction{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.PaymentTransaction{}, err
	}
	return tx, nil
}

func (r *TransactionDynamoRepository) GetByID(ctx context.Context, id string) (entities.PaymentTransaction, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PaymentTransaction{}, err
	}
	if len(out.Item) == 0 {
		return entities.PaymentTransaction{}, nil
	}

	var it transactionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PaymentTransaction{}, err
	}
	return fromTransactionItem(it), nil
}

func (r *TransactionDynamoRepository) ListByChargeID(ctx context.Context, chargeID string) ([]entities.PaymentTransaction, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(transactionsChargeIDIndex),
		KeyConditionExpression: aws.String("charge_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: chargeID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.PaymentTransaction, 0, len(out.Items))
	for _, raw := range out.Items {
		var it transactionItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromTransactionItem(it))
	}
	return items, nil
}

func toTransactionItem(tx entities.PaymentTransaction) transactionItem {
	return transactionItem{
		ID:                 tx.ID,
		Kind:               string(tx.Kind),
		ChargeID:           tx.ChargeID,
		RefundID:           tx.RefundID,
		Amount:             tx.Amount,
		Currency:           tx.Currency,
		Status:             tx.Status,
		ConnectedAccountID: tx.ConnectedAccountID,
		Date:               tx.Date.UTC().Format(time.RFC3339Nano),
	}
}

func fromTransactionItem(it transactionItem) entities.PaymentTransaction {
	dt, _ := time.Parse(time.RFC3339Nano, it.Date)
	return entities.PaymentTransaction{
		ID:                 it.ID,
		Kind:               entities.TransactionKind(it.Kind),
		ChargeID:           it.ChargeID,
		RefundID:           it.RefundID,
		Amount:             it.Amount,
		Currency:           it.Currency,
		Status:             it.Status,
		ConnectedAccountID: it.ConnectedAccountID,
		Date:               dt,
	}
}
