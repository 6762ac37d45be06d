package repository

import (
	"context"
	"time"

	"storefront/internal/domain/entities"
	"storefront/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultMpesaTableName = "mpesa_transactions"
	mpesaStatusIndex      = "status-index"
)

type mpesaTransactionItem struct {
	CheckoutRequestID string `dynamodbav:"checkout_request_id"`
	MerchantRequestID string `dynamodbav:"merchant_request_id"`
	Amount            int64  `dynamodbav:"amount"`
	ReceiptNumber     string `dynamodbav:"mpesa_receipt_number,omitempty"`
	TransactionDate   string `dynamodbav:"transaction_date,omitempty"`
	PhoneNumber       string `dynamodbav:"phone_number,omitempty"`
	Status            string `dynamodbav:"status"`
	CreatedAt         string `dynamodbav:"created_at"`
	UpdatedAt         string `dynamodbav:"updated_at"`
}

// MpesaTransactionDynamoRepository persists MpesaTransaction rows.
//
// Table requirements:
//   - PK: checkout_request_id (string)
//   - GSI: status-index (PK: status), used by the poll job to sweep
//     PENDING rows.

type MpesaTransactionDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IMpesaTransactionRepository = (*MpesaTransactionDynamoRepository)(nil)

func NewMpesaTransactionDynamoRepository(ddb *dynamodb.Client) *MpesaTransactionDynamoRepository {
	return &MpesaTransactionDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("MPESA_TRANSACTIONS_TABLE", defaultMpesaTableName),
	}
}

// Create writes the initial PENDING row; the identity must not already
// exist.
func (r *MpesaTransactionDynamoRepository) Create(ctx context.Context, tx entities.MpesaTransaction) (entities.MpesaTransaction, error) {
	av, err := attributevalue.MarshalMap(toMpesaTransactionItem(tx))
	if err != nil {
		return entities.MpesaTransaction{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(checkout_request_id)"),
	})
	if err != nil {
		return entities.MpesaTransaction{}, err
	}
	return tx, nil
}

// Save is the reconciliation upsert. Writers are serialized per identity
// by the reconciler, so a plain put carries the full row.
func (r *MpesaTransactionDynamoRepository) Save(ctx context.Context, tx entities.MpesaTransaction) (entities.MpesaTransaction, error) {
	av, err := attributevalue.MarshalMap(toMpesaTransactionItem(tx))
	if err != nil {
		return entities.MpesaTransaction{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.MpesaTransaction{}, err
	}
	return tx, nil
}

func (r *MpesaTransactionDynamoRepository) GetByCheckoutRequestID(ctx context.Context, checkoutRequestID string) (entities.MpesaTransaction, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"checkout_request_id": &types.AttributeValueMemberS{Value: checkoutRequestID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.MpesaTransaction{}, err
	}
	if len(out.Item) == 0 {
		return entities.MpesaTransaction{}, nil
	}

	var it mpesaTransactionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.MpesaTransaction{}, err
	}
	return fromMpesaTransactionItem(it), nil
}

func (r *MpesaTransactionDynamoRepository) ListPending(ctx context.Context) ([]entities.MpesaTransaction, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(mpesaStatusIndex),
		KeyConditionExpression: aws.String("#status = :pending"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pending": &types.AttributeValueMemberS{Value: string(entities.MpesaStatusPending)},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.MpesaTransaction, 0, len(out.Items))
	for _, raw := range out.Items {
		var it mpesaTransactionItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromMpesaTransactionItem(it))
	}
	return items, nil
}

func toMpesaTransactionItem(tx entities.MpesaTransaction) mpesaTransactionItem {
	transactionDate := ""
	if tx.TransactionDate != nil {
		transactionDate = tx.TransactionDate.UTC().Format(time.RFC3339Nano)
	}
	return mpesaTransactionItem{
		CheckoutRequestID: tx.CheckoutRequestID,
		MerchantRequestID: tx.MerchantRequestID,
		Amount:            tx.Amount,
		ReceiptNumber:     tx.ReceiptNumber,
		TransactionDate:   transactionDate,
		PhoneNumber:       tx.PhoneNumber,
		Status:            string(tx.Status),
		CreatedAt:         tx.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:         tx.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromMpesaTransactionItem(it mpesaTransactionItem) entities.MpesaTransaction {
	var transactionDate *time.Time
	if it.TransactionDate != "" {
		if t, err := time.Parse(time.RFC3339Nano, it.TransactionDate); err == nil {
			transactionDate = &t
		}
	}
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.MpesaTransaction{
		CheckoutRequestID: it.CheckoutRequestID,
		MerchantRequestID: it.MerchantRequestID,
		Amount:            it.Amount,
		ReceiptNumber:     it.ReceiptNumber,
		TransactionDate:   transactionDate,
		PhoneNumber:       it.PhoneNumber,
		Status:            entities.MpesaStatus(it.Status),
		CreatedAt:         createdAt,
		UpdatedAt:         updatedAt,
	}
}
