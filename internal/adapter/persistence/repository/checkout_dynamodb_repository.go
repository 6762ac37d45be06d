package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"storefront/internal/domain/entities"
	"storefront/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultCheckoutsTableName = "checkouts"

type checkoutItem struct {
	Token             string `dynamodbav:"token"`
	PublicID          string `dynamodbav:"public_id"`
	CompanyID         string `dynamodbav:"company_id,omitempty"`
	StoreID           string `dynamodbav:"store_id,omitempty"`
	NetworkID         string `dynamodbav:"network_id,omitempty"`
	CartID            string `dynamodbav:"cart_id"`
	Gateway           string `dynamodbav:"gateway"`
	ServiceQuoteID    string `dynamodbav:"service_quote_id"`
	OwnerID           string `dynamodbav:"owner_id"`
	Amount            int64  `dynamodbav:"amount"`
	Currency          string `dynamodbav:"currency"`
	Options           string `dynamodbav:"options"`
	CartState         string `dynamodbav:"cart_state,omitempty"`
	MerchantRequestID string `dynamodbav:"merchant_request_id,omitempty"`
	CheckoutRequestID string `dynamodbav:"checkout_request_id,omitempty"`
	Captured          bool   `dynamodbav:"captured"`
	OrderID           string `dynamodbav:"order_id,omitempty"`
	CreatedAt         string `dynamodbav:"created_at"`
}

// CheckoutDynamoRepository persists Checkout sessions in DynamoDB.
//
// Table requirements:
//   - PK: token (string)
//   - GSI: checkout_request_id-index (PK: checkout_request_id)
//
// The cart snapshot and options are stored as JSON blobs so the frozen
// snapshot round-trips exactly as it was priced.

type CheckoutDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICheckoutRepository = (*CheckoutDynamoRepository)(nil)

func NewCheckoutDynamoRepository(ddb *dynamodb.Client) *CheckoutDynamoRepository {
	return &CheckoutDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CHECKOUTS_TABLE", defaultCheckoutsTableName),
	}
}

func (r *CheckoutDynamoRepository) Create(ctx context.Context, c entities.Checkout) (entities.Checkout, error) {
	it, err := toCheckoutItem(c)
	if err != nil {
		return entities.Checkout{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Checkout{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#token)"),
		ExpressionAttributeNames: map[string]string{
			"#token": "token",
		},
	})
	if err != nil {
		return entities.Checkout{}, err
	}
	return c, nil
}

func (r *CheckoutDynamoRepository) GetByToken(ctx context.Context, token string) (entities.Checkout, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"token": &types.AttributeValueMemberS{Value: token},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Checkout{}, err
	}
	if len(out.Item) == 0 {
		return entities.Checkout{}, nil
	}

	var it checkoutItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Checkout{}, err
	}
	return fromCheckoutItem(it)
}

// MarkCaptured flips the captured flag and links the resulting order.
// The condition expression makes the flip a database-level unique claim:
// the first writer wins, later writers get ErrCheckoutAlreadyCaptured.
func (r *CheckoutDynamoRepository) MarkCaptured(ctx context.Context, token string, orderID string) error {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"token": &types.AttributeValueMemberS{Value: token},
		},
		UpdateExpression:    aws.String("SET captured = :true, order_id = :order"),
		ConditionExpression: aws.String("attribute_exists(#token) AND captured = :false"),
		ExpressionAttributeNames: map[string]string{
			"#token": "token",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":true":  &types.AttributeValueMemberBOOL{Value: true},
			":false": &types.AttributeValueMemberBOOL{Value: false},
			":order": &types.AttributeValueMemberS{Value: orderID},
		},
	})
	if err != nil {
		var conditionFailed *types.ConditionalCheckFailedException
		if errors.As(err, &conditionFailed) {
			return interfaces.ErrCheckoutAlreadyCaptured
		}
		return err
	}
	return nil
}

func toCheckoutItem(c entities.Checkout) (checkoutItem, error) {
	options, err := json.Marshal(c.Options)
	if err != nil {
		return checkoutItem{}, err
	}
	cartState := ""
	if c.CartState != nil {
		b, err := json.Marshal(c.CartState)
		if err != nil {
			return checkoutItem{}, err
		}
		cartState = string(b)
	}
	return checkoutItem{
		Token:             c.Token,
		PublicID:          c.PublicID,
		CompanyID:         c.CompanyID,
		StoreID:           c.StoreID,
		NetworkID:         c.NetworkID,
		CartID:            c.CartID,
		Gateway:           string(c.Gateway),
		ServiceQuoteID:    c.ServiceQuoteID,
		OwnerID:           c.OwnerID,
		Amount:            c.Amount,
		Currency:          c.Currency,
		Options:           string(options),
		CartState:         cartState,
		MerchantRequestID: c.MerchantRequestID,
		CheckoutRequestID: c.CheckoutRequestID,
		Captured:          c.Captured,
		OrderID:           c.OrderID,
		CreatedAt:         c.CreatedAt.UTC().Format(time.RFC3339Nano),
	}, nil
}

func fromCheckoutItem(it checkoutItem) (entities.Checkout, error) {
	var options entities.CheckoutOptions
	if it.Options != "" {
		if err := json.Unmarshal([]byte(it.Options), &options); err != nil {
			return entities.Checkout{}, err
		}
	}
	var cartState *entities.Cart
	if it.CartState != "" {
		cartState = &entities.Cart{}
		if err := json.Unmarshal([]byte(it.CartState), cartState); err != nil {
			return entities.Checkout{}, err
		}
	}
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.Checkout{
		Token:             it.Token,
		PublicID:          it.PublicID,
		CompanyID:         it.CompanyID,
		StoreID:           it.StoreID,
		NetworkID:         it.NetworkID,
		CartID:            it.CartID,
		Gateway:           entities.GatewayKind(it.Gateway),
		ServiceQuoteID:    it.ServiceQuoteID,
		OwnerID:           it.OwnerID,
		Amount:            it.Amount,
		Currency:          it.Currency,
		Options:           options,
		CartState:         cartState,
		MerchantRequestID: it.MerchantRequestID,
		CheckoutRequestID: it.CheckoutRequestID,
		Captured:          it.Captured,
		OrderID:           it.OrderID,
		CreatedAt:         createdAt,
	}, nil
}
