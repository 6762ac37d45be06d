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
	defaultOrdersTableName       = "orders"
	defaultTransactionsTableName = "transactions"
	defaultPayloadsTableName     = "payloads"
	defaultEntitiesTableName     = "entities"
)

type transactionItemItem struct {
	ID            string         `dynamodbav:"id"`
	TransactionID string         `dynamodbav:"transaction_id"`
	Amount        int64          `dynamodbav:"amount"`
	Currency      string         `dynamodbav:"currency"`
	Details       string         `dynamodbav:"details"`
	Code          string         `dynamodbav:"code"`
	Meta          map[string]any `dynamodbav:"meta,omitempty"`
}

type transactionItem struct {
	ID                   string                `dynamodbav:"id"`
	CompanyID            string                `dynamodbav:"company_id,omitempty"`
	CustomerID           string                `dynamodbav:"customer_id"`
	GatewayTransactionID string                `dynamodbav:"gateway_transaction_id"`
	Gateway              string                `dynamodbav:"gateway"`
	Amount               int64                 `dynamodbav:"amount"`
	Currency             string                `dynamodbav:"currency"`
	Description          string                `dynamodbav:"description"`
	Type                 string                `dynamodbav:"type"`
	Status               string                `dynamodbav:"status"`
	Meta                 map[string]any        `dynamodbav:"meta,omitempty"`
	Items                []transactionItemItem `dynamodbav:"items"`
	CreatedAt            string                `dynamodbav:"created_at"`
}

type payloadItem struct {
	ID               string   `dynamodbav:"id"`
	CompanyID        string   `dynamodbav:"company_id,omitempty"`
	PickupPlaceID    string   `dynamodbav:"pickup_place_id,omitempty"`
	DropoffPlaceID   string   `dynamodbav:"dropoff_place_id,omitempty"`
	ReturnPlaceID    string   `dynamodbav:"return_place_id,omitempty"`
	WaypointPlaceIDs []string `dynamodbav:"waypoint_place_ids,omitempty"`
	PaymentMethod    string   `dynamodbav:"payment_method"`
	Type             string   `dynamodbav:"type"`
	CODAmount        int64    `dynamodbav:"cod_amount,omitempty"`
	CODCurrency      string   `dynamodbav:"cod_currency,omitempty"`
	CODMethod        string   `dynamodbav:"cod_method,omitempty"`
}

type entityItem struct {
	ID         string         `dynamodbav:"id"`
	CompanyID  string         `dynamodbav:"company_id,omitempty"`
	PayloadID  string         `dynamodbav:"payload_id"`
	CustomerID string         `dynamodbav:"customer_id"`
	ProductID  string         `dynamodbav:"product_id"`
	Name       string         `dynamodbav:"name"`
	Meta       map[string]any `dynamodbav:"meta,omitempty"`
}

type orderItem struct {
	ID            string         `dynamodbav:"id"`
	PublicID      string         `dynamodbav:"public_id"`
	CompanyID     string         `dynamodbav:"company_id,omitempty"`
	PayloadID     string         `dynamodbav:"payload_id"`
	CustomerID    string         `dynamodbav:"customer_id"`
	TransactionID string         `dynamodbav:"transaction_id"`
	FacilitatorID string         `dynamodbav:"facilitator_id,omitempty"`
	Adhoc         bool           `dynamodbav:"adhoc"`
	Type          string         `dynamodbav:"type"`
	Status        string         `dynamodbav:"status"`
	Meta          map[string]any `dynamodbav:"meta,omitempty"`
	CreatedAt     string         `dynamodbav:"created_at"`
}

// OrderDynamoRepository persists the capture output graph: ledger
// transactions with their line items inline, fulfillment payloads,
// entities and orders, one table each, all PK id.
type OrderDynamoRepository struct {
	ddb               *dynamodb.Client
	ordersTable       string
	transactionsTable string
	payloadsTable     string
	entitiesTable     string
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb *dynamodb.Client) *OrderDynamoRepository {
	return &OrderDynamoRepository{
		ddb:               ddb,
		ordersTable:       getenvDefault("ORDERS_TABLE", defaultOrdersTableName),
		transactionsTable: getenvDefault("TRANSACTIONS_TABLE", defaultTransactionsTableName),
		payloadsTable:     getenvDefault("PAYLOADS_TABLE", defaultPayloadsTableName),
		entitiesTable:     getenvDefault("ENTITIES_TABLE", defaultEntitiesTableName),
	}
}

func (r *OrderDynamoRepository) CreateTransaction(ctx context.Context, tx entities.Transaction) (entities.Transaction, error) {
	item := transactionItem{
		ID:                   tx.ID,
		CompanyID:            tx.CompanyID,
		CustomerID:           tx.CustomerID,
		GatewayTransactionID: tx.GatewayTransactionID,
		Gateway:              string(tx.Gateway),
		Amount:               tx.Amount,
		Currency:             tx.Currency,
		Description:          tx.Description,
		Type:                 tx.Type,
		Status:               tx.Status,
		Meta:                 tx.Meta,
		Items:                make([]transactionItemItem, 0, len(tx.Items)),
		CreatedAt:            tx.CreatedAt.Format(time.RFC3339Nano),
	}
	for _, li := range tx.Items {
		item.Items = append(item.Items, transactionItemItem{
			ID:            li.ID,
			TransactionID: li.TransactionID,
			Amount:        li.Amount,
			Currency:      li.Currency,
			Details:       li.Details,
			Code:          li.Code,
			Meta:          li.Meta,
		})
	}
	if err := r.put(ctx, r.transactionsTable, item); err != nil {
		return entities.Transaction{}, err
	}
	return tx, nil
}

func (r *OrderDynamoRepository) CreatePayload(ctx context.Context, p entities.Payload) (entities.Payload, error) {
	item := payloadItem{
		ID:               p.ID,
		CompanyID:        p.CompanyID,
		PickupPlaceID:    p.PickupPlaceID,
		DropoffPlaceID:   p.DropoffPlaceID,
		ReturnPlaceID:    p.ReturnPlaceID,
		WaypointPlaceIDs: p.WaypointPlaceIDs,
		PaymentMethod:    p.PaymentMethod,
		Type:             p.Type,
		CODAmount:        p.CODAmount,
		CODCurrency:      p.CODCurrency,
		CODMethod:        p.CODMethod,
	}
	if err := r.put(ctx, r.payloadsTable, item); err != nil {
		return entities.Payload{}, err
	}
	return p, nil
}

func (r *OrderDynamoRepository) CreateEntity(ctx context.Context, e entities.Entity) (entities.Entity, error) {
	item := entityItem{
		ID:         e.ID,
		CompanyID:  e.CompanyID,
		PayloadID:  e.PayloadID,
		CustomerID: e.CustomerID,
		ProductID:  e.ProductID,
		Name:       e.Name,
		Meta:       e.Meta,
	}
	if err := r.put(ctx, r.entitiesTable, item); err != nil {
		return entities.Entity{}, err
	}
	return e, nil
}

func (r *OrderDynamoRepository) CreateOrder(ctx context.Context, o entities.Order) (entities.Order, error) {
	if err := r.put(ctx, r.ordersTable, toOrderItem(o)); err != nil {
		return entities.Order{}, err
	}
	return o, nil
}

// UpdateOrderStatus applies the given statuses in order, so an
// auto-dispatch advance passes through preparing before dispatched.
func (r *OrderDynamoRepository) UpdateOrderStatus(ctx context.Context, orderID string, statuses ...entities.OrderStatus) error {
	for _, status := range statuses {
		_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
			TableName: aws.String(r.ordersTable),
			Key: map[string]types.AttributeValue{
				"id": &types.AttributeValueMemberS{Value: orderID},
			},
			UpdateExpression:    aws.String("SET #status = :status"),
			ConditionExpression: aws.String("attribute_exists(id)"),
			ExpressionAttributeNames: map[string]string{
				"#status": "status",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":status": &types.AttributeValueMemberS{Value: string(status)},
			},
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *OrderDynamoRepository) UpdateOrderMeta(ctx context.Context, orderID string, key string, value any) error {
	av, err := attributevalue.Marshal(value)
	if err != nil {
		return err
	}

	_, err = r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.ordersTable),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: orderID},
		},
		UpdateExpression:    aws.String("SET #meta.#key = :value"),
		ConditionExpression: aws.String("attribute_exists(id)"),
		ExpressionAttributeNames: map[string]string{
			"#meta": "meta",
			"#key":  key,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":value": av,
		},
	})
	return err
}

func (r *OrderDynamoRepository) GetOrder(ctx context.Context, orderID string) (entities.Order, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.ordersTable),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: orderID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Item) == 0 {
		return entities.Order{}, nil
	}

	var item orderItem
	if err := attributevalue.UnmarshalMap(out.Item, &item); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(item), nil
}

func (r *OrderDynamoRepository) put(ctx context.Context, table string, v any) error {
	av, err := attributevalue.MarshalMap(v)
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(table),
		Item:      av,
	})
	return err
}

func toOrderItem(o entities.Order) orderItem {
	return orderItem{
		ID:            o.ID,
		PublicID:      o.PublicID,
		CompanyID:     o.CompanyID,
		PayloadID:     o.PayloadID,
		CustomerID:    o.CustomerID,
		TransactionID: o.TransactionID,
		FacilitatorID: o.FacilitatorID,
		Adhoc:         o.Adhoc,
		Type:          o.Type,
		Status:        string(o.Status),
		Meta:          o.Meta,
		CreatedAt:     o.CreatedAt.Format(time.RFC3339Nano),
	}
}

func fromOrderItem(item orderItem) entities.Order {
	order := entities.Order{
		ID:            item.ID,
		PublicID:      item.PublicID,
		CompanyID:     item.CompanyID,
		PayloadID:     item.PayloadID,
		CustomerID:    item.CustomerID,
		TransactionID: item.TransactionID,
		FacilitatorID: item.FacilitatorID,
		Adhoc:         item.Adhoc,
		Type:          item.Type,
		Status:        entities.OrderStatus(item.Status),
		Meta:          item.Meta,
	}
	if item.CreatedAt != "" {
		if ts, err := time.Parse(time.RFC3339Nano, item.CreatedAt); err == nil {
			order.CreatedAt = ts
		}
	}
	return order
}
