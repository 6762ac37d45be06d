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
	defaultCartsTableName          = "carts"
	defaultStoresTableName         = "stores"
	defaultStoreLocationsTableName = "store_locations"
	defaultPlacesTableName         = "places"
	defaultCustomersTableName      = "customers"
	defaultServiceQuotesTableName  = "service_quotes"

	publicIDIndexName = "public-id-index"
)

// Read-only adapters over data owned by the cart, store, contacts and
// fleet services. These tables are replicated for lookup; this service
// never writes to them. Stores and service quotes are keyed internally
// by id and looked up here by public_id through a GSI.

type cartItemRecord struct {
	ID              string         `dynamodbav:"id"`
	ProductID       string         `dynamodbav:"product_id"`
	Name            string         `dynamodbav:"name"`
	StoreID         string         `dynamodbav:"store_id"`
	StoreLocationID string         `dynamodbav:"store_location_id,omitempty"`
	Subtotal        int64          `dynamodbav:"subtotal"`
	Quantity        int            `dynamodbav:"quantity"`
	Variants        []string       `dynamodbav:"variants,omitempty"`
	Addons          map[string]any `dynamodbav:"addons,omitempty"`
	ScheduledAt     string         `dynamodbav:"scheduled_at,omitempty"`
}

type cartRecord struct {
	ID       string           `dynamodbav:"id"`
	Currency string           `dynamodbav:"currency,omitempty"`
	Items    []cartItemRecord `dynamodbav:"items"`
}

type storeLocationRecord struct {
	ID       string `dynamodbav:"id"`
	PublicID string `dynamodbav:"public_id"`
	StoreID  string `dynamodbav:"store_id"`
	PlaceID  string `dynamodbav:"place_id"`
}

type storeRecord struct {
	ID        string                `dynamodbav:"id"`
	PublicID  string                `dynamodbav:"public_id"`
	CompanyID string                `dynamodbav:"company_id"`
	Name      string                `dynamodbav:"name"`
	IsNetwork bool                  `dynamodbav:"is_network"`
	PODMethod string                `dynamodbav:"pod_method,omitempty"`
	Options   map[string]any        `dynamodbav:"options,omitempty"`
	Locations []storeLocationRecord `dynamodbav:"locations,omitempty"`
}

type placeRecord struct {
	ID        string  `dynamodbav:"id"`
	Name      string  `dynamodbav:"name,omitempty"`
	Latitude  float64 `dynamodbav:"latitude"`
	Longitude float64 `dynamodbav:"longitude"`
}

type customerRecord struct {
	ID    string `dynamodbav:"id"`
	Name  string `dynamodbav:"name,omitempty"`
	Phone string `dynamodbav:"phone"`
	Email string `dynamodbav:"email,omitempty"`
}

type serviceQuoteRecord struct {
	ID                 string   `dynamodbav:"id"`
	PublicID           string   `dynamodbav:"public_id"`
	Amount             int64    `dynamodbav:"amount"`
	Currency           string   `dynamodbav:"currency"`
	Origin             []string `dynamodbav:"origin,omitempty"`
	Destination        string   `dynamodbav:"destination,omitempty"`
	IntegratedVendorID string   `dynamodbav:"integrated_vendor_id,omitempty"`
}

type CartDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICartRepository = (*CartDynamoRepository)(nil)

func NewCartDynamoRepository(ddb *dynamodb.Client) *CartDynamoRepository {
	return &CartDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CARTS_TABLE", defaultCartsTableName),
	}
}

func (r *CartDynamoRepository) GetByID(ctx context.Context, id string) (entities.Cart, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Cart{}, err
	}
	if len(out.Item) == 0 {
		return entities.Cart{}, nil
	}

	var record cartRecord
	if err := attributevalue.UnmarshalMap(out.Item, &record); err != nil {
		return entities.Cart{}, err
	}

	cart := entities.Cart{ID: record.ID, Currency: record.Currency}
	for _, item := range record.Items {
		ci := entities.CartItem{
			ID:              item.ID,
			ProductID:       item.ProductID,
			Name:            item.Name,
			StoreID:         item.StoreID,
			StoreLocationID: item.StoreLocationID,
			Subtotal:        item.Subtotal,
			Quantity:        item.Quantity,
			Variants:        item.Variants,
			Addons:          item.Addons,
		}
		if item.ScheduledAt != "" {
			if ts, err := time.Parse(time.RFC3339Nano, item.ScheduledAt); err == nil {
				ci.ScheduledAt = &ts
			}
		}
		cart.Items = append(cart.Items, ci)
	}
	return cart, nil
}

type StoreDynamoRepository struct {
	client         *dynamodb.Client
	storesTable    string
	locationsTable string
	placesTable    string
}

var _ interfaces.IStoreRepository = (*StoreDynamoRepository)(nil)

func NewStoreDynamoRepository(ddb *dynamodb.Client) *StoreDynamoRepository {
	return &StoreDynamoRepository{
		client:         ddb,
		storesTable:    getenvDefault("STORES_TABLE", defaultStoresTableName),
		locationsTable: getenvDefault("STORE_LOCATIONS_TABLE", defaultStoreLocationsTableName),
		placesTable:    getenvDefault("PLACES_TABLE", defaultPlacesTableName),
	}
}

func (r *StoreDynamoRepository) GetByPublicID(ctx context.Context, publicID string) (entities.Store, error) {
	out, err := r.client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.storesTable),
		IndexName:              aws.String(publicIDIndexName),
		KeyConditionExpression: aws.String("#public_id = :public_id"),
		ExpressionAttributeNames: map[string]string{
			"#public_id": "public_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":public_id": &types.AttributeValueMemberS{Value: publicID},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Store{}, err
	}
	if len(out.Items) == 0 {
		return entities.Store{}, nil
	}

	var record storeRecord
	if err := attributevalue.UnmarshalMap(out.Items[0], &record); err != nil {
		return entities.Store{}, err
	}
	return fromStoreRecord(record), nil
}

func (r *StoreDynamoRepository) GetLocation(ctx context.Context, publicID string) (entities.StoreLocation, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.locationsTable),
		Key: map[string]types.AttributeValue{
			"public_id": &types.AttributeValueMemberS{Value: publicID},
		},
	})
	if err != nil {
		return entities.StoreLocation{}, err
	}
	if len(out.Item) == 0 {
		return entities.StoreLocation{}, nil
	}

	var record storeLocationRecord
	if err := attributevalue.UnmarshalMap(out.Item, &record); err != nil {
		return entities.StoreLocation{}, err
	}
	return entities.StoreLocation{
		ID:       record.ID,
		PublicID: record.PublicID,
		StoreID:  record.StoreID,
		PlaceID:  record.PlaceID,
	}, nil
}

func (r *StoreDynamoRepository) GetPlace(ctx context.Context, id string) (entities.Place, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.placesTable),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return entities.Place{}, err
	}
	if len(out.Item) == 0 {
		return entities.Place{}, nil
	}

	var record placeRecord
	if err := attributevalue.UnmarshalMap(out.Item, &record); err != nil {
		return entities.Place{}, err
	}
	return entities.Place{
		ID:        record.ID,
		Name:      record.Name,
		Latitude:  record.Latitude,
		Longitude: record.Longitude,
	}, nil
}

func fromStoreRecord(record storeRecord) entities.Store {
	store := entities.Store{
		ID:        record.ID,
		PublicID:  record.PublicID,
		CompanyID: record.CompanyID,
		Name:      record.Name,
		IsNetwork: record.IsNetwork,
		PODMethod: record.PODMethod,
		Options:   record.Options,
	}
	for _, loc := range record.Locations {
		store.Locations = append(store.Locations, entities.StoreLocation{
			ID:       loc.ID,
			PublicID: loc.PublicID,
			StoreID:  loc.StoreID,
			PlaceID:  loc.PlaceID,
		})
	}
	return store
}

type CustomerDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICustomerRepository = (*CustomerDynamoRepository)(nil)

func NewCustomerDynamoRepository(ddb *dynamodb.Client) *CustomerDynamoRepository {
	return &CustomerDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CUSTOMERS_TABLE", defaultCustomersTableName),
	}
}

func (r *CustomerDynamoRepository) GetByID(ctx context.Context, id string) (entities.Customer, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return entities.Customer{}, err
	}
	if len(out.Item) == 0 {
		return entities.Customer{}, nil
	}

	var record customerRecord
	if err := attributevalue.UnmarshalMap(out.Item, &record); err != nil {
		return entities.Customer{}, err
	}
	return entities.Customer{
		ID:    record.ID,
		Name:  record.Name,
		Phone: record.Phone,
		Email: record.Email,
	}, nil
}

type ServiceQuoteDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IServiceQuoteRepository = (*ServiceQuoteDynamoRepository)(nil)

func NewServiceQuoteDynamoRepository(ddb *dynamodb.Client) *ServiceQuoteDynamoRepository {
	return &ServiceQuoteDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SERVICE_QUOTES_TABLE", defaultServiceQuotesTableName),
	}
}

func (r *ServiceQuoteDynamoRepository) GetByPublicID(ctx context.Context, publicID string) (entities.ServiceQuote, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(publicIDIndexName),
		KeyConditionExpression: aws.String("#public_id = :public_id"),
		ExpressionAttributeNames: map[string]string{
			"#public_id": "public_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":public_id": &types.AttributeValueMemberS{Value: publicID},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.ServiceQuote{}, err
	}
	if len(out.Items) == 0 {
		return entities.ServiceQuote{}, nil
	}

	var record serviceQuoteRecord
	if err := attributevalue.UnmarshalMap(out.Items[0], &record); err != nil {
		return entities.ServiceQuote{}, err
	}
	return entities.ServiceQuote{
		ID:                 record.ID,
		PublicID:           record.PublicID,
		Amount:             record.Amount,
		Currency:           record.Currency,
		Origin:             record.Origin,
		Destination:        record.Destination,
		IntegratedVendorID: record.IntegratedVendorID,
	}, nil
}
