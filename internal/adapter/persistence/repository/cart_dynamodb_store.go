package repository

import (
	"context"

	"cleangod/internal/domain/entities"
	"cleangod/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

type cartLineItem struct {
	ID        string  `dynamodbav:"id"`
	Type      string  `dynamodbav:"type"`
	Quantity  int     `dynamodbav:"quantity"`
	Price     float64 `dynamodbav:"price"`
	Name      string  `dynamodbav:"name"`
	VariantID string  `dynamodbav:"variant_id,omitempty"`
}

type cartItem struct {
	DeviceID  string         `dynamodbav:"device_id"`
	Items     []cartLineItem `dynamodbav:"items"`
	UpdatedAt string         `dynamodbav:"updated_at"`
}

// CartDynamoStore keeps one cart record per device.
//
// Table requirements:
//   - PK: device_id (string)
//
// Save overwrites the record; concurrent writers for a device are last-writer-wins.
type CartDynamoStore struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.ICartStore = (*CartDynamoStore)(nil)

func NewCartDynamoStore(ddb DynamoAPI, tableName string) *CartDynamoStore {
	return &CartDynamoStore{ddb: ddb, tableName: tableName}
}

func (s *CartDynamoStore) Load(ctx context.Context, deviceID string) (entities.Cart, error) {
	out, err := s.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(s.tableName),
		Key:            stringKey("device_id", deviceID),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Cart{}, err
	}
	if len(out.Item) == 0 {
		return entities.Cart{DeviceID: deviceID}, nil
	}
	var it cartItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Cart{}, err
	}
	c := entities.Cart{DeviceID: it.DeviceID, UpdatedAt: parseTime(it.UpdatedAt)}
	for _, l := range it.Items {
		c.Items = append(c.Items, entities.CartItem{
			ID:        l.ID,
			Type:      entities.ItemType(l.Type),
			Quantity:  l.Quantity,
			Price:     l.Price,
			Name:      l.Name,
			VariantID: l.VariantID,
		})
	}
	return c, nil
}

func (s *CartDynamoStore) Save(ctx context.Context, c entities.Cart) error {
	it := cartItem{DeviceID: c.DeviceID, Items: []cartLineItem{}, UpdatedAt: formatTime(c.UpdatedAt)}
	for _, l := range c.Items {
		it.Items = append(it.Items, cartLineItem{
			ID:        l.ID,
			Type:      string(l.Type),
			Quantity:  l.Quantity,
			Price:     l.Price,
			Name:      l.Name,
			VariantID: l.VariantID,
		})
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return err
	}
	_, err = s.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.tableName),
		Item:      av,
	})
	return err
}
