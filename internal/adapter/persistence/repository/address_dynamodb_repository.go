package repository

import (
	"context"
	"sort"

	"cleangod/internal/domain/entities"
	"cleangod/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const addressesUserIDIndex = "user_id-index"

type addressItem struct {
	ID        string `dynamodbav:"id"`
	UserID    string `dynamodbav:"user_id"`
	Type      string `dynamodbav:"type"`
	Street    string `dynamodbav:"street"`
	Area      string `dynamodbav:"area"`
	City      string `dynamodbav:"city"`
	State     string `dynamodbav:"state"`
	Pincode   string `dynamodbav:"pincode"`
	Landmark  string `dynamodbav:"landmark,omitempty"`
	IsDefault bool   `dynamodbav:"is_default"`
	CreatedAt string `dynamodbav:"created_at,omitempty"`
}

// AddressDynamoRepository persists a user's address book in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: user_id-index (PK: user_id)
type AddressDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IAddressRepository = (*AddressDynamoRepository)(nil)

func NewAddressDynamoRepository(ddb DynamoAPI, tableName string) *AddressDynamoRepository {
	return &AddressDynamoRepository{ddb: ddb, tableName: tableName}
}

// ListByUserID returns the addresses oldest first.
func (r *AddressDynamoRepository) ListByUserID(ctx context.Context, userID string) ([]entities.Address, error) {
	var (
		out   []entities.Address
		start map[string]types.AttributeValue
	)
	for {
		page, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			IndexName:              aws.String(addressesUserIDIndex),
			KeyConditionExpression: aws.String("user_id = :uid"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":uid": &types.AttributeValueMemberS{Value: userID},
			},
			ExclusiveStartKey: start,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it addressItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			out = append(out, fromAddressItem(it))
		}
		if len(page.LastEvaluatedKey) == 0 {
			break
		}
		start = page.LastEvaluatedKey
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *AddressDynamoRepository) GetByID(ctx context.Context, id string) (entities.Address, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            stringKey("id", id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Address{}, err
	}
	if len(out.Item) == 0 {
		return entities.Address{}, nil
	}
	var it addressItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Address{}, err
	}
	return fromAddressItem(it), nil
}

func (r *AddressDynamoRepository) Create(ctx context.Context, a entities.Address) (entities.Address, error) {
	av, err := attributevalue.MarshalMap(toAddressItem(a))
	if err != nil {
		return entities.Address{}, err
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
		return entities.Address{}, err
	}
	return a, nil
}

// SetDefault is a single-item write. Callers switching the default address
// issue one call per address; there is no transaction across them.
func (r *AddressDynamoRepository) SetDefault(ctx context.Context, id string, isDefault bool) error {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 stringKey("id", id),
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #is_default = :d"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#is_default": "is_default",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":d": &types.AttributeValueMemberBOOL{Value: isDefault},
		},
	})
	if err != nil && isConditionFailed(err) {
		return nil
	}
	return err
}

func toAddressItem(a entities.Address) addressItem {
	return addressItem{
		ID:        a.ID,
		UserID:    a.UserID,
		Type:      string(a.Type),
		Street:    a.Street,
		Area:      a.Area,
		City:      a.City,
		State:     a.State,
		Pincode:   a.Pincode,
		Landmark:  a.Landmark,
		IsDefault: a.IsDefault,
		CreatedAt: formatTime(a.CreatedAt),
	}
}

func fromAddressItem(it addressItem) entities.Address {
	return entities.Address{
		ID:        it.ID,
		UserID:    it.UserID,
		Type:      entities.AddressType(it.Type),
		Street:    it.Street,
		Area:      it.Area,
		City:      it.City,
		State:     it.State,
		Pincode:   it.Pincode,
		Landmark:  it.Landmark,
		IsDefault: it.IsDefault,
		CreatedAt: parseTime(it.CreatedAt),
	}
}
