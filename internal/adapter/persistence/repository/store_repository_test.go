package repository

import (
	"context"
	"testing"
	"time"

	"cleangod/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartDynamoStore(t *testing.T) {
	var stored map[string]types.AttributeValue
	fake := &fakeDynamo{
		put: func(in *dynamodb.PutItemInput) (*dynamodb.PutItemOutput, error) {
			assert.Nil(t, in.ConditionExpression)
			stored = in.Item
			return &dynamodb.PutItemOutput{}, nil
		},
		get: func(*dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error) {
			return &dynamodb.GetItemOutput{Item: stored}, nil
		},
	}
	store := NewCartDynamoStore(fake, "carts")

	empty, err := store.Load(context.Background(), "dev-1")
	require.NoError(t, err)
	assert.Equal(t, "dev-1", empty.DeviceID)
	assert.Empty(t, empty.Items)

	cart := entities.Cart{
		DeviceID:  "dev-1",
		Items:     []entities.CartItem{{ID: "svc-1", Type: entities.ItemTypeService, Quantity: 2, Price: 999, Name: "Deep clean", VariantID: "basic"}},
		UpdatedAt: time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC),
	}
	require.NoError(t, store.Save(context.Background(), cart))

	got, err := store.Load(context.Background(), "dev-1")
	require.NoError(t, err)
	assert.Equal(t, cart, got)
}

func TestCouponDynamoRepository(t *testing.T) {
	t.Run("seed keeps existing codes", func(t *testing.T) {
		fake := &fakeDynamo{
			put: func(in *dynamodb.PutItemInput) (*dynamodb.PutItemOutput, error) {
				assert.Equal(t, "attribute_not_exists(#code)", aws.ToString(in.ConditionExpression))
				return nil, &types.ConditionalCheckFailedException{}
			},
		}
		repo := NewCouponDynamoRepository(fake, "coupons")

		assert.NoError(t, repo.Seed(context.Background(), entities.Coupon{Code: "welcome10", DiscountType: entities.DiscountTypePercentage, DiscountValue: 10, Active: true}))
	})

	t.Run("list active pages through the scan", func(t *testing.T) {
		until := time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC)
		a, err := attributevalue.MarshalMap(toCouponItem(entities.Coupon{Code: "ZED", DiscountType: entities.DiscountTypeFixed, DiscountValue: 50, Active: true}))
		require.NoError(t, err)
		b, err := attributevalue.MarshalMap(toCouponItem(entities.Coupon{Code: "ALPHA", DiscountType: entities.DiscountTypePercentage, DiscountValue: 10, Active: true, ValidTo: &until}))
		require.NoError(t, err)

		fake := &fakeDynamo{
			scan: func(in *dynamodb.ScanInput) (*dynamodb.ScanOutput, error) {
				if in.ExclusiveStartKey == nil {
					return &dynamodb.ScanOutput{Items: []map[string]types.AttributeValue{a}, LastEvaluatedKey: stringKey("code", "ZED")}, nil
				}
				return &dynamodb.ScanOutput{Items: []map[string]types.AttributeValue{b}}, nil
			},
		}
		repo := NewCouponDynamoRepository(fake, "coupons")

		list, err := repo.ListActive(context.Background())
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, "ALPHA", list[0].Code)
		require.NotNil(t, list[0].ValidTo)
		assert.True(t, list[0].ValidTo.Equal(until))
		assert.Nil(t, list[1].ValidFrom)
	})

	t.Run("unknown code", func(t *testing.T) {
		repo := NewCouponDynamoRepository(&fakeDynamo{}, "coupons")
		got, err := repo.GetByCode(context.Background(), "NOPE")
		require.NoError(t, err)
		assert.Empty(t, got.Code)
	})
}

func TestAddressDynamoRepository_GetByID(t *testing.T) {
	item, err := attributevalue.MarshalMap(addressItem{ID: "addr-1", UserID: "user-1", Type: "home", City: "Pune", Pincode: "411001"})
	require.NoError(t, err)

	fake := &fakeDynamo{
		get: func(in *dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error) {
			assert.Equal(t, "addresses", aws.ToString(in.TableName))
			assert.True(t, aws.ToBool(in.ConsistentRead))
			if in.Key["id"].(*types.AttributeValueMemberS).Value != "addr-1" {
				return &dynamodb.GetItemOutput{}, nil
			}
			return &dynamodb.GetItemOutput{Item: item}, nil
		},
	}
	repo := NewAddressDynamoRepository(fake, "addresses")

	a, err := repo.GetByID(context.Background(), "addr-1")
	require.NoError(t, err)
	assert.Equal(t, "user-1", a.UserID)
	assert.Equal(t, "Pune", a.City)

	missing, err := repo.GetByID(context.Background(), "nope")
	require.NoError(t, err)
	assert.Empty(t, missing.ID)
}

func TestAddressDynamoRepository_SetDefault(t *testing.T) {
	fake := &fakeDynamo{
		update: func(in *dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
			v, ok := in.ExpressionAttributeValues[":d"].(*types.AttributeValueMemberBOOL)
			require.True(t, ok)
			assert.False(t, v.Value)
			return nil, &types.ConditionalCheckFailedException{}
		},
	}
	repo := NewAddressDynamoRepository(fake, "addresses")

	assert.NoError(t, repo.SetDefault(context.Background(), "gone", false))
}

func TestCatalogDynamoRepository_GetService(t *testing.T) {
	item, err := attributevalue.MarshalMap(serviceItem{
		ID: "svc-1", Name: "Deep clean", Duration: 120,
		PricingTiers: []pricingTierItem{{ID: "basic", Name: "1 BHK", OriginalPrice: 1200, SellingPrice: 999}},
	})
	require.NoError(t, err)

	fake := &fakeDynamo{
		get: func(in *dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error) {
			if aws.ToString(in.TableName) != "services" {
				return &dynamodb.GetItemOutput{}, nil
			}
			return &dynamodb.GetItemOutput{Item: item}, nil
		},
	}
	repo := NewCatalogDynamoRepository(fake, "services", "products")

	s, err := repo.GetService(context.Background(), "svc-1")
	require.NoError(t, err)
	require.Len(t, s.PricingTiers, 1)
	assert.Equal(t, 999.0, s.PricingTiers[0].SellingPrice)

	p, err := repo.GetProduct(context.Background(), "svc-1")
	require.NoError(t, err)
	assert.Empty(t, p.ID)
}

func TestPaymentDynamoRepository_ListByBookingID(t *testing.T) {
	early, err := attributevalue.MarshalMap(toPaymentItem(entities.Payment{ID: "p1", BookingID: "bk-1", Amount: 944, Date: time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC), Status: entities.PaymentStatusFailed}))
	require.NoError(t, err)
	late, err := attributevalue.MarshalMap(toPaymentItem(entities.Payment{ID: "p2", BookingID: "bk-1", Amount: 944, Date: time.Date(2026, 10, 19, 10, 0, 0, 0, time.UTC), Status: entities.PaymentStatusPaid}))
	require.NoError(t, err)

	fake := &fakeDynamo{
		query: func(in *dynamodb.QueryInput) (*dynamodb.QueryOutput, error) {
			assert.Equal(t, paymentsBookingIDIndex, aws.ToString(in.IndexName))
			return &dynamodb.QueryOutput{Items: []map[string]types.AttributeValue{late, early}}, nil
		},
	}
	repo := NewPaymentDynamoRepository(fake, "payments")

	list, err := repo.ListByBookingID(context.Background(), "bk-1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "p1", list[0].ID)
	assert.Equal(t, 944.0, list[1].Amount)
}
