package repository

import (
	"context"
	"sort"
	"time"

	"cleangod/internal/domain/entities"
	"cleangod/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type couponItem struct {
	Code          string  `dynamodbav:"code"`
	DiscountType  string  `dynamodbav:"discount_type"`
	DiscountValue float64 `dynamodbav:"discount_value"`
	ValidFrom     string  `dynamodbav:"valid_from,omitempty"`
	ValidTo       string  `dynamodbav:"valid_to,omitempty"`
	Active        bool    `dynamodbav:"active"`
}

// CouponDynamoRepository reads and seeds coupons.
//
// Table requirements:
//   - PK: code (string, upper case)
type CouponDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.ICouponRepository = (*CouponDynamoRepository)(nil)

func NewCouponDynamoRepository(ddb DynamoAPI, tableName string) *CouponDynamoRepository {
	return &CouponDynamoRepository{ddb: ddb, tableName: tableName}
}

// ListActive scans for coupons flagged active. The table is small; validity
// windows are checked by the caller.
func (r *CouponDynamoRepository) ListActive(ctx context.Context) ([]entities.Coupon, error) {
	var (
		out   []entities.Coupon
		start map[string]types.AttributeValue
	)
	for {
		page, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:        aws.String(r.tableName),
			FilterExpression: aws.String("#active = :active"),
			ExpressionAttributeNames: map[string]string{
				"#active": "active",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":active": &types.AttributeValueMemberBOOL{Value: true},
			},
			ExclusiveStartKey: start,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it couponItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			out = append(out, fromCouponItem(it))
		}
		if len(page.LastEvaluatedKey) == 0 {
			break
		}
		start = page.LastEvaluatedKey
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out, nil
}

func (r *CouponDynamoRepository) GetByCode(ctx context.Context, code string) (entities.Coupon, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       stringKey("code", code),
	})
	if err != nil {
		return entities.Coupon{}, err
	}
	if len(out.Item) == 0 {
		return entities.Coupon{}, nil
	}
	var it couponItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Coupon{}, err
	}
	return fromCouponItem(it), nil
}

// Seed inserts the coupon unless the code already exists.
func (r *CouponDynamoRepository) Seed(ctx context.Context, c entities.Coupon) error {
	av, err := attributevalue.MarshalMap(toCouponItem(c))
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#code)"),
		ExpressionAttributeNames: map[string]string{
			"#code": "code",
		},
	})
	if err != nil && isConditionFailed(err) {
		return nil
	}
	return err
}

func toCouponItem(c entities.Coupon) couponItem {
	it := couponItem{
		Code:          entities.NormalizeCouponCode(c.Code),
		DiscountType:  string(c.DiscountType),
		DiscountValue: c.DiscountValue,
		Active:        c.Active,
	}
	if c.ValidFrom != nil {
		it.ValidFrom = formatTime(*c.ValidFrom)
	}
	if c.ValidTo != nil {
		it.ValidTo = formatTime(*c.ValidTo)
	}
	return it
}

func fromCouponItem(it couponItem) entities.Coupon {
	c := entities.Coupon{
		Code:          it.Code,
		DiscountType:  entities.DiscountType(it.DiscountType),
		DiscountValue: it.DiscountValue,
		Active:        it.Active,
	}
	if t := parseTime(it.ValidFrom); !t.IsZero() {
		c.ValidFrom = timePtr(t)
	}
	if t := parseTime(it.ValidTo); !t.IsZero() {
		c.ValidTo = timePtr(t)
	}
	return c
}

func timePtr(t time.Time) *time.Time {
	return &t
}
