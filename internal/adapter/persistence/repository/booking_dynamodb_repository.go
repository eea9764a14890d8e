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

const bookingsCustomerIDIndex = "customer_id-index"

type bookingLineItem struct {
	Type      string  `dynamodbav:"type"`
	ID        string  `dynamodbav:"id"`
	VariantID string  `dynamodbav:"variant_id,omitempty"`
	Name      string  `dynamodbav:"name"`
	UnitPrice float64 `dynamodbav:"unit_price"`
	Quantity  int     `dynamodbav:"quantity"`
}

type bookingItem struct {
	ID             string          `dynamodbav:"id"`
	CustomerID     string          `dynamodbav:"customer_id"`
	Item           bookingLineItem `dynamodbav:"item"`
	Address        addressItem     `dynamodbav:"address"`
	ScheduledDate  string          `dynamodbav:"scheduled_date"`
	ScheduledTime  string          `dynamodbav:"scheduled_time"`
	Duration       int             `dynamodbav:"duration"`
	Notes          string          `dynamodbav:"notes,omitempty"`
	CouponCode     string          `dynamodbav:"coupon_code,omitempty"`
	Subtotal       float64         `dynamodbav:"subtotal"`
	Discount       float64         `dynamodbav:"discount"`
	Taxes          float64         `dynamodbav:"taxes"`
	TotalAmount    float64         `dynamodbav:"total_amount"`
	Status         string          `dynamodbav:"status"`
	PaymentStatus  string          `dynamodbav:"payment_status"`
	IdempotencyKey string          `dynamodbav:"idempotency_key"`
	CreatedAt      string          `dynamodbav:"created_at"`
	UpdatedAt      string          `dynamodbav:"updated_at"`
}

// BookingDynamoRepository persists Booking entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: customer_id-index (PK: customer_id)
//
// Bookings are keyed by the draft's idempotency key, so the conditional put in
// Create admits one booking per draft. GSI reads are eventually consistent and
// are only used for listing.
type BookingDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
	now       func() time.Time
}

var _ interfaces.IBookingRepository = (*BookingDynamoRepository)(nil)

func NewBookingDynamoRepository(ddb DynamoAPI, tableName string) *BookingDynamoRepository {
	return &BookingDynamoRepository{ddb: ddb, tableName: tableName, now: time.Now}
}

func (r *BookingDynamoRepository) Create(ctx context.Context, b entities.Booking) (entities.Booking, error) {
	av, err := attributevalue.MarshalMap(toBookingItem(b))
	if err != nil {
		return entities.Booking{}, err
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
		if isConditionFailed(err) {
			return entities.Booking{}, interfaces.ErrBookingExists
		}
		return entities.Booking{}, err
	}
	return b, nil
}

func (r *BookingDynamoRepository) GetByID(ctx context.Context, id string) (entities.Booking, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            stringKey("id", id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Booking{}, err
	}
	if len(out.Item) == 0 {
		return entities.Booking{}, nil
	}
	return unmarshalBooking(out.Item)
}

// ListByCustomerID returns the customer's bookings newest first.
func (r *BookingDynamoRepository) ListByCustomerID(ctx context.Context, customerID string) ([]entities.Booking, error) {
	var (
		out   []entities.Booking
		start map[string]types.AttributeValue
	)
	for {
		page, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			IndexName:              aws.String(bookingsCustomerIDIndex),
			KeyConditionExpression: aws.String("customer_id = :cid"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":cid": &types.AttributeValueMemberS{Value: customerID},
			},
			ExclusiveStartKey: start,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			b, err := unmarshalBooking(raw)
			if err != nil {
				return nil, err
			}
			out = append(out, b)
		}
		if len(page.LastEvaluatedKey) == 0 {
			break
		}
		start = page.LastEvaluatedKey
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

// UpdateStatus writes the non-nil fields of patch. A missing booking yields a
// zero Booking and a nil error.
func (r *BookingDynamoRepository) UpdateStatus(ctx context.Context, id string, patch entities.BookingStatusPatch) (entities.Booking, error) {
	expr := "SET #updated_at = :updated_at"
	values := map[string]types.AttributeValue{
		":updated_at": &types.AttributeValueMemberS{Value: formatTime(r.now())},
	}
	names := map[string]string{
		"#updated_at": "updated_at",
	}
	if patch.Status != nil {
		expr += ", #status = :status"
		values[":status"] = &types.AttributeValueMemberS{Value: string(*patch.Status)}
		names["#status"] = "status"
	}
	if patch.PaymentStatus != nil {
		expr += ", #payment_status = :payment_status"
		values[":payment_status"] = &types.AttributeValueMemberS{Value: string(*patch.PaymentStatus)}
		names["#payment_status"] = "payment_status"
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       stringKey("id", id),
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionFailed(err) {
			return entities.Booking{}, nil
		}
		return entities.Booking{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Booking{}, nil
	}
	return unmarshalBooking(out.Attributes)
}

func unmarshalBooking(raw map[string]types.AttributeValue) (entities.Booking, error) {
	var it bookingItem
	if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
		return entities.Booking{}, err
	}
	return fromBookingItem(it), nil
}

func toBookingItem(b entities.Booking) bookingItem {
	return bookingItem{
		ID:         b.ID,
		CustomerID: b.CustomerID,
		Item: bookingLineItem{
			Type:      string(b.Item.Type),
			ID:        b.Item.ID,
			VariantID: b.Item.VariantID,
			Name:      b.Item.Name,
			UnitPrice: b.Item.UnitPrice,
			Quantity:  b.Item.Quantity,
		},
		Address:        toAddressItem(b.Address),
		ScheduledDate:  b.ScheduledDate,
		ScheduledTime:  b.ScheduledTime,
		Duration:       b.Duration,
		Notes:          b.Notes,
		CouponCode:     b.CouponCode,
		Subtotal:       b.Subtotal,
		Discount:       b.Discount,
		Taxes:          b.Taxes,
		TotalAmount:    b.TotalAmount,
		Status:         string(b.Status),
		PaymentStatus:  string(b.PaymentStatus),
		IdempotencyKey: b.IdempotencyKey,
		CreatedAt:      formatTime(b.CreatedAt),
		UpdatedAt:      formatTime(b.UpdatedAt),
	}
}

func fromBookingItem(it bookingItem) entities.Booking {
	return entities.Booking{
		ID:         it.ID,
		CustomerID: it.CustomerID,
		Item: entities.BookingItem{
			Type:      entities.ItemType(it.Item.Type),
			ID:        it.Item.ID,
			VariantID: it.Item.VariantID,
			Name:      it.Item.Name,
			UnitPrice: it.Item.UnitPrice,
			Quantity:  it.Item.Quantity,
		},
		Address:        fromAddressItem(it.Address),
		ScheduledDate:  it.ScheduledDate,
		ScheduledTime:  it.ScheduledTime,
		Duration:       it.Duration,
		Notes:          it.Notes,
		CouponCode:     it.CouponCode,
		Subtotal:       it.Subtotal,
		Discount:       it.Discount,
		Taxes:          it.Taxes,
		TotalAmount:    it.TotalAmount,
		Status:         entities.BookingStatus(it.Status),
		PaymentStatus:  entities.PaymentStatus(it.PaymentStatus),
		IdempotencyKey: it.IdempotencyKey,
		CreatedAt:      parseTime(it.CreatedAt),
		UpdatedAt:      parseTime(it.UpdatedAt),
	}
}
