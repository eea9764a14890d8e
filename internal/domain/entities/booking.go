package entities

import "time"

// BookingStatus represents the lifecycle of a booking.
//
// Domain notes:
//   - A booking is created once, at draft submission, as pending.
//   - Afterwards only status and payment status move (admin action or payment outcome).
//   - Bookings are never deleted; cancellation is a status.
type BookingStatus string

const (
	BookingStatusPending    BookingStatus = "pending"
	BookingStatusConfirmed  BookingStatus = "confirmed"
	BookingStatusInProgress BookingStatus = "in-progress"
	BookingStatusCompleted  BookingStatus = "completed"
	BookingStatusCancelled  BookingStatus = "cancelled"
)

var bookingTransitions = map[BookingStatus][]BookingStatus{
	BookingStatusPending:    {BookingStatusConfirmed, BookingStatusCancelled},
	BookingStatusConfirmed:  {BookingStatusInProgress, BookingStatusCancelled},
	BookingStatusInProgress: {BookingStatusCompleted},
}

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusInProgress, BookingStatusCompleted, BookingStatusCancelled:
		return true
	}
	return false
}

func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	for _, allowed := range bookingTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusFailed   PaymentStatus = "failed"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

var paymentTransitions = map[PaymentStatus][]PaymentStatus{
	PaymentStatusPending: {PaymentStatusPaid, PaymentStatusFailed},
	PaymentStatusFailed:  {PaymentStatusPaid},
	PaymentStatusPaid:    {PaymentStatusRefunded},
}

func (p PaymentStatus) Valid() bool {
	switch p {
	case PaymentStatusPending, PaymentStatusPaid, PaymentStatusFailed, PaymentStatusRefunded:
		return true
	}
	return false
}

func (p PaymentStatus) CanTransitionTo(next PaymentStatus) bool {
	for _, allowed := range paymentTransitions[p] {
		if allowed == next {
			return true
		}
	}
	return false
}

// BookingItem is the service or product the booking was made for, with the
// price captured at submission.
type BookingItem struct {
	Type      ItemType `json:"type"`
	ID        string   `json:"id"`
	VariantID string   `json:"variant_id,omitempty"`
	Name      string   `json:"name"`
	UnitPrice float64  `json:"unit_price"`
	Quantity  int      `json:"quantity"`
}

// Booking is the persisted booking record.
//
// Storage model (DynamoDB):
//   - PK: id (the submitting draft's idempotency key)
//   - GSI1 (customer_id-index): customer_id
//
// The address is a full snapshot, later edits to the address book do not
// change existing bookings.
type Booking struct {
	ID             string        `json:"id"`
	CustomerID     string        `json:"customer_id"`
	Item           BookingItem   `json:"item"`
	Address        Address       `json:"address"`
	ScheduledDate  string        `json:"scheduled_date"`
	ScheduledTime  string        `json:"scheduled_time"`
	Duration       int           `json:"duration"`
	Notes          string        `json:"notes,omitempty"`
	CouponCode     string        `json:"coupon_code,omitempty"`
	Subtotal       float64       `json:"subtotal"`
	Discount       float64       `json:"discount"`
	Taxes          float64       `json:"taxes"`
	TotalAmount    float64       `json:"total_amount"`
	Status         BookingStatus `json:"status"`
	PaymentStatus  PaymentStatus `json:"payment_status"`
	IdempotencyKey string        `json:"idempotency_key"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}

// BookingStatusPatch carries the fields an update may change. Nil fields are left untouched.
type BookingStatusPatch struct {
	Status        *BookingStatus
	PaymentStatus *PaymentStatus
}

func (p BookingStatusPatch) Empty() bool {
	return p.Status == nil && p.PaymentStatus == nil
}
