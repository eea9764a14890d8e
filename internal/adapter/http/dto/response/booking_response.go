package response

import (
	"time"

	"cleangod/internal/domain/entities"
)

type BookingItemResponse struct {
	Type      string  `json:"type"`
	ID        string  `json:"id"`
	VariantID string  `json:"variant_id,omitempty"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  int     `json:"quantity"`
}

type BookingResponse struct {
	ID            string              `json:"id"`
	CustomerID    string              `json:"customer_id"`
	Item          BookingItemResponse `json:"item"`
	Address       AddressResponse     `json:"address"`
	ScheduledDate string              `json:"scheduled_date"`
	ScheduledTime string              `json:"scheduled_time"`
	Duration      int                 `json:"duration"`
	Notes         string              `json:"notes,omitempty"`
	CouponCode    string              `json:"coupon_code,omitempty"`
	Subtotal      float64             `json:"subtotal"`
	Discount      float64             `json:"discount"`
	Taxes         float64             `json:"taxes"`
	TotalAmount   float64             `json:"total_amount"`
	Status        string              `json:"status"`
	PaymentStatus string              `json:"payment_status"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
}

func FromBooking(b entities.Booking) BookingResponse {
	return BookingResponse{
		ID:         b.ID,
		CustomerID: b.CustomerID,
		Item: BookingItemResponse{
			Type:      string(b.Item.Type),
			ID:        b.Item.ID,
			VariantID: b.Item.VariantID,
			Name:      b.Item.Name,
			UnitPrice: b.Item.UnitPrice,
			Quantity:  b.Item.Quantity,
		},
		Address:       FromAddress(b.Address),
		ScheduledDate: b.ScheduledDate,
		ScheduledTime: b.ScheduledTime,
		Duration:      b.Duration,
		Notes:         b.Notes,
		CouponCode:    b.CouponCode,
		Subtotal:      b.Subtotal,
		Discount:      b.Discount,
		Taxes:         b.Taxes,
		TotalAmount:   b.TotalAmount,
		Status:        string(b.Status),
		PaymentStatus: string(b.PaymentStatus),
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

func FromBookings(list []entities.Booking) []BookingResponse {
	out := make([]BookingResponse, 0, len(list))
	for _, b := range list {
		out = append(out, FromBooking(b))
	}
	return out
}

// SubmitResponse tells the client where the confirmation view lives.
type SubmitResponse struct {
	BookingID  string          `json:"booking_id"`
	RedirectTo string          `json:"redirect_to"`
	Booking    BookingResponse `json:"booking"`
}

func ConfirmationPath(bookingID string) string {
	return "/booking/confirmation/" + bookingID
}

func FromSubmittedBooking(b entities.Booking) SubmitResponse {
	return SubmitResponse{BookingID: b.ID, RedirectTo: ConfirmationPath(b.ID), Booking: FromBooking(b)}
}
