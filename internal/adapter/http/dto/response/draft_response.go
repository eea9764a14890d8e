package response

import (
	"time"

	"cleangod/internal/domain/entities"
	"cleangod/internal/usecase"
)

type DraftItemResponse struct {
	Type      string  `json:"type"`
	ID        string  `json:"id"`
	VariantID string  `json:"variant_id,omitempty"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  int     `json:"quantity"`
	Duration  int     `json:"duration"`
}

type TotalsResponse struct {
	Subtotal float64 `json:"subtotal"`
	Discount float64 `json:"discount"`
	Taxes    float64 `json:"taxes"`
	Total    float64 `json:"total"`
}

type CouponSnapshotResponse struct {
	Code          string  `json:"code"`
	DiscountType  string  `json:"discount_type"`
	DiscountValue float64 `json:"discount_value"`
}

type DraftResponse struct {
	SessionID     string                  `json:"session_id"`
	Stage         string                  `json:"stage"`
	NextStep      string                  `json:"next_step"`
	Item          DraftItemResponse       `json:"item"`
	ScheduledDate string                  `json:"scheduled_date,omitempty"`
	ScheduledTime string                  `json:"scheduled_time,omitempty"`
	Address       *AddressResponse        `json:"address,omitempty"`
	Coupon        *CouponSnapshotResponse `json:"coupon,omitempty"`
	CouponApplied *bool                   `json:"coupon_applied,omitempty"`
	Notes         string                  `json:"notes,omitempty"`
	Totals        *TotalsResponse         `json:"totals,omitempty"`
	UpdatedAt     time.Time               `json:"updated_at"`
	// SignInRedirect is set when the next step needs a signed-in customer and
	// the request carried none.
	SignInRedirect string `json:"sign_in_redirect,omitempty"`
}

func FromTotals(t entities.Totals) TotalsResponse {
	return TotalsResponse{Subtotal: t.Subtotal, Discount: t.Discount, Taxes: t.Taxes, Total: t.Total}
}

// FromDraft leaves out the idempotency key, which never leaves the server.
func FromDraft(d entities.BookingDraft) DraftResponse {
	res := DraftResponse{
		SessionID: d.SessionID,
		Stage:     string(d.Stage),
		NextStep:  string(d.NextStep()),
		Item: DraftItemResponse{
			Type:      string(d.Item.Type),
			ID:        d.Item.ID,
			VariantID: d.Item.VariantID,
			Name:      d.Item.Name,
			UnitPrice: d.Item.UnitPrice,
			Quantity:  d.Item.Quantity,
			Duration:  d.Item.Duration,
		},
		ScheduledDate: d.ScheduledDate,
		ScheduledTime: d.ScheduledTime,
		Notes:         d.Notes,
		UpdatedAt:     d.UpdatedAt,
	}
	if d.Address != nil {
		a := FromAddress(*d.Address)
		res.Address = &a
	}
	if d.Coupon != nil {
		res.Coupon = &CouponSnapshotResponse{
			Code:          d.Coupon.Code,
			DiscountType:  string(d.Coupon.DiscountType),
			DiscountValue: d.Coupon.DiscountValue,
		}
	}
	if d.Totals != nil {
		t := FromTotals(*d.Totals)
		res.Totals = &t
	}
	return res
}

func FromPaymentSummary(s usecase.PaymentSummary) DraftResponse {
	res := FromDraft(s.Draft)
	applied := s.CouponApplied
	res.CouponApplied = &applied
	return res
}

type TimeSlotsResponse struct {
	Slots []string `json:"slots"`
}
