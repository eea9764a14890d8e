package request

type ChooseTimeRequest struct {
	Date string `json:"date" binding:"required"`
	Time string `json:"time" binding:"required"`
}

type ChooseAddressRequest struct {
	AddressID string `json:"address_id" binding:"required"`
}

type PaymentStepRequest struct {
	CouponCode string `json:"coupon_code"`
	Notes      string `json:"notes"`
}

// QuoteRequest.Subtotal is a pointer so an explicit 0 passes binding.
type QuoteRequest struct {
	Subtotal   *float64 `json:"subtotal" binding:"required"`
	CouponCode string   `json:"coupon_code"`
}
