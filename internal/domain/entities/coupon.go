package entities

import (
	"strings"
	"time"
)

type DiscountType string

const (
	DiscountTypeFixed      DiscountType = "fixed"
	DiscountTypePercentage DiscountType = "percentage"
)

// Coupon is read-only from the booking flow. It is applied by lookup and a
// snapshot is carried by the draft, never a reference.
//
// Storage model (DynamoDB):
//   - PK: code (upper case)
type Coupon struct {
	Code          string       `json:"code"`
	DiscountType  DiscountType `json:"discount_type"`
	DiscountValue float64      `json:"discount_value"`
	ValidFrom     *time.Time   `json:"valid_from,omitempty"`
	ValidTo       *time.Time   `json:"valid_to,omitempty"`
	Active        bool         `json:"active"`
}

func NormalizeCouponCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func (c Coupon) IsApplicable(now time.Time) bool {
	if !c.Active || c.DiscountValue <= 0 {
		return false
	}
	if c.DiscountType != DiscountTypeFixed && c.DiscountType != DiscountTypePercentage {
		return false
	}
	if c.ValidFrom != nil && now.Before(*c.ValidFrom) {
		return false
	}
	if c.ValidTo != nil && now.After(*c.ValidTo) {
		return false
	}
	return true
}

func (c Coupon) Snapshot() CouponSnapshot {
	return CouponSnapshot{
		Code:          NormalizeCouponCode(c.Code),
		DiscountType:  c.DiscountType,
		DiscountValue: c.DiscountValue,
	}
}

// CouponSnapshot is the part of a coupon the pricing rule needs.
type CouponSnapshot struct {
	Code          string       `json:"code"`
	DiscountType  DiscountType `json:"discount_type"`
	DiscountValue float64      `json:"discount_value"`
}
