// Package pricing holds the one pricing rule shared by the cart and the
// booking flows.
package pricing

import (
	"cleangod/internal/domain/entities"

	"github.com/shopspring/decimal"
)

const (
	DefaultTaxRate     = 0.18
	DefaultCapFraction = 0.20
)

type Config struct {
	// TaxRate applies to (subtotal - discount).
	TaxRate float64
	// CapFraction is the largest share of the subtotal a discount may take.
	CapFraction float64
}

func DefaultConfig() Config {
	return Config{TaxRate: DefaultTaxRate, CapFraction: DefaultCapFraction}
}

type Calculator struct {
	taxRate     decimal.Decimal
	capFraction decimal.Decimal
}

func NewCalculator(cfg Config) *Calculator {
	if cfg.TaxRate < 0 {
		cfg.TaxRate = 0
	}
	if cfg.CapFraction < 0 || cfg.CapFraction > 1 {
		cfg.CapFraction = DefaultCapFraction
	}
	return &Calculator{
		taxRate:     decimal.NewFromFloat(cfg.TaxRate),
		capFraction: decimal.NewFromFloat(cfg.CapFraction),
	}
}

// ComputeTotals derives discount, taxes and total from a subtotal and an
// optional coupon. It only depends on its inputs:
//
//	discount = floor(min(couponDiscount, subtotal × capFraction))
//	taxes    = round((subtotal − discount) × taxRate)
//	total    = subtotal − discount + taxes
//
// The discount is rounded down to whole currency units after the cap is
// applied; taxes round half away from zero.
func (c *Calculator) ComputeTotals(subtotal float64, coupon *entities.CouponSnapshot) entities.Totals {
	sub := decimal.NewFromFloat(subtotal)
	if sub.IsNegative() {
		sub = decimal.Zero
	}

	discount := c.discount(sub, coupon)
	taxes := sub.Sub(discount).Mul(c.taxRate).Round(0)
	total := sub.Sub(discount).Add(taxes)

	return entities.Totals{
		Subtotal: sub.InexactFloat64(),
		Discount: discount.InexactFloat64(),
		Taxes:    taxes.InexactFloat64(),
		Total:    total.InexactFloat64(),
	}
}

func (c *Calculator) discount(sub decimal.Decimal, coupon *entities.CouponSnapshot) decimal.Decimal {
	if coupon == nil || coupon.DiscountValue <= 0 {
		return decimal.Zero
	}
	value := decimal.NewFromFloat(coupon.DiscountValue)

	var d decimal.Decimal
	switch coupon.DiscountType {
	case entities.DiscountTypeFixed:
		d = value
	case entities.DiscountTypePercentage:
		d = sub.Mul(value).Div(decimal.NewFromInt(100))
	default:
		return decimal.Zero
	}

	if ceiling := sub.Mul(c.capFraction); d.GreaterThan(ceiling) {
		d = ceiling
	}
	return d.Floor()
}
