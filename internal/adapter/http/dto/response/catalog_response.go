package response

import (
	"time"

	"cleangod/internal/domain/entities"
	"cleangod/internal/usecase"
)

type PricingTierResponse struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	OriginalPrice float64 `json:"original_price"`
	SellingPrice  float64 `json:"selling_price"`
}

type ServiceResponse struct {
	ID           string                `json:"id"`
	Name         string                `json:"name"`
	CategoryID   string                `json:"category_id,omitempty"`
	PricingTiers []PricingTierResponse `json:"pricing_tiers"`
	Duration     int                   `json:"duration"`
	Images       []string              `json:"images,omitempty"`
}

type ProductResponse struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Price  float64  `json:"price"`
	Images []string `json:"images,omitempty"`
}

func FromService(s entities.Service) ServiceResponse {
	tiers := make([]PricingTierResponse, 0, len(s.PricingTiers))
	for _, t := range s.PricingTiers {
		tiers = append(tiers, PricingTierResponse{ID: t.ID, Name: t.Name, OriginalPrice: t.OriginalPrice, SellingPrice: t.SellingPrice})
	}
	return ServiceResponse{
		ID:           s.ID,
		Name:         s.Name,
		CategoryID:   s.CategoryID,
		PricingTiers: tiers,
		Duration:     s.Duration,
		Images:       s.Images,
	}
}

func FromProduct(p entities.Product) ProductResponse {
	return ProductResponse{ID: p.ID, Name: p.Name, Price: p.Price, Images: p.Images}
}

type CouponResponse struct {
	Code          string     `json:"code"`
	DiscountType  string     `json:"discount_type"`
	DiscountValue float64    `json:"discount_value"`
	ValidFrom     *time.Time `json:"valid_from,omitempty"`
	ValidTo       *time.Time `json:"valid_to,omitempty"`
}

func FromCoupons(list []entities.Coupon) []CouponResponse {
	out := make([]CouponResponse, 0, len(list))
	for _, c := range list {
		out = append(out, CouponResponse{
			Code:          c.Code,
			DiscountType:  string(c.DiscountType),
			DiscountValue: c.DiscountValue,
			ValidFrom:     c.ValidFrom,
			ValidTo:       c.ValidTo,
		})
	}
	return out
}

type QuoteResponse struct {
	TotalsResponse
	CouponCode    string `json:"coupon_code,omitempty"`
	CouponApplied bool   `json:"coupon_applied"`
}

func FromQuote(q usecase.Quote) QuoteResponse {
	return QuoteResponse{TotalsResponse: FromTotals(q.Totals), CouponCode: q.CouponCode, CouponApplied: q.CouponApplied}
}
