package entities

import "strings"

type PricingTier struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	OriginalPrice float64 `json:"original_price"`
	SellingPrice  float64 `json:"selling_price"`
}

// Service is a bookable cleaning service.
// Duration is expressed in minutes.
type Service struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	CategoryID   string        `json:"category_id,omitempty"`
	PricingTiers []PricingTier `json:"pricing_tiers"`
	Duration     int           `json:"duration"`
	Images       []string      `json:"images,omitempty"`
}

// Tier resolves a pricing tier by id. An empty id selects the first tier.
func (s Service) Tier(id string) (PricingTier, bool) {
	id = strings.TrimSpace(id)
	if len(s.PricingTiers) == 0 {
		return PricingTier{}, false
	}
	if id == "" {
		return s.PricingTiers[0], true
	}
	for _, t := range s.PricingTiers {
		if t.ID == id {
			return t, true
		}
	}
	return PricingTier{}, false
}

type Product struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Price  float64  `json:"price"`
	Images []string `json:"images,omitempty"`
}
