package response

import (
	"time"

	"cleangod/internal/usecase"
)

type CartItemResponse struct {
	ID        string  `json:"id"`
	Type      string  `json:"type"`
	VariantID string  `json:"variant_id,omitempty"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

type CartResponse struct {
	DeviceID    string             `json:"device_id"`
	Items       []CartItemResponse `json:"items"`
	ItemCount   int                `json:"item_count"`
	TotalAmount float64            `json:"total_amount"`
	UpdatedAt   *time.Time         `json:"updated_at,omitempty"`
}

func FromCartView(v usecase.CartView) CartResponse {
	items := make([]CartItemResponse, 0, len(v.Cart.Items))
	for _, it := range v.Cart.Items {
		items = append(items, CartItemResponse{
			ID:        it.ID,
			Type:      string(it.Type),
			VariantID: it.VariantID,
			Name:      it.Name,
			Price:     it.Price,
			Quantity:  it.Quantity,
		})
	}
	res := CartResponse{
		DeviceID:    v.Cart.DeviceID,
		Items:       items,
		ItemCount:   v.ItemCount,
		TotalAmount: v.TotalAmount,
	}
	if !v.Cart.UpdatedAt.IsZero() {
		updated := v.Cart.UpdatedAt
		res.UpdatedAt = &updated
	}
	return res
}
