package request

import (
	"errors"
	"strings"

	"cleangod/internal/domain/entities"
	"cleangod/internal/usecase"
)

var (
	ErrInvalidItemType = errors.New("invalid item type")
	ErrInvalidQuantity = errors.New("invalid quantity")
)

// ItemRequest references a catalog item. It is used both to add a cart line
// and to start a booking draft.
type ItemRequest struct {
	Type      string `json:"type" binding:"required"`
	ID        string `json:"id" binding:"required"`
	VariantID string `json:"variant_id"`
	Quantity  int    `json:"quantity"`
}

// ToItemRef defaults a missing quantity to 1.
func (r ItemRequest) ToItemRef() (usecase.ItemRef, error) {
	t, err := ParseItemType(r.Type)
	if err != nil {
		return usecase.ItemRef{}, err
	}
	qty := r.Quantity
	if qty == 0 {
		qty = 1
	}
	if qty < 0 {
		return usecase.ItemRef{}, ErrInvalidQuantity
	}
	return usecase.ItemRef{
		Type:      t,
		ID:        strings.TrimSpace(r.ID),
		VariantID: strings.TrimSpace(r.VariantID),
		Quantity:  qty,
	}, nil
}

// UpdateCartItemRequest sets a line quantity. Zero or less removes the line.
type UpdateCartItemRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

func ParseItemType(raw string) (entities.ItemType, error) {
	t := entities.ItemType(strings.ToLower(strings.TrimSpace(raw)))
	if !t.Valid() {
		return "", ErrInvalidItemType
	}
	return t, nil
}
