package entities

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var ErrInvalidCartItem = errors.New("invalid cart item")

// ItemType distinguishes bookable services from shippable products.
type ItemType string

const (
	ItemTypeService ItemType = "service"
	ItemTypeProduct ItemType = "product"
)

func (t ItemType) Valid() bool {
	return t == ItemTypeService || t == ItemTypeProduct
}

// CartItem is one line of the cart. Uniqueness key is (ID, Type).
//
// Price is the unit price captured when the item was added; it may go stale
// and is corrected by a catalog refresh before checkout.
type CartItem struct {
	ID        string   `json:"id"`
	Type      ItemType `json:"type"`
	Quantity  int      `json:"quantity"`
	Price     float64  `json:"price"`
	Name      string   `json:"name"`
	VariantID string   `json:"variant_id,omitempty"`
}

// Cart is the per-device cart.
//
// Storage model (DynamoDB):
//   - PK: device_id
//
// The whole cart is one record; there is no cross-device or cross-tab merge,
// the last write for a device wins.
type Cart struct {
	DeviceID  string     `json:"device_id"`
	Items     []CartItem `json:"items"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func (c *Cart) indexOf(id string, t ItemType) int {
	for i, it := range c.Items {
		if it.ID == id && it.Type == t {
			return i
		}
	}
	return -1
}

// AddItem appends the item, or increments the quantity of the existing
// (id, type) line by the added quantity.
func (c *Cart) AddItem(item CartItem) error {
	item.ID = strings.TrimSpace(item.ID)
	if item.ID == "" || !item.Type.Valid() || item.Quantity < 1 || item.Price < 0 {
		return ErrInvalidCartItem
	}
	if i := c.indexOf(item.ID, item.Type); i >= 0 {
		c.Items[i].Quantity += item.Quantity
		return nil
	}
	c.Items = append(c.Items, item)
	return nil
}

// UpdateQuantity sets the quantity of a line; qty <= 0 removes it.
// Reports whether the line existed.
func (c *Cart) UpdateQuantity(id string, t ItemType, qty int) bool {
	i := c.indexOf(id, t)
	if i < 0 {
		return false
	}
	if qty <= 0 {
		c.Items = append(c.Items[:i], c.Items[i+1:]...)
		return true
	}
	c.Items[i].Quantity = qty
	return true
}

// RemoveItem reports whether the line existed.
func (c *Cart) RemoveItem(id string, t ItemType) bool {
	return c.UpdateQuantity(id, t, 0)
}

func (c *Cart) Clear() {
	c.Items = nil
}

// ItemCount is the sum of quantities, not the number of distinct lines.
func (c Cart) ItemCount() int {
	n := 0
	for _, it := range c.Items {
		n += it.Quantity
	}
	return n
}

// TotalAmount is Σ(price × quantity) over the captured prices.
func (c Cart) TotalAmount() float64 {
	total := decimal.Zero
	for _, it := range c.Items {
		total = total.Add(decimal.NewFromFloat(it.Price).Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return total.InexactFloat64()
}

func (c Cart) Find(id string, t ItemType) (CartItem, bool) {
	if i := c.indexOf(id, t); i >= 0 {
		return c.Items[i], true
	}
	return CartItem{}, false
}
