package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"cleangod/internal/domain/entities"
	"cleangod/internal/usecase/interfaces"
)

var (
	ErrInvalidDeviceID   = errors.New("invalid device id")
	ErrCartItemNotFound  = errors.New("cart item not found")
	ErrInvalidCartChange = errors.New("invalid cart change")
)

// CartView is the cart with its derived values.
type CartView struct {
	Cart        entities.Cart
	ItemCount   int
	TotalAmount float64
}

func newCartView(c entities.Cart) CartView {
	return CartView{Cart: c, ItemCount: c.ItemCount(), TotalAmount: c.TotalAmount()}
}

// ICartUseCase manages the per-device cart.
//
// Prices are captured from the catalog when an item is added and refreshed
// each time the cart is viewed.
type ICartUseCase interface {
	Get(ctx context.Context, deviceID string) (CartView, error)
	AddItem(ctx context.Context, deviceID string, ref ItemRef) (CartView, error)
	UpdateQuantity(ctx context.Context, deviceID string, t entities.ItemType, id string, qty int) (CartView, error)
	RemoveItem(ctx context.Context, deviceID string, t entities.ItemType, id string) (CartView, error)
	Clear(ctx context.Context, deviceID string) error
}

type CartUseCase struct {
	store   interfaces.ICartStore
	catalog ICatalogUseCase
	now     func() time.Time
}

var _ ICartUseCase = (*CartUseCase)(nil)

func NewCartUseCase(store interfaces.ICartStore, catalog ICatalogUseCase) *CartUseCase {
	return &CartUseCase{store: store, catalog: catalog, now: time.Now}
}

func (u *CartUseCase) load(ctx context.Context, deviceID string) (entities.Cart, error) {
	deviceID = strings.TrimSpace(deviceID)
	if deviceID == "" {
		return entities.Cart{}, ErrInvalidDeviceID
	}
	c, err := u.store.Load(ctx, deviceID)
	if err != nil {
		log.Printf("[cart][usecase] load failed device_id=%s err=%v", deviceID, err)
		return entities.Cart{}, err
	}
	c.DeviceID = deviceID
	return c, nil
}

func (u *CartUseCase) save(ctx context.Context, c entities.Cart) (CartView, error) {
	c.UpdatedAt = u.now().UTC()
	if err := u.store.Save(ctx, c); err != nil {
		log.Printf("[cart][usecase] save failed device_id=%s err=%v", c.DeviceID, err)
		return CartView{}, err
	}
	return newCartView(c), nil
}

// Get returns the cart with unit prices refreshed from the catalog. Lines
// whose item no longer exists are dropped. The cart is saved only when the
// refresh changed something.
func (u *CartUseCase) Get(ctx context.Context, deviceID string) (CartView, error) {
	c, err := u.load(ctx, deviceID)
	if err != nil {
		return CartView{}, err
	}
	refreshed, changed := u.refreshPrices(ctx, c)
	if !changed {
		return newCartView(refreshed), nil
	}
	return u.save(ctx, refreshed)
}

func (u *CartUseCase) refreshPrices(ctx context.Context, c entities.Cart) (entities.Cart, bool) {
	changed := false
	items := make([]entities.CartItem, 0, len(c.Items))
	for _, it := range c.Items {
		current, err := u.catalog.ResolveItem(ctx, ItemRef{Type: it.Type, ID: it.ID, VariantID: it.VariantID})
		switch {
		case errors.Is(err, ErrServiceNotFound), errors.Is(err, ErrProductNotFound), errors.Is(err, ErrPricingTierUnknown):
			log.Printf("[cart][usecase] dropping missing item device_id=%s type=%s id=%s", c.DeviceID, it.Type, it.ID)
			changed = true
			continue
		case err != nil:
			// Catalog unavailable: keep the captured price.
			log.Printf("[cart][usecase] refresh skipped device_id=%s type=%s id=%s err=%v", c.DeviceID, it.Type, it.ID, err)
			items = append(items, it)
			continue
		}
		if current.UnitPrice != it.Price || current.Name != it.Name {
			it.Price = current.UnitPrice
			it.Name = current.Name
			changed = true
		}
		items = append(items, it)
	}
	c.Items = items
	return c, changed
}

func (u *CartUseCase) AddItem(ctx context.Context, deviceID string, ref ItemRef) (CartView, error) {
	if ref.Quantity == 0 {
		ref.Quantity = 1
	}
	if ref.Quantity < 0 || !ref.Type.Valid() || strings.TrimSpace(ref.ID) == "" {
		return CartView{}, ErrInvalidCartChange
	}
	c, err := u.load(ctx, deviceID)
	if err != nil {
		return CartView{}, err
	}
	item, err := u.catalog.ResolveItem(ctx, ref)
	if err != nil {
		return CartView{}, err
	}
	if err := c.AddItem(entities.CartItem{
		ID:        item.ID,
		Type:      item.Type,
		Quantity:  ref.Quantity,
		Price:     item.UnitPrice,
		Name:      item.Name,
		VariantID: item.VariantID,
	}); err != nil {
		return CartView{}, ErrInvalidCartChange
	}
	log.Printf("[cart][usecase] item added device_id=%s type=%s id=%s qty=%d", c.DeviceID, item.Type, item.ID, ref.Quantity)
	return u.save(ctx, c)
}

// UpdateQuantity sets a line quantity; a quantity of zero or less removes the line.
func (u *CartUseCase) UpdateQuantity(ctx context.Context, deviceID string, t entities.ItemType, id string, qty int) (CartView, error) {
	if !t.Valid() || strings.TrimSpace(id) == "" {
		return CartView{}, ErrInvalidCartChange
	}
	c, err := u.load(ctx, deviceID)
	if err != nil {
		return CartView{}, err
	}
	if !c.UpdateQuantity(strings.TrimSpace(id), t, qty) {
		return CartView{}, ErrCartItemNotFound
	}
	return u.save(ctx, c)
}

func (u *CartUseCase) RemoveItem(ctx context.Context, deviceID string, t entities.ItemType, id string) (CartView, error) {
	return u.UpdateQuantity(ctx, deviceID, t, id, 0)
}

func (u *CartUseCase) Clear(ctx context.Context, deviceID string) error {
	c, err := u.load(ctx, deviceID)
	if err != nil {
		return err
	}
	c.Clear()
	_, err = u.save(ctx, c)
	return err
}
