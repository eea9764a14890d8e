package interfaces

import (
	"cleangod/internal/domain/entities"
	"context"
)

// ICartStore is the per-device cart storage. Load returns an empty cart for
// an unknown device.

type ICartStore interface {
	Load(ctx context.Context, deviceID string) (entities.Cart, error)
	Save(ctx context.Context, cart entities.Cart) error
}
