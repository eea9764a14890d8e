package interfaces

import (
	"cleangod/internal/domain/entities"
	"context"
)

// ICouponRepository is the single source of truth for coupons.
//
// GetByCode expects a normalized (upper case) code and returns a zero Coupon
// when it does not exist.

type ICouponRepository interface {
	ListActive(ctx context.Context) ([]entities.Coupon, error)
	GetByCode(ctx context.Context, code string) (entities.Coupon, error)
	Seed(ctx context.Context, c entities.Coupon) error
}
