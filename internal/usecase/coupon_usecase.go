package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"cleangod/internal/domain/entities"
	"cleangod/internal/domain/pricing"
	"cleangod/internal/usecase/interfaces"
)

var ErrInvalidSubtotal = errors.New("invalid subtotal")

// Quote is the result of pricing a subtotal with an optional coupon code.
// CouponApplied is false when the code is empty, unknown or not applicable.
type Quote struct {
	Totals        entities.Totals
	CouponCode    string
	CouponApplied bool
}

type ICouponUseCase interface {
	ListActive(ctx context.Context) ([]entities.Coupon, error)
	Resolve(ctx context.Context, code string) (*entities.CouponSnapshot, error)
	Quote(ctx context.Context, subtotal float64, code string) (Quote, error)
	SeedPromotions(ctx context.Context, coupons []entities.Coupon) error
}

type CouponUseCase struct {
	repo       interfaces.ICouponRepository
	calculator *pricing.Calculator
	now        func() time.Time
}

var _ ICouponUseCase = (*CouponUseCase)(nil)

func NewCouponUseCase(repo interfaces.ICouponRepository, calculator *pricing.Calculator) *CouponUseCase {
	return &CouponUseCase{repo: repo, calculator: calculator, now: time.Now}
}

func (u *CouponUseCase) ListActive(ctx context.Context) ([]entities.Coupon, error) {
	all, err := u.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	now := u.now()
	out := make([]entities.Coupon, 0, len(all))
	for _, c := range all {
		if c.IsApplicable(now) {
			out = append(out, c)
		}
	}
	return out, nil
}

// Resolve returns the snapshot of an applicable coupon, or nil when the code
// is empty, unknown, inactive or outside its validity window.
func (u *CouponUseCase) Resolve(ctx context.Context, code string) (*entities.CouponSnapshot, error) {
	code = entities.NormalizeCouponCode(code)
	if code == "" {
		return nil, nil
	}
	c, err := u.repo.GetByCode(ctx, code)
	if err != nil {
		log.Printf("[coupon][usecase] lookup failed code=%s err=%v", code, err)
		return nil, err
	}
	if c.Code == "" {
		log.Printf("[coupon][usecase] unknown code=%s", code)
		return nil, nil
	}
	if !c.IsApplicable(u.now()) {
		log.Printf("[coupon][usecase] not applicable code=%s active=%t", code, c.Active)
		return nil, nil
	}
	snap := c.Snapshot()
	return &snap, nil
}

func (u *CouponUseCase) Quote(ctx context.Context, subtotal float64, code string) (Quote, error) {
	if subtotal < 0 {
		return Quote{}, ErrInvalidSubtotal
	}
	snap, err := u.Resolve(ctx, code)
	if err != nil {
		return Quote{}, err
	}
	q := Quote{Totals: u.calculator.ComputeTotals(subtotal, snap)}
	if snap != nil {
		q.CouponCode = snap.Code
		q.CouponApplied = true
	}
	return q, nil
}

// SeedPromotions writes configured promo coupons. Existing codes are kept as
// stored so admin edits survive a restart.
func (u *CouponUseCase) SeedPromotions(ctx context.Context, coupons []entities.Coupon) error {
	var errs []error
	for _, c := range coupons {
		c.Code = entities.NormalizeCouponCode(c.Code)
		if c.Code == "" {
			continue
		}
		if err := u.repo.Seed(ctx, c); err != nil {
			log.Printf("[coupon][usecase] seed failed code=%s err=%v", c.Code, err)
			errs = append(errs, err)
			continue
		}
		log.Printf("[coupon][usecase] seeded code=%s type=%s value=%.2f", c.Code, c.DiscountType, c.DiscountValue)
	}
	return errors.Join(errs...)
}
