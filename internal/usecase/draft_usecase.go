package usecase

import (
	"context"
	"errors"
	"log"
	"slices"
	"strings"
	"time"

	"cleangod/internal/domain/entities"
	"cleangod/internal/domain/pricing"
	"cleangod/internal/usecase/interfaces"

	"github.com/google/uuid"
)

const scheduleDateLayout = "2006-01-02"

var (
	ErrInvalidSessionID = errors.New("invalid session id")
	ErrInvalidTimeSlot  = errors.New("invalid time slot")
	ErrInvalidSchedule  = errors.New("invalid schedule date")
)

// PaymentSummary is the draft after the payment step plus whether the
// entered coupon code was applied.
type PaymentSummary struct {
	Draft         entities.BookingDraft
	CouponApplied bool
}

// IDraftUseCase drives the booking wizard: services -> time -> address ->
// payment. Each step loads the session draft, checks the previous steps are
// done and saves the result.
type IDraftUseCase interface {
	Begin(ctx context.Context, sessionID string, ref ItemRef) (entities.BookingDraft, error)
	Get(ctx context.Context, sessionID string) (entities.BookingDraft, error)
	ChooseTime(ctx context.Context, sessionID, date, slot string) (entities.BookingDraft, error)
	ChooseAddress(ctx context.Context, sessionID, userID, addressID string) (entities.BookingDraft, error)
	PreparePayment(ctx context.Context, sessionID, couponCode, notes string) (PaymentSummary, error)
	Discard(ctx context.Context, sessionID string) error
	TimeSlots() []string
}

type DraftUseCase struct {
	store      interfaces.IDraftStore
	catalog    ICatalogUseCase
	addresses  IAddressUseCase
	coupons    ICouponUseCase
	calculator *pricing.Calculator
	slots      []string
	now        func() time.Time
}

var _ IDraftUseCase = (*DraftUseCase)(nil)

func NewDraftUseCase(store interfaces.IDraftStore, catalog ICatalogUseCase, addresses IAddressUseCase, coupons ICouponUseCase, calculator *pricing.Calculator, slots []string) *DraftUseCase {
	return &DraftUseCase{
		store:      store,
		catalog:    catalog,
		addresses:  addresses,
		coupons:    coupons,
		calculator: calculator,
		slots:      slots,
		now:        time.Now,
	}
}

func (u *DraftUseCase) TimeSlots() []string {
	return slices.Clone(u.slots)
}

// Begin starts a new draft for the session, replacing any previous one.
func (u *DraftUseCase) Begin(ctx context.Context, sessionID string, ref ItemRef) (entities.BookingDraft, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return entities.BookingDraft{}, ErrInvalidSessionID
	}
	if ref.Quantity < 0 {
		return entities.BookingDraft{}, ErrInvalidItemRef
	}
	item, err := u.catalog.ResolveItem(ctx, ref)
	if err != nil {
		return entities.BookingDraft{}, err
	}

	d := entities.NewBookingDraft(sessionID, uuid.NewString(), entities.DraftItem{
		Type:      item.Type,
		ID:        item.ID,
		VariantID: item.VariantID,
		Name:      item.Name,
		UnitPrice: item.UnitPrice,
		Quantity:  ref.Quantity,
		Duration:  item.Duration,
	}, u.now().UTC())
	if err := u.store.Save(ctx, d); err != nil {
		log.Printf("[draft][usecase] save failed session_id=%s err=%v", sessionID, err)
		return entities.BookingDraft{}, err
	}
	log.Printf("[draft][usecase] begun session_id=%s type=%s id=%s", sessionID, item.Type, item.ID)
	return d, nil
}

func (u *DraftUseCase) Get(ctx context.Context, sessionID string) (entities.BookingDraft, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return entities.BookingDraft{}, ErrInvalidSessionID
	}
	d, found, err := u.store.Load(ctx, sessionID)
	if err != nil {
		log.Printf("[draft][usecase] load failed session_id=%s err=%v", sessionID, err)
		return entities.BookingDraft{}, err
	}
	if !found {
		return entities.BookingDraft{}, &entities.StepError{Redirect: entities.StepServices}
	}
	return d, nil
}

func (u *DraftUseCase) ChooseTime(ctx context.Context, sessionID, date, slot string) (entities.BookingDraft, error) {
	d, err := u.Get(ctx, sessionID)
	if err != nil {
		return entities.BookingDraft{}, err
	}
	if err := d.Require(entities.StageNotStarted); err != nil {
		return entities.BookingDraft{}, err
	}
	date, slot = strings.TrimSpace(date), strings.TrimSpace(slot)
	if err := u.validateSchedule(date, slot); err != nil {
		return entities.BookingDraft{}, err
	}

	next, err := d.WithTime(date, slot, u.now().UTC())
	if err != nil {
		return entities.BookingDraft{}, err
	}
	if err := u.store.Save(ctx, next); err != nil {
		return entities.BookingDraft{}, err
	}
	return next, nil
}

// validateSchedule accepts a configured slot on today or a later date. A slot
// earlier than the current time today is rejected.
func (u *DraftUseCase) validateSchedule(date, slot string) error {
	if !slices.Contains(u.slots, slot) {
		return ErrInvalidTimeSlot
	}
	now := u.now()
	day, err := time.ParseInLocation(scheduleDateLayout, date, now.Location())
	if err != nil {
		return ErrInvalidSchedule
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if day.Before(today) {
		return ErrInvalidSchedule
	}
	if day.Equal(today) {
		at, err := time.ParseInLocation(scheduleDateLayout+" 15:04", date+" "+slot, now.Location())
		if err != nil {
			return ErrInvalidTimeSlot
		}
		if !at.After(now) {
			return ErrInvalidTimeSlot
		}
	}
	return nil
}

func (u *DraftUseCase) ChooseAddress(ctx context.Context, sessionID, userID, addressID string) (entities.BookingDraft, error) {
	if strings.TrimSpace(userID) == "" {
		return entities.BookingDraft{}, ErrUnauthenticated
	}
	d, err := u.Get(ctx, sessionID)
	if err != nil {
		return entities.BookingDraft{}, err
	}
	if err := d.Require(entities.StageTimeChosen); err != nil {
		return entities.BookingDraft{}, err
	}
	addr, err := u.addresses.Get(ctx, userID, addressID)
	if err != nil {
		return entities.BookingDraft{}, err
	}

	next, err := d.WithAddress(addr, u.now().UTC())
	if err != nil {
		return entities.BookingDraft{}, err
	}
	if err := u.store.Save(ctx, next); err != nil {
		return entities.BookingDraft{}, err
	}
	return next, nil
}

// PreparePayment resolves the coupon, computes the totals the customer will
// be shown and stores both with the draft. Submission charges exactly these.
func (u *DraftUseCase) PreparePayment(ctx context.Context, sessionID, couponCode, notes string) (PaymentSummary, error) {
	d, err := u.Get(ctx, sessionID)
	if err != nil {
		return PaymentSummary{}, err
	}
	if err := d.Require(entities.StageAddressChosen); err != nil {
		return PaymentSummary{}, err
	}
	coupon, err := u.coupons.Resolve(ctx, couponCode)
	if err != nil {
		return PaymentSummary{}, err
	}
	totals := u.calculator.ComputeTotals(d.Subtotal(), coupon)

	next, err := d.WithPayment(coupon, strings.TrimSpace(notes), totals, u.now().UTC())
	if err != nil {
		return PaymentSummary{}, err
	}
	if err := u.store.Save(ctx, next); err != nil {
		return PaymentSummary{}, err
	}
	log.Printf("[draft][usecase] payment prepared session_id=%s coupon_applied=%t total=%.2f", next.SessionID, coupon != nil, totals.Total)
	return PaymentSummary{Draft: next, CouponApplied: coupon != nil}, nil
}

func (u *DraftUseCase) Discard(ctx context.Context, sessionID string) error {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return ErrInvalidSessionID
	}
	return u.store.Delete(ctx, sessionID)
}
