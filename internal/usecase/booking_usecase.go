package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"cleangod/internal/domain/entities"
	"cleangod/internal/domain/pricing"
	"cleangod/internal/usecase/interfaces"
)

const (
	EventBookingCreated       = "booking.created"
	EventBookingStatusChanged = "booking.status_changed"
)

var (
	ErrInvalidBookingID        = errors.New("invalid booking id")
	ErrBookingNotFound         = errors.New("booking not found")
	ErrSubmissionInProgress    = errors.New("submission already in progress")
	ErrBookingCreateFailed     = errors.New("booking could not be created")
	ErrInvalidStatusPatch      = errors.New("invalid status patch")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
)

// BookingEvent is the payload published on booking lifecycle changes.
type BookingEvent struct {
	BookingID     string                 `json:"booking_id"`
	CustomerID    string                 `json:"customer_id"`
	Status        entities.BookingStatus `json:"status"`
	PaymentStatus entities.PaymentStatus `json:"payment_status"`
	TotalAmount   float64                `json:"total_amount"`
	ScheduledDate string                 `json:"scheduled_date"`
	ScheduledTime string                 `json:"scheduled_time"`
	OccurredAt    time.Time              `json:"occurred_at"`
}

func newBookingEvent(b entities.Booking, at time.Time) BookingEvent {
	return BookingEvent{
		BookingID:     b.ID,
		CustomerID:    b.CustomerID,
		Status:        b.Status,
		PaymentStatus: b.PaymentStatus,
		TotalAmount:   b.TotalAmount,
		ScheduledDate: b.ScheduledDate,
		ScheduledTime: b.ScheduledTime,
		OccurredAt:    at,
	}
}

// IBookingUseCase turns a complete draft into a booking and serves the
// booking afterwards.
//
// Submission requires a signed-in user and a draft that passed every wizard
// step. The booking is created exactly once per draft; the create call is
// never retried.
type IBookingUseCase interface {
	Submit(ctx context.Context, sessionID, deviceID string, user entities.User) (entities.Booking, error)
	GetForCustomer(ctx context.Context, id string, user entities.User) (entities.Booking, error)
	ListForCustomer(ctx context.Context, user entities.User) ([]entities.Booking, error)
	UpdateStatus(ctx context.Context, id string, patch entities.BookingStatusPatch) (entities.Booking, error)
}

type BookingUseCase struct {
	repo       interfaces.IBookingRepository
	drafts     interfaces.IDraftStore
	carts      interfaces.ICartStore
	publisher  interfaces.IEventPublisher
	calculator *pricing.Calculator
	now        func() time.Time
}

var _ IBookingUseCase = (*BookingUseCase)(nil)

func NewBookingUseCase(repo interfaces.IBookingRepository, drafts interfaces.IDraftStore, carts interfaces.ICartStore, publisher interfaces.IEventPublisher, calculator *pricing.Calculator) *BookingUseCase {
	return &BookingUseCase{
		repo:       repo,
		drafts:     drafts,
		carts:      carts,
		publisher:  publisher,
		calculator: calculator,
		now:        time.Now,
	}
}

func (u *BookingUseCase) Submit(ctx context.Context, sessionID, deviceID string, user entities.User) (entities.Booking, error) {
	if strings.TrimSpace(user.ID) == "" {
		return entities.Booking{}, ErrUnauthenticated
	}
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return entities.Booking{}, ErrInvalidSessionID
	}
	log.Printf("[booking][usecase] submit start session_id=%s user_id=%s", sessionID, user.ID)

	draft, found, err := u.drafts.Load(ctx, sessionID)
	if err != nil {
		log.Printf("[booking][usecase] draft load failed session_id=%s err=%v", sessionID, err)
		return entities.Booking{}, err
	}
	if !found {
		return entities.Booking{}, &entities.StepError{Redirect: entities.StepServices}
	}
	if err := draft.RequireReady(); err != nil {
		log.Printf("[booking][usecase] draft incomplete session_id=%s next=%s", sessionID, draft.NextStep())
		return entities.Booking{}, err
	}

	locked, err := u.drafts.AcquireSubmitLock(ctx, sessionID)
	if err != nil {
		return entities.Booking{}, err
	}
	if !locked {
		log.Printf("[booking][usecase] submit rejected, in flight session_id=%s", sessionID)
		return entities.Booking{}, ErrSubmissionInProgress
	}
	defer func() {
		if err := u.drafts.ReleaseSubmitLock(context.WithoutCancel(ctx), sessionID); err != nil {
			log.Printf("[booking][usecase] releasing submit lock failed session_id=%s err=%v", sessionID, err)
		}
	}()

	// Re-read under the lock: a concurrent submission may have consumed the
	// draft between the first read and the lock.
	current, found, err := u.drafts.Load(ctx, sessionID)
	if err != nil {
		return entities.Booking{}, err
	}
	if !found {
		return u.submitted(ctx, draft, deviceID, user)
	}
	if err := current.RequireReady(); err != nil {
		return entities.Booking{}, err
	}
	draft = current

	existing, err := u.repo.GetByID(ctx, draft.IdempotencyKey)
	if err != nil {
		return entities.Booking{}, err
	}
	if existing.ID != "" {
		return u.resubmitted(ctx, existing, draft, deviceID, user)
	}

	totals := u.calculator.ComputeTotals(draft.Subtotal(), draft.Coupon)
	if totals != *draft.Totals {
		// Pricing changed since the customer saw the payment page.
		log.Printf("[booking][usecase] totals changed session_id=%s shown=%.2f now=%.2f", sessionID, draft.Totals.Total, totals.Total)
		return entities.Booking{}, &entities.StepError{Redirect: entities.StepPayment}
	}

	now := u.now().UTC()
	b := entities.Booking{
		ID:         draft.IdempotencyKey,
		CustomerID: user.ID,
		Item: entities.BookingItem{
			Type:      draft.Item.Type,
			ID:        draft.Item.ID,
			VariantID: draft.Item.VariantID,
			Name:      draft.Item.Name,
			UnitPrice: draft.Item.UnitPrice,
			Quantity:  draft.Item.Quantity,
		},
		Address:        *draft.Address,
		ScheduledDate:  draft.ScheduledDate,
		ScheduledTime:  draft.ScheduledTime,
		Duration:       draft.Item.Duration,
		Notes:          draft.Notes,
		Subtotal:       totals.Subtotal,
		Discount:       totals.Discount,
		Taxes:          totals.Taxes,
		TotalAmount:    totals.Total,
		Status:         entities.BookingStatusPending,
		PaymentStatus:  entities.PaymentStatusPending,
		IdempotencyKey: draft.IdempotencyKey,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if draft.Coupon != nil {
		b.CouponCode = draft.Coupon.Code
	}

	created, err := u.repo.Create(ctx, b)
	if errors.Is(err, interfaces.ErrBookingExists) {
		log.Printf("[booking][usecase] booking already stored session_id=%s booking_id=%s", sessionID, b.ID)
		return u.submitted(ctx, draft, deviceID, user)
	}
	if err != nil {
		// The draft is kept so the customer can retry from the confirmation page.
		log.Printf("[booking][usecase] create failed session_id=%s err=%v", sessionID, err)
		return entities.Booking{}, fmt.Errorf("%w: %v", ErrBookingCreateFailed, err)
	}
	log.Printf("[booking][usecase] created booking_id=%s user_id=%s total=%.2f", created.ID, created.CustomerID, created.TotalAmount)

	u.finalize(ctx, draft, deviceID)
	u.publish(ctx, EventBookingCreated, created)
	return created, nil
}

// submitted returns the booking an earlier submission created from draft.
func (u *BookingUseCase) submitted(ctx context.Context, draft entities.BookingDraft, deviceID string, user entities.User) (entities.Booking, error) {
	existing, err := u.repo.GetByID(ctx, draft.IdempotencyKey)
	if err != nil {
		return entities.Booking{}, err
	}
	if existing.ID == "" {
		return entities.Booking{}, &entities.StepError{Redirect: entities.StepServices}
	}
	return u.resubmitted(ctx, existing, draft, deviceID, user)
}

func (u *BookingUseCase) resubmitted(ctx context.Context, existing entities.Booking, draft entities.BookingDraft, deviceID string, user entities.User) (entities.Booking, error) {
	if existing.CustomerID != user.ID {
		return entities.Booking{}, ErrBookingNotFound
	}
	log.Printf("[booking][usecase] draft already submitted session_id=%s booking_id=%s", draft.SessionID, existing.ID)
	u.finalize(ctx, draft, deviceID)
	return existing, nil
}

// finalize clears the draft and the booked line from the device cart. The
// booking already exists, so failures are only logged.
func (u *BookingUseCase) finalize(ctx context.Context, draft entities.BookingDraft, deviceID string) {
	if err := u.drafts.Delete(ctx, draft.SessionID); err != nil {
		log.Printf("[booking][usecase] draft delete failed session_id=%s err=%v", draft.SessionID, err)
	}

	deviceID = strings.TrimSpace(deviceID)
	if deviceID == "" || u.carts == nil {
		return
	}
	cart, err := u.carts.Load(ctx, deviceID)
	if err != nil {
		log.Printf("[booking][usecase] cart load failed device_id=%s err=%v", deviceID, err)
		return
	}
	if !cart.RemoveItem(draft.Item.ID, draft.Item.Type) {
		return
	}
	cart.DeviceID = deviceID
	cart.UpdatedAt = u.now().UTC()
	if err := u.carts.Save(ctx, cart); err != nil {
		log.Printf("[booking][usecase] cart save failed device_id=%s err=%v", deviceID, err)
	}
}

func (u *BookingUseCase) publish(ctx context.Context, routingKey string, b entities.Booking) {
	if u.publisher == nil {
		return
	}
	if err := u.publisher.Publish(ctx, routingKey, newBookingEvent(b, u.now().UTC())); err != nil {
		log.Printf("[booking][usecase] publish failed key=%s booking_id=%s err=%v", routingKey, b.ID, err)
	}
}

// GetForCustomer returns the booking only to its owner or an admin. Other
// users get ErrBookingNotFound so ids cannot be guessed.
func (u *BookingUseCase) GetForCustomer(ctx context.Context, id string, user entities.User) (entities.Booking, error) {
	if strings.TrimSpace(user.ID) == "" {
		return entities.Booking{}, ErrUnauthenticated
	}
	b, err := u.get(ctx, id)
	if err != nil {
		return entities.Booking{}, err
	}
	if b.CustomerID != user.ID && !user.IsAdmin() {
		return entities.Booking{}, ErrBookingNotFound
	}
	return b, nil
}

func (u *BookingUseCase) get(ctx context.Context, id string) (entities.Booking, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Booking{}, ErrInvalidBookingID
	}
	b, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Booking{}, err
	}
	if b.ID == "" {
		return entities.Booking{}, ErrBookingNotFound
	}
	return b, nil
}

func (u *BookingUseCase) ListForCustomer(ctx context.Context, user entities.User) ([]entities.Booking, error) {
	if strings.TrimSpace(user.ID) == "" {
		return nil, ErrUnauthenticated
	}
	return u.repo.ListByCustomerID(ctx, user.ID)
}

// UpdateStatus moves the booking and/or payment status along their allowed
// transitions. Setting a field to its current value is a no-op for it.
func (u *BookingUseCase) UpdateStatus(ctx context.Context, id string, patch entities.BookingStatusPatch) (entities.Booking, error) {
	if patch.Empty() {
		return entities.Booking{}, ErrInvalidStatusPatch
	}
	if patch.Status != nil && !patch.Status.Valid() {
		return entities.Booking{}, ErrInvalidStatusPatch
	}
	if patch.PaymentStatus != nil && !patch.PaymentStatus.Valid() {
		return entities.Booking{}, ErrInvalidStatusPatch
	}

	current, err := u.get(ctx, id)
	if err != nil {
		return entities.Booking{}, err
	}

	effective := entities.BookingStatusPatch{}
	if patch.Status != nil && *patch.Status != current.Status {
		if !current.Status.CanTransitionTo(*patch.Status) {
			log.Printf("[booking][usecase] rejected transition booking_id=%s from=%s to=%s", current.ID, current.Status, *patch.Status)
			return entities.Booking{}, ErrInvalidStatusTransition
		}
		effective.Status = patch.Status
	}
	if patch.PaymentStatus != nil && *patch.PaymentStatus != current.PaymentStatus {
		if !current.PaymentStatus.CanTransitionTo(*patch.PaymentStatus) {
			log.Printf("[booking][usecase] rejected payment transition booking_id=%s from=%s to=%s", current.ID, current.PaymentStatus, *patch.PaymentStatus)
			return entities.Booking{}, ErrInvalidStatusTransition
		}
		effective.PaymentStatus = patch.PaymentStatus
	}
	if effective.Empty() {
		return current, nil
	}

	updated, err := u.repo.UpdateStatus(ctx, current.ID, effective)
	if err != nil {
		return entities.Booking{}, err
	}
	if updated.ID == "" {
		return entities.Booking{}, ErrBookingNotFound
	}
	log.Printf("[booking][usecase] status updated booking_id=%s status=%s payment_status=%s", updated.ID, updated.Status, updated.PaymentStatus)
	u.publish(ctx, EventBookingStatusChanged, updated)
	return updated, nil
}
