package entities

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

var ErrStepOutOfOrder = errors.New("booking step out of order")

// WizardStage is the state of a booking draft. Stages are ordered; each one
// implies every earlier one is complete.
type WizardStage string

const (
	StageNotStarted    WizardStage = "not_started"
	StageTimeChosen    WizardStage = "time_chosen"
	StageAddressChosen WizardStage = "address_chosen"
	StageReady         WizardStage = "ready"
)

func (s WizardStage) rank() int {
	switch s {
	case StageNotStarted:
		return 1
	case StageTimeChosen:
		return 2
	case StageAddressChosen:
		return 3
	case StageReady:
		return 4
	}
	return 0
}

// WizardStep names the page a client has to show next.
type WizardStep string

const (
	StepServices     WizardStep = "services"
	StepTime         WizardStep = "time"
	StepAddress      WizardStep = "address"
	StepPayment      WizardStep = "payment"
	StepConfirmation WizardStep = "confirmation"
)

// StepError rejects a transition and names the first incomplete step.
type StepError struct {
	Redirect WizardStep
}

func (e *StepError) Error() string {
	return fmt.Sprintf("%s: complete %q first", ErrStepOutOfOrder, e.Redirect)
}

func (e *StepError) Unwrap() error {
	return ErrStepOutOfOrder
}

// DraftItem is the catalog item being booked, snapshotted when the draft begins.
type DraftItem struct {
	Type      ItemType `json:"type"`
	ID        string   `json:"id"`
	VariantID string   `json:"variant_id,omitempty"`
	Name      string   `json:"name"`
	UnitPrice float64  `json:"unit_price"`
	Quantity  int      `json:"quantity"`
	Duration  int      `json:"duration"`
}

type Totals struct {
	Subtotal float64 `json:"subtotal"`
	Discount float64 `json:"discount"`
	Taxes    float64 `json:"taxes"`
	Total    float64 `json:"total"`
}

// BookingDraft accumulates a booking across the wizard pages. It has no
// identifier until it is submitted; it is keyed by the browsing session.
type BookingDraft struct {
	SessionID      string          `json:"session_id"`
	Stage          WizardStage     `json:"stage"`
	IdempotencyKey string          `json:"idempotency_key"`
	Item           DraftItem       `json:"item"`
	ScheduledDate  string          `json:"scheduled_date,omitempty"`
	ScheduledTime  string          `json:"scheduled_time,omitempty"`
	Address        *Address        `json:"address,omitempty"`
	Coupon         *CouponSnapshot `json:"coupon,omitempty"`
	Notes          string          `json:"notes,omitempty"`
	Totals         *Totals         `json:"totals,omitempty"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

func NewBookingDraft(sessionID, idempotencyKey string, item DraftItem, now time.Time) BookingDraft {
	if item.Quantity < 1 {
		item.Quantity = 1
	}
	return BookingDraft{
		SessionID:      sessionID,
		Stage:          StageNotStarted,
		IdempotencyKey: idempotencyKey,
		Item:           item,
		UpdatedAt:      now,
	}
}

// Require fails with a StepError unless the draft reached stage.
func (d BookingDraft) Require(stage WizardStage) error {
	if d.Stage.rank() >= stage.rank() {
		return nil
	}
	return &StepError{Redirect: d.NextStep()}
}

// WithTime records the schedule. It moves the draft back to StageTimeChosen
// when a later step was already done.
func (d BookingDraft) WithTime(date, slot string, now time.Time) (BookingDraft, error) {
	if err := d.Require(StageNotStarted); err != nil {
		return d, err
	}
	d.ScheduledDate = date
	d.ScheduledTime = slot
	d.Stage = StageTimeChosen
	d.Coupon = nil
	d.Totals = nil
	d.UpdatedAt = now
	return d, nil
}

func (d BookingDraft) WithAddress(addr Address, now time.Time) (BookingDraft, error) {
	if err := d.Require(StageTimeChosen); err != nil {
		return d, err
	}
	d.Address = &addr
	d.Stage = StageAddressChosen
	d.Coupon = nil
	d.Totals = nil
	d.UpdatedAt = now
	return d, nil
}

// WithPayment stores the coupon snapshot and the totals shown to the user.
func (d BookingDraft) WithPayment(coupon *CouponSnapshot, notes string, totals Totals, now time.Time) (BookingDraft, error) {
	if err := d.Require(StageAddressChosen); err != nil {
		return d, err
	}
	d.Coupon = coupon
	d.Notes = notes
	d.Totals = &totals
	d.Stage = StageReady
	d.UpdatedAt = now
	return d, nil
}

// NextStep is the first step the draft still needs.
func (d BookingDraft) NextStep() WizardStep {
	switch {
	case d.Stage.rank() == 0 || d.Item.ID == "":
		return StepServices
	case d.Stage.rank() < StageTimeChosen.rank() || d.ScheduledDate == "" || d.ScheduledTime == "":
		return StepTime
	case d.Stage.rank() < StageAddressChosen.rank() || d.Address == nil:
		return StepAddress
	case d.Stage.rank() < StageReady.rank() || d.Totals == nil:
		return StepPayment
	}
	return StepConfirmation
}

// RequireReady fails unless every step is complete.
func (d BookingDraft) RequireReady() error {
	if next := d.NextStep(); next != StepConfirmation {
		return &StepError{Redirect: next}
	}
	return nil
}

func (d BookingDraft) Subtotal() float64 {
	return decimal.NewFromFloat(d.Item.UnitPrice).
		Mul(decimal.NewFromInt(int64(d.Item.Quantity))).
		InexactFloat64()
}
