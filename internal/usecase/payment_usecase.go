package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"cleangod/internal/domain/entities"
	"cleangod/internal/usecase/interfaces"
)

var (
	ErrInvalidPaymentPayload          = errors.New("invalid payment payload")
	ErrBookingNotPayable              = errors.New("booking cannot be paid")
	ErrBookingAlreadyPaid             = errors.New("booking already paid")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

// IPaymentUseCase charges a booking through the payment provider.
//
// The charged amount always comes from the stored booking, never from the
// request. The provider outcome moves the booking payment status:
// approved -> paid (and a pending booking is confirmed), rejected -> failed.
type IPaymentUseCase interface {
	PayBooking(ctx context.Context, bookingID string, user entities.User, payload json.RawMessage) (entities.Payment, error)
	ListByBooking(ctx context.Context, bookingID string, user entities.User) ([]entities.Payment, error)
}

type PaymentUseCase struct {
	repo     interfaces.IPaymentRepository
	bookings IBookingUseCase
	gateway  interfaces.IPaymentGateway
	mockMode bool
	now      func() time.Time
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(repo interfaces.IPaymentRepository, bookings IBookingUseCase, gateway interfaces.IPaymentGateway, mockMode bool) *PaymentUseCase {
	return &PaymentUseCase{repo: repo, bookings: bookings, gateway: gateway, mockMode: mockMode, now: time.Now}
}

func (u *PaymentUseCase) PayBooking(ctx context.Context, bookingID string, user entities.User, payload json.RawMessage) (entities.Payment, error) {
	log.Printf("[payment][usecase] pay start raw_booking_id=%q payload_len=%d mock=%t", bookingID, len(payload), u.mockMode)
	bookingID = strings.TrimSpace(bookingID)
	if bookingID == "" {
		return entities.Payment{}, ErrInvalidBookingID
	}
	if len(payload) == 0 || !json.Valid(payload) {
		if !u.mockMode {
			log.Printf("[payment][usecase] invalid payload booking_id=%s", bookingID)
			return entities.Payment{}, ErrInvalidPaymentPayload
		}
		payload = json.RawMessage("{}")
	}
	if u.gateway == nil && !u.mockMode {
		return entities.Payment{}, errors.New("payment gateway not configured")
	}

	b, err := u.bookings.GetForCustomer(ctx, bookingID, user)
	if err != nil {
		return entities.Payment{}, err
	}
	if b.Status == entities.BookingStatusCancelled || b.Status == entities.BookingStatusCompleted {
		log.Printf("[payment][usecase] booking not payable booking_id=%s status=%s", b.ID, b.Status)
		return entities.Payment{}, ErrBookingNotPayable
	}
	if !b.PaymentStatus.CanTransitionTo(entities.PaymentStatusPaid) {
		log.Printf("[payment][usecase] booking already settled booking_id=%s payment_status=%s", b.ID, b.PaymentStatus)
		return entities.Payment{}, ErrBookingAlreadyPaid
	}

	var reqMap map[string]any
	if err := json.Unmarshal(payload, &reqMap); err != nil || reqMap == nil {
		reqMap = map[string]any{}
	}
	if !u.mockMode && !hasNonEmptyString(reqMap, "payment_method_id") {
		log.Printf("[payment][usecase] missing payment_method_id booking_id=%s", b.ID)
		return entities.Payment{}, ErrInvalidPaymentPayload
	}
	ensurePayerDefaults(reqMap, user.Email)
	if !u.mockMode && !hasPayer(reqMap) {
		log.Printf("[payment][usecase] missing payer booking_id=%s", b.ID)
		return entities.Payment{}, ErrInvalidPaymentPayload
	}
	if _, ok := reqMap["external_reference"]; !ok {
		reqMap["external_reference"] = b.ID
	}
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = fmt.Sprintf("Booking %s - %s", b.ID, b.Item.Name)
	}
	// The stored booking total is the amount charged.
	reqMap["transaction_amount"] = b.TotalAmount
	enriched, err := json.Marshal(reqMap)
	if err != nil {
		return entities.Payment{}, err
	}

	var (
		providerID     string
		providerStatus string
		providerResp   json.RawMessage
	)
	if u.mockMode {
		providerID, providerStatus, providerResp, err = u.mockCharge(reqMap)
	} else {
		log.Printf("[payment][usecase] calling payment gateway booking_id=%s", b.ID)
		providerID, providerStatus, providerResp, err = u.gateway.CreatePayment(ctx, enriched)
	}
	if err != nil {
		log.Printf("[payment][usecase] payment gateway failed booking_id=%s err=%v", b.ID, err)
		return entities.Payment{}, mapGatewayError(err)
	}
	log.Printf("[payment][usecase] gateway answered booking_id=%s provider_payment_id=%s provider_status=%s", b.ID, providerID, providerStatus)

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		log.Printf("[payment][usecase] provider response unmarshal failed booking_id=%s err=%v", b.ID, err)
	}

	p := entities.Payment{
		ID:                 providerID,
		BookingID:          b.ID,
		Amount:             b.TotalAmount,
		Date:               u.now().UTC(),
		Status:             PaymentStatusFromProvider(providerStatus),
		ProviderStatus:     providerStatus,
		ProviderPayloadRaw: providerResp,
		ProviderPayload:    parsed,
	}
	created, err := u.repo.Create(ctx, p)
	if err != nil {
		log.Printf("[payment][usecase] payment repository create failed booking_id=%s payment_id=%s err=%v", b.ID, p.ID, err)
		return entities.Payment{}, err
	}

	u.applyOutcome(ctx, b, created.Status)
	log.Printf("[payment][usecase] pay done booking_id=%s payment_id=%s status=%s", b.ID, created.ID, created.Status)
	return created, nil
}

// applyOutcome moves the booking after the charge. The charge already
// happened, so failures are logged and the payment is still returned.
func (u *PaymentUseCase) applyOutcome(ctx context.Context, b entities.Booking, status entities.PaymentStatus) {
	if status == entities.PaymentStatusPending || status == b.PaymentStatus {
		return
	}
	patch := entities.BookingStatusPatch{PaymentStatus: &status}
	if status == entities.PaymentStatusPaid && b.Status == entities.BookingStatusPending {
		confirmed := entities.BookingStatusConfirmed
		patch.Status = &confirmed
	}
	if _, err := u.bookings.UpdateStatus(ctx, b.ID, patch); err != nil {
		log.Printf("[payment][usecase] booking status update failed booking_id=%s payment_status=%s err=%v", b.ID, status, err)
	}
}

func (u *PaymentUseCase) mockCharge(req map[string]any) (string, string, json.RawMessage, error) {
	id := strconv.FormatInt(u.now().UTC().UnixNano(), 10)
	at := u.now().UTC().Format(time.RFC3339Nano)
	resp := make(map[string]any, len(req)+5)
	for k, v := range req {
		resp[k] = v
	}
	resp["id"] = id
	resp["status"] = "approved"
	resp["status_detail"] = "accredited"
	resp["date_created"] = at
	resp["date_approved"] = at
	b, err := json.Marshal(resp)
	if err != nil {
		return "", "", nil, err
	}
	return id, "approved", b, nil
}

func (u *PaymentUseCase) ListByBooking(ctx context.Context, bookingID string, user entities.User) ([]entities.Payment, error) {
	b, err := u.bookings.GetForCustomer(ctx, bookingID, user)
	if err != nil {
		return nil, err
	}
	return u.repo.ListByBookingID(ctx, b.ID)
}

// PaymentStatusFromProvider maps a Mercado Pago payment status.
func PaymentStatusFromProvider(status string) entities.PaymentStatus {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "approved", "authorized":
		return entities.PaymentStatusPaid
	case "rejected", "cancelled":
		return entities.PaymentStatusFailed
	case "refunded", "charged_back":
		return entities.PaymentStatusRefunded
	}
	return entities.PaymentStatusPending
}

func mapGatewayError(err error) error {
	switch {
	case isGatewayCustomerNotFound(err):
		return ErrPaymentGatewayCustomerNotFound
	case isGatewayInvalidUsers(err):
		return ErrPaymentGatewayInvalidUsers
	case isGatewayUnauthorized(err):
		return ErrPaymentGatewayUnauthorized
	case isGatewayBadRequest(err):
		return ErrPaymentGatewayBadRequest
	}
	return err
}

func hasNonEmptyString(m map[string]any, key string) bool {
	s, ok := m[key].(string)
	return ok && strings.TrimSpace(s) != ""
}

func hasPayer(m map[string]any) bool {
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		return false
	}
	return hasNonEmptyString(payer, "email") || hasPayerID(payer)
}

func hasPayerID(payer map[string]any) bool {
	v, ok := payer["id"]
	if !ok || v == nil {
		return false
	}
	s := strings.TrimSpace(fmt.Sprintf("%v", v))
	return s != "" && s != "<nil>"
}

// ensurePayerDefaults fills payer.email from the signed-in user when the
// request names no payer.
func ensurePayerDefaults(m map[string]any, email string) {
	v, ok := m["payer"]
	if !ok || v == nil {
		v = map[string]any{}
		m["payer"] = v
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return
	}
	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}
	if !hasPayerID(payer) && !hasNonEmptyString(payer, "email") && strings.TrimSpace(email) != "" {
		payer["email"] = strings.TrimSpace(email)
	}
}

func isGatewayBadRequest(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}

func isGatewayInvalidUsers(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "invalid users involved") || strings.Contains(msg, "\"code\":2034")
}

func isGatewayCustomerNotFound(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "customer not found") || strings.Contains(msg, "\"code\":2002")
}
