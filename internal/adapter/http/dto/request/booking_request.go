package request

import (
	"errors"
	"strings"

	"cleangod/internal/domain/entities"
)

var ErrInvalidStatus = errors.New("invalid status")

// UpdateBookingStatusRequest is the admin patch. At least one field is required.
type UpdateBookingStatusRequest struct {
	Status        *string `json:"status"`
	PaymentStatus *string `json:"payment_status"`
}

func (r UpdateBookingStatusRequest) ToPatch() (entities.BookingStatusPatch, error) {
	var patch entities.BookingStatusPatch
	if r.Status != nil {
		s := entities.BookingStatus(strings.ToLower(strings.TrimSpace(*r.Status)))
		if !s.Valid() {
			return patch, ErrInvalidStatus
		}
		patch.Status = &s
	}
	if r.PaymentStatus != nil {
		p := entities.PaymentStatus(strings.ToLower(strings.TrimSpace(*r.PaymentStatus)))
		if !p.Valid() {
			return patch, ErrInvalidStatus
		}
		patch.PaymentStatus = &p
	}
	if patch.Empty() {
		return patch, ErrInvalidStatus
	}
	return patch, nil
}
