package interfaces

import (
	"cleangod/internal/domain/entities"
	"context"
	"errors"
)

// ErrBookingExists is returned by Create when a booking with the same id is
// already stored.
var ErrBookingExists = errors.New("booking already exists")

// IBookingRepository abstracts DynamoDB persistence for Booking.
//
// Lookups return a zero Booking (empty ID) and a nil error when nothing matches.
// Writes are last-writer-wins; there is no version token on the record.
// GetByID is a strongly consistent read.

type IBookingRepository interface {
	Create(ctx context.Context, b entities.Booking) (entities.Booking, error)
	GetByID(ctx context.Context, id string) (entities.Booking, error)
	ListByCustomerID(ctx context.Context, customerID string) ([]entities.Booking, error)
	UpdateStatus(ctx context.Context, id string, patch entities.BookingStatusPatch) (entities.Booking, error)
}
