package entities

import (
	"encoding/json"
	"time"
)

// Payment is one charge attempt against the payment provider for a booking.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (booking_id-index): booking_id
//
// ProviderPayloadRaw keeps the provider body as received for audit;
// ProviderPayload is the parsed form, useful when debugging.
type Payment struct {
	ID             string        `json:"id"`
	BookingID      string        `json:"booking_id"`
	Amount         float64       `json:"amount"`
	Date           time.Time     `json:"date"`
	Status         PaymentStatus `json:"status"`
	ProviderStatus string        `json:"provider_status"`

	ProviderPayloadRaw json.RawMessage        `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"provider_payload,omitempty"`
}

// User is the signed-in customer or admin as asserted by the identity provider.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Role  string `json:"role"`
}

const RoleAdmin = "admin"

func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
