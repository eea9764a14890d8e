package response

import (
	"time"

	"cleangod/internal/domain/entities"
)

type PaymentResponse struct {
	ID             string    `json:"id"`
	BookingID      string    `json:"booking_id"`
	Amount         float64   `json:"amount"`
	Date           time.Time `json:"date"`
	Status         string    `json:"status"`
	ProviderStatus string    `json:"provider_status,omitempty"`

	ProviderPayloadRaw string                 `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"provider_payload,omitempty"`
}

func FromPayment(p entities.Payment) PaymentResponse {
	return PaymentResponse{
		ID:                 p.ID,
		BookingID:          p.BookingID,
		Amount:             p.Amount,
		Date:               p.Date,
		Status:             string(p.Status),
		ProviderStatus:     p.ProviderStatus,
		ProviderPayloadRaw: string(p.ProviderPayloadRaw),
		ProviderPayload:    p.ProviderPayload,
	}
}

func FromPayments(list []entities.Payment) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(list))
	for _, p := range list {
		out = append(out, FromPayment(p))
	}
	return out
}
