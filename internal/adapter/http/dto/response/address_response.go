package response

import (
	"time"

	"cleangod/internal/domain/entities"
)

type AddressResponse struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Street    string    `json:"street"`
	Area      string    `json:"area"`
	City      string    `json:"city"`
	State     string    `json:"state"`
	Pincode   string    `json:"pincode"`
	Landmark  string    `json:"landmark,omitempty"`
	IsDefault bool      `json:"is_default"`
	CreatedAt time.Time `json:"created_at"`
}

func FromAddress(a entities.Address) AddressResponse {
	return AddressResponse{
		ID:        a.ID,
		Type:      string(a.Type),
		Street:    a.Street,
		Area:      a.Area,
		City:      a.City,
		State:     a.State,
		Pincode:   a.Pincode,
		Landmark:  a.Landmark,
		IsDefault: a.IsDefault,
		CreatedAt: a.CreatedAt,
	}
}

func FromAddresses(list []entities.Address) []AddressResponse {
	out := make([]AddressResponse, 0, len(list))
	for _, a := range list {
		out = append(out, FromAddress(a))
	}
	return out
}
