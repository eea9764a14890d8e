package request

import (
	"strings"

	"cleangod/internal/domain/entities"
)

type AddressRequest struct {
	Type      string `json:"type" binding:"required"`
	Street    string `json:"street" binding:"required"`
	Area      string `json:"area" binding:"required"`
	City      string `json:"city" binding:"required"`
	State     string `json:"state" binding:"required"`
	Pincode   string `json:"pincode" binding:"required"`
	Landmark  string `json:"landmark"`
	IsDefault bool   `json:"is_default"`
}

// ToEntity trims the fields; validation is left to the use case.
func (r AddressRequest) ToEntity() entities.Address {
	return entities.Address{
		Type:      entities.AddressType(strings.ToLower(strings.TrimSpace(r.Type))),
		Street:    strings.TrimSpace(r.Street),
		Area:      strings.TrimSpace(r.Area),
		City:      strings.TrimSpace(r.City),
		State:     strings.TrimSpace(r.State),
		Pincode:   strings.TrimSpace(r.Pincode),
		Landmark:  strings.TrimSpace(r.Landmark),
		IsDefault: r.IsDefault,
	}
}
