package entities

import (
	"errors"
	"strings"
	"time"
)

var ErrInvalidAddress = errors.New("invalid address")

type AddressType string

const (
	AddressTypeHome  AddressType = "home"
	AddressTypeWork  AddressType = "work"
	AddressTypeOther AddressType = "other"
)

// Address belongs to a user. At most one address per user is default by
// convention; the flag is not maintained atomically.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (user_id-index): user_id
type Address struct {
	ID        string      `json:"id"`
	UserID    string      `json:"user_id"`
	Type      AddressType `json:"type"`
	Street    string      `json:"street"`
	Area      string      `json:"area"`
	City      string      `json:"city"`
	State     string      `json:"state"`
	Pincode   string      `json:"pincode"`
	Landmark  string      `json:"landmark,omitempty"`
	IsDefault bool        `json:"is_default"`
	CreatedAt time.Time   `json:"created_at"`
}

func (a Address) Validate() error {
	switch a.Type {
	case AddressTypeHome, AddressTypeWork, AddressTypeOther:
	default:
		return ErrInvalidAddress
	}
	for _, v := range []string{a.Street, a.Area, a.City, a.State} {
		if strings.TrimSpace(v) == "" {
			return ErrInvalidAddress
		}
	}
	if len(a.Pincode) != 6 {
		return ErrInvalidAddress
	}
	for _, r := range a.Pincode {
		if r < '0' || r > '9' {
			return ErrInvalidAddress
		}
	}
	return nil
}
