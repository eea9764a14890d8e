package interfaces

import (
	"cleangod/internal/domain/entities"
	"context"
)

// IAddressRepository abstracts DynamoDB persistence for a user's address book.
//
// GetByID is a strongly consistent read and returns a zero Address when the id
// is unknown. ListByUserID reads an index and may miss a just-created address.

type IAddressRepository interface {
	ListByUserID(ctx context.Context, userID string) ([]entities.Address, error)
	GetByID(ctx context.Context, id string) (entities.Address, error)
	Create(ctx context.Context, a entities.Address) (entities.Address, error)
	SetDefault(ctx context.Context, id string, isDefault bool) error
}
