package interfaces

import (
	"cleangod/internal/domain/entities"
	"context"
)

// ICatalogRepository reads services and products. Both reads are idempotent
// and may be retried.

type ICatalogRepository interface {
	GetService(ctx context.Context, id string) (entities.Service, error)
	GetProduct(ctx context.Context, id string) (entities.Product, error)
}
