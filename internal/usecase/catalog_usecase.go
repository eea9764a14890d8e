package usecase

import (
	"context"
	"errors"
	"strings"

	"cleangod/internal/domain/entities"
	"cleangod/internal/usecase/interfaces"
)

var (
	ErrInvalidItemRef     = errors.New("invalid item reference")
	ErrServiceNotFound    = errors.New("service not found")
	ErrProductNotFound    = errors.New("product not found")
	ErrPricingTierUnknown = errors.New("pricing tier not found")
)

// ItemRef points at a catalog item. VariantID selects a service pricing tier.
type ItemRef struct {
	Type      entities.ItemType
	ID        string
	VariantID string
	Quantity  int
}

// CatalogItem is a catalog entry reduced to what carts and drafts capture.
type CatalogItem struct {
	Type      entities.ItemType
	ID        string
	VariantID string
	Name      string
	UnitPrice float64
	Duration  int
}

type ICatalogUseCase interface {
	GetService(ctx context.Context, id string) (entities.Service, error)
	GetProduct(ctx context.Context, id string) (entities.Product, error)
	ResolveItem(ctx context.Context, ref ItemRef) (CatalogItem, error)
}

type CatalogUseCase struct {
	repo interfaces.ICatalogRepository
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(repo interfaces.ICatalogRepository) *CatalogUseCase {
	return &CatalogUseCase{repo: repo}
}

func (u *CatalogUseCase) GetService(ctx context.Context, id string) (entities.Service, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Service{}, ErrInvalidItemRef
	}
	s, err := u.repo.GetService(ctx, id)
	if err != nil {
		return entities.Service{}, err
	}
	if s.ID == "" {
		return entities.Service{}, ErrServiceNotFound
	}
	return s, nil
}

func (u *CatalogUseCase) GetProduct(ctx context.Context, id string) (entities.Product, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Product{}, ErrInvalidItemRef
	}
	p, err := u.repo.GetProduct(ctx, id)
	if err != nil {
		return entities.Product{}, err
	}
	if p.ID == "" {
		return entities.Product{}, ErrProductNotFound
	}
	return p, nil
}

// ResolveItem reads the current name and unit price of a service tier or a product.
func (u *CatalogUseCase) ResolveItem(ctx context.Context, ref ItemRef) (CatalogItem, error) {
	switch ref.Type {
	case entities.ItemTypeService:
		s, err := u.GetService(ctx, ref.ID)
		if err != nil {
			return CatalogItem{}, err
		}
		tier, ok := s.Tier(ref.VariantID)
		if !ok {
			return CatalogItem{}, ErrPricingTierUnknown
		}
		name := s.Name
		if tier.Name != "" {
			name = s.Name + " - " + tier.Name
		}
		return CatalogItem{
			Type:      entities.ItemTypeService,
			ID:        s.ID,
			VariantID: tier.ID,
			Name:      name,
			UnitPrice: tier.SellingPrice,
			Duration:  s.Duration,
		}, nil
	case entities.ItemTypeProduct:
		p, err := u.GetProduct(ctx, ref.ID)
		if err != nil {
			return CatalogItem{}, err
		}
		return CatalogItem{
			Type:      entities.ItemTypeProduct,
			ID:        p.ID,
			Name:      p.Name,
			UnitPrice: p.Price,
		}, nil
	default:
		return CatalogItem{}, ErrInvalidItemRef
	}
}
