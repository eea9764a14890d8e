package usecase

import (
	"context"
	"errors"
	"testing"

	"cleangod/internal/domain/entities"
	mock_interfaces "cleangod/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func deepClean() entities.Service {
	return entities.Service{
		ID:       "svc-1",
		Name:     "Deep clean",
		Duration: 120,
		PricingTiers: []entities.PricingTier{
			{ID: "basic", Name: "1 BHK", OriginalPrice: 1200, SellingPrice: 999},
			{ID: "large", Name: "3 BHK", OriginalPrice: 2500, SellingPrice: 1999},
		},
	}
}

func TestCatalogUseCase_ResolveItem(t *testing.T) {
	t.Run("service defaults to first tier", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICatalogRepository(ctrl)
		uc := NewCatalogUseCase(repo)

		repo.EXPECT().GetService(gomock.Any(), "svc-1").Return(deepClean(), nil)

		item, err := uc.ResolveItem(context.Background(), ItemRef{Type: entities.ItemTypeService, ID: " svc-1 "})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if item.VariantID != "basic" || item.UnitPrice != 999 || item.Duration != 120 || item.Name != "Deep clean - 1 BHK" {
			t.Fatalf("unexpected item: %+v", item)
		}
	})

	t.Run("service variant", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICatalogRepository(ctrl)
		uc := NewCatalogUseCase(repo)

		repo.EXPECT().GetService(gomock.Any(), "svc-1").Return(deepClean(), nil)

		item, err := uc.ResolveItem(context.Background(), ItemRef{Type: entities.ItemTypeService, ID: "svc-1", VariantID: "large"})
		if err != nil || item.UnitPrice != 1999 {
			t.Fatalf("unexpected result err=%v item=%+v", err, item)
		}
	})

	t.Run("unknown tier", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICatalogRepository(ctrl)
		uc := NewCatalogUseCase(repo)

		repo.EXPECT().GetService(gomock.Any(), "svc-1").Return(deepClean(), nil)

		_, err := uc.ResolveItem(context.Background(), ItemRef{Type: entities.ItemTypeService, ID: "svc-1", VariantID: "gold"})
		if !errors.Is(err, ErrPricingTierUnknown) {
			t.Fatalf("expected ErrPricingTierUnknown, got %v", err)
		}
	})

	t.Run("service not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICatalogRepository(ctrl)
		uc := NewCatalogUseCase(repo)

		repo.EXPECT().GetService(gomock.Any(), "svc-9").Return(entities.Service{}, nil)

		_, err := uc.ResolveItem(context.Background(), ItemRef{Type: entities.ItemTypeService, ID: "svc-9"})
		if !errors.Is(err, ErrServiceNotFound) {
			t.Fatalf("expected ErrServiceNotFound, got %v", err)
		}
	})

	t.Run("product", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICatalogRepository(ctrl)
		uc := NewCatalogUseCase(repo)

		repo.EXPECT().GetProduct(gomock.Any(), "prd-1").Return(entities.Product{ID: "prd-1", Name: "Mop", Price: 349}, nil)

		item, err := uc.ResolveItem(context.Background(), ItemRef{Type: entities.ItemTypeProduct, ID: "prd-1"})
		if err != nil || item.UnitPrice != 349 || item.Name != "Mop" {
			t.Fatalf("unexpected result err=%v item=%+v", err, item)
		}
	})

	t.Run("repository error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICatalogRepository(ctrl)
		uc := NewCatalogUseCase(repo)

		repo.EXPECT().GetProduct(gomock.Any(), "prd-1").Return(entities.Product{}, errors.New("db"))

		_, err := uc.ResolveItem(context.Background(), ItemRef{Type: entities.ItemTypeProduct, ID: "prd-1"})
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("invalid references", func(t *testing.T) {
		uc := NewCatalogUseCase(nil)
		for _, ref := range []ItemRef{{Type: "bundle", ID: "x"}, {Type: entities.ItemTypeProduct, ID: " "}} {
			if _, err := uc.ResolveItem(context.Background(), ref); !errors.Is(err, ErrInvalidItemRef) {
				t.Fatalf("expected ErrInvalidItemRef for %+v, got %v", ref, err)
			}
		}
	})
}
