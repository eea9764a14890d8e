package resilience

import (
	"context"
	"errors"
	"testing"

	"cleangod/internal/domain/entities"
	mock_interfaces "cleangod/internal/usecase/interfaces/mocks"

	"github.com/cenkalti/backoff/v4"
	"github.com/sony/gobreaker/v2"
	"go.uber.org/mock/gomock"
)

func newReader(t *testing.T, retries uint64) (*CatalogReader, *mock_interfaces.MockICatalogRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockICatalogRepository(ctrl)
	r := NewCatalogReader(repo, retries)
	r.newBackOff = func() backoff.BackOff { return &backoff.ZeroBackOff{} }
	return r, repo
}

func TestCatalogReader_RetriesTransientErrors(t *testing.T) {
	r, repo := newReader(t, 3)
	ctx := context.Background()

	gomock.InOrder(
		repo.EXPECT().GetService(ctx, "svc-1").Return(entities.Service{}, errors.New("throttled")),
		repo.EXPECT().GetService(ctx, "svc-1").Return(entities.Service{}, errors.New("throttled")),
		repo.EXPECT().GetService(ctx, "svc-1").Return(entities.Service{ID: "svc-1", Name: "Deep clean"}, nil),
	)

	got, err := r.GetService(ctx, "svc-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Name != "Deep clean" {
		t.Fatalf("unexpected service: %+v", got)
	}
}

func TestCatalogReader_GivesUpAfterRetries(t *testing.T) {
	r, repo := newReader(t, 2)
	ctx := context.Background()
	boom := errors.New("timeout")

	repo.EXPECT().GetProduct(ctx, "p-1").Return(entities.Product{}, boom).Times(3)

	if _, err := r.GetProduct(ctx, "p-1"); !errors.Is(err, boom) {
		t.Fatalf("expected %v, got %v", boom, err)
	}
}

func TestCatalogReader_NotFoundIsNotRetried(t *testing.T) {
	r, repo := newReader(t, 3)
	ctx := context.Background()

	repo.EXPECT().GetProduct(ctx, "missing").Return(entities.Product{}, nil).Times(1)

	got, err := r.GetProduct(ctx, "missing")
	if err != nil || got.ID != "" {
		t.Fatalf("expected zero product, got %+v err=%v", got, err)
	}
}

func TestCatalogReader_BreakerOpens(t *testing.T) {
	r, repo := newReader(t, 0)
	ctx := context.Background()

	repo.EXPECT().GetService(ctx, "svc-1").Return(entities.Service{}, errors.New("down")).Times(breakerFailureThreshold)

	for i := 0; i < breakerFailureThreshold; i++ {
		if _, err := r.GetService(ctx, "svc-1"); err == nil {
			t.Fatalf("expected error on call %d", i)
		}
	}

	if _, err := r.GetService(ctx, "svc-1"); !errors.Is(err, gobreaker.ErrOpenState) {
		t.Fatalf("expected open breaker, got %v", err)
	}

	// products have their own breaker
	repo.EXPECT().GetProduct(ctx, "p-1").Return(entities.Product{ID: "p-1"}, nil)
	if _, err := r.GetProduct(ctx, "p-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCatalogReader_StopsOnCancelledContext(t *testing.T) {
	r, repo := newReader(t, 5)
	ctx, cancel := context.WithCancel(context.Background())

	repo.EXPECT().GetService(ctx, "svc-1").DoAndReturn(func(context.Context, string) (entities.Service, error) {
		cancel()
		return entities.Service{}, context.Canceled
	}).Times(1)

	if _, err := r.GetService(ctx, "svc-1"); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
