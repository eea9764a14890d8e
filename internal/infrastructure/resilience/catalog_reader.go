package resilience

import (
	"context"
	"errors"
	"log"
	"time"

	"cleangod/internal/domain/entities"
	"cleangod/internal/usecase/interfaces"

	"github.com/cenkalti/backoff/v4"
	"github.com/sony/gobreaker/v2"
)

const (
	breakerFailureThreshold = 5
	breakerOpenTimeout      = 30 * time.Second
)

// CatalogReader decorates catalog reads with bounded exponential retry and a
// circuit breaker per entity kind. Only these reads are wrapped: they are idempotent.
type CatalogReader struct {
	repo       interfaces.ICatalogRepository
	retries    uint64
	services   *gobreaker.CircuitBreaker[entities.Service]
	products   *gobreaker.CircuitBreaker[entities.Product]
	newBackOff func() backoff.BackOff
}

func NewCatalogReader(repo interfaces.ICatalogRepository, retries uint64) *CatalogReader {
	return &CatalogReader{
		repo:     repo,
		retries:  retries,
		services: gobreaker.NewCircuitBreaker[entities.Service](breakerSettings("catalog-services")),
		products: gobreaker.NewCircuitBreaker[entities.Product](breakerSettings("catalog-products")),
		newBackOff: func() backoff.BackOff {
			b := backoff.NewExponentialBackOff()
			b.InitialInterval = 100 * time.Millisecond
			b.MaxInterval = 2 * time.Second
			b.MaxElapsedTime = 10 * time.Second
			return b
		},
	}
}

func breakerSettings(name string) gobreaker.Settings {
	return gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Timeout:     breakerOpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= breakerFailureThreshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Printf("[catalog][breaker] state change name=%s from=%s to=%s", name, from, to)
		},
	}
}

func (r *CatalogReader) GetService(ctx context.Context, id string) (entities.Service, error) {
	return read(ctx, r, r.services, "service", id, r.repo.GetService)
}

func (r *CatalogReader) GetProduct(ctx context.Context, id string) (entities.Product, error) {
	return read(ctx, r, r.products, "product", id, r.repo.GetProduct)
}

func read[T any](ctx context.Context, r *CatalogReader, cb *gobreaker.CircuitBreaker[T], kind, id string, fn func(context.Context, string) (T, error)) (T, error) {
	attempt := 0
	op := func() (T, error) {
		attempt++
		v, err := cb.Execute(func() (T, error) { return fn(ctx, id) })
		if err == nil {
			return v, nil
		}
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) || ctx.Err() != nil {
			return v, backoff.Permanent(err)
		}
		log.Printf("[catalog][reader] read failed kind=%s id=%s attempt=%d err=%v", kind, id, attempt, err)
		return v, err
	}

	b := backoff.WithContext(backoff.WithMaxRetries(r.newBackOff(), r.retries), ctx)
	return backoff.RetryWithData(op, b)
}
