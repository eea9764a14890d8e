package routes

import (
	"context"
	"fmt"
	"log"

	"cleangod/internal/adapter/http/handlers"
	"cleangod/internal/adapter/persistence/repository"
	"cleangod/internal/adapter/session"
	"cleangod/internal/config"
	"cleangod/internal/domain/pricing"
	"cleangod/internal/infrastructure/cache"
	"cleangod/internal/infrastructure/database"
	"cleangod/internal/infrastructure/identity"
	"cleangod/internal/infrastructure/messaging"
	"cleangod/internal/infrastructure/payments"
	"cleangod/internal/infrastructure/resilience"
	"cleangod/internal/usecase"
	"cleangod/internal/usecase/interfaces"
)

// Wire connects every external client, builds the use cases and returns the
// handlers plus a function that closes the clients.
func Wire(ctx context.Context, cfg config.Config) (Handlers, func(), error) {
	ddb := database.ConnectDynamoDB(ctx, cfg.DynamoDB)

	rdb, err := cache.NewRedisClient(ctx, cfg.Redis)
	if err != nil {
		return Handlers{}, nil, fmt.Errorf("draft store: %w", err)
	}
	closers := []func(){func() { _ = rdb.Close() }}

	var publisher interfaces.IEventPublisher = messaging.LogPublisher{}
	if cfg.RabbitURL != "" {
		rabbit, err := messaging.NewRabbitPublisher(cfg.RabbitURL)
		if err != nil {
			log.Printf("[wire] rabbitmq unavailable, events will only be logged err=%v", err)
		} else {
			publisher = rabbit
			closers = append(closers, rabbit.Close)
		}
	}

	var paymentGateway interfaces.IPaymentGateway
	if !cfg.Payments.Mock {
		mpGateway, err := payments.NewMercadoPagoGateway(cfg.Payments)
		if err != nil {
			log.Printf("Mercado Pago gateway not configured: %v", err)
		} else {
			paymentGateway = mpGateway
		}
	}

	bookingRepo := repository.NewBookingDynamoRepository(ddb, cfg.Tables.Bookings)
	addressRepo := repository.NewAddressDynamoRepository(ddb, cfg.Tables.Addresses)
	couponRepo := repository.NewCouponDynamoRepository(ddb, cfg.Tables.Coupons)
	paymentRepo := repository.NewPaymentDynamoRepository(ddb, cfg.Tables.Payments)
	cartStore := repository.NewCartDynamoStore(ddb, cfg.Tables.Carts)
	catalogRepo := resilience.NewCatalogReader(
		repository.NewCatalogDynamoRepository(ddb, cfg.Tables.Services, cfg.Tables.Products),
		cfg.CatalogRetries,
	)
	draftStore := session.NewRedisDraftStore(rdb, cfg.DraftTTL)

	calculator := pricing.NewCalculator(cfg.Pricing)
	catalogUseCase := usecase.NewCatalogUseCase(catalogRepo)
	couponUseCase := usecase.NewCouponUseCase(couponRepo, calculator)
	addressUseCase := usecase.NewAddressUseCase(addressRepo)
	cartUseCase := usecase.NewCartUseCase(cartStore, catalogUseCase)
	draftUseCase := usecase.NewDraftUseCase(draftStore, catalogUseCase, addressUseCase, couponUseCase, calculator, cfg.TimeSlots)
	bookingUseCase := usecase.NewBookingUseCase(bookingRepo, draftStore, cartStore, publisher, calculator)
	paymentUseCase := usecase.NewPaymentUseCase(paymentRepo, bookingUseCase, paymentGateway, cfg.Payments.Mock)

	if err := couponUseCase.SeedPromotions(ctx, cfg.PromoCoupons); err != nil {
		log.Printf("[wire] seeding promo coupons failed err=%v", err)
	}

	if cfg.JWTSecret == "" {
		log.Printf("[wire] JWT_SECRET is empty, authenticated routes will reject every request")
	}

	h := Handlers{
		Cart:    handlers.NewCartHandler(cartUseCase),
		Catalog: handlers.NewCatalogHandler(catalogUseCase, couponUseCase),
		Draft:   handlers.NewDraftHandler(draftUseCase, bookingUseCase),
		Booking: handlers.NewBookingHandler(bookingUseCase),
		Address: handlers.NewAddressHandler(addressUseCase),
		Payment: handlers.NewPaymentHandler(paymentUseCase),
		Tokens:  identity.NewTokenService(cfg.JWTSecret, 0),
	}

	closeAll := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}
	return h, closeAll, nil
}
