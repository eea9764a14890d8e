package routes

import (
	"log"

	_ "cleangod/docs"
	"cleangod/internal/adapter/http/handlers"
	"cleangod/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handlers is everything the router mounts.
type Handlers struct {
	Cart    *handlers.CartHandler
	Catalog *handlers.CatalogHandler
	Draft   *handlers.DraftHandler
	Booking *handlers.BookingHandler
	Address *handlers.AddressHandler
	Payment *handlers.PaymentHandler
	Tokens  middleware.TokenParser
}

func NewRouter(h Handlers) *gin.Engine {
	router := gin.New()
	setMiddlewares(router)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addCatalogRoutes(v1, h.Catalog, h.Draft)
	addCartRoutes(v1, h.Cart)

	// Rotas autenticadas
	requireAuth := middleware.RequireAuth(h.Tokens)
	addDraftRoutes(v1, h.Draft, middleware.OptionalAuth(h.Tokens), requireAuth)
	addCustomerRoutes(v1.Group("", requireAuth), h.Booking, h.Address, h.Payment)
	addAdminRoutes(v1.Group("/admin", requireAuth, middleware.RequireAdmin()), h.Booking)

	return router
}

func setMiddlewares(router *gin.Engine) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
