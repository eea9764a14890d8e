package routes

import (
	"net/http"

	"cleangod/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCart     = "/cart"
	PathDraft    = "/booking/draft"
	PathBookings = "/bookings"
)

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}

func addCatalogRoutes(rg *gin.RouterGroup, catalog *handlers.CatalogHandler, draft *handlers.DraftHandler) {
	rg.GET("/services/:id", catalog.GetService)
	rg.GET("/products/:id", catalog.GetProduct)
	rg.GET("/coupons", catalog.ListCoupons)
	rg.POST("/pricing/quote", catalog.Quote)
	rg.GET("/time-slots", draft.TimeSlots)
}

func addCartRoutes(rg *gin.RouterGroup, cart *handlers.CartHandler) {
	g := rg.Group(PathCart)
	{
		g.GET("", cart.GetCart)
		g.DELETE("", cart.ClearCart)
		g.POST("/items", cart.AddItem)
		g.PATCH("/items/:type/:id", cart.UpdateItem)
		g.DELETE("/items/:type/:id", cart.RemoveItem)
	}
}

// addDraftRoutes mounts the wizard. Choosing an address onwards needs a
// signed-in customer; the earlier steps only pick the user up when sent.
func addDraftRoutes(rg *gin.RouterGroup, draft *handlers.DraftHandler, optionalAuth, requireAuth gin.HandlerFunc) {
	g := rg.Group(PathDraft, optionalAuth)
	{
		g.POST("", draft.BeginDraft)
		g.GET("", draft.GetDraft)
		g.DELETE("", draft.DiscardDraft)
		g.PUT("/time", draft.ChooseTime)
		g.PUT("/address", requireAuth, draft.ChooseAddress)
		g.PUT("/payment", requireAuth, draft.PreparePayment)
		g.POST("/submit", requireAuth, draft.Submit)
	}
}

func addCustomerRoutes(rg *gin.RouterGroup, booking *handlers.BookingHandler, address *handlers.AddressHandler, payment *handlers.PaymentHandler) {
	rg.GET("/addresses", address.ListAddresses)
	rg.POST("/addresses", address.AddAddress)

	g := rg.Group(PathBookings)
	{
		g.GET("", booking.ListBookings)
		g.GET("/:id", booking.GetBooking)
		g.POST("/:id/payments", payment.PayBooking)
		g.GET("/:id/payments", payment.ListPayments)
	}
}

func addAdminRoutes(rg *gin.RouterGroup, booking *handlers.BookingHandler) {
	rg.PATCH(PathBookings+"/:id/status", booking.UpdateStatus)
}
