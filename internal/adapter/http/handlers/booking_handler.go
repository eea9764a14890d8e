package handlers

import (
	"errors"
	"log"
	"net/http"

	request "cleangod/internal/adapter/http/dto/request"
	response "cleangod/internal/adapter/http/dto/response"
	"cleangod/internal/usecase"
	"cleangod/pkg"

	"github.com/gin-gonic/gin"
)

// HomePath is the safe landing page used when a confirmation cannot be shown.
const HomePath = "/"

type BookingHandler struct {
	usecase usecase.IBookingUseCase
}

func NewBookingHandler(uc usecase.IBookingUseCase) *BookingHandler {
	return &BookingHandler{usecase: uc}
}

func (h *BookingHandler) ListBookings(c *gin.Context) {
	user := currentUser(c)
	bookings, err := h.usecase.ListForCustomer(c.Request.Context(), user)
	if err != nil {
		log.Printf("[booking][handler] list failed user_id=%s err=%v", user.ID, err)
		abortWithError(c, mapBookingError(c, err))
		return
	}
	c.JSON(http.StatusOK, response.FromBookings(bookings))
}

// GetBooking backs the confirmation view. A booking that does not resolve
// sends the client to the landing page.
func (h *BookingHandler) GetBooking(c *gin.Context) {
	id := c.Param("id")
	user := currentUser(c)
	b, err := h.usecase.GetForCustomer(c.Request.Context(), id, user)
	if err != nil {
		log.Printf("[booking][handler] get failed id=%s user_id=%s err=%v", id, user.ID, err)
		abortWithError(c, mapBookingError(c, err))
		return
	}
	c.JSON(http.StatusOK, response.FromBooking(b))
}

// UpdateStatus is the admin status patch.
func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	id := c.Param("id")
	var payload request.UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithError(c, errInvalidRequest)
		return
	}
	patch, err := payload.ToPatch()
	if err != nil {
		abortWithError(c, pkg.NewDomainErrorSimple("INVALID_STATUS", "Invalid status", http.StatusBadRequest))
		return
	}

	b, err := h.usecase.UpdateStatus(c.Request.Context(), id, patch)
	if err != nil {
		log.Printf("[booking][handler] update status failed id=%s err=%v", id, err)
		abortWithError(c, mapBookingError(c, err))
		return
	}
	log.Printf("[booking][handler] update status success id=%s status=%s payment_status=%s", id, b.Status, b.PaymentStatus)
	c.JSON(http.StatusOK, response.FromBooking(b))
}

func mapBookingError(c *gin.Context, err error) *pkg.AppError {
	if appErr := mapCommonError(c, err); appErr != nil {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrInvalidBookingID):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrBookingNotFound):
		return pkg.NewDomainErrorSimple("BOOKING_NOT_FOUND", "Booking not found", http.StatusNotFound).WithRedirect(HomePath)
	case errors.Is(err, usecase.ErrInvalidStatusPatch):
		return pkg.NewDomainErrorSimple("INVALID_STATUS", "Invalid status", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidStatusTransition):
		return pkg.NewDomainErrorSimple("INVALID_STATUS_TRANSITION", "Status change not allowed", http.StatusConflict)
	default:
		return internalError(err)
	}
}
