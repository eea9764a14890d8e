package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	response "cleangod/internal/adapter/http/dto/response"
	"cleangod/internal/usecase"
	"cleangod/pkg"

	"github.com/gin-gonic/gin"
)

// PaymentHandler charges bookings and lists their payment attempts.
type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
}

func NewPaymentHandler(uc usecase.IPaymentUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

// PayBooking forwards the provider payload, either raw or wrapped in
// {"mp_payload": ...}, for the booking in the path.
func (h *PaymentHandler) PayBooking(c *gin.Context) {
	bookingID := c.Param("id")
	user := currentUser(c)
	log.Printf("[payment][handler] pay start booking_id=%s user_id=%s", bookingID, user.ID)

	payload, err := readProviderPayload(c)
	if err != nil {
		log.Printf("[payment][handler] invalid payload booking_id=%s err=%v", bookingID, err)
		abortWithError(c, errInvalidRequest)
		return
	}

	created, err := h.usecase.PayBooking(c.Request.Context(), bookingID, user, payload)
	if err != nil {
		log.Printf("[payment][handler] pay failed booking_id=%s err=%v", bookingID, err)
		abortWithError(c, mapPaymentError(c, err))
		return
	}
	log.Printf("[payment][handler] pay success booking_id=%s payment_id=%s status=%s", bookingID, created.ID, created.Status)

	c.JSON(http.StatusOK, response.FromPayment(created))
}

func (h *PaymentHandler) ListPayments(c *gin.Context) {
	bookingID := c.Param("id")
	payments, err := h.usecase.ListByBooking(c.Request.Context(), bookingID, currentUser(c))
	if err != nil {
		log.Printf("[payment][handler] list failed booking_id=%s err=%v", bookingID, err)
		abortWithError(c, mapPaymentError(c, err))
		return
	}
	c.JSON(http.StatusOK, response.FromPayments(payments))
}

func readProviderPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["mp_payload"]; ok {
			if s := strings.TrimSpace(string(wrapped)); s == "" || s == "null" {
				return nil, errors.New("mp_payload cannot be empty")
			}
			return wrapped, nil
		}
	}

	return json.RawMessage(raw), nil
}

func mapPaymentError(c *gin.Context, err error) *pkg.AppError {
	if errors.Is(err, usecase.ErrBookingNotFound) || errors.Is(err, usecase.ErrInvalidBookingID) {
		return mapBookingError(c, err)
	}
	if appErr := mapCommonError(c, err); appErr != nil {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrInvalidPaymentPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this Mercado Pago test context", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayInvalidUsers):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_INVALID_USERS", "Invalid users involved between seller token and payer test user", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusBadGateway)
	case errors.Is(err, usecase.ErrBookingAlreadyPaid):
		return pkg.NewDomainErrorSimple("BOOKING_ALREADY_PAID", "Booking already paid", http.StatusConflict)
	case errors.Is(err, usecase.ErrBookingNotPayable):
		return pkg.NewDomainErrorSimple("BOOKING_NOT_PAYABLE", "Booking cannot be paid", http.StatusConflict)
	default:
		return internalError(err)
	}
}
