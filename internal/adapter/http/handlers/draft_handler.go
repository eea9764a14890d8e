package handlers

import (
	"errors"
	"log"
	"net/http"

	request "cleangod/internal/adapter/http/dto/request"
	response "cleangod/internal/adapter/http/dto/response"
	"cleangod/internal/adapter/http/middleware"
	"cleangod/internal/domain/entities"
	"cleangod/internal/usecase"
	"cleangod/pkg"

	"github.com/gin-gonic/gin"
)

// DraftHandler drives the booking wizard for the tab identified by the
// X-Session-ID header and submits the finished draft.
type DraftHandler struct {
	drafts   usecase.IDraftUseCase
	bookings usecase.IBookingUseCase
}

func NewDraftHandler(drafts usecase.IDraftUseCase, bookings usecase.IBookingUseCase) *DraftHandler {
	return &DraftHandler{drafts: drafts, bookings: bookings}
}

func (h *DraftHandler) TimeSlots(c *gin.Context) {
	c.JSON(http.StatusOK, response.TimeSlotsResponse{Slots: h.drafts.TimeSlots()})
}

// BeginDraft starts a new draft from the chosen item, replacing any draft
// the session already had.
func (h *DraftHandler) BeginDraft(c *gin.Context) {
	var payload request.ItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithError(c, errInvalidRequest)
		return
	}
	ref, err := payload.ToItemRef()
	if err != nil {
		abortWithError(c, errInvalidRequest)
		return
	}

	d, err := h.drafts.Begin(c.Request.Context(), sessionID(c), ref)
	if err != nil {
		h.fail(c, "begin", err)
		return
	}
	c.JSON(http.StatusCreated, draftResponse(c, d))
}

func (h *DraftHandler) GetDraft(c *gin.Context) {
	d, err := h.drafts.Get(c.Request.Context(), sessionID(c))
	if err != nil {
		h.fail(c, "get", err)
		return
	}
	c.JSON(http.StatusOK, draftResponse(c, d))
}

func (h *DraftHandler) DiscardDraft(c *gin.Context) {
	if err := h.drafts.Discard(c.Request.Context(), sessionID(c)); err != nil {
		h.fail(c, "discard", err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *DraftHandler) ChooseTime(c *gin.Context) {
	var payload request.ChooseTimeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithError(c, errInvalidRequest)
		return
	}

	d, err := h.drafts.ChooseTime(c.Request.Context(), sessionID(c), payload.Date, payload.Time)
	if err != nil {
		h.fail(c, "choose-time", err)
		return
	}
	c.JSON(http.StatusOK, draftResponse(c, d))
}

func (h *DraftHandler) ChooseAddress(c *gin.Context) {
	var payload request.ChooseAddressRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithError(c, errInvalidRequest)
		return
	}

	d, err := h.drafts.ChooseAddress(c.Request.Context(), sessionID(c), currentUser(c).ID, payload.AddressID)
	if err != nil {
		h.fail(c, "choose-address", err)
		return
	}
	c.JSON(http.StatusOK, draftResponse(c, d))
}

// PreparePayment fixes coupon, notes and totals. An empty body is accepted.
func (h *DraftHandler) PreparePayment(c *gin.Context) {
	var payload request.PaymentStepRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			abortWithError(c, errInvalidRequest)
			return
		}
	}

	summary, err := h.drafts.PreparePayment(c.Request.Context(), sessionID(c), payload.CouponCode, payload.Notes)
	if err != nil {
		h.fail(c, "prepare-payment", err)
		return
	}
	c.JSON(http.StatusOK, response.FromPaymentSummary(summary))
}

// Submit turns the ready draft into a booking and points the client at the
// confirmation view. Retrying after a success returns the same booking.
func (h *DraftHandler) Submit(c *gin.Context) {
	sid := sessionID(c)
	user := currentUser(c)
	log.Printf("[booking][handler] submit start session=%s user_id=%s", sid, user.ID)

	b, err := h.bookings.Submit(c.Request.Context(), sid, deviceID(c), user)
	if err != nil {
		h.fail(c, "submit", err)
		return
	}
	log.Printf("[booking][handler] submit success session=%s booking_id=%s", sid, b.ID)

	c.JSON(http.StatusCreated, response.FromSubmittedBooking(b))
}

// draftResponse points anonymous customers at sign-in once the wizard reaches
// the address step.
func draftResponse(c *gin.Context, d entities.BookingDraft) response.DraftResponse {
	res := response.FromDraft(d)
	if _, ok := middleware.CurrentUser(c); ok {
		return res
	}
	switch next := d.NextStep(); next {
	case entities.StepAddress, entities.StepPayment, entities.StepConfirmation:
		res.SignInRedirect = middleware.SignInRedirect(StepPath(next))
	}
	return res
}

func (h *DraftHandler) fail(c *gin.Context, op string, err error) {
	log.Printf("[draft][handler] %s failed session=%s err=%v", op, sessionID(c), err)
	abortWithError(c, mapDraftError(c, err))
}

func mapDraftError(c *gin.Context, err error) *pkg.AppError {
	if appErr := mapCommonError(c, err); appErr != nil {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrInvalidTimeSlot):
		return pkg.NewDomainErrorSimple("INVALID_TIME_SLOT", "Choose one of the offered time slots", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidSchedule):
		return pkg.NewDomainErrorSimple("INVALID_SCHEDULE_DATE", "Choose a valid date", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidAddressRef):
		return pkg.NewDomainErrorSimple("ADDRESS_REQUIRED", "Choose an address", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrAddressNotFound):
		return pkg.NewDomainErrorSimple("ADDRESS_NOT_FOUND", "Address not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrSubmissionInProgress):
		return pkg.NewDomainErrorSimple("SUBMISSION_IN_PROGRESS", "This booking is already being submitted", http.StatusConflict)
	case errors.Is(err, usecase.ErrBookingCreateFailed):
		return pkg.NewDomainError("BOOKING_CREATE_FAILED", "Could not create the booking, please try again", err, http.StatusBadGateway)
	default:
		return internalError(err)
	}
}
