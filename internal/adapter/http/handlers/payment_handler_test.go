package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"cleangod/internal/adapter/http/handlers/mocks"
	"cleangod/internal/domain/entities"
	"cleangod/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func paymentRouter(h *PaymentHandler) *gin.Engine {
	r := newRouter()
	auth := r.Group("/v1", authAs(customer))
	auth.POST("/bookings/:id/payments", h.PayBooking)
	auth.GET("/bookings/:id/payments", h.ListPayments)
	return r
}

func TestPaymentHandler_PayBooking(t *testing.T) {
	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		r := paymentRouter(NewPaymentHandler(uc))

		if w := perform(r, http.MethodPost, "/v1/bookings/bk-1/payments", "{", bearer); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("usecase mapped error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		r := paymentRouter(NewPaymentHandler(uc))

		uc.EXPECT().PayBooking(gomock.Any(), "bk-1", customer, gomock.Any()).Return(entities.Payment{}, usecase.ErrBookingAlreadyPaid)

		w := perform(r, http.MethodPost, "/v1/bookings/bk-1/payments", `{"payment_method_id":"pix","payer":{"email":"x@test.com"}}`, bearer)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("unknown booking", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		r := paymentRouter(NewPaymentHandler(uc))

		uc.EXPECT().PayBooking(gomock.Any(), "bk-9", customer, gomock.Any()).Return(entities.Payment{}, usecase.ErrBookingNotFound)

		if w := perform(r, http.MethodPost, "/v1/bookings/bk-9/payments", `{}`, bearer); w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success with wrapped payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		r := paymentRouter(NewPaymentHandler(uc))

		uc.EXPECT().PayBooking(gomock.Any(), "bk-1", customer, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, _ entities.User, payload json.RawMessage) (entities.Payment, error) {
				if string(payload) != `{"payment_method_id":"pix"}` {
					t.Fatalf("expected unwrapped payload, got %s", payload)
				}
				return entities.Payment{ID: "pay-1", BookingID: "bk-1", Amount: 944, Date: time.Now().UTC(), Status: entities.PaymentStatusPaid}, nil
			})

		w := perform(r, http.MethodPost, "/v1/bookings/bk-1/payments", `{"mp_payload":{"payment_method_id":"pix"}}`, bearer)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if body := decode(t, w); body["id"] != "pay-1" || body["status"] != "paid" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestPaymentHandler_ListPayments(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIPaymentUseCase(ctrl)
	r := paymentRouter(NewPaymentHandler(uc))

	uc.EXPECT().ListByBooking(gomock.Any(), "bk-1", customer).Return([]entities.Payment{{ID: "pay-1", Status: entities.PaymentStatusFailed}, {ID: "pay-2", Status: entities.PaymentStatusPaid}}, nil)

	w := perform(r, http.MethodGet, "/v1/bookings/bk-1/payments", "", bearer)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}
