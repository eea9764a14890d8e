package handlers

import (
	"context"
	"net/http"
	"testing"

	"cleangod/internal/adapter/http/handlers/mocks"
	"cleangod/internal/adapter/http/middleware"
	"cleangod/internal/domain/entities"
	"cleangod/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

var bearer = map[string]string{"Authorization": "Bearer token"}

func bookingRouter(h *BookingHandler, user entities.User) *gin.Engine {
	r := newRouter()
	auth := r.Group("/v1", authAs(user))
	auth.GET("/bookings", h.ListBookings)
	auth.GET("/bookings/:id", h.GetBooking)
	auth.PATCH("/admin/bookings/:id/status", middleware.RequireAdmin(), h.UpdateStatus)
	return r
}

func TestBookingHandler_GetBooking(t *testing.T) {
	t.Run("unknown booking goes to landing page", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIBookingUseCase(ctrl)
		r := bookingRouter(NewBookingHandler(uc), customer)

		uc.EXPECT().GetForCustomer(gomock.Any(), "bk-9", customer).Return(entities.Booking{}, usecase.ErrBookingNotFound)

		w := perform(r, http.MethodGet, "/v1/bookings/bk-9", "", bearer)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		if body := decode(t, w); body["redirect_to"] != "/" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIBookingUseCase(ctrl)
		r := bookingRouter(NewBookingHandler(uc), customer)

		uc.EXPECT().GetForCustomer(gomock.Any(), "bk-1", customer).Return(entities.Booking{ID: "bk-1", CustomerID: "user-1", Status: entities.BookingStatusPending, TotalAmount: 944}, nil)

		w := perform(r, http.MethodGet, "/v1/bookings/bk-1", "", bearer)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if body := decode(t, w); body["total_amount"] != float64(944) || body["status"] != "pending" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestBookingHandler_ListBookings(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIBookingUseCase(ctrl)
	r := bookingRouter(NewBookingHandler(uc), customer)

	uc.EXPECT().ListForCustomer(gomock.Any(), customer).Return([]entities.Booking{{ID: "bk-2"}, {ID: "bk-1"}}, nil)

	w := perform(r, http.MethodGet, "/v1/bookings", "", bearer)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w.Body.String()[0] != '[' {
		t.Fatalf("expected array body: %s", w.Body.String())
	}
}

func TestBookingHandler_UpdateStatus(t *testing.T) {
	admin := entities.User{ID: "admin-1", Role: entities.RoleAdmin}

	t.Run("customers are rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIBookingUseCase(ctrl)
		r := bookingRouter(NewBookingHandler(uc), customer)

		if w := perform(r, http.MethodPatch, "/v1/admin/bookings/bk-1/status", `{"status":"confirmed"}`, bearer); w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("invalid status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIBookingUseCase(ctrl)
		r := bookingRouter(NewBookingHandler(uc), admin)

		for _, body := range []string{`{}`, `{"status":"archived"}`} {
			if w := perform(r, http.MethodPatch, "/v1/admin/bookings/bk-1/status", body, bearer); w.Code != http.StatusBadRequest {
				t.Fatalf("body %s: expected 400, got %d", body, w.Code)
			}
		}
	})

	t.Run("transition not allowed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIBookingUseCase(ctrl)
		r := bookingRouter(NewBookingHandler(uc), admin)

		uc.EXPECT().UpdateStatus(gomock.Any(), "bk-1", gomock.Any()).Return(entities.Booking{}, usecase.ErrInvalidStatusTransition)

		if w := perform(r, http.MethodPatch, "/v1/admin/bookings/bk-1/status", `{"status":"completed"}`, bearer); w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIBookingUseCase(ctrl)
		r := bookingRouter(NewBookingHandler(uc), admin)

		uc.EXPECT().UpdateStatus(gomock.Any(), "bk-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, patch entities.BookingStatusPatch) (entities.Booking, error) {
				if patch.Status == nil || *patch.Status != entities.BookingStatusConfirmed || patch.PaymentStatus != nil {
					t.Fatalf("unexpected patch: %+v", patch)
				}
				return entities.Booking{ID: "bk-1", Status: entities.BookingStatusConfirmed}, nil
			})

		w := perform(r, http.MethodPatch, "/v1/admin/bookings/bk-1/status", `{"status":"confirmed"}`, bearer)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if body := decode(t, w); body["status"] != "confirmed" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}
