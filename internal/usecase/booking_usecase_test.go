package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"cleangod/internal/domain/entities"
	"cleangod/internal/domain/pricing"
	"cleangod/internal/usecase/interfaces"
	mock_interfaces "cleangod/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type bookingDeps struct {
	repo      *mock_interfaces.MockIBookingRepository
	drafts    *mock_interfaces.MockIDraftStore
	carts     *mock_interfaces.MockICartStore
	publisher *mock_interfaces.MockIEventPublisher
}

func newBookingUseCase(ctrl *gomock.Controller) (*BookingUseCase, bookingDeps) {
	d := bookingDeps{
		repo:      mock_interfaces.NewMockIBookingRepository(ctrl),
		drafts:    mock_interfaces.NewMockIDraftStore(ctrl),
		carts:     mock_interfaces.NewMockICartStore(ctrl),
		publisher: mock_interfaces.NewMockIEventPublisher(ctrl),
	}
	uc := NewBookingUseCase(d.repo, d.drafts, d.carts, d.publisher, pricing.NewCalculator(pricing.DefaultConfig()))
	uc.now = func() time.Time { return fixedNow }
	return uc, d
}

var customer = entities.User{ID: "user-1", Email: "asha@example.com"}

func TestBookingUseCase_Submit_Preconditions(t *testing.T) {
	t.Run("anonymous user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _ := newBookingUseCase(ctrl)

		if _, err := uc.Submit(context.Background(), "sess-1", "dev-1", entities.User{}); !errors.Is(err, ErrUnauthenticated) {
			t.Fatalf("expected ErrUnauthenticated, got %v", err)
		}
	})

	t.Run("no draft", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, deps := newBookingUseCase(ctrl)

		deps.drafts.EXPECT().Load(gomock.Any(), "sess-1").Return(entities.BookingDraft{}, false, nil)

		_, err := uc.Submit(context.Background(), "sess-1", "dev-1", customer)
		expectRedirect(t, err, entities.StepServices)
	})

	t.Run("incomplete draft never creates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, deps := newBookingUseCase(ctrl)

		deps.drafts.EXPECT().Load(gomock.Any(), "sess-1").Return(draftAt(entities.StageTimeChosen), true, nil)
		deps.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

		_, err := uc.Submit(context.Background(), "sess-1", "dev-1", customer)
		expectRedirect(t, err, entities.StepAddress)
	})

	t.Run("submission already in flight", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, deps := newBookingUseCase(ctrl)

		deps.drafts.EXPECT().Load(gomock.Any(), "sess-1").Return(draftAt(entities.StageReady), true, nil)
		deps.drafts.EXPECT().AcquireSubmitLock(gomock.Any(), "sess-1").Return(false, nil)

		if _, err := uc.Submit(context.Background(), "sess-1", "dev-1", customer); !errors.Is(err, ErrSubmissionInProgress) {
			t.Fatalf("expected ErrSubmissionInProgress, got %v", err)
		}
	})

	t.Run("pricing changed since payment step", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, deps := newBookingUseCase(ctrl)

		d := draftAt(entities.StageReady)
		d.Totals.Total = 900
		deps.drafts.EXPECT().Load(gomock.Any(), "sess-1").Return(d, true, nil).Times(2)
		deps.drafts.EXPECT().AcquireSubmitLock(gomock.Any(), "sess-1").Return(true, nil)
		deps.drafts.EXPECT().ReleaseSubmitLock(gomock.Any(), "sess-1").Return(nil)
		deps.repo.EXPECT().GetByID(gomock.Any(), "idem-1").Return(entities.Booking{}, nil)

		_, err := uc.Submit(context.Background(), "sess-1", "dev-1", customer)
		expectRedirect(t, err, entities.StepPayment)
	})
}

func TestBookingUseCase_Submit(t *testing.T) {
	t.Run("creates once, clears draft and cart line, publishes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, deps := newBookingUseCase(ctrl)

		deps.drafts.EXPECT().Load(gomock.Any(), "sess-1").Return(draftAt(entities.StageReady), true, nil).Times(2)
		deps.drafts.EXPECT().AcquireSubmitLock(gomock.Any(), "sess-1").Return(true, nil)
		deps.drafts.EXPECT().ReleaseSubmitLock(gomock.Any(), "sess-1").Return(nil)
		deps.repo.EXPECT().GetByID(gomock.Any(), "idem-1").Return(entities.Booking{}, nil)
		deps.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, b entities.Booking) (entities.Booking, error) {
			if b.ID != "idem-1" || b.CustomerID != "user-1" || b.IdempotencyKey != "idem-1" {
				t.Fatalf("unexpected identity fields: %+v", b)
			}
			if b.Subtotal != 1000 || b.Discount != 200 || b.Taxes != 144 || b.TotalAmount != 944 {
				t.Fatalf("persisted totals differ from displayed totals: %+v", b)
			}
			if b.Status != entities.BookingStatusPending || b.PaymentStatus != entities.PaymentStatusPending || b.CouponCode != "FLAT200" {
				t.Fatalf("unexpected status fields: %+v", b)
			}
			if b.Address.ID != "addr-1" || b.ScheduledTime != "11:00" || b.Duration != 120 {
				t.Fatalf("unexpected booking snapshot: %+v", b)
			}
			return b, nil
		}).Times(1)
		deps.drafts.EXPECT().Delete(gomock.Any(), "sess-1").Return(nil)
		deps.carts.EXPECT().Load(gomock.Any(), "dev-1").Return(entities.Cart{Items: []entities.CartItem{
			{ID: "svc-1", Type: entities.ItemTypeService, Quantity: 1, Price: 1000},
			{ID: "prd-1", Type: entities.ItemTypeProduct, Quantity: 1, Price: 50},
		}}, nil)
		deps.carts.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, c entities.Cart) error {
			if len(c.Items) != 1 || c.Items[0].ID != "prd-1" || c.DeviceID != "dev-1" {
				t.Fatalf("expected only the booked line removed, got %+v", c)
			}
			return nil
		})
		deps.publisher.EXPECT().Publish(gomock.Any(), EventBookingCreated, gomock.AssignableToTypeOf(BookingEvent{})).Return(nil)

		b, err := uc.Submit(context.Background(), "sess-1", "dev-1", customer)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if b.TotalAmount != 944 {
			t.Fatalf("unexpected booking: %+v", b)
		}
	})

	t.Run("create failure keeps the draft", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, deps := newBookingUseCase(ctrl)

		deps.drafts.EXPECT().Load(gomock.Any(), "sess-1").Return(draftAt(entities.StageReady), true, nil).Times(2)
		deps.drafts.EXPECT().AcquireSubmitLock(gomock.Any(), "sess-1").Return(true, nil)
		deps.drafts.EXPECT().ReleaseSubmitLock(gomock.Any(), "sess-1").Return(nil)
		deps.repo.EXPECT().GetByID(gomock.Any(), "idem-1").Return(entities.Booking{}, nil)
		deps.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Booking{}, errors.New("throttled")).Times(1)
		deps.drafts.EXPECT().Delete(gomock.Any(), gomock.Any()).Times(0)
		deps.publisher.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		if _, err := uc.Submit(context.Background(), "sess-1", "dev-1", customer); !errors.Is(err, ErrBookingCreateFailed) {
			t.Fatalf("expected ErrBookingCreateFailed, got %v", err)
		}
	})

	t.Run("resubmission returns the existing booking", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, deps := newBookingUseCase(ctrl)

		deps.drafts.EXPECT().Load(gomock.Any(), "sess-1").Return(draftAt(entities.StageReady), true, nil).Times(2)
		deps.drafts.EXPECT().AcquireSubmitLock(gomock.Any(), "sess-1").Return(true, nil)
		deps.drafts.EXPECT().ReleaseSubmitLock(gomock.Any(), "sess-1").Return(nil)
		deps.repo.EXPECT().GetByID(gomock.Any(), "idem-1").Return(entities.Booking{ID: "idem-1", CustomerID: "user-1", IdempotencyKey: "idem-1"}, nil)
		deps.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)
		deps.drafts.EXPECT().Delete(gomock.Any(), "sess-1").Return(nil)

		b, err := uc.Submit(context.Background(), "sess-1", "", customer)
		if err != nil || b.ID != "idem-1" {
			t.Fatalf("unexpected result err=%v booking=%+v", err, b)
		}
	})

	t.Run("draft consumed while waiting for the lock returns the stored booking", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, deps := newBookingUseCase(ctrl)

		gomock.InOrder(
			deps.drafts.EXPECT().Load(gomock.Any(), "sess-1").Return(draftAt(entities.StageReady), true, nil),
			deps.drafts.EXPECT().AcquireSubmitLock(gomock.Any(), "sess-1").Return(true, nil),
			deps.drafts.EXPECT().Load(gomock.Any(), "sess-1").Return(entities.BookingDraft{}, false, nil),
		)
		deps.drafts.EXPECT().ReleaseSubmitLock(gomock.Any(), "sess-1").Return(nil)
		deps.repo.EXPECT().GetByID(gomock.Any(), "idem-1").Return(entities.Booking{ID: "idem-1", CustomerID: "user-1"}, nil)
		deps.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)
		deps.drafts.EXPECT().Delete(gomock.Any(), "sess-1").Return(nil)
		deps.publisher.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		b, err := uc.Submit(context.Background(), "sess-1", "", customer)
		if err != nil || b.ID != "idem-1" {
			t.Fatalf("unexpected result err=%v booking=%+v", err, b)
		}
	})

	t.Run("stored booking of another customer is not returned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, deps := newBookingUseCase(ctrl)

		deps.drafts.EXPECT().Load(gomock.Any(), "sess-1").Return(draftAt(entities.StageReady), true, nil).Times(2)
		deps.drafts.EXPECT().AcquireSubmitLock(gomock.Any(), "sess-1").Return(true, nil)
		deps.drafts.EXPECT().ReleaseSubmitLock(gomock.Any(), "sess-1").Return(nil)
		deps.repo.EXPECT().GetByID(gomock.Any(), "idem-1").Return(entities.Booking{ID: "idem-1", CustomerID: "user-2"}, nil)
		deps.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

		if _, err := uc.Submit(context.Background(), "sess-1", "", customer); !errors.Is(err, ErrBookingNotFound) {
			t.Fatalf("expected ErrBookingNotFound, got %v", err)
		}
	})

	t.Run("conflicting create returns the stored booking", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, deps := newBookingUseCase(ctrl)

		deps.drafts.EXPECT().Load(gomock.Any(), "sess-1").Return(draftAt(entities.StageReady), true, nil).Times(2)
		deps.drafts.EXPECT().AcquireSubmitLock(gomock.Any(), "sess-1").Return(true, nil)
		deps.drafts.EXPECT().ReleaseSubmitLock(gomock.Any(), "sess-1").Return(nil)
		gomock.InOrder(
			deps.repo.EXPECT().GetByID(gomock.Any(), "idem-1").Return(entities.Booking{}, nil),
			deps.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Booking{}, interfaces.ErrBookingExists),
			deps.repo.EXPECT().GetByID(gomock.Any(), "idem-1").Return(entities.Booking{ID: "idem-1", CustomerID: "user-1"}, nil),
		)
		deps.drafts.EXPECT().Delete(gomock.Any(), "sess-1").Return(nil)
		deps.publisher.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		b, err := uc.Submit(context.Background(), "sess-1", "", customer)
		if err != nil || b.ID != "idem-1" {
			t.Fatalf("unexpected result err=%v booking=%+v", err, b)
		}
	})

	t.Run("cleanup failures do not fail the submission", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, deps := newBookingUseCase(ctrl)

		deps.drafts.EXPECT().Load(gomock.Any(), "sess-1").Return(draftAt(entities.StageReady), true, nil).Times(2)
		deps.drafts.EXPECT().AcquireSubmitLock(gomock.Any(), "sess-1").Return(true, nil)
		deps.drafts.EXPECT().ReleaseSubmitLock(gomock.Any(), "sess-1").Return(errors.New("redis"))
		deps.repo.EXPECT().GetByID(gomock.Any(), "idem-1").Return(entities.Booking{}, nil)
		deps.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, b entities.Booking) (entities.Booking, error) {
			return b, nil
		})
		deps.drafts.EXPECT().Delete(gomock.Any(), "sess-1").Return(errors.New("redis"))
		deps.carts.EXPECT().Load(gomock.Any(), "dev-1").Return(entities.Cart{}, errors.New("dynamo"))
		deps.publisher.EXPECT().Publish(gomock.Any(), EventBookingCreated, gomock.Any()).Return(errors.New("amqp"))

		if _, err := uc.Submit(context.Background(), "sess-1", "dev-1", customer); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestBookingUseCase_GetForCustomer(t *testing.T) {
	t.Run("owner", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, deps := newBookingUseCase(ctrl)
		deps.repo.EXPECT().GetByID(gomock.Any(), "bk-1").Return(entities.Booking{ID: "bk-1", CustomerID: "user-1"}, nil)

		if b, err := uc.GetForCustomer(context.Background(), " bk-1 ", customer); err != nil || b.ID != "bk-1" {
			t.Fatalf("unexpected result err=%v booking=%+v", err, b)
		}
	})

	t.Run("other customer sees not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, deps := newBookingUseCase(ctrl)
		deps.repo.EXPECT().GetByID(gomock.Any(), "bk-1").Return(entities.Booking{ID: "bk-1", CustomerID: "user-2"}, nil)

		if _, err := uc.GetForCustomer(context.Background(), "bk-1", customer); !errors.Is(err, ErrBookingNotFound) {
			t.Fatalf("expected ErrBookingNotFound, got %v", err)
		}
	})

	t.Run("admin sees any booking", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, deps := newBookingUseCase(ctrl)
		deps.repo.EXPECT().GetByID(gomock.Any(), "bk-1").Return(entities.Booking{ID: "bk-1", CustomerID: "user-2"}, nil)

		if _, err := uc.GetForCustomer(context.Background(), "bk-1", entities.User{ID: "ops", Role: entities.RoleAdmin}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, deps := newBookingUseCase(ctrl)
		deps.repo.EXPECT().GetByID(gomock.Any(), "bk-9").Return(entities.Booking{}, nil)

		if _, err := uc.GetForCustomer(context.Background(), "bk-9", customer); !errors.Is(err, ErrBookingNotFound) {
			t.Fatalf("expected ErrBookingNotFound, got %v", err)
		}
	})
}

func TestBookingUseCase_ListForCustomer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, deps := newBookingUseCase(ctrl)
	deps.repo.EXPECT().ListByCustomerID(gomock.Any(), "user-1").Return([]entities.Booking{{ID: "bk-1"}}, nil)

	list, err := uc.ListForCustomer(context.Background(), customer)
	if err != nil || len(list) != 1 {
		t.Fatalf("unexpected result err=%v list=%+v", err, list)
	}
	if _, err := uc.ListForCustomer(context.Background(), entities.User{}); !errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}

func TestBookingUseCase_UpdateStatus(t *testing.T) {
	confirmed := entities.BookingStatusConfirmed
	completed := entities.BookingStatusCompleted
	paid := entities.PaymentStatusPaid
	pending := entities.BookingStatusPending

	t.Run("valid transition publishes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, deps := newBookingUseCase(ctrl)

		deps.repo.EXPECT().GetByID(gomock.Any(), "bk-1").Return(entities.Booking{ID: "bk-1", Status: entities.BookingStatusPending, PaymentStatus: entities.PaymentStatusPending}, nil)
		deps.repo.EXPECT().UpdateStatus(gomock.Any(), "bk-1", gomock.Any()).DoAndReturn(func(_ context.Context, _ string, p entities.BookingStatusPatch) (entities.Booking, error) {
			if p.Status == nil || *p.Status != confirmed || p.PaymentStatus == nil || *p.PaymentStatus != paid {
				t.Fatalf("unexpected patch: %+v", p)
			}
			return entities.Booking{ID: "bk-1", Status: confirmed, PaymentStatus: paid}, nil
		})
		deps.publisher.EXPECT().Publish(gomock.Any(), EventBookingStatusChanged, gomock.Any()).Return(nil)

		b, err := uc.UpdateStatus(context.Background(), "bk-1", entities.BookingStatusPatch{Status: &confirmed, PaymentStatus: &paid})
		if err != nil || b.Status != confirmed {
			t.Fatalf("unexpected result err=%v booking=%+v", err, b)
		}
	})

	t.Run("invalid transition", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, deps := newBookingUseCase(ctrl)

		deps.repo.EXPECT().GetByID(gomock.Any(), "bk-1").Return(entities.Booking{ID: "bk-1", Status: entities.BookingStatusPending}, nil)

		if _, err := uc.UpdateStatus(context.Background(), "bk-1", entities.BookingStatusPatch{Status: &completed}); !errors.Is(err, ErrInvalidStatusTransition) {
			t.Fatalf("expected ErrInvalidStatusTransition, got %v", err)
		}
	})

	t.Run("same status is a no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, deps := newBookingUseCase(ctrl)

		deps.repo.EXPECT().GetByID(gomock.Any(), "bk-1").Return(entities.Booking{ID: "bk-1", Status: entities.BookingStatusPending}, nil)

		b, err := uc.UpdateStatus(context.Background(), "bk-1", entities.BookingStatusPatch{Status: &pending})
		if err != nil || b.ID != "bk-1" {
			t.Fatalf("unexpected result err=%v booking=%+v", err, b)
		}
	})

	t.Run("empty or unknown patch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _ := newBookingUseCase(ctrl)

		bogus := entities.BookingStatus("archived")
		for _, p := range []entities.BookingStatusPatch{{}, {Status: &bogus}} {
			if _, err := uc.UpdateStatus(context.Background(), "bk-1", p); !errors.Is(err, ErrInvalidStatusPatch) {
				t.Fatalf("expected ErrInvalidStatusPatch, got %v", err)
			}
		}
	})
}

// memDraftStore keeps drafts and submit locks in memory. afterLoad runs once,
// after the next Load has read its result.
type memDraftStore struct {
	drafts    map[string]entities.BookingDraft
	locks     map[string]bool
	afterLoad func()
}

func (s *memDraftStore) Load(_ context.Context, sessionID string) (entities.BookingDraft, bool, error) {
	d, ok := s.drafts[sessionID]
	if hook := s.afterLoad; hook != nil {
		s.afterLoad = nil
		hook()
	}
	return d, ok, nil
}

func (s *memDraftStore) Save(_ context.Context, d entities.BookingDraft) error {
	s.drafts[d.SessionID] = d
	return nil
}

func (s *memDraftStore) Delete(_ context.Context, sessionID string) error {
	delete(s.drafts, sessionID)
	return nil
}

func (s *memDraftStore) AcquireSubmitLock(_ context.Context, sessionID string) (bool, error) {
	if s.locks[sessionID] {
		return false, nil
	}
	s.locks[sessionID] = true
	return true, nil
}

func (s *memDraftStore) ReleaseSubmitLock(_ context.Context, sessionID string) error {
	delete(s.locks, sessionID)
	return nil
}

// memBookingRepo rejects a second booking with the same id, like the
// conditional put in DynamoDB.
type memBookingRepo struct {
	bookings map[string]entities.Booking
	creates  int
}

func (r *memBookingRepo) Create(_ context.Context, b entities.Booking) (entities.Booking, error) {
	if _, ok := r.bookings[b.ID]; ok {
		return entities.Booking{}, interfaces.ErrBookingExists
	}
	r.creates++
	r.bookings[b.ID] = b
	return b, nil
}

func (r *memBookingRepo) GetByID(_ context.Context, id string) (entities.Booking, error) {
	return r.bookings[id], nil
}

func (r *memBookingRepo) ListByCustomerID(context.Context, string) ([]entities.Booking, error) {
	return nil, nil
}

func (r *memBookingRepo) UpdateStatus(context.Context, string, entities.BookingStatusPatch) (entities.Booking, error) {
	return entities.Booking{}, nil
}

func TestBookingUseCase_Submit_OverlappingRequestsCreateOneBooking(t *testing.T) {
	store := &memDraftStore{
		drafts: map[string]entities.BookingDraft{"sess-1": draftAt(entities.StageReady)},
		locks:  map[string]bool{},
	}
	repo := &memBookingRepo{bookings: map[string]entities.Booking{}}
	uc := NewBookingUseCase(repo, store, nil, nil, pricing.NewCalculator(pricing.DefaultConfig()))
	uc.now = func() time.Time { return fixedNow }

	// The second request reads the draft, then the first one runs to completion
	// before the second takes the lock.
	var first entities.Booking
	var firstErr error
	store.afterLoad = func() {
		first, firstErr = uc.Submit(context.Background(), "sess-1", "", customer)
	}

	second, err := uc.Submit(context.Background(), "sess-1", "", customer)
	if firstErr != nil || err != nil {
		t.Fatalf("unexpected errors first=%v second=%v", firstErr, err)
	}
	if repo.creates != 1 {
		t.Fatalf("expected exactly one booking, got %d", repo.creates)
	}
	if first.ID != second.ID || first.ID != "idem-1" {
		t.Fatalf("expected both requests to see the same booking, got %q and %q", first.ID, second.ID)
	}
	if _, ok := store.drafts["sess-1"]; ok {
		t.Fatalf("expected draft cleared")
	}
	if len(store.locks) != 0 {
		t.Fatalf("expected lock released")
	}
}
