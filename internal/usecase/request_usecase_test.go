package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"renomatch/internal/domain/entities"
	mock_interfaces "renomatch/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func visitDates() []time.Time {
	return []time.Time{time.Date(2026, 9, 10, 9, 0, 0, 0, time.UTC)}
}

func TestRequestUseCase_Create(t *testing.T) {
	t.Run("invalid customer id", func(t *testing.T) {
		uc := NewRequestUseCase(nil, nil)
		_, err := uc.Create(context.Background(), "   ", NewRequestInput{SpaceType: "kitchen", Address: "1 Main St", VisitDates: visitDates()})
		if !errors.Is(err, ErrInvalidCustomerID) {
			t.Fatalf("expected ErrInvalidCustomerID, got %v", err)
		}
	})

	t.Run("missing fields", func(t *testing.T) {
		uc := NewRequestUseCase(nil, nil)
		_, err := uc.Create(context.Background(), "cust-1", NewRequestInput{SpaceType: " ", Address: "1 Main St", VisitDates: visitDates()})
		if !errors.Is(err, ErrInvalidRequestInput) {
			t.Fatalf("expected ErrInvalidRequestInput, got %v", err)
		}
		_, err = uc.Create(context.Background(), "cust-1", NewRequestInput{SpaceType: "kitchen", Address: "1 Main St"})
		if !errors.Is(err, ErrInvalidRequestInput) {
			t.Fatalf("expected ErrInvalidRequestInput for missing visit dates, got %v", err)
		}
	})

	t.Run("create success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRequestRepository(ctrl)
		uc := NewRequestUseCase(repo, nil)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.QuoteRequest{})).DoAndReturn(
			func(_ context.Context, r entities.QuoteRequest) (entities.QuoteRequest, error) {
				if r.ID == "" || r.CustomerID != "cust-1" || r.SpaceType != "kitchen" {
					t.Fatalf("unexpected request: %+v", r)
				}
				if r.Status != entities.RequestStatusPending {
					t.Fatalf("expected pending, got %s", r.Status)
				}
				if r.CreatedAt.IsZero() || r.UpdatedAt.IsZero() {
					t.Fatalf("expected timestamps")
				}
				return r, nil
			},
		)

		res, err := uc.Create(context.Background(), " cust-1 ", NewRequestInput{SpaceType: " kitchen ", Address: "1 Main St", VisitDates: visitDates()})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID == "" {
			t.Fatalf("expected generated id")
		}
	})
}

func TestRequestUseCase_Review(t *testing.T) {
	t.Run("approve moves straight to site-visit-pending", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRequestRepository(ctrl)
		uc := NewRequestUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "req-1").Return(entities.QuoteRequest{ID: "req-1", Status: entities.RequestStatusPending}, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "req-1", entities.RequestStatusPending, entities.RequestStatusSiteVisitPending).
			Return(entities.QuoteRequest{ID: "req-1", Status: entities.RequestStatusSiteVisitPending}, nil)

		res, err := uc.Review(context.Background(), "req-1", true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.RequestStatusSiteVisitPending {
			t.Fatalf("expected site-visit-pending, got %s", res.Status)
		}
	})

	t.Run("reject is terminal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRequestRepository(ctrl)
		uc := NewRequestUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "req-1").Return(entities.QuoteRequest{ID: "req-1", Status: entities.RequestStatusPending}, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "req-1", entities.RequestStatusPending, entities.RequestStatusRejected).
			Return(entities.QuoteRequest{ID: "req-1", Status: entities.RequestStatusRejected}, nil)

		res, err := uc.Review(context.Background(), "req-1", false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.RequestStatusRejected {
			t.Fatalf("expected rejected, got %s", res.Status)
		}
	})

	t.Run("review of non-pending request is an illegal transition", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRequestRepository(ctrl)
		uc := NewRequestUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "req-1").Return(entities.QuoteRequest{ID: "req-1", Status: entities.RequestStatusBidding}, nil)

		_, err := uc.Review(context.Background(), "req-1", true)
		if !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})
}

func TestRequestUseCase_Transitions(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRequestRepository(ctrl)
		uc := NewRequestUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.QuoteRequest{}, nil)

		_, err := uc.OpenBidding(context.Background(), "missing")
		if !errors.Is(err, ErrRequestNotFound) {
			t.Fatalf("expected ErrRequestNotFound, got %v", err)
		}
	})

	t.Run("terminal state refuses any move", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRequestRepository(ctrl)
		uc := NewRequestUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "req-1").Return(entities.QuoteRequest{ID: "req-1", Status: entities.RequestStatusCancelled}, nil)

		_, err := uc.Cancel(context.Background(), "req-1", "cust-1")
		if !errors.Is(err, ErrRequestTerminal) {
			t.Fatalf("expected ErrRequestTerminal, got %v", err)
		}
	})

	t.Run("corrupt stored status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRequestRepository(ctrl)
		uc := NewRequestUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "req-1").Return(entities.QuoteRequest{ID: "req-1", Status: "garbage"}, nil)

		_, err := uc.OpenBidding(context.Background(), "req-1")
		if !errors.Is(err, ErrCorruptRequestStatus) {
			t.Fatalf("expected ErrCorruptRequestStatus, got %v", err)
		}
	})

	t.Run("lost compare-and-swap surfaces as invalid transition", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRequestRepository(ctrl)
		uc := NewRequestUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "req-1").Return(entities.QuoteRequest{ID: "req-1", Status: entities.RequestStatusSiteVisitPending}, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "req-1", entities.RequestStatusSiteVisitPending, entities.RequestStatusBidding).
			Return(entities.QuoteRequest{}, nil)

		_, err := uc.OpenBidding(context.Background(), "req-1")
		if !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})

	t.Run("close bidding logs bid count", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRequestRepository(ctrl)
		quotes := mock_interfaces.NewMockIContractorQuoteRepository(ctrl)
		uc := NewRequestUseCase(repo, quotes)

		repo.EXPECT().GetByID(gomock.Any(), "req-1").Return(entities.QuoteRequest{ID: "req-1", Status: entities.RequestStatusBidding}, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "req-1", entities.RequestStatusBidding, entities.RequestStatusBiddingClosed).
			Return(entities.QuoteRequest{ID: "req-1", Status: entities.RequestStatusBiddingClosed}, nil)
		quotes.EXPECT().CountByRequestID(gomock.Any(), "req-1").Return(0, nil)

		res, err := uc.CloseBidding(context.Background(), "req-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.RequestStatusBiddingClosed {
			t.Fatalf("expected bidding-closed, got %s", res.Status)
		}
	})
}

func TestRequestUseCase_Reads(t *testing.T) {
	t.Run("get by id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRequestRepository(ctrl)
		uc := NewRequestUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "req-1").Return(entities.QuoteRequest{ID: "req-1"}, nil)

		res, err := uc.GetByID(context.Background(), "req-1")
		if err != nil || res.ID != "req-1" {
			t.Fatalf("unexpected result: %+v err=%v", res, err)
		}
	})

	t.Run("list by customer validates id", func(t *testing.T) {
		uc := NewRequestUseCase(nil, nil)
		_, err := uc.ListByCustomer(context.Background(), " ")
		if !errors.Is(err, ErrInvalidCustomerID) {
			t.Fatalf("expected ErrInvalidCustomerID, got %v", err)
		}
	})
}
