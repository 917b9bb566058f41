package usecase

import (
	"context"
	"errors"
	"testing"

	"renomatch/internal/domain/entities"
	mock_interfaces "renomatch/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestBidUseCase_Submit(t *testing.T) {
	t.Run("invalid price", func(t *testing.T) {
		uc := NewBidUseCase(nil, nil, nil, nil)
		_, err := uc.Submit(context.Background(), "req-1", "c-1", 0, "", "")
		if !errors.Is(err, ErrInvalidBidPrice) {
			t.Fatalf("expected ErrInvalidBidPrice, got %v", err)
		}
	})

	t.Run("request not in bidding phase", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		quotes := mock_interfaces.NewMockIContractorQuoteRepository(ctrl)
		visits := mock_interfaces.NewMockISiteVisitRepository(ctrl)
		requests := mock_interfaces.NewMockIQuoteRequestRepository(ctrl)
		contractors := mock_interfaces.NewMockIContractorRepository(ctrl)
		uc := NewBidUseCase(quotes, visits, requests, contractors)

		contractors.EXPECT().GetByID(gomock.Any(), "c-1").Return(activeContractor(), nil)
		requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(entities.QuoteRequest{ID: "req-1", Status: entities.RequestStatusBiddingClosed}, nil)

		_, err := uc.Submit(context.Background(), "req-1", "c-1", 1500, "full remodel", "")
		if !errors.Is(err, ErrRequestClosed) {
			t.Fatalf("expected ErrRequestClosed, got %v", err)
		}
	})

	t.Run("no completed visit means not eligible", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		quotes := mock_interfaces.NewMockIContractorQuoteRepository(ctrl)
		visits := mock_interfaces.NewMockISiteVisitRepository(ctrl)
		requests := mock_interfaces.NewMockIQuoteRequestRepository(ctrl)
		contractors := mock_interfaces.NewMockIContractorRepository(ctrl)
		uc := NewBidUseCase(quotes, visits, requests, contractors)

		contractors.EXPECT().GetByID(gomock.Any(), "c-1").Return(activeContractor(), nil)
		requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(entities.QuoteRequest{ID: "req-1", Status: entities.RequestStatusBidding}, nil)
		visits.EXPECT().GetByPair(gomock.Any(), "req-1", "c-1").Return(entities.SiteVisitApplication{ID: "v-1", Status: entities.VisitStatusPending}, nil)

		_, err := uc.Submit(context.Background(), "req-1", "c-1", 1500, "", "")
		if !errors.Is(err, ErrBidNotEligible) {
			t.Fatalf("expected ErrBidNotEligible, got %v", err)
		}
	})

	t.Run("cancelled visit does not count", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		quotes := mock_interfaces.NewMockIContractorQuoteRepository(ctrl)
		visits := mock_interfaces.NewMockISiteVisitRepository(ctrl)
		requests := mock_interfaces.NewMockIQuoteRequestRepository(ctrl)
		contractors := mock_interfaces.NewMockIContractorRepository(ctrl)
		uc := NewBidUseCase(quotes, visits, requests, contractors)

		contractors.EXPECT().GetByID(gomock.Any(), "c-1").Return(activeContractor(), nil)
		requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(entities.QuoteRequest{ID: "req-1", Status: entities.RequestStatusBidding}, nil)
		visits.EXPECT().GetByPair(gomock.Any(), "req-1", "c-1").
			Return(entities.SiteVisitApplication{ID: "v-1", Status: entities.VisitStatusCompleted, Cancelled: true}, nil)

		_, err := uc.Submit(context.Background(), "req-1", "c-1", 1500, "", "")
		if !errors.Is(err, ErrBidNotEligible) {
			t.Fatalf("expected ErrBidNotEligible, got %v", err)
		}
	})

	t.Run("duplicate bid loses the conditional put", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		quotes := mock_interfaces.NewMockIContractorQuoteRepository(ctrl)
		visits := mock_interfaces.NewMockISiteVisitRepository(ctrl)
		requests := mock_interfaces.NewMockIQuoteRequestRepository(ctrl)
		contractors := mock_interfaces.NewMockIContractorRepository(ctrl)
		uc := NewBidUseCase(quotes, visits, requests, contractors)

		contractors.EXPECT().GetByID(gomock.Any(), "c-1").Return(activeContractor(), nil)
		requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(entities.QuoteRequest{ID: "req-1", Status: entities.RequestStatusBidding}, nil)
		visits.EXPECT().GetByPair(gomock.Any(), "req-1", "c-1").Return(entities.SiteVisitApplication{ID: "v-1", Status: entities.VisitStatusCompleted}, nil)
		quotes.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.ContractorQuote{}, nil)

		_, err := uc.Submit(context.Background(), "req-1", "c-1", 1500, "", "")
		if !errors.Is(err, ErrDuplicateBid) {
			t.Fatalf("expected ErrDuplicateBid, got %v", err)
		}
	})

	t.Run("submit success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		quotes := mock_interfaces.NewMockIContractorQuoteRepository(ctrl)
		visits := mock_interfaces.NewMockISiteVisitRepository(ctrl)
		requests := mock_interfaces.NewMockIQuoteRequestRepository(ctrl)
		contractors := mock_interfaces.NewMockIContractorRepository(ctrl)
		uc := NewBidUseCase(quotes, visits, requests, contractors)

		contractors.EXPECT().GetByID(gomock.Any(), "c-1").Return(activeContractor(), nil)
		requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(entities.QuoteRequest{ID: "req-1", Status: entities.RequestStatusBidding}, nil)
		visits.EXPECT().GetByPair(gomock.Any(), "req-1", "c-1").Return(entities.SiteVisitApplication{ID: "v-1", Status: entities.VisitStatusCompleted}, nil)
		quotes.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.ContractorQuote{})).DoAndReturn(
			func(_ context.Context, q entities.ContractorQuote) (entities.ContractorQuote, error) {
				if q.ID == "" || q.RequestID != "req-1" || q.ContractorID != "c-1" || q.Price != 1500 {
					t.Fatalf("unexpected quote: %+v", q)
				}
				if q.Status != entities.QuoteStatusSubmitted || q.SubmittedAt.IsZero() {
					t.Fatalf("expected submitted quote with timestamp: %+v", q)
				}
				return q, nil
			},
		)

		res, err := uc.Submit(context.Background(), "req-1", "c-1", 1500, " full remodel ", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Description != "full remodel" {
			t.Fatalf("expected trimmed description, got %q", res.Description)
		}
	})
}

func TestBidUseCase_Withdraw(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		quotes := mock_interfaces.NewMockIContractorQuoteRepository(ctrl)
		uc := NewBidUseCase(quotes, nil, nil, nil)

		quotes.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.ContractorQuote{}, nil)

		if err := uc.Withdraw(context.Background(), "missing", "c-1"); !errors.Is(err, ErrBidNotFound) {
			t.Fatalf("expected ErrBidNotFound, got %v", err)
		}
	})

	t.Run("non-owner is forbidden", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		quotes := mock_interfaces.NewMockIContractorQuoteRepository(ctrl)
		uc := NewBidUseCase(quotes, nil, nil, nil)

		quotes.EXPECT().GetByID(gomock.Any(), "bid-1").Return(entities.ContractorQuote{ID: "bid-1", ContractorID: "c-1"}, nil)

		if err := uc.Withdraw(context.Background(), "bid-1", "c-2"); !errors.Is(err, ErrNotBidOwner) {
			t.Fatalf("expected ErrNotBidOwner, got %v", err)
		}
	})

	t.Run("withdraw after decision is too late", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		quotes := mock_interfaces.NewMockIContractorQuoteRepository(ctrl)
		requests := mock_interfaces.NewMockIQuoteRequestRepository(ctrl)
		uc := NewBidUseCase(quotes, nil, requests, nil)

		quotes.EXPECT().GetByID(gomock.Any(), "bid-1").Return(entities.ContractorQuote{ID: "bid-1", RequestID: "req-1", ContractorID: "c-1"}, nil)
		requests.EXPECT().GetByID(gomock.Any(), "req-1").
			Return(entities.QuoteRequest{ID: "req-1", Status: entities.RequestStatusCompleted, SelectedContractorID: "c-2"}, nil)

		if err := uc.Withdraw(context.Background(), "bid-1", "c-1"); !errors.Is(err, ErrSelectionAlreadyMade) {
			t.Fatalf("expected ErrSelectionAlreadyMade, got %v", err)
		}
	})

	t.Run("withdraw success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		quotes := mock_interfaces.NewMockIContractorQuoteRepository(ctrl)
		requests := mock_interfaces.NewMockIQuoteRequestRepository(ctrl)
		uc := NewBidUseCase(quotes, nil, requests, nil)

		quotes.EXPECT().GetByID(gomock.Any(), "bid-1").Return(entities.ContractorQuote{ID: "bid-1", RequestID: "req-1", ContractorID: "c-1"}, nil)
		requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(entities.QuoteRequest{ID: "req-1", Status: entities.RequestStatusBidding}, nil)
		quotes.EXPECT().Delete(gomock.Any(), "req-1", "c-1").Return(nil)

		if err := uc.Withdraw(context.Background(), "bid-1", "c-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
