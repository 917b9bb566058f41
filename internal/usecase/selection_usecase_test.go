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

func TestSelectionUseCase_SelectContractor(t *testing.T) {
	t.Run("quote not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		requests := mock_interfaces.NewMockIQuoteRequestRepository(ctrl)
		quotes := mock_interfaces.NewMockIContractorQuoteRepository(ctrl)
		uc := NewSelectionUseCase(requests, quotes, nil, nil)

		quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.ContractorQuote{}, nil)

		_, err := uc.SelectContractor(context.Background(), "req-1", "c-1", "q-1", "cust-1")
		if !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})

	t.Run("quote belongs to another pair", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		requests := mock_interfaces.NewMockIQuoteRequestRepository(ctrl)
		quotes := mock_interfaces.NewMockIContractorQuoteRepository(ctrl)
		uc := NewSelectionUseCase(requests, quotes, nil, nil)

		quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.ContractorQuote{ID: "q-1", RequestID: "req-1", ContractorID: "c-other"}, nil)

		_, err := uc.SelectContractor(context.Background(), "req-1", "c-1", "q-1", "cust-1")
		if !errors.Is(err, ErrQuoteMismatch) {
			t.Fatalf("expected ErrQuoteMismatch, got %v", err)
		}
	})

	t.Run("cancelled request cannot be revived by a selection", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		requests := mock_interfaces.NewMockIQuoteRequestRepository(ctrl)
		quotes := mock_interfaces.NewMockIContractorQuoteRepository(ctrl)
		uc := NewSelectionUseCase(requests, quotes, nil, nil)

		// The quote row still exists after the cancellation; the request's
		// terminal status alone must refuse the selection.
		quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.ContractorQuote{ID: "q-1", RequestID: "req-1", ContractorID: "c-1"}, nil)
		requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(entities.QuoteRequest{ID: "req-1", Status: entities.RequestStatusCancelled}, nil)

		_, err := uc.SelectContractor(context.Background(), "req-1", "c-1", "q-1", "cust-1")
		if !errors.Is(err, ErrRequestTerminal) {
			t.Fatalf("expected ErrRequestTerminal, got %v", err)
		}
	})

	t.Run("rejected request cannot be decided", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		requests := mock_interfaces.NewMockIQuoteRequestRepository(ctrl)
		quotes := mock_interfaces.NewMockIContractorQuoteRepository(ctrl)
		uc := NewSelectionUseCase(requests, quotes, nil, nil)

		quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.ContractorQuote{ID: "q-1", RequestID: "req-1", ContractorID: "c-1"}, nil)
		requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(entities.QuoteRequest{ID: "req-1", Status: entities.RequestStatusRejected}, nil)

		_, err := uc.SelectContractor(context.Background(), "req-1", "c-1", "q-1", "cust-1")
		if !errors.Is(err, ErrRequestTerminal) {
			t.Fatalf("expected ErrRequestTerminal, got %v", err)
		}
	})

	t.Run("completed request maps to already decided", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		requests := mock_interfaces.NewMockIQuoteRequestRepository(ctrl)
		quotes := mock_interfaces.NewMockIContractorQuoteRepository(ctrl)
		uc := NewSelectionUseCase(requests, quotes, nil, nil)

		quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.ContractorQuote{ID: "q-1", RequestID: "req-1", ContractorID: "c-1"}, nil)
		requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(entities.QuoteRequest{ID: "req-1", Status: entities.RequestStatusCompleted, SelectedContractorID: "c-other"}, nil)

		_, err := uc.SelectContractor(context.Background(), "req-1", "c-1", "q-1", "cust-1")
		if !errors.Is(err, ErrAlreadyDecided) {
			t.Fatalf("expected ErrAlreadyDecided, got %v", err)
		}
	})

	t.Run("selection before bidding is refused", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		requests := mock_interfaces.NewMockIQuoteRequestRepository(ctrl)
		quotes := mock_interfaces.NewMockIContractorQuoteRepository(ctrl)
		uc := NewSelectionUseCase(requests, quotes, nil, nil)

		quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.ContractorQuote{ID: "q-1", RequestID: "req-1", ContractorID: "c-1"}, nil)
		requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(entities.QuoteRequest{ID: "req-1", Status: entities.RequestStatusSiteVisitPending}, nil)

		_, err := uc.SelectContractor(context.Background(), "req-1", "c-1", "q-1", "cust-1")
		if !errors.Is(err, ErrSelectionNotOpen) {
			t.Fatalf("expected ErrSelectionNotOpen, got %v", err)
		}
	})

	t.Run("second selection is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		requests := mock_interfaces.NewMockIQuoteRequestRepository(ctrl)
		quotes := mock_interfaces.NewMockIContractorQuoteRepository(ctrl)
		uc := NewSelectionUseCase(requests, quotes, nil, nil)

		quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.ContractorQuote{ID: "q-1", RequestID: "req-1", ContractorID: "c-1"}, nil)
		requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(entities.QuoteRequest{ID: "req-1", Status: entities.RequestStatusBiddingClosed}, nil)
		requests.EXPECT().FinalizeSelection(gomock.Any(), "req-1", "c-1", "q-1").Return(entities.QuoteRequest{}, nil)

		_, err := uc.SelectContractor(context.Background(), "req-1", "c-1", "q-1", "cust-1")
		if !errors.Is(err, ErrAlreadyDecided) {
			t.Fatalf("expected ErrAlreadyDecided, got %v", err)
		}
	})

	t.Run("selection succeeds and notifies", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		requests := mock_interfaces.NewMockIQuoteRequestRepository(ctrl)
		quotes := mock_interfaces.NewMockIContractorQuoteRepository(ctrl)
		contractors := mock_interfaces.NewMockIContractorRepository(ctrl)
		notifier := mock_interfaces.NewMockINotificationSender(ctrl)
		uc := NewSelectionUseCase(requests, quotes, contractors, notifier)
		uc.notifyDone = make(chan struct{})

		quote := entities.ContractorQuote{ID: "q-1", RequestID: "req-1", ContractorID: "c-1", Price: 1500}
		decided := entities.QuoteRequest{
			ID:                   "req-1",
			CustomerID:           "cust-1",
			Status:               entities.RequestStatusCompleted,
			SelectedContractorID: "c-1",
			SelectedQuoteID:      "q-1",
		}

		quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(quote, nil)
		requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(entities.QuoteRequest{ID: "req-1", CustomerID: "cust-1", Status: entities.RequestStatusBiddingClosed}, nil)
		requests.EXPECT().FinalizeSelection(gomock.Any(), "req-1", "c-1", "q-1").Return(decided, nil)
		quotes.EXPECT().MarkAccepted(gomock.Any(), "req-1", "c-1").Return(entities.ContractorQuote{ID: "q-1", Status: entities.QuoteStatusAccepted}, nil)
		contractors.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Contractor{ID: "c-1", BusinessName: "Acme", PushToken: "tok"}, nil)
		notifier.EXPECT().NotifySelection(gomock.Any(), gomock.Any(), "cust-1", gomock.Any(), gomock.Any()).Return(nil)

		res, err := uc.SelectContractor(context.Background(), "req-1", "c-1", "q-1", "cust-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.SelectedContractorID != "c-1" || res.SelectedQuoteID != "q-1" {
			t.Fatalf("unexpected selection: %+v", res)
		}

		select {
		case <-uc.notifyDone:
		case <-time.After(2 * time.Second):
			t.Fatalf("notification goroutine never finished")
		}
	})

	t.Run("notification failure does not undo the selection", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		requests := mock_interfaces.NewMockIQuoteRequestRepository(ctrl)
		quotes := mock_interfaces.NewMockIContractorQuoteRepository(ctrl)
		contractors := mock_interfaces.NewMockIContractorRepository(ctrl)
		notifier := mock_interfaces.NewMockINotificationSender(ctrl)
		uc := NewSelectionUseCase(requests, quotes, contractors, notifier)
		uc.notifyDone = make(chan struct{})

		quote := entities.ContractorQuote{ID: "q-1", RequestID: "req-1", ContractorID: "c-1"}
		decided := entities.QuoteRequest{ID: "req-1", CustomerID: "cust-1", Status: entities.RequestStatusCompleted, SelectedContractorID: "c-1", SelectedQuoteID: "q-1"}

		quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(quote, nil)
		requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(entities.QuoteRequest{ID: "req-1", CustomerID: "cust-1", Status: entities.RequestStatusBiddingClosed}, nil)
		requests.EXPECT().FinalizeSelection(gomock.Any(), "req-1", "c-1", "q-1").Return(decided, nil)
		quotes.EXPECT().MarkAccepted(gomock.Any(), "req-1", "c-1").Return(entities.ContractorQuote{}, errors.New("ddb down"))
		contractors.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Contractor{ID: "c-1"}, nil)
		notifier.EXPECT().NotifySelection(gomock.Any(), gomock.Any(), "cust-1", gomock.Any(), gomock.Any()).Return(errors.New("push down"))

		res, err := uc.SelectContractor(context.Background(), "req-1", "c-1", "q-1", "cust-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.Decided() {
			t.Fatalf("expected decided request")
		}

		select {
		case <-uc.notifyDone:
		case <-time.After(2 * time.Second):
			t.Fatalf("notification goroutine never finished")
		}
	})
}
