package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"renomatch/internal/domain/entities"
	"renomatch/internal/usecase/interfaces"
)

var (
	ErrAlreadyDecided   = errors.New("request already has a selected contractor")
	ErrQuoteNotFound    = errors.New("quote not found")
	ErrQuoteMismatch    = errors.New("quote does not belong to this request and contractor")
	ErrInvalidQuoteID   = errors.New("invalid quote id")
	ErrSelectionNotOpen = errors.New("request is not open for selection")
)

//go:generate mockgen -source=selection_usecase.go -destination=../adapter/http/handlers/mocks/selection_usecase_mock.go -package=mocks

// ISelectionUseCase performs the exclusive pick-one-contractor operation.
//
// The selection write is a storage-level conditional update ("set the winner
// only while no winner exists"); the zero-rows-affected outcome maps to
// ErrAlreadyDecided and is never treated as success. Every other contractor's
// dashboard flips to not-selected on the next read through the projection;
// there is no per-contractor fan-out write.

type ISelectionUseCase interface {
	SelectContractor(ctx context.Context, requestID, contractorID, quoteID, actorID string) (entities.QuoteRequest, error)
}

type SelectionUseCase struct {
	requests    interfaces.IQuoteRequestRepository
	quotes      interfaces.IContractorQuoteRepository
	contractors interfaces.IContractorRepository
	notifier    interfaces.INotificationSender

	// notifyDone, when set, is closed after the fire-and-forget notification
	// attempt finishes. Tests use it to wait without sleeping.
	notifyDone chan struct{}
}

var _ ISelectionUseCase = (*SelectionUseCase)(nil)

func NewSelectionUseCase(requests interfaces.IQuoteRequestRepository, quotes interfaces.IContractorQuoteRepository, contractors interfaces.IContractorRepository, notifier interfaces.INotificationSender) *SelectionUseCase {
	return &SelectionUseCase{requests: requests, quotes: quotes, contractors: contractors, notifier: notifier}
}

func (u *SelectionUseCase) SelectContractor(ctx context.Context, requestID, contractorID, quoteID, actorID string) (entities.QuoteRequest, error) {
	requestID = strings.TrimSpace(requestID)
	contractorID = strings.TrimSpace(contractorID)
	quoteID = strings.TrimSpace(quoteID)
	if requestID == "" {
		return entities.QuoteRequest{}, ErrInvalidRequestID
	}
	if contractorID == "" {
		return entities.QuoteRequest{}, ErrInvalidContractorID
	}
	if quoteID == "" {
		return entities.QuoteRequest{}, ErrInvalidQuoteID
	}

	quote, err := u.quotes.GetByID(ctx, quoteID)
	if err != nil {
		return entities.QuoteRequest{}, err
	}
	if quote.ID == "" {
		return entities.QuoteRequest{}, ErrQuoteNotFound
	}
	if quote.RequestID != requestID || quote.ContractorID != contractorID {
		return entities.QuoteRequest{}, ErrQuoteMismatch
	}

	request, err := u.requests.GetByID(ctx, requestID)
	if err != nil {
		return entities.QuoteRequest{}, err
	}
	if request.ID == "" {
		return entities.QuoteRequest{}, ErrRequestNotFound
	}

	// Cancelled and rejected are absorbing: no selection may revive them.
	// The conditional write below re-checks the status under contention.
	switch {
	case request.Status == entities.RequestStatusCompleted:
		return entities.QuoteRequest{}, ErrAlreadyDecided
	case request.Status.Terminal():
		return entities.QuoteRequest{}, ErrRequestTerminal
	case !request.Status.AcceptsSelection():
		return entities.QuoteRequest{}, ErrSelectionNotOpen
	}

	// The single synchronization point across all concurrent contractor
	// actions: set-if-absent on selected_contractor_id. A lost condition is
	// a lost race, not a retryable failure.
	updated, err := u.requests.FinalizeSelection(ctx, requestID, contractorID, quoteID)
	if err != nil {
		return entities.QuoteRequest{}, err
	}
	if updated.ID == "" {
		return entities.QuoteRequest{}, ErrAlreadyDecided
	}
	log.Printf("[selection][usecase] decided request_id=%s contractor_id=%s quote_id=%s actor_id=%s", requestID, contractorID, quoteID, actorID)

	// Follow-up writes are best-effort: the selection itself is already
	// durable and must not be rolled back.
	if _, err := u.quotes.MarkAccepted(ctx, requestID, contractorID); err != nil {
		log.Printf("[selection][usecase] mark accepted failed request_id=%s contractor_id=%s err=%v", requestID, contractorID, err)
	}

	u.dispatchNotification(updated, quote)

	return updated, nil
}

// dispatchNotification fans the selection event out to the winning contractor
// and the customer. Fire-and-forget: runs detached from the caller's context,
// failures are logged and never surfaced.
func (u *SelectionUseCase) dispatchNotification(request entities.QuoteRequest, quote entities.ContractorQuote) {
	done := u.notifyDone
	go func() {
		if done != nil {
			defer close(done)
		}

		ctx := context.Background()
		winner, err := u.contractors.GetByID(ctx, request.SelectedContractorID)
		if err != nil || winner.ID == "" {
			log.Printf("[selection][notify] winner lookup failed request_id=%s contractor_id=%s err=%v", request.ID, request.SelectedContractorID, err)
			return
		}

		if err := u.notifier.NotifySelection(ctx, winner, request.CustomerID, request, quote); err != nil {
			log.Printf("[selection][notify] send failed request_id=%s contractor_id=%s err=%v", request.ID, winner.ID, err)
			return
		}
		log.Printf("[selection][notify] sent request_id=%s contractor_id=%s customer_id=%s", request.ID, winner.ID, request.CustomerID)
	}()
}
