package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"renomatch/internal/domain/entities"
	"renomatch/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrRequestNotFound      = errors.New("quote request not found")
	ErrInvalidRequestID     = errors.New("invalid request id")
	ErrInvalidCustomerID    = errors.New("invalid customer id")
	ErrInvalidRequestInput  = errors.New("invalid quote request input")
	ErrInvalidTransition    = errors.New("illegal status transition")
	ErrRequestTerminal      = errors.New("request is in a terminal state")
	ErrCorruptRequestStatus = errors.New("unknown request status in storage")
)

//go:generate mockgen -source=request_usecase.go -destination=../adapter/http/handlers/mocks/request_usecase_mock.go -package=mocks

// IRequestUseCase is the request status machine: the only writer of the
// canonical status field.
//
//   - Review(approve=true) moves pending straight to site-visit-pending;
//     there is no window where a request is approved but not visit-eligible.
//   - OpenBidding/CloseBidding bracket the quote-submission phase.
//   - Cancel absorbs from any non-terminal state.

type IRequestUseCase interface {
	Create(ctx context.Context, customerID string, input NewRequestInput) (entities.QuoteRequest, error)
	Review(ctx context.Context, requestID string, approve bool) (entities.QuoteRequest, error)
	OpenBidding(ctx context.Context, requestID string) (entities.QuoteRequest, error)
	CloseBidding(ctx context.Context, requestID string) (entities.QuoteRequest, error)
	Cancel(ctx context.Context, requestID, actorID string) (entities.QuoteRequest, error)
	GetByID(ctx context.Context, id string) (entities.QuoteRequest, error)
	ListByCustomer(ctx context.Context, customerID string) ([]entities.QuoteRequest, error)
}

// NewRequestInput carries the customer-provided fields of a new request.
type NewRequestInput struct {
	SpaceType    string
	BudgetBand   string
	TimelineBand string
	Address      string
	Description  string
	VisitDates   []time.Time
}

type RequestUseCase struct {
	repo      interfaces.IQuoteRequestRepository
	quoteRepo interfaces.IContractorQuoteRepository
}

var _ IRequestUseCase = (*RequestUseCase)(nil)

func NewRequestUseCase(repo interfaces.IQuoteRequestRepository, quoteRepo interfaces.IContractorQuoteRepository) *RequestUseCase {
	return &RequestUseCase{repo: repo, quoteRepo: quoteRepo}
}

func (u *RequestUseCase) Create(ctx context.Context, customerID string, input NewRequestInput) (entities.QuoteRequest, error) {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return entities.QuoteRequest{}, ErrInvalidCustomerID
	}
	if strings.TrimSpace(input.SpaceType) == "" || strings.TrimSpace(input.Address) == "" {
		return entities.QuoteRequest{}, ErrInvalidRequestInput
	}
	if len(input.VisitDates) == 0 {
		return entities.QuoteRequest{}, ErrInvalidRequestInput
	}

	now := time.Now().UTC()
	r := entities.QuoteRequest{
		ID:           uuid.NewString(),
		CustomerID:   customerID,
		SpaceType:    strings.TrimSpace(input.SpaceType),
		BudgetBand:   strings.TrimSpace(input.BudgetBand),
		TimelineBand: strings.TrimSpace(input.TimelineBand),
		Address:      strings.TrimSpace(input.Address),
		Description:  strings.TrimSpace(input.Description),
		VisitDates:   input.VisitDates,
		Status:       entities.RequestStatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	return u.repo.Create(ctx, r)
}

func (u *RequestUseCase) Review(ctx context.Context, requestID string, approve bool) (entities.QuoteRequest, error) {
	// Approval and visit-opening are one transition.
	if approve {
		return u.transition(ctx, requestID, entities.RequestStatusSiteVisitPending)
	}
	return u.transition(ctx, requestID, entities.RequestStatusRejected)
}

func (u *RequestUseCase) OpenBidding(ctx context.Context, requestID string) (entities.QuoteRequest, error) {
	return u.transition(ctx, requestID, entities.RequestStatusBidding)
}

func (u *RequestUseCase) CloseBidding(ctx context.Context, requestID string) (entities.QuoteRequest, error) {
	updated, err := u.transition(ctx, requestID, entities.RequestStatusBiddingClosed)
	if err != nil {
		return entities.QuoteRequest{}, err
	}

	// A closed request with zero bids feeds the per-contractor failed-bid
	// derivation; record the fact for operations visibility.
	if u.quoteRepo != nil {
		if n, cErr := u.quoteRepo.CountByRequestID(ctx, updated.ID); cErr != nil {
			log.Printf("[request][usecase] bid count failed request_id=%s err=%v", updated.ID, cErr)
		} else {
			log.Printf("[request][usecase] bidding closed request_id=%s bids=%d", updated.ID, n)
		}
	}
	return updated, nil
}

func (u *RequestUseCase) Cancel(ctx context.Context, requestID, actorID string) (entities.QuoteRequest, error) {
	updated, err := u.transition(ctx, requestID, entities.RequestStatusCancelled)
	if err != nil {
		return entities.QuoteRequest{}, err
	}
	log.Printf("[request][usecase] cancelled request_id=%s actor_id=%s", updated.ID, actorID)
	return updated, nil
}

// transition applies one step of the status machine. The write is a
// compare-and-swap on the status the step was validated against, so two
// racing staff actions cannot both move the same request.
func (u *RequestUseCase) transition(ctx context.Context, requestID string, to entities.RequestStatus) (entities.QuoteRequest, error) {
	requestID = strings.TrimSpace(requestID)
	if requestID == "" {
		return entities.QuoteRequest{}, ErrInvalidRequestID
	}

	current, err := u.repo.GetByID(ctx, requestID)
	if err != nil {
		return entities.QuoteRequest{}, err
	}
	if current.ID == "" {
		return entities.QuoteRequest{}, ErrRequestNotFound
	}
	if !current.Status.Known() {
		log.Printf("[request][usecase] corrupt status request_id=%s status=%q", requestID, current.Status)
		return entities.QuoteRequest{}, ErrCorruptRequestStatus
	}
	if current.Status.Terminal() {
		return entities.QuoteRequest{}, ErrRequestTerminal
	}
	if !current.Status.CanTransitionTo(to) {
		return entities.QuoteRequest{}, ErrInvalidTransition
	}

	updated, err := u.repo.UpdateStatus(ctx, requestID, current.Status, to)
	if err != nil {
		return entities.QuoteRequest{}, err
	}
	if updated.ID == "" {
		// Lost the CAS: someone moved the request first.
		return entities.QuoteRequest{}, ErrInvalidTransition
	}
	log.Printf("[request][usecase] transition request_id=%s %s -> %s", requestID, current.Status, to)
	return updated, nil
}

func (u *RequestUseCase) GetByID(ctx context.Context, id string) (entities.QuoteRequest, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.QuoteRequest{}, ErrInvalidRequestID
	}

	r, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.QuoteRequest{}, err
	}
	if r.ID == "" {
		return entities.QuoteRequest{}, ErrRequestNotFound
	}
	return r, nil
}

func (u *RequestUseCase) ListByCustomer(ctx context.Context, customerID string) ([]entities.QuoteRequest, error) {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return nil, ErrInvalidCustomerID
	}
	return u.repo.ListByCustomerID(ctx, customerID)
}
