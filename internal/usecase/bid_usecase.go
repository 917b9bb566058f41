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
	ErrBidNotFound          = errors.New("bid not found")
	ErrInvalidBidID         = errors.New("invalid bid id")
	ErrInvalidBidPrice      = errors.New("invalid bid price")
	ErrBidNotEligible       = errors.New("no completed site visit for this request")
	ErrRequestClosed        = errors.New("request is not accepting bids")
	ErrDuplicateBid         = errors.New("bid already exists for this request")
	ErrNotBidOwner          = errors.New("actor does not own this bid")
	ErrSelectionAlreadyMade = errors.New("request has already been decided")
)

//go:generate mockgen -source=bid_usecase.go -destination=../adapter/http/handlers/mocks/bid_usecase_mock.go -package=mocks

// IBidUseCase is the bid ledger: at most one quote per (request, contractor),
// submittable only after a completed, non-cancelled site visit and only while
// the request is in its bidding phase.

type IBidUseCase interface {
	Submit(ctx context.Context, requestID, contractorID string, price float64, description, documentRef string) (entities.ContractorQuote, error)
	Withdraw(ctx context.Context, bidID, contractorID string) error
	ListByRequest(ctx context.Context, requestID string) ([]entities.ContractorQuote, error)
}

type BidUseCase struct {
	quotes      interfaces.IContractorQuoteRepository
	visits      interfaces.ISiteVisitRepository
	requests    interfaces.IQuoteRequestRepository
	contractors interfaces.IContractorRepository
	nowFn       func() time.Time
}

var _ IBidUseCase = (*BidUseCase)(nil)

func NewBidUseCase(quotes interfaces.IContractorQuoteRepository, visits interfaces.ISiteVisitRepository, requests interfaces.IQuoteRequestRepository, contractors interfaces.IContractorRepository) *BidUseCase {
	return &BidUseCase{
		quotes:      quotes,
		visits:      visits,
		requests:    requests,
		contractors: contractors,
		nowFn:       func() time.Time { return time.Now().UTC() },
	}
}

func (u *BidUseCase) Submit(ctx context.Context, requestID, contractorID string, price float64, description, documentRef string) (entities.ContractorQuote, error) {
	requestID = strings.TrimSpace(requestID)
	contractorID = strings.TrimSpace(contractorID)
	if requestID == "" {
		return entities.ContractorQuote{}, ErrInvalidRequestID
	}
	if contractorID == "" {
		return entities.ContractorQuote{}, ErrInvalidContractorID
	}
	if price <= 0 {
		return entities.ContractorQuote{}, ErrInvalidBidPrice
	}

	contractor, err := u.contractors.GetByID(ctx, contractorID)
	if err != nil {
		return entities.ContractorQuote{}, err
	}
	if contractor.ID == "" {
		return entities.ContractorQuote{}, ErrContractorNotFound
	}
	if !contractor.Active {
		return entities.ContractorQuote{}, ErrContractorInactive
	}

	request, err := u.requests.GetByID(ctx, requestID)
	if err != nil {
		return entities.ContractorQuote{}, err
	}
	if request.ID == "" {
		return entities.ContractorQuote{}, ErrRequestNotFound
	}
	if !request.Status.AcceptsBids() {
		return entities.ContractorQuote{}, ErrRequestClosed
	}

	// The completed-visit precondition holds regardless of request phase: a
	// pending, cancelled or missed visit all refuse the bid.
	visit, err := u.visits.GetByPair(ctx, requestID, contractorID)
	if err != nil {
		return entities.ContractorQuote{}, err
	}
	if visit.ID == "" || !visit.CompletedVisit() {
		return entities.ContractorQuote{}, ErrBidNotEligible
	}

	q := entities.ContractorQuote{
		ID:           uuid.NewString(),
		RequestID:    requestID,
		ContractorID: contractorID,
		Price:        price,
		Description:  strings.TrimSpace(description),
		DocumentRef:  strings.TrimSpace(documentRef),
		Status:       entities.QuoteStatusSubmitted,
		SubmittedAt:  u.nowFn(),
	}

	created, err := u.quotes.Create(ctx, q)
	if err != nil {
		return entities.ContractorQuote{}, err
	}
	if created.ID == "" {
		return entities.ContractorQuote{}, ErrDuplicateBid
	}
	log.Printf("[bid][usecase] submitted request_id=%s contractor_id=%s bid_id=%s price=%.2f", requestID, contractorID, created.ID, price)
	return created, nil
}

func (u *BidUseCase) Withdraw(ctx context.Context, bidID, contractorID string) error {
	bidID = strings.TrimSpace(bidID)
	contractorID = strings.TrimSpace(contractorID)
	if bidID == "" {
		return ErrInvalidBidID
	}
	if contractorID == "" {
		return ErrInvalidContractorID
	}

	bid, err := u.quotes.GetByID(ctx, bidID)
	if err != nil {
		return err
	}
	if bid.ID == "" {
		return ErrBidNotFound
	}
	if bid.ContractorID != contractorID {
		return ErrNotBidOwner
	}

	request, err := u.requests.GetByID(ctx, bid.RequestID)
	if err != nil {
		return err
	}
	if request.Decided() {
		// Bids freeze once the selection is finalized, winners and losers alike.
		return ErrSelectionAlreadyMade
	}

	if err := u.quotes.Delete(ctx, bid.RequestID, bid.ContractorID); err != nil {
		return err
	}
	log.Printf("[bid][usecase] withdrawn bid_id=%s contractor_id=%s", bidID, contractorID)
	return nil
}

func (u *BidUseCase) ListByRequest(ctx context.Context, requestID string) ([]entities.ContractorQuote, error) {
	requestID = strings.TrimSpace(requestID)
	if requestID == "" {
		return nil, ErrInvalidRequestID
	}
	return u.quotes.ListByRequestID(ctx, requestID)
}
