package usecase

import (
	"context"
	"sort"
	"strings"
	"time"

	"renomatch/internal/domain/entities"
	"renomatch/internal/usecase/interfaces"
)

//go:generate mockgen -source=dashboard_usecase.go -destination=../adapter/http/handlers/mocks/dashboard_usecase_mock.go -package=mocks

// IDashboardUseCase is the read side: it loads (request, own visit, own bid)
// and reduces them through the pure entities.DeriveProjectStatus derivation.
// No locking anywhere; a racing read sees slightly stale data, never corrupt
// data.

type IDashboardUseCase interface {
	ProjectForContractor(ctx context.Context, requestID, contractorID string) (ContractorProjection, error)
	ListForContractor(ctx context.Context, contractorID string) ([]ContractorProjection, error)
}

// ContractorProjection is one dashboard row for one contractor. Visit and Bid
// are nil when the contractor never engaged that way.
type ContractorProjection struct {
	Request     entities.QuoteRequest
	Visit       *entities.SiteVisitApplication
	Bid         *entities.ContractorQuote
	Status      entities.ProjectStatus
	VisitMissed bool
}

type DashboardUseCase struct {
	requests interfaces.IQuoteRequestRepository
	visits   interfaces.ISiteVisitRepository
	quotes   interfaces.IContractorQuoteRepository
	nowFn    func() time.Time
}

var _ IDashboardUseCase = (*DashboardUseCase)(nil)

func NewDashboardUseCase(requests interfaces.IQuoteRequestRepository, visits interfaces.ISiteVisitRepository, quotes interfaces.IContractorQuoteRepository) *DashboardUseCase {
	return &DashboardUseCase{
		requests: requests,
		visits:   visits,
		quotes:   quotes,
		nowFn:    func() time.Time { return time.Now().UTC() },
	}
}

func (u *DashboardUseCase) ProjectForContractor(ctx context.Context, requestID, contractorID string) (ContractorProjection, error) {
	requestID = strings.TrimSpace(requestID)
	contractorID = strings.TrimSpace(contractorID)
	if requestID == "" {
		return ContractorProjection{}, ErrInvalidRequestID
	}
	if contractorID == "" {
		return ContractorProjection{}, ErrInvalidContractorID
	}

	request, err := u.requests.GetByID(ctx, requestID)
	if err != nil {
		return ContractorProjection{}, err
	}
	if request.ID == "" {
		return ContractorProjection{}, ErrRequestNotFound
	}

	return u.project(ctx, request, contractorID)
}

// ListForContractor builds the dashboard list: every request the contractor
// engaged with, via a visit application or a bid, projected for that viewer.
func (u *DashboardUseCase) ListForContractor(ctx context.Context, contractorID string) ([]ContractorProjection, error) {
	contractorID = strings.TrimSpace(contractorID)
	if contractorID == "" {
		return nil, ErrInvalidContractorID
	}

	visits, err := u.visits.ListByContractorID(ctx, contractorID)
	if err != nil {
		return nil, err
	}
	bids, err := u.quotes.ListByContractorID(ctx, contractorID)
	if err != nil {
		return nil, err
	}

	requestIDs := make(map[string]struct{}, len(visits)+len(bids))
	for _, v := range visits {
		requestIDs[v.RequestID] = struct{}{}
	}
	for _, b := range bids {
		requestIDs[b.RequestID] = struct{}{}
	}

	ids := make([]string, 0, len(requestIDs))
	for id := range requestIDs {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	projections := make([]ContractorProjection, 0, len(ids))
	for _, id := range ids {
		request, err := u.requests.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if request.ID == "" {
			// Engagement rows pointing at a missing request are skipped, not
			// fatal: requests are never hard-deleted in normal operation.
			continue
		}
		p, err := u.project(ctx, request, contractorID)
		if err != nil {
			return nil, err
		}
		projections = append(projections, p)
	}
	return projections, nil
}

func (u *DashboardUseCase) project(ctx context.Context, request entities.QuoteRequest, contractorID string) (ContractorProjection, error) {
	var visit *entities.SiteVisitApplication
	if v, err := u.visits.GetByPair(ctx, request.ID, contractorID); err != nil {
		return ContractorProjection{}, err
	} else if v.ID != "" {
		visit = &v
	}

	var bid *entities.ContractorQuote
	if b, err := u.quotes.GetByPair(ctx, request.ID, contractorID); err != nil {
		return ContractorProjection{}, err
	} else if b.ID != "" {
		bid = &b
	}

	p := ContractorProjection{
		Request: request,
		Visit:   visit,
		Bid:     bid,
		Status:  entities.DeriveProjectStatus(contractorID, request, visit, bid),
	}
	if visit != nil {
		if proposed, ok := request.EarliestVisitDate(); ok {
			p.VisitMissed = visit.Missed(proposed, u.nowFn())
		}
	}
	return p, nil
}
