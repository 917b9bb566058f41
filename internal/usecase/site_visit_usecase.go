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
	ErrVisitNotFound         = errors.New("site visit application not found")
	ErrInvalidApplicationID  = errors.New("invalid application id")
	ErrInvalidContractorID   = errors.New("invalid contractor id")
	ErrVisitConflict         = errors.New("active site visit application already exists")
	ErrVisitNotEligible      = errors.New("request is not accepting site visits")
	ErrVisitAlreadyCancelled = errors.New("site visit application already cancelled")
	ErrVisitAlreadyCompleted = errors.New("site visit application already completed")
	ErrNotVisitOwner         = errors.New("actor does not own this application")
	ErrContractorNotFound    = errors.New("contractor not found")
	ErrContractorInactive    = errors.New("contractor is not active")
)

//go:generate mockgen -source=site_visit_usecase.go -destination=../adapter/http/handlers/mocks/site_visit_usecase_mock.go -package=mocks

// ISiteVisitUseCase coordinates per-contractor applications to visit a
// request's site, independent of the request's own status machine.
//
// Cancelling an already-cancelled application is an explicit conflict, not an
// idempotent no-op: a second cancel means the caller acted on a stale view
// and should re-fetch.

type ISiteVisitUseCase interface {
	Apply(ctx context.Context, requestID, contractorID string) (entities.SiteVisitApplication, error)
	Cancel(ctx context.Context, applicationID, actorID string, staffActor bool) (entities.SiteVisitApplication, error)
	MarkCompleted(ctx context.Context, applicationID string) (entities.SiteVisitApplication, error)
	ListByRequest(ctx context.Context, requestID string) ([]entities.SiteVisitApplication, error)
}

type SiteVisitUseCase struct {
	visits      interfaces.ISiteVisitRepository
	requests    interfaces.IQuoteRequestRepository
	contractors interfaces.IContractorRepository
	nowFn       func() time.Time
}

var _ ISiteVisitUseCase = (*SiteVisitUseCase)(nil)

func NewSiteVisitUseCase(visits interfaces.ISiteVisitRepository, requests interfaces.IQuoteRequestRepository, contractors interfaces.IContractorRepository) *SiteVisitUseCase {
	return &SiteVisitUseCase{
		visits:      visits,
		requests:    requests,
		contractors: contractors,
		nowFn:       func() time.Time { return time.Now().UTC() },
	}
}

func (u *SiteVisitUseCase) Apply(ctx context.Context, requestID, contractorID string) (entities.SiteVisitApplication, error) {
	requestID = strings.TrimSpace(requestID)
	contractorID = strings.TrimSpace(contractorID)
	if requestID == "" {
		return entities.SiteVisitApplication{}, ErrInvalidRequestID
	}
	if contractorID == "" {
		return entities.SiteVisitApplication{}, ErrInvalidContractorID
	}

	contractor, err := u.contractors.GetByID(ctx, contractorID)
	if err != nil {
		return entities.SiteVisitApplication{}, err
	}
	if contractor.ID == "" {
		return entities.SiteVisitApplication{}, ErrContractorNotFound
	}
	if !contractor.Active {
		return entities.SiteVisitApplication{}, ErrContractorInactive
	}

	request, err := u.requests.GetByID(ctx, requestID)
	if err != nil {
		return entities.SiteVisitApplication{}, err
	}
	if request.ID == "" {
		return entities.SiteVisitApplication{}, ErrRequestNotFound
	}
	if !request.Status.AcceptsVisitApplications() {
		return entities.SiteVisitApplication{}, ErrVisitNotEligible
	}

	a := entities.SiteVisitApplication{
		ID:           uuid.NewString(),
		RequestID:    requestID,
		ContractorID: contractorID,
		Status:       entities.VisitStatusPending,
		AppliedAt:    u.nowFn(),
	}

	// The conditional put is what closes the check-then-insert window; the
	// zero-value result means an active application already holds the pair.
	created, err := u.visits.Create(ctx, a)
	if err != nil {
		return entities.SiteVisitApplication{}, err
	}
	if created.ID == "" {
		return entities.SiteVisitApplication{}, ErrVisitConflict
	}
	log.Printf("[visit][usecase] applied request_id=%s contractor_id=%s application_id=%s", requestID, contractorID, created.ID)
	return created, nil
}

func (u *SiteVisitUseCase) Cancel(ctx context.Context, applicationID, actorID string, staffActor bool) (entities.SiteVisitApplication, error) {
	applicationID = strings.TrimSpace(applicationID)
	if applicationID == "" {
		return entities.SiteVisitApplication{}, ErrInvalidApplicationID
	}

	app, err := u.visits.GetByID(ctx, applicationID)
	if err != nil {
		return entities.SiteVisitApplication{}, err
	}
	if app.ID == "" {
		return entities.SiteVisitApplication{}, ErrVisitNotFound
	}
	if !staffActor && app.ContractorID != strings.TrimSpace(actorID) {
		return entities.SiteVisitApplication{}, ErrNotVisitOwner
	}
	if app.Cancelled {
		return entities.SiteVisitApplication{}, ErrVisitAlreadyCancelled
	}

	cancelled, err := u.visits.Cancel(ctx, app.RequestID, app.ContractorID, strings.TrimSpace(actorID))
	if err != nil {
		return entities.SiteVisitApplication{}, err
	}
	if cancelled.ID == "" {
		// Condition lost: cancelled concurrently.
		return entities.SiteVisitApplication{}, ErrVisitAlreadyCancelled
	}
	log.Printf("[visit][usecase] cancelled application_id=%s actor_id=%s", applicationID, actorID)
	return cancelled, nil
}

// MarkCompleted records the external fact that the physical visit happened.
func (u *SiteVisitUseCase) MarkCompleted(ctx context.Context, applicationID string) (entities.SiteVisitApplication, error) {
	applicationID = strings.TrimSpace(applicationID)
	if applicationID == "" {
		return entities.SiteVisitApplication{}, ErrInvalidApplicationID
	}

	app, err := u.visits.GetByID(ctx, applicationID)
	if err != nil {
		return entities.SiteVisitApplication{}, err
	}
	if app.ID == "" {
		return entities.SiteVisitApplication{}, ErrVisitNotFound
	}
	if app.Cancelled {
		return entities.SiteVisitApplication{}, ErrVisitAlreadyCancelled
	}
	if app.Status == entities.VisitStatusCompleted {
		return entities.SiteVisitApplication{}, ErrVisitAlreadyCompleted
	}

	completed, err := u.visits.MarkCompleted(ctx, app.RequestID, app.ContractorID)
	if err != nil {
		return entities.SiteVisitApplication{}, err
	}
	if completed.ID == "" {
		return entities.SiteVisitApplication{}, ErrVisitNotFound
	}
	log.Printf("[visit][usecase] completed application_id=%s", applicationID)
	return completed, nil
}

func (u *SiteVisitUseCase) ListByRequest(ctx context.Context, requestID string) ([]entities.SiteVisitApplication, error) {
	requestID = strings.TrimSpace(requestID)
	if requestID == "" {
		return nil, ErrInvalidRequestID
	}
	return u.visits.ListByRequestID(ctx, requestID)
}
