package interfaces

import (
	"context"
	"renomatch/internal/domain/entities"
)

//go:generate mockgen -source=site_visit_repository_interface.go -destination=mocks/site_visit_repository_interface_mock.go -package=mock_interfaces

// ISiteVisitRepository abstracts DynamoDB persistence for SiteVisitApplication.
//
// Create is a conditional put keyed by (request, contractor): it only writes
// when no row exists for the pair or the existing row is cancelled, which is
// what enforces active-application uniqueness at the storage layer. A lost
// condition returns a zero-value application with a nil error.
//
// Cancel and MarkCompleted mutate by pair key and are likewise conditional
// (Cancel requires a not-yet-cancelled row, MarkCompleted an existing one).

type ISiteVisitRepository interface {
	Create(ctx context.Context, a entities.SiteVisitApplication) (entities.SiteVisitApplication, error)
	GetByID(ctx context.Context, id string) (entities.SiteVisitApplication, error)
	GetByPair(ctx context.Context, requestID, contractorID string) (entities.SiteVisitApplication, error)
	ListByRequestID(ctx context.Context, requestID string) ([]entities.SiteVisitApplication, error)
	ListByContractorID(ctx context.Context, contractorID string) ([]entities.SiteVisitApplication, error)
	Cancel(ctx context.Context, requestID, contractorID, actorID string) (entities.SiteVisitApplication, error)
	MarkCompleted(ctx context.Context, requestID, contractorID string) (entities.SiteVisitApplication, error)
}
