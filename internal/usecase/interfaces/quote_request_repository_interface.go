package interfaces

import (
	"context"
	"renomatch/internal/domain/entities"
)

//go:generate mockgen -source=quote_request_repository_interface.go -destination=mocks/quote_request_repository_interface_mock.go -package=mock_interfaces

// IQuoteRequestRepository abstracts DynamoDB persistence for QuoteRequest.
//
// Conventions shared by all repositories in this package:
//   - a zero-value entity with a nil error means "not found";
//   - conditional writes that lose their condition also return a zero-value
//     entity with a nil error, so use cases can tell "condition failed" from
//     "storage failed" without leaking DynamoDB types upward.
//
// UpdateStatus is a compare-and-swap on the current status: it only writes
// when the stored status still equals from. FinalizeSelection is the single
// write-once update: it only succeeds while selected_contractor_id is absent.

type IQuoteRequestRepository interface {
	Create(ctx context.Context, r entities.QuoteRequest) (entities.QuoteRequest, error)
	GetByID(ctx context.Context, id string) (entities.QuoteRequest, error)
	ListByCustomerID(ctx context.Context, customerID string) ([]entities.QuoteRequest, error)
	UpdateStatus(ctx context.Context, id string, from, to entities.RequestStatus) (entities.QuoteRequest, error)
	FinalizeSelection(ctx context.Context, requestID, contractorID, quoteID string) (entities.QuoteRequest, error)
}
