package interfaces

import (
	"context"
	"renomatch/internal/domain/entities"
)

//go:generate mockgen -source=contractor_quote_repository_interface.go -destination=mocks/contractor_quote_repository_interface_mock.go -package=mock_interfaces

// IContractorQuoteRepository abstracts DynamoDB persistence for ContractorQuote.
//
// Create is a conditional put keyed by (request, contractor); one bid per
// pair is a storage-level guarantee. A lost condition returns a zero-value
// quote with a nil error.

type IContractorQuoteRepository interface {
	Create(ctx context.Context, q entities.ContractorQuote) (entities.ContractorQuote, error)
	GetByID(ctx context.Context, id string) (entities.ContractorQuote, error)
	GetByPair(ctx context.Context, requestID, contractorID string) (entities.ContractorQuote, error)
	ListByRequestID(ctx context.Context, requestID string) ([]entities.ContractorQuote, error)
	ListByContractorID(ctx context.Context, contractorID string) ([]entities.ContractorQuote, error)
	CountByRequestID(ctx context.Context, requestID string) (int, error)
	Delete(ctx context.Context, requestID, contractorID string) error
	MarkAccepted(ctx context.Context, requestID, contractorID string) (entities.ContractorQuote, error)
}
