package interfaces

import (
	"context"
	"renomatch/internal/domain/entities"
)

//go:generate mockgen -source=contractor_repository_interface.go -destination=mocks/contractor_repository_interface_mock.go -package=mock_interfaces

// IContractorRepository abstracts DynamoDB persistence for Contractor.

type IContractorRepository interface {
	Create(ctx context.Context, c entities.Contractor) (entities.Contractor, error)
	GetByID(ctx context.Context, id string) (entities.Contractor, error)
	SetActive(ctx context.Context, id string, active bool) (entities.Contractor, error)
}
