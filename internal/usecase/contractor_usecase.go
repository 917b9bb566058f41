package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"renomatch/internal/domain/entities"
	"renomatch/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var ErrInvalidContractorInput = errors.New("invalid contractor input")

//go:generate mockgen -source=contractor_usecase.go -destination=../adapter/http/handlers/mocks/contractor_usecase_mock.go -package=mocks

// IContractorUseCase manages the contractor registry and its activation gate.

type IContractorUseCase interface {
	Register(ctx context.Context, businessName, email, pushToken string) (entities.Contractor, error)
	GetByID(ctx context.Context, id string) (entities.Contractor, error)
	SetActive(ctx context.Context, id string, active bool) (entities.Contractor, error)
}

type ContractorUseCase struct {
	repo interfaces.IContractorRepository
}

var _ IContractorUseCase = (*ContractorUseCase)(nil)

func NewContractorUseCase(repo interfaces.IContractorRepository) *ContractorUseCase {
	return &ContractorUseCase{repo: repo}
}

func (u *ContractorUseCase) Register(ctx context.Context, businessName, email, pushToken string) (entities.Contractor, error) {
	businessName = strings.TrimSpace(businessName)
	email = strings.TrimSpace(email)
	if businessName == "" || email == "" {
		return entities.Contractor{}, ErrInvalidContractorInput
	}

	c := entities.Contractor{
		ID:           uuid.NewString(),
		BusinessName: businessName,
		Email:        email,
		PushToken:    strings.TrimSpace(pushToken),
		Active:       false, // vetting flips the flag
		CreatedAt:    time.Now().UTC(),
	}
	return u.repo.Create(ctx, c)
}

func (u *ContractorUseCase) GetByID(ctx context.Context, id string) (entities.Contractor, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Contractor{}, ErrInvalidContractorID
	}

	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Contractor{}, err
	}
	if c.ID == "" {
		return entities.Contractor{}, ErrContractorNotFound
	}
	return c, nil
}

func (u *ContractorUseCase) SetActive(ctx context.Context, id string, active bool) (entities.Contractor, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Contractor{}, ErrInvalidContractorID
	}

	c, err := u.repo.SetActive(ctx, id, active)
	if err != nil {
		return entities.Contractor{}, err
	}
	if c.ID == "" {
		return entities.Contractor{}, ErrContractorNotFound
	}
	return c, nil
}
