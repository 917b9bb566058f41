package response

import (
	"time"

	"renomatch/internal/domain/entities"
)

type ContractorResponse struct {
	ID           string    `json:"id"`
	BusinessName string    `json:"business_name"`
	Email        string    `json:"email"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
}

func FromContractor(c entities.Contractor) ContractorResponse {
	return ContractorResponse{
		ID:           c.ID,
		BusinessName: c.BusinessName,
		Email:        c.Email,
		Active:       c.Active,
		CreatedAt:    c.CreatedAt,
	}
}
