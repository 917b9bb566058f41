package response

import (
	"time"

	"renomatch/internal/domain/entities"
)

type BidResponse struct {
	ID           string    `json:"id"`
	RequestID    string    `json:"request_id"`
	ContractorID string    `json:"contractor_id"`
	Price        float64   `json:"price"`
	Description  string    `json:"description"`
	DocumentRef  string    `json:"document_ref,omitempty"`
	Status       string    `json:"status"`
	SubmittedAt  time.Time `json:"submitted_at"`
}

func FromBid(q entities.ContractorQuote) BidResponse {
	return BidResponse{
		ID:           q.ID,
		RequestID:    q.RequestID,
		ContractorID: q.ContractorID,
		Price:        q.Price,
		Description:  q.Description,
		DocumentRef:  q.DocumentRef,
		Status:       string(q.Status),
		SubmittedAt:  q.SubmittedAt,
	}
}

func FromBids(quotes []entities.ContractorQuote) []BidResponse {
	out := make([]BidResponse, 0, len(quotes))
	for _, q := range quotes {
		out = append(out, FromBid(q))
	}
	return out
}
