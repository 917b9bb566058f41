package response

import (
	"time"

	"renomatch/internal/domain/entities"
)

type QuoteRequestResponse struct {
	ID                   string    `json:"id"`
	CustomerID           string    `json:"customer_id"`
	SpaceType            string    `json:"space_type"`
	BudgetBand           string    `json:"budget_band"`
	TimelineBand         string    `json:"timeline_band"`
	Address              string    `json:"address"`
	Description          string    `json:"description,omitempty"`
	VisitDates           []string  `json:"visit_dates"`
	Status               string    `json:"status"`
	SelectedContractorID string    `json:"selected_contractor_id,omitempty"`
	SelectedQuoteID      string    `json:"selected_quote_id,omitempty"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

func FromQuoteRequest(r entities.QuoteRequest) QuoteRequestResponse {
	dates := make([]string, 0, len(r.VisitDates))
	for _, d := range r.VisitDates {
		dates = append(dates, d.UTC().Format(time.RFC3339))
	}
	return QuoteRequestResponse{
		ID:                   r.ID,
		CustomerID:           r.CustomerID,
		SpaceType:            r.SpaceType,
		BudgetBand:           r.BudgetBand,
		TimelineBand:         r.TimelineBand,
		Address:              r.Address,
		Description:          r.Description,
		VisitDates:           dates,
		Status:               string(r.Status),
		SelectedContractorID: r.SelectedContractorID,
		SelectedQuoteID:      r.SelectedQuoteID,
		CreatedAt:            r.CreatedAt,
		UpdatedAt:            r.UpdatedAt,
	}
}

func FromQuoteRequests(requests []entities.QuoteRequest) []QuoteRequestResponse {
	out := make([]QuoteRequestResponse, 0, len(requests))
	for _, r := range requests {
		out = append(out, FromQuoteRequest(r))
	}
	return out
}
