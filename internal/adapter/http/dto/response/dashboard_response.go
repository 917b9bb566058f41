package response

import (
	"renomatch/internal/usecase"
)

// DashboardRowResponse is one projected dashboard entry for the viewing
// contractor. Status is the derived ProjectStatus, never a stored value.
type DashboardRowResponse struct {
	Request     QuoteRequestResponse `json:"request"`
	Visit       *SiteVisitResponse   `json:"visit,omitempty"`
	Bid         *BidResponse         `json:"bid,omitempty"`
	Status      string               `json:"status"`
	VisitMissed bool                 `json:"visit_missed"`
}

func FromProjection(p usecase.ContractorProjection) DashboardRowResponse {
	row := DashboardRowResponse{
		Request:     FromQuoteRequest(p.Request),
		Status:      string(p.Status),
		VisitMissed: p.VisitMissed,
	}
	if p.Visit != nil {
		v := FromSiteVisit(*p.Visit)
		row.Visit = &v
	}
	if p.Bid != nil {
		b := FromBid(*p.Bid)
		row.Bid = &b
	}
	return row
}

func FromProjections(projections []usecase.ContractorProjection) []DashboardRowResponse {
	out := make([]DashboardRowResponse, 0, len(projections))
	for _, p := range projections {
		out = append(out, FromProjection(p))
	}
	return out
}
