package response

import (
	"time"

	"renomatch/internal/domain/entities"
)

type SiteVisitResponse struct {
	ID           string     `json:"id"`
	RequestID    string     `json:"request_id"`
	ContractorID string     `json:"contractor_id"`
	Status       string     `json:"status"`
	AppliedAt    time.Time  `json:"applied_at"`
	Cancelled    bool       `json:"cancelled"`
	CancelledAt  *time.Time `json:"cancelled_at,omitempty"`
	CancelledBy  string     `json:"cancelled_by,omitempty"`
}

func FromSiteVisit(a entities.SiteVisitApplication) SiteVisitResponse {
	resp := SiteVisitResponse{
		ID:           a.ID,
		RequestID:    a.RequestID,
		ContractorID: a.ContractorID,
		Status:       string(a.Status),
		AppliedAt:    a.AppliedAt,
		Cancelled:    a.Cancelled,
		CancelledBy:  a.CancelledBy,
	}
	if !a.CancelledAt.IsZero() {
		t := a.CancelledAt
		resp.CancelledAt = &t
	}
	return resp
}

func FromSiteVisits(apps []entities.SiteVisitApplication) []SiteVisitResponse {
	out := make([]SiteVisitResponse, 0, len(apps))
	for _, a := range apps {
		out = append(out, FromSiteVisit(a))
	}
	return out
}
