package request

import (
	"errors"
	"strings"
	"time"
)

var ErrInvalidVisitDates = errors.New("invalid visit dates")

// CreateQuoteRequestRequest is the customer-facing payload for posting a new
// renovation request. Visit dates arrive as RFC 3339 strings.
type CreateQuoteRequestRequest struct {
	SpaceType    string   `json:"space_type" binding:"required"`
	BudgetBand   string   `json:"budget_band" binding:"required"`
	TimelineBand string   `json:"timeline_band" binding:"required"`
	Address      string   `json:"address" binding:"required"`
	Description  string   `json:"description"`
	VisitDates   []string `json:"visit_dates" binding:"required,min=1"`
}

func (r CreateQuoteRequestRequest) ResolveVisitDates() ([]time.Time, error) {
	dates := make([]time.Time, 0, len(r.VisitDates))
	for _, raw := range r.VisitDates {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			return nil, ErrInvalidVisitDates
		}
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return nil, ErrInvalidVisitDates
		}
		dates = append(dates, t.UTC())
	}
	return dates, nil
}

// ReviewRequest carries the staff review verdict. Approve is a pointer so a
// missing field binds as invalid instead of defaulting to reject.
type ReviewRequest struct {
	Approve *bool `json:"approve" binding:"required"`
}
