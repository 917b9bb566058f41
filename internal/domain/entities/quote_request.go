package entities

import "time"

// RequestStatus represents the canonical lifecycle of a quote request.
//
// Domain notes:
//   - The request status is owned by a single writer (the request use case);
//     every other component only reads it.
//   - Staff approval and visit-opening are the same transition: an approved
//     request is immediately open for site visits, so "approved" never
//     persists as a stored status.
//   - "cancelled" and "rejected" are absorbing; nothing leaves a terminal
//     state.

type RequestStatus string

const (
	RequestStatusPending          RequestStatus = "pending"
	RequestStatusSiteVisitPending RequestStatus = "site-visit-pending"
	RequestStatusBidding          RequestStatus = "bidding"
	RequestStatusBiddingClosed    RequestStatus = "bidding-closed"
	RequestStatusCompleted        RequestStatus = "completed"
	RequestStatusRejected         RequestStatus = "rejected"
	RequestStatusCancelled        RequestStatus = "cancelled"
)

// requestTransitions is the closed transition table. A status missing from
// the map is terminal. "cancelled" is reachable from every non-terminal state
// and therefore appears in every row.
var requestTransitions = map[RequestStatus][]RequestStatus{
	RequestStatusPending:          {RequestStatusSiteVisitPending, RequestStatusRejected, RequestStatusCancelled},
	RequestStatusSiteVisitPending: {RequestStatusBidding, RequestStatusCancelled},
	RequestStatusBidding:          {RequestStatusBiddingClosed, RequestStatusCompleted, RequestStatusCancelled},
	RequestStatusBiddingClosed:    {RequestStatusCompleted, RequestStatusCancelled},
}

// Known reports whether s is one of the canonical statuses. An unknown value
// read from storage is a data-integrity error, never a default state.
func (s RequestStatus) Known() bool {
	switch s {
	case RequestStatusPending, RequestStatusSiteVisitPending, RequestStatusBidding,
		RequestStatusBiddingClosed, RequestStatusCompleted, RequestStatusRejected, RequestStatusCancelled:
		return true
	}
	return false
}

func (s RequestStatus) Terminal() bool {
	switch s {
	case RequestStatusCompleted, RequestStatusRejected, RequestStatusCancelled:
		return true
	}
	return false
}

func (s RequestStatus) CanTransitionTo(next RequestStatus) bool {
	for _, allowed := range requestTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// AcceptsVisitApplications reports whether contractors may still apply for a
// site visit. Applications stay open once bidding starts; they close with it.
func (s RequestStatus) AcceptsVisitApplications() bool {
	return s == RequestStatusSiteVisitPending || s == RequestStatusBidding
}

// AcceptsBids reports whether contractors may submit quotes.
func (s RequestStatus) AcceptsBids() bool {
	return s == RequestStatusBidding
}

// AcceptsSelection reports whether the customer may still pick a winner.
// Quotes only exist from bidding onward, and cancelled/rejected requests
// stay terminal.
func (s RequestStatus) AcceptsSelection() bool {
	return s == RequestStatusBidding || s == RequestStatusBiddingClosed
}

// QuoteRequest is a customer's renovation ask persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (customer_id-index): customer_id
//
// SelectedContractorID and SelectedQuoteID are write-once: they are only ever
// set by the single conditional selection update, and only while they are
// still absent from the item.
type QuoteRequest struct {
	ID           string        `json:"id"`
	CustomerID   string        `json:"customer_id"`
	SpaceType    string        `json:"space_type"`
	BudgetBand   string        `json:"budget_band"`
	TimelineBand string        `json:"timeline_band"`
	Address      string        `json:"address"`
	Description  string        `json:"description"`
	VisitDates   []time.Time   `json:"visit_dates"`
	Status       RequestStatus `json:"status"`

	SelectedContractorID string `json:"selected_contractor_id,omitempty"`
	SelectedQuoteID      string `json:"selected_quote_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Decided reports whether a winning contractor has been chosen.
func (r QuoteRequest) Decided() bool {
	return r.SelectedContractorID != ""
}

// EarliestVisitDate returns the first proposed visit date, used by the
// missed-visit derivation. ok is false when no dates were proposed.
func (r QuoteRequest) EarliestVisitDate() (time.Time, bool) {
	if len(r.VisitDates) == 0 {
		return time.Time{}, false
	}
	earliest := r.VisitDates[0]
	for _, d := range r.VisitDates[1:] {
		if d.Before(earliest) {
			earliest = d
		}
	}
	return earliest, true
}
