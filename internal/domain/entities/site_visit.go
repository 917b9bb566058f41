package entities

import "time"

// VisitStatus tracks whether the physical inspection happened. The flag is
// flipped by staff/system input; the engine never infers completion.

type VisitStatus string

const (
	VisitStatusPending   VisitStatus = "pending"
	VisitStatusCompleted VisitStatus = "completed"
)

// SiteVisitApplication is a contractor's claim of intent to inspect a
// request's site before bidding.
//
// Storage model (DynamoDB):
//   - PK: pair_key (request_id + "#" + contractor_id)
//   - GSI1 (id-index): id
//   - GSI2 (request_id-index): request_id
//   - GSI3 (contractor_id-index): contractor_id
//
// Keying by (request, contractor) pair makes "at most one active application
// per pair" a storage-level guarantee: a conditional put only replaces the
// row when the previous application was cancelled.
//
// Cancellation keeps the row (audit trail); Cancelled/CancelledAt/CancelledBy
// survive until a re-application replaces them.
type SiteVisitApplication struct {
	ID           string      `json:"id"`
	RequestID    string      `json:"request_id"`
	ContractorID string      `json:"contractor_id"`
	Status       VisitStatus `json:"status"`
	AppliedAt    time.Time   `json:"applied_at"`

	Cancelled   bool      `json:"cancelled"`
	CancelledAt time.Time `json:"cancelled_at,omitempty"`
	CancelledBy string    `json:"cancelled_by,omitempty"`
}

// Active reports whether the application still counts for the uniqueness
// invariant and the dashboard derivation.
func (a SiteVisitApplication) Active() bool {
	return !a.Cancelled
}

// CompletedVisit reports whether this application satisfies the bid
// precondition: the visit happened and the application was never cancelled.
func (a SiteVisitApplication) CompletedVisit() bool {
	return !a.Cancelled && a.Status == VisitStatusCompleted
}

// Missed computes the missed-visit fact: the proposed date has passed, the
// visit was never marked completed, and the application was never cancelled.
// It is derived from the application plus the clock, never stored.
func (a SiteVisitApplication) Missed(proposedDate time.Time, now time.Time) bool {
	if a.Cancelled || a.Status == VisitStatusCompleted {
		return false
	}
	return proposedDate.Before(now)
}
