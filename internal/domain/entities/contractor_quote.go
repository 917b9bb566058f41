package entities

import "time"

// QuoteStatus represents a bid's outcome. A submitted quote becomes accepted
// when its contractor wins the selection; losing quotes keep "submitted" and
// are reclassified on read by the dashboard derivation, never by a fan-out
// write.

type QuoteStatus string

const (
	QuoteStatusSubmitted QuoteStatus = "submitted"
	QuoteStatusAccepted  QuoteStatus = "accepted"
)

// ContractorQuote is a contractor's priced offer for a request.
//
// Storage model (DynamoDB):
//   - PK: pair_key (request_id + "#" + contractor_id)
//   - GSI1 (id-index): id
//   - GSI2 (request_id-index): request_id
//   - GSI3 (contractor_id-index): contractor_id
//
// The pair key enforces at most one bid per (request, contractor) at the
// storage layer; submitting again requires withdrawing the prior bid first.
type ContractorQuote struct {
	ID           string      `json:"id"`
	RequestID    string      `json:"request_id"`
	ContractorID string      `json:"contractor_id"`
	Price        float64     `json:"price"`
	Description  string      `json:"description"`
	DocumentRef  string      `json:"document_ref,omitempty"`
	Status       QuoteStatus `json:"status"`
	SubmittedAt  time.Time   `json:"submitted_at"`
}
