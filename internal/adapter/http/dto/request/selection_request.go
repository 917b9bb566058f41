package request

// SelectContractorRequest names the winning contractor and the quote being
// accepted; the use case verifies they belong together.
type SelectContractorRequest struct {
	ContractorID string `json:"contractor_id" binding:"required"`
	QuoteID      string `json:"quote_id" binding:"required"`
}
