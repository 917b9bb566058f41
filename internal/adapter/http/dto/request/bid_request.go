package request

// SubmitBidRequest is the contractor-facing payload for submitting a quote.
type SubmitBidRequest struct {
	Price       float64 `json:"price" binding:"required,gt=0"`
	Description string  `json:"description" binding:"required"`
	DocumentRef string  `json:"document_ref"`
}
