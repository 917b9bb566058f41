package request

// RegisterContractorRequest is the vetting-queue entry payload. New
// contractors start inactive.
type RegisterContractorRequest struct {
	BusinessName string `json:"business_name" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	PushToken    string `json:"push_token"`
}

// SetContractorActiveRequest uses a pointer so that {"active": false} binds.
type SetContractorActiveRequest struct {
	Active *bool `json:"active" binding:"required"`
}
