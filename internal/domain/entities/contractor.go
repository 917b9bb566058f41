package entities

import "time"

// Contractor is a vetted service provider. The Active flag gates every
// contractor-initiated operation (visit applications, bid submission).
//
// Storage model (DynamoDB):
//   - PK: id
type Contractor struct {
	ID           string    `json:"id"`
	BusinessName string    `json:"business_name"`
	Email        string    `json:"email"`
	PushToken    string    `json:"push_token,omitempty"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
}
