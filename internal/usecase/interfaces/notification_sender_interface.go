package interfaces

import (
	"context"
	"renomatch/internal/domain/entities"
)

//go:generate mockgen -source=notification_sender_interface.go -destination=mocks/notification_sender_interface_mock.go -package=mock_interfaces

// INotificationSender abstracts the outbound push/e-mail gateway that fans a
// selection event out to the winning contractor and the customer.
//
// Calls are fire-and-forget from the engine's point of view: the selection
// use case logs a failure and moves on, it never rolls back the selection
// write or surfaces the error to the caller.
type INotificationSender interface {
	NotifySelection(ctx context.Context, winner entities.Contractor, customerID string, request entities.QuoteRequest, quote entities.ContractorQuote) error
}
