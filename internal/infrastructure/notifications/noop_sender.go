package notifications

import (
	"context"
	"log"

	"renomatch/internal/domain/entities"
	"renomatch/internal/usecase/interfaces"
)

// NoopSender stands in when no push gateway is configured. Selections still
// succeed; the notification is logged and dropped.

type NoopSender struct{}

var _ interfaces.INotificationSender = (*NoopSender)(nil)

func NewNoopSender() *NoopSender {
	return &NoopSender{}
}

func (s *NoopSender) NotifySelection(_ context.Context, winner entities.Contractor, customerID string, request entities.QuoteRequest, _ entities.ContractorQuote) error {
	log.Printf("[notify][noop] dropping selection notification request_id=%s contractor_id=%s customer_id=%s", request.ID, winner.ID, customerID)
	return nil
}
