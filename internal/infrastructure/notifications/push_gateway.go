package notifications

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"renomatch/internal/domain/entities"
	"renomatch/internal/usecase/interfaces"
)

var ErrMissingPushGatewayURL = errors.New("missing PUSH_GATEWAY_URL")

// PushGateway delivers selection notifications through an Expo-style push
// endpoint. Template wording lives here; the engine only hands over data.
//
// Env vars:
//   - PUSH_GATEWAY_URL (e.g. https://exp.host/--/api/v2/push/send)
//   - NOTIFICATIONS_MOCK (1/true/yes/on: log instead of sending)

type PushGateway struct {
	httpClient *http.Client
	endpoint   string
	mockMode   bool
}

var _ interfaces.INotificationSender = (*PushGateway)(nil)

func NewPushGateway(endpoint string) (*PushGateway, error) {
	if isNotificationsMockEnabled() {
		log.Printf("[notify][gateway] mock mode enabled")
		return &PushGateway{mockMode: true}, nil
	}

	endpoint = strings.TrimSpace(endpoint)
	if endpoint == "" {
		log.Printf("[notify][gateway] missing PUSH_GATEWAY_URL")
		return nil, ErrMissingPushGatewayURL
	}

	return &PushGateway{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		endpoint:   endpoint,
	}, nil
}

type pushMessage struct {
	To    string            `json:"to"`
	Title string            `json:"title"`
	Body  string            `json:"body"`
	Data  map[string]string `json:"data,omitempty"`
}

// NotifySelection fans the selection event out to the winning contractor and
// the customer. The caller treats the whole call as fire-and-forget; a partial
// delivery failure is reported as a single error for logging.
func (g *PushGateway) NotifySelection(ctx context.Context, winner entities.Contractor, customerID string, request entities.QuoteRequest, quote entities.ContractorQuote) error {
	data := map[string]string{
		"type":       "selection",
		"request_id": request.ID,
		"quote_id":   quote.ID,
	}

	messages := []pushMessage{
		{
			To:    winner.PushToken,
			Title: "You won the project",
			Body:  fmt.Sprintf("Your quote of $%.2f for %s was selected.", quote.Price, request.SpaceType),
			Data:  data,
		},
		{
			To:    "customer:" + customerID,
			Title: "Contractor selected",
			Body:  fmt.Sprintf("%s will take on your %s project.", winner.BusinessName, request.SpaceType),
			Data:  data,
		},
	}

	if g.mockMode {
		for _, m := range messages {
			log.Printf("[notify][gateway] mock send to=%s title=%q", m.To, m.Title)
		}
		return nil
	}

	var lastErr error
	for _, m := range messages {
		if m.To == "" {
			log.Printf("[notify][gateway] skipping recipient with no token request_id=%s", request.ID)
			continue
		}
		if err := g.send(ctx, m); err != nil {
			log.Printf("[notify][gateway] send failed to=%s err=%v", m.To, err)
			lastErr = err
		}
	}
	return lastErr
}

func (g *PushGateway) send(ctx context.Context, m pushMessage) error {
	payload, err := json.Marshal(m)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.endpoint, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("push gateway returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	return nil
}

func isNotificationsMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("NOTIFICATIONS_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
