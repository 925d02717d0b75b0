package redisstream

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	interfaces "github.com/sheikh-saqib/accounts-transfer-service/internal/interfaces"
	"github.com/sheikh-saqib/accounts-transfer-service/internal/models/events"
)

// Notifier publishes transfer notifications to a Redis stream.
type Notifier struct {
	client *redis.Client
	stream string
}

func NewNotifier(client *redis.Client, stream string) *Notifier {
	return &Notifier{client: client, stream: stream}
}

func (n *Notifier) Notify(ctx context.Context, accountID string, message string) error {
	event := events.TransferNotification{
		ID:         uuid.New().String(),
		AccountID:  accountID,
		Message:    message,
		OccurredAt: time.Now().UTC(),
	}

	eventJSON, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	args := &redis.XAddArgs{
		Stream: n.stream,
		Values: map[string]any{
			"event": eventJSON,
		},
	}

	if _, err := n.client.XAdd(ctx, args).Result(); err != nil {
		return fmt.Errorf("failed to publish notification: %w", err)
	}
	return nil
}

var _ interfaces.Notifier = (*Notifier)(nil)
