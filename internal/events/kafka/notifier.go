package kafka

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	interfaces "github.com/sheikh-saqib/accounts-transfer-service/internal/interfaces"
	"github.com/sheikh-saqib/accounts-transfer-service/internal/models/events"
)

// Notifier publishes transfer notifications to a Kafka topic, keyed by
// account id so one account's notifications stay ordered on a partition.
type Notifier struct {
	writer *kafka.Writer
}

func NewNotifier(brokers []string, topic string) *Notifier {
	return &Notifier{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Topic:    topic,
			Balancer: &kafka.LeastBytes{},
		},
	}
}

func (n *Notifier) Notify(ctx context.Context, accountID string, message string) error {
	event := events.TransferNotification{
		ID:         uuid.New().String(),
		AccountID:  accountID,
		Message:    message,
		OccurredAt: time.Now().UTC(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return n.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(accountID),
		Value: data,
	})
}

func (n *Notifier) Close() error {
	return n.writer.Close()
}

var _ interfaces.Notifier = (*Notifier)(nil)
