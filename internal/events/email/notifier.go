package email

import (
	"context"

	interfaces "github.com/sheikh-saqib/accounts-transfer-service/internal/interfaces"
	"go.uber.org/zap"
)

// Notifier is the development notification adapter: it records what an email
// gateway would send, without sending anything.
type Notifier struct {
	log *zap.Logger
}

func NewNotifier(log *zap.Logger) *Notifier {
	return &Notifier{log: log}
}

func (n *Notifier) Notify(ctx context.Context, accountID string, message string) error {
	n.log.Info("sending email notification",
		zap.String("account_id", accountID),
		zap.String("message", message))
	return nil
}

var _ interfaces.Notifier = (*Notifier)(nil)
