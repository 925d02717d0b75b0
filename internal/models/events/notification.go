package events

import "time"

// TransferNotification is the payload published to an account holder's
// notification channel after a committed transfer.
type TransferNotification struct {
	ID         string    `json:"id"`
	AccountID  string    `json:"account_id"`
	Message    string    `json:"message"`
	OccurredAt time.Time `json:"occurred_at"`
}
