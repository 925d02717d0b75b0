package interfaces

import "context"

// Notifier is the outbound notification port. Failures are the caller's to
// log; they never affect ledger state.
type Notifier interface {
	Notify(ctx context.Context, accountID string, message string) error
}
