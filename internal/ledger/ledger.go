package ledger

import (
	"context"
	"fmt"

	interfaces "github.com/sheikh-saqib/accounts-transfer-service/internal/interfaces"
	"github.com/sheikh-saqib/accounts-transfer-service/internal/models"
	"github.com/shopspring/decimal"
)

// Ledger is the authoritative collection of accounts. It fronts the account
// store with the create/lookup/transfer operations the service layer needs,
// keeping the validation order of a transfer in one place.
type Ledger struct {
	store interfaces.AccountStore
}

// NewLedger creates a ledger over the given store.
func NewLedger(store interfaces.AccountStore) *Ledger {
	return &Ledger{store: store}
}

// CreateAccount opens an account with a non-negative starting balance.
// Returns models.ErrDuplicateAccount if the id is already taken.
func (l *Ledger) CreateAccount(ctx context.Context, accountID string, balance decimal.Decimal) error {
	account, err := models.NewAccount(accountID, balance)
	if err != nil {
		return err
	}
	return l.store.Create(ctx, account)
}

// GetAccount returns a snapshot of the account, or models.ErrAccountNotFound.
func (l *Ledger) GetAccount(accountID string) (models.AccountView, error) {
	account, err := l.store.Get(accountID)
	if err != nil {
		return models.AccountView{}, err
	}
	return account.View(), nil
}

// TransferAtomic moves amount between two accounts as one indivisible step.
//
// Validation order: both accounts must exist, the ids must differ, and the
// amount must be positive — all checked before any account guard is taken.
// The sufficient-funds check happens inside Account.TransferTo while both
// guards are held, so the committed decision is never based on a stale
// balance. On any failure no balance moves.
func (l *Ledger) TransferAtomic(ctx context.Context, fromID, toID string, amount decimal.Decimal) error {
	from, err := l.store.Get(fromID)
	if err != nil {
		return err
	}
	to, err := l.store.Get(toID)
	if err != nil {
		return err
	}

	if fromID == toID {
		return models.ErrSameAccount
	}
	if amount.Cmp(decimal.Zero) <= 0 {
		return fmt.Errorf("amount to transfer %s: %w", amount, models.ErrInvalidAmount)
	}

	return from.TransferTo(to, amount)
}
