package models

import (
	"fmt"
	"sync"

	"github.com/shopspring/decimal"
)

// Account is a mutable balance holder. Each account owns its own mutex, so
// single-account mutations and the paired transfer path serialize on the same
// guard. The balance is never observable below zero.
type Account struct {
	id string

	mu      sync.Mutex // guards balance
	balance decimal.Decimal
}

// AccountView is a point-in-time snapshot of an account, safe to hand to
// callers and to serialize.
type AccountView struct {
	AccountID string          `json:"account_id"`
	Balance   decimal.Decimal `json:"balance"`
}

// NewAccount creates an account with the given non-negative opening balance.
func NewAccount(id string, balance decimal.Decimal) (*Account, error) {
	if balance.IsNegative() {
		return nil, fmt.Errorf("opening balance for account id %s: %w", id, ErrInvalidAmount)
	}
	return &Account{id: id, balance: balance}, nil
}

func (a *Account) ID() string {
	return a.id
}

// Balance returns the current balance under the account's guard.
func (a *Account) Balance() decimal.Decimal {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.balance
}

// View snapshots the account for read-only callers.
func (a *Account) View() AccountView {
	return AccountView{AccountID: a.id, Balance: a.Balance()}
}

// Deposit adds a strictly positive amount to the balance.
func (a *Account) Deposit(amount decimal.Decimal) error {
	if amount.Cmp(decimal.Zero) <= 0 {
		return fmt.Errorf("amount to deposit %s: %w", amount, ErrInvalidAmount)
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	a.balance = a.balance.Add(amount)
	return nil
}

// Withdraw removes a strictly positive amount from the balance. The
// sufficient-funds check and the decrement happen under the same lock, so no
// concurrent mutator can act on a stale balance in between.
func (a *Account) Withdraw(amount decimal.Decimal) error {
	if amount.Cmp(decimal.Zero) <= 0 {
		return fmt.Errorf("amount to withdraw %s: %w", amount, ErrInvalidAmount)
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if amount.Cmp(a.balance) > 0 {
		return fmt.Errorf("account id %s does not have sufficient balance: %w", a.id, ErrInsufficientFunds)
	}
	a.balance = a.balance.Sub(amount)
	return nil
}

// TransferTo moves amount from a to another account as one atomic step: both
// guards are held for the debit and the credit, so no observer sees a state
// where only one side has moved.
//
// Locks are always taken in ascending id order regardless of transfer
// direction, so two opposite transfers between the same pair cannot deadlock.
func (a *Account) TransferTo(to *Account, amount decimal.Decimal) error {
	if to == nil || a.id == to.id {
		return ErrSameAccount
	}
	if amount.Cmp(decimal.Zero) <= 0 {
		return fmt.Errorf("amount to transfer %s: %w", amount, ErrInvalidAmount)
	}

	// Lock in order to avoid deadlocks.
	first, second := a, to
	if to.id < a.id {
		first, second = to, a
	}
	first.mu.Lock()
	defer first.mu.Unlock()
	second.mu.Lock()
	defer second.mu.Unlock()

	// Re-check under both guards: the balance may have moved since the
	// caller looked at it.
	if amount.Cmp(a.balance) > 0 {
		return fmt.Errorf("account id %s does not have sufficient balance: %w", a.id, ErrInsufficientFunds)
	}

	a.balance = a.balance.Sub(amount)
	to.balance = to.balance.Add(amount)
	return nil
}
