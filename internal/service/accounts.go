package service

import (
	"context"
	"fmt"

	"github.com/sheikh-saqib/accounts-transfer-service/internal/interfaces"
	"github.com/sheikh-saqib/accounts-transfer-service/internal/ledger"
	"github.com/sheikh-saqib/accounts-transfer-service/internal/models"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// AccountsService coordinates account operations for the transport layer:
// create, lookup, and validated transfers with post-commit notifications.
type AccountsService struct {
	ledger   *ledger.Ledger
	notifier interfaces.Notifier
	log      *zap.Logger
}

// NewAccountsService wires the service to the ledger and the notification port.
func NewAccountsService(l *ledger.Ledger, notifier interfaces.Notifier, log *zap.Logger) *AccountsService {
	return &AccountsService{ledger: l, notifier: notifier, log: log}
}

// CreateAccount opens an account with the given starting balance.
func (s *AccountsService) CreateAccount(ctx context.Context, accountID string, balance decimal.Decimal) error {
	return s.ledger.CreateAccount(ctx, accountID, balance)
}

// GetAccount returns a snapshot of the account.
func (s *AccountsService) GetAccount(accountID string) (models.AccountView, error) {
	return s.ledger.GetAccount(accountID)
}

// Transfer validates the request, commits the atomic balance movement, and
// then notifies both account holders. The ledger's error kinds
// (ErrAccountNotFound, ErrSameAccount, ErrInvalidAmount, ErrInsufficientFunds)
// pass through to the caller unchanged.
//
// Notifications are fire-and-forget: by the time they run the transfer is
// committed, so an adapter failure is logged and swallowed rather than undoing
// an already-visible balance movement.
func (s *AccountsService) Transfer(ctx context.Context, req models.TransferRequest) error {
	if req.FromAccount == req.ToAccount {
		return models.ErrSameAccount
	}

	if err := s.ledger.TransferAtomic(ctx, req.FromAccount, req.ToAccount, req.Amount); err != nil {
		return err
	}

	s.notify(ctx, req.FromAccount, fmt.Sprintf("%s debited from the account", req.Amount))
	s.notify(ctx, req.ToAccount, fmt.Sprintf("%s credited into the account", req.Amount))
	return nil
}

func (s *AccountsService) notify(ctx context.Context, accountID, message string) {
	if err := s.notifier.Notify(ctx, accountID, message); err != nil {
		s.log.Warn("transfer notification failed",
			zap.String("account_id", accountID),
			zap.Error(err))
	}
}
