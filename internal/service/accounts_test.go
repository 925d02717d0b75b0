package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/sheikh-saqib/accounts-transfer-service/internal/ledger"
	"github.com/sheikh-saqib/accounts-transfer-service/internal/models"
	"github.com/sheikh-saqib/accounts-transfer-service/internal/storage/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type notification struct {
	accountID string
	message   string
}

type fakeNotifier struct {
	mu    sync.Mutex
	err   error
	calls []notification
}

func (f *fakeNotifier) Notify(ctx context.Context, accountID string, message string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, notification{accountID: accountID, message: message})
	return f.err
}

func (f *fakeNotifier) notifications() []notification {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]notification(nil), f.calls...)
}

func newService(t *testing.T, notifier *fakeNotifier) *AccountsService {
	t.Helper()
	l := ledger.NewLedger(memory.NewMemoryAccountStore())
	return NewAccountsService(l, notifier, zap.NewNop())
}

func createAccount(t *testing.T, s *AccountsService, id string, balance int64) {
	t.Helper()
	require.NoError(t, s.CreateAccount(context.Background(), id, decimal.NewFromInt(balance)))
}

func TestTransferNotifiesBothAccounts(t *testing.T) {
	notifier := &fakeNotifier{}
	s := newService(t, notifier)
	createAccount(t, s, "accFrom", 1000)
	createAccount(t, s, "accTo", 500)

	err := s.Transfer(context.Background(), models.TransferRequest{
		FromAccount: "accFrom",
		ToAccount:   "accTo",
		Amount:      decimal.NewFromInt(500),
	})
	require.NoError(t, err)

	calls := notifier.notifications()
	require.Len(t, calls, 2)
	assert.Equal(t, "accFrom", calls[0].accountID)
	assert.Contains(t, calls[0].message, "debited from the account")
	assert.Equal(t, "accTo", calls[1].accountID)
	assert.Contains(t, calls[1].message, "credited into the account")
}

func TestTransferKeepsCommitOnNotifierFailure(t *testing.T) {
	notifier := &fakeNotifier{err: errors.New("smtp unavailable")}
	s := newService(t, notifier)
	createAccount(t, s, "accFrom", 1000)
	createAccount(t, s, "accTo", 500)

	err := s.Transfer(context.Background(), models.TransferRequest{
		FromAccount: "accFrom",
		ToAccount:   "accTo",
		Amount:      decimal.NewFromInt(500),
	})
	require.NoError(t, err, "notification failure must not surface after commit")

	from, err := s.GetAccount("accFrom")
	require.NoError(t, err)
	assert.True(t, from.Balance.Equal(decimal.NewFromInt(500)))

	to, err := s.GetAccount("accTo")
	require.NoError(t, err)
	assert.True(t, to.Balance.Equal(decimal.NewFromInt(1000)))
}

func TestTransferSameAccountShortCircuits(t *testing.T) {
	notifier := &fakeNotifier{}
	s := newService(t, notifier)
	createAccount(t, s, "accFrom", 1000)

	err := s.Transfer(context.Background(), models.TransferRequest{
		FromAccount: "accFrom",
		ToAccount:   "accFrom",
		Amount:      decimal.NewFromInt(100),
	})
	require.ErrorIs(t, err, models.ErrSameAccount)
	assert.Empty(t, notifier.notifications())
}

func TestTransferRejectionsSkipNotifications(t *testing.T) {
	notifier := &fakeNotifier{}
	s := newService(t, notifier)
	createAccount(t, s, "accFrom", 1000)
	createAccount(t, s, "accTo", 500)

	cases := []struct {
		name string
		req  models.TransferRequest
		want error
	}{
		{
			name: "unknown source",
			req:  models.TransferRequest{FromAccount: "missing", ToAccount: "accTo", Amount: decimal.NewFromInt(10)},
			want: models.ErrAccountNotFound,
		},
		{
			name: "insufficient funds",
			req:  models.TransferRequest{FromAccount: "accFrom", ToAccount: "accTo", Amount: decimal.NewFromInt(5000)},
			want: models.ErrInsufficientFunds,
		},
		{
			name: "non-positive amount",
			req:  models.TransferRequest{FromAccount: "accFrom", ToAccount: "accTo", Amount: decimal.Zero},
			want: models.ErrInvalidAmount,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := s.Transfer(context.Background(), tc.req)
			require.ErrorIs(t, err, tc.want)
		})
	}

	assert.Empty(t, notifier.notifications())

	from, err := s.GetAccount("accFrom")
	require.NoError(t, err)
	assert.True(t, from.Balance.Equal(decimal.NewFromInt(1000)))
}
