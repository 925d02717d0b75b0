package memory

import (
	"context"
	"fmt"
	"sync"

	interfaces "github.com/sheikh-saqib/accounts-transfer-service/internal/interfaces"
	"github.com/sheikh-saqib/accounts-transfer-service/internal/models"
)

// MemoryAccountStore is the in-memory implementation of interfaces.AccountStore.
// A single RWMutex guards the map structure only; balance mutation is guarded
// by each account's own lock, so lookups stay cheap under write load.
type MemoryAccountStore struct {
	mu       sync.RWMutex
	accounts map[string]*models.Account
}

// NewMemoryAccountStore creates an empty store.
func NewMemoryAccountStore() *MemoryAccountStore {
	return &MemoryAccountStore{
		accounts: make(map[string]*models.Account),
	}
}

// Create inserts the account, failing if the id is already taken. Exactly one
// of two racing creates for the same id wins; the loser gets
// models.ErrDuplicateAccount.
func (m *MemoryAccountStore) Create(ctx context.Context, account *models.Account) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.accounts[account.ID()]; exists {
		return fmt.Errorf("account id %s already exists: %w", account.ID(), models.ErrDuplicateAccount)
	}
	m.accounts[account.ID()] = account
	return nil
}

// Get returns the live account for the id, or models.ErrAccountNotFound.
func (m *MemoryAccountStore) Get(accountID string) (*models.Account, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	account, exists := m.accounts[accountID]
	if !exists {
		return nil, fmt.Errorf("account id %s does not exist: %w", accountID, models.ErrAccountNotFound)
	}
	return account, nil
}

// Compile-time check: ensure MemoryAccountStore implements AccountStore.
var _ interfaces.AccountStore = (*MemoryAccountStore)(nil)
