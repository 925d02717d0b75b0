package interfaces

import (
	"context"

	"github.com/sheikh-saqib/accounts-transfer-service/internal/models"
)

// AccountStore owns the id -> account mapping. Create is atomic with respect
// to concurrent creates of the same id; Get never blocks writers longer than
// a snapshot read.
type AccountStore interface {
	Create(ctx context.Context, account *models.Account) error
	Get(accountID string) (*models.Account, error)
}
